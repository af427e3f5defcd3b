package localstore

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/fieldlog/fieldlog/internal/entity"
)

// DeviceIdentity returns the persistent device identity, generating and
// storing one on first call. The id never rotates for the life of the store.
func (s *Store) DeviceIdentity() (entity.DeviceIdentity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var id entity.DeviceIdentity
	err := s.getJSON(keyDeviceIdentity, &id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return entity.DeviceIdentity{}, err
	}

	id = entity.DeviceIdentity{
		DeviceID:  uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.setJSON(keyDeviceIdentity, &id); err != nil {
		return entity.DeviceIdentity{}, err
	}
	s.logger.Info("localstore.identity.created", "device_id", id.DeviceID)
	return id, nil
}

// SetDisplayName updates the holder display name on the stored identity.
func (s *Store) SetDisplayName(name string) (entity.DeviceIdentity, error) {
	id, err := s.DeviceIdentity()
	if err != nil {
		return entity.DeviceIdentity{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id.DisplayName = name
	if err := s.setJSON(keyDeviceIdentity, &id); err != nil {
		return entity.DeviceIdentity{}, err
	}
	return id, nil
}
