package localstore

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/fieldlog/fieldlog/constants"
	"github.com/fieldlog/fieldlog/internal/entity"
)

// The pending-operations queue lives under a single key as an ordered list,
// drained in enqueue order. Read-modify-write cycles are serialized by the
// store mutex.

// Enqueue appends an operation to the pending queue.
func (s *Store) Enqueue(opType constants.SyncOpType, payload any) (entity.SyncOperation, error) {
	bs, err := json.Marshal(payload)
	if err != nil {
		return entity.SyncOperation{}, err
	}
	op := entity.SyncOperation{
		ID:         uuid.New().String(),
		Type:       opType,
		Payload:    bs,
		EnqueuedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ops, err := s.loadQueue()
	if err != nil {
		return entity.SyncOperation{}, err
	}
	ops = append(ops, op)
	if err := s.setJSON(keySyncQueue, ops); err != nil {
		return entity.SyncOperation{}, err
	}
	s.logger.Debug("localstore.queue.enqueued", "op_id", op.ID, "type", op.Type, "depth", len(ops))
	return op, nil
}

// PendingOps returns a snapshot of the queue in enqueue order.
func (s *Store) PendingOps() ([]entity.SyncOperation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadQueue()
}

// RemoveOp deletes one operation by id. A no-op if the id is already gone.
func (s *Store) RemoveOp(opID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ops, err := s.loadQueue()
	if err != nil {
		return err
	}
	kept := ops[:0]
	for _, op := range ops {
		if op.ID != opID {
			kept = append(kept, op)
		}
	}
	return s.setJSON(keySyncQueue, kept)
}

// BumpRetry increments the retry counter on one operation and reports the new
// count. Offline failures never call this; the counter only moves on real
// rejections.
func (s *Store) BumpRetry(opID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ops, err := s.loadQueue()
	if err != nil {
		return 0, err
	}
	retries := 0
	for i := range ops {
		if ops[i].ID == opID {
			ops[i].Retries++
			retries = ops[i].Retries
			break
		}
	}
	if err := s.setJSON(keySyncQueue, ops); err != nil {
		return 0, err
	}
	return retries, nil
}

func (s *Store) loadQueue() ([]entity.SyncOperation, error) {
	var ops []entity.SyncOperation
	err := s.getJSON(keySyncQueue, &ops)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ops, nil
}
