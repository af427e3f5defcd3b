package entity

import "time"

// DeviceIdentity is the locally generated, persistent identity of this
// install. The id never rotates for the life of the local store; it is the
// lock holder identity and the fallback account identity before any cloud
// identity exists.
type DeviceIdentity struct {
	DeviceID    string    `json:"deviceId"`
	DisplayName string    `json:"displayName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
