package ocsf

import "github.com/cespare/xxhash/v2"

// Timestamp is milliseconds since the Unix epoch.
type Timestamp int64

// CategoryUID is the OCSF event category.
type CategoryUID int

const (
	CategoryIAM                 CategoryUID = 3
	CategoryApplicationActivity CategoryUID = 6
)

// ClassUID is the OCSF event class.
type ClassUID int

const (
	ClassAuthentication       ClassUID = 3002
	ClassApplicationLifecycle ClassUID = 6002
	ClassAPIActivity          ClassUID = 6003
)

// Event is the deduplication contract every audit event class implements.
//
// Key is a stable fingerprint over the event's identifying fields. It
// ignores Time and the duplicate counters, so a stream of semantically
// identical events collapses to one record under Increment. Keys are
// advisory for deduplication only, never for access control.
type Event interface {
	// Key returns the content-addressed fingerprint of the event.
	Key() uint64
	// Increment folds a duplicate observed at t into this event.
	Increment(t Timestamp)
	// Timestamp returns the construction time of the event.
	Timestamp() Timestamp
}

// baseEvent is the header shared by every event class. Field declaration
// order is the canonical serialization order; count, end_time and
// start_time stay nil (and are omitted from the JSON) until the first
// Increment.
type baseEvent struct {
	CategoryUID CategoryUID `json:"category_uid"`
	ClassUID    ClassUID    `json:"class_uid"`
	Count       *uint64     `json:"count,omitempty"`
	EndTime     *Timestamp  `json:"end_time,omitempty"`
	Metadata    *Metadata   `json:"metadata"`
	SeverityID  Severity    `json:"severity_id"`
	StartTime   *Timestamp  `json:"start_time,omitempty"`
	Time        Timestamp   `json:"time"`
	TypeUID     int         `json:"type_uid"`
}

// newBaseEvent builds a header with type_uid = class_uid*100 + activity.
func newBaseEvent(category CategoryUID, class ClassUID, activity int, severity Severity, t Timestamp) baseEvent {
	return baseEvent{
		CategoryUID: category,
		ClassUID:    class,
		Metadata:    EventMetadata(),
		SeverityID:  severity,
		Time:        t,
		TypeUID:     int(class)*100 + activity,
	}
}

// Increment folds one duplicate into the event: the first call pins
// start_time to the original construction time and sets count to 2, each
// later call advances end_time and the counter. Time and every identifying
// field are left untouched, so Key is invariant under Increment.
func (b *baseEvent) Increment(t Timestamp) {
	if b.StartTime == nil {
		start := b.Time
		b.StartTime = &start
	}
	end := t
	b.EndTime = &end
	if b.Count == nil {
		count := uint64(2)
		b.Count = &count
	} else {
		*b.Count++
	}
}

// Timestamp returns the construction time; it is never mutated.
func (b *baseEvent) Timestamp() Timestamp {
	return b.Time
}

// hashTo mixes the identifying header fields. Time, StartTime, EndTime and
// Count are excluded so duplicates observed at different times share a key.
func (b *baseEvent) hashTo(d *xxhash.Digest) {
	hashUint(d, uint64(b.CategoryUID))
	hashUint(d, uint64(b.ClassUID))
	b.Metadata.hashTo(d)
	hashUint(d, uint64(b.SeverityID))
	hashUint(d, uint64(b.TypeUID))
}
