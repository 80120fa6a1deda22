package ocsf

import "github.com/cespare/xxhash/v2"

// ApplicationLifecycleActivityID is the activity enum of the
// application_lifecycle class.
type ApplicationLifecycleActivityID int

const (
	AppLifecycleUnknown ApplicationLifecycleActivityID = 0
	AppLifecycleInstall ApplicationLifecycleActivityID = 1
	AppLifecycleRemove  ApplicationLifecycleActivityID = 2
	AppLifecycleStart   ApplicationLifecycleActivityID = 3
	AppLifecycleStop    ApplicationLifecycleActivityID = 4
	AppLifecycleRestart ApplicationLifecycleActivityID = 5
	AppLifecycleOther   ApplicationLifecycleActivityID = 99
)

// ApplicationLifecycle records a state transition of the broker process or
// of an application it manages.
type ApplicationLifecycle struct {
	baseEvent
	ActivityID ApplicationLifecycleActivityID `json:"activity_id"`
	App        Product                        `json:"app"`
}

// NewApplicationLifecycle constructs an application_lifecycle event.
func NewApplicationLifecycle(
	activity ApplicationLifecycleActivityID,
	app Product,
	severity Severity,
	t Timestamp,
) *ApplicationLifecycle {
	return &ApplicationLifecycle{
		baseEvent:  newBaseEvent(CategoryApplicationActivity, ClassApplicationLifecycle, int(activity), severity, t),
		ActivityID: activity,
		App:        app,
	}
}

// Key fingerprints the activity and the application identity.
func (a *ApplicationLifecycle) Key() uint64 {
	d := xxhash.New()
	a.baseEvent.hashTo(d)
	hashUint(d, uint64(a.ActivityID))
	a.App.hashTo(d)
	return d.Sum64()
}
