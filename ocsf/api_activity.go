package ocsf

import "github.com/cespare/xxhash/v2"

// APIActivityID is the activity enum of the api_activity class.
type APIActivityID int

const (
	APIActivityUnknown APIActivityID = 0
	APIActivityCreate  APIActivityID = 1
	APIActivityRead    APIActivityID = 2
	APIActivityUpdate  APIActivityID = 3
	APIActivityDelete  APIActivityID = 4
	APIActivityOther   APIActivityID = 99
)

// APIActivity records one authorized (or denied) API call against the
// broker: who called, what operation, over which connection, touching
// which resources.
type APIActivity struct {
	baseEvent
	ActivityID  APIActivityID       `json:"activity_id"`
	Actor       Actor               `json:"actor"`
	API         API                 `json:"api"`
	DstEndpoint NetworkEndpoint     `json:"dst_endpoint"`
	HTTPRequest *HTTPRequest        `json:"http_request,omitempty"`
	Resources   []ResourceDetail    `json:"resources"`
	SrcEndpoint NetworkEndpoint     `json:"src_endpoint"`
	StatusID    StatusID            `json:"status_id"`
	Unmapped    APIActivityUnmapped `json:"unmapped"`
}

// NewAPIActivity constructs an api_activity event. httpRequest may be nil
// when the call did not arrive over the admin HTTP listener.
func NewAPIActivity(
	activity APIActivityID,
	actor Actor,
	api API,
	dst NetworkEndpoint,
	httpRequest *HTTPRequest,
	resources []ResourceDetail,
	severity Severity,
	src NetworkEndpoint,
	status StatusID,
	t Timestamp,
	unmapped APIActivityUnmapped,
) *APIActivity {
	if resources == nil {
		resources = []ResourceDetail{}
	}
	return &APIActivity{
		baseEvent:   newBaseEvent(CategoryApplicationActivity, ClassAPIActivity, int(activity), severity, t),
		ActivityID:  activity,
		Actor:       actor,
		API:         api,
		DstEndpoint: dst,
		HTTPRequest: httpRequest,
		Resources:   resources,
		SrcEndpoint: src,
		StatusID:    status,
		Unmapped:    unmapped,
	}
}

// Key fingerprints every identifying field in declaration order. The
// presence of the optional http_request is part of the identity.
func (a *APIActivity) Key() uint64 {
	d := xxhash.New()
	a.baseEvent.hashTo(d)
	hashUint(d, uint64(a.ActivityID))
	a.Actor.hashTo(d)
	a.API.hashTo(d)
	a.DstEndpoint.hashTo(d)
	hashPresence(d, a.HTTPRequest != nil)
	if a.HTTPRequest != nil {
		a.HTTPRequest.hashTo(d)
	}
	hashUint(d, uint64(len(a.Resources)))
	for i := range a.Resources {
		a.Resources[i].hashTo(d)
	}
	a.SrcEndpoint.hashTo(d)
	hashUint(d, uint64(a.StatusID))
	a.Unmapped.hashTo(d)
	return d.Sum64()
}
