package ocsf

import "github.com/cespare/xxhash/v2"

// AuthenticationActivityID is the activity enum of the authentication class.
type AuthenticationActivityID int

const (
	AuthActivityUnknown              AuthenticationActivityID = 0
	AuthActivityLogon                AuthenticationActivityID = 1
	AuthActivityLogoff               AuthenticationActivityID = 2
	AuthActivityAuthenticationTicket AuthenticationActivityID = 3
	AuthActivityServiceTicket        AuthenticationActivityID = 4
	AuthActivityOther                AuthenticationActivityID = 99
)

// Authentication records a logon or logoff attempt against the broker.
//
// The protocol is reported either by its OCSF numeric id, or, for
// mechanisms the taxonomy has no id for (SASL/SCRAM and friends), as a
// free-form auth_protocol string with auth_protocol_id pinned to Other.
// The string is present if and only if the id is AuthProtocolOther.
type Authentication struct {
	baseEvent
	ActivityID     AuthenticationActivityID `json:"activity_id"`
	AuthProtocol   string                   `json:"auth_protocol,omitempty"`
	AuthProtocolID AuthProtocolID           `json:"auth_protocol_id"`
	DstEndpoint    NetworkEndpoint          `json:"dst_endpoint"`
	IsCleartext    bool                     `json:"is_cleartext"`
	MFA            bool                     `json:"mfa"`
	SrcEndpoint    NetworkEndpoint          `json:"src_endpoint"`
	User           User                     `json:"user"`
}

// NewAuthentication constructs an authentication event for a protocol with
// a known OCSF id.
func NewAuthentication(
	activity AuthenticationActivityID,
	protocol AuthProtocolID,
	dst NetworkEndpoint,
	cleartext bool,
	mfa bool,
	src NetworkEndpoint,
	severity Severity,
	t Timestamp,
	user User,
) *Authentication {
	return &Authentication{
		baseEvent:      newBaseEvent(CategoryIAM, ClassAuthentication, int(activity), severity, t),
		ActivityID:     activity,
		AuthProtocolID: protocol,
		DstEndpoint:    dst,
		IsCleartext:    cleartext,
		MFA:            mfa,
		SrcEndpoint:    src,
		User:           user,
	}
}

// NewAuthenticationWithProtocolName constructs an authentication event for
// a mechanism named outside the OCSF id space; the id is fixed to Other.
func NewAuthenticationWithProtocolName(
	activity AuthenticationActivityID,
	protocol string,
	dst NetworkEndpoint,
	cleartext bool,
	mfa bool,
	src NetworkEndpoint,
	severity Severity,
	t Timestamp,
	user User,
) *Authentication {
	ev := NewAuthentication(activity, AuthProtocolOther, dst, cleartext, mfa, src, severity, t, user)
	ev.AuthProtocol = protocol
	return ev
}

// Key fingerprints every identifying field in declaration order.
func (a *Authentication) Key() uint64 {
	d := xxhash.New()
	a.baseEvent.hashTo(d)
	hashUint(d, uint64(a.ActivityID))
	hashPresence(d, a.AuthProtocol != "")
	hashString(d, a.AuthProtocol)
	hashUint(d, uint64(a.AuthProtocolID))
	a.DstEndpoint.hashTo(d)
	hashBool(d, a.IsCleartext)
	hashBool(d, a.MFA)
	a.SrcEndpoint.hashTo(d)
	a.User.hashTo(d)
	return d.Sum64()
}
