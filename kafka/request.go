// Package kafka implements the broker-facing request handlers that feed
// the audit emission path. Wire decoding, ACL evaluation and the group
// coordination state machine live behind interfaces: this package only
// splits a request into its dispatched and response stages and emits the
// matching audit events.
package kafka

import (
	"context"

	"kaudit/ocsf"
)

// ErrorCode is a Kafka protocol error code.
type ErrorCode int16

const (
	ErrorNone                     ErrorCode = 0
	ErrorGroupAuthorizationFailed ErrorCode = 30
)

// ACLOperation is the operation class an ACL check authorizes.
type ACLOperation int

const (
	ACLOperationUnknown ACLOperation = iota
	ACLOperationRead
	ACLOperationWrite
	ACLOperationCreate
	ACLOperationDelete
	ACLOperationDescribe
)

// RequestHeader is the decoded header of a broker protocol request.
type RequestHeader struct {
	Version  int16
	ClientID *string
}

// JoinGroupRequest is a decoded join_group request. Decoding happens
// upstream; the handler only stamps client identity onto it.
type JoinGroupRequest struct {
	Version            int16
	ClientID           string
	ClientHost         string
	GroupID            string
	MemberID           string
	GroupInstanceID    *string
	ProtocolType       string
	SessionTimeoutMs   int32
	RebalanceTimeoutMs int32
}

// JoinGroupResponse is the protocol reply produced by the coordinator, or
// synthesized locally on authorization failure.
type JoinGroupResponse struct {
	ErrorCode    ErrorCode
	GenerationID int32
	ProtocolName string
	LeaderID     string
	MemberID     string
}

// NewJoinGroupError builds a locally synthesized failure response.
func NewJoinGroupError(code ErrorCode, memberID string) *JoinGroupResponse {
	return &JoinGroupResponse{ErrorCode: code, MemberID: memberID}
}

// JoinGroupStages is the coordinator's view of a routed request: Dispatched
// completes once the request is admitted into the group's ordered stream,
// Result completes with the eventual reply.
type JoinGroupStages struct {
	Dispatched <-chan struct{}
	Result     <-chan *JoinGroupResponse
}

// GroupRouter routes requests to the sharded group coordinator.
type GroupRouter interface {
	JoinGroup(ctx context.Context, req *JoinGroupRequest) JoinGroupStages
}

// RequestContext is the per-request view the transport layer hands to a
// handler: decoded header, connection identity, the authenticated
// principal, an authorization probe and the group router.
type RequestContext interface {
	Context() context.Context
	Header() RequestHeader
	ClientHost() string
	Principal() ocsf.User
	Authorized(op ACLOperation, resource string) bool
	Groups() GroupRouter
}

// ProcessResultStages is the handler's two-stage result. Dispatched
// completes once the request is admitted to the coordinator; for requests
// sharing a group, dispatched stages complete in the same total order the
// responses will be produced in. Response completes with the protocol
// reply, or is closed without a value when the request context is
// cancelled after admission.
type ProcessResultStages struct {
	Dispatched <-chan struct{}
	Response   <-chan *JoinGroupResponse
}

// singleStage wraps an already-known response: both stages complete
// synchronously and no coordinator work is scheduled.
func singleStage(resp *JoinGroupResponse) ProcessResultStages {
	dispatched := make(chan struct{})
	close(dispatched)
	response := make(chan *JoinGroupResponse, 1)
	response <- resp
	close(response)
	return ProcessResultStages{Dispatched: dispatched, Response: response}
}
