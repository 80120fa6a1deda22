package kafka

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kaudit/metrics"
	"kaudit/ocsf"
)

// Auditor accepts audit events from request handlers. Satisfied by
// *audit.Queue.
type Auditor interface {
	Submit(ev ocsf.Event) bool
}

// JoinGroupHandlerConfig carries the broker-side identity stamped on the
// audit events this handler emits.
type JoinGroupHandlerConfig struct {
	// LocalEndpoint is the advertised listener the request arrived on.
	LocalEndpoint ocsf.NetworkEndpoint
	// ShardID is the execution shard handling the request.
	ShardID uint32
}

// JoinGroupHandler handles join_group requests in two stages: admission to
// the group coordinator (dispatched) and the eventual protocol reply
// (response). Keeping the stages separate preserves per-group request
// ordering under pipelining.
type JoinGroupHandler struct {
	config  JoinGroupHandlerConfig
	auditor Auditor
	logger  *zap.SugaredLogger
}

// NewJoinGroupHandler creates a handler. auditor may be nil when auditing
// is disabled; a nil logger defaults to a no-op logger.
func NewJoinGroupHandler(config JoinGroupHandlerConfig, auditor Auditor, logger *zap.SugaredLogger) *JoinGroupHandler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &JoinGroupHandler{
		config:  config,
		auditor: auditor,
		logger:  logger,
	}
}

// Handle stamps client identity onto the decoded request, checks group
// read authorization and routes the request to the coordinator.
//
// Authorization denial short-circuits: both stages complete synchronously
// with a group_authorization_failed response and the router is never
// consulted. Otherwise the router's dispatched stage is passed through
// untouched, so admission order is exactly the router's order, and the
// response stage forwards the coordinator reply or closes empty if the
// request context is cancelled after admission.
func (h *JoinGroupHandler) Handle(rctx RequestContext, req *JoinGroupRequest) ProcessResultStages {
	if clientID := rctx.Header().ClientID; clientID != nil {
		req.ClientID = *clientID
	}
	req.Version = rctx.Header().Version
	req.ClientHost = rctx.ClientHost()

	requestID := uuid.New().String()
	h.logger.Debugw("Handling join_group request",
		"request_id", requestID,
		"group_id", req.GroupID,
		"member_id", req.MemberID,
		"client_id", req.ClientID,
		"client_host", req.ClientHost)

	if !rctx.Authorized(ACLOperationRead, req.GroupID) {
		metrics.JoinGroupRequests.WithLabelValues("unauthorized").Inc()
		h.audit(rctx, req, ocsf.StatusFailure)
		return singleStage(NewJoinGroupError(ErrorGroupAuthorizationFailed, req.MemberID))
	}

	h.audit(rctx, req, ocsf.StatusSuccess)

	stages := rctx.Groups().JoinGroup(rctx.Context(), req)

	response := make(chan *JoinGroupResponse, 1)
	go func() {
		defer close(response)
		select {
		case resp, ok := <-stages.Result:
			if !ok {
				metrics.JoinGroupRequests.WithLabelValues("abandoned").Inc()
				return
			}
			metrics.JoinGroupRequests.WithLabelValues("completed").Inc()
			response <- resp
		case <-rctx.Context().Done():
			metrics.JoinGroupRequests.WithLabelValues("cancelled").Inc()
			h.logger.Debugw("join_group request cancelled after dispatch",
				"request_id", requestID,
				"group_id", req.GroupID)
		}
	}()

	return ProcessResultStages{Dispatched: stages.Dispatched, Response: response}
}

// audit emits the api_activity record for the request outcome.
func (h *JoinGroupHandler) audit(rctx RequestContext, req *JoinGroupRequest, status ocsf.StatusID) {
	if h.auditor == nil {
		return
	}

	decision := "authorized"
	if status != ocsf.StatusSuccess {
		decision = "denied"
	}

	ev := ocsf.NewAPIActivity(
		ocsf.APIActivityRead,
		ocsf.Actor{
			Authorizations: []ocsf.AuthorizationResult{{
				Decision: decision,
				Policy:   ocsf.Policy{Desc: "group read authorization", Name: "acl_authorization"},
			}},
			User: rctx.Principal(),
		},
		ocsf.API{Operation: "join_group"},
		h.config.LocalEndpoint,
		nil,
		[]ocsf.ResourceDetail{{Name: req.GroupID, Type: "group"}},
		ocsf.SeverityInformational,
		ocsf.NetworkEndpoint{IP: req.ClientHost, Name: req.ClientID},
		status,
		ocsf.Timestamp(time.Now().UnixMilli()),
		ocsf.APIActivityUnmapped{ShardID: h.config.ShardID},
	)
	h.auditor.Submit(ev)
}
