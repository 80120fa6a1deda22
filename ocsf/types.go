package ocsf

import "github.com/cespare/xxhash/v2"

// The structs below declare their fields in canonical serialization order.
// The JSON emitted for an event is compared byte-for-byte (after whitespace
// minification) against reference records downstream, so the declaration
// order is part of the contract and must not be rearranged.

// UserTypeID classifies the account behind an authenticated principal.
type UserTypeID int

const (
	UserTypeUnknown UserTypeID = 0
	UserTypeUser    UserTypeID = 1
	UserTypeAdmin   UserTypeID = 2
	UserTypeSystem  UserTypeID = 3
	UserTypeOther   UserTypeID = 99
)

// Severity ranks how concerning an event is to an operator.
type Severity int

const (
	SeverityUnknown       Severity = 0
	SeverityInformational Severity = 1
	SeverityLow           Severity = 2
	SeverityMedium        Severity = 3
	SeverityHigh          Severity = 4
	SeverityCritical      Severity = 5
	SeverityFatal         Severity = 6
	SeverityOther         Severity = 99
)

// StatusID reports the outcome of an audited operation.
type StatusID int

const (
	StatusUnknown StatusID = 0
	StatusSuccess StatusID = 1
	StatusFailure StatusID = 2
	StatusOther   StatusID = 99
)

// AuthProtocolID identifies the authentication protocol in use.
// The numeric assignments follow the OCSF authentication class.
type AuthProtocolID int

const (
	AuthProtocolUnknown  AuthProtocolID = 0
	AuthProtocolNTLM     AuthProtocolID = 1
	AuthProtocolKerberos AuthProtocolID = 2
	AuthProtocolDigest   AuthProtocolID = 3
	AuthProtocolOpenID   AuthProtocolID = 4
	AuthProtocolSAML     AuthProtocolID = 5
	AuthProtocolOAuth2   AuthProtocolID = 6
	AuthProtocolPAP      AuthProtocolID = 7
	AuthProtocolCHAP     AuthProtocolID = 8
	AuthProtocolEAP      AuthProtocolID = 9
	AuthProtocolRADIUS   AuthProtocolID = 10
	AuthProtocolOther    AuthProtocolID = 99
)

// User identifies the principal an event is attributed to.
type User struct {
	CredentialUID string     `json:"credential_uid"`
	Domain        string     `json:"domain"`
	Name          string     `json:"name"`
	TypeID        UserTypeID `json:"type_id"`
}

func (u *User) hashTo(d *xxhash.Digest) {
	hashString(d, u.CredentialUID)
	hashString(d, u.Domain)
	hashString(d, u.Name)
	hashUint(d, uint64(u.TypeID))
}

// Policy names the rule set an authorization decision was made under.
type Policy struct {
	Desc string `json:"desc"`
	Name string `json:"name"`
}

func (p *Policy) hashTo(d *xxhash.Digest) {
	hashString(d, p.Desc)
	hashString(d, p.Name)
}

// AuthorizationResult records one authorization decision for an actor.
type AuthorizationResult struct {
	Decision string `json:"decision"`
	Policy   Policy `json:"policy"`
}

func (a *AuthorizationResult) hashTo(d *xxhash.Digest) {
	hashString(d, a.Decision)
	a.Policy.hashTo(d)
}

// Actor ties a user to the authorization decisions made on their behalf.
type Actor struct {
	Authorizations []AuthorizationResult `json:"authorizations"`
	User           User                  `json:"user"`
}

func (a *Actor) hashTo(d *xxhash.Digest) {
	hashUint(d, uint64(len(a.Authorizations)))
	for i := range a.Authorizations {
		a.Authorizations[i].hashTo(d)
	}
	a.User.hashTo(d)
}

// APIService names the service an API operation was routed to.
type APIService struct {
	Name string `json:"name"`
}

// APIResponse carries the outcome details of an API operation.
type APIResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

// API describes the operation an api_activity event records.
type API struct {
	Operation string       `json:"operation"`
	Response  *APIResponse `json:"response,omitempty"`
	Service   *APIService  `json:"service,omitempty"`
}

func (a *API) hashTo(d *xxhash.Digest) {
	hashString(d, a.Operation)
	hashPresence(d, a.Response != nil)
	if a.Response != nil {
		hashUint(d, uint64(a.Response.Code))
		hashString(d, a.Response.Message)
	}
	hashPresence(d, a.Service != nil)
	if a.Service != nil {
		hashString(d, a.Service.Name)
	}
}

// ResourceDetail names one resource touched by an operation.
type ResourceDetail struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (r *ResourceDetail) hashTo(d *xxhash.Digest) {
	hashString(d, r.Name)
	hashString(d, r.Type)
}

// NetworkEndpoint is one side of a connection. The address is flattened
// into ip and port; optional descriptive fields are omitted when unset.
type NetworkEndpoint struct {
	IntermediateIPs []string `json:"intermediate_ips,omitempty"`
	IP              string   `json:"ip"`
	Name            string   `json:"name,omitempty"`
	Port            uint16   `json:"port"`
	SvcName         string   `json:"svc_name,omitempty"`
	UID             string   `json:"uid,omitempty"`
}

func (n *NetworkEndpoint) hashTo(d *xxhash.Digest) {
	hashStrings(d, n.IntermediateIPs)
	hashString(d, n.IP)
	hashString(d, n.Name)
	hashUint(d, uint64(n.Port))
	hashString(d, n.SvcName)
	hashString(d, n.UID)
}

// HTTPHeader is a single request header.
type HTTPHeader struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// URL is the decomposed target of an HTTP request.
type URL struct {
	Hostname  string `json:"hostname"`
	Path      string `json:"path"`
	Port      uint16 `json:"port"`
	Scheme    string `json:"scheme"`
	URLString string `json:"url_string"`
}

func (u *URL) hashTo(d *xxhash.Digest) {
	hashString(d, u.Hostname)
	hashString(d, u.Path)
	hashUint(d, uint64(u.Port))
	hashString(d, u.Scheme)
	hashString(d, u.URLString)
}

// HTTPRequest captures an admin API request attached to an api_activity.
type HTTPRequest struct {
	HTTPHeaders []HTTPHeader `json:"http_headers"`
	HTTPMethod  string       `json:"http_method"`
	URL         URL          `json:"url"`
	UserAgent   string       `json:"user_agent"`
	Version     string       `json:"version"`
}

func (h *HTTPRequest) hashTo(d *xxhash.Digest) {
	hashUint(d, uint64(len(h.HTTPHeaders)))
	for i := range h.HTTPHeaders {
		hashString(d, h.HTTPHeaders[i].Name)
		hashString(d, h.HTTPHeaders[i].Value)
	}
	hashString(d, h.HTTPMethod)
	h.URL.hashTo(d)
	hashString(d, h.UserAgent)
	hashString(d, h.Version)
}

// Product identifies a piece of software, either the emitting broker
// (metadata, application_lifecycle) or a managed application.
type Product struct {
	Name       string `json:"name"`
	VendorName string `json:"vendor_name"`
	Version    string `json:"version"`
}

func (p *Product) hashTo(d *xxhash.Digest) {
	hashString(d, p.Name)
	hashString(d, p.VendorName)
	hashString(d, p.Version)
}

// Metadata is the process-wide header block stamped on every event.
type Metadata struct {
	Product Product `json:"product"`
	Version string  `json:"version"`
}

func (m *Metadata) hashTo(d *xxhash.Digest) {
	m.Product.hashTo(d)
	hashString(d, m.Version)
}

// ACLAuthorization is the broker-native ACL match behind an authorization
// decision, passed through outside the OCSF taxonomy.
type ACLAuthorization struct {
	Host           string `json:"host"`
	Op             string `json:"op"`
	PermissionType string `json:"permission_type"`
	Principal      string `json:"principal"`
}

// UnmappedResource is the broker-native resource pattern the ACL matched.
type UnmappedResource struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
	Type    string `json:"type"`
}

// AuthorizationMetadata groups the raw ACL details for an api_activity.
type AuthorizationMetadata struct {
	ACLAuthorization ACLAuthorization `json:"acl_authorization"`
	Resource         UnmappedResource `json:"resource"`
}

// APIActivityUnmapped carries platform-specific fields that have no OCSF
// mapping. shard_id deliberately precedes authorization_metadata in the
// canonical order.
type APIActivityUnmapped struct {
	ShardID               uint32                 `json:"shard_id"`
	AuthorizationMetadata *AuthorizationMetadata `json:"authorization_metadata,omitempty"`
}

func (u *APIActivityUnmapped) hashTo(d *xxhash.Digest) {
	hashUint(d, uint64(u.ShardID))
	hashPresence(d, u.AuthorizationMetadata != nil)
	if m := u.AuthorizationMetadata; m != nil {
		hashString(d, m.ACLAuthorization.Host)
		hashString(d, m.ACLAuthorization.Op)
		hashString(d, m.ACLAuthorization.PermissionType)
		hashString(d, m.ACLAuthorization.Principal)
		hashString(d, m.Resource.Name)
		hashString(d, m.Resource.Pattern)
		hashString(d, m.Resource.Type)
	}
}
