package ocsf

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"kaudit/version"
)

// Shared fixtures mirroring the reference records the serializer is
// contractually compared against.

var defaultUser = User{
	CredentialUID: "none",
	Domain:        "redpanda.com",
	Name:          "redpanda-user",
	TypeID:        UserTypeUser,
}

const defaultUserJSON = `{
	"credential_uid": "none",
	"domain": "redpanda.com",
	"name": "redpanda-user",
	"type_id": 1
}`

var authzSuccess = AuthorizationResult{
	Decision: "authorized",
	Policy:   Policy{Desc: "some description", Name: "acl_authorization"},
}

const authzSuccessJSON = `{
	"decision": "authorized",
	"policy": {
		"desc": "some description",
		"name": "acl_authorization"
	}
}`

var apiCreateTopic = API{Operation: "create_topic"}

const apiCreateTopicJSON = `{"operation": "create_topic"}`

var brokerKafkaEndpoint = NetworkEndpoint{
	IP:      "1.1.1.1",
	Port:    9092,
	SvcName: "kafka",
	UID:     "cluster1",
}

const brokerKafkaEndpointJSON = `{
	"ip": "1.1.1.1",
	"port": 9092,
	"svc_name": "kafka",
	"uid": "cluster1"
}`

var topicResource = ResourceDetail{Name: "topic1", Type: "topic"}

const topicResourceJSON = `{"name": "topic1", "type": "topic"}`

var clientKafkaEndpoint = NetworkEndpoint{
	IntermediateIPs: []string{"2.2.2.2", "3.3.3.3"},
	IP:              "1.1.1.2",
	Name:            "rpk",
	Port:            9092,
}

const clientKafkaEndpointJSON = `{
	"intermediate_ips": ["2.2.2.2", "3.3.3.3"],
	"ip": "1.1.1.2",
	"name": "rpk",
	"port": 9092
}`

var testUnmapped = APIActivityUnmapped{
	ShardID: 1,
	AuthorizationMetadata: &AuthorizationMetadata{
		ACLAuthorization: ACLAuthorization{
			Host:           "*",
			Op:             "CREATE",
			PermissionType: "ALLOW",
			Principal:      "User:redpanda-user",
		},
		Resource: UnmappedResource{
			Name:    "topic1",
			Pattern: "LITERAL",
			Type:    "topic",
		},
	},
}

const testUnmappedJSON = `{
	"shard_id": 1,
	"authorization_metadata": {
		"acl_authorization": {
			"host": "*",
			"op": "CREATE",
			"permission_type": "ALLOW",
			"principal": "User:redpanda-user"
		},
		"resource": {
			"name": "topic1",
			"pattern": "LITERAL",
			"type": "topic"
		}
	}
}`

func testHTTPRequest() *HTTPRequest {
	return &HTTPRequest{
		HTTPHeaders: []HTTPHeader{{Name: "Accept-Encoding", Value: "application/json"}},
		HTTPMethod:  "GET",
		URL: URL{
			Hostname:  "127.0.0.1:9644",
			Path:      "/v1/cluster_config",
			Port:      9644,
			Scheme:    "http",
			URLString: "http://127.0.0.1:9644/v1/cluster_config",
		},
		UserAgent: "netscape",
		Version:   "1.1",
	}
}

const testHTTPRequestJSON = `{
	"http_headers": [{"name": "Accept-Encoding", "value": "application/json"}],
	"http_method": "GET",
	"url": {
		"hostname": "127.0.0.1:9644",
		"path": "/v1/cluster_config",
		"port": 9644,
		"scheme": "http",
		"url_string": "http://127.0.0.1:9644/v1/cluster_config"
	},
	"user_agent": "netscape",
	"version": "1.1"
}`

func testProduct() Product {
	return Product{
		Name:       "test-product",
		VendorName: VendorName,
		Version:    version.Build(),
	}
}

func testProductJSON() string {
	return `{
		"name": "test-product",
		"vendor_name": "` + VendorName + `",
		"version": "` + version.Build() + `"
	}`
}

func metadataJSON() string {
	return `{
		"product": {
			"name": "Redpanda",
			"vendor_name": "Redpanda Data, Inc.",
			"version": "` + version.Build() + `"
		},
		"version": "1.0.0"
	}`
}

// minify strips insignificant whitespace so references can be written
// readably while the comparison stays byte-for-byte.
func minify(t *testing.T, s string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.Compact(&buf, []byte(s)))
	return buf.String()
}

// serialize renders an event and asserts the infallibility contract.
func serialize(t *testing.T, v any) string {
	t.Helper()
	b, err := Marshal(v)
	require.NoError(t, err)
	return string(b)
}
