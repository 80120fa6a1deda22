package ocsf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAPIActivity(t Timestamp, httpRequest *HTTPRequest) *APIActivity {
	return NewAPIActivity(
		APIActivityCreate,
		Actor{Authorizations: []AuthorizationResult{authzSuccess}, User: defaultUser},
		apiCreateTopic,
		brokerKafkaEndpoint,
		httpRequest,
		[]ResourceDetail{topicResource},
		SeverityInformational,
		clientKafkaEndpoint,
		StatusSuccess,
		t,
		testUnmapped,
	)
}

// TestAPIActivity_KeyIgnoresTime verifies that two events with identical
// identifying fields share a key regardless of construction time, and that
// Increment never changes the key.
func TestAPIActivity_KeyIgnoresTime(t *testing.T) {
	ev1 := testAPIActivity(1, testHTTPRequest())
	ev2 := testAPIActivity(2, testHTTPRequest())

	key := ev2.Key()
	ev2.Increment(2)
	require.Equal(t, key, ev2.Key())

	assert.Equal(t, ev1.Key(), ev2.Key())
}

// TestAPIActivity_KeyDistinguishesOptionalPresence verifies that omitting
// the optional http_request yields a different key: presence itself is part
// of the event identity.
func TestAPIActivity_KeyDistinguishesOptionalPresence(t *testing.T) {
	withRequest := testAPIActivity(3, testHTTPRequest())
	withoutRequest := testAPIActivity(4, nil)

	key := withoutRequest.Key()
	withoutRequest.Increment(4)
	require.Equal(t, key, withoutRequest.Key())

	assert.NotEqual(t, withRequest.Key(), withoutRequest.Key())
}

// TestApplicationLifecycle_Key verifies timestamp insensitivity and that a
// change in activity changes the key.
func TestApplicationLifecycle_Key(t *testing.T) {
	ev1 := NewApplicationLifecycle(AppLifecycleStart, testProduct(), SeverityInformational, 1)
	ev2 := NewApplicationLifecycle(AppLifecycleStart, testProduct(), SeverityInformational, 2)

	require.Equal(t, ev1.Key(), ev2.Key())

	key := ev1.Key()
	ev1.Increment(3)
	require.Equal(t, key, ev1.Key())

	stop := NewApplicationLifecycle(AppLifecycleStop, testProduct(), SeverityInformational, 1)
	assert.NotEqual(t, ev2.Key(), stop.Key())
}

// TestAuthentication_Key verifies timestamp insensitivity and that kerberos
// and a named SCRAM mechanism hash to different keys.
func TestAuthentication_Key(t *testing.T) {
	scram1 := NewAuthenticationWithProtocolName(
		AuthActivityLogon, "SCRAM-SHA256", brokerKafkaEndpoint,
		false, false, clientKafkaEndpoint, SeverityInformational, 1, defaultUser)
	scram2 := NewAuthenticationWithProtocolName(
		AuthActivityLogon, "SCRAM-SHA256", brokerKafkaEndpoint,
		false, false, clientKafkaEndpoint, SeverityInformational, 2, defaultUser)

	require.Equal(t, scram1.Key(), scram2.Key())

	key := scram1.Key()
	scram1.Increment(3)
	require.Equal(t, key, scram1.Key())

	kerberos := NewAuthentication(
		AuthActivityLogon, AuthProtocolKerberos, brokerKafkaEndpoint,
		false, false, clientKafkaEndpoint, SeverityInformational, 1, defaultUser)
	assert.NotEqual(t, kerberos.Key(), scram2.Key())
}

// TestBaseEvent_IncrementAlgebra verifies the counter algebra: after k
// increments from initial time t0, count == k+1, start_time == t0 and
// end_time is the latest increment time.
func TestBaseEvent_IncrementAlgebra(t *testing.T) {
	ev := NewApplicationLifecycle(AppLifecycleStart, testProduct(), SeverityInformational, 10)

	require.Nil(t, ev.Count)
	require.Nil(t, ev.StartTime)
	require.Nil(t, ev.EndTime)

	times := []Timestamp{11, 12, 13, 14}
	for _, ts := range times {
		ev.Increment(ts)
	}

	require.NotNil(t, ev.Count)
	require.NotNil(t, ev.StartTime)
	require.NotNil(t, ev.EndTime)
	assert.Equal(t, uint64(len(times)+1), *ev.Count)
	assert.Equal(t, Timestamp(10), *ev.StartTime)
	assert.Equal(t, Timestamp(14), *ev.EndTime)
	assert.Equal(t, Timestamp(10), ev.Time, "construction time is never mutated")
}

// TestNetworkEndpoint_EmptyIntermediateIPs verifies that a nil and an empty
// peer list hash identically: both mean "no peers".
func TestNetworkEndpoint_EmptyIntermediateIPs(t *testing.T) {
	withNil := NewAuthentication(
		AuthActivityLogon, AuthProtocolKerberos,
		NetworkEndpoint{IP: "1.1.1.1", Port: 9092},
		false, false, clientKafkaEndpoint, SeverityInformational, 1, defaultUser)
	withEmpty := NewAuthentication(
		AuthActivityLogon, AuthProtocolKerberos,
		NetworkEndpoint{IntermediateIPs: []string{}, IP: "1.1.1.1", Port: 9092},
		false, false, clientKafkaEndpoint, SeverityInformational, 1, defaultUser)

	assert.Equal(t, withNil.Key(), withEmpty.Key())
}
