package mesh

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aozyumenko/go-mesh/access"
	"github.com/aozyumenko/go-mesh/messages"
)

func onOffRequest(node Address) Request {
	return Request{
		Destination: node,
		AppIndex:    testAppIndex,
		Opcode:      messages.GenericOnOffGet,
		Params:      access.Params{},
	}
}

func onOffFilter(node Address) Filter {
	return Filter{Source: node, AppIndex: testAppIndex, Opcode: messages.GenericOnOffStatus}
}

func TestBulkQueryAllRespond(t *testing.T) {
	transport := newMockTransport()
	transport.onSend = func(pdu sentPDU) {
		transport.inject(pdu.dst, pdu.appIndex, testClientAddr,
			mustEncode(messages.GenericOnOffStatus, access.Params{"present_onoff": uint64(pdu.dst) % 2}))
	}
	e := newTestElement(t, transport)

	nodes := []Address{testNodeA, testNodeB, testNodeC}
	results, err := e.BulkQuery(context.Background(), nodes, onOffRequest, onOffFilter,
		WithTimeout(time.Second), WithSendInterval(time.Millisecond))
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, node := range nodes {
		msg := results[node]
		require.NotNil(t, msg, "node %v", node)
		assert.Equal(t, uint64(node)%2, msg.Params["present_onoff"])
	}
}

func TestBulkQueryPartialResponse(t *testing.T) {
	transport := newMockTransport()
	transport.onSend = func(pdu sentPDU) {
		// Only one node answers; the others stay silent.
		if pdu.dst == testNodeB {
			transport.inject(pdu.dst, pdu.appIndex, testClientAddr,
				mustEncode(messages.GenericOnOffStatus, access.Params{"present_onoff": 1}))
		}
	}
	e := newTestElement(t, transport)

	nodes := []Address{testNodeA, testNodeB, testNodeC}
	results, err := e.BulkQuery(context.Background(), nodes, onOffRequest, onOffFilter,
		WithTimeout(100*time.Millisecond), WithSendInterval(time.Millisecond))
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Nil(t, results[testNodeA])
	require.NotNil(t, results[testNodeB])
	assert.Equal(t, uint64(1), results[testNodeB].Params["present_onoff"])
	assert.Nil(t, results[testNodeC])
}

func TestBulkQuerySendFailure(t *testing.T) {
	sendFault := errors.New("radio gone")
	transport := newMockTransport()
	transport.sendErr = func(dst Address) error {
		if dst == testNodeB {
			return sendFault
		}
		return nil
	}
	transport.onSend = func(pdu sentPDU) {
		transport.inject(pdu.dst, pdu.appIndex, testClientAddr,
			mustEncode(messages.GenericOnOffStatus, access.Params{"present_onoff": 0}))
	}
	e := newTestElement(t, transport)

	nodes := []Address{testNodeA, testNodeB, testNodeC}
	results, err := e.BulkQuery(context.Background(), nodes, onOffRequest, onOffFilter,
		WithTimeout(time.Second), WithSendInterval(time.Millisecond))
	require.NoError(t, err)

	require.NotNil(t, results[testNodeA])
	assert.Nil(t, results[testNodeB])
	require.NotNil(t, results[testNodeC])
}

func TestBulkQueryDuplicateNodes(t *testing.T) {
	transport := newMockTransport()
	transport.onSend = func(pdu sentPDU) {
		transport.inject(pdu.dst, pdu.appIndex, testClientAddr,
			mustEncode(messages.GenericOnOffStatus, access.Params{"present_onoff": 1}))
	}
	e := newTestElement(t, transport)

	results, err := e.BulkQuery(context.Background(),
		[]Address{testNodeA, testNodeB, testNodeA}, onOffRequest, onOffFilter,
		WithTimeout(time.Second), WithSendInterval(time.Millisecond))
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.NotNil(t, results[testNodeA])
	require.NotNil(t, results[testNodeB])

	// One send per distinct node, and no expectation left behind.
	assert.Len(t, transport.sentPDUs(), 2)
	assert.Zero(t, e.expectations.Size())
}

func TestBulkQueryEmptyNodeList(t *testing.T) {
	transport := newMockTransport()
	e := newTestElement(t, transport)

	results, err := e.BulkQuery(context.Background(), nil, onOffRequest, onOffFilter)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, transport.sentPDUs())
}

func TestBulkQueryContextCancelled(t *testing.T) {
	transport := newMockTransport()
	e := newTestElement(t, transport)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.BulkQuery(ctx, []Address{testNodeA}, onOffRequest, onOffFilter)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRepeat(t *testing.T) {
	transport := newMockTransport()
	e := newTestElement(t, transport)

	var attempts []int
	err := e.Repeat(context.Background(), func(attempt int) error {
		attempts = append(attempts, attempt)
		return nil
	}, WithRetransmissions(4), WithSendInterval(5*time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, attempts)
}

func TestRepeatAbortsOnError(t *testing.T) {
	transport := newMockTransport()
	e := newTestElement(t, transport)

	sendFault := errors.New("radio gone")
	calls := 0
	err := e.Repeat(context.Background(), func(int) error {
		calls++
		if calls == 2 {
			return sendFault
		}
		return nil
	}, WithRetransmissions(5), WithSendInterval(time.Millisecond))
	require.ErrorIs(t, err, sendFault)
	assert.Equal(t, 2, calls)
}

func TestRepeatContextCancelled(t *testing.T) {
	transport := newMockTransport()
	e := newTestElement(t, transport)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := e.Repeat(ctx, func(int) error {
		calls++
		cancel()
		return nil
	}, WithRetransmissions(10), WithSendInterval(time.Millisecond))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestSimpleSetUnackSharedTIDAndDelayLaw(t *testing.T) {
	transport := newMockTransport()
	e := newTestElement(t, transport)
	client := NewClient(e)

	err := client.SimpleSetUnack(context.Background(), testNodeA, testAppIndex,
		messages.GenericOnOffSetUnacknowledged,
		access.Params{"onoff": 1}, true, true,
		WithRetransmissions(4),
		WithSendInterval(40*time.Millisecond),
		WithDelay(100*time.Millisecond))
	require.NoError(t, err)

	sent := transport.sentPDUs()
	require.Len(t, sent, 4)

	registry := messages.NewRegistry()
	wantDelays := []float64{0.1, 0.06, 0.02, 0}

	var tids []uint64
	for i, pdu := range sent {
		msg, err := registry.Decode(pdu.data)
		require.NoError(t, err)
		assert.Equal(t, messages.GenericOnOffSetUnacknowledged, msg.Opcode)
		assert.Equal(t, uint64(1), msg.Params["onoff"])

		// The transmitted delay shrinks by one send interval per attempt and
		// never goes negative.
		assert.InDelta(t, wantDelays[i], msg.Params["delay"], 1e-9, "attempt %d", i)

		tid, ok := msg.Params.Uint("tid")
		require.True(t, ok)
		tids = append(tids, tid)
	}

	// All retransmissions of one action carry the same transaction id.
	for _, tid := range tids[1:] {
		assert.Equal(t, tids[0], tid)
	}
}

func TestSimpleSetUnackConsecutiveActionsDiffer(t *testing.T) {
	transport := newMockTransport()
	e := newTestElement(t, transport)
	client := NewClient(e)

	opts := []CallOption{WithRetransmissions(2), WithSendInterval(time.Millisecond)}
	for i := 0; i < 2; i++ {
		err := client.SimpleSetUnack(context.Background(), testNodeA, testAppIndex,
			messages.GenericOnOffSetUnacknowledged,
			access.Params{"onoff": 1}, true, true, opts...)
		require.NoError(t, err)
	}

	sent := transport.sentPDUs()
	require.Len(t, sent, 4)

	registry := messages.NewRegistry()
	tid := func(i int) uint64 {
		msg, err := registry.Decode(sent[i].data)
		require.NoError(t, err)
		v, _ := msg.Params.Uint("tid")
		return v
	}

	assert.Equal(t, tid(0), tid(1))
	assert.Equal(t, tid(2), tid(3))
	assert.NotEqual(t, tid(0), tid(2))
}

func TestSimpleSetPerNodeTID(t *testing.T) {
	transport := newMockTransport()
	transport.onSend = func(pdu sentPDU) {
		transport.inject(pdu.dst, pdu.appIndex, testClientAddr,
			mustEncode(messages.GenericOnOffStatus, access.Params{"present_onoff": 1}))
	}
	e := newTestElement(t, transport)
	client := NewClient(e)

	statuses, err := client.SimpleSet(context.Background(), []Address{testNodeA, testNodeB}, testAppIndex,
		messages.GenericOnOffSet, messages.GenericOnOffStatus,
		access.Params{"onoff": 1}, true,
		WithTimeout(time.Second), WithSendInterval(time.Millisecond))
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	require.NotNil(t, statuses[testNodeA])
	require.NotNil(t, statuses[testNodeB])

	sent := transport.sentPDUs()
	require.Len(t, sent, 2)

	registry := messages.NewRegistry()
	first, err := registry.Decode(sent[0].data)
	require.NoError(t, err)
	second, err := registry.Decode(sent[1].data)
	require.NoError(t, err)
	assert.NotEqual(t, first.Params["tid"], second.Params["tid"])
}

func TestSimpleGetAbsentNodeMapsToNil(t *testing.T) {
	transport := newMockTransport()
	transport.onSend = func(pdu sentPDU) {
		if pdu.dst == testNodeA {
			transport.inject(pdu.dst, pdu.appIndex, testClientAddr,
				mustEncode(messages.GenericOnOffStatus, access.Params{"present_onoff": 0}))
		}
	}
	e := newTestElement(t, transport)
	client := NewClient(e)

	statuses, err := client.SimpleGet(context.Background(), []Address{testNodeA, testNodeB}, testAppIndex,
		messages.GenericOnOffGet, messages.GenericOnOffStatus, access.Params{},
		WithTimeout(100*time.Millisecond), WithSendInterval(time.Millisecond))
	require.NoError(t, err)
	require.Len(t, statuses, 2)

	require.NotNil(t, statuses[testNodeA])
	assert.Equal(t, uint64(0), statuses[testNodeA]["present_onoff"])
	assert.Nil(t, statuses[testNodeB])
}

func TestVendorSubQuery(t *testing.T) {
	transport := newMockTransport()
	transport.onSend = func(pdu sentPDU) {
		transport.inject(pdu.dst, pdu.appIndex, testClientAddr,
			mustEncode(messages.Thermostat, access.Params{
				"subopcode": messages.ThermostatStatus,
				"payload": access.Params{
					"status_code":         0,
					"heater_status":       true,
					"mode":                1,
					"onoff_status":        true,
					"target_temperature":  21.0,
					"present_temperature": 19.5,
				},
			}))
	}
	e := newTestElement(t, transport)
	client := NewThermostatClient(e)

	statuses, err := client.Get(context.Background(), []Address{testNodeA}, testAppIndex,
		WithTimeout(time.Second))
	require.NoError(t, err)

	payload := statuses[testNodeA]
	require.NotNil(t, payload)
	assert.Equal(t, uint64(0), payload["status_code"])
	assert.Equal(t, uint64(1), payload["mode"])
	assert.InDelta(t, 19.5, payload["present_temperature"], 1e-9)
}

func TestVendorSubQueryWrongSubopcodeIgnored(t *testing.T) {
	transport := newMockTransport()
	transport.onSend = func(pdu sentPDU) {
		// A range status does not satisfy a get's expectation.
		transport.inject(pdu.dst, pdu.appIndex, testClientAddr,
			mustEncode(messages.Thermostat, access.Params{
				"subopcode": messages.ThermostatRangeStatus,
				"payload": access.Params{
					"min_temperature": 10.0,
					"max_temperature": 30.0,
				},
			}))
	}
	e := newTestElement(t, transport)
	client := NewThermostatClient(e)

	statuses, err := client.Get(context.Background(), []Address{testNodeA}, testAppIndex,
		WithTimeout(50*time.Millisecond))
	require.NoError(t, err)
	assert.Nil(t, statuses[testNodeA])
}
