package mesh

import (
	"context"
	"sync"
	"time"

	"github.com/aozyumenko/go-mesh/access"
	"github.com/aozyumenko/go-mesh/messages"
)

type sentPDU struct {
	dst      Address
	appIndex uint16
	data     []byte
	at       time.Time
}

// mockTransport records outbound PDUs and lets tests inject inbound ones.
// An optional onSend hook simulates remote nodes replying.
type mockTransport struct {
	mu      sync.Mutex
	sent    []sentPDU
	recv    RecvFunc
	onSend  func(pdu sentPDU)
	sendErr func(dst Address) error
}

func newMockTransport() *mockTransport {
	return &mockTransport{}
}

func (m *mockTransport) Send(_ context.Context, dst Address, appIndex uint16, data []byte) error {
	if m.sendErr != nil {
		if err := m.sendErr(dst); err != nil {
			return err
		}
	}

	pdu := sentPDU{dst: dst, appIndex: appIndex, data: data, at: time.Now()}
	m.mu.Lock()
	m.sent = append(m.sent, pdu)
	onSend := m.onSend
	m.mu.Unlock()

	if onSend != nil {
		onSend(pdu)
	}
	return nil
}

func (m *mockTransport) Subscribe(fn RecvFunc) {
	m.mu.Lock()
	m.recv = fn
	m.mu.Unlock()
}

func (m *mockTransport) inject(src Address, appIndex uint16, dst Address, data []byte) {
	m.mu.Lock()
	recv := m.recv
	m.mu.Unlock()
	if recv != nil {
		recv(src, appIndex, dst, data)
	}
}

func (m *mockTransport) sentPDUs() []sentPDU {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]sentPDU, len(m.sent))
	copy(out, m.sent)
	return out
}

// mustEncode encodes against the shared message registry, panicking on error;
// for building test replies.
func mustEncode(op access.Opcode, p access.Params) []byte {
	data, err := messages.NewRegistry().Encode(op, p)
	if err != nil {
		panic(err)
	}
	return data
}
