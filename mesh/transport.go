package mesh

import (
	"context"

	"github.com/aozyumenko/go-mesh/access"
)

// Address is a 16-bit mesh element address.
type Address uint16

// IsUnicast reports whether the address is a unicast element address.
func (a Address) IsUnicast() bool { return a != 0 && a < 0x8000 }

// IsGroup reports whether the address is a group address.
func (a Address) IsGroup() bool { return a >= 0xC000 }

// RecvFunc consumes one inbound access PDU delivered by the transport.
type RecvFunc func(src Address, appIndex uint16, dst Address, data []byte)

// Transport carries encoded access PDUs across the mesh. It is expected to
// apply and strip all mesh-layer encryption before the bytes cross this
// interface. Delivery, ordering and uniqueness are not guaranteed.
type Transport interface {
	// Send transmits an encoded access PDU to the destination address under
	// the given application key index.
	Send(ctx context.Context, dst Address, appIndex uint16, data []byte) error

	// Subscribe registers the receiver for inbound PDUs. The transport calls
	// fn once per delivered PDU.
	Subscribe(fn RecvFunc)
}

// Incoming is one decoded inbound message together with its routing
// information.
type Incoming struct {
	Src      Address
	Dst      Address
	AppIndex uint16
	Message  *access.Message
}
