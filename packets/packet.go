package packets

import "io"

// Packet is implemented by every decoded MQTT v5.0 control packet value.
type Packet interface {
	// Type returns the control packet type (CONNECT, PUBLISH, ...).
	Type() uint8
	// Append appends this packet's full wire encoding (fixed header,
	// variable header, payload) to dst and returns the extended slice.
	Append(dst []byte) []byte
}

// Encode is a convenience wrapper around Packet.Append that allocates a
// fresh slice.
func Encode(p Packet) []byte {
	return p.Append(make([]byte, 0, 64))
}

// WriteTo encodes p into a pooled scratch buffer and writes it to w in one
// call, returning the buffer afterward. This avoids the per-call
// allocation Encode incurs when a caller only ever needs the bytes on the
// wire, not the slice itself — the pooling mirrors the teacher's own
// GetBuffer/PutBuffer-around-WriteTo pattern.
func WriteTo(w io.Writer, p Packet) (int64, error) {
	bufPtr := getBuffer(0)
	defer putBuffer(bufPtr)

	data := p.Append((*bufPtr)[:0])
	n, err := w.Write(data)
	return int64(n), err
}

// Outcome is the disposition of a successful decode, reported alongside
// the error (spec section 7): a decode either fully succeeds, or
// legitimately stops early because the packet used the short form (spec
// section 4.7's "shortcut" mechanism). Failures are reported through the
// error, not through an Outcome value.
type Outcome uint8

const (
	// OutcomeFull means every declared field, including properties, was
	// present and decoded.
	OutcomeFull Outcome = iota
	// OutcomeShortcut means the packet's remaining_length was short
	// enough that the spec's ack-family shortcut applies: there is no
	// property list, and the reason code is Success (0x00) unless the
	// packet carried one.
	OutcomeShortcut
)
