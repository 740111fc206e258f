package packets

// UnsubackPacket acknowledges an UNSUBSCRIBE, carrying one reason code per
// requested topic filter in the same order.
type UnsubackPacket struct {
	PacketID    uint16
	Properties  *PropertyList
	ReasonCodes []uint8
}

// Type returns UNSUBACK.
func (p *UnsubackPacket) Type() uint8 { return UNSUBACK }

// Append appends the full wire encoding of p to dst.
func (p *UnsubackPacket) Append(dst []byte) []byte {
	var variable []byte
	variable = appendUint16(variable, p.PacketID)
	variable = appendProperties(variable, p.Properties)

	header := FixedHeader{
		PacketType:      UNSUBACK,
		RemainingLength: len(variable) + len(p.ReasonCodes),
	}
	dst = header.appendBytes(dst)
	dst = append(dst, variable...)
	return append(dst, p.ReasonCodes...)
}

// DecodeUnsuback decodes an UNSUBACK packet's variable header and payload
// (buf must already be sliced to exactly remaining_length bytes).
func DecodeUnsuback(buf []byte, mode Mode) (*UnsubackPacket, error) {
	if len(buf) < 2 {
		return nil, notEnoughData("unsuback packet id")
	}
	pkt := &UnsubackPacket{PacketID: decodeUint16(buf)}
	offset := 2

	props, n, err := decodeProperties(buf[offset:], mode)
	if err != nil {
		return nil, err
	}
	if err := props.ValidateForPacketType(UNSUBACK, false); err != nil {
		return nil, err
	}
	pkt.Properties = props
	offset += n

	if offset < len(buf) {
		codes := make([]uint8, len(buf)-offset)
		copy(codes, buf[offset:])
		pkt.ReasonCodes = codes
	}

	return pkt, nil
}
