package packets

// SubackPacket acknowledges a SUBSCRIBE, carrying one reason code per
// requested topic filter in the same order (spec section 4.9).
type SubackPacket struct {
	PacketID    uint16
	Properties  *PropertyList
	ReasonCodes []uint8
}

// Type returns SUBACK.
func (p *SubackPacket) Type() uint8 { return SUBACK }

// Append appends the full wire encoding of p to dst.
func (p *SubackPacket) Append(dst []byte) []byte {
	var variable []byte
	variable = appendUint16(variable, p.PacketID)
	variable = appendProperties(variable, p.Properties)

	header := FixedHeader{
		PacketType:      SUBACK,
		RemainingLength: len(variable) + len(p.ReasonCodes),
	}
	dst = header.appendBytes(dst)
	dst = append(dst, variable...)
	return append(dst, p.ReasonCodes...)
}

// DecodeSuback decodes a SUBACK packet's variable header and payload (buf
// must already be sliced to exactly remaining_length bytes).
func DecodeSuback(buf []byte, mode Mode) (*SubackPacket, error) {
	if len(buf) < 2 {
		return nil, notEnoughData("suback packet id")
	}
	pkt := &SubackPacket{PacketID: decodeUint16(buf)}
	offset := 2

	props, n, err := decodeProperties(buf[offset:], mode)
	if err != nil {
		return nil, err
	}
	if err := props.ValidateForPacketType(SUBACK, false); err != nil {
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
