package packets

// UnsubscribePacket requests removal of one or more topic subscriptions.
type UnsubscribePacket struct {
	PacketID     uint16
	Properties   *PropertyList
	TopicFilters []string
}

// Type returns UNSUBSCRIBE.
func (p *UnsubscribePacket) Type() uint8 { return UNSUBSCRIBE }

// Append appends the full wire encoding of p to dst.
func (p *UnsubscribePacket) Append(dst []byte) []byte {
	var variable []byte
	variable = appendUint16(variable, p.PacketID)
	variable = appendProperties(variable, p.Properties)

	var payload []byte
	for _, t := range p.TopicFilters {
		payload = appendString(payload, t)
	}

	header := FixedHeader{
		PacketType:      UNSUBSCRIBE,
		Flags:           0x02,
		RemainingLength: len(variable) + len(payload),
	}
	dst = header.appendBytes(dst)
	dst = append(dst, variable...)
	return append(dst, payload...)
}

// DecodeUnsubscribe decodes an UNSUBSCRIBE packet's variable header and
// payload (buf must already be sliced to exactly remaining_length bytes).
func DecodeUnsubscribe(buf []byte, mode Mode) (*UnsubscribePacket, error) {
	if len(buf) < 2 {
		return nil, notEnoughData("unsubscribe packet id")
	}
	pkt := &UnsubscribePacket{PacketID: decodeUint16(buf)}
	offset := 2

	props, n, err := decodeProperties(buf[offset:], mode)
	if err != nil {
		return nil, err
	}
	if err := props.ValidateForPacketType(UNSUBSCRIBE, false); err != nil {
		return nil, err
	}
	pkt.Properties = props
	offset += n

	for offset < len(buf) {
		topic, n, err := decodeString(buf[offset:], mode)
		if err != nil {
			return nil, err
		}
		pkt.TopicFilters = append(pkt.TopicFilters, topic)
		offset += n
	}

	return pkt, nil
}
