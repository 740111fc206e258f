package packets

// ConnackPacket is the MQTT v5.0 CONNACK control packet.
type ConnackPacket struct {
	SessionPresent bool
	ReasonCode     uint8
	Properties     *PropertyList
}

// Type returns CONNACK.
func (p *ConnackPacket) Type() uint8 { return CONNACK }

// Append appends the full wire encoding of p to dst.
func (p *ConnackPacket) Append(dst []byte) []byte {
	var variable []byte
	var ackFlags uint8
	if p.SessionPresent {
		ackFlags |= 0x01
	}
	variable = append(variable, ackFlags, p.ReasonCode)
	variable = appendProperties(variable, p.Properties)

	header := FixedHeader{PacketType: CONNACK, RemainingLength: len(variable)}
	dst = header.appendBytes(dst)
	return append(dst, variable...)
}

// DecodeConnack decodes a CONNACK packet's variable header (buf must
// already be sliced to exactly remaining_length bytes).
func DecodeConnack(buf []byte, mode Mode) (*ConnackPacket, error) {
	if len(buf) < 2 {
		return nil, notEnoughData("connack ack flags/reason code")
	}
	ackFlags := buf[0]
	if ackFlags&0xFE != 0 {
		return nil, badData("connack ack flags reserved bits", nil)
	}

	props, _, err := decodeProperties(buf[2:], mode)
	if err != nil {
		return nil, err
	}
	if err := props.ValidateForPacketType(CONNACK, false); err != nil {
		return nil, err
	}

	return &ConnackPacket{
		SessionPresent: ackFlags&0x01 != 0,
		ReasonCode:     buf[1],
		Properties:     props,
	}, nil
}
