package packets

// DisconnectPacket signals the sender is closing the connection. Spec
// section 4.14's shortcut lets an encoder omit the whole variable header
// when the reason is Normal Disconnection (0x00) and there are no
// properties; decoders must treat a zero-length or one-byte
// remaining_length as that same shortcut.
type DisconnectPacket struct {
	ReasonCode uint8
	Properties *PropertyList
}

// Type returns DISCONNECT.
func (p *DisconnectPacket) Type() uint8 { return DISCONNECT }

// Append appends the full wire encoding of p to dst.
func (p *DisconnectPacket) Append(dst []byte) []byte {
	var variable []byte
	if p.ReasonCode != 0 || p.Properties != nil {
		variable = append(variable, p.ReasonCode)
		variable = appendProperties(variable, p.Properties)
	}
	header := FixedHeader{PacketType: DISCONNECT, RemainingLength: len(variable)}
	dst = header.appendBytes(dst)
	return append(dst, variable...)
}

// DecodeDisconnect decodes a DISCONNECT packet's variable header (buf must
// already be sliced to exactly remaining_length bytes).
func DecodeDisconnect(buf []byte, mode Mode) (*DisconnectPacket, Outcome, error) {
	pkt := &DisconnectPacket{}
	if len(buf) == 0 {
		return pkt, OutcomeShortcut, nil
	}
	pkt.ReasonCode = buf[0]
	if len(buf) == 1 {
		return pkt, OutcomeShortcut, nil
	}

	props, _, err := decodeProperties(buf[1:], mode)
	if err != nil {
		return nil, OutcomeFull, err
	}
	if err := props.ValidateForPacketType(DISCONNECT, false); err != nil {
		return nil, OutcomeFull, err
	}
	pkt.Properties = props

	return pkt, OutcomeFull, nil
}
