package packets

// AuthPacket carries an extended authentication exchange step. It shares
// DISCONNECT's shortcut shape (spec section 4.15).
type AuthPacket struct {
	ReasonCode uint8
	Properties *PropertyList
}

// Type returns AUTH.
func (p *AuthPacket) Type() uint8 { return AUTH }

// Append appends the full wire encoding of p to dst.
func (p *AuthPacket) Append(dst []byte) []byte {
	var variable []byte
	if p.ReasonCode != 0 || p.Properties != nil {
		variable = append(variable, p.ReasonCode)
		variable = appendProperties(variable, p.Properties)
	}
	header := FixedHeader{PacketType: AUTH, RemainingLength: len(variable)}
	dst = header.appendBytes(dst)
	return append(dst, variable...)
}

// DecodeAuth decodes an AUTH packet's variable header (buf must already be
// sliced to exactly remaining_length bytes).
func DecodeAuth(buf []byte, mode Mode) (*AuthPacket, Outcome, error) {
	pkt := &AuthPacket{}
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
	if err := props.ValidateForPacketType(AUTH, false); err != nil {
		return nil, OutcomeFull, err
	}
	pkt.Properties = props

	return pkt, OutcomeFull, nil
}
