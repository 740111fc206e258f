package packets

// PubcompPacket completes a QoS 2 PUBLISH exchange.
type PubcompPacket struct {
	PacketID   uint16
	ReasonCode uint8
	Properties *PropertyList
}

// Type returns PUBCOMP.
func (p *PubcompPacket) Type() uint8 { return PUBCOMP }

// Append appends the full wire encoding of p to dst.
func (p *PubcompPacket) Append(dst []byte) []byte {
	body := ackBody{PacketID: p.PacketID, ReasonCode: p.ReasonCode, Properties: p.Properties}
	header := FixedHeader{PacketType: PUBCOMP, RemainingLength: ackBodyLen(body)}
	dst = header.appendBytes(dst)
	return appendAckBody(dst, body, PUBCOMP)
}

// DecodePubcomp decodes a PUBCOMP packet's variable header (buf must
// already be sliced to exactly remaining_length bytes).
func DecodePubcomp(buf []byte, mode Mode) (*PubcompPacket, Outcome, error) {
	b, outcome, err := decodeAckBody(buf, PUBCOMP, mode)
	if err != nil {
		return nil, OutcomeFull, err
	}
	return &PubcompPacket{PacketID: b.PacketID, ReasonCode: b.ReasonCode, Properties: b.Properties}, outcome, nil
}
