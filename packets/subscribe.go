package packets

// Subscription option bits (spec section 4.8): QoS in bits 0-1, No Local
// in bit 2, Retain As Published in bit 3, Retain Handling in bits 4-5.
const (
	subOptQoSMask    = 0x03
	subOptNoLocal    = 1 << 2
	subOptRAP        = 1 << 3
	subOptRetainMask = 0x03 << 4
)

// Subscription is one topic filter and its options within a SUBSCRIBE
// payload.
type Subscription struct {
	TopicFilter     string
	QoS             uint8
	NoLocal         bool
	RetainAsPub     bool
	RetainHandling  uint8 // 0, 1, or 2
}

func appendSubscription(dst []byte, s Subscription) []byte {
	dst = appendString(dst, s.TopicFilter)
	var opts uint8
	opts |= s.QoS & subOptQoSMask
	if s.NoLocal {
		opts |= subOptNoLocal
	}
	if s.RetainAsPub {
		opts |= subOptRAP
	}
	opts |= (s.RetainHandling << 4) & subOptRetainMask
	return append(dst, opts)
}

func decodeSubscription(buf []byte, mode Mode) (Subscription, int, error) {
	var s Subscription
	topic, n, err := decodeString(buf, mode)
	if err != nil {
		return s, 0, err
	}
	offset := n

	if len(buf) < offset+1 {
		return s, 0, notEnoughData("subscription options")
	}
	opts := buf[offset]
	offset++

	if opts&0xC0 != 0 {
		return s, 0, badData("subscription options reserved bits", nil)
	}
	qos := opts & subOptQoSMask
	if qos == 3 {
		return s, 0, badData("subscription qos", nil)
	}
	retainHandling := (opts & subOptRetainMask) >> 4
	if retainHandling == 3 {
		return s, 0, badData("subscription retain handling", nil)
	}

	s.TopicFilter = topic
	s.QoS = qos
	s.NoLocal = opts&subOptNoLocal != 0
	s.RetainAsPub = opts&subOptRAP != 0
	s.RetainHandling = retainHandling

	return s, offset, nil
}

// SubscribePacket requests one or more topic subscriptions.
type SubscribePacket struct {
	PacketID      uint16
	Properties    *PropertyList
	Subscriptions []Subscription
}

// Type returns SUBSCRIBE.
func (p *SubscribePacket) Type() uint8 { return SUBSCRIBE }

// Append appends the full wire encoding of p to dst.
func (p *SubscribePacket) Append(dst []byte) []byte {
	var variable []byte
	variable = appendUint16(variable, p.PacketID)
	variable = appendProperties(variable, p.Properties)

	var payload []byte
	for _, s := range p.Subscriptions {
		payload = appendSubscription(payload, s)
	}

	header := FixedHeader{
		PacketType:      SUBSCRIBE,
		Flags:           0x02,
		RemainingLength: len(variable) + len(payload),
	}
	dst = header.appendBytes(dst)
	dst = append(dst, variable...)
	return append(dst, payload...)
}

// DecodeSubscribe decodes a SUBSCRIBE packet's variable header and payload
// (buf must already be sliced to exactly remaining_length bytes).
func DecodeSubscribe(buf []byte, mode Mode) (*SubscribePacket, error) {
	if len(buf) < 2 {
		return nil, notEnoughData("subscribe packet id")
	}
	pkt := &SubscribePacket{PacketID: decodeUint16(buf)}
	offset := 2

	props, n, err := decodeProperties(buf[offset:], mode)
	if err != nil {
		return nil, err
	}
	if err := props.ValidateForPacketType(SUBSCRIBE, false); err != nil {
		return nil, err
	}
	pkt.Properties = props
	offset += n

	for offset < len(buf) {
		s, n, err := decodeSubscription(buf[offset:], mode)
		if err != nil {
			return nil, err
		}
		pkt.Subscriptions = append(pkt.Subscriptions, s)
		offset += n
	}

	return pkt, nil
}
