package packets

import "encoding/binary"

// PublishPacket is the MQTT v5.0 PUBLISH control packet. DUP/QoS/RETAIN
// live in the fixed header's flag nibble rather than the variable header
// (spec section 3.3).
type PublishPacket struct {
	Dup    bool
	QoS    uint8
	Retain bool

	Topic    string
	PacketID uint16 // valid only when QoS > 0

	Properties *PropertyList
	Payload    []byte
}

// Type returns PUBLISH.
func (p *PublishPacket) Type() uint8 { return PUBLISH }

// Append appends the full wire encoding of p to dst.
func (p *PublishPacket) Append(dst []byte) []byte {
	var variable []byte
	variable = appendString(variable, p.Topic)
	if p.QoS > 0 {
		variable = binary.BigEndian.AppendUint16(variable, p.PacketID)
	}
	variable = appendProperties(variable, p.Properties)

	var flags uint8
	if p.Dup {
		flags |= 0x08
	}
	flags |= (p.QoS & 0x03) << 1
	if p.Retain {
		flags |= 0x01
	}

	header := FixedHeader{
		PacketType:      PUBLISH,
		Flags:           flags,
		RemainingLength: len(variable) + len(p.Payload),
	}
	dst = header.appendBytes(dst)
	dst = append(dst, variable...)
	return append(dst, p.Payload...)
}

// DecodePublish decodes a PUBLISH packet's variable header and payload
// (buf must already be sliced to exactly remaining_length bytes). header
// supplies the fixed-header flags (DUP/QoS/RETAIN).
func DecodePublish(buf []byte, header FixedHeader, mode Mode) (*PublishPacket, error) {
	qos := header.QoS()
	if qos == 3 {
		return nil, badData("publish qos", nil)
	}

	pkt := &PublishPacket{
		Dup:    header.Dup(),
		QoS:    qos,
		Retain: header.Retain(),
	}

	offset := 0
	topic, n, err := decodeString(buf[offset:], mode)
	if err != nil {
		return nil, err
	}
	pkt.Topic = topic
	offset += n

	if qos > 0 {
		if len(buf) < offset+2 {
			return nil, notEnoughData("publish packet id")
		}
		pkt.PacketID = binary.BigEndian.Uint16(buf[offset:])
		offset += 2
	}

	props, n, err := decodeProperties(buf[offset:], mode)
	if err != nil {
		return nil, err
	}
	if err := props.ValidateForPacketType(PUBLISH, false); err != nil {
		return nil, err
	}
	pkt.Properties = props
	offset += n

	if mode == ModeOwning {
		payload := make([]byte, len(buf)-offset)
		copy(payload, buf[offset:])
		pkt.Payload = payload
	} else {
		pkt.Payload = buf[offset:]
	}

	return pkt, nil
}
