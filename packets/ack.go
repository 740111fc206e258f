package packets

import "encoding/binary"

// ackBody is the shared variable-header shape of the PUBACK/PUBREC/PUBREL/
// PUBCOMP family: a packet identifier, then an optional reason code and
// property list. Spec section 4.7 lets encoders omit both when the reason
// code is Success and there are no properties, and requires decoders to
// treat a short remaining_length the same way (the "shortcut").
type ackBody struct {
	PacketID   uint16
	ReasonCode uint8
	Properties *PropertyList
}

func appendAckBody(dst []byte, b ackBody, packetType uint8) []byte {
	dst = binary.BigEndian.AppendUint16(dst, b.PacketID)
	if b.ReasonCode == 0 && b.Properties == nil {
		return dst
	}
	dst = append(dst, b.ReasonCode)
	return appendProperties(dst, b.Properties)
}

func ackBodyLen(b ackBody) int {
	if b.ReasonCode == 0 && b.Properties == nil {
		return 2
	}
	var propBuf [128]byte
	return 3 + len(appendProperties(propBuf[:0], b.Properties))
}

// decodeAckBody decodes the shared ack-family variable header. outcome
// reports OutcomeShortcut when buf ended after the packet ID (rem == 2)
// or after the reason code (rem == 3), per spec section 4.7.
func decodeAckBody(buf []byte, packetType uint8, mode Mode) (ackBody, Outcome, error) {
	var b ackBody
	if len(buf) < 2 {
		return b, OutcomeFull, notEnoughData("ack packet id")
	}
	b.PacketID = binary.BigEndian.Uint16(buf)

	if len(buf) == 2 {
		return b, OutcomeShortcut, nil
	}

	b.ReasonCode = buf[2]
	if len(buf) == 3 {
		return b, OutcomeShortcut, nil
	}

	props, _, err := decodeProperties(buf[3:], mode)
	if err != nil {
		return b, OutcomeFull, err
	}
	if err := props.ValidateForPacketType(packetType, false); err != nil {
		return b, OutcomeFull, err
	}
	b.Properties = props

	return b, OutcomeFull, nil
}
