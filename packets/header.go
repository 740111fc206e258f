package packets

// FixedHeader is the one-byte type+flags field plus the Variable Byte
// Integer remaining-length field present at the start of every MQTT
// control packet (spec section 3.3).
type FixedHeader struct {
	PacketType      uint8
	Flags           uint8
	RemainingLength int
}

// requiredFlags gives the fixed low-nibble value required for every packet
// type except PUBLISH, whose flags carry DUP/QoS/RETAIN instead (spec
// section 4.4 / 6.2).
var requiredFlags = [16]uint8{
	CONNECT:     0x0,
	CONNACK:     0x0,
	PUBACK:      0x0,
	PUBREC:      0x0,
	PUBREL:      0x2,
	PUBCOMP:     0x0,
	SUBSCRIBE:   0x2,
	SUBACK:      0x0,
	UNSUBSCRIBE: 0x2,
	UNSUBACK:    0x0,
	PINGREQ:     0x0,
	PINGRESP:    0x0,
	DISCONNECT:  0x0,
	AUTH:        0x0,
}

// appendBytes appends the fixed header's wire encoding (1 type+flags byte
// plus the VarInt remaining length) to dst.
func (h FixedHeader) appendBytes(dst []byte) []byte {
	dst = append(dst, (h.PacketType<<4)|(h.Flags&0x0F))
	return appendVarInt(dst, h.RemainingLength)
}

// Encode returns the fixed header's wire encoding as a new slice.
func (h FixedHeader) Encode() []byte {
	return h.appendBytes(make([]byte, 0, 5))
}

// Dup reports the DUP flag. Only meaningful when PacketType == PUBLISH.
func (h FixedHeader) Dup() bool { return h.Flags&0x08 != 0 }

// QoS reports the QoS level encoded in bits 2-1. Only meaningful when
// PacketType == PUBLISH.
func (h FixedHeader) QoS() uint8 { return (h.Flags >> 1) & 0x03 }

// Retain reports the RETAIN flag. Only meaningful when PacketType ==
// PUBLISH.
func (h FixedHeader) Retain() bool { return h.Flags&0x01 != 0 }

// validateFlags checks the fixed header's low nibble against spec section
// 4.4 / 6.2: every type except PUBLISH requires an exact low-nibble value;
// PUBLISH instead requires QoS != 3.
func validateFlags(packetType, flags uint8) error {
	if packetType == PUBLISH {
		if (flags>>1)&0x03 == 3 {
			return badData("publish qos", nil)
		}
		return nil
	}
	want, ok := flagTableEntry(packetType)
	if !ok {
		return badData("reserved packet type", nil)
	}
	if flags != want {
		return badData("fixed header flags", nil)
	}
	return nil
}

func flagTableEntry(packetType uint8) (uint8, bool) {
	if packetType == RESERVED || int(packetType) >= len(requiredFlags) {
		return 0, false
	}
	if packetType == PUBLISH {
		return 0, false
	}
	return requiredFlags[packetType], true
}

// DecodeFixedHeader decodes the fixed header from the front of buf,
// validating the packet type and flag nibble. Returns the header and the
// number of bytes consumed (2-5).
func DecodeFixedHeader(buf []byte) (FixedHeader, int, error) {
	if len(buf) < 1 {
		return FixedHeader{}, 0, notEnoughData("fixed header first byte")
	}
	first := buf[0]
	packetType := first >> 4
	flags := first & 0x0F

	if packetType == RESERVED || packetType > AUTH {
		return FixedHeader{}, 0, badData("packet type", nil)
	}
	if err := validateFlags(packetType, flags); err != nil {
		return FixedHeader{}, 0, err
	}

	remaining, n, err := decodeVarIntBuf(buf[1:])
	if err != nil {
		return FixedHeader{}, 0, err
	}

	h := FixedHeader{PacketType: packetType, Flags: flags, RemainingLength: remaining}
	return h, 1 + n, nil
}

// CheckHeader reports the total byte size of the packet starting at buf
// (fixed header + remaining length + remaining length's declared extent),
// without decoding the rest of the packet. This is the spec section 4.4
// "check_header" helper: a cheap way for a stream reader to know how many
// more bytes to buffer before attempting a full decode.
func CheckHeader(buf []byte) (total int, err error) {
	h, n, err := DecodeFixedHeader(buf)
	if err != nil {
		return 0, err
	}
	return n + h.RemainingLength, nil
}
