package packets

// MQTT control packet types (fixed header high nibble).
const (
	RESERVED    uint8 = 0
	CONNECT     uint8 = 1
	CONNACK     uint8 = 2
	PUBLISH     uint8 = 3
	PUBACK      uint8 = 4
	PUBREC      uint8 = 5
	PUBREL      uint8 = 6
	PUBCOMP     uint8 = 7
	SUBSCRIBE   uint8 = 8
	SUBACK      uint8 = 9
	UNSUBSCRIBE uint8 = 10
	UNSUBACK    uint8 = 11
	PINGREQ     uint8 = 12
	PINGRESP    uint8 = 13
	DISCONNECT  uint8 = 14
	AUTH        uint8 = 15
)

// PacketNames maps a control packet type to its human-readable name, used by
// Dump and error messages.
var PacketNames = map[uint8]string{
	RESERVED:    "RESERVED",
	CONNECT:     "CONNECT",
	CONNACK:     "CONNACK",
	PUBLISH:     "PUBLISH",
	PUBACK:      "PUBACK",
	PUBREC:      "PUBREC",
	PUBREL:      "PUBREL",
	PUBCOMP:     "PUBCOMP",
	SUBSCRIBE:   "SUBSCRIBE",
	SUBACK:      "SUBACK",
	UNSUBSCRIBE: "UNSUBSCRIBE",
	UNSUBACK:    "UNSUBACK",
	PINGREQ:     "PINGREQ",
	PINGRESP:    "PINGRESP",
	DISCONNECT:  "DISCONNECT",
	AUTH:        "AUTH",
}

// NextPacketType maps a packet type to the type that follows it in the QoS 2
// handshake (or the ack the sender waits for on QoS 1 PUBLISH). All other
// entries are RESERVED (0), meaning "no well-defined successor."
var NextPacketType = [16]uint8{
	PUBLISH: PUBACK, // only meaningful for QoS 1; QoS 2 uses PUBREC instead
	PUBREC:  PUBREL,
	PUBREL:  PUBCOMP,
}

// QoS levels. QoS 3 never appears on the wire; decoders reject it.
const (
	QoS0 uint8 = 0
	QoS1 uint8 = 1
	QoS2 uint8 = 2
)

// Mode selects whether decoded strings and binary data are copied
// independently of the input buffer (ModeOwning) or alias it (ModeView).
type Mode uint8

const (
	// ModeOwning allocates and copies every decoded string and byte slice.
	// The result's lifetime is independent of the input buffer.
	ModeOwning Mode = iota
	// ModeView aliases the input buffer for decoded strings and byte
	// slices, so their contents are not copied; the packet value,
	// property lists and other slices are still allocated. The caller
	// must keep the buffer alive and unmodified for as long as any
	// resulting view is in use.
	ModeView
)
