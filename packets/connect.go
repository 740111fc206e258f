package packets

import "encoding/binary"

// Connect flag bits (spec section 4.5).
const (
	connectFlagCleanStart = 1 << 1
	connectFlagWill       = 1 << 2
	connectFlagWillQoS    = 0x03 << 3
	connectFlagWillRetain = 1 << 5
	connectFlagPassword   = 1 << 6
	connectFlagUsername   = 1 << 7
)

// ConnectPacket is the MQTT v5.0 CONNECT control packet.
type ConnectPacket struct {
	ProtocolVersion uint8 // must be 5

	CleanStart bool
	KeepAlive  uint16

	Properties *PropertyList
	ClientID   string

	Will       *Will // nil when the Will flag is clear
	WillQoS    uint8 // valid only when Will != nil
	WillRetain bool  // valid only when Will != nil

	Username    string
	HasUsername bool
	Password    []byte
	HasPassword bool
}

// Type returns CONNECT.
func (p *ConnectPacket) Type() uint8 { return CONNECT }

// Append appends the full wire encoding of p to dst.
func (p *ConnectPacket) Append(dst []byte) []byte {
	var variable []byte
	variable = appendString(variable, "MQTT")
	variable = append(variable, p.ProtocolVersion)

	var flags uint8
	if p.CleanStart {
		flags |= connectFlagCleanStart
	}
	if p.Will != nil {
		flags |= connectFlagWill
		flags |= (p.WillQoS << 3) & connectFlagWillQoS
		if p.WillRetain {
			flags |= connectFlagWillRetain
		}
	}
	if p.HasUsername {
		flags |= connectFlagUsername
	}
	if p.HasPassword {
		flags |= connectFlagPassword
	}
	variable = append(variable, flags)
	variable = binary.BigEndian.AppendUint16(variable, p.KeepAlive)
	variable = appendProperties(variable, p.Properties)

	var payload []byte
	payload = appendString(payload, p.ClientID)
	if p.Will != nil {
		payload = appendWill(payload, p.Will)
	}
	if p.HasUsername {
		payload = appendString(payload, p.Username)
	}
	if p.HasPassword {
		payload = appendBinary(payload, p.Password)
	}

	header := FixedHeader{PacketType: CONNECT, RemainingLength: len(variable) + len(payload)}
	dst = header.appendBytes(dst)
	dst = append(dst, variable...)
	dst = append(dst, payload...)
	return dst
}

// DecodeConnect decodes a CONNECT packet's variable header and payload
// (buf must already be sliced to exactly remaining_length bytes).
func DecodeConnect(buf []byte, mode Mode) (*ConnectPacket, error) {
	offset := 0

	protocolName, n, err := decodeString(buf[offset:], ModeOwning)
	if err != nil {
		return nil, err
	}
	if protocolName != "MQTT" {
		return nil, badData("connect protocol name", nil)
	}
	offset += n

	if len(buf) < offset+1 {
		return nil, notEnoughData("connect protocol version")
	}
	version := buf[offset]
	if version != 5 {
		return nil, badData("connect protocol version", nil)
	}
	offset++

	if len(buf) < offset+1 {
		return nil, notEnoughData("connect flags")
	}
	flags := buf[offset]
	offset++
	if flags&0x01 != 0 {
		return nil, badData("connect flags reserved bit", nil)
	}

	willFlag := flags&connectFlagWill != 0
	willQoS := (flags & connectFlagWillQoS) >> 3
	willRetain := flags&connectFlagWillRetain != 0
	if willQoS == 3 {
		return nil, badData("connect will qos", nil)
	}
	if !willFlag && (willRetain || willQoS != 0) {
		return nil, badData("connect will flags without will flag", nil)
	}

	if len(buf) < offset+2 {
		return nil, notEnoughData("connect keep alive")
	}
	keepAlive := binary.BigEndian.Uint16(buf[offset:])
	offset += 2

	props, n, err := decodeProperties(buf[offset:], mode)
	if err != nil {
		return nil, err
	}
	if err := props.ValidateForPacketType(CONNECT, false); err != nil {
		return nil, err
	}
	offset += n

	clientID, n, err := decodeString(buf[offset:], mode)
	if err != nil {
		return nil, err
	}
	offset += n

	pkt := &ConnectPacket{
		ProtocolVersion: version,
		CleanStart:      flags&connectFlagCleanStart != 0,
		KeepAlive:       keepAlive,
		Properties:      props,
		ClientID:        clientID,
	}

	if willFlag {
		w, n, err := decodeWill(buf[offset:], mode)
		if err != nil {
			return nil, err
		}
		pkt.Will = &w
		pkt.WillQoS = willQoS
		pkt.WillRetain = willRetain
		offset += n
	}

	if flags&connectFlagUsername != 0 {
		username, n, err := decodeString(buf[offset:], mode)
		if err != nil {
			return nil, err
		}
		pkt.Username = username
		pkt.HasUsername = true
		offset += n
	}

	if flags&connectFlagPassword != 0 {
		password, n, err := decodeBinary(buf[offset:], mode)
		if err != nil {
			return nil, err
		}
		pkt.Password = password
		pkt.HasPassword = true
		offset += n
	}

	return pkt, nil
}
