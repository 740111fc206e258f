package packets

import (
	"fmt"
	"strings"
)

// Dump renders a decoded packet as a human-readable, multi-line string for
// diagnostics. It is the only place in the package that cares about
// presentation rather than wire format; cmd/mqttdump is its sole consumer.
func Dump(p Packet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", PacketNames[p.Type()])

	switch pkt := p.(type) {
	case *ConnectPacket:
		fmt.Fprintf(&b, "  protocol_version: %d\n", pkt.ProtocolVersion)
		fmt.Fprintf(&b, "  clean_start: %v\n", pkt.CleanStart)
		fmt.Fprintf(&b, "  keep_alive: %d\n", pkt.KeepAlive)
		fmt.Fprintf(&b, "  client_id: %q\n", pkt.ClientID)
		if pkt.Will != nil {
			fmt.Fprintf(&b, "  will: topic=%q qos=%d retain=%v payload_len=%d\n",
				pkt.Will.Topic, pkt.WillQoS, pkt.WillRetain, len(pkt.Will.Payload))
			dumpProperties(&b, "    ", pkt.Will.Properties)
		}
		if pkt.HasUsername {
			fmt.Fprintf(&b, "  username: %q\n", pkt.Username)
		}
		if pkt.HasPassword {
			fmt.Fprintf(&b, "  password_len: %d\n", len(pkt.Password))
		}
		dumpProperties(&b, "  ", pkt.Properties)

	case *ConnackPacket:
		fmt.Fprintf(&b, "  session_present: %v\n", pkt.SessionPresent)
		fmt.Fprintf(&b, "  reason_code: %s\n", ReasonName(pkt.ReasonCode))
		dumpProperties(&b, "  ", pkt.Properties)

	case *PublishPacket:
		fmt.Fprintf(&b, "  dup: %v qos: %d retain: %v\n", pkt.Dup, pkt.QoS, pkt.Retain)
		fmt.Fprintf(&b, "  topic: %q\n", pkt.Topic)
		if pkt.QoS > 0 {
			fmt.Fprintf(&b, "  packet_id: %d\n", pkt.PacketID)
		}
		fmt.Fprintf(&b, "  payload_len: %d\n", len(pkt.Payload))
		dumpProperties(&b, "  ", pkt.Properties)

	case *PubackPacket:
		dumpAck(&b, pkt.PacketID, pkt.ReasonCode, pkt.Properties)
	case *PubrecPacket:
		dumpAck(&b, pkt.PacketID, pkt.ReasonCode, pkt.Properties)
	case *PubrelPacket:
		dumpAck(&b, pkt.PacketID, pkt.ReasonCode, pkt.Properties)
	case *PubcompPacket:
		dumpAck(&b, pkt.PacketID, pkt.ReasonCode, pkt.Properties)

	case *SubscribePacket:
		fmt.Fprintf(&b, "  packet_id: %d\n", pkt.PacketID)
		for _, s := range pkt.Subscriptions {
			fmt.Fprintf(&b, "  subscription: filter=%q qos=%d no_local=%v rap=%v retain_handling=%d\n",
				s.TopicFilter, s.QoS, s.NoLocal, s.RetainAsPub, s.RetainHandling)
		}
		dumpProperties(&b, "  ", pkt.Properties)

	case *SubackPacket:
		fmt.Fprintf(&b, "  packet_id: %d\n", pkt.PacketID)
		for _, rc := range pkt.ReasonCodes {
			fmt.Fprintf(&b, "  reason_code: %s\n", ReasonName(rc))
		}
		dumpProperties(&b, "  ", pkt.Properties)

	case *UnsubscribePacket:
		fmt.Fprintf(&b, "  packet_id: %d\n", pkt.PacketID)
		for _, t := range pkt.TopicFilters {
			fmt.Fprintf(&b, "  topic_filter: %q\n", t)
		}
		dumpProperties(&b, "  ", pkt.Properties)

	case *UnsubackPacket:
		fmt.Fprintf(&b, "  packet_id: %d\n", pkt.PacketID)
		for _, rc := range pkt.ReasonCodes {
			fmt.Fprintf(&b, "  reason_code: %s\n", ReasonName(rc))
		}
		dumpProperties(&b, "  ", pkt.Properties)

	case *PingreqPacket, *PingrespPacket:
		// no body

	case *DisconnectPacket:
		fmt.Fprintf(&b, "  reason_code: %s\n", ReasonName(pkt.ReasonCode))
		dumpProperties(&b, "  ", pkt.Properties)

	case *AuthPacket:
		fmt.Fprintf(&b, "  reason_code: %s\n", ReasonName(pkt.ReasonCode))
		dumpProperties(&b, "  ", pkt.Properties)
	}

	return b.String()
}

func dumpAck(b *strings.Builder, packetID uint16, reasonCode uint8, props *PropertyList) {
	fmt.Fprintf(b, "  packet_id: %d\n", packetID)
	fmt.Fprintf(b, "  reason_code: %s\n", ReasonName(reasonCode))
	dumpProperties(b, "  ", props)
}

func dumpProperties(b *strings.Builder, indent string, props *PropertyList) {
	if props == nil || len(props.Items) == 0 {
		return
	}
	for _, p := range props.Items {
		fmt.Fprintf(b, "%sproperty %s: %s\n", indent, PropertyName(p.ID), dumpValue(p.Value))
	}
}

func dumpValue(v PropertyValue) string {
	switch v.Shape {
	case ShapeU8:
		return fmt.Sprintf("%d", v.U8)
	case ShapeU16:
		return fmt.Sprintf("%d", v.U16)
	case ShapeU32:
		return fmt.Sprintf("%d", v.U32)
	case ShapeVarInt:
		return fmt.Sprintf("%d", v.VarInt)
	case ShapeString:
		return fmt.Sprintf("%q", v.Str)
	case ShapeBinary:
		return fmt.Sprintf("<%d bytes>", len(v.Bin))
	case ShapeStringPair:
		return fmt.Sprintf("%q=%q", v.Pair.Key, v.Pair.Value)
	default:
		return "?"
	}
}
