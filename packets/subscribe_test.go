package packets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubscribeRoundTrip(t *testing.T) {
	pkt := &SubscribePacket{
		PacketID: 10,
		Subscriptions: []Subscription{
			{TopicFilter: "a/+", QoS: 1, NoLocal: true, RetainHandling: 2},
			{TopicFilter: "b/#", QoS: 2, RetainAsPub: true},
		},
	}

	encoded := Encode(pkt)
	result, err := DecodePacket(encoded, ModeOwning)
	require.NoError(t, err)
	require.Equal(t, len(encoded), result.Consumed)

	got := result.Packet.(*SubscribePacket)
	require.EqualValues(t, 10, got.PacketID)
	require.Len(t, got.Subscriptions, 2)
	require.Equal(t, "a/+", got.Subscriptions[0].TopicFilter)
	require.EqualValues(t, 1, got.Subscriptions[0].QoS)
	require.True(t, got.Subscriptions[0].NoLocal)
	require.EqualValues(t, 2, got.Subscriptions[0].RetainHandling)
	require.Equal(t, "b/#", got.Subscriptions[1].TopicFilter)
	require.True(t, got.Subscriptions[1].RetainAsPub)
}

func TestSubscribeRejectsQoS3(t *testing.T) {
	buf := []byte{
		0x00, 0x0A, // packet id
		0x00,       // no properties
		0x00, 0x01, 'x', // topic filter "x"
		0x03, // qos bits = 3
	}
	_, err := DecodeSubscribe(buf, ModeOwning)
	require.Error(t, err)
}

func TestSubackRoundTrip(t *testing.T) {
	pkt := &SubackPacket{
		PacketID:    10,
		ReasonCodes: []uint8{ReasonGrantedQoS1, ReasonUnspecifiedError},
	}

	encoded := Encode(pkt)
	result, err := DecodePacket(encoded, ModeOwning)
	require.NoError(t, err)

	got := result.Packet.(*SubackPacket)
	require.Equal(t, pkt.ReasonCodes, got.ReasonCodes)
}
