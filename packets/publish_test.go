package packets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublishRoundTripQoS0HasNoPacketID(t *testing.T) {
	pkt := &PublishPacket{
		Topic:   "sensors/temp",
		QoS:     0,
		Payload: []byte{0x01, 0x02, 0x03},
	}

	encoded := Encode(pkt)
	result, err := DecodePacket(encoded, ModeOwning)
	require.NoError(t, err)

	got := result.Packet.(*PublishPacket)
	require.EqualValues(t, 0, got.QoS)
	require.EqualValues(t, 0, got.PacketID)
	require.Equal(t, pkt.Payload, got.Payload)
}

func TestPublishViewModeAliasesInputBuffer(t *testing.T) {
	pkt := &PublishPacket{Topic: "a/b", QoS: 1, PacketID: 7, Payload: []byte("hello")}
	encoded := Encode(pkt)

	result, err := DecodePacket(encoded, ModeView)
	require.NoError(t, err)
	got := result.Packet.(*PublishPacket)

	require.Equal(t, "hello", string(got.Payload))

	// Mutating the backing buffer must be visible through the view, proving
	// no copy was made.
	encoded[len(encoded)-5] = 'H'
	require.Equal(t, "Hello", string(got.Payload))
}

func TestPublishRejectsQoS3(t *testing.T) {
	header := FixedHeader{PacketType: PUBLISH, Flags: 0x06}
	_, err := DecodePublish([]byte{0x00, 0x01, 'a'}, header, ModeOwning)
	require.Error(t, err)
}
