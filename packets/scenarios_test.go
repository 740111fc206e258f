package packets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScenarioPingreqRoundTrip covers spec section 8 scenario 1.
func TestScenarioPingreqRoundTrip(t *testing.T) {
	input := []byte{0xC0, 0x00}

	result, err := DecodePacket(input, ModeOwning)
	require.NoError(t, err)
	require.Equal(t, 2, result.Consumed)

	pkt, ok := result.Packet.(*PingreqPacket)
	require.True(t, ok)

	require.Equal(t, input, Encode(pkt))
}

// TestScenarioConnectMinimal covers spec section 8 scenario 2.
func TestScenarioConnectMinimal(t *testing.T) {
	input := []byte{
		0x10, 0x0D,
		0x00, 0x04, 'M', 'Q', 'T', 'T',
		0x05,
		0x02,
		0x00, 0x3C,
		0x00,
		0x00, 0x00,
	}

	result, err := DecodePacket(input, ModeOwning)
	require.NoError(t, err)
	require.Equal(t, len(input), result.Consumed)

	pkt, ok := result.Packet.(*ConnectPacket)
	require.True(t, ok)
	require.EqualValues(t, 5, pkt.ProtocolVersion)
	require.True(t, pkt.CleanStart)
	require.EqualValues(t, 60, pkt.KeepAlive)
	require.Nil(t, pkt.Properties)
	require.Empty(t, pkt.ClientID)
}

// TestScenarioPublishQoS1WithMessageExpiry covers spec section 8 scenario 3.
func TestScenarioPublishQoS1WithMessageExpiry(t *testing.T) {
	input := []byte{
		0x32, 0x0F,
		0x00, 0x03, 'a', '/', 'b',
		0x00, 0x01,
		0x05, 0x02, 0x00, 0x00, 0x00, 0x3C,
		'h', 'i',
	}

	result, err := DecodePacket(input, ModeOwning)
	require.NoError(t, err)
	require.Equal(t, len(input), result.Consumed)

	pkt, ok := result.Packet.(*PublishPacket)
	require.True(t, ok)
	require.EqualValues(t, 1, pkt.QoS)
	require.Equal(t, "a/b", pkt.Topic)
	require.EqualValues(t, 1, pkt.PacketID)
	require.Equal(t, "hi", string(pkt.Payload))

	require.NotNil(t, pkt.Properties)
	require.Len(t, pkt.Properties.Items, 1)
	v, ok := pkt.Properties.Get(PropMessageExpiryInterval)
	require.True(t, ok)
	require.EqualValues(t, 60, v.U32)
}

// TestScenarioTruncatedPuback covers spec section 8 scenario 4.
func TestScenarioTruncatedPuback(t *testing.T) {
	input := []byte{0x40, 0x02, 0x00, 0x07}

	result, err := DecodePacket(input, ModeOwning)
	require.NoError(t, err)
	require.Equal(t, OutcomeShortcut, result.Outcome)

	pkt, ok := result.Packet.(*PubackPacket)
	require.True(t, ok)
	require.EqualValues(t, 7, pkt.PacketID)
	require.EqualValues(t, ReasonSuccess, pkt.ReasonCode)
	require.Nil(t, pkt.Properties)
}

// TestScenarioMalformedVarInt covers spec section 8 scenario 5.
func TestScenarioMalformedVarInt(t *testing.T) {
	input := []byte{0x10, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}

	_, err := DecodePacket(input, ModeOwning)
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

// TestScenarioDisallowedPropertyInConnect covers spec section 8 scenario 6:
// TopicAlias (0x23) is allowed only in PUBLISH.
func TestScenarioDisallowedPropertyInConnect(t *testing.T) {
	props := &PropertyList{}
	props.AddU16(PropTopicAlias, 1)

	err := props.ValidateForPacketType(CONNECT, false)
	require.Error(t, err)
}
