package packets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAckShortcutEquivalence(t *testing.T) {
	shortcut := &PubackPacket{PacketID: 42}
	long := &PubackPacket{PacketID: 42, ReasonCode: ReasonSuccess}

	shortEncoded := Encode(shortcut)
	require.Equal(t, []byte{0x40, 0x02, 0x00, 0x2A}, shortEncoded)

	shortResult, err := DecodePacket(shortEncoded, ModeOwning)
	require.NoError(t, err)
	require.Equal(t, OutcomeShortcut, shortResult.Outcome)

	gotShort := shortResult.Packet.(*PubackPacket)
	require.Equal(t, long.PacketID, gotShort.PacketID)
	require.Equal(t, long.ReasonCode, gotShort.ReasonCode)
	require.Nil(t, gotShort.Properties)
}

func TestPubrelRequiresReservedFlags(t *testing.T) {
	pkt := &PubrelPacket{PacketID: 1}
	encoded := Encode(pkt)
	require.Equal(t, uint8(0x62), encoded[0]) // PUBREL<<4 | 0x02

	_, _, err := DecodeFixedHeader([]byte{0x60, 0x02}) // missing required flag bit
	require.Error(t, err)
}

func TestDisconnectShortcut(t *testing.T) {
	pkt := &DisconnectPacket{}
	encoded := Encode(pkt)
	require.Equal(t, []byte{0xE0, 0x00}, encoded)

	result, err := DecodePacket(encoded, ModeOwning)
	require.NoError(t, err)
	require.Equal(t, OutcomeShortcut, result.Outcome)
}
