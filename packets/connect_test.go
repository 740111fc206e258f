package packets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnectRoundTripWithWillAndCredentials(t *testing.T) {
	willProps := &PropertyList{}
	willProps.AddU32(PropWillDelayInterval, 5)

	pkt := &ConnectPacket{
		ProtocolVersion: 5,
		CleanStart:      true,
		KeepAlive:       30,
		ClientID:        "client-1",
		Will: &Will{
			Properties: willProps,
			Topic:      "status/offline",
			Payload:    []byte("gone"),
		},
		WillQoS:     1,
		WillRetain:  true,
		Username:    "alice",
		HasUsername: true,
		Password:    []byte("secret"),
		HasPassword: true,
	}

	encoded := Encode(pkt)
	result, err := DecodePacket(encoded, ModeOwning)
	require.NoError(t, err)
	require.Equal(t, len(encoded), result.Consumed)

	got, ok := result.Packet.(*ConnectPacket)
	require.True(t, ok)
	require.Equal(t, pkt.ClientID, got.ClientID)
	require.True(t, got.CleanStart)
	require.EqualValues(t, 30, got.KeepAlive)
	require.NotNil(t, got.Will)
	require.Equal(t, "status/offline", got.Will.Topic)
	require.Equal(t, "gone", string(got.Will.Payload))
	require.EqualValues(t, 1, got.WillQoS)
	require.True(t, got.WillRetain)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "secret", string(got.Password))
}

func TestConnectRejectsWrongProtocolName(t *testing.T) {
	buf := []byte{0x00, 0x04, 'M', 'Q', 'I', 'X', 0x05, 0x00, 0x00, 0x00, 0x00, 0x00}
	_, err := DecodeConnect(buf, ModeOwning)
	require.Error(t, err)
}

func TestConnectRejectsWillRetainWithoutWillFlag(t *testing.T) {
	buf := []byte{
		0x00, 0x04, 'M', 'Q', 'T', 'T',
		0x05,
		0x20, // will retain set, will flag clear
		0x00, 0x00,
		0x00,
		0x00, 0x00,
	}
	_, err := DecodeConnect(buf, ModeOwning)
	require.Error(t, err)
}
