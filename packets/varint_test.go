package packets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVarIntRoundTrip(t *testing.T) {
	values := []int{0, 1, 127, 128, 16383, 16384, 2097151, 2097152, 268435455}

	for _, v := range values {
		encoded := EncodeVarInt(v)
		decoded, n, err := decodeVarIntBuf(encoded)
		require.NoError(t, err)
		require.Equal(t, v, decoded)
		require.Equal(t, len(encoded), n)
	}
}

func TestEncodeVarIntSizes(t *testing.T) {
	require.Equal(t, []byte{0x00}, EncodeVarInt(0))
	require.Equal(t, []byte{0x7F}, EncodeVarInt(127))
	require.Equal(t, []byte{0x80, 0x01}, EncodeVarInt(128))
	require.Equal(t, []byte{0xFF, 0x7F}, EncodeVarInt(16383))
	require.Equal(t, []byte{0x80, 0x80, 0x01}, EncodeVarInt(16384))
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0x7F}, EncodeVarInt(268435455))
}

func TestDecodeVarIntRejectsNonCanonicalEncoding(t *testing.T) {
	// Zero encoded with a redundant continuation byte, forbidden by spec
	// section 3.4(c)'s canonical-encoding requirement.
	_, _, err := decodeVarIntBuf([]byte{0x80, 0x00})
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, ErrBadData, decodeErr.Kind)
}

func TestDecodeVarIntRejectsOverlongEncoding(t *testing.T) {
	// Four bytes that all carry the continuation bit, per spec section 8's malformed-VarInt
	// scenario (example: "10 FF FF FF FF 00").
	_, _, err := decodeVarIntBuf([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00})
	require.Error(t, err)
}

func TestDecodeVarIntIncomplete(t *testing.T) {
	_, _, err := decodeVarIntBuf([]byte{0x80})
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, ErrNotEnoughData, decodeErr.Kind)
}

func TestEncodeVarIntOutOfRangePanics(t *testing.T) {
	require.Panics(t, func() {
		appendVarInt(nil, MaxVarInt+1)
	})
}
