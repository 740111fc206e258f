package packets

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteToMatchesEncode(t *testing.T) {
	pkt := &PingreqPacket{}

	var buf bytes.Buffer
	n, err := WriteTo(&buf, pkt)
	require.NoError(t, err)
	require.EqualValues(t, buf.Len(), n)
	require.Equal(t, Encode(pkt), buf.Bytes())
}
