package packets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixedHeaderFlagEnforcement(t *testing.T) {
	cases := []struct {
		name       string
		packetType uint8
		flags      uint8
		wantErr    bool
	}{
		{"connect correct flags", CONNECT, 0x0, false},
		{"connect bad flags", CONNECT, 0x2, true},
		{"pubrel correct flags", PUBREL, 0x2, false},
		{"pubrel bad flags", PUBREL, 0x0, true},
		{"subscribe correct flags", SUBSCRIBE, 0x2, false},
		{"subscribe bad flags", SUBSCRIBE, 0x0, true},
		{"unsubscribe correct flags", UNSUBSCRIBE, 0x2, false},
		{"unsubscribe bad flags", UNSUBSCRIBE, 0x3, true},
		{"publish any non-qos3 flags ok", PUBLISH, 0x0D, false},
		{"publish qos3 rejected", PUBLISH, 0x06, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := []byte{(tc.packetType << 4) | (tc.flags & 0x0F), 0x00}
			_, _, err := DecodeFixedHeader(buf)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCheckHeaderReportsTotalSize(t *testing.T) {
	buf := []byte{0xC0, 0x00, 0xFF, 0xFF} // PINGREQ, remaining length 0
	total, err := CheckHeader(buf)
	require.NoError(t, err)
	require.Equal(t, 2, total)
}
