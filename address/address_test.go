// SPDX-License-Identifier: ice License 1.0

package address

import (
	"net"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // It's better to keep it together.
func TestFromWire(t *testing.T) {
	t.Parallel()
	v4 := FromWire(&net.UDPAddr{IP: net.IPv4(10, 0, 0, 1), Port: 443})
	assert.Equal(t, IPv4, v4.Family())
	assert.Equal(t, netip.MustParseAddr("10.0.0.1"), v4.IP())
	assert.Equal(t, uint16(443), v4.Port())
	assert.Equal(t, "10.0.0.1:443", v4.String())
	assert.Equal(t, "udp4", v4.Network())

	assert.Equal(t, v4, FromWire(&net.UDPAddr{IP: net.IP{10, 0, 0, 1}, Port: 443}))
	assert.Equal(t, v4, FromWire(&net.TCPAddr{IP: net.ParseIP("::ffff:10.0.0.1"), Port: 443}))
	assert.Equal(t, v4, FromAddrPort(netip.MustParseAddrPort("[::ffff:10.0.0.1]:443")))

	v6 := FromWire(&net.UDPAddr{IP: net.ParseIP("2001:db8::1"), Port: 8443})
	assert.Equal(t, IPv6, v6.Family())
	assert.Equal(t, "[2001:db8::1]:8443", v6.String())
	assert.Equal(t, "udp6", v6.Network())

	zoned := FromWire(&net.UDPAddr{IP: net.ParseIP("fe80::1"), Port: 53, Zone: "eth0"})
	assert.Equal(t, "eth0", zoned.IP().Zone())

	for name, addr := range map[string]net.Addr{
		"nil":           nil,
		"typed nil udp": (*net.UDPAddr)(nil),
		"typed nil tcp": (*net.TCPAddr)(nil),
		"empty ip":      &net.UDPAddr{Port: 1},
		"short ip":      &net.UDPAddr{IP: net.IP{1, 2, 3}, Port: 1},
		"bad port":      &net.UDPAddr{IP: net.IPv4(1, 2, 3, 4), Port: 70000},
		"unix":          &net.UnixAddr{Name: "/tmp/socket", Net: "unixgram"},
	} {
		instance := FromWire(addr)
		assert.True(t, instance.IsUnspecified(), name)
		assert.Equal(t, Unspecified, instance.Family(), name)
	}
	assert.Equal(t, "<unspecified>", Instance{}.String())
	assert.Equal(t, "udp", Instance{}.Network())
	assert.True(t, FromAddrPort(netip.AddrPort{}).IsUnspecified())
}

func TestToWire(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"127.0.0.1:0", "192.168.1.10:65535", "[::1]:443", "[2001:db8::5]:1", "[fe80::1%eth0]:53"} {
		instance := FromAddrPort(netip.MustParseAddrPort(raw))
		wire := ToWire(instance)
		require.NotNil(t, wire, raw)
		assert.Equal(t, raw, wire.String(), raw)
		assert.Equal(t, instance, FromWire(wire), raw)
	}
	v4 := ToWire(FromWire(&net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 80}))
	assert.Len(t, v4.IP, net.IPv4len)

	empty := ToWire(Instance{})
	require.NotNil(t, empty)
	assert.Nil(t, empty.IP)
	assert.Zero(t, empty.Port)
}

func TestAny(t *testing.T) {
	t.Parallel()
	v4 := Any(IPv4)
	assert.Equal(t, IPv4, v4.Family())
	assert.True(t, v4.IP().IsUnspecified())
	assert.Equal(t, "0.0.0.0:0", v4.String())
	v6 := Any(IPv6)
	assert.Equal(t, IPv6, v6.Family())
	assert.Equal(t, "[::]:0", v6.String())
	assert.True(t, Any(Unspecified).IsUnspecified())

	text, err := v6.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "[::]:0", string(text))
	assert.Equal(t, "IPv4", IPv4.String())
	assert.Equal(t, "IPv6", IPv6.String())
	assert.Equal(t, "Unspecified", Unspecified.String())
}
