// SPDX-License-Identifier: ice License 1.0

package address

import (
	"math"
	"net"
	"net/netip"
)

// FromWire converts a transport address into an Instance.
// IPv4 addresses in 16-byte or IPv4-mapped IPv6 form are normalized to IPv4.
// Anything that is not a valid IP socket address yields the unspecified Instance.
func FromWire(addr net.Addr) Instance {
	switch typed := addr.(type) {
	case *net.UDPAddr:
		if typed == nil {
			return Instance{}
		}

		return fromIP(typed.IP, typed.Port, typed.Zone)
	case *net.TCPAddr:
		if typed == nil {
			return Instance{}
		}

		return fromIP(typed.IP, typed.Port, typed.Zone)
	case nil:
		return Instance{}
	default:
		parsed, err := netip.ParseAddrPort(addr.String())
		if err != nil {
			return Instance{}
		}

		return FromAddrPort(parsed)
	}
}

func FromAddrPort(addrPort netip.AddrPort) Instance {
	if !addrPort.IsValid() {
		return Instance{}
	}
	ip := addrPort.Addr()
	if ip.Is4In6() {
		ip = ip.Unmap()
	}

	return Instance{addrPort: netip.AddrPortFrom(ip, addrPort.Port())}
}

func fromIP(ip net.IP, port int, zone string) Instance {
	parsed, ok := netip.AddrFromSlice(ip)
	if !ok || port < 0 || port > math.MaxUint16 {
		return Instance{}
	}
	parsed = parsed.Unmap()
	if zone != "" && parsed.Is6() {
		parsed = parsed.WithZone(zone)
	}

	return Instance{addrPort: netip.AddrPortFrom(parsed, uint16(port))}
}

// ToWire converts an Instance back into a transport address.
// The unspecified Instance maps to an empty *net.UDPAddr.
func ToWire(ip Instance) *net.UDPAddr {
	if !ip.addrPort.IsValid() {
		return &net.UDPAddr{}
	}

	return net.UDPAddrFromAddrPort(ip.addrPort)
}

// Any returns the wildcard address of the given family with port 0.
func Any(family Family) Instance {
	switch family {
	case IPv4:
		return Instance{addrPort: netip.AddrPortFrom(netip.IPv4Unspecified(), 0)}
	case IPv6:
		return Instance{addrPort: netip.AddrPortFrom(netip.IPv6Unspecified(), 0)}
	default:
		return Instance{}
	}
}

func (i Instance) Family() Family {
	switch {
	case !i.addrPort.IsValid():
		return Unspecified
	case i.addrPort.Addr().Is4():
		return IPv4
	default:
		return IPv6
	}
}

func (i Instance) IsUnspecified() bool {
	return !i.addrPort.IsValid()
}

func (i Instance) IP() netip.Addr {
	return i.addrPort.Addr()
}

func (i Instance) Port() uint16 {
	return i.addrPort.Port()
}

func (i Instance) AddrPort() netip.AddrPort {
	return i.addrPort
}

// Network returns the UDP network name matching the family, "udp" when unspecified.
func (i Instance) Network() string {
	switch i.Family() {
	case IPv4:
		return "udp4"
	case IPv6:
		return "udp6"
	default:
		return "udp"
	}
}

func (i Instance) String() string {
	if i.IsUnspecified() {
		return unspecifiedText
	}

	return i.addrPort.String()
}

func (i Instance) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (f Family) String() string {
	switch f {
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	default:
		return "Unspecified"
	}
}
