/*
Copyright 2026 jr42.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package hostnet

import (
	"fmt"
	"net"
	"net/netip"
	"time"

	"github.com/insomniacslk/dhcp/dhcpv6/server6"
	"golang.org/x/net/ipv6"

	"github.com/jr42/dhcpv6-client/internal/dhcpv6client/transport"
)

// UDPSocket is the client-port half of the DHCPv6 conversation: bound to
// [::]:546 on one interface and joined to the All_DHCP_Relay_Agents_and_Servers
// multicast group (ff02::1:2). The engine addresses its Solicit/Request
// messages to ff02::2, not to this group. Grounded on coredhcp-coredhcp's server/serve.go
// listen6, which builds the same ipv6.PacketConn-over-UDP plus JoinGroup
// shape for a DHCPv6 listener.
type UDPSocket struct {
	pc  *ipv6.PacketConn
	ifi *net.Interface
}

// NewUDPSocket binds the DHCPv6 client port on ifi.
func NewUDPSocket(ifi *net.Interface, clientPort uint16) (*UDPSocket, error) {
	addr := &net.UDPAddr{IP: net.IPv6unspecified, Port: int(clientPort), Zone: ifi.Name}
	conn, err := server6.NewIPv6UDPConn(ifi.Name, addr)
	if err != nil {
		return nil, fmt.Errorf("hostnet: bind DHCPv6 client port on %s: %w", ifi.Name, err)
	}
	pc := ipv6.NewPacketConn(conn)

	group := &net.UDPAddr{IP: net.ParseIP(transport.AllDHCPRelayAgents.String())}
	if err := pc.JoinGroup(ifi, group); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("hostnet: join %s on %s: %w", transport.AllDHCPRelayAgents, ifi.Name, err)
	}

	return &UDPSocket{pc: pc, ifi: ifi}, nil
}

// Close releases the underlying socket.
func (s *UDPSocket) Close() error { return s.pc.Close() }

// ReadTimeout reads one datagram, returning (0, zero, zero, nil) on a
// read timeout so the caller's poll loop can re-check its own
// cancellation between reads.
func (s *UDPSocket) ReadTimeout(buf []byte, deadline time.Time) (int, netip.Addr, uint16, error) {
	if err := s.pc.SetReadDeadline(deadline); err != nil {
		return 0, netip.Addr{}, 0, fmt.Errorf("hostnet: set UDP read deadline: %w", err)
	}
	n, _, src, err := s.pc.ReadFrom(buf)
	if err != nil {
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			return 0, netip.Addr{}, 0, nil
		}
		return 0, netip.Addr{}, 0, fmt.Errorf("hostnet: read UDP datagram: %w", err)
	}
	udpSrc, ok := src.(*net.UDPAddr)
	if !ok {
		return 0, netip.Addr{}, 0, fmt.Errorf("hostnet: unexpected source address type %T", src)
	}
	addr, ok := netip.AddrFromSlice(udpSrc.IP)
	if !ok {
		return 0, netip.Addr{}, 0, fmt.Errorf("hostnet: invalid source address %v", udpSrc.IP)
	}
	return n, addr, uint16(udpSrc.Port), nil
}

// SendTo writes payload to dst:dstPort.
func (s *UDPSocket) SendTo(payload []byte, dst netip.Addr, dstPort uint16) error {
	addr := &net.UDPAddr{IP: net.IP(dst.AsSlice()), Port: int(dstPort), Zone: s.ifi.Name}
	if _, err := s.pc.WriteTo(payload, nil, addr); err != nil {
		return fmt.Errorf("hostnet: write UDP datagram to %s: %w", addr, err)
	}
	return nil
}
