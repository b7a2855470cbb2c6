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

// Package transport defines the minimal IPv6/UDP envelope fields the
// DHCPv6 client engine reads and writes. Full IPv6/UDP/ICMPv6 framing,
// checksums, and extension headers are out of scope for the engine (see
// SPEC_FULL.md §6) and are the host runtime's responsibility.
package transport

import "net/netip"

// IPProtocol identifies the IPv6 next-header value carried by IPv6Repr.
type IPProtocol uint8

const (
	ProtocolUDP    IPProtocol = 17
	ProtocolICMPv6 IPProtocol = 58
)

// Well-known multicast and unspecified addresses the client needs by name.
var (
	LinkLocalAllRouters = netip.MustParseAddr("ff02::2")
	AllDHCPRelayAgents  = netip.MustParseAddr("ff02::1:2")
	Unspecified         = netip.IPv6Unspecified()
)

// IPv6Repr carries exactly the IPv6 header fields the engine consults or
// sets: source/destination, next header, payload length, and hop limit.
type IPv6Repr struct {
	Src        netip.Addr
	Dst        netip.Addr
	NextHeader IPProtocol
	PayloadLen int
	HopLimit   uint8
}

// UDPRepr carries the two UDP header fields the engine cares about.
type UDPRepr struct {
	SrcPort uint16
	DstPort uint16
}

// HeaderLen is the fixed UDP header size in bytes.
func (UDPRepr) HeaderLen() int { return 8 }
