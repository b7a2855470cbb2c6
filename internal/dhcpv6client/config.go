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

package dhcpv6client

import (
	"net/netip"
	"time"

	"github.com/jr42/dhcpv6-client/internal/dhcpv6client/transport"
	"github.com/jr42/dhcpv6-client/internal/dhcpv6wire"
)

// RetryConfig controls the timeout and retry behavior of every state.
type RetryConfig struct {
	// InitialRequestTimeout doubles every 2 retries, up to a factor of
	// 2^8, in RouterSolicit/DhcpSolicit/DhcpRequesting.
	InitialRequestTimeout time.Duration
	// RequestRetries is the number of attempts allowed in DhcpRequesting
	// before the engine gives up and restarts from RouterSolicit.
	RequestRetries uint16
	// MinRenewTimeout is the floor on the retransmission interval while
	// renewing or rebinding a lease.
	MinRenewTimeout time.Duration
}

// DefaultRetryConfig matches the grounding source's Default impl.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		InitialRequestTimeout: 2 * time.Second,
		RequestRetries:        5,
		MinRenewTimeout:       60 * time.Second,
	}
}

// ServerInfo records how to reach the DHCPv6 server that granted the
// current lease. The identifier may differ from the on-wire source address
// when a relay agent is involved.
type ServerInfo struct {
	Address    netip.Addr
	Identifier []byte
}

// Config is the IPv6 configuration handed to the caller once a lease is
// confirmed.
type Config struct {
	Server     ServerInfo
	Address    netip.Prefix
	Router     netip.Addr
	DNSServers []netip.Addr
	// Packet is the registered receive buffer, when there is one. Its
	// leading bytes hold the most recently copied inbound payload (DHCPv6
	// or ICMPv6); it is the whole buffer, not trimmed to that payload's
	// length.
	Packet []byte
}

// Equal reports whether two Configs carry the same server, address,
// router, and DNS server list. It ignores Packet, which changes on every
// inbound message regardless of whether the configuration itself did.
func (c Config) Equal(o Config) bool {
	if c.Server.Address != o.Server.Address {
		return false
	}
	if string(c.Server.Identifier) != string(o.Server.Identifier) {
		return false
	}
	if c.Address != o.Address {
		return false
	}
	if c.Router != o.Router {
		return false
	}
	if len(c.DNSServers) != len(o.DNSServers) {
		return false
	}
	for i := range c.DNSServers {
		if c.DNSServers[i] != o.DNSServers[i] {
			return false
		}
	}
	return true
}

// EventKind distinguishes the two Event variants poll() may return.
type EventKind int

const (
	// EventDeconfigured means the previously held configuration (if any)
	// is no longer valid.
	EventDeconfigured EventKind = iota
	// EventConfigured carries a newly acquired or refreshed Config.
	EventConfigured
)

// Event is the return value of Socket.Poll.
type Event struct {
	Kind   EventKind
	Config Config
}

// DispatchKind distinguishes the two envelopes Dispatch's emit callback may
// receive.
type DispatchKind int

const (
	DispatchICMPv6 DispatchKind = iota
	DispatchDHCP
)

// DispatchEmit is the one-shot envelope passed to the Dispatch callback:
// either an ICMPv6 Router Solicitation or a DHCPv6-over-UDP message.
type DispatchEmit struct {
	Kind DispatchKind

	IPv6 transport.IPv6Repr

	// Populated when Kind == DispatchDHCP.
	UDP  transport.UDPRepr
	DHCP *dhcpv6wire.Repr

	// Populated when Kind == DispatchICMPv6. Concretely an
	// *ndp.RouterSolicitation from github.com/mdlayher/ndp, held as `any`.
	ICMPv6 any
}
