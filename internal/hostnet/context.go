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

// Package hostnet wires the dhcpv6client engine to real sockets: an ICMPv6
// Router Discovery listener, a DHCPv6-over-UDP socket, and the production
// Context (wall-clock time, crypto-seeded randomness, interface hardware
// address) the engine consumes on every call.
package hostnet

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/insomniacslk/dhcp/dhcpv6"
	"github.com/insomniacslk/dhcp/iana"

	"github.com/jr42/dhcpv6-client/internal/dhcpv6client"
)

// systemPRNG backs dhcpv6client.PRNG with crypto/rand, matching the
// grounding source's use of an OS-backed CSPRNG for transaction ids and
// client identifiers rather than a fast, predictable generator.
type systemPRNG struct{}

func (systemPRNG) Uint32() uint32 {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand.Read failing indicates a broken host; there is no
		// sane fallback for a value that must be unpredictable.
		panic(fmt.Sprintf("hostnet: crypto/rand unavailable: %v", err))
	}
	return binary.BigEndian.Uint32(b[:])
}

func (systemPRNG) UUID() [16]byte {
	id, err := uuid.NewRandom()
	if err != nil {
		panic(fmt.Sprintf("hostnet: uuid generation failed: %v", err))
	}
	return [16]byte(id)
}

// InterfaceContext implements dhcpv6client.Context against a real network
// interface.
type InterfaceContext struct {
	ifi  *net.Interface
	rand systemPRNG
}

// NewInterfaceContext resolves name to a live interface and its hardware
// address.
func NewInterfaceContext(name string) (*InterfaceContext, error) {
	ifi, err := net.InterfaceByName(name)
	if err != nil {
		return nil, fmt.Errorf("hostnet: lookup interface %s: %w", name, err)
	}
	if len(ifi.HardwareAddr) != 6 {
		return nil, fmt.Errorf("hostnet: interface %s is not Ethernet (hwaddr len %d)", name, len(ifi.HardwareAddr))
	}
	return &InterfaceContext{ifi: ifi}, nil
}

// Interface returns the resolved *net.Interface.
func (c *InterfaceContext) Interface() *net.Interface { return c.ifi }

// Now implements dhcpv6client.Context.
func (c *InterfaceContext) Now() time.Time { return time.Now() }

// Rand implements dhcpv6client.Context.
func (c *InterfaceContext) Rand() dhcpv6client.PRNG { return c.rand }

// HardwareAddr implements dhcpv6client.Context.
func (c *InterfaceContext) HardwareAddr() net.HardwareAddr { return c.ifi.HardwareAddr }

// DUIDClientID builds a DUID-LL client identifier from the interface's
// hardware address, encoded per RFC 8415 section 11.2. Nothing in the
// engine or the daemon calls it, and no configuration setting selects it:
// the engine always uses its own client-id handling (see SPEC_FULL.md §10).
func DUIDClientID(ifi *net.Interface) []byte {
	duid := &dhcpv6.DUIDLL{
		HWType:        iana.HWTypeEthernet,
		LinkLayerAddr: ifi.HardwareAddr,
	}
	return duid.ToBytes()
}
