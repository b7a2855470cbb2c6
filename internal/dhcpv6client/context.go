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
	"net"
	"time"
)

// PRNG is the randomness source the engine consumes. Production code backs
// it with crypto/rand-derived generators (see internal/hostnet); tests back
// it with a fixed sequence so transitions are reproducible.
type PRNG interface {
	// Uint32 returns a pseudo-random 32-bit transaction id candidate.
	Uint32() uint32
	// UUID returns a fresh 16-byte random identifier, used to mint the
	// client-id on the RouterSolicit -> DhcpSolicit transition.
	UUID() [16]byte
}

// Context is the downward API the host interface driver provides to the
// engine: current time, randomness, and this interface's hardware address.
// DHCPv6 as specified here is defined only for Ethernet-like media; a
// Context reporting any other hardware address kind is a programmer error.
type Context interface {
	Now() time.Time
	Rand() PRNG
	HardwareAddr() net.HardwareAddr
}
