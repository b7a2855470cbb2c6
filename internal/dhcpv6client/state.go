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

	"github.com/mdlayher/ndp"
)

// stateKind tags exactly which of the four client states is active. Using
// a discriminated struct (kind + per-variant payload in a dedicated
// value field) rather than an interface keeps the zero value well
// defined and avoids a class hierarchy, per the design notes carried over
// from the grounding source.
type stateKind int

const (
	stateRouterSolicit stateKind = iota
	stateDhcpSolicit
	stateDhcpRequesting
	stateDhcpRenewing
)

func (k stateKind) String() string {
	switch k {
	case stateRouterSolicit:
		return "RouterSolicit"
	case stateDhcpSolicit:
		return "DhcpSolicit"
	case stateDhcpRequesting:
		return "DhcpRequesting"
	case stateDhcpRenewing:
		return "DhcpRenewing"
	default:
		return "unknown"
	}
}

// clientState holds exactly one of the four variant payloads, selected by
// kind. Transitions replace the whole value rather than mutating a shared
// struct, so exactly one variant is ever "live".
type clientState struct {
	kind stateKind

	routerSolicit  routerSolicitState
	dhcpSolicit    dhcpSolicitState
	dhcpRequesting dhcpRequestingState
	dhcpRenewing   dhcpRenewingState
}

type routerSolicitState struct {
	retryAt time.Time
	retry   uint16
}

type dhcpSolicitState struct {
	clientID   []byte
	retryAt    time.Time
	retry      uint16
	mtu        uint32
	prefixInfo ndp.PrefixInformation
}

type dhcpRequestingState struct {
	clientID    []byte
	retryAt     time.Time
	retry       uint16
	iaid        uint32
	server      ServerInfo
	requestedIP netip.Addr
	mtu         uint32
	prefixInfo  ndp.PrefixInformation
}

type dhcpRenewingState struct {
	config     Config
	clientID   []byte
	iaid       uint32
	renewAt    time.Time
	expiresAt  time.Time
	mtu        uint32
	prefixInfo ndp.PrefixInformation
}

func newRouterSolicitState() clientState {
	return clientState{kind: stateRouterSolicit, routerSolicit: routerSolicitState{
		retryAt: time.Time{},
		retry:   0,
	}}
}
