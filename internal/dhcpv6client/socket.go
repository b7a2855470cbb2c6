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

// Package dhcpv6client implements the four-state DHCPv6 acquisition and
// renewal engine coupled to IPv6 Router Discovery, plus the socket façade
// that exposes it to a host interface driver. The engine never blocks: it
// is a pure transducer between inbound packet deliveries, poll-at-time
// queries, and dispatch calls (see SPEC_FULL.md §5).
package dhcpv6client

import (
	"bytes"
	"net"
	"net/netip"
	"time"

	"github.com/go-logr/logr"
	"github.com/mdlayher/ndp"

	"github.com/jr42/dhcpv6-client/internal/dhcpv6client/transport"
	"github.com/jr42/dhcpv6-client/internal/dhcpv6client/waker"
	"github.com/jr42/dhcpv6-client/internal/dhcpv6wire"
)

// Socket is the DHCPv6 client socket. It acquires an IPv6 address
// configuration through combined Router Discovery and DHCPv6 autonomously.
// Callers must query Poll after every Dispatch/ProcessICMPv6/ProcessUDP
// call and apply the returned configuration to the interface.
type Socket struct {
	state state

	configChanged bool
	transactionID uint32

	maxLeaseDuration *time.Duration
	retryConfig      RetryConfig
	ignoreNaks       bool

	serverPort uint16
	clientPort uint16

	outgoingOptions       []dhcpv6wire.Option
	parameterRequestList  []byte
	receivePacketBuffer   []byte

	waker *waker.Registration
	log   logr.Logger
}

type state = clientState

// New constructs a socket in RouterSolicit with config_changed already set,
// the default retry configuration, and the RFC 8415 default ports.
func New() *Socket {
	return &Socket{
		state:         newRouterSolicitState(),
		configChanged: true,
		transactionID: 1,
		retryConfig:   DefaultRetryConfig(),
		serverPort:    dhcpv6wire.ServerPort,
		clientPort:    dhcpv6wire.ClientPort,
		waker:         waker.New(),
		log:           logr.Discard(),
	}
}

// SetLogger attaches a structured logger. Passing the zero value disables
// logging; it never affects any transition or timer.
func (s *Socket) SetLogger(l logr.Logger) { s.log = l }

// SetRetryConfig replaces the timeout/retry configuration.
func (s *Socket) SetRetryConfig(c RetryConfig) { s.retryConfig = c }

// SetOutgoingOptions stores a pass-through set of options. The grounding
// source accepts this setter but never consults it from Dispatch (only the
// hardcoded DNS-servers request is ever added); that limitation is
// preserved here rather than silently completed (see SPEC_FULL.md §12).
func (s *Socket) SetOutgoingOptions(opts []dhcpv6wire.Option) { s.outgoingOptions = opts }

// SetReceivePacketBuffer installs the buffer that inbound payloads are
// copied into. A payload that doesn't fit is silently not copied; no
// truncated copy is ever written.
func (s *Socket) SetReceivePacketBuffer(buf []byte) { s.receivePacketBuffer = buf }

// SetParameterRequestList stores a pass-through parameter-request list.
// Like SetOutgoingOptions, the grounding source never consults this field
// from Dispatch; preserved verbatim.
func (s *Socket) SetParameterRequestList(list []byte) { s.parameterRequestList = list }

// MaxLeaseDuration returns the configured lease-duration cap, if any.
func (s *Socket) MaxLeaseDuration() (time.Duration, bool) {
	if s.maxLeaseDuration == nil {
		return 0, false
	}
	return *s.maxLeaseDuration, true
}

// SetMaxLeaseDuration caps the server-provided lease duration. A nil d
// removes the cap.
func (s *Socket) SetMaxLeaseDuration(d *time.Duration) { s.maxLeaseDuration = d }

// IgnoreNaks reports whether Decline messages are ignored.
func (s *Socket) IgnoreNaks() bool { return s.ignoreNaks }

// SetIgnoreNaks controls whether a Decline resets the engine. Setting this
// is not RFC-compliant but improves reliability against broken networks.
func (s *Socket) SetIgnoreNaks(v bool) { s.ignoreNaks = v }

// SetPorts overrides the server/client UDP ports.
func (s *Socket) SetPorts(serverPort, clientPort uint16) {
	s.serverPort = serverPort
	s.clientPort = clientPort
}

// RegisterWaker registers w, replacing any previously registered waker
// unless it already wakes the same task as w (see waker.Func.Key).
func (s *Socket) RegisterWaker(w waker.Func) { s.waker.Register(w) }

// AddWaker appends another waker to the notification chain.
func (s *Socket) AddWaker(w waker.Func) { s.waker.Add(w) }

// ClearWaker drops every registered waker without invoking them.
func (s *Socket) ClearWaker() { s.waker.Clear() }

// PollAt returns the earliest instant the host scheduler should invoke
// Dispatch. It is read-only and must never mutate state.
func (s *Socket) PollAt(ctx Context) time.Time {
	switch s.state.kind {
	case stateRouterSolicit:
		return s.state.routerSolicit.retryAt
	case stateDhcpSolicit:
		return s.state.dhcpSolicit.retryAt
	case stateDhcpRequesting:
		return s.state.dhcpRequesting.retryAt
	case stateDhcpRenewing:
		r := s.state.dhcpRenewing
		if r.renewAt.Before(r.expiresAt) {
			return r.renewAt
		}
		return r.expiresAt
	default:
		return time.Time{}
	}
}

// ProcessICMPv6 is offered every inbound ICMPv6 packet. Only Router
// Advertisements are meaningful, and only while in RouterSolicit.
func (s *Socket) ProcessICMPv6(ctx Context, ipRepr transport.IPv6Repr, msg ndp.Message, payload []byte) {
	s.log.V(2).Info("ICMPv6 recv", "from", ipRepr.Src, "type", messageTypeName(msg))
	s.copyReceiveBuffer(payload)

	if s.state.kind != stateRouterSolicit {
		// Silently ignore ICMPv6 past the router-solicit phase.
		return
	}

	ra, ok := msg.(*ndp.RouterAdvertisement)
	if !ok {
		s.log.V(1).Info("ICMPv6 ignoring: unexpected in current state", "type", messageTypeName(msg))
		return
	}

	if !ra.ManagedConfiguration {
		// SLAAC-only advertisements are out of scope; see SPEC_FULL.md §1.
		s.log.V(1).Info("ICMPv6 router advert ignored: router is not managed")
		return
	}

	mtu, ok := findMTU(ra.Options)
	if !ok {
		s.log.V(1).Info("ICMPv6 router advert ignored: missing MTU")
		return
	}

	prefixInfo, ok := findPrefixInformation(ra.Options)
	if !ok {
		s.log.V(1).Info("ICMPv6 router advert ignored: missing prefix info")
		return
	}

	clientID := ctx.Rand().UUID()
	s.state = clientState{kind: stateDhcpSolicit, dhcpSolicit: dhcpSolicitState{
		clientID:   clientID[:],
		retryAt:    time.Time{},
		retry:      0,
		mtu:        mtu,
		prefixInfo: prefixInfo,
	}}
}

// ProcessUDP is offered only payloads the interface driver has already
// filtered to src_port == server_port && dst_port == client_port.
func (s *Socket) ProcessUDP(ctx Context, ipRepr transport.IPv6Repr, udpRepr transport.UDPRepr, payload []byte) {
	srcIP := ipRepr.Src

	if udpRepr.SrcPort != s.serverPort || udpRepr.DstPort != s.clientPort {
		// Enforced by the interface driver; defend rather than trust.
		return
	}

	pkt, err := dhcpv6wire.NewCheckedPacket(payload)
	if err != nil {
		s.log.V(1).Info("DHCPv6 invalid pkt", "from", srcIP, "err", err)
		return
	}
	repr, err := dhcpv6wire.Parse(pkt)
	if err != nil {
		s.log.V(1).Info("DHCPv6 error parsing pkt", "from", srcIP, "err", err)
		return
	}

	if repr.TransactionID != s.transactionID {
		return
	}
	if repr.ServerID == nil {
		s.log.V(1).Info("DHCPv6 ignoring: missing server_identifier", "type", repr.MessageType)
		return
	}

	s.log.V(1).Info("DHCPv6 recv", "type", repr.MessageType, "from", srcIP)
	s.copyReceiveBuffer(payload)

	switch {
	case s.state.kind == stateRouterSolicit:
		// Silently ignore DHCP traffic while still soliciting the router.
	case s.state.kind == stateDhcpSolicit && repr.MessageType == dhcpv6wire.MessageTypeAdvertise:
		s.handleAdvertise(ctx, srcIP, repr)
	case s.state.kind == stateDhcpRequesting && repr.MessageType == dhcpv6wire.MessageTypeConfirm:
		s.handleRequestingConfirm(ctx, srcIP, repr)
	case s.state.kind == stateDhcpRequesting && repr.MessageType == dhcpv6wire.MessageTypeDecline:
		if !s.ignoreNaks {
			s.Reset()
		}
	case s.state.kind == stateDhcpRenewing && repr.MessageType == dhcpv6wire.MessageTypeConfirm:
		s.handleRenewingConfirm(ctx, srcIP, repr)
	case s.state.kind == stateDhcpRenewing && repr.MessageType == dhcpv6wire.MessageTypeDecline:
		if !s.ignoreNaks {
			s.Reset()
		}
	default:
		s.log.V(1).Info("DHCPv6 ignoring: unexpected in current state", "type", repr.MessageType, "state", s.state.kind.String())
	}
}

func (s *Socket) handleAdvertise(ctx Context, srcIP netip.Addr, repr *dhcpv6wire.Repr) {
	st := s.state.dhcpSolicit

	if repr.IANA == nil {
		s.log.V(1).Info("DHCPv6 ignoring advertise: missing an IA_NA section")
		return
	}
	if len(repr.IANA.Addresses) == 0 {
		s.log.V(1).Info("DHCPv6 ignoring advertise: missing addresses in the IA_NA section")
		return
	}
	if repr.ClientID == nil {
		s.log.V(1).Info("DHCPv6 ignoring advertise: missing a client identifier")
		return
	}
	if !bytes.Equal(repr.ClientID, st.clientID) {
		s.log.V(1).Info("DHCPv6 ignoring advertise: client identifier does not match")
		return
	}
	if repr.ServerID == nil {
		s.log.V(1).Info("DHCPv6 ignoring advertise: missing a server identifier")
		return
	}

	serverID := append([]byte(nil), repr.ServerID...)
	clientID := append([]byte(nil), st.clientID...)

	s.state = clientState{kind: stateDhcpRequesting, dhcpRequesting: dhcpRequestingState{
		clientID:    clientID,
		retryAt:     ctx.Now(),
		retry:       0,
		server:      ServerInfo{Address: srcIP, Identifier: serverID},
		requestedIP: repr.IANA.Addresses[0].Addr,
		mtu:         st.mtu,
		iaid:        repr.IANA.IAID,
		prefixInfo:  st.prefixInfo,
	}}
}

func (s *Socket) handleRequestingConfirm(ctx Context, srcIP netip.Addr, repr *dhcpv6wire.Repr) {
	st := s.state.dhcpRequesting

	if repr.IANA == nil {
		s.log.V(1).Info("DHCPv6 ignoring confirm: missing an IA_NA section")
		return
	}
	if repr.ClientID == nil || !bytes.Equal(repr.ClientID, st.clientID) {
		s.log.V(1).Info("DHCPv6 ignoring confirm: client identifier mismatch or missing")
		return
	}
	if repr.ServerID == nil || !bytes.Equal(repr.ServerID, st.server.Identifier) {
		s.log.V(1).Info("DHCPv6 ignoring confirm: server identifier mismatch or missing")
		return
	}

	cfg, renewAt, expiresAt, ok := s.parseAck(ctx.Now(), srcIP, repr, st.server, st.prefixInfo)
	if !ok {
		return
	}

	clientID := append([]byte(nil), st.clientID...)
	s.state = clientState{kind: stateDhcpRenewing, dhcpRenewing: dhcpRenewingState{
		clientID:   clientID,
		iaid:       st.iaid,
		config:     cfg,
		renewAt:    renewAt,
		expiresAt:  expiresAt,
		mtu:        st.mtu,
		prefixInfo: st.prefixInfo,
	}}
	s.markConfigChanged()
}

func (s *Socket) handleRenewingConfirm(ctx Context, srcIP netip.Addr, repr *dhcpv6wire.Repr) {
	st := s.state.dhcpRenewing

	if repr.IANA == nil {
		s.log.V(1).Info("DHCPv6 ignoring confirm: missing an IA_NA section")
		return
	}
	if repr.ClientID == nil || !bytes.Equal(repr.ClientID, st.clientID) {
		s.log.V(1).Info("DHCPv6 ignoring confirm: client identifier mismatch or missing")
		return
	}
	if repr.ServerID == nil || !bytes.Equal(repr.ServerID, st.config.Server.Identifier) {
		s.log.V(1).Info("DHCPv6 ignoring confirm: server identifier mismatch or missing")
		return
	}

	cfg, renewAt, expiresAt, ok := s.parseAck(ctx.Now(), srcIP, repr, st.config.Server, st.prefixInfo)
	if !ok {
		return
	}

	st.renewAt = renewAt
	st.expiresAt = expiresAt
	// Receiving any packet changes the receive-packet buffer's contents,
	// so a config-changed event fires whenever a buffer is registered even
	// if the parsed configuration is identical; only the rest of the
	// config is conditionally updated.
	configChanged := !st.config.Equal(cfg) || s.receivePacketBuffer != nil
	if !st.config.Equal(cfg) {
		st.config = cfg
	}
	s.state.dhcpRenewing = st

	if configChanged {
		s.markConfigChanged()
	}
}

// parseAck validates an IA_NA-bearing reply and derives the resulting
// Config plus renew/expiry instants.
func (s *Socket) parseAck(now time.Time, srcIP netip.Addr, repr *dhcpv6wire.Repr, server ServerInfo, prefixInfo ndp.PrefixInformation) (Config, time.Time, time.Time, bool) {
	ia := repr.IANA

	if len(ia.Addresses) == 0 {
		s.log.V(1).Info("DHCPv6 ignoring confirm: missing addresses in the IA_NA section")
		return Config{}, time.Time{}, time.Time{}, false
	}
	if ia.StatusCode != nil && ia.StatusCode.Code != dhcpv6wire.StatusSuccess {
		s.log.V(1).Info("DHCPv6 ignoring confirm: status code is not success", "status", ia.StatusCode.Code)
		return Config{}, time.Time{}, time.Time{}, false
	}

	yourAddr := ia.Addresses[0].Addr

	leaseDuration := time.Duration(ia.T1) * time.Second
	if s.maxLeaseDuration != nil && *s.maxLeaseDuration < leaseDuration {
		leaseDuration = *s.maxLeaseDuration
	}

	var dnsServers []netip.Addr
	if repr.DNSServers != nil {
		for _, a := range repr.DNSServers.Addresses {
			if !a.IsMulticast() {
				dnsServers = appendDNS(dnsServers, a)
			}
		}
	}

	cfg := Config{
		Server:     server,
		Address:    netip.PrefixFrom(yourAddr, int(prefixInfo.PrefixLength)),
		Router:     srcIP,
		DNSServers: dnsServers,
	}

	renewAt := now.Add(time.Duration(ia.T2) * time.Second)
	expiresAt := now.Add(leaseDuration)
	return cfg, renewAt, expiresAt, true
}

func appendDNS(s []netip.Addr, a netip.Addr) []netip.Addr {
	if len(s) >= dhcpv6wire.MaxDNSAddresses {
		return s
	}
	return append(s, a)
}

// Dispatch is called by the host scheduler no earlier than PollAt's
// reported instant. It is a no-op if the per-state retry/renew timer has
// not yet elapsed. Transaction-id is only latched after emit succeeds, so
// a failed transmit never desynchronizes response matching.
func (s *Socket) Dispatch(ctx Context, emit func(Context, DispatchEmit) error) error {
	hw := ctx.HardwareAddr()
	if len(hw) != 6 {
		panic("dhcpv6client: using DHCPv6 socket with a non-ethernet hardware address")
	}

	nextTransactionID := ctx.Rand().Uint32()

	repr := &dhcpv6wire.Repr{
		MessageType:   dhcpv6wire.MessageTypeSolicit,
		TransactionID: nextTransactionID,
		ClientID:      []byte(hw),
	}
	repr.AddRequestOption(dhcpv6wire.OptDNSServers)

	udpRepr := transport.UDPRepr{SrcPort: s.clientPort, DstPort: s.serverPort}
	ipv6Repr := transport.IPv6Repr{
		Src:        transport.Unspecified,
		Dst:        transport.LinkLocalAllRouters,
		NextHeader: transport.ProtocolUDP,
		HopLimit:   64,
	}

	switch s.state.kind {
	case stateRouterSolicit:
		return s.dispatchRouterSolicit(ctx, hw, emit, nextTransactionID)
	case stateDhcpSolicit:
		return s.dispatchDhcpSolicit(ctx, repr, udpRepr, ipv6Repr, emit, nextTransactionID)
	case stateDhcpRequesting:
		return s.dispatchDhcpRequesting(ctx, repr, udpRepr, ipv6Repr, emit, nextTransactionID)
	case stateDhcpRenewing:
		return s.dispatchDhcpRenewing(ctx, repr, udpRepr, ipv6Repr, emit, nextTransactionID)
	default:
		return nil
	}
}

func (s *Socket) dispatchRouterSolicit(ctx Context, hw net.HardwareAddr, emit func(Context, DispatchEmit) error, nextTransactionID uint32) error {
	st := s.state.routerSolicit
	if ctx.Now().Before(st.retryAt) {
		return nil
	}

	sol := &ndp.RouterSolicitation{
		Options: []ndp.Option{&ndp.LinkLayerAddress{Direction: ndp.Source, Addr: hw}},
	}
	icmpIPv6 := transport.IPv6Repr{
		Src:        transport.Unspecified,
		Dst:        transport.LinkLocalAllRouters,
		NextHeader: transport.ProtocolICMPv6,
		HopLimit:   64,
	}

	s.log.V(1).Info("ICMPv6 send ROUTER SOLICIT", "to", icmpIPv6.Dst)
	if err := emit(ctx, DispatchEmit{Kind: DispatchICMPv6, IPv6: icmpIPv6, ICMPv6: sol}); err != nil {
		return err
	}

	st.retryAt = ctx.Now().Add(backoff(s.retryConfig.InitialRequestTimeout, st.retry))
	st.retry++
	s.state.routerSolicit = st
	s.transactionID = nextTransactionID
	return nil
}

func (s *Socket) dispatchDhcpSolicit(ctx Context, repr *dhcpv6wire.Repr, udpRepr transport.UDPRepr, ipv6Repr transport.IPv6Repr, emit func(Context, DispatchEmit) error, nextTransactionID uint32) error {
	st := s.state.dhcpSolicit
	if ctx.Now().Before(st.retryAt) {
		return nil
	}

	s.log.V(1).Info("DHCPv6 send solicit", "to", ipv6Repr.Dst)
	ipv6Repr.PayloadLen = udpRepr.HeaderLen() + repr.BufferLen()
	if err := emit(ctx, DispatchEmit{Kind: DispatchDHCP, IPv6: ipv6Repr, UDP: udpRepr, DHCP: repr}); err != nil {
		return err
	}

	st.retryAt = ctx.Now().Add(backoff(s.retryConfig.InitialRequestTimeout, st.retry))
	st.retry++
	s.state.dhcpSolicit = st
	s.transactionID = nextTransactionID
	return nil
}

func (s *Socket) dispatchDhcpRequesting(ctx Context, repr *dhcpv6wire.Repr, udpRepr transport.UDPRepr, ipv6Repr transport.IPv6Repr, emit func(Context, DispatchEmit) error, nextTransactionID uint32) error {
	st := s.state.dhcpRequesting
	if ctx.Now().Before(st.retryAt) {
		return nil
	}
	if st.retry >= s.retryConfig.RequestRetries {
		s.log.V(1).Info("DHCPv6 request retries exceeded, restarting discovery")
		s.Reset()
		return nil
	}

	repr.MessageType = dhcpv6wire.MessageTypeRequest
	repr.ServerID = st.server.Identifier
	repr.IANA = &dhcpv6wire.IANA{
		IAID: st.iaid,
		Addresses: []dhcpv6wire.IAAddr{{
			Addr:              st.requestedIP,
			PreferredLifetime: 604800,
			ValidLifetime:     2592000,
		}},
	}

	s.log.V(1).Info("DHCPv6 send REQUEST", "to", ipv6Repr.Dst)
	ipv6Repr.PayloadLen = udpRepr.HeaderLen() + repr.BufferLen()
	if err := emit(ctx, DispatchEmit{Kind: DispatchDHCP, IPv6: ipv6Repr, UDP: udpRepr, DHCP: repr}); err != nil {
		return err
	}

	st.retryAt = ctx.Now().Add(backoff(s.retryConfig.InitialRequestTimeout, st.retry))
	st.retry++
	s.state.dhcpRequesting = st
	s.transactionID = nextTransactionID
	return nil
}

func (s *Socket) dispatchDhcpRenewing(ctx Context, repr *dhcpv6wire.Repr, udpRepr transport.UDPRepr, ipv6Repr transport.IPv6Repr, emit func(Context, DispatchEmit) error, nextTransactionID uint32) error {
	st := s.state.dhcpRenewing
	now := ctx.Now()

	if !st.expiresAt.After(now) {
		s.log.V(1).Info("DHCPv6 lease expired")
		s.Reset()
		return nil
	}
	if now.Before(st.renewAt) {
		return nil
	}

	repr.MessageType = dhcpv6wire.MessageTypeRenew
	repr.ServerID = st.config.Server.Identifier
	repr.IANA = &dhcpv6wire.IANA{
		IAID: st.iaid,
		Addresses: []dhcpv6wire.IAAddr{{
			Addr:              st.config.Address.Addr(),
			PreferredLifetime: 604800,
			ValidLifetime:     2592000,
		}},
	}
	ipv6Repr.Src = st.config.Address.Addr()
	ipv6Repr.Dst = st.config.Server.Address

	s.log.V(1).Info("DHCPv6 send RENEW", "to", ipv6Repr.Dst)
	ipv6Repr.PayloadLen = udpRepr.HeaderLen() + repr.BufferLen()
	if err := emit(ctx, DispatchEmit{Kind: DispatchDHCP, IPv6: ipv6Repr, UDP: udpRepr, DHCP: repr}); err != nil {
		return err
	}

	// In both RENEWING and REBINDING, if no response arrives the client
	// SHOULD wait one-half of the remaining time before T2/expiry, down to
	// a configured floor, before retransmitting.
	remaining := st.expiresAt.Sub(now) / 2
	wait := s.retryConfig.MinRenewTimeout
	if remaining > wait {
		wait = remaining
	}
	st.renewAt = now.Add(wait)
	s.state.dhcpRenewing = st
	s.transactionID = nextTransactionID
	return nil
}

func backoff(initial time.Duration, retry uint16) time.Duration {
	capped := retry
	if capped > 16 {
		capped = 16
	}
	return initial << (capped / 2)
}

// Reset restarts discovery from RouterSolicit. Use this to speed up
// acquisition on a new network after a link bounce.
func (s *Socket) Reset() {
	s.log.V(2).Info("DHCPv6 reset")
	if s.state.kind == stateDhcpRenewing {
		s.markConfigChanged()
	}
	s.state = newRouterSolicitState()
}

// Poll returns the pending configuration-change event, if any, clearing
// the internal flag.
func (s *Socket) Poll() (Event, bool) {
	if !s.configChanged {
		return Event{}, false
	}
	s.configChanged = false

	if s.state.kind == stateDhcpRenewing {
		cfg := s.state.dhcpRenewing.config
		cfg.Packet = s.receivePacketBuffer
		return Event{Kind: EventConfigured, Config: cfg}, true
	}
	return Event{Kind: EventDeconfigured}, true
}

// markConfigChanged sets the config-changed flag and synchronously wakes
// any registered callbacks.
func (s *Socket) markConfigChanged() {
	s.configChanged = true
	s.waker.WakeAll()
}

func (s *Socket) copyReceiveBuffer(payload []byte) {
	if s.receivePacketBuffer == nil {
		return
	}
	if len(payload) > len(s.receivePacketBuffer) {
		return
	}
	copy(s.receivePacketBuffer[:len(payload)], payload)
}

func findMTU(opts []ndp.Option) (uint32, bool) {
	for _, opt := range opts {
		if mtu, ok := opt.(*ndp.MTU); ok {
			return uint32(*mtu), true
		}
	}
	return 0, false
}

func findPrefixInformation(opts []ndp.Option) (ndp.PrefixInformation, bool) {
	for _, opt := range opts {
		if pi, ok := opt.(*ndp.PrefixInformation); ok {
			return *pi, true
		}
	}
	return ndp.PrefixInformation{}, false
}

func messageTypeName(msg ndp.Message) string {
	switch msg.(type) {
	case *ndp.RouterSolicitation:
		return "router-solicitation"
	case *ndp.RouterAdvertisement:
		return "router-advertisement"
	case *ndp.NeighborSolicitation:
		return "neighbor-solicitation"
	case *ndp.NeighborAdvertisement:
		return "neighbor-advertisement"
	case *ndp.Redirect:
		return "redirect"
	default:
		return "unknown"
	}
}
