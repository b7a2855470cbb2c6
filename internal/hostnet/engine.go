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
	"context"
	"net"
	"net/netip"
	"time"

	"github.com/go-logr/logr"
	"github.com/mdlayher/ndp"

	"github.com/jr42/dhcpv6-client/internal/dhcpv6client"
	"github.com/jr42/dhcpv6-client/internal/dhcpv6client/transport"
	"github.com/jr42/dhcpv6-client/internal/dhcpv6wire"
)

// Engine owns the dhcpv6client.Socket and the two real sockets it is fed
// from. All Socket method calls happen on the single goroutine running
// Run, matching the single-owner concurrency model the engine was
// designed around: reader goroutines only ever forward raw deliveries
// over channels, never touch the socket directly.
type Engine struct {
	socket  *dhcpv6client.Socket
	ctx     *InterfaceContext
	icmpv6  *ICMPv6Socket
	udp     *UDPSocket
	log     logr.Logger
	onEvent func(dhcpv6client.Event)
}

// NewEngine wires socket to the ICMPv6/UDP sockets of ctx's interface.
func NewEngine(socket *dhcpv6client.Socket, ctx *InterfaceContext, icmpv6 *ICMPv6Socket, udp *UDPSocket, log logr.Logger, onEvent func(dhcpv6client.Event)) *Engine {
	return &Engine{socket: socket, ctx: ctx, icmpv6: icmpv6, udp: udp, log: log, onEvent: onEvent}
}

type icmpv6Delivery struct {
	msg  ndp.Message
	from netip.Addr
}

type udpDelivery struct {
	payload []byte
	from    netip.Addr
	srcPort uint16
}

// Run drives the engine until ctx is canceled. It never returns nil error
// on a clean shutdown; callers should treat context.Canceled as expected.
func (e *Engine) Run(ctx context.Context) error {
	icmpv6Ch := make(chan icmpv6Delivery, 8)
	udpCh := make(chan udpDelivery, 8)
	errCh := make(chan error, 2)

	localPort := dhcpv6wire.ClientPort
	if a, ok := e.udp.pc.LocalAddr().(*net.UDPAddr); ok {
		localPort = uint16(a.Port)
	}

	go e.readICMPv6Loop(ctx, icmpv6Ch, errCh)
	go e.readUDPLoop(ctx, udpCh, errCh)

	for {
		e.drainEvent()

		wait := time.Until(e.socket.PollAt(e.ctx))
		if wait < 0 {
			wait = 0
		}
		timer := time.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case err := <-errCh:
			timer.Stop()
			e.log.Error(err, "socket read loop stopped")
			return err
		case d := <-icmpv6Ch:
			timer.Stop()
			e.socket.ProcessICMPv6(e.ctx, icmpv6IPRepr(d.from), d.msg, nil)
		case d := <-udpCh:
			timer.Stop()
			e.socket.ProcessUDP(e.ctx, udpIPRepr(d.from), transport.UDPRepr{SrcPort: d.srcPort, DstPort: localPort}, d.payload)
		case <-timer.C:
		}

		if err := e.dispatch(ctx); err != nil {
			return err
		}
	}
}

func (e *Engine) drainEvent() {
	if e.onEvent == nil {
		return
	}
	if ev, ok := e.socket.Poll(); ok {
		e.onEvent(ev)
	}
}

func (e *Engine) dispatch(ctx context.Context) error {
	return e.socket.Dispatch(e.ctx, func(_ dhcpv6client.Context, emit dhcpv6client.DispatchEmit) error {
		switch emit.Kind {
		case dhcpv6client.DispatchICMPv6:
			msg, ok := emit.ICMPv6.(ndp.Message)
			if !ok {
				return nil
			}
			return e.icmpv6.Send(msg, emit.IPv6.Dst)
		case dhcpv6client.DispatchDHCP:
			// emit.IPv6.PayloadLen covers the UDP header too; the UDP
			// socket layer adds that header itself, so the wire buffer
			// only needs to hold the DHCPv6 message.
			buf := make([]byte, emit.DHCP.BufferLen())
			pkt := dhcpv6wire.NewPacket(buf)
			if err := dhcpv6wire.Emit(emit.DHCP, pkt); err != nil {
				return err
			}
			return e.udp.SendTo(buf, emit.IPv6.Dst, emit.UDP.DstPort)
		default:
			return nil
		}
	})
}

func (e *Engine) readICMPv6Loop(ctx context.Context, out chan<- icmpv6Delivery, errCh chan<- error) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		msg, from, err := e.icmpv6.ReadTimeout(time.Now().Add(time.Second))
		if err != nil {
			select {
			case errCh <- err:
			default:
			}
			return
		}
		if msg == nil {
			continue
		}
		select {
		case out <- icmpv6Delivery{msg: msg, from: from}:
		case <-ctx.Done():
			return
		}
	}
}

func (e *Engine) readUDPLoop(ctx context.Context, out chan<- udpDelivery, errCh chan<- error) {
	buf := make([]byte, 1500)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		n, from, srcPort, err := e.udp.ReadTimeout(buf, time.Now().Add(time.Second))
		if err != nil {
			select {
			case errCh <- err:
			default:
			}
			return
		}
		if n == 0 && !from.IsValid() {
			continue
		}
		payload := make([]byte, n)
		copy(payload, buf[:n])
		select {
		case out <- udpDelivery{payload: payload, from: from, srcPort: srcPort}:
		case <-ctx.Done():
			return
		}
	}
}

func icmpv6IPRepr(from netip.Addr) transport.IPv6Repr {
	return transport.IPv6Repr{Src: from, Dst: transport.LinkLocalAllRouters, NextHeader: transport.ProtocolICMPv6, HopLimit: 255}
}

func udpIPRepr(from netip.Addr) transport.IPv6Repr {
	return transport.IPv6Repr{Src: from, NextHeader: transport.ProtocolUDP}
}
