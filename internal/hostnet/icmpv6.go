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

	"github.com/mdlayher/ndp"
)

// ICMPv6Socket listens for Router Advertisements and sends Router
// Solicitations on one interface. It is grounded on
// internal/prefix/ra_receiver.go's ndp.Listen/ReadFrom loop, adapted from a
// standalone passive observer into the transmit+receive half of the
// poll/dispatch engine.
type ICMPv6Socket struct {
	conn *ndp.Conn
	ifi  *net.Interface
}

// NewICMPv6Socket opens a link-local ICMPv6 listener on ifi.
func NewICMPv6Socket(ifi *net.Interface) (*ICMPv6Socket, error) {
	conn, _, err := ndp.Listen(ifi, ndp.LinkLocal)
	if err != nil {
		return nil, fmt.Errorf("hostnet: open ICMPv6 socket on %s: %w", ifi.Name, err)
	}
	return &ICMPv6Socket{conn: conn, ifi: ifi}, nil
}

// Close releases the underlying socket.
func (s *ICMPv6Socket) Close() error { return s.conn.Close() }

// ReadTimeout blocks until an NDP message arrives, deadline elapses,
// or an error occurs. It returns (nil, zero-addr, nil) on a read timeout so
// callers can re-check their own cancellation signal between reads, the
// same pattern ra_receiver.go uses.
func (s *ICMPv6Socket) ReadTimeout(deadline time.Time) (ndp.Message, netip.Addr, error) {
	if err := s.conn.SetReadDeadline(deadline); err != nil {
		return nil, netip.Addr{}, fmt.Errorf("hostnet: set ICMPv6 read deadline: %w", err)
	}
	msg, _, from, err := s.conn.ReadFrom()
	if err != nil {
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			return nil, netip.Addr{}, nil
		}
		return nil, netip.Addr{}, fmt.Errorf("hostnet: read ICMPv6 message: %w", err)
	}
	return msg, from, nil
}

// Send writes msg to dst. dst is normally transport.LinkLocalAllRouters.
func (s *ICMPv6Socket) Send(msg ndp.Message, dst netip.Addr) error {
	if err := s.conn.WriteTo(msg, nil, dst); err != nil {
		return fmt.Errorf("hostnet: write ICMPv6 message to %s: %w", dst, err)
	}
	return nil
}
