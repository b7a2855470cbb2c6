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

package dhcpv6wire

import (
	"net/netip"
	"testing"
)

func TestPacketTransactionIDMasking(t *testing.T) {
	buf := make([]byte, optionsOffset)
	p := NewPacket(buf)
	p.SetTransactionID(0xFFFFFFFF)
	if got, want := p.TransactionID(), uint32(0x00FFFFFF); got != want {
		t.Fatalf("TransactionID() = %#x, want %#x", got, want)
	}
}

func TestPacketMessageTypeRoundTrip(t *testing.T) {
	buf := make([]byte, optionsOffset)
	p := NewPacket(buf)
	p.SetMessageType(MessageTypeSolicit)
	if got := p.MessageType(); got != MessageTypeSolicit {
		t.Fatalf("MessageType() = %v, want %v", got, MessageTypeSolicit)
	}
}

func TestNewCheckedPacketShort(t *testing.T) {
	if _, err := NewCheckedPacket([]byte{1, 2, 3}); err != ErrShortPacket {
		t.Fatalf("NewCheckedPacket(3 bytes) error = %v, want %v", err, ErrShortPacket)
	}
}

func TestParseOptionsStopsOnTruncatedLength(t *testing.T) {
	// Declares a 10-byte option but only supplies 2 bytes of data.
	buf := []byte{0x00, 0x01, 0x00, 0x0A, 0xAA, 0xBB}
	var seen []Option
	ParseOptions(buf, func(o Option) bool {
		seen = append(seen, o)
		return true
	})
	if len(seen) != 0 {
		t.Fatalf("ParseOptions yielded %d options over a truncated buffer, want 0", len(seen))
	}
}

func TestOptionWriterEmitRoundTrip(t *testing.T) {
	buf := make([]byte, 32)
	w := NewOptionWriter(buf)
	if err := w.Emit(Option{Kind: OptClientID, Data: []byte{1, 2, 3}}); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	var got []Option
	ParseOptions(buf[:4+3], func(o Option) bool {
		got = append(got, o)
		return true
	})
	if len(got) != 1 || got[0].Kind != OptClientID || string(got[0].Data) != "\x01\x02\x03" {
		t.Fatalf("round-tripped option = %+v", got)
	}
}

func TestOptionWriterBufferTooShort(t *testing.T) {
	w := NewOptionWriter(make([]byte, 3))
	if err := w.Emit(Option{Kind: OptClientID, Data: []byte{1, 2, 3}}); err != ErrBufferTooShort {
		t.Fatalf("Emit error = %v, want %v", err, ErrBufferTooShort)
	}
}

func TestReprEmitParseRoundTrip(t *testing.T) {
	addr := netip.MustParseAddr("2001:db8::1")
	r := &Repr{
		MessageType:   MessageTypeRequest,
		TransactionID: 0x123456,
		ClientID:      []byte{0x00, 0x01, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF},
		ServerID:      []byte{0x00, 0x02, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66},
		IANA: &IANA{
			IAID: 42,
			T1:   100,
			T2:   200,
			Addresses: []IAAddr{
				{Addr: addr, PreferredLifetime: 300, ValidLifetime: 600},
			},
		},
	}
	r.AddRequestOption(OptDNSServers)

	buf := make([]byte, r.BufferLen())
	p := NewPacket(buf)
	if err := Emit(r, p); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	checked, err := NewCheckedPacket(buf)
	if err != nil {
		t.Fatalf("NewCheckedPacket: %v", err)
	}
	got, err := Parse(checked)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got.MessageType != r.MessageType {
		t.Errorf("MessageType = %v, want %v", got.MessageType, r.MessageType)
	}
	if got.TransactionID != r.TransactionID {
		t.Errorf("TransactionID = %#x, want %#x", got.TransactionID, r.TransactionID)
	}
	if string(got.ClientID) != string(r.ClientID) {
		t.Errorf("ClientID = %x, want %x", got.ClientID, r.ClientID)
	}
	if got.IANA == nil {
		t.Fatal("IANA = nil, want non-nil")
	}
	if got.IANA.IAID != 42 || got.IANA.T1 != 100 || got.IANA.T2 != 200 {
		t.Errorf("IANA header = %+v", got.IANA)
	}
	if len(got.IANA.Addresses) != 1 || got.IANA.Addresses[0].Addr != addr {
		t.Errorf("IANA.Addresses = %+v, want [%v]", got.IANA.Addresses, addr)
	}
}

// TestOROParseUsesFourByteStride locks in the preserved option-request-list
// parsing defect: the parser advances 4 bytes per entry instead of 2, so
// every other code in a tightly packed list is silently dropped.
func TestOROParseUsesFourByteStride(t *testing.T) {
	// Four two-byte codes packed with no padding: 1, 2, 3, 4.
	data := []byte{0x00, 0x01, 0x00, 0x02, 0x00, 0x03, 0x00, 0x04}
	buf := make([]byte, optionsOffset)
	p := NewPacket(buf)
	p.SetMessageType(MessageTypeSolicit)

	opts := make([]byte, 4+len(data))
	w := NewOptionWriter(opts)
	if err := w.Emit(Option{Kind: OptORO, Data: data}); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	full := append(buf, opts...)

	checked, err := NewCheckedPacket(full)
	if err != nil {
		t.Fatalf("NewCheckedPacket: %v", err)
	}
	got, err := Parse(checked)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []uint16{1, 3}
	if len(got.RequestOptions) != len(want) {
		t.Fatalf("RequestOptions = %v, want %v", got.RequestOptions, want)
	}
	for i, v := range want {
		if got.RequestOptions[i] != v {
			t.Fatalf("RequestOptions[%d] = %d, want %d", i, got.RequestOptions[i], v)
		}
	}
}

// TestNestedIAAddrUsesIAPDCode locks in the preserved nested-option code
// reuse: addresses inside IA_NA/IA_TA are tagged OptIAPD (25) rather than
// OptIAAddr (5), and the parser matches the same code back.
func TestNestedIAAddrUsesIAPDCode(t *testing.T) {
	addr := netip.MustParseAddr("2001:db8::2")
	ia := IANA{
		IAID:      7,
		Addresses: []IAAddr{{Addr: addr, PreferredLifetime: 1, ValidLifetime: 2}},
	}

	buf := make([]byte, 4+ia.dataLen())
	w := NewOptionWriter(buf)
	if err := ia.emit(w); err != nil {
		t.Fatalf("emit: %v", err)
	}

	var nestedKind uint16
	var outerSeen bool
	ParseOptions(buf, func(outer Option) bool {
		if outer.Kind != OptIANA {
			return true
		}
		outerSeen = true
		ParseOptions(outer.Data[12:], func(inner Option) bool {
			nestedKind = inner.Kind
			return false
		})
		return false
	})
	if !outerSeen {
		t.Fatal("did not observe an IA_NA option")
	}
	if nestedKind != OptIAPD {
		t.Fatalf("nested address option code = %d, want %d (OptIAPD)", nestedKind, OptIAPD)
	}

	parsed, err := parseIANA(buf[4:])
	if err != nil {
		t.Fatalf("parseIANA: %v", err)
	}
	if len(parsed.Addresses) != 1 || parsed.Addresses[0].Addr != addr {
		t.Fatalf("parseIANA round-trip = %+v", parsed)
	}
}

func TestAppendBoundedDropsOverflow(t *testing.T) {
	var s []int
	for i := 0; i < 5; i++ {
		s = appendBounded(s, i, 3)
	}
	if len(s) != 3 {
		t.Fatalf("len = %d, want 3", len(s))
	}
	for i, v := range s {
		if v != i {
			t.Fatalf("s[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestDNSServersEmitParseRoundTrip(t *testing.T) {
	addrs := []netip.Addr{
		netip.MustParseAddr("2001:db8::53"),
		netip.MustParseAddr("2001:db8::54"),
	}
	d := DNSServers{Addresses: addrs}

	buf := make([]byte, 4+d.dataLen())
	w := NewOptionWriter(buf)
	if err := d.emit(w); err != nil {
		t.Fatalf("emit: %v", err)
	}

	var got DNSServers
	ParseOptions(buf, func(o Option) bool {
		var err error
		got, err = parseDNSServers(o.Data)
		if err != nil {
			t.Fatalf("parseDNSServers: %v", err)
		}
		return false
	})
	if len(got.Addresses) != len(addrs) {
		t.Fatalf("Addresses = %v, want %v", got.Addresses, addrs)
	}
	for i := range addrs {
		if got.Addresses[i] != addrs[i] {
			t.Fatalf("Addresses[%d] = %v, want %v", i, got.Addresses[i], addrs[i])
		}
	}
}

func TestStatusCodeMessageIsUTF8Lossy(t *testing.T) {
	data := append([]byte{0x00, 0x00}, 0xFF, 0xFE) // invalid UTF-8 tail
	sc, err := parseStatusCode(data)
	if err != nil {
		t.Fatalf("parseStatusCode: %v", err)
	}
	if sc.Code != StatusSuccess {
		t.Fatalf("Code = %v, want %v", sc.Code, StatusSuccess)
	}
	for _, r := range sc.Message {
		if r == 0xFFFD {
			return
		}
	}
	t.Fatalf("Message %q does not contain the replacement character", sc.Message)
}
