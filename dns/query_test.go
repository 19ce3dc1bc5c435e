// SPDX-License-Identifier: GPL-3.0-or-later

package dns

import (
	"testing"

	"github.com/bassosimone/runtimex"
	mdns "github.com/miekg/dns"
	"github.com/stretchr/testify/require"
)

func TestQueryPackStructure(t *testing.T) {
	pkt := NewQuery("example.com", TypeA).Pack()

	// Fixed transaction ID.
	require.Equal(t, byte(0xAB), pkt[0])
	require.Equal(t, byte(0xCD), pkt[1])
	// Only the RD flag is set.
	require.Equal(t, uint16(0x0100), readUint16(pkt, 2))
	// QDCOUNT=1, all other counts zero.
	require.Equal(t, uint16(1), readUint16(pkt, 4))
	require.Equal(t, uint16(0), readUint16(pkt, 6))
	require.Equal(t, uint16(0), readUint16(pkt, 8))
	require.Equal(t, uint16(0), readUint16(pkt, 10))
	// Labels.
	require.Equal(t, byte(7), pkt[12])
	require.Equal(t, []byte("example"), pkt[13:20])
	require.Equal(t, byte(3), pkt[20])
	require.Equal(t, []byte("com"), pkt[21:24])
	require.Equal(t, byte(0), pkt[24])
	// QTYPE=A, QCLASS=IN.
	require.Equal(t, uint16(1), readUint16(pkt, 25))
	require.Equal(t, uint16(1), readUint16(pkt, 27))
	require.Len(t, pkt, 29)
}

func TestQueryPackSingleLabel(t *testing.T) {
	pkt := NewQuery("localhost", TypeA).Pack()

	require.Equal(t, byte(9), pkt[12])
	require.Equal(t, []byte("localhost"), pkt[13:22])
	require.Equal(t, byte(0), pkt[22])
}

func TestQueryPackSubdomain(t *testing.T) {
	pkt := NewQuery("www.sub.example.com", TypeAAAA).Pack()

	require.Equal(t, byte(3), pkt[12])
	require.Equal(t, []byte("www"), pkt[13:16])
	require.Equal(t, byte(3), pkt[16])
	require.Equal(t, []byte("sub"), pkt[17:20])
	// QTYPE is the last-but-one 16-bit field.
	require.Equal(t, uint16(28), readUint16(pkt, len(pkt)-4))
}

// The hand-written encoder must agree byte for byte with the packing
// of the same question by github.com/miekg/dns.
func TestQueryPackMatchesReference(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		rtype  RecordType
	}{
		{"SimpleA", "example.com", TypeA},
		{"DeepSubdomainAAAA", "a.b.c.example.org", TypeAAAA},
		{"SingleLabelTXT", "localhost", TypeTXT},
		{"MX", "example.net", TypeMX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := new(mdns.Msg)
			msg.Id = DefaultQueryID
			msg.RecursionDesired = true
			msg.Question = []mdns.Question{{
				Name:   mdns.Fqdn(tt.domain),
				Qtype:  tt.rtype.Qtype(),
				Qclass: mdns.ClassINET,
			}}
			expected := runtimex.PanicOnError1(msg.Pack())

			require.Equal(t, expected, NewQuery(tt.domain, tt.rtype).Pack())
		})
	}
}

// Encoding a name and decoding it back from the question section must
// return the original domain.
func TestQueryPackNameRoundTrip(t *testing.T) {
	for _, domain := range []string{"example.com", "a.b.c.example.org", "localhost"} {
		t.Run(domain, func(t *testing.T) {
			pkt := NewQuery(domain, TypeA).Pack()
			name, resume := decodeName(pkt, headerSize)
			require.Equal(t, domain, name)
			// QTYPE + QCLASS follow the name, then the packet ends.
			require.Equal(t, len(pkt), resume+4)
		})
	}
}

func TestQueryClone(t *testing.T) {
	query := &Query{
		ID:   1234,
		Name: "www.example.com",
		Type: TypeA,
	}

	clone := query.Clone()

	require.NotSame(t, query, clone)
	require.Equal(t, query, clone)

	clone.ID = 5678
	clone.Name = "www.example.net"
	clone.Type = TypeAAAA

	require.Equal(t, uint16(1234), query.ID)
	require.Equal(t, "www.example.com", query.Name)
	require.Equal(t, TypeA, query.Type)
}
