// SPDX-License-Identifier: GPL-3.0-or-later

package dns

import (
	"errors"
	"fmt"
	"strings"

	mdns "github.com/miekg/dns"
)

// RecordType is one of the record kinds supported by the probe.
//
// The numeric value of a RecordType is its wire QTYPE, so the mapping
// between the two is a bijection by construction.
type RecordType uint16

const (
	// TypeA is an IPv4 address record.
	TypeA = RecordType(mdns.TypeA)

	// TypeNS is a name server record.
	TypeNS = RecordType(mdns.TypeNS)

	// TypeCNAME is a canonical name record.
	TypeCNAME = RecordType(mdns.TypeCNAME)

	// TypeSOA is a start of authority record.
	TypeSOA = RecordType(mdns.TypeSOA)

	// TypePTR is a pointer record.
	TypePTR = RecordType(mdns.TypePTR)

	// TypeMX is a mail exchange record.
	TypeMX = RecordType(mdns.TypeMX)

	// TypeTXT is a text record.
	TypeTXT = RecordType(mdns.TypeTXT)

	// TypeAAAA is an IPv6 address record.
	TypeAAAA = RecordType(mdns.TypeAAAA)
)

// ErrUnsupportedRecordType means the record-type text is not one of
// the eight kinds supported by the probe.
var ErrUnsupportedRecordType = errors.New("dns: unsupported record type")

// ParseRecordType parses a record-type name, case insensitively, into
// a [RecordType].
//
// Unknown names yield [ErrUnsupportedRecordType]. This is the only
// error the probe raises before touching the network.
func ParseRecordType(s string) (RecordType, error) {
	switch strings.ToUpper(s) {
	case "A":
		return TypeA, nil
	case "AAAA":
		return TypeAAAA, nil
	case "MX":
		return TypeMX, nil
	case "TXT":
		return TypeTXT, nil
	case "CNAME":
		return TypeCNAME, nil
	case "NS":
		return TypeNS, nil
	case "SOA":
		return TypeSOA, nil
	case "PTR":
		return TypePTR, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedRecordType, s)
	}
}

// Qtype returns the wire QTYPE code.
func (rt RecordType) Qtype() uint16 {
	return uint16(rt)
}

// String returns the record-type label, or "UNKNOWN" for any code
// outside the supported set.
func (rt RecordType) String() string {
	switch rt {
	case TypeA, TypeAAAA, TypeMX, TypeTXT, TypeCNAME, TypeNS, TypeSOA, TypePTR:
		return mdns.TypeToString[uint16(rt)]
	default:
		return "UNKNOWN"
	}
}
