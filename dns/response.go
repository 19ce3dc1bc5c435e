// SPDX-License-Identifier: GPL-3.0-or-later

package dns

import (
	"errors"

	mdns "github.com/miekg/dns"
)

// Errors emitted while handling a response datagram.
var (
	// ErrResponseTooShort means the datagram cannot even contain the
	// fixed 12-byte DNS header.
	ErrResponseTooShort = errors.New("dns: response shorter than header")

	// ErrTransactionID means the response transaction ID does not
	// match the ID of the query we sent.
	ErrTransactionID = errors.New("dns: transaction ID mismatch")
)

// Response is a decoded DNS response.
//
// Construct using [ParseResponse].
type Response struct {
	// ID is the transaction ID echoed by the resolver.
	ID uint16

	// Rcode is the response-code label, e.g. "NOERROR" or "NXDOMAIN".
	Rcode string

	// Truncated reports the TC header bit.
	Truncated bool

	// RecursionAvailable reports the RA header bit.
	RecursionAvailable bool

	// AuthenticatedData reports the AD header bit.
	AuthenticatedData bool

	// Records holds the decoded answers in arrival order. It may be
	// shorter than the header's ANCOUNT when the message is truncated
	// or malformed; that is not an error.
	Records []Record
}

// rcodeLabel maps the low four flag bits to a display label.
func rcodeLabel(rcode int) string {
	if rcode >= 0 && rcode <= mdns.RcodeRefused {
		return mdns.RcodeToString[rcode]
	}
	return "UNKNOWN"
}

// ParseResponse decodes a raw DNS response datagram.
//
// The only hard failure is a buffer shorter than the fixed header.
// Anything wrong past that point degrades to a partial [*Response]
// rather than an error, so a resolver returning a few odd records
// still yields the records that did decode.
func ParseResponse(buf []byte) (*Response, error) {
	if len(buf) < headerSize {
		return nil, ErrResponseTooShort
	}

	flags := readUint16(buf, 2)
	qdcount := readUint16(buf, 4)
	ancount := readUint16(buf, 6)

	resp := &Response{
		ID:                 readUint16(buf, 0),
		Rcode:              rcodeLabel(int(flags & maskRcode)),
		Truncated:          flags&flagTruncated != 0,
		RecursionAvailable: flags&flagRecursionAvailable != 0,
		AuthenticatedData:  flags&flagAuthenticatedData != 0,
		Records:            []Record{},
	}

	// Skip the echoed question section.
	off := headerSize
	for i := 0; i < int(qdcount); i++ {
		_, off = decodeName(buf, off)
		off += 4 // QTYPE + QCLASS
	}

	// Decode up to ANCOUNT answers, stopping early on truncation.
	for i := 0; i < int(ancount); i++ {
		if off >= len(buf) {
			break
		}
		name, noff := decodeName(buf, off)
		off = noff
		if off+10 > len(buf) {
			break
		}
		rtype := RecordType(readUint16(buf, off))
		ttl := readUint32(buf, off+4)
		rdlength := readUint16(buf, off+8)
		off += 10 // TYPE + CLASS + TTL + RDLENGTH; CLASS is ignored

		value, noff := decodeRData(buf, off, rdlength, rtype)
		off = noff

		resp.Records = append(resp.Records, Record{
			Name:  name,
			Type:  rtype.String(),
			TTL:   ttl,
			Value: value,
		})
	}

	return resp, nil
}
