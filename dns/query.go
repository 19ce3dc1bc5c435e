// SPDX-License-Identifier: GPL-3.0-or-later

package dns

import (
	"encoding/binary"
	"strings"

	mdns "github.com/miekg/dns"
)

// DefaultQueryID is the transaction ID assigned by [NewQuery].
//
// The probe sends one query per ephemeral socket, so a fixed ID keeps
// packets deterministic; [Query] still checks that the response echoes
// the ID it sent.
const DefaultQueryID = 0xABCD

// Query is a DNS query message.
//
// Construct using [NewQuery] or set the MANDATORY fields.
type Query struct {
	// ID is the OPTIONAL transaction ID.
	ID uint16

	// Name is the MANDATORY domain name to query.
	Name string

	// Type is the query type.
	Type RecordType
}

// NewQuery constructs a new [*Query] with safe defaults.
//
// By default, the query uses [DefaultQueryID] as its transaction ID.
func NewQuery(name string, rtype RecordType) *Query {
	return &Query{
		ID:   DefaultQueryID,
		Name: name,
		Type: rtype,
	}
}

// Clone returns a deep copy of the query.
func (q *Query) Clone() *Query {
	return &Query{
		ID:   q.ID,
		Name: q.Name,
		Type: q.Type,
	}
}

// Pack serializes the query into wire format: a 12-byte header with
// only the recursion-desired flag set and QDCOUNT=1, followed by a
// single uncompressed IN-class question.
//
// Any name is encodable as length-prefixed labels, so Pack cannot
// fail. Compressing the outgoing name would buy nothing for a single
// question.
func (q *Query) Pack() []byte {
	buf := make([]byte, 0, 512)

	// Header.
	buf = binary.BigEndian.AppendUint16(buf, q.ID)
	buf = binary.BigEndian.AppendUint16(buf, flagRecursionDesired)
	buf = binary.BigEndian.AppendUint16(buf, 1) // QDCOUNT
	buf = binary.BigEndian.AppendUint16(buf, 0) // ANCOUNT
	buf = binary.BigEndian.AppendUint16(buf, 0) // NSCOUNT
	buf = binary.BigEndian.AppendUint16(buf, 0) // ARCOUNT

	// Question.
	for _, label := range strings.Split(q.Name, ".") {
		buf = append(buf, byte(len(label)))
		buf = append(buf, label...)
	}
	buf = append(buf, 0) // root label
	buf = binary.BigEndian.AppendUint16(buf, q.Type.Qtype())
	buf = binary.BigEndian.AppendUint16(buf, uint16(mdns.ClassINET))

	return buf
}
