// SPDX-License-Identifier: GPL-3.0-or-later

// Package dns implements the DNS probe: a single-shot UDP query client
// with its own DNS message codec.
//
// [NewQuery] and [*Query] allow constructing and packing a DNS query
// message. [ParseResponse] and [*Response] allow unpacking a raw DNS
// response, including compressed-name resolution and per-record-type
// RDATA rendering. [Query] runs the full round trip described by a
// [*Config] and returns a [*Result].
//
// This package implements the wire format by hand rather than using
// [github.com/miekg/dns]; from that package we only take the record-type
// and response-code tables used for display labels. Decoding is
// defensive: malformed answer content degrades to partial output
// instead of failing the whole query.
package dns
