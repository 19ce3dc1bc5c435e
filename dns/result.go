// SPDX-License-Identifier: GPL-3.0-or-later

package dns

// Record is a single decoded answer row. Records are created during
// response decoding and never mutated afterwards.
type Record struct {
	// Name is the owner name of the record.
	Name string `json:"name"`

	// Type is the record-type label, e.g. "A" or "UNKNOWN".
	Type string `json:"record_type"`

	// TTL is the time to live in seconds.
	TTL uint32 `json:"ttl"`

	// Value is the decoded display string for the RDATA.
	Value string `json:"value"`
}

// Result aggregates the outcome of one query round trip. It is
// produced exactly once per [Query] call and owned by the caller
// thereafter.
type Result struct {
	// Domain echoes the queried domain.
	Domain string `json:"domain"`

	// Resolver echoes the resolver address from the [*Config].
	Resolver string `json:"resolver"`

	// Type is the queried record-type label.
	Type string `json:"record_type"`

	// Records holds the decoded answers in arrival order.
	Records []Record `json:"records"`

	// QueryTimeMs is the wall-clock round-trip time in milliseconds.
	QueryTimeMs float64 `json:"query_time_ms"`

	// ResponseCode is the RCODE label, e.g. "NOERROR" or "NXDOMAIN".
	ResponseCode string `json:"response_code"`

	// Truncated reports the TC header bit.
	Truncated bool `json:"truncated"`

	// RecursionAvailable reports the RA header bit.
	RecursionAvailable bool `json:"recursion_available"`

	// AuthenticatedData reports the AD header bit.
	AuthenticatedData bool `json:"authenticated_data"`
}
