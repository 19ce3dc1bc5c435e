// SPDX-License-Identifier: GPL-3.0-or-later

package dns

import "time"

// DefaultResolver is the resolver used by [NewConfig].
const DefaultResolver = "8.8.8.8"

// DefaultTimeout is the receive timeout used by [NewConfig] and when
// [Config.Timeout] is zero.
const DefaultTimeout = 5 * time.Second

// Config describes a single DNS query.
//
// A Config is read-only for the duration of a [Query] call and has no
// lifecycle beyond it.
//
// Construct using [NewConfig] or set the MANDATORY fields.
type Config struct {
	// Domain is the MANDATORY domain name to query.
	Domain string

	// Type is the record kind to ask for.
	Type RecordType

	// Resolver is the resolver address. A bare host gets port 53
	// appended; an explicit "host:port" is used verbatim.
	Resolver string

	// Timeout bounds the wait for the response datagram. Zero and
	// negative values mean [DefaultTimeout].
	Timeout time.Duration
}

// NewConfig constructs a [*Config] with the probe defaults: A records
// via [DefaultResolver] with a [DefaultTimeout] receive timeout.
func NewConfig(domain string) *Config {
	return &Config{
		Domain:   domain,
		Type:     TypeA,
		Resolver: DefaultResolver,
		Timeout:  DefaultTimeout,
	}
}
