// SPDX-License-Identifier: GPL-3.0-or-later

package dns

import (
	"context"
	"fmt"
	"net"
	"time"

	"golang.org/x/net/idna"
)

// maxResponseSize is the receive buffer size for the response
// datagram. We do not advertise EDNS(0), so compliant resolvers send
// at most 512 bytes, but we accept more and let the TC bit speak.
const maxResponseSize = 4096

// Query performs the single-shot UDP round trip described by cfg.
//
// One ephemeral UDP endpoint is opened per call and released on
// return, so concurrent calls need no locking. The receive blocks for
// at most cfg.Timeout; ctx covers dialing and may carry an earlier
// deadline or a cancellation layered on by the caller. There are no
// retransmissions: a slow resolver and an unreachable one are
// indistinguishable once the timeout elapses.
//
// An answerless response, e.g. NXDOMAIN, is a success with an empty
// record list, not an error.
func Query(ctx context.Context, cfg *Config) (*Result, error) {
	query := NewQuery(lookupName(cfg.Domain), cfg.Type)
	packet := query.Pack()

	conn, err := (&net.Dialer{}).DialContext(ctx, "udp", resolverAddr(cfg.Resolver))
	if err != nil {
		return nil, fmt.Errorf("dns: cannot reach resolver: %w", err)
	}
	defer conn.Close()

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	start := time.Now()
	if err := conn.SetReadDeadline(start.Add(timeout)); err != nil {
		return nil, fmt.Errorf("dns: cannot set receive deadline: %w", err)
	}

	if _, err := conn.Write(packet); err != nil {
		return nil, fmt.Errorf("dns: cannot send query: %w", err)
	}

	buf := make([]byte, maxResponseSize)
	count, err := conn.Read(buf)
	if err != nil {
		return nil, fmt.Errorf("dns: cannot receive response: %w", err)
	}
	elapsed := time.Since(start)

	resp, err := ParseResponse(buf[:count])
	if err != nil {
		return nil, err
	}
	if resp.ID != query.ID {
		return nil, ErrTransactionID
	}

	return &Result{
		Domain:             cfg.Domain,
		Resolver:           cfg.Resolver,
		Type:               cfg.Type.String(),
		Records:            resp.Records,
		QueryTimeMs:        float64(elapsed) / float64(time.Millisecond),
		ResponseCode:       resp.Rcode,
		Truncated:          resp.Truncated,
		RecursionAvailable: resp.RecursionAvailable,
		AuthenticatedData:  resp.AuthenticatedData,
	}, nil
}

// lookupName converts a domain to its IDNA lookup form. Conversion is
// best effort: any string is encodable as raw labels, so on error we
// keep the caller's spelling.
func lookupName(domain string) string {
	if ascii, err := idna.Lookup.ToASCII(domain); err == nil && ascii != "" {
		return ascii
	}
	return domain
}

// resolverAddr appends the default DNS port when the resolver address
// does not already carry one.
func resolverAddr(resolver string) string {
	if _, _, err := net.SplitHostPort(resolver); err == nil {
		return resolver
	}
	return net.JoinHostPort(resolver, "53")
}
