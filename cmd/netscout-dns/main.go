// SPDX-License-Identifier: GPL-3.0-or-later

// Command netscout-dns performs a single DNS lookup and prints the
// decoded answers.
//
// Usage:
//
//	netscout-dns [-type A] [-resolver 8.8.8.8] [-timeout 5s] [-json] domain
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/redbasecap-buiss/netscout/dns"
)

func main() {
	rtypeFlag := flag.String("type", "A", "record type: A, AAAA, MX, TXT, CNAME, NS, SOA or PTR")
	resolverFlag := flag.String("resolver", dns.DefaultResolver, "resolver address (host or host:port)")
	timeoutFlag := flag.Duration("timeout", dns.DefaultTimeout, "receive timeout")
	jsonFlag := flag.Bool("json", false, "emit the result as JSON")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] domain\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	rtype, err := dns.ParseRecordType(*rtypeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "netscout-dns: %s\n", err)
		os.Exit(2)
	}

	cfg := dns.NewConfig(flag.Arg(0))
	cfg.Type = rtype
	cfg.Resolver = *resolverFlag
	cfg.Timeout = *timeoutFlag

	result, err := dns.Query(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "netscout-dns: %s\n", err)
		os.Exit(1)
	}

	if *jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintf(os.Stderr, "netscout-dns: %s\n", err)
			os.Exit(1)
		}
		return
	}
	printResult(result)
}

func printResult(result *dns.Result) {
	fmt.Printf("; %s %s @%s: %s in %.1f ms\n",
		result.Domain, result.Type, result.Resolver,
		result.ResponseCode, result.QueryTimeMs)
	if flags := headerFlags(result); len(flags) > 0 {
		fmt.Printf("; flags: %s\n", strings.Join(flags, " "))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	for _, rec := range result.Records {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", rec.Type, rec.Name, rec.TTL, rec.Value)
	}
	w.Flush()
}

func headerFlags(result *dns.Result) []string {
	var flags []string
	if result.Truncated {
		flags = append(flags, "tc")
	}
	if result.RecursionAvailable {
		flags = append(flags, "ra")
	}
	if result.AuthenticatedData {
		flags = append(flags, "ad")
	}
	return flags
}
