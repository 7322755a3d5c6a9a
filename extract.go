package cidrset

import (
	"regexp"
	"strconv"
	"strings"
)

// ipv4Candidate and ipv6Candidate mirror parse_ipv4/parse_ipv6 from the
// original tolerant extractor: loose patterns that over-match (a dotted
// quad inside a longer token, a hex run that isn't really an address) and
// rely on Normalize to reject anything that doesn't actually parse.
//
// Package-level compilation follows the regexp.MustCompile-at-init idiom
// DataDog's obfuscator uses for its own IP-matching pattern, rather than
// recompiling per call.
var (
	ipv4Candidate = regexp.MustCompile(`(?:\d{1,3}\.){3}\d{1,3}(?:/\d{1,2})?`)
	ipv6Candidate = regexp.MustCompile(`(?:[0-9a-fA-F]{0,4}:){2,7}[0-9a-fA-F]{0,4}(?:/\d{1,3})?`)
)

// ExtractCandidates finds every substring of text that looks like an IPv4
// or IPv6 address or CIDR block: all IPv4 candidates first, then all IPv6
// candidates, each group in the order encountered. Candidates are not yet
// validated — pass each through Normalize.
func ExtractCandidates(text string) []string {
	var out []string
	out = append(out, ipv4Candidate.FindAllString(text, -1)...)
	out = append(out, ipv6Candidate.FindAllString(text, -1)...)
	for i, c := range out {
		out[i] = strings.TrimSpace(c)
	}
	return out
}

// ExtractPrefixes runs ExtractCandidates and normalizes each hit, dropping
// anything that isn't a real address or CIDR block.
func ExtractPrefixes(text string) []Prefix {
	var out []Prefix
	for _, c := range ExtractCandidates(text) {
		if c == "" {
			continue
		}
		p, ok := Normalize(c)
		if ok {
			out = append(out, p)
		}
	}
	return out
}

// Normalize turns a dirty candidate string into a Prefix, defending against
// the classic leading-zero-octet misparse (e.g. "010.0.0.1"), which the
// CVE-2021-29921 class of bugs mishandled by treating the leading zero as an
// octal marker instead of simply stripping it. Go's netip already rejects
// leading zeros outright rather than misinterpreting them, so this defense
// re-parses with the zeros stripped instead of trusting the first attempt
// to fail closed.
func Normalize(candidate string) (Prefix, bool) {
	if p, err := ParsePrefix(candidate); err == nil {
		return p, true
	}

	if strings.Contains(candidate, ".") && !strings.Contains(candidate, ":") {
		if cleaned, ok := stripLeadingZeroOctets(candidate); ok {
			if p, err := ParsePrefix(cleaned); err == nil {
				return p, true
			}
		}
	}

	return Prefix{}, false
}

// stripLeadingZeroOctets rewrites each dotted-quad octet of candidate
// through strconv.Atoi, which discards leading zeros, then reassembles the
// address (plus any /mask suffix) for a second parse attempt.
func stripLeadingZeroOctets(candidate string) (string, bool) {
	ipPart := candidate
	maskPart := ""
	if idx := strings.IndexByte(candidate, '/'); idx >= 0 {
		ipPart = candidate[:idx]
		maskPart = candidate[idx:]
	}

	octets := strings.Split(ipPart, ".")
	if len(octets) != 4 {
		return "", false
	}

	cleaned := make([]string, 4)
	for i, o := range octets {
		n, err := strconv.Atoi(o)
		if err != nil || n < 0 || n > 255 {
			return "", false
		}
		cleaned[i] = strconv.Itoa(n)
	}

	return strings.Join(cleaned, ".") + maskPart, true
}
