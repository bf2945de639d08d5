//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=../mocks/mock_resolver.go -package=mocks

// Package federation issues bounded, concurrent, no-merge fetches to
// remote domains and tolerates partial unavailability.
package federation

import (
	"fmt"
	"net/url"
	"strings"

	"feedhub/errors"
)

// IResolver maps an administrative domain name to the base URL of its
// feed server. The discovery mechanism is a collaborator; the engine
// only depends on this interface.
type IResolver interface {
	Resolve(domain string) (*url.URL, error)
}

// StaticResolver resolves from a fixed table, typically loaded from the
// DOMAINS environment entry ("d1=http://host:8080,d2=https://other").
type StaticResolver struct {
	table map[string]*url.URL
}

func NewStaticResolver(entries map[string]string) (*StaticResolver, error) {
	table := make(map[string]*url.URL, len(entries))
	for name, raw := range entries {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("domain %s: %w", name, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("domain %s: base URL must include scheme and host, got %q", name, raw)
		}
		table[name] = u
	}
	return &StaticResolver{table: table}, nil
}

// ParseDomainTable splits "name=url,name=url" config syntax.
func ParseDomainTable(raw string) (map[string]string, error) {
	entries := make(map[string]string)
	if strings.TrimSpace(raw) == "" {
		return entries, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		name, addr, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found || name == "" || addr == "" {
			return nil, fmt.Errorf("malformed domain table entry %q", pair)
		}
		entries[name] = addr
	}
	return entries, nil
}

func (r *StaticResolver) Resolve(domain string) (*url.URL, error) {
	u, ok := r.table[domain]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnavailable, domain)
	}
	// copy so callers can JoinPath freely
	clone := *u
	return &clone, nil
}
