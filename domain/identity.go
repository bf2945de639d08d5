// Package domain contains core concepts of the federated feed system.
// This file defines fully-qualified user identities.
// Identities are immutable and compared by exact string match.
package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"feedhub/errors"
)

// UserIdentity is the composite of a user name and the administrative
// domain hosting her feed, rendered as "name@domain" on the wire.
type UserIdentity struct {
	Name   string
	Domain string
}

func NewIdentity(name, domain string) UserIdentity {
	return UserIdentity{Name: name, Domain: domain}
}

// ParseIdentity splits a "name@domain" string. Both parts must be
// non-empty and the separator must appear exactly once.
func ParseIdentity(s string) (UserIdentity, error) {
	name, domain, found := strings.Cut(s, "@")
	if !found || name == "" || domain == "" || strings.Contains(domain, "@") {
		return UserIdentity{}, fmt.Errorf("%w: %q", errors.ErrMalformedIdentity, s)
	}
	return UserIdentity{Name: name, Domain: domain}, nil
}

func (u UserIdentity) String() string {
	return u.Name + "@" + u.Domain
}

// HostedBy reports whether the identity's home is the given domain.
func (u UserIdentity) HostedBy(domain string) bool {
	return u.Domain == domain
}

// MarshalJSON refuses incomplete identities: a missing part would
// render something ParseIdentity on the other side must reject.
func (u UserIdentity) MarshalJSON() ([]byte, error) {
	if u.Name == "" || u.Domain == "" {
		return nil, fmt.Errorf("%w: %q", errors.ErrMalformedIdentity, u.String())
	}
	return json.Marshal(u.String())
}

func (u *UserIdentity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseIdentity(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
