package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"feedhub/errors"
)

func TestParseIdentity(t *testing.T) {
	req := require.New(t)

	t.Run("should split name and domain", func(t *testing.T) {
		identity, err := ParseIdentity("alice@d1")
		req.NoError(err)
		req.Equal("alice", identity.Name)
		req.Equal("d1", identity.Domain)
		req.Equal("alice@d1", identity.String())
	})

	t.Run("should reject malformed inputs", func(t *testing.T) {
		for _, raw := range []string{"", "alice", "@d1", "alice@", "a@b@c", "@"} {
			_, err := ParseIdentity(raw)
			req.ErrorIs(err, errors.ErrMalformedIdentity, "input %q", raw)
		}
	})
}

func TestUserIdentity_HostedBy(t *testing.T) {
	req := require.New(t)
	identity := NewIdentity("alice", "d1")
	req.True(identity.HostedBy("d1"))
	req.False(identity.HostedBy("d2"))
}

func TestUserIdentity_JSON(t *testing.T) {
	req := require.New(t)

	t.Run("should render as a single string", func(t *testing.T) {
		data, err := json.Marshal(NewIdentity("alice", "d1"))
		req.NoError(err)
		req.JSONEq(`"alice@d1"`, string(data))
	})

	t.Run("should parse back from a string", func(t *testing.T) {
		var identity UserIdentity
		req.NoError(json.Unmarshal([]byte(`"bob@d2"`), &identity))
		req.Equal(NewIdentity("bob", "d2"), identity)
	})

	t.Run("should reject a malformed wire identity", func(t *testing.T) {
		var identity UserIdentity
		req.Error(json.Unmarshal([]byte(`"bob"`), &identity))
	})

	t.Run("should refuse to render an incomplete identity", func(t *testing.T) {
		_, err := json.Marshal(UserIdentity{})
		req.Error(err)
		_, err = json.Marshal(UserIdentity{Name: "bob"})
		req.Error(err)
	})
}

func TestMessage_Newer(t *testing.T) {
	req := require.New(t)

	newer := Message{ID: 1, Timestamp: 200}
	older := Message{ID: 2, Timestamp: 100}
	req.True(newer.Newer(older))
	req.False(older.Newer(newer))

	// same timestamp falls back to id
	tiedHigh := Message{ID: 9, Timestamp: 100}
	tiedLow := Message{ID: 3, Timestamp: 100}
	req.True(tiedHigh.Newer(tiedLow))
	req.False(tiedLow.Newer(tiedHigh))
}
