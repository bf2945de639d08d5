package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"feedhub/domain"
	"feedhub/errors"
	"feedhub/mocks"
	"feedhub/observability"
	"feedhub/repositories"
)

type apiFixture struct {
	feeds  *mocks.MockIFeedService
	users  *mocks.MockIUserService
	stats  *observability.Stats
	server *httptest.Server
}

func newAPIFixture(t *testing.T) apiFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := apiFixture{
		feeds: mocks.NewMockIFeedService(ctrl),
		users: mocks.NewMockIUserService(ctrl),
		stats: observability.NewStats(),
	}
	handle := NewHandle(f.feeds, f.users, f.stats, 50, slog.Default())
	f.server = httptest.NewServer(handle.Router())
	t.Cleanup(f.server.Close)
	return f
}

func (f apiFixture) do(t *testing.T, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, f.server.URL+path, reader)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestPostMessage(t *testing.T) {
	t.Run("should return the new id", func(t *testing.T) {
		f := newAPIFixture(t)
		f.feeds.EXPECT().PostMessage(gomock.Any(), "alice@d1", "pwd", "hello").Return(uint64(7), nil)

		resp := f.do(t, http.MethodPost, "/feeds/alice@d1?pwd=pwd", `{"text":"hello"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, uint64(7), decode[uint64](t, resp))
	})

	t.Run("should answer 403 on a wrong password", func(t *testing.T) {
		f := newAPIFixture(t)
		f.feeds.EXPECT().PostMessage(gomock.Any(), "alice@d1", "bad", "hello").Return(uint64(0), errors.ErrForbidden)

		resp := f.do(t, http.MethodPost, "/feeds/alice@d1?pwd=bad", `{"text":"hello"}`)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("should render errors as JSON", func(t *testing.T) {
		f := newAPIFixture(t)
		f.feeds.EXPECT().PostMessage(gomock.Any(), "alice@d1", "bad", "hello").Return(uint64(0), errors.ErrForbidden)

		resp := f.do(t, http.MethodPost, "/feeds/alice@d1?pwd=bad", `{"text":"hello"}`)
		require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		body := decode[map[string]string](t, resp)
		require.Contains(t, body["error"], "forbidden")
	})

	t.Run("should answer 400 for a foreign author", func(t *testing.T) {
		f := newAPIFixture(t)
		f.feeds.EXPECT().PostMessage(gomock.Any(), "bob@d2", "pwd", "hello").Return(uint64(0), errors.ErrBadRequest)

		resp := f.do(t, http.MethodPost, "/feeds/bob@d2?pwd=pwd", `{"text":"hello"}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("should answer 400 for a malformed body", func(t *testing.T) {
		f := newAPIFixture(t)

		resp := f.do(t, http.MethodPost, "/feeds/alice@d1?pwd=pwd", `{not json`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestRemoveMessage(t *testing.T) {
	t.Run("should answer 204 on success", func(t *testing.T) {
		f := newAPIFixture(t)
		f.feeds.EXPECT().RemoveMessage(gomock.Any(), "alice@d1", uint64(3), "pwd").Return(nil)

		resp := f.do(t, http.MethodDelete, "/feeds/alice@d1/3?pwd=pwd", "")
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("should answer 400 for a malformed id", func(t *testing.T) {
		f := newAPIFixture(t)

		resp := f.do(t, http.MethodDelete, "/feeds/alice@d1/abc?pwd=pwd", "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("should answer 404 for an unknown message", func(t *testing.T) {
		f := newAPIFixture(t)
		f.feeds.EXPECT().RemoveMessage(gomock.Any(), "alice@d1", uint64(99), "pwd").Return(errors.ErrNotFound)

		resp := f.do(t, http.MethodDelete, "/feeds/alice@d1/99?pwd=pwd", "")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGetMessages(t *testing.T) {
	t.Run("should render the merged feed", func(t *testing.T) {
		f := newAPIFixture(t)
		alice := domain.NewIdentity("alice", "d1")
		f.feeds.EXPECT().GetMessages(gomock.Any(), "alice@d1", int64(0)).Return([]domain.Message{
			{ID: 2, Owner: alice, Text: "later", Timestamp: 200},
			{ID: 1, Owner: alice, Text: "earlier", Timestamp: 100},
		}, nil)

		resp := f.do(t, http.MethodGet, "/feeds/alice@d1", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		messages := decode[[]domain.Message](t, resp)
		require.Len(t, messages, 2)
		require.Equal(t, "alice@d1", messages[0].Owner.String())
	})

	t.Run("should pass the time filter through", func(t *testing.T) {
		f := newAPIFixture(t)
		f.feeds.EXPECT().GetMessages(gomock.Any(), "alice@d1", int64(1234)).Return(nil, nil)

		resp := f.do(t, http.MethodGet, "/feeds/alice@d1?time=1234", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("should render an empty feed as a list", func(t *testing.T) {
		f := newAPIFixture(t)
		f.feeds.EXPECT().GetMessages(gomock.Any(), "alice@d1", int64(0)).Return(nil, nil)

		resp := f.do(t, http.MethodGet, "/feeds/alice@d1", "")
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.JSONEq(t, "[]", string(body))
	})

	t.Run("should answer 400 for a malformed time", func(t *testing.T) {
		f := newAPIFixture(t)

		resp := f.do(t, http.MethodGet, "/feeds/alice@d1?time=abc", "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetMessagesFromRemote(t *testing.T) {
	t.Run("should serve the no-merge feed", func(t *testing.T) {
		f := newAPIFixture(t)
		f.feeds.EXPECT().GetMessagesFromRemote(gomock.Any(), "alice", "d1", int64(50)).Return([]domain.Message{
			{ID: 1, Owner: domain.NewIdentity("alice", "d1"), Timestamp: 100},
		}, nil)

		resp := f.do(t, http.MethodGet, "/feeds/alice/d1/50", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, decode[[]domain.Message](t, resp), 1)
	})

	t.Run("should answer 404 for a foreign domain", func(t *testing.T) {
		f := newAPIFixture(t)
		f.feeds.EXPECT().GetMessagesFromRemote(gomock.Any(), "bob", "d2", int64(0)).Return(nil, errors.ErrNotFound)

		resp := f.do(t, http.MethodGet, "/feeds/bob/d2/0", "")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestSubscriptions(t *testing.T) {
	t.Run("should subscribe with 204", func(t *testing.T) {
		f := newAPIFixture(t)
		f.feeds.EXPECT().Subscribe(gomock.Any(), "alice@d1", "bob@d2", "pwd").Return(nil)

		resp := f.do(t, http.MethodPost, "/feeds/sub/alice@d1/bob@d2?pwd=pwd", "")
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("should unsubscribe with 204", func(t *testing.T) {
		f := newAPIFixture(t)
		f.feeds.EXPECT().Unsubscribe(gomock.Any(), "alice@d1", "bob@d2", "pwd").Return(nil)

		resp := f.do(t, http.MethodDelete, "/feeds/sub/alice@d1/bob@d2?pwd=pwd", "")
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("should list targets as full identities", func(t *testing.T) {
		f := newAPIFixture(t)
		f.feeds.EXPECT().ListSubscriptions(gomock.Any(), "alice@d1").Return([]string{"bob@d2"}, nil)

		resp := f.do(t, http.MethodGet, "/feeds/sub/list/alice@d1", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, []string{"bob@d2"}, decode[[]string](t, resp))
	})

	t.Run("should answer 502 when federation is required and down", func(t *testing.T) {
		f := newAPIFixture(t)
		f.feeds.EXPECT().GetMessage(gomock.Any(), "bob@d2", uint64(1)).Return(domain.Message{}, errors.ErrUnavailable)

		resp := f.do(t, http.MethodGet, "/feeds/bob@d2/1", "")
		require.Equal(t, http.StatusBadGateway, resp.StatusCode)
	})
}

func TestSearchMessages(t *testing.T) {
	f := newAPIFixture(t)
	alice := domain.NewIdentity("alice", "d1")
	f.feeds.EXPECT().SearchMessages(gomock.Any(), "alice@d1", "hello", 50).Return([]domain.Message{
		{ID: 1, Owner: alice, Text: "hello world", Timestamp: 100},
	}, nil)

	resp := f.do(t, http.MethodGet, "/feeds/search/alice@d1?query=hello", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, decode[[]domain.Message](t, resp), 1)
}

func TestUsers(t *testing.T) {
	t.Run("should create an account", func(t *testing.T) {
		f := newAPIFixture(t)
		f.users.EXPECT().Create("alice", "Alice", "letmein12").Return("alice@d1", nil)

		resp := f.do(t, http.MethodPost, "/users/", `{"name":"alice","displayName":"Alice","pwd":"letmein12"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "alice@d1", decode[string](t, resp))
	})

	t.Run("should answer 409 for a taken name", func(t *testing.T) {
		f := newAPIFixture(t)
		f.users.EXPECT().Create("alice", "", "letmein12").Return("", errors.ErrConflict)

		resp := f.do(t, http.MethodPost, "/users/", `{"name":"alice","pwd":"letmein12"}`)
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("should fetch an account without its hash", func(t *testing.T) {
		f := newAPIFixture(t)
		f.users.EXPECT().Get("alice", "pwd").Return(repositories.User{
			Name:         "alice",
			DisplayName:  "Alice",
			PasswordHash: "secret",
		}, nil)

		resp := f.do(t, http.MethodGet, "/users/alice?pwd=pwd", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NotContains(t, string(body), "secret")
	})

	t.Run("should update an account", func(t *testing.T) {
		f := newAPIFixture(t)
		f.users.EXPECT().
			Update("alice", "pwd", gomock.Any(), gomock.Any()).
			Return(repositories.User{Name: "alice", DisplayName: "Alice L."}, nil)

		resp := f.do(t, http.MethodPut, "/users/alice?pwd=pwd", `{"displayName":"Alice L."}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("should delete an account", func(t *testing.T) {
		f := newAPIFixture(t)
		f.users.EXPECT().Delete("alice", "pwd").Return(repositories.User{Name: "alice"}, nil)

		resp := f.do(t, http.MethodDelete, "/users/alice?pwd=pwd", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("should search accounts", func(t *testing.T) {
		f := newAPIFixture(t)
		f.users.EXPECT().Search("ali").Return([]repositories.User{{Name: "alice"}}, nil)

		resp := f.do(t, http.MethodGet, "/users/?query=ali", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		users := decode[[]map[string]string](t, resp)
		require.Len(t, users, 1)
		require.Equal(t, "alice", users[0]["name"])
	})
}

func TestStats(t *testing.T) {
	f := newAPIFixture(t)
	f.feeds.EXPECT().GetMessages(gomock.Any(), "alice@d1", int64(0)).Return(nil, nil)

	resp := f.do(t, http.MethodGet, "/feeds/alice@d1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	snap := decode[observability.Snapshot](t, resp)
	require.GreaterOrEqual(t, snap.Requests, uint64(1))
}
