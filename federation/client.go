//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=../mocks/mock_federation_client.go -package=mocks
package federation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"feedhub/domain"
	"feedhub/errors"
	"feedhub/observability"
)

type IClient interface {
	FetchRemote(ctx context.Context, user domain.UserIdentity, since int64) ([]domain.Message, error)
	FetchMany(ctx context.Context, users []domain.UserIdentity, since int64) map[domain.UserIdentity]Result
}

// Result is one user's slot in a fan-out. Err is the federation
// failure marker; the caller decides whether it is fatal.
type Result struct {
	Messages []domain.Message
	Err      error
}

type Client struct {
	resolver IResolver
	client   *http.Client
	stats    *observability.Stats
	log      *slog.Logger
}

// NewClient builds a federation client whose every outbound call is
// bounded by timeout. There is no retry: feeds are read-mostly and a
// partial view beats added latency.
func NewClient(resolver IResolver, timeout time.Duration, stats *observability.Stats, log *slog.Logger) *Client {
	return &Client{
		resolver: resolver,
		client:   &http.Client{Timeout: timeout},
		stats:    stats,
		log:      log,
	}
}

// FetchRemote resolves the user's home domain and calls its no-merge
// endpoint, so the response holds only that user's own posts and the
// fan-out tree has depth exactly one. A remote 404 maps to ErrNotFound;
// resolution and transport failures map to ErrUnavailable.
func (c *Client) FetchRemote(ctx context.Context, user domain.UserIdentity, since int64) ([]domain.Message, error) {
	messages, err := c.fetch(ctx, user, since)
	c.stats.RecordRemoteFetch(err != nil)
	return messages, err
}

func (c *Client) fetch(ctx context.Context, user domain.UserIdentity, since int64) ([]domain.Message, error) {
	base, err := c.resolver.Resolve(user.Domain)
	if err != nil {
		return nil, err
	}

	endpoint := base.JoinPath("feeds", user.Name, user.Domain, strconv.FormatInt(since, 10))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrUnavailable, user.Domain, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s on %s", errors.ErrNotFound, user.Name, user.Domain)
	default:
		return nil, fmt.Errorf("%w: %s answered %d", errors.ErrUnavailable, user.Domain, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrUnavailable, user.Domain, err)
	}
	var messages []domain.Message
	if err := json.Unmarshal(body, &messages); err != nil {
		return nil, fmt.Errorf("%w: %s sent malformed feed: %v", errors.ErrUnavailable, user.Domain, err)
	}
	return messages, nil
}

// FetchMany fans out one concurrent fetch per user, so overall latency
// is bounded by the per-call timeout regardless of how many users sit
// on one domain. Failures land in the per-user Result instead of
// aborting the group.
func (c *Client) FetchMany(ctx context.Context, users []domain.UserIdentity, since int64) map[domain.UserIdentity]Result {
	var mu sync.Mutex
	results := make(map[domain.UserIdentity]Result, len(users))

	g, ctx := errgroup.WithContext(ctx)
	for _, user := range users {
		g.Go(func() error {
			messages, err := c.FetchRemote(ctx, user, since)
			if err != nil {
				c.log.Debug("Remote fetch failed", "user", user.String(), "error", err)
			}
			mu.Lock()
			results[user] = Result{Messages: messages, Err: err}
			mu.Unlock()
			return nil
		})
	}
	// goroutines never return errors; Wait only joins them
	_ = g.Wait()
	return results
}
