//go:generate go run go.uber.org/mock/mockgen -source=feed_service.go -destination=../mocks/mock_feed_service.go -package=mocks

// Package services orchestrates the repositories, the auth gate and
// the federation client behind the wire-facing operations.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/samber/lo"

	"feedhub/auth"
	"feedhub/domain"
	"feedhub/errors"
	"feedhub/federation"
	"feedhub/repositories"
	"feedhub/search"
)

type IFeedService interface {
	PostMessage(ctx context.Context, user, pwd, text string) (uint64, error)
	RemoveMessage(ctx context.Context, user string, mid uint64, pwd string) error
	GetMessage(ctx context.Context, user string, mid uint64) (domain.Message, error)
	GetMessages(ctx context.Context, user string, since int64) ([]domain.Message, error)
	GetMessagesFromRemote(ctx context.Context, name, domainName string, since int64) ([]domain.Message, error)
	Subscribe(ctx context.Context, user, target, pwd string) error
	Unsubscribe(ctx context.Context, user, target, pwd string) error
	ListSubscriptions(ctx context.Context, user string) ([]string, error)
	SearchMessages(ctx context.Context, user, query string, limit int) ([]domain.Message, error)
}

// FeedService serves one administrative domain. Every write originates
// here and never propagates; reads split into the merging entry point
// for local subjects and the no-merge entry point exposed to remote
// domains, which is what keeps federation fan-out at depth one.
type FeedService struct {
	domain   string
	feeds    repositories.IFeedRepository
	subs     repositories.ISubscriptionRepository
	accounts repositories.AccountChecker
	gate     auth.IGate
	remote   federation.IClient
	index    search.IIndex
	log      *slog.Logger
}

func NewFeedService(
	domainName string,
	feeds repositories.IFeedRepository,
	subs repositories.ISubscriptionRepository,
	accounts repositories.AccountChecker,
	gate auth.IGate,
	remote federation.IClient,
	index search.IIndex,
	log *slog.Logger,
) *FeedService {
	return &FeedService{
		domain:   domainName,
		feeds:    feeds,
		subs:     subs,
		accounts: accounts,
		gate:     gate,
		remote:   remote,
		index:    index,
		log:      log,
	}
}

// PostMessage appends to the author's own log. A user posts only to her
// home domain's server, so a foreign identity here is a client mistake,
// not a missing resource.
func (s *FeedService) PostMessage(ctx context.Context, user, pwd, text string) (uint64, error) {
	identity, err := domain.ParseIdentity(user)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrBadRequest, err)
	}
	if !identity.HostedBy(s.domain) {
		return 0, fmt.Errorf("%w: %s is not hosted on %s", errors.ErrBadRequest, user, s.domain)
	}
	if text == "" {
		return 0, fmt.Errorf("%w: empty message", errors.ErrBadRequest)
	}
	if err := s.gate.Verify(identity.Name, pwd); err != nil {
		return 0, err
	}

	id, err := s.feeds.Append(identity.Name, text, time.Now().UnixMilli())
	if err != nil {
		return 0, err
	}

	// the index is derived data; a failed update degrades search only
	msg := domain.Message{ID: id, Owner: identity, Text: text}
	if err := s.index.IndexMessage(msg); err != nil {
		s.log.Warn("Indexing failed", "user", user, "id", id, "error", err)
	}

	s.log.Info("Message posted", "user", user, "id", id)
	return id, nil
}

func (s *FeedService) RemoveMessage(ctx context.Context, user string, mid uint64, pwd string) error {
	identity, err := s.localIdentity(user)
	if err != nil {
		return err
	}
	if err := s.gate.Verify(identity.Name, pwd); err != nil {
		return err
	}
	if err := s.feeds.Remove(identity.Name, mid); err != nil {
		return err
	}
	if err := s.index.RemoveMessage(identity, mid); err != nil {
		s.log.Warn("Index removal failed", "user", user, "id", mid, "error", err)
	}
	return nil
}

// GetMessage is a public read. For a local user it comes straight from
// the store; for a remote user there is exactly one source of truth,
// so federation failures surface instead of being dropped.
func (s *FeedService) GetMessage(ctx context.Context, user string, mid uint64) (domain.Message, error) {
	identity, err := domain.ParseIdentity(user)
	if err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", errors.ErrBadRequest, err)
	}

	if identity.HostedBy(s.domain) {
		return s.feeds.Get(identity.Name, mid)
	}

	messages, err := s.remote.FetchRemote(ctx, identity, 0)
	if err != nil {
		return domain.Message{}, err
	}
	for _, msg := range messages {
		if msg.ID == mid {
			return msg, nil
		}
	}
	return domain.Message{}, fmt.Errorf("%w: message %d of %s", errors.ErrNotFound, mid, user)
}

// GetMessages is the merging entry point for a local subject reading
// her aggregated feed: her own log, her local targets' logs, and one
// concurrent fetch per remote target. An unreachable target simply
// contributes nothing; a transient outage must not blank the feed.
func (s *FeedService) GetMessages(ctx context.Context, user string, since int64) ([]domain.Message, error) {
	identity, err := s.localIdentity(user)
	if err != nil {
		return nil, err
	}

	merged, err := s.feeds.ListSince(identity.Name, since)
	if err != nil {
		return nil, err
	}

	targets, err := s.subs.ListTargets(identity.Name)
	if err != nil {
		return nil, err
	}

	locals, remotes := lo.FilterReject(targets, func(t domain.UserIdentity, _ int) bool {
		return t.HostedBy(s.domain)
	})

	for _, target := range locals {
		messages, err := s.feeds.ListSince(target.Name, since)
		if err != nil {
			// the target account may be gone; its edge dies lazily
			s.log.Debug("Skipping local target", "target", target.String(), "error", err)
			continue
		}
		merged = append(merged, messages...)
	}

	for user, result := range s.remote.FetchMany(ctx, remotes, since) {
		if result.Err != nil {
			s.log.Debug("Dropping unreachable target from merge", "target", user.String())
			continue
		}
		merged = append(merged, result.Messages...)
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Newer(merged[j])
	})
	return merged, nil
}

// GetMessagesFromRemote is the only contract a remote caller ever sees.
// It returns the named user's own log and deliberately never consults
// the subscription graph: the asymmetry with GetMessages is what makes
// cascading fan-out structurally impossible.
func (s *FeedService) GetMessagesFromRemote(ctx context.Context, name, domainName string, since int64) ([]domain.Message, error) {
	if domainName != s.domain {
		return nil, fmt.Errorf("%w: %s@%s is not hosted here", errors.ErrNotFound, name, domainName)
	}
	return s.feeds.ListSince(name, since)
}

// Subscribe records the edge. A local target must exist; a remote one
// is taken on faith and verified lazily when reads fan out.
func (s *FeedService) Subscribe(ctx context.Context, user, target, pwd string) error {
	identity, err := s.localIdentity(user)
	if err != nil {
		return err
	}
	targetIdentity, err := domain.ParseIdentity(target)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrBadRequest, err)
	}
	if err := s.gate.Verify(identity.Name, pwd); err != nil {
		return err
	}

	if targetIdentity.HostedBy(s.domain) {
		ok, err := s.accounts.Exists(targetIdentity.Name)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: user %s", errors.ErrNotFound, target)
		}
	}
	return s.subs.Subscribe(identity.Name, targetIdentity)
}

func (s *FeedService) Unsubscribe(ctx context.Context, user, target, pwd string) error {
	identity, err := s.localIdentity(user)
	if err != nil {
		return err
	}
	targetIdentity, err := domain.ParseIdentity(target)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrBadRequest, err)
	}
	if err := s.gate.Verify(identity.Name, pwd); err != nil {
		return err
	}
	return s.subs.Unsubscribe(identity.Name, targetIdentity)
}

func (s *FeedService) ListSubscriptions(ctx context.Context, user string) ([]string, error) {
	identity, err := s.localIdentity(user)
	if err != nil {
		return nil, err
	}
	targets, err := s.subs.ListTargets(identity.Name)
	if err != nil {
		return nil, err
	}
	return lo.Map(targets, func(t domain.UserIdentity, _ int) string {
		return t.String()
	}), nil
}

// SearchMessages resolves index hits back through the feed store, so
// tombstoned entries silently fall out of the results.
func (s *FeedService) SearchMessages(ctx context.Context, user, query string, limit int) ([]domain.Message, error) {
	identity, err := s.localIdentity(user)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", errors.ErrBadRequest)
	}

	hits, err := s.index.Search(ctx, query, identity.Name, limit)
	if err != nil {
		return nil, err
	}

	var messages []domain.Message
	for _, hit := range hits {
		msg, err := s.feeds.Get(hit.Owner, hit.ID)
		if err != nil {
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// localIdentity parses the wire identity and requires this domain to
// be its home; anything else is an absent resource on this server.
func (s *FeedService) localIdentity(user string) (domain.UserIdentity, error) {
	identity, err := domain.ParseIdentity(user)
	if err != nil {
		return domain.UserIdentity{}, fmt.Errorf("%w: %v", errors.ErrBadRequest, err)
	}
	if !identity.HostedBy(s.domain) {
		return domain.UserIdentity{}, fmt.Errorf("%w: %s is not hosted on %s", errors.ErrNotFound, user, s.domain)
	}
	return identity, nil
}
