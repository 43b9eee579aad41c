package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vadimbarashkov/linkstats/internal/analytics"
	"github.com/vadimbarashkov/linkstats/internal/entity"
)

const defaultQueryTimeout = 10 * time.Second

type AnalyticsOption func(*AnalyticsUseCase)

// WithLocation sets the time zone used to assign clicks to calendar dates.
func WithLocation(loc *time.Location) AnalyticsOption {
	return func(uc *AnalyticsUseCase) {
		uc.loc = loc
	}
}

// WithQueryTimeout bounds the time spent reading links and clicks for one request.
func WithQueryTimeout(d time.Duration) AnalyticsOption {
	return func(uc *AnalyticsUseCase) {
		uc.queryTimeout = d
	}
}

// WithBaseURL sets the prefix used to build short URLs in topic summaries.
func WithBaseURL(baseURL string) AnalyticsOption {
	return func(uc *AnalyticsUseCase) {
		uc.baseURL = baseURL
	}
}

func WithClock(now func() time.Time) AnalyticsOption {
	return func(uc *AnalyticsUseCase) {
		uc.now = now
	}
}

// AnalyticsUseCase builds click summaries for an alias, a topic or an account.
// It keeps no mutable state and is safe for concurrent use.
type AnalyticsUseCase struct {
	linkRepo     linkRepository
	clickRepo    clickRepository
	loc          *time.Location
	queryTimeout time.Duration
	baseURL      string
	now          func() time.Time
}

func NewAnalyticsUseCase(linkRepo linkRepository, clickRepo clickRepository, opts ...AnalyticsOption) *AnalyticsUseCase {
	uc := &AnalyticsUseCase{
		linkRepo:     linkRepo,
		clickRepo:    clickRepo,
		loc:          time.UTC,
		queryTimeout: defaultQueryTimeout,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

func (uc *AnalyticsUseCase) GetAliasAnalytics(ctx context.Context, alias string) (*entity.AliasSummary, error) {
	const op = "usecase.AnalyticsUseCase.GetAliasAnalytics"

	ctx, cancel := context.WithTimeout(ctx, uc.queryTimeout)
	defer cancel()

	link, err := uc.linkRepo.RetrieveByAlias(ctx, alias)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to resolve link: %w", op, err)
	}

	events, err := uc.clickRepo.RetrieveByAlias(ctx, link.Alias)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read clicks: %w", op, err)
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrNoAnalyticsData)
	}

	osType, deviceType := analytics.Breakdowns(events)

	return &entity.AliasSummary{
		ClickStats: analytics.Stats(uc.now(), uc.loc, events),
		OSType:     osType,
		DeviceType: deviceType,
	}, nil
}

func (uc *AnalyticsUseCase) GetTopicAnalytics(ctx context.Context, topic entity.Topic) (*entity.TopicSummary, error) {
	const op = "usecase.AnalyticsUseCase.GetTopicAnalytics"

	ctx, cancel := context.WithTimeout(ctx, uc.queryTimeout)
	defer cancel()

	links, err := uc.linkRepo.RetrieveByTopic(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read links: %w", op, err)
	}
	if len(links) == 0 {
		return nil, fmt.Errorf("%s: no links under topic %q: %w", op, topic, entity.ErrLinkNotFound)
	}

	events, err := uc.clickRepo.RetrieveByAliases(ctx, analytics.Aliases(links))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read clicks: %w", op, err)
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrNoAnalyticsData)
	}

	urls := analytics.PerLink(links, events)
	for i := range urls {
		urls[i].ShortURL = uc.shortURL(urls[i].Alias)
	}

	return &entity.TopicSummary{
		ClickStats: analytics.Stats(uc.now(), uc.loc, events),
		URLs:       urls,
	}, nil
}

func (uc *AnalyticsUseCase) GetAccountAnalytics(ctx context.Context, accountID string) (*entity.AccountSummary, error) {
	const op = "usecase.AnalyticsUseCase.GetAccountAnalytics"

	ctx, cancel := context.WithTimeout(ctx, uc.queryTimeout)
	defer cancel()

	links, err := uc.linkRepo.RetrieveByOwner(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read links: %w", op, err)
	}
	if len(links) == 0 {
		return nil, fmt.Errorf("%s: no links for account: %w", op, entity.ErrLinkNotFound)
	}

	events, err := uc.clickRepo.RetrieveByAliases(ctx, analytics.Aliases(links))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read clicks: %w", op, err)
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrNoAnalyticsData)
	}

	osType, deviceType := analytics.Breakdowns(events)

	return &entity.AccountSummary{
		TotalURLs:  len(links),
		ClickStats: analytics.Stats(uc.now(), uc.loc, events),
		OSType:     osType,
		DeviceType: deviceType,
	}, nil
}

func (uc *AnalyticsUseCase) shortURL(alias string) string {
	return entity.ShortURL(uc.baseURL, alias)
}
