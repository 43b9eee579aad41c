package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vadimbarashkov/linkstats/internal/entity"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

var ErrMaxRetriesExceeded = errors.New("maximum retries exceeded for generating alias")

// ShortenParams describes a link to create.
type ShortenParams struct {
	OriginalURL string
	CustomAlias string
	Topic       entity.Topic
	Owner       string
}

// Visit carries the request metadata recorded for a redirect.
type Visit struct {
	UserAgent string
	ClientIP  string
}

type LinkUseCase struct {
	aliasLength int
	linkRepo    linkRepository
	clickRepo   clickRepository
	locator     locator
	now         func() time.Time
}

func NewLinkUseCase(aliasLength int, linkRepo linkRepository, clickRepo clickRepository, locator locator) *LinkUseCase {
	return &LinkUseCase{
		aliasLength: aliasLength,
		linkRepo:    linkRepo,
		clickRepo:   clickRepo,
		locator:     locator,
		now:         time.Now,
	}
}

func (uc *LinkUseCase) ShortenURL(ctx context.Context, params ShortenParams) (*entity.Link, error) {
	const op = "usecase.LinkUseCase.ShortenURL"
	const maxRetries = 5

	if params.Topic == "" {
		params.Topic = entity.DefaultTopic
	}

	link := entity.Link{
		OriginalURL: params.OriginalURL,
		Topic:       params.Topic,
		Owner:       params.Owner,
	}

	if params.CustomAlias != "" {
		link.Alias = params.CustomAlias

		saved, err := uc.linkRepo.Save(ctx, link)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to save link with custom alias: %w", op, err)
		}

		return saved, nil
	}

	length := uc.aliasLength

	for i := 0; i < maxRetries; i++ {
		alias, err := gonanoid.New(length)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to generate alias: %w", op, err)
		}
		link.Alias = alias

		saved, err := uc.linkRepo.Save(ctx, link)
		if err != nil {
			if errors.Is(err, entity.ErrAliasExists) {
				length++
				continue
			}

			return nil, fmt.Errorf("%s: failed to shorten url: %w", op, err)
		}

		return saved, nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrMaxRetriesExceeded)
}

// ResolveAlias returns the link behind alias and records the visit in the click log.
func (uc *LinkUseCase) ResolveAlias(ctx context.Context, alias string, visit Visit) (*entity.Link, error) {
	const op = "usecase.LinkUseCase.ResolveAlias"

	link, err := uc.linkRepo.RetrieveByAlias(ctx, alias)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to resolve alias: %w", op, err)
	}

	click := entity.ClickEvent{
		Alias:     link.Alias,
		Timestamp: uc.now().UTC(),
		UserAgent: visit.UserAgent,
		ClientIP:  visit.ClientIP,
		Location:  uc.locator.Locate(visit.ClientIP),
	}

	if _, err := uc.clickRepo.Save(ctx, click); err != nil {
		return nil, fmt.Errorf("%s: failed to record click: %w", op, err)
	}

	return link, nil
}
