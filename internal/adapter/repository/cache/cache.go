// Package cache keeps recently resolved links in memory. Links are immutable
// once created, so cached entries never need invalidation.
package cache

import (
	"context"
	"fmt"

	"github.com/vadimbarashkov/linkstats/internal/entity"

	lru "github.com/hashicorp/golang-lru/v2"
)

type linkRepository interface {
	Save(ctx context.Context, link entity.Link) (*entity.Link, error)
	RetrieveByAlias(ctx context.Context, alias string) (*entity.Link, error)
	RetrieveByTopic(ctx context.Context, topic entity.Topic) ([]entity.Link, error)
	RetrieveByOwner(ctx context.Context, owner string) ([]entity.Link, error)
}

// LinkRepository serves alias lookups from an LRU cache and delegates
// everything else to the wrapped repository.
type LinkRepository struct {
	linkRepository
	links *lru.Cache[string, entity.Link]
}

func NewLinkRepository(repo linkRepository, size int) (*LinkRepository, error) {
	const op = "adapter.repository.cache.NewLinkRepository"

	links, err := lru.New[string, entity.Link](size)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create lru cache: %w", op, err)
	}

	return &LinkRepository{
		linkRepository: repo,
		links:          links,
	}, nil
}

func (r *LinkRepository) Save(ctx context.Context, link entity.Link) (*entity.Link, error) {
	saved, err := r.linkRepository.Save(ctx, link)
	if err != nil {
		return nil, err
	}

	r.links.Add(saved.Alias, *saved)

	return saved, nil
}

func (r *LinkRepository) RetrieveByAlias(ctx context.Context, alias string) (*entity.Link, error) {
	if link, ok := r.links.Get(alias); ok {
		return &link, nil
	}

	link, err := r.linkRepository.RetrieveByAlias(ctx, alias)
	if err != nil {
		return nil, err
	}

	r.links.Add(alias, *link)

	return link, nil
}
