// Package usecase implements the link and analytics operations on top of the
// link registry and the click log.
package usecase

import (
	"context"

	"github.com/vadimbarashkov/linkstats/internal/entity"
)

type linkRepository interface {
	Save(ctx context.Context, link entity.Link) (*entity.Link, error)
	RetrieveByAlias(ctx context.Context, alias string) (*entity.Link, error)
	RetrieveByTopic(ctx context.Context, topic entity.Topic) ([]entity.Link, error)
	RetrieveByOwner(ctx context.Context, owner string) ([]entity.Link, error)
}

type clickRepository interface {
	Save(ctx context.Context, click entity.ClickEvent) (*entity.ClickEvent, error)
	RetrieveByAlias(ctx context.Context, alias string) ([]entity.ClickEvent, error)
	RetrieveByAliases(ctx context.Context, aliases []string) ([]entity.ClickEvent, error)
}

type locator interface {
	Locate(ip string) entity.Location
}
