package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/linkstats/internal/entity"
)

type linkDB struct {
	ID          int64          `db:"id"`
	Alias       string         `db:"alias"`
	OriginalURL string         `db:"original_url"`
	Topic       string         `db:"topic"`
	Owner       sql.NullString `db:"owner"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (l *linkDB) toEntity() *entity.Link {
	return &entity.Link{
		ID:          l.ID,
		Alias:       l.Alias,
		OriginalURL: l.OriginalURL,
		Topic:       entity.Topic(l.Topic),
		Owner:       l.Owner.String,
		CreatedAt:   l.CreatedAt,
	}
}

func toLinks(rows []linkDB) []entity.Link {
	links := make([]entity.Link, len(rows))
	for i := range rows {
		links[i] = *rows[i].toEntity()
	}
	return links
}

type LinkRepository struct {
	db *sqlx.DB
}

func NewLinkRepository(db *sqlx.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

func (r *LinkRepository) Save(ctx context.Context, link entity.Link) (*entity.Link, error) {
	const op = "adapter.repository.postgres.LinkRepository.Save"
	const query = `INSERT INTO links(alias, original_url, topic, owner) VALUES ($1, $2, $3, $4) RETURNING *`

	var row linkDB
	owner := sql.NullString{String: link.Owner, Valid: link.Owner != ""}

	if err := r.db.GetContext(ctx, &row, query, link.Alias, link.OriginalURL, string(link.Topic), owner); err != nil {
		if isUniqueViolationError(err) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrAliasExists)
		}

		return nil, fmt.Errorf("%s: failed to insert into links table: %w", op, err)
	}

	return row.toEntity(), nil
}

func (r *LinkRepository) RetrieveByAlias(ctx context.Context, alias string) (*entity.Link, error) {
	const op = "adapter.repository.postgres.LinkRepository.RetrieveByAlias"
	const query = `SELECT * FROM links WHERE alias = $1`

	var row linkDB

	if err := r.db.GetContext(ctx, &row, query, alias); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrLinkNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from links table: %w", op, err)
	}

	return row.toEntity(), nil
}

func (r *LinkRepository) RetrieveByTopic(ctx context.Context, topic entity.Topic) ([]entity.Link, error) {
	const op = "adapter.repository.postgres.LinkRepository.RetrieveByTopic"
	const query = `SELECT * FROM links WHERE topic = $1 ORDER BY id`

	var rows []linkDB

	if err := r.db.SelectContext(ctx, &rows, query, string(topic)); err != nil {
		return nil, fmt.Errorf("%s: failed to select rows from links table: %w", op, err)
	}

	return toLinks(rows), nil
}

func (r *LinkRepository) RetrieveByOwner(ctx context.Context, owner string) ([]entity.Link, error) {
	const op = "adapter.repository.postgres.LinkRepository.RetrieveByOwner"
	const query = `SELECT * FROM links WHERE owner = $1 ORDER BY id`

	var rows []linkDB

	if err := r.db.SelectContext(ctx, &rows, query, owner); err != nil {
		return nil, fmt.Errorf("%s: failed to select rows from links table: %w", op, err)
	}

	return toLinks(rows), nil
}
