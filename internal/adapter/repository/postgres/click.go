package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/linkstats/internal/entity"
)

type clickDB struct {
	ID        int64           `db:"id"`
	Alias     string          `db:"alias"`
	ClickedAt time.Time       `db:"clicked_at"`
	UserAgent string          `db:"user_agent"`
	ClientIP  string          `db:"client_ip"`
	Location  entity.Location `db:"location"`
}

func (c *clickDB) toEntity() *entity.ClickEvent {
	return &entity.ClickEvent{
		ID:        c.ID,
		Alias:     c.Alias,
		Timestamp: c.ClickedAt,
		UserAgent: c.UserAgent,
		ClientIP:  c.ClientIP,
		Location:  c.Location,
	}
}

func toClicks(rows []clickDB) []entity.ClickEvent {
	clicks := make([]entity.ClickEvent, len(rows))
	for i := range rows {
		clicks[i] = *rows[i].toEntity()
	}
	return clicks
}

// ClickRepository is the append-only click log.
type ClickRepository struct {
	db *sqlx.DB
}

func NewClickRepository(db *sqlx.DB) *ClickRepository {
	return &ClickRepository{db: db}
}

func (r *ClickRepository) Save(ctx context.Context, click entity.ClickEvent) (*entity.ClickEvent, error) {
	const op = "adapter.repository.postgres.ClickRepository.Save"
	const query = `INSERT INTO clicks(alias, clicked_at, user_agent, client_ip, location)
		VALUES ($1, COALESCE($2, now()), $3, $4, $5) RETURNING *`

	var (
		row       clickDB
		clickedAt *time.Time
	)

	if !click.Timestamp.IsZero() {
		clickedAt = &click.Timestamp
	}

	err := r.db.GetContext(ctx, &row, query, click.Alias, clickedAt, click.UserAgent, click.ClientIP, click.Location)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to insert into clicks table: %w", op, err)
	}

	return row.toEntity(), nil
}

func (r *ClickRepository) RetrieveByAlias(ctx context.Context, alias string) ([]entity.ClickEvent, error) {
	const op = "adapter.repository.postgres.ClickRepository.RetrieveByAlias"
	const query = `SELECT * FROM clicks WHERE alias = $1 ORDER BY clicked_at`

	var rows []clickDB

	if err := r.db.SelectContext(ctx, &rows, query, alias); err != nil {
		return nil, fmt.Errorf("%s: failed to select rows from clicks table: %w", op, err)
	}

	return toClicks(rows), nil
}

func (r *ClickRepository) RetrieveByAliases(ctx context.Context, aliases []string) ([]entity.ClickEvent, error) {
	const op = "adapter.repository.postgres.ClickRepository.RetrieveByAliases"

	if len(aliases) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM clicks WHERE alias IN (?) ORDER BY clicked_at`, aliases)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var rows []clickDB

	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("%s: failed to select rows from clicks table: %w", op, err)
	}

	return toClicks(rows), nil
}
