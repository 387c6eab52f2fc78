package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/victorivanov/famhub/internal/models"
)

type channelRepo struct {
	pool *pgxpool.Pool
}

func NewChannelRepository(pool *pgxpool.Pool) ChannelRepository {
	return &channelRepo{pool: pool}
}

// Create inserts the channel and its creator's membership. A channel always
// has at least one member.
func (r *channelRepo) Create(ctx context.Context, ch *models.Channel) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO channels (name, description, created_by, is_private)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		ch.Name, ch.Description, ch.CreatedBy, ch.IsPrivate,
	).Scan(&ch.ID, &ch.CreatedAt, &ch.UpdatedAt)
	if err != nil {
		return err
	}
	return r.AddMember(ctx, ch.ID, ch.CreatedBy)
}

func (r *channelRepo) GetByID(ctx context.Context, id int64) (*models.Channel, error) {
	ch := &models.Channel{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, created_by, is_private, created_at, updated_at
		 FROM channels WHERE id = $1`, id,
	).Scan(&ch.ID, &ch.Name, &ch.Description, &ch.CreatedBy, &ch.IsPrivate, &ch.CreatedAt, &ch.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func (r *channelRepo) List(ctx context.Context) ([]models.Channel, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, created_by, is_private, created_at, updated_at
		 FROM channels
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var channels []models.Channel
	for rows.Next() {
		var ch models.Channel
		if err := rows.Scan(&ch.ID, &ch.Name, &ch.Description, &ch.CreatedBy, &ch.IsPrivate, &ch.CreatedAt, &ch.UpdatedAt); err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}
	return channels, rows.Err()
}

func (r *channelRepo) IsMember(ctx context.Context, channelID, userID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
		     SELECT 1 FROM channel_members WHERE channel_id = $1 AND user_id = $2
		 )`, channelID, userID,
	).Scan(&exists)
	return exists, err
}

// AddMember is idempotent: inserting an existing membership is a no-op.
func (r *channelRepo) AddMember(ctx context.Context, channelID, userID int64) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO channel_members (channel_id, user_id)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		channelID, userID,
	)
	return err
}

func (r *channelRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM channels WHERE id = $1`, id)
	return err
}
