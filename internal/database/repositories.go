package database

import (
	"context"

	"github.com/victorivanov/famhub/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByIDs(ctx context.Context, ids []int64) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

type ChannelRepository interface {
	Create(ctx context.Context, channel *models.Channel) error
	GetByID(ctx context.Context, id int64) (*models.Channel, error)
	List(ctx context.Context) ([]models.Channel, error)
	IsMember(ctx context.Context, channelID, userID int64) (bool, error)
	AddMember(ctx context.Context, channelID, userID int64) error
	Delete(ctx context.Context, id int64) error
}

type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	ListByChannel(ctx context.Context, channelID int64, limit int) ([]models.Message, error)
}
