package service

import (
	"context"

	"github.com/victorivanov/famhub/internal/database"
	"github.com/victorivanov/famhub/internal/models"
)

// CreateChannelInput carries the already-validated channel fields.
type CreateChannelInput struct {
	Name        string
	Description *string
	IsPrivate   bool
}

// ChannelService handles channel listing, creation, and the membership rule.
type ChannelService struct {
	channels database.ChannelRepository
}

// NewChannelService creates a ChannelService.
func NewChannelService(channels database.ChannelRepository) *ChannelService {
	return &ChannelService{channels: channels}
}

// List returns all channels, newest first.
func (s *ChannelService) List(ctx context.Context) ([]models.Channel, error) {
	channels, err := s.channels.List(ctx)
	if err != nil {
		return nil, Internal("INTERNAL", "internal server error")
	}
	if channels == nil {
		channels = []models.Channel{}
	}
	return channels, nil
}

// Get returns the channel with the given ID.
func (s *ChannelService) Get(ctx context.Context, id int64) (*models.Channel, error) {
	ch, err := s.channels.GetByID(ctx, id)
	if err != nil {
		return nil, Internal("INTERNAL", "internal server error")
	}
	if ch == nil {
		return nil, NotFound("NOT_FOUND", "channel not found")
	}
	return ch, nil
}

// Create persists the channel with the creator as its first member.
func (s *ChannelService) Create(ctx context.Context, in CreateChannelInput, creatorID int64) (*models.Channel, error) {
	ch := &models.Channel{
		Name:        in.Name,
		Description: emptyToNil(in.Description),
		CreatedBy:   creatorID,
		IsPrivate:   in.IsPrivate,
	}
	if err := s.channels.Create(ctx, ch); err != nil {
		return nil, Internal("INTERNAL", "internal server error")
	}
	return ch, nil
}

// EnsureMember enforces the access rule before any message read or write:
// members pass, public channels are joined implicitly, private channels
// reject non-members. Idempotent.
func (s *ChannelService) EnsureMember(ctx context.Context, channelID, userID int64) error {
	member, err := s.channels.IsMember(ctx, channelID, userID)
	if err != nil {
		return Internal("INTERNAL", "internal server error")
	}
	if member {
		return nil
	}

	ch, err := s.channels.GetByID(ctx, channelID)
	if err != nil {
		return Internal("INTERNAL", "internal server error")
	}
	if ch == nil {
		return NotFound("NOT_FOUND", "channel not found")
	}
	if ch.IsPrivate {
		return Forbidden("NOT_CHANNEL_MEMBER", "you are not a member of this private channel")
	}

	if err := s.channels.AddMember(ctx, channelID, userID); err != nil {
		return Internal("INTERNAL", "internal server error")
	}
	return nil
}
