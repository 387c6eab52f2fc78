package service

import (
	"context"
	"fmt"
	"time"

	"github.com/victorivanov/famhub/internal/database"
	"github.com/victorivanov/famhub/internal/models"
)

// CreateMessageInput carries the already-validated message fields.
type CreateMessageInput struct {
	Content     string
	Attachments []models.Attachment
}

// MessageService handles message posting and retrieval. Every operation runs
// the channel membership rule first.
type MessageService struct {
	messages database.MessageRepository
	users    database.UserRepository
	channels *ChannelService
}

// NewMessageService creates a MessageService.
func NewMessageService(
	messages database.MessageRepository,
	users database.UserRepository,
	channels *ChannelService,
) *MessageService {
	return &MessageService{
		messages: messages,
		users:    users,
		channels: channels,
	}
}

// List returns up to limit messages for the channel in ascending creation
// order, each hydrated with its author's public profile.
func (s *MessageService) List(ctx context.Context, channelID, userID int64, limit int) ([]models.MessageWithAuthor, error) {
	if err := s.channels.EnsureMember(ctx, channelID, userID); err != nil {
		return nil, err
	}

	msgs, err := s.messages.ListByChannel(ctx, channelID, limit)
	if err != nil {
		return nil, Internal("INTERNAL", "internal server error")
	}

	// The store returns newest first; display order is oldest first.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}

	return s.hydrateAuthors(ctx, msgs)
}

// Create posts a message to the channel with server-set timestamps.
func (s *MessageService) Create(ctx context.Context, in CreateMessageInput, channelID, userID int64) (*models.MessageWithAuthor, error) {
	if err := s.channels.EnsureMember(ctx, channelID, userID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	msg := &models.Message{
		ChannelID:   channelID,
		UserID:      userID,
		Content:     in.Content,
		Attachments: in.Attachments,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if msg.Attachments == nil {
		msg.Attachments = []models.Attachment{}
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, Internal("INTERNAL", "internal server error")
	}

	hydrated, err := s.hydrateAuthors(ctx, []models.Message{*msg})
	if err != nil {
		return nil, err
	}
	return &hydrated[0], nil
}

// hydrateAuthors resolves each message's author with a single batch lookup,
// deduplicated by user id. A missing author record becomes a placeholder so
// old messages survive account anomalies.
func (s *MessageService) hydrateAuthors(ctx context.Context, msgs []models.Message) ([]models.MessageWithAuthor, error) {
	ids := make([]int64, 0, len(msgs))
	seen := make(map[int64]bool, len(msgs))
	for _, m := range msgs {
		if !seen[m.UserID] {
			seen[m.UserID] = true
			ids = append(ids, m.UserID)
		}
	}

	authors := make(map[int64]models.PublicUser, len(ids))
	if len(ids) > 0 {
		users, err := s.users.GetByIDs(ctx, ids)
		if err != nil {
			return nil, Internal("INTERNAL", "internal server error")
		}
		for _, u := range users {
			authors[u.ID] = u.Public()
		}
	}

	out := make([]models.MessageWithAuthor, len(msgs))
	for i, m := range msgs {
		author, ok := authors[m.UserID]
		if !ok {
			author = models.PublicUser{ID: m.UserID, Username: fmt.Sprintf("User %d", m.UserID)}
		}
		out[i] = models.MessageWithAuthor{Message: m, User: author}
	}
	return out, nil
}
