package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attachment describes a file stored in the blob store and referenced by a
// message. Messages only carry the descriptor, never the bytes.
type Attachment struct {
	FileID   string `bson:"file_id" json:"file_id"`
	Filename string `bson:"filename" json:"filename"`
	MimeType string `bson:"mime_type" json:"mime_type"`
	Size     int64  `bson:"size" json:"size"`
}

// Message is a document in the messages collection. ObjectID marshals to its
// hex form, so the wire id is a plain string.
type Message struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChannelID   int64              `bson:"channel_id" json:"channel_id"`
	UserID      int64              `bson:"user_id" json:"user_id"`
	Content     string             `bson:"content" json:"content"`
	Attachments []Attachment       `bson:"attachments" json:"attachments,omitempty"`
	EditedAt    *time.Time         `bson:"edited_at,omitempty" json:"edited_at,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// MessageWithAuthor is a message with its author's public profile attached.
type MessageWithAuthor struct {
	Message
	User PublicUser `json:"user"`
}
