package state

import (
	"context"
	"strings"

	"remixradio/models"
)

// ChatMessages returns a copy of the chat history in insertion order.
func (s *Store) ChatMessages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ChatMessage(nil), s.chat...)
}

// AppendChatMessage adds a message authored by the given session. The
// message id is derived from the creation time; DJ sessions are flagged and
// keep their prefixed display name.
func (s *Store) AppendChatMessage(ctx context.Context, session models.Session, text string) (models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	timestamp := s.now().UnixMilli()
	// Creation-time ids collide when two messages land in the same
	// millisecond; nudge forward past the previous message.
	if n := len(s.chat); n > 0 && timestamp <= s.chat[n-1].Timestamp {
		timestamp = s.chat[n-1].Timestamp + 1
	}

	message := models.ChatMessage{
		ID:        models.ChatMessageID(timestamp),
		UserEmail: session.Email,
		UserName:  session.Name,
		Text:      text,
		Timestamp: timestamp,
		IsDJ:      session.Role == models.RoleDJ,
	}
	s.chat = append(s.chat, message)
	s.persistJSON(ctx, keyChat, s.chat)
	return message, nil
}
