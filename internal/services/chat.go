package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/lib/idgen"
)

var (
	ErrMessageNotFound  = errors.New("message not found")
	ErrMessageForbidden = errors.New("cannot delete another user's message")
)

// ChatService is the mock stream chat: an in-memory room seeded with a few
// regulars. Users delete their own messages, admins delete anything.
type ChatService struct {
	mu       sync.Mutex
	log      *slog.Logger
	ids      idgen.Generator
	now      func() time.Time
	messages []models.ChatMessage
}

func NewChatService(log *slog.Logger, ids idgen.Generator, now func() time.Time) *ChatService {
	if now == nil {
		now = time.Now
	}

	s := &ChatService{
		log: log,
		ids: ids,
		now: now,
	}

	s.messages = []models.ChatMessage{
		{ID: s.ids.NewID(), Username: "System", Text: "Welcome to the stream.", Timestamp: s.now(), IsSystem: true},
		{ID: s.ids.NewID(), Username: "Flora", Text: "Big vibes.", Timestamp: s.now()},
		{ID: s.ids.NewID(), Username: "RootDown", Text: "Can we get a rewind?", Timestamp: s.now()},
	}

	return s
}

func (s *ChatService) List(_ context.Context) ([]models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)

	return out, nil
}

func (s *ChatService) Post(_ context.Context, username, text string) (models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := models.ChatMessage{
		ID:        s.ids.NewID(),
		Username:  username,
		Text:      text,
		Timestamp: s.now(),
	}
	s.messages = append(s.messages, msg)

	return msg, nil
}

func (s *ChatService) Delete(_ context.Context, messageID string, requester models.User) error {
	const op = "services.ChatService.Delete"

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, msg := range s.messages {
		if msg.ID != messageID {
			continue
		}

		if !requester.IsAdmin && msg.Username != requester.Username {
			return fmt.Errorf("%s: %w", op, ErrMessageForbidden)
		}

		s.messages = append(s.messages[:i], s.messages[i+1:]...)
		s.log.Info("chat message deleted", slog.String("op", op), slog.String("message_id", messageID))

		return nil
	}

	return fmt.Errorf("%s: %w", op, ErrMessageNotFound)
}
