package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/assistant"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/entity"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/repository"
)

type ChatService struct {
	store     *repository.Store
	assistant assistant.Assistant
}

func NewChatService(store *repository.Store, a assistant.Assistant) *ChatService {
	return &ChatService{store: store, assistant: a}
}

// Chat asks the assistant for a reply and records the exchange.
func (s *ChatService) Chat(ctx context.Context, userID int, message string) (entity.ChatHistoryEntry, error) {
	if strings.TrimSpace(message) == "" {
		return entity.ChatHistoryEntry{}, fmt.Errorf("message is required: %w", repository.ErrValidation)
	}
	reply := s.assistant.Respond(ctx, message)

	entry, err := s.store.SaveChatHistory(entity.ChatHistoryEntry{
		UserID:   userID,
		Message:  message,
		Response: reply,
	})
	if err != nil {
		logger.Error().Err(err).Msgf("Error saving chat history for user %d", userID)
		return entity.ChatHistoryEntry{}, err
	}
	return entry, nil
}

// History returns the user's exchanges, oldest first.
func (s *ChatService) History(userID int) []entity.ChatHistoryEntry {
	return s.store.ListChatHistory(userID)
}

func (s *ChatService) Recommend(ctx context.Context, mood, concerns string) ([]assistant.Resource, error) {
	if strings.TrimSpace(mood) == "" || strings.TrimSpace(concerns) == "" {
		return nil, fmt.Errorf("mood and concerns are required: %w", repository.ErrValidation)
	}
	return s.assistant.Recommend(ctx, mood, concerns), nil
}
