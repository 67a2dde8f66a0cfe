package conversation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chatterbox-app/backend/internal/bot"
	"github.com/chatterbox-app/backend/internal/model/chat"
)

var ErrConversationNotFound = errors.New("conversation not found")

// Config tunes the in-memory conversation service.
type Config struct {
	// ReplyDelay is the fixed typing-simulation pause before the bot
	// entry is appended. The delay is not cancellable and always
	// completes.
	ReplyDelay time.Duration
	// HistoryLimit caps how many trailing entries LoadTranscript
	// returns. Zero means unlimited.
	HistoryLimit int
}

// Service encapsulates conversation state management. All state lives in
// memory and dies with the process.
type Service struct {
	mu            sync.RWMutex
	conversations map[string]chat.Conversation
	entries       map[string][]chat.Entry
	pending       map[string]int
	subscribers   map[string]map[chan Event]struct{}
	cfg           Config
}

// NewService bootstraps the in-memory conversation service.
func NewService(cfg Config) *Service {
	if cfg.ReplyDelay < 0 {
		cfg.ReplyDelay = 0
	}
	return &Service{
		conversations: make(map[string]chat.Conversation),
		entries:       make(map[string][]chat.Entry),
		pending:       make(map[string]int),
		subscribers:   make(map[string]map[chan Event]struct{}),
		cfg:           cfg,
	}
}

// CreateConversation provisions an anonymous conversation.
func (s *Service) CreateConversation(_ context.Context) (chat.Conversation, error) {
	conversation := chat.Conversation{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.conversations[conversation.ID] = conversation
	s.entries[conversation.ID] = make([]chat.Entry, 0, 16)
	s.mu.Unlock()

	return conversation, nil
}

// GetConversation retrieves a conversation by identifier.
func (s *Service) GetConversation(_ context.Context, conversationID string) (chat.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conversation, ok := s.conversations[conversationID]
	if !ok {
		return chat.Conversation{}, ErrConversationNotFound
	}
	return conversation, nil
}

// LoadTranscript returns stored entries for the provided conversation,
// trimmed to the configured history limit.
func (s *Service) LoadTranscript(_ context.Context, conversationID string) ([]chat.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, ok := s.entries[conversationID]
	if !ok {
		return nil, ErrConversationNotFound
	}

	if limit := s.cfg.HistoryLimit; limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	copied := make([]chat.Entry, len(entries))
	copy(copied, entries)
	return copied, nil
}

// Pending reports whether the conversation is awaiting a bot reply.
func (s *Service) Pending(_ context.Context, conversationID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.conversations[conversationID]; !ok {
		return false, ErrConversationNotFound
	}
	return s.pending[conversationID] > 0, nil
}

// Submit appends a user entry and schedules the canned reply after the
// configured delay. Empty or whitespace-only text is a silent no-op:
// accepted is false, nothing is appended, and no error is returned.
func (s *Service) Submit(_ context.Context, conversationID, text string) (accepted bool, err error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		s.mu.RLock()
		_, ok := s.conversations[conversationID]
		s.mu.RUnlock()
		if !ok {
			return false, ErrConversationNotFound
		}
		return false, nil
	}

	s.mu.Lock()
	if _, ok := s.conversations[conversationID]; !ok {
		s.mu.Unlock()
		return false, ErrConversationNotFound
	}

	userEntry := chat.Entry{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Author:         chat.AuthorUser,
		Text:           trimmed,
		CreatedAt:      time.Now().UTC(),
	}
	s.entries[conversationID] = append(s.entries[conversationID], userEntry)
	s.pending[conversationID]++
	typingStarted := s.pending[conversationID] == 1

	s.notifyLocked(conversationID, Event{
		Type:           EventEntry,
		ConversationID: conversationID,
		Entry:          &userEntry,
	})
	if typingStarted {
		s.notifyLocked(conversationID, Event{
			Type:           EventTyping,
			ConversationID: conversationID,
			Typing:         true,
		})
	}
	s.mu.Unlock()

	time.AfterFunc(s.cfg.ReplyDelay, func() {
		s.resolveReply(conversationID, trimmed)
	})

	return true, nil
}

// resolveReply appends the bot entry for an earlier submit and clears the
// pending flag once no reply remains outstanding.
func (s *Service) resolveReply(conversationID, userText string) {
	reply := bot.Select(userText)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[conversationID]; !ok {
		return
	}

	botEntry := chat.Entry{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Author:         chat.AuthorBot,
		Text:           reply,
		CreatedAt:      time.Now().UTC(),
	}
	s.entries[conversationID] = append(s.entries[conversationID], botEntry)
	if s.pending[conversationID] > 0 {
		s.pending[conversationID]--
	}

	s.notifyLocked(conversationID, Event{
		Type:           EventEntry,
		ConversationID: conversationID,
		Entry:          &botEntry,
	})
	if s.pending[conversationID] == 0 {
		s.notifyLocked(conversationID, Event{
			Type:           EventTyping,
			ConversationID: conversationID,
			Typing:         false,
		})
	}
}
