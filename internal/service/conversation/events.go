package conversation

import (
	"log"

	"github.com/chatterbox-app/backend/internal/model/chat"
)

// EventType discriminates conversation feed events.
type EventType string

const (
	// EventEntry signals an entry appended to the transcript.
	EventEntry EventType = "entry"
	// EventTyping signals the bot typing indicator changing state.
	EventTyping EventType = "typing"
)

// Event is pushed to subscribers of a conversation feed.
type Event struct {
	Type           EventType   `json:"type"`
	ConversationID string      `json:"conversationId"`
	Entry          *chat.Entry `json:"entry,omitempty"`
	Typing         bool        `json:"typing,omitempty"`
}

// subscriberBuffer bounds each feed channel; slow consumers drop events
// rather than block the conversation.
const subscriberBuffer = 16

// Subscribe registers a feed channel for the conversation. The caller
// must release it with Unsubscribe.
func (s *Service) Subscribe(conversationID string) (chan Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[conversationID]; !ok {
		return nil, ErrConversationNotFound
	}

	ch := make(chan Event, subscriberBuffer)
	if s.subscribers[conversationID] == nil {
		s.subscribers[conversationID] = make(map[chan Event]struct{})
	}
	s.subscribers[conversationID][ch] = struct{}{}
	return ch, nil
}

// Unsubscribe removes a previously registered feed channel and closes it.
func (s *Service) Unsubscribe(conversationID string, ch chan Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs, ok := s.subscribers[conversationID]
	if !ok {
		return
	}
	if _, ok := subs[ch]; !ok {
		return
	}
	delete(subs, ch)
	close(ch)
	if len(subs) == 0 {
		delete(s.subscribers, conversationID)
	}
}

// notifyLocked fans an event out to subscribers. Callers hold s.mu.
func (s *Service) notifyLocked(conversationID string, event Event) {
	for ch := range s.subscribers[conversationID] {
		select {
		case ch <- event:
		default:
			log.Printf("[conversation] dropping %s event for slow subscriber conversation=%s", event.Type, conversationID)
		}
	}
}
