package store

import (
	"sort"

	"back2me/internal/model"
)

// SendMessage appends a message. The conversation id is caller-supplied and
// not validated for existence or ownership; sender and receiver are weak
// user references.
func (s *Store) SendMessage(conversationID, senderID, receiverID int64, text string, now int64) model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := model.Message{
		ID:             s.messageIDs.next(),
		ConversationID: conversationID,
		SenderID:       senderID,
		ReceiverID:     receiverID,
		Message:        text,
		CreatedAt:      now,
	}
	s.messages = append(s.messages, msg)
	return msg
}

// ConversationMessages returns all messages in a conversation, oldest first.
func (s *Store) ConversationMessages(conversationID int64) []model.Message {
	s.mu.RLock()
	result := make([]model.Message, 0)
	for _, m := range s.messages {
		if m.ConversationID == conversationID {
			result = append(result, m)
		}
	}
	s.mu.RUnlock()

	sortMessagesOldestFirst(result)
	return result
}

// ConversationsForUser returns one summary per distinct conversation id in
// which the user appears as sender or receiver. Summaries are ordered by
// first appearance of the conversation id in the message log, not by
// recency. The counterpart user is taken from the chronologically last
// message of each conversation.
func (s *Store) ConversationsForUser(userID int64) []model.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var order []int64
	grouped := make(map[int64][]model.Message)
	for _, m := range s.messages {
		if m.SenderID != userID && m.ReceiverID != userID {
			continue
		}
		if _, seen := grouped[m.ConversationID]; !seen {
			order = append(order, m.ConversationID)
		}
		grouped[m.ConversationID] = append(grouped[m.ConversationID], m)
	}

	result := make([]model.Conversation, 0, len(order))
	for _, convID := range order {
		msgs := grouped[convID]
		sortMessagesOldestFirst(msgs)
		last := msgs[len(msgs)-1]

		otherID := last.SenderID
		if last.SenderID == userID {
			otherID = last.ReceiverID
		}

		result = append(result, model.Conversation{
			ConversationID:  convID,
			OtherUser:       s.userRefLocked(otherID),
			LastMessage:     last.Message,
			LastMessageTime: last.CreatedAt,
			Messages:        msgs,
		})
	}
	return result
}

func sortMessagesOldestFirst(msgs []model.Message) {
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt < msgs[j].CreatedAt
	})
}
