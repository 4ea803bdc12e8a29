package store

import "testing"

func TestSendMessage_SequentialIDs(t *testing.T) {
	s := New()
	m1 := s.SendMessage(7, 1, 2, "hello", 1000)
	m2 := s.SendMessage(9, 2, 1, "hi", 1001)
	if m1.ID != 1 || m2.ID != 2 {
		t.Fatalf("expected ids 1,2, got %d,%d", m1.ID, m2.ID)
	}
	if m1.ConversationID != 7 {
		t.Fatalf("expected caller-supplied conversation id 7, got %d", m1.ConversationID)
	}
}

func TestConversationMessages_OldestFirst(t *testing.T) {
	s := New()
	s.SendMessage(7, 1, 2, "first", 1000)
	s.SendMessage(8, 1, 2, "other conversation", 1500)
	s.SendMessage(7, 2, 1, "second", 2000)

	msgs := s.ConversationMessages(7)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Message != "first" || msgs[1].Message != "second" {
		t.Fatalf("expected ascending order, got %q then %q", msgs[0].Message, msgs[1].Message)
	}
}

func TestConversationsForUser_SummariesAlternatingSenders(t *testing.T) {
	s := New()
	if _, err := s.RegisterUser("alice", "alice@x.edu", "pw", 900); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if _, err := s.RegisterUser("bob", "bob@x.edu", "pw", 901); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	s.SendMessage(7, 1, 2, "is it yours?", 1000)
	s.SendMessage(7, 2, 1, "yes!", 2000)
	s.SendMessage(7, 1, 2, "meet at the library", 3000)

	convs := s.ConversationsForUser(1)
	if len(convs) != 1 {
		t.Fatalf("expected exactly one conversation, got %d", len(convs))
	}

	conv := convs[0]
	if conv.ConversationID != 7 {
		t.Fatalf("expected conversation 7, got %d", conv.ConversationID)
	}
	if conv.OtherUser == nil || conv.OtherUser.ID != 2 || conv.OtherUser.Username != "bob" {
		t.Fatalf("unexpected other_user: %+v", conv.OtherUser)
	}
	if conv.LastMessage != "meet at the library" || conv.LastMessageTime != 3000 {
		t.Fatalf("unexpected last message: %q at %d", conv.LastMessage, conv.LastMessageTime)
	}
	if len(conv.Messages) != 3 || conv.Messages[0].Message != "is it yours?" {
		t.Fatalf("expected full ascending message list, got %+v", conv.Messages)
	}
}

func TestConversationsForUser_FirstSeenOrder(t *testing.T) {
	s := New()
	s.SendMessage(5, 1, 2, "a", 1000)
	s.SendMessage(3, 1, 2, "b", 2000)
	s.SendMessage(5, 2, 1, "c", 3000) // conversation 5 is now the most recent

	convs := s.ConversationsForUser(1)
	if len(convs) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(convs))
	}
	// Ordered by first appearance in the message log, not by recency.
	if convs[0].ConversationID != 5 || convs[1].ConversationID != 3 {
		t.Fatalf("expected first-seen order 5,3, got %d,%d", convs[0].ConversationID, convs[1].ConversationID)
	}
}

func TestConversationsForUser_UnresolvableOtherUser(t *testing.T) {
	s := New()
	s.SendMessage(1, 1, 42, "anyone there?", 1000)

	convs := s.ConversationsForUser(1)
	if len(convs) != 1 {
		t.Fatalf("expected 1 conversation, got %d", len(convs))
	}
	if convs[0].OtherUser != nil {
		t.Fatalf("expected nil other_user for unknown id, got %+v", convs[0].OtherUser)
	}
}

func TestConversationsForUser_ExcludesOtherPeoples(t *testing.T) {
	s := New()
	s.SendMessage(1, 2, 3, "not for user 1", 1000)

	if convs := s.ConversationsForUser(1); len(convs) != 0 {
		t.Fatalf("expected no conversations, got %d", len(convs))
	}
}
