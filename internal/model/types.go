package model

// Status classifies a post as reporting a lost or a found item.
type Status string

const (
	StatusLost  Status = "lost"
	StatusFound Status = "found"

	// StatusAll is a filter sentinel, never stored on a post.
	StatusAll Status = "all"
)

type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	PasswordDigest string `json:"-"`
	CreatedAt      int64  `json:"created_at"`
}

// UserRef is the public projection of a user embedded in other payloads.
type UserRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type Post struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Status      Status  `json:"status"`
	ItemName    string  `json:"item_name"`
	Location    string  `json:"location"`
	Place       string  `json:"place"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url"`
	CreatedAt   int64   `json:"created_at"`
	UpdatedAt   int64   `json:"updated_at"`
}

type Message struct {
	ID             int64  `json:"id"`
	ConversationID int64  `json:"conversation_id"`
	SenderID       int64  `json:"sender_id"`
	ReceiverID     int64  `json:"receiver_id"`
	Message        string `json:"message"`
	CreatedAt      int64  `json:"created_at"`
}

// Conversation is a per-user summary of one conversation id. OtherUser is
// nil when the counterpart cannot be resolved against the user collection.
type Conversation struct {
	ConversationID  int64     `json:"conversation_id"`
	OtherUser       *UserRef  `json:"other_user"`
	LastMessage     string    `json:"last_message"`
	LastMessageTime int64     `json:"last_message_time"`
	Messages        []Message `json:"messages"`
}

// Session binds an opaque bearer token to the identity that obtained it.
// Sessions never expire; they live until process restart.
type Session struct {
	Token     string `json:"-"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"created_at"`
}
