package models

import "strconv"

// ChatMessage is an append-only chat room entry. Insertion order equals
// timestamp order; the id is derived from the creation time.
type ChatMessage struct {
	ID        string `json:"id"`
	UserEmail string `json:"userEmail"`
	UserName  string `json:"userName"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
	IsDJ      bool   `json:"isDJ,omitempty"`
}

// ChatMessageID derives a message id from a creation timestamp in
// milliseconds.
func ChatMessageID(timestampMillis int64) string {
	return strconv.FormatInt(timestampMillis, 10)
}
