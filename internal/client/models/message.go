package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Message is a single chat message. Images holds attachment keys in order.
type Message struct {
	ID      string   `json:"id"`
	Sender  string   `json:"sender"`
	Text    string   `json:"text"`
	Images  []string `json:"images"`
	Created float64  `json:"created"`
	Updated float64  `json:"updated"`
}

// NewMessage returns a message with a fresh ID and timestamps.
func NewMessage(sender, text string) *Message {
	now := float64(time.Now().Unix())
	return &Message{
		ID:      uuid.NewString(),
		Sender:  sender,
		Text:    text,
		Images:  []string{},
		Created: now,
		Updated: now,
	}
}

func DecodeMessage(data []byte) (*Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func EncodeMessage(m *Message) ([]byte, error) {
	return json.Marshal(m)
}
