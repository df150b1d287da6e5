package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Channel is a chat channel record. Messages holds message IDs in order.
// Groundwork for the messaging feature; nothing orchestrates channels yet.
type Channel struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Messages []string `json:"messages"`
	Created  float64  `json:"created"`
	Updated  float64  `json:"updated"`
}

// NewChannel returns an empty channel with a fresh ID and timestamps.
func NewChannel(title string) *Channel {
	now := float64(time.Now().Unix())
	return &Channel{
		ID:       uuid.NewString(),
		Title:    title,
		Messages: []string{},
		Created:  now,
		Updated:  now,
	}
}

func DecodeChannel(data []byte) (*Channel, error) {
	var c Channel
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func EncodeChannel(c *Channel) ([]byte, error) {
	return json.Marshal(c)
}
