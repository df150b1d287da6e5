// Package models defines the value records exchanged with the account/chat
// service and persisted locally.
package models

import "encoding/json"

// User is the directory record for an account.
//
// Password is populated only for outbound write requests (register, update);
// the server never echoes it back. Created and Updated are epoch seconds;
// the wire type is numeric, so float64 accepts both the server's integers
// and fractional values written by older clients.
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password,omitempty"`
	Online   bool     `json:"online"`
	Channels []string `json:"channels"`
	Created  float64  `json:"created"`
	Updated  float64  `json:"updated"`
}

// DecodeUser deserializes a stored or received user record.
func DecodeUser(data []byte) (*User, error) {
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// EncodeUser serializes a user record for local persistence.
func EncodeUser(u *User) ([]byte, error) {
	return json.Marshal(u)
}
