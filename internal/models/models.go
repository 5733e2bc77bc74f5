package models

// Conversation is owned by exactly one user. The same value lives in the
// store's global map and in the owner's embedded list; the store keeps the
// two copies identical on every mutation.
type Conversation struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Messages string `json:"messages"`
}

// User is the read representation. Passwords are accepted on create/update
// requests but never stored, so the struct has no password field at all.
type User struct {
	ID            int            `json:"id"`
	Username      string         `json:"username"`
	Email         string         `json:"email"`
	Conversations []Conversation `json:"conversations"`
}
