// Package store holds the in-memory record state for users and
// conversations. State lives for the process lifetime only; every
// operation runs under a single mutex so the global conversation map and
// the embedded per-user lists never diverge.
package store

import (
	"sort"
	"sync"
	"sync/atomic"

	"convo-be/internal/models"
)

// sequence issues strictly increasing ids. Each entity kind gets its own
// instance; the counters never reset.
type sequence struct {
	n atomic.Int64
}

func (s *sequence) next() int {
	return int(s.n.Add(1))
}

type Store struct {
	mu            sync.Mutex
	users         map[int]*models.User
	conversations map[int]models.Conversation

	userIDs sequence
	convIDs sequence
}

// New builds a store seeded with the single bootstrap user. The seed draws
// its id from the same sequence as later creates, so ids never collide.
func New() *Store {
	s := &Store{
		users:         map[int]*models.User{},
		conversations: map[int]models.Conversation{},
	}

	seed := &models.User{
		ID:            s.userIDs.next(),
		Username:      "jdoe",
		Email:         "jdoe@example.com",
		Conversations: []models.Conversation{},
	}
	s.users[seed.ID] = seed
	return s
}

// CreateUser rejects duplicate emails before touching any state.
func (s *Store) CreateUser(username, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return models.User{}, &ConflictError{Field: "email"}
		}
	}

	u := &models.User{
		ID:            s.userIDs.next(),
		Username:      username,
		Email:         email,
		Conversations: []models.Conversation{},
	}
	s.users[u.ID] = u
	return copyUser(u), nil
}

func (s *Store) GetUser(id int) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, &NotFoundError{Entity: "user", ID: id}
	}
	return copyUser(u), nil
}

// ListUsers returns users in ascending id order.
func (s *Store) ListUsers() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, copyUser(u))
	}
	sortByID(out, func(u models.User) int { return u.ID })
	return out
}

// UpdateUser replaces username and email in place. The id and the embedded
// conversation list are preserved. Email uniqueness is not re-checked on
// update, matching create-time-only enforcement.
func (s *Store) UpdateUser(id int, username, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, &NotFoundError{Entity: "user", ID: id}
	}
	u.Username = username
	u.Email = email
	return copyUser(u), nil
}

// DeleteUser removes the user and every conversation it owns from the
// global map.
func (s *Store) DeleteUser(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return &NotFoundError{Entity: "user", ID: id}
	}
	for _, conv := range u.Conversations {
		delete(s.conversations, conv.ID)
	}
	delete(s.users, id)
	return nil
}

// CreateConversation attaches a new conversation to the given user,
// storing it in the global map and appending it to the owner's list in
// insertion order.
func (s *Store) CreateConversation(userID int, name, messages string) (models.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return models.Conversation{}, &NotFoundError{Entity: "user", ID: userID}
	}

	conv := models.Conversation{
		ID:       s.convIDs.next(),
		Name:     name,
		Messages: messages,
	}
	s.conversations[conv.ID] = conv
	u.Conversations = append(u.Conversations, conv)
	return conv, nil
}

func (s *Store) GetConversation(id int) (models.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return models.Conversation{}, &NotFoundError{Entity: "conversation", ID: id}
	}
	return conv, nil
}

// ListConversations returns every conversation in ascending id order.
func (s *Store) ListConversations() []models.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Conversation, 0, len(s.conversations))
	for _, conv := range s.conversations {
		out = append(out, conv)
	}
	sortByID(out, func(c models.Conversation) int { return c.ID })
	return out
}

// ListUserConversations returns the given user's conversations in the
// order they were created.
func (s *Store) ListUserConversations(userID int) ([]models.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, &NotFoundError{Entity: "user", ID: userID}
	}
	out := make([]models.Conversation, len(u.Conversations))
	copy(out, u.Conversations)
	return out, nil
}

// UpdateConversation replaces name and messages in the global map and in
// the owner's embedded copy, keeping the two value-identical.
func (s *Store) UpdateConversation(id int, name, messages string) (models.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[id]; !ok {
		return models.Conversation{}, &NotFoundError{Entity: "conversation", ID: id}
	}

	conv := models.Conversation{ID: id, Name: name, Messages: messages}
	s.conversations[id] = conv

	for _, u := range s.users {
		for i := range u.Conversations {
			if u.Conversations[i].ID == id {
				u.Conversations[i] = conv
				break
			}
		}
	}
	return conv, nil
}

// DeleteConversation removes the conversation from the global map and
// filters it out of every user's list. Ownership is singular, so at most
// one list should match; filtering all of them is deliberate.
func (s *Store) DeleteConversation(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[id]; !ok {
		return &NotFoundError{Entity: "conversation", ID: id}
	}
	delete(s.conversations, id)

	for _, u := range s.users {
		kept := u.Conversations[:0]
		for _, conv := range u.Conversations {
			if conv.ID != id {
				kept = append(kept, conv)
			}
		}
		u.Conversations = kept
	}
	return nil
}

// copyUser clones the conversation slice so callers never alias store
// state.
func copyUser(u *models.User) models.User {
	out := *u
	out.Conversations = make([]models.Conversation, len(u.Conversations))
	copy(out.Conversations, u.Conversations)
	return out
}

func sortByID[T any](items []T, id func(T) int) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}
