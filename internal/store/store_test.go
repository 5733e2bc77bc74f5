package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"convo-be/internal/models"
)

func TestNew_SeedsBootstrapUser(t *testing.T) {
	s := New()

	users := s.ListUsers()
	require.Len(t, users, 1)
	require.Equal(t, 1, users[0].ID)
	require.Equal(t, "jdoe", users[0].Username)
	require.Equal(t, "jdoe@example.com", users[0].Email)
	require.Empty(t, users[0].Conversations)
}

func TestCreateUser_AssignsIncreasingIDs(t *testing.T) {
	s := New()

	seen := map[int]bool{1: true} // seed
	prev := 1
	for i := 0; i < 5; i++ {
		u, err := s.CreateUser("alice", fmt.Sprintf("alice%d@example.com", i))
		require.NoError(t, err)
		require.Greater(t, u.ID, prev)
		require.False(t, seen[u.ID])
		seen[u.ID] = true
		prev = u.ID
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := New()

	_, err := s.CreateUser("impostor", "jdoe@example.com")
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "email", conflict.Field)

	// the failed create must not have touched the store
	require.Len(t, s.ListUsers(), 1)
}

func TestUpdateUser_PreservesIDAndConversations(t *testing.T) {
	s := New()
	conv, err := s.CreateConversation(1, "plans", "let's meet")
	require.NoError(t, err)

	u, err := s.UpdateUser(1, "johnny", "johnny@example.com")
	require.NoError(t, err)
	require.Equal(t, 1, u.ID)
	require.Equal(t, "johnny", u.Username)
	require.Equal(t, "johnny@example.com", u.Email)
	require.Equal(t, []models.Conversation{conv}, u.Conversations)
}

func TestUpdateUser_DoesNotRecheckEmailUniqueness(t *testing.T) {
	s := New()
	u, err := s.CreateUser("alice", "alice@example.com")
	require.NoError(t, err)

	// uniqueness is enforced at creation only; updating onto an existing
	// email succeeds
	updated, err := s.UpdateUser(u.ID, "alice", "jdoe@example.com")
	require.NoError(t, err)
	require.Equal(t, "jdoe@example.com", updated.Email)
}

func TestDeleteUser_CascadesToConversations(t *testing.T) {
	s := New()
	c1, err := s.CreateConversation(1, "a", "m1")
	require.NoError(t, err)
	c2, err := s.CreateConversation(1, "b", "m2")
	require.NoError(t, err)

	other, err := s.CreateUser("bob", "bob@example.com")
	require.NoError(t, err)
	kept, err := s.CreateConversation(other.ID, "keep", "m3")
	require.NoError(t, err)

	require.NoError(t, s.DeleteUser(1))

	for _, id := range []int{c1.ID, c2.ID} {
		_, err := s.GetConversation(id)
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
	}
	require.Equal(t, []models.Conversation{kept}, s.ListConversations())
}

func TestCreateConversation_AppearsInBothViews(t *testing.T) {
	s := New()

	first, err := s.CreateConversation(1, "one", "m1")
	require.NoError(t, err)
	require.Equal(t, 1, first.ID)
	second, err := s.CreateConversation(1, "two", "m2")
	require.NoError(t, err)

	global := s.ListConversations()
	require.Equal(t, []models.Conversation{first, second}, global)

	u, err := s.GetUser(1)
	require.NoError(t, err)
	require.Equal(t, global, u.Conversations)
}

func TestCreateConversation_UnknownUser(t *testing.T) {
	s := New()

	_, err := s.CreateConversation(99, "x", "y")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "user", nf.Entity)
	require.Equal(t, 99, nf.ID)
	require.Empty(t, s.ListConversations())
}

func TestUpdateConversation_PropagatesToOwner(t *testing.T) {
	s := New()
	target, err := s.CreateConversation(1, "old", "old msg")
	require.NoError(t, err)
	untouched, err := s.CreateConversation(1, "other", "other msg")
	require.NoError(t, err)

	updated, err := s.UpdateConversation(target.ID, "new", "new msg")
	require.NoError(t, err)
	require.Equal(t, target.ID, updated.ID)

	got, err := s.GetConversation(target.ID)
	require.NoError(t, err)
	require.Equal(t, updated, got)

	u, err := s.GetUser(1)
	require.NoError(t, err)
	require.Equal(t, []models.Conversation{updated, untouched}, u.Conversations)
}

func TestDeleteConversation(t *testing.T) {
	s := New()
	conv, err := s.CreateConversation(1, "gone", "m")
	require.NoError(t, err)

	require.NoError(t, s.DeleteConversation(conv.ID))

	u, err := s.GetUser(1)
	require.NoError(t, err)
	require.Empty(t, u.Conversations)
	require.Empty(t, s.ListConversations())

	// repeated delete keeps failing the same way
	var nf *NotFoundError
	require.ErrorAs(t, s.DeleteConversation(conv.ID), &nf)
	require.Equal(t, "conversation", nf.Entity)
}

func TestNotFound_Deterministic(t *testing.T) {
	s := New()
	_, err := s.CreateConversation(1, "noise", "noise")
	require.NoError(t, err)

	cases := []struct {
		name string
		call func() error
	}{
		{"get user", func() error { _, err := s.GetUser(42); return err }},
		{"update user", func() error { _, err := s.UpdateUser(42, "x", "x@example.com"); return err }},
		{"delete user", func() error { return s.DeleteUser(42) }},
		{"get conversation", func() error { _, err := s.GetConversation(42); return err }},
		{"update conversation", func() error { _, err := s.UpdateConversation(42, "x", "y"); return err }},
		{"delete conversation", func() error { return s.DeleteConversation(42) }},
		{"list user conversations", func() error { _, err := s.ListUserConversations(42); return err }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var nf *NotFoundError
			require.ErrorAs(t, tc.call(), &nf)
			require.Equal(t, 42, nf.ID)
		})
	}
}

func TestReturnedValuesDoNotAliasStoreState(t *testing.T) {
	s := New()
	_, err := s.CreateConversation(1, "original", "m")
	require.NoError(t, err)

	u, err := s.GetUser(1)
	require.NoError(t, err)
	u.Conversations[0].Name = "mutated"

	fresh, err := s.GetUser(1)
	require.NoError(t, err)
	require.Equal(t, "original", fresh.Conversations[0].Name)
}

func TestErrorMessages(t *testing.T) {
	_, err := New().GetUser(7)
	require.EqualError(t, err, "user 7 not found")

	_, err = New().CreateUser("x", "jdoe@example.com")
	require.EqualError(t, err, "duplicate email")
}
