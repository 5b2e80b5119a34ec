package registry

import (
	"slices"
	"strconv"
	"strings"

	"github.com/samandartukhtayev/user-registry/models"
)

// UserRegistry holds user records keyed by their id.
// It is not safe for concurrent use.
type UserRegistry struct {
	users map[uint64]models.User
}

// New creates an empty registry
func New() *UserRegistry {
	return &UserRegistry{
		users: make(map[uint64]models.User),
	}
}

// Insert stores the user under its id
// An existing user with the same id is replaced
func (r *UserRegistry) Insert(user models.User) {
	r.users[user.ID()] = user
}

// Get returns the user stored under id, if any
func (r *UserRegistry) Get(id uint64) (models.User, bool) {
	user, ok := r.users[id]
	return user, ok
}

// Len returns the number of stored users
func (r *UserRegistry) Len() int {
	return len(r.users)
}

// IDs returns all stored ids in ascending order
func (r *UserRegistry) IDs() []uint64 {
	ids := make([]uint64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Users returns all stored users in ascending id order
func (r *UserRegistry) Users() []models.User {
	ids := r.IDs()
	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, r.users[id])
	}
	return users
}

// Render returns a debug representation of every stored user in ascending id order:
//
//	{1: {id: 1, name: "Alice", email: Some("alice@example.com")}, 2: {id: 2, name: "Bob", email: None}}
func (r *UserRegistry) Render() string {
	var b strings.Builder
	b.WriteString("{")
	for i, user := range r.Users() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatUint(user.ID(), 10))
		b.WriteString(": ")
		b.WriteString(user.String())
	}
	b.WriteString("}")
	return b.String()
}
