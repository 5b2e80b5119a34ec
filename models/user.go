package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// User represents a single user record.
// Fields are unexported so a User cannot change once it has been built;
// use NewUser and WithEmail to produce values.
type User struct {
	id    uint64
	name  string
	email *string // nil means no email
}

// userWire is the serialized shape of a User
type userWire struct {
	ID    uint64  `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Email *string `json:"email" yaml:"email"`
}

// NewUser creates a user with the given id and name and no email.
// Neither the id nor the name is validated.
func NewUser(id uint64, name string) User {
	return User{id: id, name: name}
}

// WithEmail returns a copy of u with the email set.
// The receiver is left untouched; callers must use the returned value.
func (u User) WithEmail(email string) User {
	e := email
	u.email = &e
	return u
}

// ID returns the user's identifier
func (u User) ID() uint64 { return u.id }

// Name returns the user's name
func (u User) Name() string { return u.name }

// Email returns the email and whether one is present
func (u User) Email() (string, bool) {
	if u.email == nil {
		return "", false
	}
	return *u.email, true
}

// HasEmail reports whether an email is present
func (u User) HasEmail() bool { return u.email != nil }

// Equal reports whether two users carry the same fields, including email presence
func (u User) Equal(other User) bool {
	if u.id != other.id || u.name != other.name {
		return false
	}
	e1, ok1 := u.Email()
	e2, ok2 := other.Email()
	return ok1 == ok2 && e1 == e2
}

// String returns the debug form, e.g.
//
//	{id: 1, name: "Alice", email: Some("alice@example.com")}
func (u User) String() string {
	var b strings.Builder
	b.WriteString("{id: ")
	b.WriteString(strconv.FormatUint(u.id, 10))
	b.WriteString(", name: ")
	b.WriteString(strconv.Quote(u.name))
	b.WriteString(", email: ")
	if e, ok := u.Email(); ok {
		fmt.Fprintf(&b, "Some(%s)", strconv.Quote(e))
	} else {
		b.WriteString("None")
	}
	b.WriteString("}")
	return b.String()
}

func (u User) wire() userWire {
	return userWire{ID: u.id, Name: u.name, Email: u.email}
}

func (w userWire) user() User {
	u := NewUser(w.ID, w.Name)
	if w.Email != nil {
		u = u.WithEmail(*w.Email)
	}
	return u
}

// MarshalJSON encodes the user as {"id":..,"name":..,"email":..}; an absent email is null
func (u User) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.wire())
}

// UnmarshalJSON decodes the shape produced by MarshalJSON
func (u *User) UnmarshalJSON(data []byte) error {
	var w userWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("failed to decode user: %w", err)
	}
	*u = w.user()
	return nil
}

// MarshalYAML encodes the user with the same field names as JSON
func (u User) MarshalYAML() (interface{}, error) {
	return u.wire(), nil
}

// UnmarshalYAML decodes the shape produced by MarshalYAML
func (u *User) UnmarshalYAML(node *yaml.Node) error {
	var w userWire
	if err := node.Decode(&w); err != nil {
		return fmt.Errorf("failed to decode user: %w", err)
	}
	*u = w.user()
	return nil
}
