package user

import (
	"errors"
	"fmt"
	"sync"

	"github.com/t3chE/online-bookstore-final-assessment/domain"
)

var (
	ErrUserExists = errors.New("user already exists")
	ErrEmptyValue = errors.New("value must not be empty")
)

// User is a registered buyer. The order history is append-only; profile
// fields change only through the validating setters.
//
// Passwords are stored as given. Hardening authentication is out of
// scope for this module.
type User struct {
	mu       sync.Mutex
	email    string
	password string
	name     string
	address  string
	history  []*domain.Order
}

func (u *User) Email() string { return u.email }

func (u *User) Name() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.name
}

func (u *User) Address() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.address
}

func (u *User) SetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name", ErrEmptyValue)
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.name = name
	return nil
}

func (u *User) SetAddress(address string) error {
	if address == "" {
		return fmt.Errorf("%w: address", ErrEmptyValue)
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.address = address
	return nil
}

// AppendOrder adds a committed order to the user's history.
func (u *User) AppendOrder(o *domain.Order) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.history = append(u.history, o)
}

// OrderHistory returns the user's orders, oldest first. The slice is a
// copy; the history itself stays append-only.
func (u *User) OrderHistory() []*domain.Order {
	u.mu.Lock()
	defer u.mu.Unlock()

	history := make([]*domain.Order, len(u.history))
	copy(history, u.history)
	return history
}

// Directory is the process-wide user registry, keyed by email.
type Directory struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewDirectory() *Directory {
	return &Directory{
		users: make(map[string]*User),
	}
}

// Register creates a new user. Registering an email twice fails with
// ErrUserExists.
func (d *Directory) Register(email, password, name, address string) (*User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email", ErrEmptyValue)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.users[email]; exists {
		return nil, fmt.Errorf("%w: %q", ErrUserExists, email)
	}

	u := &User{
		email:    email,
		password: password,
		name:     name,
		address:  address,
	}
	d.users[email] = u
	return u, nil
}

// Lookup finds a user by email. A miss means the caller proceeds as a
// guest.
func (d *Directory) Lookup(email string) (*User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, exists := d.users[email]
	return u, exists
}

// Authenticate reports whether the email and password match a
// registered user.
func (d *Directory) Authenticate(email, password string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, exists := d.users[email]
	return exists && u.password == password
}
