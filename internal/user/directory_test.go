package user

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t3chE/online-bookstore-final-assessment/domain"
)

func registerTestUser(t *testing.T, d *Directory) *User {
	t.Helper()
	u, err := d.Register("test@newuser.com", "securepassword", "Test User", "1 Test Lane")
	require.NoError(t, err)
	return u
}

func TestDirectory_Register(t *testing.T) {
	d := NewDirectory()
	u := registerTestUser(t, d)

	assert.Equal(t, "test@newuser.com", u.Email())
	assert.Equal(t, "Test User", u.Name())
	assert.Equal(t, "1 Test Lane", u.Address())
}

func TestDirectory_Register_DuplicateEmail(t *testing.T) {
	d := NewDirectory()
	registerTestUser(t, d)

	_, err := d.Register("test@newuser.com", "other", "Other", "2 Lane")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestDirectory_Register_EmptyEmail(t *testing.T) {
	d := NewDirectory()

	_, err := d.Register("", "pw", "Name", "Addr")
	assert.ErrorIs(t, err, ErrEmptyValue)
}

func TestDirectory_Lookup(t *testing.T) {
	d := NewDirectory()
	registerTestUser(t, d)

	u, exists := d.Lookup("test@newuser.com")
	require.True(t, exists)
	assert.Equal(t, "Test User", u.Name())

	_, exists = d.Lookup("stranger@example.com")
	assert.False(t, exists)
}

func TestDirectory_Authenticate(t *testing.T) {
	d := NewDirectory()
	registerTestUser(t, d)

	assert.True(t, d.Authenticate("test@newuser.com", "securepassword"))
	assert.False(t, d.Authenticate("test@newuser.com", "wrong"))
	assert.False(t, d.Authenticate("stranger@example.com", "securepassword"))
}

func TestUser_SetName(t *testing.T) {
	d := NewDirectory()
	u := registerTestUser(t, d)

	require.NoError(t, u.SetName("Updated Name"))
	assert.Equal(t, "Updated Name", u.Name())

	err := u.SetName("")
	assert.ErrorIs(t, err, ErrEmptyValue)
	assert.Equal(t, "Updated Name", u.Name())
}

func TestUser_SetAddress(t *testing.T) {
	d := NewDirectory()
	u := registerTestUser(t, d)

	require.NoError(t, u.SetAddress("2 New Street"))
	assert.Equal(t, "2 New Street", u.Address())

	err := u.SetAddress("")
	assert.ErrorIs(t, err, ErrEmptyValue)
}

func TestUser_OrderHistory_InitiallyEmpty(t *testing.T) {
	d := NewDirectory()
	u := registerTestUser(t, d)

	assert.Empty(t, u.OrderHistory())
}

func TestUser_OrderHistory_AppendOnly(t *testing.T) {
	d := NewDirectory()
	u := registerTestUser(t, d)

	first := &domain.Order{OrderID: "ORD-1", TotalAmount: decimal.RequireFromString("10.99")}
	second := &domain.Order{OrderID: "ORD-2", TotalAmount: decimal.RequireFromString("8.99")}
	u.AppendOrder(first)
	u.AppendOrder(second)

	history := u.OrderHistory()
	require.Len(t, history, 2)
	assert.Equal(t, "ORD-1", history[0].OrderID)
	assert.Equal(t, "ORD-2", history[1].OrderID)

	// The returned slice is a copy
	history[0] = second
	assert.Equal(t, "ORD-1", u.OrderHistory()[0].OrderID)
}
