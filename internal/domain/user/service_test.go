package user

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"healthsync/internal/storage"
)

func newTestService(t *testing.T) (*Service, storage.Store) {
	t.Helper()

	store := storage.NewMemoryStore()
	repo := NewStoreRepository(store)
	service := NewService(repo, NewInputValidator(), slog.Default())

	return service, store
}

func TestService_Register(t *testing.T) {
	// Arrange
	service, _ := newTestService(t)

	// Act
	u, err := service.Register("Jane Doe", "secret")

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Jane Doe", u.Name)
	assert.Regexp(t, regexp.MustCompile(`^janedoe\d{4}$`), u.Username)
	assert.NotEqual(t, "secret", u.PasswordHash)
	assert.NotEmpty(t, u.PasswordHash)
}

func TestService_Register_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		password string
	}{
		{name: "empty name", userName: "", password: "secret"},
		{name: "blank name", userName: "   ", password: "secret"},
		{name: "short password", userName: "Jane", password: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService(t)

			_, err := service.Register(tt.userName, tt.password)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_LoginLogout(t *testing.T) {
	// Arrange
	service, _ := newTestService(t)
	registered, err := service.Register("Jane Doe", "secret")
	require.NoError(t, err)

	// Act
	loggedIn, err := service.Login(registered.Username, "secret")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, registered.ID, loggedIn.ID)

	current, err := service.Current()
	require.NoError(t, err)
	assert.Equal(t, registered.Username, current.Username)

	require.NoError(t, service.Logout())

	_, err = service.Current()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestService_Login_InvalidCredentials(t *testing.T) {
	service, _ := newTestService(t)
	registered, err := service.Register("Jane Doe", "secret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: registered.Username, password: "wrong"},
		{name: "unknown username", username: "nobody1234", password: "secret"},
		{name: "empty username", username: "", password: "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(tt.username, tt.password)

			assert.ErrorIs(t, err, ErrInvalidAuth)
		})
	}
}

func TestService_Current_NoSession(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Current()

	assert.ErrorIs(t, err, ErrNoSession)
}

func TestStoreRepository_CorruptedListIsEmpty(t *testing.T) {
	// Arrange
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(storage.Key(storage.FieldUsers), "{not json"))
	repo := NewStoreRepository(store)

	// Act
	users, err := repo.List()

	// Assert
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestGenerateUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		pattern string
	}{
		{name: "plain name", input: "Jane Doe", pattern: `^janedoe\d{4}$`},
		{name: "punctuation stripped", input: "O'Brien, Jr.", pattern: `^obrienjr\d{4}$`},
		{name: "digits kept", input: "Agent 99", pattern: `^agent99\d{4}$`},
		{name: "no usable characters", input: "!!!", pattern: `^\d{4}$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			username := generateUsername(tt.input)

			assert.Regexp(t, regexp.MustCompile(tt.pattern), username)
		})
	}
}

func TestInputValidator(t *testing.T) {
	v := NewInputValidator()

	assert.NoError(t, v.ValidateRegister("Jane", "secret"))
	assert.Error(t, v.ValidateRegister("", "secret"))
	assert.Error(t, v.ValidateRegister("Jane", "abc"))
	assert.NoError(t, v.ValidateLogin("jane1234"))
	assert.Error(t, v.ValidateLogin("  "))
}
