package handlers

import (
	"net/http"
	"testing"

	"github.com/kalyan0128/Humanlike-awarebot/internal/models"
	"github.com/stretchr/testify/assert"
)

func signupBody(username, email string) SignupInput {
	return SignupInput{
		Username:  username,
		Email:     email,
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	}
}

func TestSignup_CreatesUserWithToken(t *testing.T) {
	h := newTestHandler(t)

	c, w := jsonContext(t, "POST", "/api/auth/signup", signupBody("alice", "alice@example.com"))
	h.Signup(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, models.LevelBeginner, resp.User.Level)
	assert.Equal(t, 0, resp.User.XPPoints)
	assert.NotContains(t, w.Body.String(), "password123")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	h := newTestHandler(t)

	c, w := jsonContext(t, "POST", "/api/auth/signup", signupBody("alice", "alice@example.com"))
	h.Signup(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	c, w = jsonContext(t, "POST", "/api/auth/signup", signupBody("alice2", "alice@example.com"))
	h.Signup(c)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Email already in use")

	var count int64
	h.Store().DB().Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSignup_DuplicateUsername(t *testing.T) {
	h := newTestHandler(t)

	c, w := jsonContext(t, "POST", "/api/auth/signup", signupBody("alice", "alice@example.com"))
	h.Signup(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	c, w = jsonContext(t, "POST", "/api/auth/signup", signupBody("alice", "other@example.com"))
	h.Signup(c)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Username already taken")
}

func TestSignup_InvalidInput(t *testing.T) {
	h := newTestHandler(t)

	input := signupBody("al", "not-an-email")
	c, w := jsonContext(t, "POST", "/api/auth/signup", input)
	h.Signup(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_Success(t *testing.T) {
	h := newTestHandler(t)

	c, w := jsonContext(t, "POST", "/api/auth/signup", signupBody("bob", "bob@example.com"))
	h.Signup(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	c, w = jsonContext(t, "POST", "/api/auth/login", LoginInput{Email: "bob@example.com", Password: "password123"})
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "bob", resp.User.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	h := newTestHandler(t)

	c, w := jsonContext(t, "POST", "/api/auth/signup", signupBody("bob", "bob@example.com"))
	h.Signup(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	c, w = jsonContext(t, "POST", "/api/auth/login", LoginInput{Email: "bob@example.com", Password: "wrong-password"})
	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
	assert.NotContains(t, w.Body.String(), "token")
}

func TestLogin_UnknownEmail(t *testing.T) {
	h := newTestHandler(t)

	c, w := jsonContext(t, "POST", "/api/auth/login", LoginInput{Email: "nobody@example.com", Password: "whatever"})
	h.Login(c)

	// Same message as a bad password, so the response doesn't leak which
	// accounts exist.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestGuestLogin_ReusesAccount(t *testing.T) {
	h := newTestHandler(t)

	c, w := jsonContext(t, "POST", "/api/auth/guest", nil)
	h.GuestLogin(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = jsonContext(t, "POST", "/api/auth/guest", nil)
	h.GuestLogin(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	h.Store().DB().Model(&models.User{}).Where("email = ?", guestEmail).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetCurrentUser(t *testing.T) {
	h := newTestHandler(t)

	c, w := jsonContext(t, "POST", "/api/auth/signup", signupBody("carol", "carol@example.com"))
	h.Signup(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	user, err := h.Store().GetUserByEmail("carol@example.com")
	assert.NoError(t, err)

	c, w = jsonContext(t, "GET", "/api/user", nil)
	c.Set("userId", user.ID)
	h.GetCurrentUser(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var got models.User
	decodeBody(t, w, &got)
	assert.Equal(t, "carol", got.Username)
	assert.Empty(t, got.Password)
}
