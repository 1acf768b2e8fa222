package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	ts := newTestServer(5 << 20)

	w := ts.postJSON("/auth/signup", gin.H{"email": "alice@example.com", "password": "secret1"}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var out struct {
		Message string `json:"message"`
		UserID  string `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "User created successfully", out.Message)
	assert.NotEmpty(t, out.UserID)
}

func TestSignupDuplicate(t *testing.T) {
	ts := newTestServer(5 << 20)

	w := ts.postJSON("/auth/signup", gin.H{"email": "alice@example.com", "password": "secret1"}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.postJSON("/auth/signup", gin.H{"email": "alice@example.com", "password": "another"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", errorBody(t, w))
}

func TestSignupValidation(t *testing.T) {
	ts := newTestServer(5 << 20)

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing email", gin.H{"password": "secret1"}},
		{"missing password", gin.H{"email": "alice@example.com"}},
		{"invalid email", gin.H{"email": "not-an-email", "password": "secret1"}},
		{"empty body", gin.H{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := ts.postJSON("/auth/signup", tc.body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Email and password are required", errorBody(t, w))
		})
	}
}

func TestLogin(t *testing.T) {
	ts := newTestServer(5 << 20)
	_, userID := ts.signupAndLogin(t, "alice@example.com", "secret1")

	w := ts.postJSON("/auth/login", gin.H{"email": "alice@example.com", "password": "secret1"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "Login successful", out.Message)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, userID, out.User.ID)
	assert.Equal(t, "alice@example.com", out.User.Email)

	claims, err := ts.jwt.Parse(out.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestLoginDoesNotLeakPasswordHash(t *testing.T) {
	ts := newTestServer(5 << 20)
	ts.signupAndLogin(t, "alice@example.com", "secret1")

	w := ts.postJSON("/auth/login", gin.H{"email": "alice@example.com", "password": "secret1"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestLoginInvalidCredentials(t *testing.T) {
	ts := newTestServer(5 << 20)
	ts.signupAndLogin(t, "alice@example.com", "secret1")

	// Wrong password and unknown email must return identical responses.
	wrongPass := ts.postJSON("/auth/login", gin.H{"email": "alice@example.com", "password": "nope"}, "")
	unknown := ts.postJSON("/auth/login", gin.H{"email": "nobody@example.com", "password": "secret1"}, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrongPass.Body.String(), unknown.Body.String())
	assert.Equal(t, "Invalid credentials", errorBody(t, wrongPass))
}

func TestLogout(t *testing.T) {
	ts := newTestServer(5 << 20)

	w := ts.postJSON("/auth/logout", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logout successful", messageBody(t, w))
}

func TestUnknownEndpoint(t *testing.T) {
	ts := newTestServer(5 << 20)

	req := httptest.NewRequest(http.MethodGet, "/does/not/exist", nil)
	w := ts.do(req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Endpoint not found", errorBody(t, w))
}
