package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/cloud-gallery/internal/domain/entity"
)

func TestUploadAndList(t *testing.T) {
	ts := newTestServer(5 << 20)
	token, userID := ts.signupAndLogin(t, "alice@example.com", "secret1")

	w := ts.do(uploadRequest(t, token, "Sunset", "sunset.jpg", "image/jpeg", []byte("jpegdata")))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var out struct {
		Message string       `json:"message"`
		Photo   entity.Photo `json:"photo"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "File uploaded successfully", out.Message)
	assert.NotEmpty(t, out.Photo.ID)
	assert.Equal(t, "Sunset", out.Photo.Title)
	assert.Equal(t, userID, out.Photo.OwnerID)
	assert.True(t, strings.HasPrefix(out.Photo.StorageKey, userID+"/"))
	assert.NotEmpty(t, out.Photo.URL)

	req := httptest.NewRequest(http.MethodGet, "/photos", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = ts.do(req)
	require.Equal(t, http.StatusOK, w.Code)

	var photos []entity.Photo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &photos))
	require.Len(t, photos, 1)
	assert.Equal(t, out.Photo.ID, photos[0].ID)
}

func TestListNewestFirstAcrossUploads(t *testing.T) {
	ts := newTestServer(5 << 20)
	token, _ := ts.signupAndLogin(t, "alice@example.com", "secret1")

	for _, title := range []string{"First", "Second", "Third"} {
		w := ts.do(uploadRequest(t, token, title, "a.jpg", "image/jpeg", []byte("x")))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/photos", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := ts.do(req)
	require.Equal(t, http.StatusOK, w.Code)

	var photos []entity.Photo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &photos))
	require.Len(t, photos, 3)
	assert.Equal(t, "Third", photos[0].Title)
	assert.Equal(t, "First", photos[2].Title)
}

func TestUploadRequiresToken(t *testing.T) {
	ts := newTestServer(5 << 20)

	w := ts.do(uploadRequest(t, "", "Sunset", "sunset.jpg", "image/jpeg", []byte("jpegdata")))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No token provided", errorBody(t, w))
}

func TestUploadNoFile(t *testing.T) {
	ts := newTestServer(5 << 20)
	token, _ := ts.signupAndLogin(t, "alice@example.com", "secret1")

	var body bytes.Buffer
	mw := newTitleOnlyForm(t, &body, "Sunset")
	req := httptest.NewRequest(http.MethodPost, "/photos/upload", &body)
	req.Header.Set("Content-Type", mw)
	req.Header.Set("Authorization", "Bearer "+token)

	w := ts.do(req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No file uploaded", errorBody(t, w))
}

func TestUploadRejectsNonImage(t *testing.T) {
	ts := newTestServer(5 << 20)
	token, _ := ts.signupAndLogin(t, "alice@example.com", "secret1")

	w := ts.do(uploadRequest(t, token, "Notes", "notes.txt", "text/plain", []byte("hello")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Only images are allowed", errorBody(t, w))
}

func TestUploadRejectsOversizedBody(t *testing.T) {
	ts := newTestServer(1024)
	token, _ := ts.signupAndLogin(t, "alice@example.com", "secret1")

	w := ts.do(uploadRequest(t, token, "Big", "big.jpg", "image/jpeg", bytes.Repeat([]byte("a"), 8192)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "File too large", errorBody(t, w))
}

func TestUploadRejectsLongTitle(t *testing.T) {
	ts := newTestServer(5 << 20)
	token, _ := ts.signupAndLogin(t, "alice@example.com", "secret1")

	long := strings.Repeat("x", 101)
	w := ts.do(uploadRequest(t, token, long, "a.jpg", "image/jpeg", []byte("x")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Title must be at most 100 characters", errorBody(t, w))
}

func TestUploadBlankTitleDefaults(t *testing.T) {
	ts := newTestServer(5 << 20)
	token, _ := ts.signupAndLogin(t, "alice@example.com", "secret1")

	w := ts.do(uploadRequest(t, token, "", "a.jpg", "image/jpeg", []byte("x")))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var out struct {
		Photo entity.Photo `json:"photo"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "Untitled", out.Photo.Title)
}

func TestDeletePhoto(t *testing.T) {
	ts := newTestServer(5 << 20)
	token, _ := ts.signupAndLogin(t, "alice@example.com", "secret1")

	w := ts.do(uploadRequest(t, token, "Sunset", "a.jpg", "image/jpeg", []byte("x")))
	require.Equal(t, http.StatusCreated, w.Code)
	var out struct {
		Photo entity.Photo `json:"photo"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	req := httptest.NewRequest(http.MethodDelete, "/photos/"+out.Photo.ID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = ts.do(req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Photo deleted successfully", messageBody(t, w))

	req = httptest.NewRequest(http.MethodGet, "/photos", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = ts.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestDeleteUnknownPhoto(t *testing.T) {
	ts := newTestServer(5 << 20)
	token, _ := ts.signupAndLogin(t, "alice@example.com", "secret1")

	req := httptest.NewRequest(http.MethodDelete, "/photos/does-not-exist", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := ts.do(req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Photo not found", errorBody(t, w))
}

func TestListRequiresToken(t *testing.T) {
	ts := newTestServer(5 << 20)

	w := ts.do(httptest.NewRequest(http.MethodGet, "/photos", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No token provided", errorBody(t, w))
}

func TestSearchRequiresQuery(t *testing.T) {
	ts := newTestServer(5 << 20)
	token, _ := ts.signupAndLogin(t, "alice@example.com", "secret1")

	req := httptest.NewRequest(http.MethodGet, "/photos/search", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := ts.do(req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Search query is required", errorBody(t, w))
}
