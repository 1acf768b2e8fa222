package galleryclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"
)

// Client is a thin API client for the gallery service. It keeps the bearer
// token and the photo list cache in an injected Session and attaches the
// token to every authenticated request.
type Client struct {
	baseURL string
	httpc   *http.Client
	session *Session
}

func New(baseURL string, session *Session) *Client {
	if session == nil {
		session = NewSession()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
		session: session,
	}
}

// Session exposes the client's session state.
func (c *Client) Session() *Session { return c.session }

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup creates an account and returns the new user id. It does not log in.
func (c *Client) Signup(ctx context.Context, email, password string) (string, error) {
	var out struct {
		UserID string `json:"userId"`
	}
	err := c.doJSON(ctx, http.MethodPost, "/auth/signup", credentials{Email: email, Password: password}, http.StatusCreated, &out)
	if err != nil {
		return "", err
	}
	return out.UserID, nil
}

// Login authenticates and stores the token + user in the session.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	var out struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", credentials{Email: email, Password: password}, http.StatusOK, &out)
	if err != nil {
		return User{}, err
	}
	c.session.SetAuth(out.Token, out.User)
	return out.User, nil
}

// Logout resets the session. The server call is best-effort: the token is
// stateless, so discarding it locally is what actually logs the user out,
// and a failed notification is deliberately not surfaced.
func (c *Client) Logout(ctx context.Context) {
	_ = c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, http.StatusOK, nil)
	c.session.Reset()
}

// Upload sends a multipart upload and prepends the created photo to the
// session cache.
func (c *Client) Upload(ctx context.Context, title, filename, contentType string, r io.Reader) (Photo, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("title", title); err != nil {
		return Photo{}, err
	}
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return Photo{}, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return Photo{}, err
	}
	if err := mw.Close(); err != nil {
		return Photo{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/photos/upload", &body)
	if err != nil {
		return Photo{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(req)

	var out struct {
		Photo Photo `json:"photo"`
	}
	if err := c.send(req, http.StatusCreated, &out); err != nil {
		return Photo{}, err
	}
	c.session.AddPhoto(out.Photo)
	return out.Photo, nil
}

// Photos fetches the full newest-first list and replaces the session cache.
func (c *Client) Photos(ctx context.Context) ([]Photo, error) {
	var out []Photo
	if err := c.doJSON(ctx, http.MethodGet, "/photos", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	c.session.SetPhotos(out)
	return out, nil
}

// Delete removes a photo and drops it from the session cache.
func (c *Client) Delete(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/photos/"+id, nil, http.StatusOK, nil); err != nil {
		return err
	}
	c.session.RemovePhoto(id)
	return nil
}

// Search queries photo titles.
func (c *Client) Search(ctx context.Context, q string) ([]Photo, error) {
	var out []Photo
	path := "/photos/search?q=" + url.QueryEscape(q)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in any, wantStatus int, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)
	return c.send(req, wantStatus, out)
}

func (c *Client) authorize(req *http.Request) {
	if tok := c.session.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
}

func (c *Client) send(req *http.Request, wantStatus int, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != wantStatus {
		var failure struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		msg := failure.Error
		if msg == "" {
			msg = failure.Message
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
