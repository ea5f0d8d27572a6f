// Package client talks to form-api over HTTP and the session WebSocket.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/linskybing/form-console/internal/domain/form"
	"github.com/linskybing/form-console/pkg/response"
)

// ErrNoToken is returned by calls that need a session when none is held.
var ErrNoToken = errors.New("not signed in")

// APIError is a non-2xx answer from the backend. Error returns the message
// the backend sent so it can be shown as is.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// Identity is the account behind the current session.
type Identity struct {
	AccountID string
	Email     string
	IsAdmin   bool
}

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		token:   token,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Register(ctx context.Context, email, password string) (string, error) {
	var res response.MessageResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", credentials{Email: email, Password: password}, &res)
	return res.Message, err
}

func (c *Client) Confirm(ctx context.Context, token string) (string, error) {
	var res response.MessageResponse
	err := c.do(ctx, http.MethodGet, "/auth/confirm?token="+url.QueryEscape(token), nil, &res)
	return res.Message, err
}

// Login signs in and keeps the returned token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (Identity, error) {
	var res response.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", credentials{Email: email, Password: password}, &res); err != nil {
		return Identity{}, err
	}
	c.SetToken(res.Token)
	return Identity{AccountID: res.AccountID, Email: res.Email, IsAdmin: res.IsAdmin}, nil
}

// Logout revokes the held token on the backend and forgets it locally. The
// local token is dropped even when the backend call fails.
func (c *Client) Logout(ctx context.Context) error {
	if c.Token() == "" {
		return nil
	}
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	c.SetToken("")
	return err
}

// Status queries the session the held token belongs to.
func (c *Client) Status(ctx context.Context) (Identity, error) {
	if c.Token() == "" {
		return Identity{}, ErrNoToken
	}
	var res response.StatusResponse
	if err := c.do(ctx, http.MethodGet, "/auth/status", nil, &res); err != nil {
		return Identity{}, err
	}
	return Identity{AccountID: res.AccountID, Email: res.Email, IsAdmin: res.IsAdmin}, nil
}

func (c *Client) ListForms(ctx context.Context) ([]form.Form, error) {
	var forms []form.Form
	err := c.do(ctx, http.MethodGet, "/forms", nil, &forms)
	return forms, err
}

func (c *Client) GetForm(ctx context.Context, id string) (form.Form, error) {
	var f form.Form
	err := c.do(ctx, http.MethodGet, "/forms/"+url.PathEscape(id), nil, &f)
	return f, err
}

func (c *Client) CreateForm(ctx context.Context, input form.CreateFormDTO) (form.Form, error) {
	var f form.Form
	err := c.do(ctx, http.MethodPost, "/forms", input, &f)
	return f, err
}

func (c *Client) UpdateForm(ctx context.Context, id string, input form.UpdateFormDTO) (form.Form, error) {
	var f form.Form
	err := c.do(ctx, http.MethodPut, "/forms/"+url.PathEscape(id), input, &f)
	return f, err
}

func (c *Client) DeleteForm(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/forms/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListQuestions(ctx context.Context, formID string) ([]form.Question, error) {
	var questions []form.Question
	err := c.do(ctx, http.MethodGet, "/forms/"+url.PathEscape(formID)+"/questions", nil, &questions)
	return questions, err
}

func (c *Client) AddQuestion(ctx context.Context, formID string, input form.CreateQuestionDTO) (form.Question, error) {
	var q form.Question
	err := c.do(ctx, http.MethodPost, "/forms/"+url.PathEscape(formID)+"/questions", input, &q)
	return q, err
}

func (c *Client) UpdateQuestion(ctx context.Context, id string, input form.UpdateQuestionDTO) (form.Question, error) {
	var q form.Question
	err := c.do(ctx, http.MethodPut, "/questions/"+url.PathEscape(id), input, &q)
	return q, err
}

func (c *Client) DeleteQuestion(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/questions/"+url.PathEscape(id), nil, nil)
}

func (c *Client) DashboardStats(ctx context.Context) (form.DashboardStats, error) {
	var stats form.DashboardStats
	err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, &stats)
	return stats, err
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var body response.ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: body.Error}
	}

	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
