// Package client provides an HTTP client for the puzzle session API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/foglight/battlesolitaire/internal/dto"
)

type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Helper for authorized requests
func (c *Client) do(method, path string, body, dest any) error {
	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, bodyReader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("API Error: %d", resp.StatusCode)
	}

	if dest != nil {
		return json.NewDecoder(resp.Body).Decode(dest)
	}

	return nil
}

// --- Auth ---

func (c *Client) Login(username string) (*dto.AuthResponse, error) {
	req := map[string]string{"username": username}
	var res dto.AuthResponse
	err := c.do(http.MethodPost, "/login", req, &res)
	if err == nil {
		c.Token = res.Token // Store token automatically
	}
	return &res, err
}

// --- Lobby ---

func (c *Client) ListSessions() ([]dto.SessionSummary, error) {
	var sessions []dto.SessionSummary
	err := c.do(http.MethodGet, "/sessions", nil, &sessions)
	return sessions, err
}

func (c *Client) HostSession() (string, error) {
	var res struct {
		SessionID string `json:"session_id"`
	}
	err := c.do(http.MethodPost, "/sessions", nil, &res)
	return res.SessionID, err
}

func (c *Client) JoinSession(sessionID string) (*dto.SessionView, error) {
	var view dto.SessionView
	err := c.do(http.MethodPost, fmt.Sprintf("/sessions/%s/join", sessionID), nil, &view)
	return &view, err
}

// --- Puzzle ---

func (c *Client) GetState(sessionID string) (*dto.SessionView, error) {
	var view dto.SessionView
	err := c.do(http.MethodGet, fmt.Sprintf("/sessions/%s", sessionID), nil, &view)
	return &view, err
}

func (c *Client) Guess(sessionID string, x, y int, label dto.GuessState) (*dto.SessionView, error) {
	var view dto.SessionView
	req := map[string]any{
		"x":     x,
		"y":     y,
		"label": string(label),
	}
	err := c.do(http.MethodPost, fmt.Sprintf("/sessions/%s/guess", sessionID), req, &view)
	return &view, err
}
