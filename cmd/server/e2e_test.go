package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/foglight/battlesolitaire/internal/dto"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestE2E_LobbyAndGuessFlow(t *testing.T) {
	// Disable rate limiting for E2E tests
	os.Setenv("RATE_LIMIT", "1000")
	defer os.Unsetenv("RATE_LIMIT")

	t.Parallel()

	app := &Application{}
	app.Setup()

	ts := httptest.NewServer(app.E)
	defer ts.Close()

	aliceClient := &testClient{t: t, baseURL: ts.URL, client: ts.Client()}
	alice := aliceClient.login("Alice")

	bobClient := &testClient{t: t, baseURL: ts.URL, client: ts.Client()}
	bob := bobClient.login("Bob")

	sessionID := aliceClient.hostSession()
	require.NotEmpty(t, sessionID)

	sessions := aliceClient.listSessions()
	found := false
	for _, s := range sessions {
		if s.ID == sessionID {
			found = true
		}
	}
	require.True(t, found, "hosted session should appear in the lobby list")

	bobView := bobClient.joinSession(sessionID)
	require.Equal(t, bob.ID, bobView.Me.ID)
	require.Equal(t, dto.StatePlaying, bobView.State)

	aliceState := aliceClient.getState(sessionID)
	require.Equal(t, 8, aliceState.Me.Board.Width)
	require.Equal(t, 8, aliceState.Me.Board.Height)
	require.Equal(t, alice.ID, aliceState.Me.ID)

	// Out-of-bounds guesses are rejected without corrupting state.
	aliceClient.guessExpectStatus(sessionID, -1, -1, "water", http.StatusBadRequest)

	// A guess reveals the targeted cell in the guesser's own view only.
	beforeBob := bobClient.getState(sessionID)
	aliceAfterGuess := aliceClient.guess(sessionID, 0, 0, "water")
	require.NotEqual(t, dto.GuessUnknown, aliceAfterGuess.Me.Board.Grid[0][0])

	afterBob := bobClient.getState(sessionID)
	require.Equal(t, beforeBob.Me.Board.Grid, afterBob.Me.Board.Grid,
		"a guess by one player must not reveal cells on another player's board")

	// An unrecognised label is rejected before it reaches the session.
	aliceClient.guessExpectStatus(sessionID, 1, 1, "lava", http.StatusBadRequest)
}

// --- Test Helper ---

type testClient struct {
	t       *testing.T
	baseURL string
	client  *http.Client
	token   string
}

type testResponse struct {
	Code int
	Body *bytes.Buffer
}

func (c *testClient) do(
	method, path string,
	body interface{},
	headers map[string]string, //nolint:unparam
) *testResponse {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err, "failed to marshal request body")
		reqBody = bytes.NewBuffer(b)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	require.NoError(c.t, err, "failed to create request")

	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if c.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+c.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	require.NoError(c.t, err, "failed to execute request")
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err, "failed to read response body")

	return &testResponse{
		Code: resp.StatusCode,
		Body: bytes.NewBuffer(respBody),
	}
}

func (c *testClient) login(username string) dto.User {
	rec := c.do(http.MethodPost, "/login", map[string]string{"username": username}, nil)
	require.Equal(c.t, http.StatusOK, rec.Code)

	var resp dto.AuthResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(c.t, err)

	c.token = resp.Token
	return resp.User
}

func (c *testClient) hostSession() string {
	rec := c.do(http.MethodPost, "/sessions", nil, nil)
	require.Equal(c.t, http.StatusOK, rec.Code)

	var resp map[string]string
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(c.t, err)
	return resp["session_id"]
}

func (c *testClient) listSessions() []dto.SessionSummary {
	rec := c.do(http.MethodGet, "/sessions", nil, nil)
	require.Equal(c.t, http.StatusOK, rec.Code)

	var resp []dto.SessionSummary
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(c.t, err)
	return resp
}

func (c *testClient) joinSession(sessionID string) dto.SessionView {
	rec := c.do(http.MethodPost, "/sessions/"+sessionID+"/join", nil, nil)
	require.Equal(c.t, http.StatusOK, rec.Code)

	var resp dto.SessionView
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(c.t, err)
	return resp
}

func (c *testClient) getState(sessionID string) dto.SessionView {
	rec := c.do(http.MethodGet, "/sessions/"+sessionID, nil, nil)
	require.Equal(c.t, http.StatusOK, rec.Code)

	var state dto.SessionView
	err := json.Unmarshal(rec.Body.Bytes(), &state)
	require.NoError(c.t, err)
	return state
}

func (c *testClient) guess(sessionID string, x, y int, label string) dto.SessionView {
	payload := map[string]interface{}{"x": x, "y": y, "label": label}
	rec := c.do(http.MethodPost, "/sessions/"+sessionID+"/guess", payload, nil)
	require.Equal(c.t, http.StatusOK, rec.Code, fmt.Sprintf("guess failed at %d,%d", x, y))

	var state dto.SessionView
	err := json.Unmarshal(rec.Body.Bytes(), &state)
	require.NoError(c.t, err)
	return state
}

func (c *testClient) guessExpectStatus(sessionID string, x, y int, label string, status int) {
	payload := map[string]interface{}{"x": x, "y": y, "label": label}
	rec := c.do(http.MethodPost, "/sessions/"+sessionID+"/guess", payload, nil)
	require.Equal(c.t, status, rec.Code, fmt.Sprintf("guess at %d,%d", x, y))
}
