package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"campus-cli/internal/model"
)

// Session is the result of a successful sign-in: the cookie to replay on
// subsequent requests and the role the server resolved for the account.
type Session struct {
	Cookie string
	Role   model.Role
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInData struct {
	Role string `json:"role"`
}

// SignIn authenticates and captures the session cookie. It bypasses do()
// because it must read Set-Cookie from the response headers.
func (c *Client) SignIn(ctx context.Context, email, password string) (Session, error) {
	body, err := json.Marshal(signInRequest{Email: email, Password: password})
	if err != nil {
		return Session{}, fmt.Errorf("encode signin: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/users/signin", bytes.NewReader(body))
	if err != nil {
		return Session{}, fmt.Errorf("build signin: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("signin: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Session{}, fmt.Errorf("signin: read response: %w", err)
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return Session{}, &StatusError{Code: resp.StatusCode}
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return Session{}, &StatusError{Code: resp.StatusCode, Message: env.Message}
	}

	var data signInData
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return Session{}, fmt.Errorf("signin: decode data: %w", err)
		}
	}
	role, ok := model.ParseRole(data.Role)
	if !ok {
		return Session{}, fmt.Errorf("signin: unrecognized role %q", data.Role)
	}

	// Replay only the cookie pair, not its attributes.
	var pairs []string
	for _, sc := range resp.Header.Values("Set-Cookie") {
		if i := strings.Index(sc, ";"); i >= 0 {
			sc = sc[:i]
		}
		if sc = strings.TrimSpace(sc); sc != "" {
			pairs = append(pairs, sc)
		}
	}
	if len(pairs) == 0 {
		return Session{}, fmt.Errorf("signin: server set no session cookie")
	}

	s := Session{Cookie: strings.Join(pairs, "; "), Role: role}
	c.cookie = s.Cookie
	return s, nil
}

func (c *Client) SignOut(ctx context.Context) error {
	if err := c.do(ctx, "POST", "/api/users/signout", nil, nil); err != nil {
		return err
	}
	c.cookie = ""
	return nil
}
