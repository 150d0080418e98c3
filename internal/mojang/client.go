// Package mojang wraps the Mojang profile API used to resolve a Minecraft
// username to its uuid and canonical spelling.  It is a thin I/O wrapper:
// one endpoint, no caching, no retries.
package mojang

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrProfileNotFound is returned when no account exists for the name.
var ErrProfileNotFound = errors.New("profile not found")

// Profile is the subset of the Mojang response the dashboard uses.
type Profile struct {
	ID   string `json:"id"`   // undashed uuid
	Name string `json:"name"` // canonical username
}

// Client calls the Mojang profile API.
type Client struct {
	base string
	http *http.Client
}

// NewClient returns a Client against the public Mojang API.  base is
// overridable for tests.
func NewClient(base string) *Client {
	if base == "" {
		base = "https://api.mojang.com"
	}
	return &Client{
		base: base,
		http: &http.Client{Timeout: 5 * time.Second},
	}
}

// LookupName resolves a username to its profile.  Mojang answers missing
// names with 404 or an empty 204 body; both map to ErrProfileNotFound.
func (c *Client) LookupName(ctx context.Context, name string) (Profile, error) {
	u := c.base + "/users/profiles/minecraft/" + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Profile{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Profile{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var p Profile
		if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
			return Profile{}, err
		}
		return p, nil
	case http.StatusNoContent, http.StatusNotFound:
		return Profile{}, ErrProfileNotFound
	default:
		return Profile{}, fmt.Errorf("mojang: unexpected status %d", resp.StatusCode)
	}
}
