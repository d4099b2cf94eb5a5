// Package spotify resolves catalog songs to Spotify track links.
package spotify

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

// Search requests allowed per second, with a small burst for a results page.
const (
	searchRate  = 5
	searchBurst = 5
)

// Client wraps the Spotify API client with a search cache.
type Client struct {
	api     *spotify.Client
	market  string
	limiter *rate.Limiter

	// Keyed by "title|artist"; misses are cached as "".
	cache   map[string]string
	cacheMu sync.RWMutex
}

// New creates a Client from an already authenticated API client.
func New(api *spotify.Client, market string) *Client {
	return &Client{
		api:     api,
		market:  market,
		limiter: rate.NewLimiter(searchRate, searchBurst),
		cache:   make(map[string]string),
	}
}

// NewClientCredentials authenticates with the client-credentials flow.
// No user login is involved; the token only grants catalog access and is
// refreshed automatically.
func NewClientCredentials(ctx context.Context, clientID, clientSecret, market string) (*Client, error) {
	cfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	if _, err := cfg.Token(ctx); err != nil {
		return nil, fmt.Errorf("getting spotify token: %w", err)
	}
	return New(spotify.New(cfg.Client(ctx)), market), nil
}

// TrackURL returns the Spotify link of the best match for a song, or ""
// when the search finds nothing.
func (c *Client) TrackURL(ctx context.Context, title, artist string) (string, error) {
	key := strings.ToLower(title + "|" + artist)

	c.cacheMu.RLock()
	if url, ok := c.cache[key]; ok {
		c.cacheMu.RUnlock()
		return url, nil
	}
	c.cacheMu.RUnlock()

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("waiting for rate limiter: %w", err)
	}

	opts := []spotify.RequestOption{spotify.Limit(1)}
	if c.market != "" {
		opts = append(opts, spotify.Market(c.market))
	}

	result, err := c.api.Search(ctx, buildQuery(title, artist), spotify.SearchTypeTrack, opts...)
	if err != nil {
		return "", fmt.Errorf("searching spotify: %w", err)
	}

	var url string
	if result.Tracks != nil && len(result.Tracks.Tracks) > 0 {
		url = trackURL(result.Tracks.Tracks[0])
	}

	c.cacheMu.Lock()
	c.cache[key] = url
	c.cacheMu.Unlock()

	return url, nil
}

// buildQuery uses field filters so "Happy" by Pharrell does not match every
// song with "happy" in it. Featured artists are dropped from the filter.
func buildQuery(title, artist string) string {
	q := fmt.Sprintf("track:%s", quote(title))
	if a := primaryArtist(artist); a != "" {
		q += fmt.Sprintf(" artist:%s", quote(a))
	}
	return q
}

func primaryArtist(artist string) string {
	lower := strings.ToLower(artist)
	for _, sep := range []string{" ft. ", " feat. ", " featuring "} {
		if i := strings.Index(lower, sep); i >= 0 {
			return strings.TrimSpace(artist[:i])
		}
	}
	return strings.TrimSpace(artist)
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, "") + `"`
}

func trackURL(t spotify.FullTrack) string {
	if u := t.ExternalURLs["spotify"]; u != "" {
		return u
	}
	if t.ID != "" {
		return "https://open.spotify.com/track/" + t.ID.String()
	}
	return ""
}
