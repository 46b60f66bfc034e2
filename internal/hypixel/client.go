// Package hypixel resolves Minecraft names through Mojang and reads player
// and guild data from the Hypixel API.
package hypixel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/HypixelVerify_Go/internal/domain"
	"github.com/osse101/HypixelVerify_Go/internal/logger"
	"github.com/osse101/HypixelVerify_Go/internal/metrics"
)

// Client talks to the Mojang profile API and the Hypixel public API.
// Every call is a single attempt; failures are never retried.
type Client struct {
	MojangURL  string
	HypixelURL string
	APIKey     string
	HTTP       *http.Client
}

// NewClient creates a new API client
func NewClient(mojangURL, hypixelURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		MojangURL:  strings.TrimRight(mojangURL, "/"),
		HypixelURL: strings.TrimRight(hypixelURL, "/"),
		APIKey:     apiKey,
		HTTP: &http.Client{
			Timeout: timeout,
		},
	}
}

type mojangProfile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type playerResponse struct {
	Success bool `json:"success"`
	Player  *struct {
		domain.ProfileAttributes
		SocialMedia struct {
			Links map[string]string `json:"links"`
		} `json:"socialMedia"`
	} `json:"player"`
}

type guildResponse struct {
	Success bool              `json:"success"`
	Guild   *domain.GuildInfo `json:"guild"`
}

// ResolveIdentity looks up the stable id for a display name. Every failure,
// including transport errors, is reported as domain.ErrNotFound.
func (c *Client) ResolveIdentity(ctx context.Context, name string) (domain.PlayerIdentity, error) {
	log := logger.FromContext(ctx)

	if !validName.MatchString(name) {
		return domain.PlayerIdentity{}, fmt.Errorf("%w: %w", domain.ErrNotFound, domain.ErrInvalidName)
	}

	var profile mojangProfile
	status, err := c.getJSON(ctx, ServiceMojang, c.MojangURL+PathMojangProfile+url.PathEscape(name), &profile)
	if err != nil {
		log.Warn("Mojang lookup failed", "name", name, "status", status, "error", err)
		return domain.PlayerIdentity{}, fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}

	id, err := normaliseID(profile.ID)
	if err != nil {
		log.Warn("Mojang returned malformed id", "name", name, "id", profile.ID)
		return domain.PlayerIdentity{}, fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}

	displayName := profile.Name
	if displayName == "" {
		displayName = name
	}
	return domain.PlayerIdentity{DisplayName: displayName, StableID: id}, nil
}

// FetchAttributes reads the Hypixel player record.
func (c *Client) FetchAttributes(ctx context.Context, stableID string) (domain.ProfileAttributes, error) {
	params := url.Values{}
	params.Set("key", c.APIKey)
	params.Set("uuid", stableID)

	var resp playerResponse
	status, err := c.getJSON(ctx, ServiceHypixel, c.HypixelURL+PathPlayer+"?"+params.Encode(), &resp)
	if err != nil {
		logger.FromContext(ctx).Warn("Hypixel player fetch failed", "uuid", stableID, "status", status, "error", err)
		return domain.ProfileAttributes{}, fmt.Errorf("%w: player %s", domain.ErrServiceUnavailable, stableID)
	}
	if !resp.Success || resp.Player == nil {
		return domain.ProfileAttributes{}, fmt.Errorf("%w: no player record for %s", domain.ErrServiceUnavailable, stableID)
	}

	attrs := resp.Player.ProfileAttributes
	attrs.SocialLinks = resp.Player.SocialMedia.Links
	return attrs, nil
}

// FetchGuild returns the player's guild, or nil when they are in none.
func (c *Client) FetchGuild(ctx context.Context, stableID string) (*domain.GuildInfo, error) {
	params := url.Values{}
	params.Set("key", c.APIKey)
	params.Set("player", stableID)

	var resp guildResponse
	status, err := c.getJSON(ctx, ServiceHypixel, c.HypixelURL+PathGuild+"?"+params.Encode(), &resp)
	if err != nil {
		logger.FromContext(ctx).Warn("Hypixel guild fetch failed", "uuid", stableID, "status", status, "error", err)
		return nil, fmt.Errorf("%w: guild for %s", domain.ErrServiceUnavailable, stableID)
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: guild for %s", domain.ErrServiceUnavailable, stableID)
	}
	return resp.Guild, nil
}

// getJSON performs one GET and decodes a 200 response into out. The returned
// status is 0 when the request never got a response. URLs are not logged
// here because Hypixel URLs carry the API key.
func (c *Client) getJSON(ctx context.Context, service, rawURL string, out interface{}) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(service, metrics.ResultFailure).Inc()
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(service, metrics.ResultFailure).Inc()
		return 0, fmt.Errorf("request failed: %w", stripURL(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamRequests.WithLabelValues(service, metrics.ResultFailure).Inc()
		return resp.StatusCode, fmt.Errorf("%s returned status: %d", service, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.UpstreamRequests.WithLabelValues(service, metrics.ResultFailure).Inc()
		return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}

	metrics.UpstreamRequests.WithLabelValues(service, metrics.ResultSuccess).Inc()
	return resp.StatusCode, nil
}

// stripURL drops the request URL from transport errors so the API key never reaches logs.
func stripURL(err error) error {
	if uerr, ok := err.(*url.Error); ok {
		return fmt.Errorf("%s: %w", uerr.Op, uerr.Err)
	}
	return err
}

// normaliseID accepts dashed or undashed UUIDs and returns the undashed lower-case form.
func normaliseID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(id.String(), "-", ""), nil
}
