/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubreconciler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v84/github"
	"golang.org/x/oauth2"
)

// TransportFunc returns an authenticated HTTP client for a resource.
type TransportFunc func(ctx context.Context, res *Resource) (*http.Client, error)

// APIBaseURL returns the REST API root for a GitHub Enterprise host, in the
// form go-github uses for its own requests, without the trailing slash.
// "https://ghe.example.com" and "https://ghe.example.com/api/v3/" both
// yield "https://ghe.example.com/api/v3".
func APIBaseURL(baseURL string) (string, error) {
	gh, err := github.NewClient(nil).WithEnterpriseURLs(baseURL, baseURL)
	if err != nil {
		return "", fmt.Errorf("parsing enterprise URL %q: %w", baseURL, err)
	}
	return strings.TrimSuffix(gh.BaseURL.String(), "/"), nil
}

// NewAppTransport authenticates as the installation of a GitHub App that
// delivered the event. Installation tokens are minted and refreshed by
// ghinstallation against the same API root the clients use.
func NewAppTransport(appID int64, privateKey []byte, baseURL string) TransportFunc {
	return func(_ context.Context, res *Resource) (*http.Client, error) {
		if res.InstallationID == 0 {
			return nil, fmt.Errorf("resource %s has no installation", res)
		}
		itr, err := ghinstallation.New(http.DefaultTransport, appID, res.InstallationID, privateKey)
		if err != nil {
			return nil, fmt.Errorf("creating installation transport: %w", err)
		}
		if baseURL != "" {
			if itr.BaseURL, err = APIBaseURL(baseURL); err != nil {
				return nil, err
			}
		}
		return &http.Client{Transport: itr}, nil
	}
}

// NewStaticTokenTransport authenticates every request with one token.
func NewStaticTokenTransport(token string) TransportFunc {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return func(ctx context.Context, _ *Resource) (*http.Client, error) {
		return oauth2.NewClient(context.WithoutCancel(ctx), ts), nil
	}
}

// ClientCacheOption configures a ClientCache.
type ClientCacheOption func(*ClientCache)

// WithBaseURL points clients at a GitHub Enterprise API endpoint.
func WithBaseURL(baseURL string) ClientCacheOption {
	return func(cc *ClientCache) {
		cc.baseURL = baseURL
	}
}

// ClientCache hands out GitHub clients, one per installation.
type ClientCache struct {
	transport TransportFunc
	baseURL   string

	mu      sync.Mutex
	clients map[int64]*github.Client
}

// NewClientCache creates a cache that builds clients with transport.
func NewClientCache(transport TransportFunc, opts ...ClientCacheOption) *ClientCache {
	cc := &ClientCache{
		transport: transport,
		clients:   make(map[int64]*github.Client),
	}
	for _, opt := range opts {
		opt(cc)
	}
	return cc
}

// Get returns the client for res, creating it on first use.
func (cc *ClientCache) Get(ctx context.Context, res *Resource) (*github.Client, error) {
	if res == nil {
		return nil, errors.New("resource cannot be nil")
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()

	if gh, ok := cc.clients[res.InstallationID]; ok {
		return gh, nil
	}

	httpClient, err := cc.transport(ctx, res)
	if err != nil {
		return nil, err
	}
	gh := github.NewClient(httpClient)
	if cc.baseURL != "" {
		if gh, err = gh.WithEnterpriseURLs(cc.baseURL, cc.baseURL); err != nil {
			return nil, fmt.Errorf("setting enterprise URL: %w", err)
		}
	}

	clog.FromContext(ctx).With("installation", res.InstallationID).Debug("Created GitHub client")
	cc.clients[res.InstallationID] = gh
	return gh, nil
}
