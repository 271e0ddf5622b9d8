/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main runs the Owlcast GitHub webhook service. Every opened or
// edited pull request gets a comment summarizing its description, links
// and what it is missing.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"chainguard.dev/owlcast/agents/completeness"
	"chainguard.dev/owlcast/agents/metrics"
	"chainguard.dev/owlcast/prinfo"
	"chainguard.dev/owlcast/reconcilers/githubreconciler"
	"chainguard.dev/owlcast/reconcilers/githubreconciler/commentmanager"
	"chainguard.dev/owlcast/reconcilers/prreconciler"
	"chainguard.dev/owlcast/webhook"
	"github.com/chainguard-dev/clog"
	_ "github.com/chainguard-dev/clog/gcp/init"
	"github.com/chainguard-dev/terraform-infra-common/pkg/httpmetrics"
	"github.com/chainguard-dev/terraform-infra-common/pkg/profiler"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sethvargo/go-envconfig"
	"golang.org/x/sync/errgroup"
)

type config struct {
	Port        int `env:"PORT,default=8080"`
	MetricsPort int `env:"METRICS_PORT,default=2112"`

	WebhookSecret string `env:"WEBHOOK_SECRET,required"`

	// Either a GitHub App or a token authenticates comment writes.
	GitHubAppID      int64  `env:"GITHUB_APP_ID"`
	GitHubPrivateKey string `env:"GITHUB_PRIVATE_KEY"`
	GitHubToken      string `env:"GITHUB_TOKEN"`
	GitHubBaseURL    string `env:"GITHUB_BASE_URL"`
	BotLogin         string `env:"BOT_LOGIN,default=owlcast-bot[bot]"`

	Model           string `env:"MODEL,default=gpt-4"`
	ModelBaseURL    string `env:"MODEL_BASE_URL"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`
	GCPProject      string `env:"GCP_PROJECT"`
	GCPRegion       string `env:"GCP_REGION,default=us-east5"`

	DescriptionFallback prinfo.DescriptionFallback `env:"DESCRIPTION_FALLBACK,default=first-non-empty-line"`
	LiveURLPolicy       prinfo.LiveURLPolicy       `env:"LIVE_URL_POLICY,default=upgrade"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go httpmetrics.ScrapeDiskUsage(ctx)
	profiler.SetupProfiler()
	defer httpmetrics.SetupTracer(ctx)()

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}

	transport, err := cfg.transport()
	if err != nil {
		clog.FatalContextf(ctx, "configuring GitHub auth: %v", err)
	}
	var cacheOpts []githubreconciler.ClientCacheOption
	if cfg.GitHubBaseURL != "" {
		api, err := githubreconciler.APIBaseURL(cfg.GitHubBaseURL)
		if err != nil {
			clog.FatalContextf(ctx, "configuring GitHub Enterprise: %v", err)
		}
		clog.InfoContextf(ctx, "Using GitHub Enterprise API at %s", api)
		cacheOpts = append(cacheOpts, githubreconciler.WithBaseURL(cfg.GitHubBaseURL))
	}
	clients := githubreconciler.NewClientCache(transport, cacheOpts...)

	cm, err := commentmanager.New(cfg.BotLogin)
	if err != nil {
		clog.FatalContextf(ctx, "creating comment manager: %v", err)
	}

	assessor, err := cfg.assessor(ctx)
	if err != nil {
		clog.FatalContextf(ctx, "creating completeness assessor: %v", err)
	}

	rec := prreconciler.New(assessor, cm,
		prreconciler.WithDescriptionFallback(cfg.DescriptionFallback),
		prreconciler.WithLiveURLPolicy(cfg.LiveURLPolicy))

	handler := webhook.NewHandler([]byte(cfg.WebhookSecret), clients, rec, webhook.NewMetrics(prometheus.DefaultRegisterer))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           webhook.NewServer(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}
	metricsSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.MetricsPort),
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, s := range []*http.Server{srv, metricsSrv} {
		eg.Go(func() error {
			clog.InfoContextf(ctx, "Listening on %s", s.Addr)
			if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		return errors.Join(srv.Shutdown(shutdownCtx), metricsSrv.Shutdown(shutdownCtx))
	})

	clog.InfoContextf(ctx, "Starting Owlcast with model %s", cfg.Model)
	if err := eg.Wait(); err != nil {
		clog.FatalContextf(ctx, "server failed: %v", err)
	}
}

func (cfg *config) transport() (githubreconciler.TransportFunc, error) {
	switch {
	case cfg.GitHubAppID != 0:
		if cfg.GitHubPrivateKey == "" {
			return nil, errors.New("GITHUB_PRIVATE_KEY is required with GITHUB_APP_ID")
		}
		return githubreconciler.NewAppTransport(cfg.GitHubAppID, []byte(cfg.GitHubPrivateKey), cfg.GitHubBaseURL), nil
	case cfg.GitHubToken != "":
		return githubreconciler.NewStaticTokenTransport(cfg.GitHubToken), nil
	default:
		return nil, errors.New("one of GITHUB_APP_ID or GITHUB_TOKEN is required")
	}
}

// assessor picks the backend credentials for the configured model. Without
// credentials reports are still posted, with the assessment unavailable.
func (cfg *config) assessor(ctx context.Context) (completeness.Interface, error) {
	opts := []completeness.Option{
		completeness.WithModel(cfg.Model),
		completeness.WithAttributeEnricher(metrics.PullRequestEnricher),
	}
	if cfg.ModelBaseURL != "" {
		opts = append(opts, completeness.WithBaseURL(cfg.ModelBaseURL))
	}

	var key string
	model := strings.ToLower(cfg.Model)
	switch {
	case strings.HasPrefix(model, "claude-"):
		key = cfg.AnthropicAPIKey
	case strings.HasPrefix(model, "gemini-"):
		key = cfg.GeminiAPIKey
	default:
		key = cfg.OpenAIAPIKey
	}
	vertex := cfg.GCPProject != "" && (strings.HasPrefix(model, "claude-") || strings.HasPrefix(model, "gemini-"))

	switch {
	case vertex:
		opts = append(opts, completeness.WithVertex(cfg.GCPProject, cfg.GCPRegion))
	case key != "":
		opts = append(opts, completeness.WithAPIKey(key))
	default:
		clog.WarnContextf(ctx, "No credentials for model %s, completeness assessment disabled", cfg.Model)
		return completeness.Disabled(), nil
	}
	return completeness.New(ctx, opts...)
}
