/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prreconciler

import (
	"context"
	"fmt"

	"chainguard.dev/owlcast/agents/completeness"
	"chainguard.dev/owlcast/agents/metrics"
	"chainguard.dev/owlcast/prinfo"
	"chainguard.dev/owlcast/reconcilers/githubreconciler"
	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v84/github"
)

// Mode selects how the report comment is written.
type Mode int

const (
	// ModeCreate always posts a new comment.
	ModeCreate Mode = iota
	// ModeUpsert rewrites the latest report comment, or posts one.
	ModeUpsert
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeUpsert:
		return "upsert"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ModeFor maps a pull_request webhook action to a Mode. Only a newly
// opened pull request posts unconditionally; a reopened one may already
// carry a report. Actions that do not change the report report false.
func ModeFor(action string) (Mode, bool) {
	switch action {
	case "opened":
		return ModeCreate, true
	case "reopened", "edited":
		return ModeUpsert, true
	default:
		return 0, false
	}
}

// CommentUpserter writes the report comment.
type CommentUpserter interface {
	Create(ctx context.Context, gh *github.Client, res *githubreconciler.Resource, body string) (string, error)
	Upsert(ctx context.Context, gh *github.Client, res *githubreconciler.Resource, body string) (string, error)
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithDescriptionFallback sets the policy for bodies without a description.
func WithDescriptionFallback(f prinfo.DescriptionFallback) Option {
	return func(r *Reconciler) {
		r.fallback = f
	}
}

// WithLiveURLPolicy sets how plain-http live URLs are treated.
func WithLiveURLPolicy(p prinfo.LiveURLPolicy) Option {
	return func(r *Reconciler) {
		r.livePolicy = p
	}
}

// Reconciler renders and posts Owlcast reports.
type Reconciler struct {
	assessor   completeness.Interface
	comments   CommentUpserter
	fallback   prinfo.DescriptionFallback
	livePolicy prinfo.LiveURLPolicy
}

// New creates a Reconciler.
func New(assessor completeness.Interface, comments CommentUpserter, opts ...Option) *Reconciler {
	r := &Reconciler{
		assessor:   assessor,
		comments:   comments,
		fallback:   prinfo.DefaultDescriptionFallback,
		livePolicy: prinfo.DefaultLiveURLPolicy,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render produces the report for item. It always returns a report; an
// unavailable assessment shows up as completeness.Unavailable.
func (r *Reconciler) Render(ctx context.Context, item prinfo.Item) *prinfo.Report {
	title := prinfo.FormatTitle(item.Number, item.Title)
	description := prinfo.ExtractDescription(item.Body,
		prinfo.WithDescriptionFallback(r.fallback),
		prinfo.WithTitle(title))
	links := prinfo.ExtractLinks(item.Body, prinfo.WithLiveURLPolicy(r.livePolicy))

	verdict := r.assessor.Assess(ctx, &completeness.Request{
		Description: description,
		Links:       links,
		Body:        item.Body,
	})

	return prinfo.Compose(title, description, links, verdict.String())
}

// Reconcile renders the report for item and writes it to res using gh.
func (r *Reconciler) Reconcile(ctx context.Context, res *githubreconciler.Resource, gh *github.Client, item prinfo.Item, mode Mode) error {
	ctx = metrics.WithPullRequest(ctx, res.Owner, res.Repo, res.Number)
	log := clog.FromContext(ctx).With("resource", res.String(), "mode", mode.String())
	ctx = clog.WithLogger(ctx, log)

	log.Info("Rendering Owlcast report")
	body := r.Render(ctx, item).Markdown()

	var (
		url string
		err error
	)
	switch mode {
	case ModeCreate:
		url, err = r.comments.Create(ctx, gh, res, body)
	case ModeUpsert:
		url, err = r.comments.Upsert(ctx, gh, res, body)
	default:
		return fmt.Errorf("unsupported mode %s", mode)
	}
	if err != nil {
		return fmt.Errorf("writing report comment: %w", err)
	}

	log.With("url", url).Info("Owlcast report written")
	return nil
}
