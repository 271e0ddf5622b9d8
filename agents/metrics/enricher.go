/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// AttributeEnricher adds contextual attributes to the base attributes
// (model) of each recorded metric.
type AttributeEnricher func(ctx context.Context, baseAttrs []attribute.KeyValue) []attribute.KeyValue

type pullRequestKey struct{}

type pullRequest struct {
	owner, repo string
	number      int
}

// WithPullRequest returns a context carrying the pull request being assessed.
func WithPullRequest(ctx context.Context, owner, repo string, number int) context.Context {
	return context.WithValue(ctx, pullRequestKey{}, pullRequest{owner: owner, repo: repo, number: number})
}

// PullRequestEnricher adds repository and pull_request attributes when the
// context carries them.
func PullRequestEnricher(ctx context.Context, baseAttrs []attribute.KeyValue) []attribute.KeyValue {
	pr, ok := ctx.Value(pullRequestKey{}).(pullRequest)
	if !ok {
		return baseAttrs
	}
	return append(baseAttrs,
		attribute.String("repository", pr.owner+"/"+pr.repo),
		attribute.Int("pull_request", pr.number),
	)
}
