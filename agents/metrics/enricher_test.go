/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestPullRequestEnricher(t *testing.T) {
	base := []attribute.KeyValue{attribute.String("model", "gpt-4")}

	if got := PullRequestEnricher(context.Background(), base); len(got) != 1 {
		t.Errorf("without pull request: got = %v, wanted only model", got)
	}

	ctx := WithPullRequest(context.Background(), "codehs", "site", 17)
	got := attribute.NewSet(PullRequestEnricher(ctx, base)...)

	if v, ok := got.Value("repository"); !ok || v.AsString() != "codehs/site" {
		t.Errorf("repository: got = %v, wanted = codehs/site", v.AsString())
	}
	if v, ok := got.Value("pull_request"); !ok || v.AsInt64() != 17 {
		t.Errorf("pull_request: got = %v, wanted = 17", v.AsInt64())
	}
}

func TestGenAIRecordsWithoutProvider(t *testing.T) {
	m := NewGenAI("owlcast.test")
	m.SetAttributeEnricher(PullRequestEnricher)

	ctx := WithPullRequest(context.Background(), "o", "r", 1)
	m.RecordTokens(ctx, "gpt-4", 10, 5)
	m.RecordAssessment(ctx, "gpt-4", OutcomeSuccess)
}
