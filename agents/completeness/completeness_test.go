/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package completeness

import (
	"context"
	"errors"
	"strings"
	"testing"

	"chainguard.dev/owlcast/agents/metrics"
	"chainguard.dev/owlcast/prinfo"
	"go.opentelemetry.io/otel/attribute"
)

type fakeCompleter struct {
	resp   completion
	err    error
	prompt string
}

func (f *fakeCompleter) complete(_ context.Context, prompt string) (completion, error) {
	f.prompt = prompt
	return f.resp, f.err
}

type fakeRecorder struct {
	outcomes []string
	tokens   int64
}

func (f *fakeRecorder) RecordTokens(_ context.Context, _ string, promptTokens, completionTokens int64, _ ...attribute.KeyValue) {
	f.tokens += promptTokens + completionTokens
}

func (f *fakeRecorder) RecordAssessment(_ context.Context, _, outcome string, _ ...attribute.KeyValue) {
	f.outcomes = append(f.outcomes, outcome)
}

func newTestAssessor(backend completer) (*assessor, *fakeRecorder) {
	rec := &fakeRecorder{}
	return &assessor{
		model:   "test-model",
		backend: backend,
		prompt:  assessmentPrompt,
		metrics: rec,
	}, rec
}

func TestAssess(t *testing.T) {
	backendErr := errors.New("boom")

	tests := []struct {
		name     string
		resp     completion
		err      error
		wantText string
		wantErr  error
	}{{
		name:     "trims answer",
		resp:     completion{text: "\n  No missing or incorrect info \n", promptTokens: 10, completionTokens: 4},
		wantText: NoMissingInfo,
	}, {
		name:    "backend failure",
		err:     backendErr,
		wantErr: backendErr,
	}, {
		name:    "blank answer",
		resp:    completion{text: "   "},
		wantErr: ErrEmptyCompletion,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, rec := newTestAssessor(&fakeCompleter{resp: tt.resp, err: tt.err})
			got := a.Assess(context.Background(), &Request{Description: "d"})

			wantOutcome := metrics.OutcomeSuccess
			if tt.wantErr != nil {
				wantOutcome = metrics.OutcomeFailure
			}
			if len(rec.outcomes) != 1 || rec.outcomes[0] != wantOutcome {
				t.Errorf("recorded outcomes: got = %v, wanted = [%s]", rec.outcomes, wantOutcome)
			}
			if want := tt.resp.promptTokens + tt.resp.completionTokens; tt.err == nil && rec.tokens != want {
				t.Errorf("recorded tokens: got = %d, wanted = %d", rec.tokens, want)
			}

			if !errors.Is(got.Err, tt.wantErr) {
				t.Errorf("Verdict.Err: got = %v, wanted = %v", got.Err, tt.wantErr)
			}
			if got.Text != tt.wantText {
				t.Errorf("Verdict.Text: got = %q, wanted = %q", got.Text, tt.wantText)
			}
			if tt.wantErr != nil && got.String() != Unavailable {
				t.Errorf("Verdict.String(): got = %q, wanted = %q", got.String(), Unavailable)
			}
		})
	}
}

func TestAssessPromptCarriesRequest(t *testing.T) {
	fake := &fakeCompleter{resp: completion{text: "ok"}}
	a, _ := newTestAssessor(fake)

	a.Assess(context.Background(), &Request{
		Description: "Adds {{body}} support",
		Links: prinfo.LinkBundle{
			DemoLinks: []string{"https://loom.com/share/abc"},
		},
		Body: "Description: Adds \"quoted\" support",
	})

	for _, want := range []string{
		`Description: "Adds {{body}} support"`,
		`"loom_links": [`,
		`"https://loom.com/share/abc"`,
		`Body: "Description: Adds \"quoted\" support"`,
		"The feature flags are optional",
		`Otherwise return "No missing or incorrect info".`,
	} {
		if !strings.Contains(fake.prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, fake.prompt)
		}
	}
}

func TestVerdictString(t *testing.T) {
	if got := (Verdict{Text: "Needs a demo"}).String(); got != "Needs a demo" {
		t.Errorf("success: got = %q, wanted = %q", got, "Needs a demo")
	}
	if got := (Verdict{Text: "ignored", Err: ErrDisabled}).String(); got != Unavailable {
		t.Errorf("failure: got = %q, wanted = %q", got, Unavailable)
	}
}

func TestDisabled(t *testing.T) {
	rec := &fakeRecorder{}
	got := disabled{metrics: rec}.Assess(context.Background(), &Request{})
	if !errors.Is(got.Err, ErrDisabled) {
		t.Errorf("Disabled().Assess: got = %v, wanted = %v", got.Err, ErrDisabled)
	}
	if got.String() != Unavailable {
		t.Errorf("Disabled().Assess: got = %q, wanted = %q", got.String(), Unavailable)
	}
	if len(rec.outcomes) != 1 || rec.outcomes[0] != metrics.OutcomeDisabled {
		t.Errorf("recorded outcomes: got = %v, wanted = [%s]", rec.outcomes, metrics.OutcomeDisabled)
	}
}

func TestDisabledConstructor(t *testing.T) {
	if got := Disabled().Assess(context.Background(), &Request{}); !errors.Is(got.Err, ErrDisabled) {
		t.Errorf("Disabled().Assess: got = %v, wanted = %v", got.Err, ErrDisabled)
	}
}
