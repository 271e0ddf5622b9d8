/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package completeness

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chainguard.dev/owlcast/agents/metrics"
	"chainguard.dev/owlcast/agents/promptbuilder"
	"chainguard.dev/owlcast/prinfo"
	"github.com/chainguard-dev/clog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// Unavailable is reported in place of a verdict when the model could
	// not be consulted.
	Unavailable = "Unable to determine missing info"

	// NoMissingInfo is what the model is told to answer for a complete
	// description.
	NoMissingInfo = "No missing or incorrect info"
)

var (
	// ErrDisabled is reported by the assessor returned from Disabled.
	ErrDisabled = errors.New("completeness assessment is disabled")

	// ErrEmptyCompletion is reported when the model returns no text.
	ErrEmptyCompletion = errors.New("model returned an empty completion")
)

// Interface assesses the completeness of one pull request description.
type Interface interface {
	Assess(ctx context.Context, req *Request) Verdict
}

// Request is what the model sees.
type Request struct {
	Description string
	Links       prinfo.LinkBundle
	Body        string
}

var _ promptbuilder.Bindable = (*Request)(nil)

// Bind implements promptbuilder.Bindable.
func (r *Request) Bind(prompt *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	p, err := prompt.BindJSON("description", r.Description)
	if err != nil {
		return nil, err
	}
	if p, err = p.BindJSON("links", r.Links); err != nil {
		return nil, err
	}
	return p.BindJSON("body", r.Body)
}

// Verdict is the outcome of one assessment.
type Verdict struct {
	// Text is the trimmed model answer.
	Text string
	// Err is set when no answer could be obtained.
	Err error
}

// String returns the text placed under "Missing Info:" in the report.
func (v Verdict) String() string {
	if v.Err != nil {
		return Unavailable
	}
	return v.Text
}

// completion is one backend response.
type completion struct {
	text             string
	promptTokens     int64
	completionTokens int64
}

// completer sends a single user prompt to a model.
type completer interface {
	complete(ctx context.Context, prompt string) (completion, error)
}

// recorder is the part of metrics.GenAI the assessors report to.
type recorder interface {
	RecordTokens(ctx context.Context, model string, promptTokens, completionTokens int64, attrs ...attribute.KeyValue)
	RecordAssessment(ctx context.Context, model, outcome string, attrs ...attribute.KeyValue)
}

var _ recorder = (*metrics.GenAI)(nil)

type assessor struct {
	model   string
	backend completer
	prompt  *promptbuilder.Prompt
	metrics recorder
}

var tracer = otel.Tracer("chainguard.dev/owlcast/agents/completeness")

// Assess implements Interface.
func (a *assessor) Assess(ctx context.Context, req *Request) Verdict {
	ctx, span := tracer.Start(ctx, "completeness.Assess",
		trace.WithAttributes(attribute.String("model", a.model)))
	defer span.End()

	log := clog.FromContext(ctx).With("model", a.model)

	text, err := a.assess(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		a.metrics.RecordAssessment(ctx, a.model, metrics.OutcomeFailure)
		log.With("error", err).Warn("Completeness assessment failed")
		return Verdict{Err: err}
	}

	a.metrics.RecordAssessment(ctx, a.model, metrics.OutcomeSuccess)
	log.With("verdict_length", len(text)).Info("Completeness assessment finished")
	return Verdict{Text: text}
}

func (a *assessor) assess(ctx context.Context, req *Request) (string, error) {
	bound, err := req.Bind(a.prompt)
	if err != nil {
		return "", fmt.Errorf("failed to bind request to prompt: %w", err)
	}
	prompt, err := bound.Build()
	if err != nil {
		return "", fmt.Errorf("failed to build prompt: %w", err)
	}

	resp, err := a.backend.complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	if resp.promptTokens > 0 || resp.completionTokens > 0 {
		a.metrics.RecordTokens(ctx, a.model, resp.promptTokens, resp.completionTokens)
	}

	text := strings.TrimSpace(resp.text)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

type disabled struct {
	metrics recorder
}

// Disabled returns an assessor that never consults a model. Every verdict
// carries ErrDisabled and is counted with the disabled outcome.
func Disabled() Interface {
	return disabled{metrics: metrics.NewGenAI(meterName)}
}

func (d disabled) Assess(ctx context.Context, _ *Request) Verdict {
	d.metrics.RecordAssessment(ctx, "", metrics.OutcomeDisabled)
	clog.FromContext(ctx).Debug("Completeness assessment disabled")
	return Verdict{Err: ErrDisabled}
}
