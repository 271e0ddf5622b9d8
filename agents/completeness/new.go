/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package completeness

import (
	"context"
	"fmt"
	"strings"

	"chainguard.dev/owlcast/agents/metrics"
)

const meterName = "chainguard.ai.agents"

// New creates an assessor for the configured model. Claude models use the
// Anthropic SDK, Gemini models use Google's Gen AI SDK and GPT models use
// the OpenAI SDK.
func New(ctx context.Context, opts ...Option) (Interface, error) {
	cfg := &config{
		model:       DefaultModel,
		maxTokens:   150,
		temperature: 0.1,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	var (
		backend completer
		err     error
	)
	switch model := strings.ToLower(cfg.model); {
	case strings.HasPrefix(model, "claude-"):
		backend, err = newClaude(ctx, cfg)
	case strings.HasPrefix(model, "gemini-"):
		backend, err = newGoogle(ctx, cfg)
	case strings.HasPrefix(model, "gpt-"), strings.HasPrefix(model, "o"):
		backend, err = newOpenAI(cfg)
	default:
		return nil, fmt.Errorf("unsupported model: %s (expected gpt-*, o*, claude-* or gemini-*)", cfg.model)
	}
	if err != nil {
		return nil, err
	}

	m := metrics.NewGenAI(meterName)
	if cfg.enricher != nil {
		m.SetAttributeEnricher(cfg.enricher)
	}

	return &assessor{
		model:   cfg.model,
		backend: backend,
		prompt:  assessmentPrompt,
		metrics: m,
	}, nil
}
