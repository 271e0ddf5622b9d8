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

	"google.golang.org/genai"
)

type googleBackend struct {
	client      *genai.Client
	model       string
	maxTokens   int32
	temperature float32
}

func newGoogle(ctx context.Context, cfg *config) (completer, error) {
	cc := &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.baseURL},
	}
	switch {
	case cfg.projectID != "":
		cc.Project = cfg.projectID
		cc.Location = cfg.region
		cc.Backend = genai.BackendVertexAI
	case cfg.apiKey != "":
		cc.APIKey = cfg.apiKey
		cc.Backend = genai.BackendGeminiAPI
	default:
		return nil, errors.New("gemini models need a Gemini API key or a Vertex project")
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google AI client: %w", err)
	}
	return &googleBackend{
		client:      client,
		model:       cfg.model,
		maxTokens:   int32(cfg.maxTokens),
		temperature: float32(cfg.temperature),
	}, nil
}

func (b *googleBackend) complete(ctx context.Context, prompt string) (completion, error) {
	resp, err := b.client.Models.GenerateContent(ctx, b.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     ptr(b.temperature),
		MaxOutputTokens: b.maxTokens,
	})
	if err != nil {
		return completion{}, fmt.Errorf("gemini generate content failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return completion{}, ErrEmptyCompletion
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && !part.Thought {
			sb.WriteString(part.Text)
		}
	}
	c := completion{text: sb.String()}
	if usage := resp.UsageMetadata; usage != nil {
		c.promptTokens = int64(usage.PromptTokenCount)
		c.completionTokens = int64(usage.CandidatesTokenCount)
	}
	return c, nil
}

func ptr[T any](v T) *T {
	return &v
}
