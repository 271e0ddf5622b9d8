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

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/vertex"
)

type claudeBackend struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
}

func newClaude(ctx context.Context, cfg *config) (completer, error) {
	opts := []option.RequestOption{option.WithMaxRetries(0)}
	switch {
	case cfg.projectID != "":
		opts = append(opts, vertex.WithGoogleAuth(ctx, cfg.region, cfg.projectID))
	case cfg.apiKey != "":
		opts = append(opts, option.WithAPIKey(cfg.apiKey))
	default:
		return nil, errors.New("claude models need an Anthropic API key or a Vertex project")
	}
	if cfg.baseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.baseURL))
	}
	return &claudeBackend{
		client:      anthropic.NewClient(opts...),
		model:       cfg.model,
		maxTokens:   cfg.maxTokens,
		temperature: cfg.temperature,
	}, nil
}

func (b *claudeBackend) complete(ctx context.Context, prompt string) (completion, error) {
	msg, err := b.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(b.model),
		MaxTokens: b.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		Temperature: anthropic.Float(b.temperature),
	})
	if err != nil {
		return completion{}, fmt.Errorf("claude message failed: %w", err)
	}

	var sb strings.Builder
	for _, content := range msg.Content {
		if content.Type == "text" {
			sb.WriteString(content.Text)
		}
	}
	return completion{
		text:             sb.String(),
		promptTokens:     msg.Usage.InputTokens,
		completionTokens: msg.Usage.OutputTokens,
	}, nil
}
