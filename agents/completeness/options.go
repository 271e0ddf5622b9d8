/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package completeness

import (
	"errors"
	"fmt"

	"chainguard.dev/owlcast/agents/metrics"
)

// DefaultModel is used when WithModel is not given.
const DefaultModel = "gpt-4"

type config struct {
	model       string
	maxTokens   int64
	temperature float64
	apiKey      string
	baseURL     string
	projectID   string
	region      string
	enricher    metrics.AttributeEnricher
}

// Option configures New.
type Option func(*config) error

// WithModel selects the model, and with it the backend.
func WithModel(model string) Option {
	return func(c *config) error {
		if model == "" {
			return errors.New("model cannot be empty")
		}
		c.model = model
		return nil
	}
}

// WithMaxTokens caps the length of the answer.
func WithMaxTokens(tokens int64) Option {
	return func(c *config) error {
		if tokens <= 0 {
			return fmt.Errorf("max tokens must be positive, got %d", tokens)
		}
		c.maxTokens = tokens
		return nil
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temp float64) Option {
	return func(c *config) error {
		if temp < 0.0 || temp > 1.0 {
			return fmt.Errorf("temperature must be between 0.0 and 1.0, got %f", temp)
		}
		c.temperature = temp
		return nil
	}
}

// WithAPIKey sets the credential for the selected backend.
func WithAPIKey(key string) Option {
	return func(c *config) error {
		c.apiKey = key
		return nil
	}
}

// WithBaseURL points the backend at a different endpoint.
func WithBaseURL(url string) Option {
	return func(c *config) error {
		c.baseURL = url
		return nil
	}
}

// WithVertex routes Claude and Gemini models through Vertex AI.
func WithVertex(projectID, region string) Option {
	return func(c *config) error {
		if projectID == "" || region == "" {
			return errors.New("vertex requires both a project and a region")
		}
		c.projectID = projectID
		c.region = region
		return nil
	}
}

// WithAttributeEnricher adds contextual attributes to recorded metrics.
func WithAttributeEnricher(enricher metrics.AttributeEnricher) Option {
	return func(c *config) error {
		c.enricher = enricher
		return nil
	}
}
