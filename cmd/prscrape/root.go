/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"chainguard.dev/owlcast/agents/completeness"
	"chainguard.dev/owlcast/prinfo"
	"chainguard.dev/owlcast/reconcilers/prreconciler"
	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// credentials are read from the environment when --assess is set.
type credentials struct {
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`
	BaseURL         string `env:"MODEL_BASE_URL"`
}

type options struct {
	number   int
	title    string
	format   string
	assess   bool
	model    string
	fallback prinfo.DescriptionFallback
	liveURLs prinfo.LiveURLPolicy
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "prscrape [file]",
		Short: "Render the Owlcast report for a pull request body",
		Long: `prscrape reads a pull request body from a file, or stdin when no file is
given, and prints the report Owlcast would post on the pull request.

The completeness assessment needs model credentials in the environment and
only runs with --assess.`,
		Example: `  prscrape --number 42 --title "Add dashboard" body.md
  gh pr view 42 --json body -q .body | prscrape --number 42 --format table
  prscrape --format yaml body.md
  OPENAI_API_KEY=... prscrape --assess body.md`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args, &opts)
		},
	}

	cmd.Flags().IntVar(&opts.number, "number", 0, "Pull request number")
	cmd.Flags().StringVar(&opts.title, "title", "", "Pull request title")
	cmd.Flags().StringVar(&opts.format, "format", "markdown", "Output format: markdown, table or yaml")
	cmd.Flags().BoolVar(&opts.assess, "assess", false, "Ask a model what the description is missing")
	cmd.Flags().StringVar(&opts.model, "model", completeness.DefaultModel, "Model used with --assess")
	cmd.Flags().Var(&opts.fallback, "description-fallback", "Description when no label is present: first-non-empty-line or use-title")
	cmd.Flags().Var(&opts.liveURLs, "live-urls", "Treatment of http live URLs: upgrade or filter")

	return cmd
}

func run(ctx context.Context, stdin io.Reader, out io.Writer, args []string, opts *options) error {
	switch opts.format {
	case "markdown", "table", "yaml":
	default:
		return fmt.Errorf("unknown format %q (expected markdown, table or yaml)", opts.format)
	}

	body, err := readBody(stdin, args)
	if err != nil {
		return err
	}

	assessor := completeness.Disabled()
	if opts.assess {
		if assessor, err = newAssessor(ctx, opts.model); err != nil {
			return err
		}
	}

	rec := prreconciler.New(assessor, nil,
		prreconciler.WithDescriptionFallback(opts.fallback),
		prreconciler.WithLiveURLPolicy(opts.liveURLs))
	report := rec.Render(ctx, prinfo.Item{
		Number: opts.number,
		Title:  opts.title,
		Body:   body,
	})

	switch opts.format {
	case "table":
		return writeTable(out, report)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return enc.Close()
	}
	_, err = io.WriteString(out, report.Markdown())
	return err
}

func readBody(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(b), nil
}

func newAssessor(ctx context.Context, model string) (completeness.Interface, error) {
	var creds credentials
	if err := envconfig.Process(ctx, &creds); err != nil {
		return nil, fmt.Errorf("processing credentials: %w", err)
	}

	key := creds.OpenAIAPIKey
	switch lower := strings.ToLower(model); {
	case strings.HasPrefix(lower, "claude-"):
		key = creds.AnthropicAPIKey
	case strings.HasPrefix(lower, "gemini-"):
		key = creds.GeminiAPIKey
	}
	if key == "" {
		clog.WarnContextf(ctx, "No API key for model %s, assessment unavailable", model)
		return completeness.Disabled(), nil
	}

	opts := []completeness.Option{
		completeness.WithModel(model),
		completeness.WithAPIKey(key),
	}
	if creds.BaseURL != "" {
		opts = append(opts, completeness.WithBaseURL(creds.BaseURL))
	}
	return completeness.New(ctx, opts...)
}
