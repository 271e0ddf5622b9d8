/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package commentmanager

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/owlcast/reconcilers/githubreconciler"
	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v84/github"
)

// CM manages the comments of one bot identity.
type CM struct {
	botLogin string
}

// New creates a CM for comments authored by botLogin.
func New(botLogin string) (*CM, error) {
	if botLogin == "" {
		return nil, errors.New("bot login cannot be empty")
	}
	return &CM{botLogin: botLogin}, nil
}

// Create posts body as a new comment and returns its URL.
func (cm *CM) Create(ctx context.Context, gh *github.Client, res *githubreconciler.Resource, body string) (string, error) {
	comment, _, err := gh.Issues.CreateComment(ctx, res.Owner, res.Repo, res.Number, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		return "", fmt.Errorf("creating comment on %s: %w", res, err)
	}
	clog.FromContext(ctx).With("comment_id", comment.GetID()).Infof("Created comment on %s", res)
	return comment.GetHTMLURL(), nil
}

// Upsert replaces the body of the latest bot comment with body, or creates a
// comment when the bot has not commented yet. An identical body is left
// untouched.
func (cm *CM) Upsert(ctx context.Context, gh *github.Client, res *githubreconciler.Resource, body string) (string, error) {
	comments, err := cm.list(ctx, gh, res)
	if err != nil {
		return "", err
	}

	existing := SelectLatest(comments, cm.botLogin)
	if existing == nil {
		return cm.Create(ctx, gh, res, body)
	}

	log := clog.FromContext(ctx).With("comment_id", existing.GetID())
	if existing.GetBody() == body {
		log.Infof("Comment on %s is up to date", res)
		return existing.GetHTMLURL(), nil
	}

	updated, _, err := gh.Issues.EditComment(ctx, res.Owner, res.Repo, existing.GetID(), &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		return "", fmt.Errorf("editing comment %d on %s: %w", existing.GetID(), res, err)
	}
	log.Infof("Updated comment on %s", res)
	return updated.GetHTMLURL(), nil
}

func (cm *CM) list(ctx context.Context, gh *github.Client, res *githubreconciler.Resource) ([]*github.IssueComment, error) {
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var all []*github.IssueComment
	for {
		page, resp, err := gh.Issues.ListComments(ctx, res.Owner, res.Repo, res.Number, opts)
		if err != nil {
			return nil, fmt.Errorf("listing comments on %s: %w", res, err)
		}
		all = append(all, page...)
		if resp.NextPage == 0 {
			return all, nil
		}
		opts.Page = resp.NextPage
	}
}

// SelectLatest returns the comment by botLogin with the latest creation
// time, or nil. On equal times the later one in the list wins.
func SelectLatest(comments []*github.IssueComment, botLogin string) *github.IssueComment {
	var latest *github.IssueComment
	for _, c := range comments {
		if c.GetUser().GetLogin() != botLogin {
			continue
		}
		if latest == nil || !c.GetCreatedAt().Before(latest.GetCreatedAt().Time) {
			latest = c
		}
	}
	return latest
}
