/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubreconciler

import (
	"errors"
	"fmt"

	"github.com/google/go-github/v84/github"
)

// Resource identifies one pull request.
type Resource struct {
	Owner  string
	Repo   string
	Number int

	// InstallationID is the GitHub App installation that delivered the
	// event. Zero when the app is not used.
	InstallationID int64
}

// String implements fmt.Stringer.
func (r *Resource) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}

// Validate reports whether the resource names a pull request.
func (r *Resource) Validate() error {
	switch {
	case r.Owner == "":
		return errors.New("resource owner is required")
	case r.Repo == "":
		return errors.New("resource repo is required")
	case r.Number <= 0:
		return fmt.Errorf("resource number must be positive, got %d", r.Number)
	}
	return nil
}

// ResourceFromEvent extracts the pull request a webhook event refers to.
func ResourceFromEvent(ev *github.PullRequestEvent) (*Resource, error) {
	res := &Resource{
		Owner:          ev.GetRepo().GetOwner().GetLogin(),
		Repo:           ev.GetRepo().GetName(),
		Number:         ev.GetPullRequest().GetNumber(),
		InstallationID: ev.GetInstallation().GetID(),
	}
	if res.Number == 0 {
		res.Number = ev.GetNumber()
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}
