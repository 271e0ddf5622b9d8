/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package commentmanager

import (
	"context"
	"strings"
	"testing"
	"time"

	"chainguard.dev/owlcast/agents/completeness"
	"chainguard.dev/owlcast/prinfo"
	"chainguard.dev/owlcast/reconcilers/prreconciler"
	"github.com/google/go-github/v84/github"
)

func TestReconcileActionsWithExistingReport(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	item := prinfo.Item{Number: 1, Title: "Add dashboard", Body: "Description: Adds the dashboard page"}

	tests := []struct {
		action      string
		wantCreated int
		wantEdited  int
	}{
		{action: "opened", wantCreated: 1},
		{action: "reopened", wantEdited: 1},
		{action: "edited", wantEdited: 1},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			f, gh := newFake(t, []*github.IssueComment{
				comment(5, bot, prinfo.ReportHeading+"\n\nstale", base),
				comment(6, "someone", "LGTM", base.Add(time.Hour)),
			})
			cm, err := New(bot)
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			mode, ok := prreconciler.ModeFor(tt.action)
			if !ok {
				t.Fatalf("ModeFor(%q): got = false, wanted = true", tt.action)
			}
			r := prreconciler.New(completeness.Disabled(), cm)
			if err := r.Reconcile(context.Background(), res, gh, item, mode); err != nil {
				t.Fatalf("Reconcile: got = %v, wanted = nil", err)
			}

			if got := len(f.created); got != tt.wantCreated {
				t.Errorf("created comments: got = %d, wanted = %d", got, tt.wantCreated)
			}
			if got := len(f.edited); got != tt.wantEdited {
				t.Errorf("edited comments: got = %d, wanted = %d", got, tt.wantEdited)
			}
			if tt.wantEdited > 0 && !strings.Contains(f.edited[5], "Adds the dashboard page") {
				t.Errorf("edited comment 5: got = %q, wanted the new report", f.edited[5])
			}
		})
	}
}
