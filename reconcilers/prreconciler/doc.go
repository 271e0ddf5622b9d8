/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package prreconciler turns a pull request into the Owlcast report and
// keeps the report comment on the pull request current.
//
// Render runs the pipeline: the title formatter, the description and link
// extractors, the completeness assessor and finally the report composer.
// Reconcile renders and then posts the report, creating a new comment for
// newly opened pull requests and updating the existing one on edits.
package prreconciler
