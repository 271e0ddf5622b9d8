/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package webhook receives GitHub pull_request deliveries and hands opened,
// reopened and edited pull requests to the report reconciler.
package webhook
