/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package githubreconciler holds the pieces shared by reconcilers that act
// on GitHub pull requests: the Resource they act on and a cache of
// authenticated GitHub clients.
package githubreconciler
