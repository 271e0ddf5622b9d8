/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package commentmanager maintains a single bot-authored comment on a pull
// request. Create always posts a new comment. Upsert rewrites the most
// recent comment written by the bot, or posts one when there is none.
package commentmanager
