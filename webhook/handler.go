/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package webhook

import (
	"context"
	"net/http"
	"time"

	"chainguard.dev/owlcast/prinfo"
	"chainguard.dev/owlcast/reconcilers/githubreconciler"
	"chainguard.dev/owlcast/reconcilers/prreconciler"
	"github.com/chainguard-dev/clog"
	"github.com/gin-gonic/gin"
	"github.com/google/go-github/v84/github"
)

// ClientSource hands out GitHub clients for a pull request.
type ClientSource interface {
	Get(ctx context.Context, res *githubreconciler.Resource) (*github.Client, error)
}

// Reconciler writes the report for a pull request.
type Reconciler interface {
	Reconcile(ctx context.Context, res *githubreconciler.Resource, gh *github.Client, item prinfo.Item, mode prreconciler.Mode) error
}

// Handler serves GitHub webhook deliveries.
type Handler struct {
	secret     []byte
	clients    ClientSource
	reconciler Reconciler
	metrics    *Metrics
}

// NewHandler creates a Handler. Deliveries must be signed with secret.
func NewHandler(secret []byte, clients ClientSource, reconciler Reconciler, metrics *Metrics) *Handler {
	return &Handler{
		secret:     secret,
		clients:    clients,
		reconciler: reconciler,
		metrics:    metrics,
	}
}

// HandleWebhook validates, decodes and dispatches one delivery.
func (h *Handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()
	eventType := github.WebHookType(c.Request)
	start := time.Now()
	defer func() {
		h.metrics.duration.WithLabelValues(eventType).Observe(time.Since(start).Seconds())
	}()

	log := clog.FromContext(ctx).With("event", eventType, "delivery", github.DeliveryID(c.Request))

	payload, err := github.ValidatePayload(c.Request, h.secret)
	if err != nil {
		log.With("error", err).Warn("Rejected webhook delivery")
		h.metrics.record(eventType, "", outcomeRejected)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	event, err := github.ParseWebHook(eventType, payload)
	if err != nil {
		log.With("error", err).Warn("Malformed webhook delivery")
		h.metrics.record(eventType, "", outcomeMalformed)
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
		return
	}

	ev, ok := event.(*github.PullRequestEvent)
	if !ok {
		h.ignore(c, eventType, "")
		return
	}
	action := ev.GetAction()
	mode, ok := prreconciler.ModeFor(action)
	if !ok {
		h.ignore(c, eventType, action)
		return
	}

	res, err := githubreconciler.ResourceFromEvent(ev)
	if err != nil {
		log.With("error", err).Warn("Pull request event without a pull request")
		h.metrics.record(eventType, action, outcomeMalformed)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log = log.With("action", action, "resource", res.String())
	ctx = clog.WithLogger(ctx, log)

	gh, err := h.clients.Get(ctx, res)
	if err != nil {
		h.fail(c, log, eventType, action, err)
		return
	}

	pr := ev.GetPullRequest()
	item := prinfo.Item{
		Number: res.Number,
		Title:  pr.GetTitle(),
		Body:   pr.GetBody(),
		Author: pr.GetUser().GetLogin(),
		URL:    pr.GetHTMLURL(),
	}
	if err := h.reconciler.Reconcile(ctx, res, gh, item, mode); err != nil {
		h.fail(c, log, eventType, action, err)
		return
	}

	h.metrics.record(eventType, action, outcomeHandled)
	c.JSON(http.StatusOK, gin.H{"status": "handled"})
}

func (h *Handler) ignore(c *gin.Context, eventType, action string) {
	h.metrics.record(eventType, action, outcomeIgnored)
	c.JSON(http.StatusAccepted, gin.H{"status": "ignored"})
}

func (h *Handler) fail(c *gin.Context, log *clog.Logger, eventType, action string, err error) {
	log.With("error", err).Error("Failed to handle pull request")
	h.metrics.record(eventType, action, outcomeFailed)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "reconcile failed"})
}

// HealthCheck reports liveness.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
