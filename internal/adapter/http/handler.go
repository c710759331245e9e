package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"driftisle/internal/app/ports"
	"driftisle/internal/app/session"
	"driftisle/internal/domain/survival"
	"driftisle/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const defaultEventLimit = 50
const maxEventLimit = 500

type Handler struct {
	Runner *session.Runner
	KPI    kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	api := s.Group("/api/sim")
	api.POST("/intents", h.intents)
	api.GET("/snapshot", h.snapshot)
	api.GET("/status", h.status)
	api.POST("/reset", h.reset)
	api.GET("/events", h.events)

	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) intents(_ context.Context, ctx *app.RequestContext) {
	var body survival.Intents
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	h.Runner.SubmitIntents(body)
	ctx.JSON(consts.StatusAccepted, map[string]bool{"accepted": true})
}

func (h Handler) snapshot(_ context.Context, ctx *app.RequestContext) {
	viewport := world.Rect{
		W: queryInt(ctx, "w", 0),
		H: queryInt(ctx, "h", 0),
	}
	viewport.X = queryInt(ctx, "x", 0)
	viewport.Y = queryInt(ctx, "y", 0)

	ctx.JSON(consts.StatusOK, h.Runner.Snapshot(viewport))
}

func (h Handler) status(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.Runner.Status())
}

func (h Handler) reset(c context.Context, ctx *app.RequestContext) {
	if err := h.Runner.Reset(c); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]bool{"reset": true})
}

func (h Handler) events(c context.Context, ctx *app.RequestContext) {
	limit := queryInt(ctx, "limit", defaultEventLimit)
	if limit <= 0 {
		limit = defaultEventLimit
	}
	if limit > maxEventLimit {
		limit = maxEventLimit
	}

	records, err := h.Runner.RecentEvents(c, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}

	out := make([]eventView, 0, len(records))
	for _, rec := range records {
		view := eventView{
			ID:           rec.ID,
			Type:         rec.Type,
			OccurredAtMs: rec.OccurredAt.UnixMilli(),
			AtMinutes:    rec.AtMinutes,
		}
		if len(rec.Payload) > 0 {
			view.Payload = json.RawMessage(rec.Payload)
		}
		out = append(out, view)
	}
	ctx.JSON(consts.StatusOK, map[string]any{"events": out})
}

type eventView struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	OccurredAtMs int64           `json:"occurred_at_ms"`
	AtMinutes    int64           `json:"at_minutes"`
	Payload      json.RawMessage `json:"payload,omitempty"`
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func queryInt(ctx *app.RequestContext, key string, fallback int) int {
	raw := string(ctx.Query(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
