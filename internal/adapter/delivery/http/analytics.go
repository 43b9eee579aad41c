package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/vadimbarashkov/linkstats/internal/entity"
	"github.com/vadimbarashkov/linkstats/pkg/response"
)

type analyticsUseCase interface {
	GetAliasAnalytics(ctx context.Context, alias string) (*entity.AliasSummary, error)
	GetTopicAnalytics(ctx context.Context, topic entity.Topic) (*entity.TopicSummary, error)
	GetAccountAnalytics(ctx context.Context, accountID string) (*entity.AccountSummary, error)
}

const (
	scopeAlias   = "alias"
	scopeTopic   = "topic"
	scopeAccount = "account"
)

type analyticsHandler struct {
	useCase analyticsUseCase
	metrics *Metrics
}

func newAnalyticsHandler(useCase analyticsUseCase, metrics *Metrics) *analyticsHandler {
	return &analyticsHandler{
		useCase: useCase,
		metrics: metrics,
	}
}

func (h *analyticsHandler) getAliasAnalytics(w http.ResponseWriter, r *http.Request) {
	alias := chi.URLParam(r, "alias")

	summary, err := h.useCase.GetAliasAnalytics(r.Context(), alias)
	h.metrics.observeAnalytics(scopeAlias, err)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response.Success("alias analytics", toAliasAnalyticsResponse(summary)))
}

func (h *analyticsHandler) getTopicAnalytics(w http.ResponseWriter, r *http.Request) {
	topic, err := entity.ParseTopic(chi.URLParam(r, "topic"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(response.CodeBadRequest, "unknown topic"))
		return
	}

	summary, err := h.useCase.GetTopicAnalytics(r.Context(), topic)
	h.metrics.observeAnalytics(scopeTopic, err)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response.Success("topic analytics", toTopicAnalyticsResponse(summary)))
}

func (h *analyticsHandler) getAccountAnalytics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.useCase.GetAccountAnalytics(r.Context(), accountIDFromContext(r.Context()))
	h.metrics.observeAnalytics(scopeAccount, err)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response.Success("overall analytics", toAccountAnalyticsResponse(summary)))
}

func (h *analyticsHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, entity.ErrLinkNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error(response.CodeNotFound, "short url not found"))
	case errors.Is(err, entity.ErrNoAnalyticsData):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error(response.CodeNoData, "no analytics data available"))
	default:
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.ServerError)
	}
}
