package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/linkstats/internal/entity"
	"github.com/vadimbarashkov/linkstats/internal/usecase"
	"github.com/vadimbarashkov/linkstats/pkg/response"
)

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

type linkUseCase interface {
	ShortenURL(ctx context.Context, params usecase.ShortenParams) (*entity.Link, error)
	ResolveAlias(ctx context.Context, alias string, visit usecase.Visit) (*entity.Link, error)
}

type linkHandler struct {
	useCase  linkUseCase
	validate *validator.Validate
	baseURL  string
}

func newLinkHandler(useCase linkUseCase, validate *validator.Validate, baseURL string) *linkHandler {
	return &linkHandler{
		useCase:  useCase,
		validate: validate,
		baseURL:  baseURL,
	}
}

func (h *linkHandler) shortenURL(w http.ResponseWriter, r *http.Request) {
	var req shortenRequest

	if err := render.DecodeJSON(r.Body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.EmptyRequestBody)
			return
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.BadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Validation(err))
		return
	}

	link, err := h.useCase.ShortenURL(r.Context(), usecase.ShortenParams{
		OriginalURL: req.OriginalURL,
		CustomAlias: req.CustomAlias,
		Topic:       entity.Topic(req.Topic),
		Owner:       accountIDFromContext(r.Context()),
	})
	if err != nil {
		if errors.Is(err, entity.ErrAliasExists) {
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error(response.CodeConflict, "custom alias already in use"))
			return
		}

		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.ServerError)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.Success("link created", toLinkResponse(link, h.baseURL)))
}

func (h *linkHandler) redirect(w http.ResponseWriter, r *http.Request) {
	alias := chi.URLParam(r, "alias")

	link, err := h.useCase.ResolveAlias(r.Context(), alias, usecase.Visit{
		UserAgent: r.UserAgent(),
		ClientIP:  clientIP(r),
	})
	if err != nil {
		if errors.Is(err, entity.ErrLinkNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error(response.CodeNotFound, "short url not found"))
			return
		}

		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.ServerError)
		return
	}

	http.Redirect(w, r, link.OriginalURL, http.StatusFound)
}

// clientIP returns the host part of RemoteAddr, which RealIP has already
// replaced with the forwarded address when one is present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
