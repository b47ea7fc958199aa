package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	crmerrors "github.com/supuni9622/crm-application/internal/errors"
	"github.com/supuni9622/crm-application/table"
)

const contentTypeJSON = "application/json; charset=utf-8"

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Err(err).Msg("Failed to encode response")
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeError maps a domain error onto a status code.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case crmerrors.Is(err, crmerrors.ErrRecordNotFound):
		writeJSONError(w, http.StatusNotFound, "not found")
	case crmerrors.Is(err, crmerrors.ErrUnknownColumn),
		crmerrors.Is(err, crmerrors.ErrInvalidOrderBy),
		crmerrors.Is(err, crmerrors.ErrInvalidRequest):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case crmerrors.Is(err, context.Canceled), crmerrors.Is(err, context.DeadlineExceeded):
		log.Debug().Err(err).Str("path", r.URL.Path).Msg("request abandoned")
		writeJSONError(w, http.StatusServiceUnavailable, "request cancelled")
	default:
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeJSONError(w, http.StatusInternalServerError, "internal error")
	}
}

// redirectSuccess helper for htmx-aware success redirects
func redirectSuccess(w http.ResponseWriter, r *http.Request, path string) {
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", path)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, crmerrors.Wrapf(crmerrors.ErrInvalidRequest, "%s must be an integer", key)
	}
	return v, nil
}

// tableState reads search, order_by, page and page_size.
func tableState[T any](r *http.Request, tbl *table.Table[T]) (table.State, error) {
	q := r.URL.Query()
	col, dir, err := tbl.ParseOrderBy(q.Get("order_by"))
	if err != nil {
		return table.State{}, err
	}
	page, err := queryInt(r, "page", 0)
	if err != nil {
		return table.State{}, err
	}
	size, err := queryInt(r, "page_size", table.DefaultPageSize)
	if err != nil {
		return table.State{}, err
	}
	return table.State{
		SortColumn:    col,
		SortDirection: dir,
		SearchText:    q.Get("search"),
		PageIndex:     page,
		PageSize:      size,
	}, nil
}

// serveTable applies the request's table state to rows and writes the view.
func serveTable[T any](w http.ResponseWriter, r *http.Request, tbl *table.Table[T], rows []T) {
	st, err := tableState(r, tbl)
	if err != nil {
		writeError(w, r, err)
		return
	}
	view, err := tbl.Apply(rows, st)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
