// Package api provides the HTTP handlers for the workbook query API.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/ukaji3/sheetserve/internal/middleware"
	"github.com/ukaji3/sheetserve/pkg/sheetserve/catalog"
)

// Version is reported by the root and health endpoints.
const Version = "1.0.0"

// Handler answers table and row-sum queries against the active catalog
// snapshot.
type Handler struct {
	store   *catalog.Store
	logger  *slog.Logger
	started time.Time
}

// NewHandler creates a Handler reading snapshots from store.
func NewHandler(store *catalog.Store, logger *slog.Logger) *Handler {
	return &Handler{
		store:   store,
		logger:  logger,
		started: time.Now(),
	}
}

// Root describes the API.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Workbook Table Query API",
		"version": Version,
		"endpoints": []string{
			"/list_tables",
			"/get_table_details",
			"/row_sum",
		},
	})
}

// ListTables returns every table name in workbook order.
func (h *Handler) ListTables(w http.ResponseWriter, r *http.Request) {
	cat, ok := h.snapshot(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"tables": cat.TableNames(),
	})
}

// TableDetails returns the row labels of one table.
func (h *Handler) TableDetails(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("table_name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "table_name query parameter is required")
		return
	}
	cat, ok := h.snapshot(w)
	if !ok {
		return
	}
	labels, err := cat.RowLabels(name)
	if err != nil {
		h.writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"table_name": name,
		"row_names":  labels,
	})
}

// RowSum returns the sum of the numeric cells in one row.
func (h *Handler) RowSum(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("table_name")
	label := r.URL.Query().Get("row_name")
	if name == "" || label == "" {
		writeError(w, http.StatusBadRequest, "table_name and row_name query parameters are required")
		return
	}
	cat, ok := h.snapshot(w)
	if !ok {
		return
	}
	sum, err := cat.SumRow(name, label)
	if err != nil {
		h.writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"table_name": name,
		"row_name":   label,
		"sum":        sum,
	})
}

// Health reports service liveness and the state of the loaded catalog.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	cat := h.store.Current()
	tableCount := 0
	if cat != nil {
		tableCount = cat.Len()
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "healthy",
		"catalog_loaded": cat != nil,
		"table_count":    tableCount,
		"uptime_seconds": int(time.Since(h.started).Seconds()),
	})
}

// snapshot fetches the active catalog, answering 500 when none was loaded.
func (h *Handler) snapshot(w http.ResponseWriter) (*catalog.Catalog, bool) {
	cat := h.store.Current()
	if cat == nil {
		writeError(w, http.StatusInternalServerError, "catalog not loaded")
		return nil, false
	}
	return cat, true
}

func (h *Handler) writeLookupError(w http.ResponseWriter, r *http.Request, err error) {
	status := httpStatusFromError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			"path", r.URL.Path,
			"error", err,
			"request_id", middleware.RequestIDFromContext(r.Context()),
		)
	}
	writeError(w, status, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"code":    status,
		"message": message,
	})
}
