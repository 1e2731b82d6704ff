package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/user/broadcast-service/internal/delivery/http/request"
	"github.com/user/broadcast-service/internal/delivery/http/response"
	"github.com/user/broadcast-service/internal/repository"
	"github.com/user/broadcast-service/internal/usecase"
)

const defaultResearchLimit = 10

type Handler struct {
	processor  usecase.BroadcastProcessor
	researcher usecase.BookResearcher
}

func NewHandler(processor usecase.BroadcastProcessor, researcher usecase.BookResearcher) *Handler {
	return &Handler{
		processor:  processor,
		researcher: researcher,
	}
}

func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	var req request.ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		h.writeJSONError(w, "text is required", http.StatusBadRequest)
		return
	}

	parsed, err := h.processor.Parse(r.Context(), req.Text, req.MediaCount, req.Force)
	if err != nil {
		slog.Error("Failed to parse broadcast", "error", err)
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, response.ParseResponse{
		Status:     "success",
		ParsedData: parsed,
	})
}

func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req request.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ParsedData == nil {
		h.writeJSONError(w, "parsed_data is required", http.StatusBadRequest)
		return
	}

	draft, err := h.processor.Generate(r.Context(), req.ParsedData, req.Review, req.PublisherOverride, req.Level)
	if err != nil {
		slog.Error("Failed to generate broadcast draft", "error", err)
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, response.GenerateResponse{
		Status: "success",
		Draft:  draft,
	})
}

func (h *Handler) HandleResearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		h.writeJSONError(w, "query parameter is required", http.StatusBadRequest)
		return
	}

	limit := defaultResearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.writeJSONError(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	results, err := h.researcher.Research(r.Context(), query, limit)
	if err != nil {
		if errors.Is(err, repository.ErrSearchUnavailable) {
			h.writeJSONError(w, "Search backend is not configured", http.StatusServiceUnavailable)
			return
		}
		slog.Error("Failed to research book", "query", query, "error", err)
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, response.ResearchResponse{
		Query:   query,
		Results: results,
	})
}

func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

func (h *Handler) writeJSONError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
