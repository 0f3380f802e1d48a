package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/application-screener/internal/jobcontext"
	"github.com/jonathan/application-screener/internal/types"
)

// handleEvaluate screens one application against the job description carried
// in the request and returns the decision surface.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req types.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	jobCtx := jobcontext.Build(req.JobID, req.LocationID, req.JobDescriptionText, jobcontext.DefaultPatterns())

	record, err := s.evaluator.Evaluate(r.Context(), req.Application(), jobCtx)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "evaluation failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.EvaluateResponse{
		ExecutionID:  record.ExecutionID.String(),
		Status:       record.Decision.Status,
		Score:        record.Score.Score,
		Confidence:   record.Extraction.Result.Confidence,
		Rationale:    record.Decision.Rationale,
		MissingItems: record.Score.MissingItems,
		ReasonCode:   record.Decision.ReasonCode,
	})
}

// handleGetAudit returns the full audit record for one execution.
func (s *Server) handleGetAudit(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "audit storage not configured")
		return
	}

	executionID, err := uuid.Parse(r.PathValue("execution_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid execution ID")
		return
	}

	record, err := s.db.GetAuditRecord(r.Context(), executionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load audit record")
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "audit record not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleListRuns returns recent screening runs, newest first.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "run storage not configured")
		return
	}

	runs, err := s.db.ListRuns(r.Context(), 50)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list runs")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs})
}
