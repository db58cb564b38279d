package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/skill-gap/internal/feedback"
	"github.com/jonathan/skill-gap/internal/logging"
	"github.com/jonathan/skill-gap/internal/parsing"
	"github.com/jonathan/skill-gap/internal/pipeline"
	"github.com/jonathan/skill-gap/internal/types"
)

// AnalyzeRequest is the body of POST /analyze and /analyze/stream
type AnalyzeRequest struct {
	Resume   string `json:"resume" validate:"required"`
	Job      string `json:"job" validate:"required"`
	Feedback bool   `json:"feedback,omitempty"`
}

// SkillsRequest is the body of POST /skills
type SkillsRequest struct {
	Text string `json:"text" validate:"required"`
}

// RankRequest is the body of POST /rank; resumes maps a name to its text
type RankRequest struct {
	Job     string            `json:"job" validate:"required"`
	Resumes map[string]string `json:"resumes" validate:"required,min=1,max=50,dive,keys,required,endkeys,required"`
}

// decode reads and validates a JSON body into dst.
func (s *Server) decode(r *http.Request, w http.ResponseWriter, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	if err := s.validator.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

// handleAnalyze compares one resume with one job description
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := s.decode(r, w, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	report, err := s.analyzer.Analyze(r.Context(), req.Resume, req.Job)
	if err != nil {
		logging.Error().Err(err).Msg("analysis failed")
		s.errorResponse(w, HTTPStatus(err), "analysis failed: "+err.Error())
		return
	}
	s.attachFeedback(r, report, req)

	s.jsonResponse(w, http.StatusOK, report)
}

// handleAnalyzeStream runs an analysis and streams progress as SSE
func (s *Server) handleAnalyzeStream(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := s.decode(r, w, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	analyzer := s.analyzer.WithProgressCallback(func(event pipeline.ProgressEvent) {
		if err := sse.WriteStep(event); err != nil {
			logging.Warn().Err(err).Msg("error writing SSE event")
		}
	})

	report, err := analyzer.Analyze(r.Context(), req.Resume, req.Job)
	if err != nil {
		logging.Error().Err(err).Msg("streaming analysis failed")
		sse.WriteError(err.Error())
		return
	}
	s.attachFeedback(r, report, req)

	sse.WriteComplete(report)
}

func (s *Server) attachFeedback(r *http.Request, report *types.Report, req AnalyzeRequest) {
	if req.Feedback {
		report.Feedback = feedback.GenerateOrFallback(r.Context(), s.llm, report, parsing.CleanText(req.Job))
	}
}

// handleSkills extracts skills from a single text
func (s *Server) handleSkills(w http.ResponseWriter, r *http.Request) {
	var req SkillsRequest
	if err := s.decode(r, w, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.analyzer.Matcher().Extract(req.Text))
}

// handleRank ranks several resumes against one job description
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if err := s.decode(r, w, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	ranked, err := s.analyzer.Rank(r.Context(), req.Job, req.Resumes)
	if err != nil {
		logging.Error().Err(err).Int("resumes", len(req.Resumes)).Msg("ranking failed")
		s.errorResponse(w, HTTPStatus(err), fmt.Sprintf("ranking failed: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, ranked)
}
