package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-scorer/internal/extraction"
	"github.com/jonathan/resume-scorer/internal/types"
)

var validate = validator.New()

// DocumentPayload is one document in a scoring or feedback request. Text
// carries the payload; Format selects the decoder (empty means plain
// text).
type DocumentPayload struct {
	Text   string `json:"text" validate:"required"`
	Format string `json:"format,omitempty"`
}

// ScoreRequest asks for a score breakdown of a resume against a job
// requirement document.
type ScoreRequest struct {
	Resume      DocumentPayload `json:"resume" validate:"required"`
	Requirement DocumentPayload `json:"requirement" validate:"required"`
}

// ScoreResponse carries the breakdown plus request bookkeeping.
type ScoreResponse struct {
	RequestID string               `json:"request_id"`
	Warnings  []string             `json:"warnings,omitempty"`
	Result    types.ScoreBreakdown `json:"result"`
}

// FeedbackResponse carries the suggestion list plus request bookkeeping.
type FeedbackResponse struct {
	RequestID string               `json:"request_id"`
	Warnings  []string             `json:"warnings,omitempty"`
	Result    types.FeedbackResult `json:"result"`
}

// ExtractRequest asks for a job posting to be fetched and extracted.
type ExtractRequest struct {
	URL      string `json:"url" validate:"required,url"`
	RenderJS bool   `json:"render_js,omitempty"`
}

// ExtractResponse carries the extracted posting.
type ExtractResponse struct {
	RequestID string              `json:"request_id"`
	Result    *extraction.Posting `json:"result"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req ScoreRequest
	if err := s.decodeRequest(r, &req); err != nil {
		s.errorResponse(w, requestID, err)
		return
	}

	resume, requirement, warnings, err := s.decodeDocuments(req.Resume, req.Requirement)
	if err != nil {
		s.errorResponse(w, requestID, err)
		return
	}

	meta := &types.DocumentMetadata{Format: req.Resume.Format}
	breakdown := s.engine.Score(resume, requirement, meta)

	s.jsonResponse(w, http.StatusOK, ScoreResponse{
		RequestID: requestID,
		Warnings:  warnings,
		Result:    breakdown,
	})
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req ScoreRequest
	if err := s.decodeRequest(r, &req); err != nil {
		s.errorResponse(w, requestID, err)
		return
	}

	resume, requirement, warnings, err := s.decodeDocuments(req.Resume, req.Requirement)
	if err != nil {
		s.errorResponse(w, requestID, err)
		return
	}

	meta := &types.DocumentMetadata{Format: req.Resume.Format}
	result := s.feedback.Feedback(resume, requirement, meta)

	s.jsonResponse(w, http.StatusOK, FeedbackResponse{
		RequestID: requestID,
		Warnings:  warnings,
		Result:    result,
	})
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req ExtractRequest
	if err := s.decodeRequest(r, &req); err != nil {
		s.errorResponse(w, requestID, err)
		return
	}

	opts := extraction.DefaultFetchOptions()
	opts.RenderJS = req.RenderJS || s.cfg.UseBrowser
	// Bound the whole fetch-and-extract by the write timeout.
	ctx, cancel := context.WithTimeout(r.Context(), 55*time.Second)
	defer cancel()

	posting, err := extraction.FromURL(ctx, req.URL, opts)
	if err != nil {
		s.errorResponse(w, requestID, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, ExtractResponse{
		RequestID: requestID,
		Result:    posting,
	})
}

// decodeRequest unmarshals and validates a JSON request body.
func (s *Server) decodeRequest(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrBadJSON{Cause: err}
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &ErrValidation{Field: verrs[0].Field(), Message: "failed " + verrs[0].Tag() + " validation"}
		}
		return &ErrValidation{Field: "(request)", Message: err.Error()}
	}
	return nil
}

// decodeDocuments runs both payloads through the decoder registry and
// pools their warnings.
func (s *Server) decodeDocuments(resume, requirement DocumentPayload) (string, string, []string, error) {
	var warnings []string

	resumeText, w1, err := s.decodeOne(resume)
	if err != nil {
		return "", "", nil, err
	}
	warnings = append(warnings, w1...)

	requirementText, w2, err := s.decodeOne(requirement)
	if err != nil {
		return "", "", nil, err
	}
	warnings = append(warnings, w2...)

	return resumeText, requirementText, warnings, nil
}

func (s *Server) decodeOne(payload DocumentPayload) (string, []string, error) {
	if payload.Format == "" {
		return payload.Text, nil, nil
	}
	result, err := s.decoders.Decode([]byte(payload.Text), payload.Format)
	if err != nil {
		return "", nil, err
	}
	return result.Text, result.Warnings, nil
}
