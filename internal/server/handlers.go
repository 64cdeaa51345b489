package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/jonathan/resume-matcher/internal/ats"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/roadmap"
	"github.com/jonathan/resume-matcher/internal/roles"
	"github.com/jonathan/resume-matcher/internal/types"
)

// TextRequest is the body for /skills
type TextRequest struct {
	Text string `json:"text" validate:"required"`
}

// MatchRequest is the body for /match
type MatchRequest struct {
	JobDescription string `json:"job_description" validate:"required"`
	Resume         string `json:"resume"`
}

// AnalyzeRequest is the body for /analyze. The job description may be empty.
// A nil Months uses the server default; any given value is clamped.
type AnalyzeRequest struct {
	JobDescription string `json:"job_description"`
	Resume         string `json:"resume"`
	Months         *int   `json:"months,omitempty"`
}

// RankRequest is the body for /rank
type RankRequest struct {
	JobDescription string         `json:"job_description" validate:"required"`
	Resumes        []RankedUpload `json:"resumes" validate:"required,min=1,max=500,dive"`
}

// RankedUpload is one resume in a RankRequest
type RankedUpload struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name,omitempty"`
	Text string `json:"text"`
}

// ATSRequest is the body for /ats
type ATSRequest struct {
	Resume string `json:"resume"`
}

// RoadmapRequest is the body for /roadmap
type RoadmapRequest struct {
	Missing []string `json:"missing"`
	Months  *int     `json:"months,omitempty"`
}

// RolesRequest is the body for /roles
type RolesRequest struct {
	Skills []string `json:"skills"`
}

// SkillsResponse is returned by /skills
type SkillsResponse struct {
	Skills []string `json:"skills"`
	Roles  []string `json:"roles"`
}

// VocabularyResponse is returned by /vocabulary
type VocabularyResponse struct {
	Terms []string `json:"terms"`
	Count int      `json:"count"`
}

// ATSResponse is returned by /ats
type ATSResponse struct {
	types.ATSReport
	Passed       int      `json:"passed"`
	Failed       []string `json:"failed"`
	Hints        []string `json:"hints"`
	Improvements []string `json:"improvements"`
}

// RoadmapResponse is returned by /roadmap
type RoadmapResponse struct {
	Months  int           `json:"months"`
	Roadmap types.Roadmap `json:"roadmap"`
	Tasks   int           `json:"tasks"`
}

// RolesResponse is returned by /roles
type RolesResponse struct {
	Roles []string `json:"roles"`
}

// decode reads a JSON body into dst and validates it.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return &ErrBadRequest{Cause: errors.New("empty body")}
		}
		return &ErrBadRequest{Cause: err}
	}
	if err := s.validator.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

// monthsOr returns the requested month count, or the server default when
// the field was omitted, clamped to the roadmap bounds.
func (s *Server) monthsOr(requested *int) int {
	if requested != nil {
		return roadmap.ClampMonths(*requested)
	}
	if s.months != 0 {
		return roadmap.ClampMonths(s.months)
	}
	return roadmap.DefaultMonths
}

func (s *Server) handleVocabulary(w http.ResponseWriter, _ *http.Request) {
	terms := s.engine.Vocabulary().Terms()
	s.jsonResponse(w, http.StatusOK, VocabularyResponse{Terms: terms, Count: len(terms)})
}

func (s *Server) handleSkills(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	found := s.engine.ExtractSkills(req.Text)
	s.jsonResponse(w, http.StatusOK, SkillsResponse{Skills: found, Roles: roles.Suggest(found)})
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.engine.Match(req.JobDescription, req.Resume))
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.engine.Analyze(req.JobDescription, req.Resume, s.monthsOr(req.Months)))
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	inputs := slice.Map(req.Resumes, func(_ int, src RankedUpload) types.ResumeInput {
		return types.ResumeInput{ID: src.ID, Name: src.Name, Text: src.Text}
	})

	result, err := ranking.Rank(r.Context(), s.engine, req.JobDescription, inputs, ranking.Options{
		Concurrency: s.concurrency,
	})
	if err != nil {
		// Only a cancelled request gets here
		s.errorResponse(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleATS(w http.ResponseWriter, r *http.Request) {
	var req ATSRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	report := ats.Check(req.Resume)
	failed := ats.Failed(report)
	s.jsonResponse(w, http.StatusOK, ATSResponse{
		ATSReport:    report,
		Passed:       ats.Passed(report),
		Failed:       failed,
		Hints:        slice.Map(failed, func(_ int, name string) string { return ats.Hint(name) }),
		Improvements: ats.Improvements(),
	})
}

func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	var req RoadmapRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	months := s.monthsOr(req.Months)
	plan := roadmap.Build(req.Missing, months)
	s.jsonResponse(w, http.StatusOK, RoadmapResponse{
		Months:  months,
		Roadmap: plan,
		Tasks:   roadmap.TaskCount(plan),
	})
}

func (s *Server) handleRoles(w http.ResponseWriter, r *http.Request) {
	var req RolesRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, RolesResponse{Roles: roles.Suggest(req.Skills)})
}
