// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// MatchJob is a queued request to rank a set of resumes against a job description.
type MatchJob struct {
	ID             uuid.UUID   `json:"id"`
	JobTitle       string      `json:"job_title,omitempty"`
	JobDescription string      `json:"job_description"`
	JobURL         string      `json:"job_url,omitempty"` // fetched when JobDescription is empty
	Resumes        []ResumeRef `json:"resumes"`
}

// ResumeRef points at a resume either inline (Text) or in object storage (ObjectKey + Mime).
type ResumeRef struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Text      string `json:"text,omitempty"`
	ObjectKey string `json:"object_key,omitempty"`
	Mime      string `json:"mime,omitempty"`
}

// Job statuses published on the updates exchange
const (
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)

// JobUpdate is a status event for a MatchJob.
type JobUpdate struct {
	JobID     uuid.UUID      `json:"job_id"`
	Status    string         `json:"status"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Result    *RankedResumes `json:"result,omitempty"`
}
