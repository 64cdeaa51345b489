// Package worker ranks queued match jobs and publishes their progress.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/storage"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Publisher delivers job status updates.
type Publisher interface {
	Publish(ctx context.Context, update types.JobUpdate) error
}

// Processor turns a MatchJob message into a ranking.
type Processor struct {
	engine      *matching.Engine
	downloader  storage.Downloader
	publisher   Publisher
	concurrency int
	now         func() time.Time
	fetchJD     func(ctx context.Context, pageURL string) (string, error)
}

// NewProcessor creates a Processor. downloader may be nil when every job
// carries inline resume text.
func NewProcessor(engine *matching.Engine, downloader storage.Downloader, publisher Publisher, concurrency int) *Processor {
	return &Processor{
		engine:      engine,
		downloader:  downloader,
		publisher:   publisher,
		concurrency: concurrency,
		now:         time.Now,
		fetchJD: func(ctx context.Context, pageURL string) (string, error) {
			return fetch.JobDescription(ctx, pageURL, nil)
		},
	}
}

// Handle processes one raw message body. A body that does not decode is
// reported as failed only when its job id can still be read; otherwise it is
// logged and dropped since no subscriber could match the update.
func (p *Processor) Handle(ctx context.Context, body []byte) error {
	var job types.MatchJob
	if err := json.Unmarshal(body, &job); err != nil {
		if id, ok := salvageJobID(body); ok {
			p.publish(ctx, id, types.JobStatusFailed, "invalid job message", nil)
		} else {
			slog.Warn("dropping undecodable job message", "error", err, "bytes", len(body))
		}
		return fmt.Errorf("failed to decode match job: %w", err)
	}
	return p.Process(ctx, job)
}

// salvageJobID reads only the id field of a message whose full decode failed.
func salvageJobID(body []byte) (uuid.UUID, bool) {
	var head struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &head); err != nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(head.ID)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// Process ranks the job's resumes and publishes processing, then completed or failed.
func (p *Processor) Process(ctx context.Context, job types.MatchJob) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	slog.Info("processing match job", "job_id", job.ID, "resumes", len(job.Resumes))
	p.publish(ctx, job.ID, types.JobStatusProcessing, "ranking started", nil)

	if job.JobDescription == "" && job.JobURL != "" {
		jd, err := p.fetchJD(ctx, job.JobURL)
		if err != nil {
			p.publish(ctx, job.ID, types.JobStatusFailed, "could not fetch job posting", nil)
			return fmt.Errorf("match job %s: %w", job.ID, err)
		}
		job.JobDescription = jd
	}

	inputs := make([]types.ResumeInput, 0, len(job.Resumes))
	for _, ref := range job.Resumes {
		inputs = append(inputs, types.ResumeInput{
			ID:   ref.ID,
			Name: ref.Name,
			Text: p.resolveText(ctx, ref),
		})
	}

	result, err := ranking.Rank(ctx, p.engine, job.JobDescription, inputs, ranking.Options{
		Concurrency: p.concurrency,
		RunID:       job.ID.String(),
	})
	if err != nil {
		p.publish(ctx, job.ID, types.JobStatusFailed, "ranking failed", nil)
		return fmt.Errorf("match job %s: %w", job.ID, err)
	}

	slog.Info("match job completed", "job_id", job.ID, "count", result.Count)
	p.publish(ctx, job.ID, types.JobStatusCompleted, "ranking completed", result)
	return nil
}

// resolveText returns inline text or downloads and extracts the stored file.
// Failures degrade to "" so the resume still appears in the ranking with zero score.
func (p *Processor) resolveText(ctx context.Context, ref types.ResumeRef) string {
	if ref.Text != "" || ref.ObjectKey == "" {
		return ref.Text
	}
	if p.downloader == nil {
		slog.Warn("no object storage configured, skipping resume", "resume_id", ref.ID, "object_key", ref.ObjectKey)
		return ""
	}

	data, err := p.downloader.Download(ctx, ref.ObjectKey)
	if err != nil {
		slog.Warn("failed to download resume", "resume_id", ref.ID, "object_key", ref.ObjectKey, "error", err)
		return ""
	}

	name := ref.Name
	if name == "" {
		name = ref.ObjectKey
	}
	return ingestion.ExtractText(name, ref.Mime, data)
}

func (p *Processor) publish(ctx context.Context, jobID uuid.UUID, status, message string, result *types.RankedResumes) {
	if p.publisher == nil {
		return
	}
	update := types.JobUpdate{
		JobID:     jobID,
		Status:    status,
		Message:   message,
		Timestamp: p.now().UTC(),
		Result:    result,
	}
	if err := p.publisher.Publish(ctx, update); err != nil {
		slog.Error("failed to publish job update", "job_id", jobID, "status", status, "error", err)
	}
}
