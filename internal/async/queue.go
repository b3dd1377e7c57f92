package async

import (
	"context"
	"time"
)

// Job is one document to run through the pipeline.
type Job struct {
	Path         string
	OriginalName string // optional upload name; empty means use the path's base
	SubmittedAt  time.Time
	TraceID      string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
