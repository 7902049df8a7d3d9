package ai

import (
	"context"
	"errors"
)

var (
	// ErrNoAPIKey means the collaborator has no API key configured.
	// Analysis calls fail with this until one is set.
	ErrNoAPIKey = errors.New("no API key configured")
	// ErrNoResponse means the model returned no usable candidate text.
	ErrNoResponse = errors.New("no response from model")
	// ErrIncomplete means the model response parsed but lacks a required
	// field. Partial extractions are never admitted to the store.
	ErrIncomplete = errors.New("incomplete model response")
)

// InsightExtraction is the raw metric set read off a screenshot. It is
// not yet a store record; the caller wraps it with id, date and source.
type InsightExtraction struct {
	Title         string   `json:"title"`
	Views         int      `json:"views"`
	Reach         int      `json:"reach"`
	Likes         int      `json:"likes"`
	Shares        int      `json:"shares"`
	Saves         int      `json:"saves"`
	Comments      int      `json:"comments"`
	RetentionRate *float64 `json:"retentionRate,omitempty"`
	AvgWatchTime  string   `json:"avgWatchTime,omitempty"`
}

// VideoAnalysis is the display-only critique of an uploaded video. It
// is never persisted.
type VideoAnalysis struct {
	HookScore      int      `json:"hookScore"`
	PacingScore    int      `json:"pacingScore"`
	TopicScore     int      `json:"topicScore"`
	HookAnalysis   string   `json:"hookAnalysis"`
	PacingAnalysis string   `json:"pacingAnalysis"`
	TopicAnalysis  string   `json:"topicAnalysis"`
	ViralPotential string   `json:"viralPotential"`
	Improvements   []string `json:"improvements"`
}

type Analyzer interface {
	ExtractInsight(ctx context.Context, data []byte, mimeType string) (*InsightExtraction, error)
	AnalyzeVideo(ctx context.Context, data []byte, mimeType string) (*VideoAnalysis, error)
}
