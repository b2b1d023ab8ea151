// Package pipeline provides bounded parallel orchestration for parsing
// and matching batches of documents.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-screener/internal/extract"
	"github.com/jonathan/cv-screener/internal/lexicon"
	"github.com/jonathan/cv-screener/internal/matching"
	"github.com/jonathan/cv-screener/internal/types"
)

// DefaultWorkers bounds batch parallelism when no worker count is given.
const DefaultWorkers = 4

// Document is one OCR'd text body queued for parsing. Quality is the
// OCR confidence in [0,1] reported by the upstream OCR stage.
type Document struct {
	Name    string
	Text    string
	Quality float64
}

// Options configures a batch run.
type Options struct {
	Workers int
	Logger  *zap.Logger
	Clock   func() time.Time

	// Coefficients overrides the default scoring constants for MatchBatch.
	Coefficients *matching.Coefficients
}

func (o Options) normalize() Options {
	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	return o
}

// ParseBatch parses every document concurrently under the worker bound.
// Results keep input order; there is no shared accumulator, each worker
// writes only its own slot. Extraction never fails per-document, so the
// returned error reflects only context cancellation.
func ParseBatch(ctx context.Context, docs []Document, lex lexicon.Lexicons, opts Options) ([]*types.CandidateRecord, error) {
	opts = opts.normalize()
	assembler := extract.NewAssembler(lex).WithClock(opts.Clock)

	records := make([]*types.CandidateRecord, len(docs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			record, err := assembler.Parse(gCtx, doc.Text, doc.Quality)
			if err != nil {
				return fmt.Errorf("parse %s: %w", doc.Name, err)
			}
			records[i] = record
			opts.Logger.Info("parsed document",
				zap.String("document", doc.Name),
				zap.String("candidate", record.Name),
				zap.Int("skills", len(record.Skills)),
				zap.Int("projects", len(record.Projects)),
				zap.Int("work_entries", len(record.WorkHistory)),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// MatchBatch scores every candidate against the profile concurrently
// under the worker bound. The profile is validated exactly once before
// any scoring fans out; an invalid profile fails the whole batch.
func MatchBatch(ctx context.Context, profile *types.JobProfile, candidates []*types.CandidateRecord, lex lexicon.Lexicons, opts Options) ([]*types.MatchResult, error) {
	opts = opts.normalize()

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("match batch: %w", err)
	}
	scorer := matching.NewScorer(lex)
	if opts.Coefficients != nil {
		scorer = scorer.WithCoefficients(*opts.Coefficients)
	}

	results := make([]*types.MatchResult, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result, err := scorer.Score(candidate, profile)
			if err != nil {
				return err
			}
			results[i] = result
			opts.Logger.Info("scored candidate",
				zap.String("candidate", candidate.Name),
				zap.Int("total_score", result.TotalScore),
				zap.Bool("meets_threshold", result.MeetsThreshold(profile)),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
