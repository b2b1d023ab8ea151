// Package store provides PostgreSQL persistence for candidate records
// and match results.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/cv-screener/internal/types"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// SaveCandidate inserts a parsed candidate record. A zero ID is
// assigned before insert and set on the record.
func (s *Store) SaveCandidate(ctx context.Context, record *types.CandidateRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal candidate: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO candidates (id, name, email, record)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET name = $2, email = $3, record = $4, updated_at = NOW()`,
		record.ID, record.Name, record.Email, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save candidate %s: %w", record.ID, err)
	}
	return nil
}

// GetCandidate retrieves a candidate record by ID. Returns (nil, nil)
// when no row exists.
func (s *Store) GetCandidate(ctx context.Context, id uuid.UUID) (*types.CandidateRecord, error) {
	var jsonBytes []byte
	err := s.pool.QueryRow(ctx,
		`SELECT record FROM candidates WHERE id = $1`, id,
	).Scan(&jsonBytes)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate %s: %w", id, err)
	}

	var record types.CandidateRecord
	if err := json.Unmarshal(jsonBytes, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate %s: %w", id, err)
	}
	return &record, nil
}

// SaveJobProfile inserts or updates a job profile. A zero ID is
// assigned before insert and set on the profile.
func (s *Store) SaveJobProfile(ctx context.Context, profile *types.JobProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}

	jsonBytes, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal job profile: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO job_profiles (id, title, profile)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET title = $2, profile = $3, updated_at = NOW()`,
		profile.ID, profile.Title, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save job profile %s: %w", profile.ID, err)
	}
	return nil
}

// UpsertMatchResult stores a scored result. The (candidate_id, jd_id)
// pair is the unique key: re-matching the same pair overwrites the
// previous row instead of appending a duplicate.
func (s *Store) UpsertMatchResult(ctx context.Context, result *types.MatchResult) error {
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal match result: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO match_results (candidate_id, jd_id, total_score, is_shortlisted, is_rejected, result)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (candidate_id, jd_id) DO UPDATE
		 SET total_score = $3, is_shortlisted = $4, is_rejected = $5, result = $6, updated_at = NOW()`,
		result.CandidateID, result.JDID, result.TotalScore,
		result.IsShortlisted, result.IsRejected, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert match result %s/%s: %w", result.CandidateID, result.JDID, err)
	}
	return nil
}

// GetMatchResult retrieves one result by its (candidate, job) key.
// Returns (nil, nil) when no row exists.
func (s *Store) GetMatchResult(ctx context.Context, candidateID, jdID uuid.UUID) (*types.MatchResult, error) {
	var jsonBytes []byte
	err := s.pool.QueryRow(ctx,
		`SELECT result FROM match_results WHERE candidate_id = $1 AND jd_id = $2`,
		candidateID, jdID,
	).Scan(&jsonBytes)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match result %s/%s: %w", candidateID, jdID, err)
	}

	var result types.MatchResult
	if err := json.Unmarshal(jsonBytes, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match result: %w", err)
	}
	return &result, nil
}

// SetShortlisted flags a stored result as shortlisted and clears any
// reject flag, mirroring MatchResult.Shortlist.
func (s *Store) SetShortlisted(ctx context.Context, candidateID, jdID uuid.UUID) error {
	return s.setFlags(ctx, candidateID, jdID, true, false)
}

// SetRejected flags a stored result as rejected and clears any
// shortlist flag, mirroring MatchResult.Reject.
func (s *Store) SetRejected(ctx context.Context, candidateID, jdID uuid.UUID) error {
	return s.setFlags(ctx, candidateID, jdID, false, true)
}

func (s *Store) setFlags(ctx context.Context, candidateID, jdID uuid.UUID, shortlisted, rejected bool) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE match_results
		 SET is_shortlisted = $3, is_rejected = $4,
		     result = jsonb_set(jsonb_set(result, '{is_shortlisted}', to_jsonb($3::bool)), '{is_rejected}', to_jsonb($4::bool)),
		     updated_at = NOW()
		 WHERE candidate_id = $1 AND jd_id = $2`,
		candidateID, jdID, shortlisted, rejected,
	)
	if err != nil {
		return fmt.Errorf("failed to update match flags %s/%s: %w", candidateID, jdID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("match result not found: %s/%s", candidateID, jdID)
	}
	return nil
}

// ListMatches retrieves all results for a job ordered by total score
// descending, highest scoring candidates first.
func (s *Store) ListMatches(ctx context.Context, jdID uuid.UUID, limit int) ([]types.MatchResult, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx,
		`SELECT result FROM match_results
		 WHERE jd_id = $1 ORDER BY total_score DESC LIMIT $2`,
		jdID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for %s: %w", jdID, err)
	}
	defer rows.Close()

	var results []types.MatchResult
	for rows.Next() {
		var jsonBytes []byte
		if err := rows.Scan(&jsonBytes); err != nil {
			return nil, fmt.Errorf("failed to scan match result: %w", err)
		}
		var result types.MatchResult
		if err := json.Unmarshal(jsonBytes, &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match result: %w", err)
		}
		results = append(results, result)
	}
	return results, nil
}
