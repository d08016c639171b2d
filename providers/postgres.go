package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"projection-engine/models"
	"projection-engine/projection"
	"projection-engine/props"
)

// Store persists slate runs and their projections to Postgres. It
// implements props.Store.
type Store struct {
	db *pgxpool.Pool
}

// Connect opens a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &Store{db: pool}, nil
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{db: pool}
}

func (s *Store) Close() {
	s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// CreateRun records a new slate run in the pending state.
func (s *Store) CreateRun(ctx context.Context, runID string, totalProps int) error {
	query := `
		INSERT INTO projection_runs (id, total_props, status, created_at, updated_at)
		VALUES ($1, $2, 'running', NOW(), NOW())
	`
	if _, err := s.db.Exec(ctx, query, runID, totalProps); err != nil {
		return fmt.Errorf("creating run %s: %w", runID, err)
	}
	return nil
}

// SaveProjection stores one projected prop. The full projection and
// modifier breakdown go in as JSONB so downstream analysis can query
// into them.
func (s *Store) SaveProjection(ctx context.Context, runID string, result props.PropResult) error {
	var projectionJSON []byte
	var projected, edgePct float64
	var recommendation string

	if result.Projection != nil {
		var err error
		projectionJSON, err = json.Marshal(result.Projection)
		if err != nil {
			return fmt.Errorf("encoding projection for %s: %w", result.Prop.Pitcher, err)
		}
		projected = result.Projection.Mean
	}
	if result.Edge != nil {
		edgePct = result.Edge.EdgePct
		recommendation = string(result.Edge.Recommendation)
	}

	query := `
		INSERT INTO projections (
			id, run_id, pitcher, opponent, line, projected_mean,
			edge_pct, recommendation, detail, error, created_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW()
		)
	`
	_, err := s.db.Exec(ctx, query,
		runID,
		result.Prop.Pitcher,
		result.Prop.Opponent,
		result.Prop.Line,
		projected,
		edgePct,
		recommendation,
		projectionJSON,
		result.Error,
	)
	if err != nil {
		return fmt.Errorf("saving projection for %s: %w", result.Prop.Pitcher, err)
	}
	return nil
}

// LoadRun reads a run's status back from the database, for runs no
// longer held in memory. A missing run wraps projection.ErrNotFound.
func (s *Store) LoadRun(ctx context.Context, runID string) (props.RunStatus, error) {
	var status props.RunStatus
	var completedAt *time.Time

	query := `
		SELECT id, total_props, status, created_at, completed_at
		FROM projection_runs
		WHERE id = $1
	`
	err := s.db.QueryRow(ctx, query, runID).Scan(
		&status.RunID, &status.TotalProps, &status.Status,
		&status.StartTime, &completedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return props.RunStatus{}, fmt.Errorf("run %s: %w", runID, projection.ErrNotFound)
	}
	if err != nil {
		return props.RunStatus{}, fmt.Errorf("loading run %s: %w", runID, err)
	}
	status.CompletedTime = completedAt

	countQuery := `SELECT COUNT(*) FROM projections WHERE run_id = $1`
	if err := s.db.QueryRow(ctx, countQuery, runID).Scan(&status.Completed); err != nil {
		return props.RunStatus{}, fmt.Errorf("counting projections for %s: %w", runID, err)
	}

	return status, nil
}

// LoadResults reads a run's saved projections back from the database.
func (s *Store) LoadResults(ctx context.Context, runID string) ([]props.PropResult, error) {
	var exists bool
	existsQuery := `SELECT EXISTS(SELECT 1 FROM projection_runs WHERE id = $1)`
	if err := s.db.QueryRow(ctx, existsQuery, runID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("checking run %s: %w", runID, err)
	}
	if !exists {
		return nil, fmt.Errorf("run %s: %w", runID, projection.ErrNotFound)
	}

	query := `
		SELECT pitcher, opponent, line, edge_pct, recommendation, detail, error
		FROM projections
		WHERE run_id = $1
		ORDER BY created_at
	`
	rows, err := s.db.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("loading projections for %s: %w", runID, err)
	}
	defer rows.Close()

	var results []props.PropResult
	for rows.Next() {
		var result props.PropResult
		var edgePct float64
		var recommendation, errStr string
		var detail []byte

		if err := rows.Scan(&result.Prop.Pitcher, &result.Prop.Opponent, &result.Prop.Line,
			&edgePct, &recommendation, &detail, &errStr); err != nil {
			return nil, fmt.Errorf("scanning projection for %s: %w", runID, err)
		}
		result.Error = errStr

		if len(detail) > 0 {
			var proj models.ProjectionResult
			if err := json.Unmarshal(detail, &proj); err != nil {
				return nil, fmt.Errorf("decoding projection detail for %s: %w", runID, err)
			}
			result.Projection = &proj
			result.Edge = &props.Edge{
				Line:           result.Prop.Line,
				Projected:      proj.Mean,
				EdgePct:        edgePct,
				Recommendation: props.Recommendation(recommendation),
			}
		}

		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading projections for %s: %w", runID, err)
	}

	return results, nil
}

// FinishRun marks a run completed or errored.
func (s *Store) FinishRun(ctx context.Context, runID, status string) error {
	query := `
		UPDATE projection_runs
		SET status = $2, completed_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`
	if _, err := s.db.Exec(ctx, query, runID, status); err != nil {
		return fmt.Errorf("finishing run %s: %w", runID, err)
	}
	return nil
}
