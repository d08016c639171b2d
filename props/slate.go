package props

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"projection-engine/models"
	"projection-engine/projection"
)

// Store persists slate runs and their projections, and reads them back
// for runs that are no longer in memory. Load methods report a missing
// run by wrapping projection.ErrNotFound. A nil Store skips
// persistence, which is how most tests run.
type Store interface {
	CreateRun(ctx context.Context, runID string, totalProps int) error
	SaveProjection(ctx context.Context, runID string, result PropResult) error
	FinishRun(ctx context.Context, runID, status string) error
	LoadRun(ctx context.Context, runID string) (RunStatus, error)
	LoadResults(ctx context.Context, runID string) ([]PropResult, error)
}

// PropResult is one projected prop within a slate run.
type PropResult struct {
	Prop       Prop                     `json:"prop"`
	Projection *models.ProjectionResult `json:"projection,omitempty"`
	Edge       *Edge                    `json:"edge,omitempty"`
	Error      string                   `json:"error,omitempty"`
}

// RunStatus tracks the progress of one slate run.
type RunStatus struct {
	RunID         string       `json:"run_id"`
	TotalProps    int          `json:"total_props"`
	Completed     int          `json:"completed"`
	Status        string       `json:"status"`
	StartTime     time.Time    `json:"start_time"`
	CompletedTime *time.Time   `json:"completed_time,omitempty"`
	Results       []PropResult `json:"results,omitempty"`
}

// SlateEngine fans a day's props out over a worker pool, projecting
// each one and persisting the results.
type SlateEngine struct {
	engine  *projection.Engine
	store   Store
	workers int

	mu         sync.RWMutex
	activeRuns map[string]*RunStatus
}

func NewSlateEngine(engine *projection.Engine, store Store, workers int) *SlateEngine {
	if workers < 1 {
		workers = 1
	}
	return &SlateEngine{
		engine:     engine,
		store:      store,
		workers:    workers,
		activeRuns: make(map[string]*RunStatus),
	}
}

// Start registers a new run for the given props and launches it in the
// background, returning the run ID immediately.
func (se *SlateEngine) Start(props []Prop) (string, error) {
	if len(props) == 0 {
		return "", errors.New("slate: no props submitted")
	}

	runID := uuid.New().String()
	se.mu.Lock()
	se.activeRuns[runID] = &RunStatus{
		RunID:      runID,
		TotalProps: len(props),
		Status:     "running",
		StartTime:  time.Now(),
		Results:    make([]PropResult, 0, len(props)),
	}
	se.mu.Unlock()

	go se.run(runID, props)
	return runID, nil
}

// Status returns a snapshot of a run's progress. Runs no longer in
// memory, such as after a restart, are read back from the store; a run
// known to neither reports projection.ErrNotFound.
func (se *SlateEngine) Status(ctx context.Context, runID string) (RunStatus, error) {
	se.mu.RLock()
	status, ok := se.activeRuns[runID]
	if ok {
		snapshot := *status
		se.mu.RUnlock()
		return snapshot, nil
	}
	se.mu.RUnlock()

	if se.store == nil {
		return RunStatus{}, fmt.Errorf("run %s: %w", runID, projection.ErrNotFound)
	}
	return se.store.LoadRun(ctx, runID)
}

// Results returns a completed run's projected props, preferring the
// in-memory copy and falling back to the store.
func (se *SlateEngine) Results(ctx context.Context, runID string) ([]PropResult, error) {
	se.mu.RLock()
	status, ok := se.activeRuns[runID]
	if ok && len(status.Results) > 0 {
		results := make([]PropResult, len(status.Results))
		copy(results, status.Results)
		se.mu.RUnlock()
		return results, nil
	}
	se.mu.RUnlock()

	if se.store == nil {
		if ok {
			return nil, nil
		}
		return nil, fmt.Errorf("run %s: %w", runID, projection.ErrNotFound)
	}
	return se.store.LoadResults(ctx, runID)
}

func (se *SlateEngine) run(runID string, props []Prop) {
	ctx := context.Background()
	start := time.Now()

	if se.store != nil {
		if err := se.store.CreateRun(ctx, runID, len(props)); err != nil {
			log.Printf("slate %s: create run: %v", runID, err)
		}
	}

	jobs := make(chan Prop, len(props))
	resultsChan := make(chan PropResult, len(props))
	var wg sync.WaitGroup

	for i := 0; i < se.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for prop := range jobs {
				resultsChan <- se.project(ctx, prop)
			}
		}()
	}

	for _, p := range props {
		jobs <- p
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var results []PropResult
	var failures int
	for result := range resultsChan {
		results = append(results, result)
		if result.Error != "" {
			failures++
		}

		if se.store != nil {
			if err := se.store.SaveProjection(ctx, runID, result); err != nil {
				log.Printf("slate %s: save projection for %s: %v", runID, result.Prop.Pitcher, err)
			}
		}

		se.mu.Lock()
		if status, ok := se.activeRuns[runID]; ok {
			status.Completed++
		}
		se.mu.Unlock()
	}

	finalStatus := "completed"
	if failures == len(props) {
		finalStatus = "error"
	}

	se.mu.Lock()
	if status, ok := se.activeRuns[runID]; ok {
		status.Status = finalStatus
		completedTime := time.Now()
		status.CompletedTime = &completedTime
		status.Results = results
	}
	se.mu.Unlock()

	if se.store != nil {
		if err := se.store.FinishRun(ctx, runID, finalStatus); err != nil {
			log.Printf("slate %s: finish run: %v", runID, err)
		}
	}

	log.Printf("Slate run %s %s: %d props (%d failed) in %v",
		runID, finalStatus, len(props), failures, time.Since(start))
}

func (se *SlateEngine) project(ctx context.Context, prop Prop) PropResult {
	result := PropResult{Prop: prop}

	proj, err := se.engine.Project(ctx, prop.Request)
	if err != nil {
		result.Error = fmt.Sprintf("projecting %s: %v", prop.Pitcher, err)
		log.Printf("slate: %s", result.Error)
		return result
	}

	result.Projection = proj
	edge := CalculateEdge(proj.Mean, prop.Line)
	result.Edge = &edge
	return result
}
