// Package store persists pipeline run history using gorm over sqlite, so
// the HTTP API and CLI can list past runs without re-executing the pipeline.
package store

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"captionforge/pkg/logger"
)

// Run is one persisted pipeline invocation.
type Run struct {
	ID                  string `gorm:"primaryKey"`
	CreatedAt           time.Time
	InputHash           string
	SegmentsIn          int
	SegmentsModified    int
	WordChangeCount     int
	LLMUsed             bool
	SegmentsUpdated     int
	SpeakersIdentified  int
	NormalizationSplits int
	VTTBytes            int
	SRTBytes            int
	JSONBytes           int
	Status              string
	ErrorMessage        string `gorm:"size:1024"`
}

// Store wraps a gorm DB handle scoped to Run persistence.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if necessary) the sqlite database at path and
// migrates the Run schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// NewRun allocates a Run record with a fresh ID and the current time,
// without persisting it — callers fill in stats and call Save.
func NewRun() *Run {
	return &Run{ID: uuid.NewString(), CreatedAt: time.Now(), Status: "pending"}
}

// Save upserts run. A save failure is logged, never fatal to the caller —
// a run that can't be recorded is still a run that happened (spec.md §7).
func (s *Store) Save(run *Run) {
	if err := s.db.Save(run).Error; err != nil {
		logger.Error("store: save run failed", "run_id", run.ID, "error", err)
	}
}

// List returns the most recent runs, newest first, limited to limit rows.
func (s *Store) List(limit int) ([]Run, error) {
	var runs []Run
	if err := s.db.Order("created_at desc").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	return runs, nil
}

// Get returns a single run by ID.
func (s *Store) Get(id string) (*Run, error) {
	var run Run
	if err := s.db.First(&run, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("store: get run %q: %w", id, err)
	}
	return &run, nil
}
