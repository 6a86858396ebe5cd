// Package catalog persists summaries of decoded projects to a SQLite
// database so batch tooling can inventory a project collection without
// re-reading every file.
package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/s95rob/ReaParser/internal/types"
)

const errStoreNil = "catalog store is not initialized"

// ProjectRecord is one cataloged project. Records are keyed by the file's
// source path, so re-scanning a file replaces its earlier record.
type ProjectRecord struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name         string    `gorm:"index:idx_project_name" json:"name"`
	SourcePath   string    `gorm:"uniqueIndex:idx_project_path" json:"source_path"`
	Major        int       `json:"major"`
	Minor        int       `json:"minor"`
	Platform     string    `json:"platform"`
	SampleRate   int       `json:"sample_rate"`
	BPM          float64   `json:"bpm"`
	TimeSigBeats int       `json:"time_sig_beats"`
	TimeSigBars  int       `json:"time_sig_bars"`
	TrackCount   int       `json:"track_count"`
	ItemCount    int       `json:"item_count"`
	FXCount      int       `json:"fx_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// TrackRecord is one real track of a cataloged project. The synthetic
// master track is folded into the project record instead.
type TrackRecord struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID string  `gorm:"type:varchar(36);index:idx_track_project" json:"project_id"`
	NumericID int     `json:"numeric_id"`
	GUID      string  `json:"guid"`
	Name      string  `json:"name"`
	Volume    float64 `json:"volume"`
	Pan       float64 `json:"pan"`
	Muted     bool    `json:"muted"`
	ItemCount int     `json:"item_count"`
	FXCount   int     `json:"fx_count"`
}

// Store is a SQLite-backed project catalog.
type Store struct {
	DB *gorm.DB
	db *sql.DB
}

// Open opens the catalog database at path, creating the file and its
// parent directory on first use and migrating the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing underlying database: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&ProjectRecord{}, &TrackRecord{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrating catalog schema: %w", err)
	}

	return &Store{DB: db, db: sqlDB}, nil
}

// Close releases the database connection. It is safe to call on a nil or
// already closed store.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Put stores the summary of project, keyed by its source path. A project
// already cataloged under the same path is replaced along with its track
// records. The record's ID is returned.
func (s *Store) Put(project *types.Project) (string, error) {
	if s == nil || s.DB == nil {
		return "", errors.New(errStoreNil)
	}
	if project == nil {
		return "", errors.New("nothing to store: project is nil")
	}

	rec := summarize(project)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing ProjectRecord
		err := tx.Where("source_path = ?", rec.SourcePath).First(&existing).Error
		switch {
		case err == nil:
			rec.ID = existing.ID
			rec.CreatedAt = existing.CreatedAt
			if err := tx.Where("project_id = ?", existing.ID).Delete(&TrackRecord{}).Error; err != nil {
				return err
			}
			if err := tx.Save(&rec).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			rec.ID = uuid.NewString()
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
		default:
			return err
		}

		tracks := trackRecords(project, rec.ID)
		if len(tracks) == 0 {
			return nil
		}
		return tx.Create(&tracks).Error
	})
	if err != nil {
		return "", fmt.Errorf("storing project %q: %w", project.SourcePath, err)
	}

	return rec.ID, nil
}

// Projects returns every cataloged project ordered by name.
func (s *Store) Projects() ([]ProjectRecord, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New(errStoreNil)
	}

	var records []ProjectRecord
	if err := s.DB.Order("name").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return records, nil
}

// ProjectByPath returns the cataloged project whose source path is path.
// The error wraps gorm.ErrRecordNotFound when no such project exists.
func (s *Store) ProjectByPath(path string) (*ProjectRecord, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New(errStoreNil)
	}

	var record ProjectRecord
	if err := s.DB.Where("source_path = ?", path).First(&record).Error; err != nil {
		return nil, fmt.Errorf("querying project %q: %w", path, err)
	}
	return &record, nil
}

// Tracks returns the track records of the project with the given ID in
// file order.
func (s *Store) Tracks(projectID string) ([]TrackRecord, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New(errStoreNil)
	}

	var records []TrackRecord
	err := s.DB.Where("project_id = ?", projectID).Order("numeric_id").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("listing tracks for project %s: %w", projectID, err)
	}
	return records, nil
}

// summarize flattens a decoded project into its catalog row. Counts cover
// the real tracks only.
func summarize(project *types.Project) ProjectRecord {
	rec := ProjectRecord{
		Name:         project.Name,
		SourcePath:   project.SourcePath,
		Major:        project.Version.Major,
		Minor:        project.Version.Minor,
		Platform:     project.Version.Platform.String(),
		SampleRate:   project.SampleRate,
		BPM:          project.Tempo.BPM,
		TimeSigBeats: project.Tempo.Beats,
		TimeSigBars:  project.Tempo.Bars,
	}

	for _, track := range project.Tracks {
		if track.IsMaster() {
			continue
		}
		rec.TrackCount++
		rec.ItemCount += len(track.MediaItems)
		rec.FXCount += len(track.FXChain)
	}

	return rec
}

func trackRecords(project *types.Project, projectID string) []TrackRecord {
	var records []TrackRecord
	for _, track := range project.Tracks {
		if track.IsMaster() {
			continue
		}
		records = append(records, TrackRecord{
			ProjectID: projectID,
			NumericID: track.NumericID,
			GUID:      track.GUID,
			Name:      track.Name,
			Volume:    track.Volume,
			Pan:       track.Pan,
			Muted:     track.Muted,
			ItemCount: len(track.MediaItems),
			FXCount:   len(track.FXChain),
		})
	}
	return records
}
