package fetcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/shadowbane/kayak-forecast-map/pkg/models"
	"github.com/shadowbane/kayak-forecast-map/pkg/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrRejected is returned when a provider's output fails validation. The
// existing forecast file is left untouched.
var ErrRejected = errors.New("forecast output rejected")

// Ingestor fetches a forecast document, validates it and replaces the forecast file
type Ingestor struct {
	provider ForecastProvider
	outPath  string
	db       *gorm.DB
}

// NewIngestor creates an ingestor. db may be nil, in which case runs are not recorded.
func NewIngestor(provider ForecastProvider, outPath string, db *gorm.DB) *Ingestor {
	return &Ingestor{
		provider: provider,
		outPath:  outPath,
		db:       db,
	}
}

// Run performs one fetch-validate-write cycle and returns the recorded run
func (i *Ingestor) Run(ctx context.Context) (*models.ForecastRun, error) {
	run := &models.ForecastRun{
		Provider:   i.provider.Name(),
		OutputPath: i.outPath,
	}

	zap.S().Infof("Fetching forecast from %s...", run.Provider)

	raw, err := i.provider.Fetch(ctx)
	if err != nil {
		run.Status = models.RunStatusFailed
		run.Error = err.Error()
		i.record(run)
		return run, fmt.Errorf("failed to fetch forecast from %s: %w", run.Provider, err)
	}
	run.RawOutput = string(raw)

	if err := store.Validate(raw); err != nil {
		run.Status = models.RunStatusRejected
		run.Error = err.Error()
		i.record(run)
		zap.S().Errorf("Rejected output from %s: %v", run.Provider, err)
		return run, fmt.Errorf("%w: %v", ErrRejected, err)
	}

	doc, err := store.Decode(raw)
	if err != nil {
		run.Status = models.RunStatusRejected
		run.Error = err.Error()
		i.record(run)
		return run, fmt.Errorf("%w: %v", ErrRejected, err)
	}
	run.ReportGeneratedFor = doc.ReportGeneratedFor
	run.LocationCount = len(doc.Locations)

	if err := store.Write(i.outPath, doc); err != nil {
		run.Status = models.RunStatusFailed
		run.Error = err.Error()
		i.record(run)
		return run, err
	}

	run.Status = models.RunStatusSaved
	i.record(run)

	zap.S().Infof("Saved %d locations for %s to %s", run.LocationCount, run.ReportGeneratedFor, i.outPath)
	return run, nil
}

func (i *Ingestor) record(run *models.ForecastRun) {
	if i.db == nil {
		return
	}
	if err := i.db.Create(run).Error; err != nil {
		zap.S().Errorf("Failed to record forecast run: %v", err)
	}
}
