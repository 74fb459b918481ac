package models

import (
	"time"

	"github.com/shadowbane/weather-alert/pkg/helpers"

	"gorm.io/gorm"
)

// RunStatus is the outcome of one ingestion run
type RunStatus string

const (
	RunStatusSaved    RunStatus = "saved"
	RunStatusRejected RunStatus = "rejected"
	RunStatusFailed   RunStatus = "failed"
)

// ForecastRun records every attempt to regenerate the forecast document
type ForecastRun struct {
	ID                 string    `json:"id" gorm:"type:char(26);primaryKey;autoIncrement:false"`
	Provider           string    `json:"provider" gorm:"index;type:varchar(32)"`
	Status             RunStatus `json:"status" gorm:"index;type:varchar(16)"`
	ReportGeneratedFor string    `json:"report_generated_for" gorm:"type:varchar(255)"`
	LocationCount      int       `json:"location_count"`
	OutputPath         string    `json:"output_path" gorm:"type:text"`
	Error              string    `json:"error" gorm:"type:text"`
	RawOutput          string    `json:"-" gorm:"type:text"`
	CreatedAt          time.Time `json:"created_at" gorm:"type:timestamp"`
	UpdatedAt          time.Time `json:"updated_at" gorm:"type:timestamp"`
}

func (r *ForecastRun) TableName() string {
	return "forecast_runs"
}

// BeforeCreate will set a ULID rather than numeric ID.
func (r *ForecastRun) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = helpers.NewULID()
	}
	return nil
}
