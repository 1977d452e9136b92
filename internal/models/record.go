package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RecordStatusGenerated = "generated"
	RecordStatusArchived  = "archived"
)

// ContractRecord indexes one generation. The snapshot file on disk stays the
// replay source; Snapshot here is a copy for lookups.
type ContractRecord struct {
	ID             string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	BaseName       string         `gorm:"type:varchar(255);not null;index" json:"base_name"`
	Version        int            `gorm:"not null" json:"version"`
	Artist         string         `gorm:"type:varchar(255);index" json:"artist"`
	EventDate      string         `gorm:"type:varchar(32)" json:"event_date"`
	DocumentPath   string         `gorm:"type:text;not null" json:"document_path"`
	SnapshotPath   string         `gorm:"type:text;not null" json:"snapshot_path"`
	PDFPath        string         `gorm:"type:text" json:"pdf_path,omitempty"`
	ArchiveObjects datatypes.JSON `gorm:"type:json" json:"archive_objects,omitempty"`
	Snapshot       datatypes.JSON `gorm:"type:json" json:"snapshot"`
	Status         string         `gorm:"type:varchar(32);default:'generated'" json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ContractRecord) TableName() string {
	return "contract_records"
}
