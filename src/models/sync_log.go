package models

import "time"

type SyncStatus string

const (
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusError   SyncStatus = "error"
)

// SyncLog is the audit row written once per sync pass.
type SyncLog struct {
	ID            int        `db:"id" json:"id"`
	SyncDate      time.Time  `db:"sync_date" json:"sync_date"`
	Source        string     `db:"source" json:"source"`
	Status        SyncStatus `db:"status" json:"status"`
	RecordsSynced *int       `db:"records_synced" json:"records_synced"`
	ErrorMessage  *string    `db:"error_message" json:"error_message"`
}
