package models

import (
	"encoding/json"
	"time"
)

type RawStudent struct {
	ID        int             `db:"id" json:"id"`
	StudentID string          `db:"student_id" json:"student_id"`
	LMSSource string          `db:"lms_source" json:"lms_source"`
	RawData   json.RawMessage `db:"raw_data" json:"raw_data"`
	SyncedAt  time.Time       `db:"synced_at" json:"synced_at"`
}
