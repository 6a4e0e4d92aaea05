package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImportTaskStatus string

const (
	ImportQueued     ImportTaskStatus = "queued"
	ImportProcessing ImportTaskStatus = "processing"
	ImportCompleted  ImportTaskStatus = "completed"
	ImportFailed     ImportTaskStatus = "failed"
)

type ImportTask struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Status        ImportTaskStatus   `bson:"status" json:"status"`
	SpreadsheetID string             `bson:"spreadsheet_id" json:"spreadsheetId"`
	ImportedCount int                `bson:"imported_count" json:"importedCount"`
	SkippedRows   int                `bson:"skipped_rows" json:"skippedRows"`
	ErrorMessage  string             `bson:"error_message,omitempty" json:"errorMessage,omitempty"`
	RetryCount    int                `bson:"retry_count" json:"retryCount"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}
