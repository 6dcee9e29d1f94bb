package dto

import (
	"time"
)

// JobStatusDTO is the polling payload: status plus whatever the client needs
// next (download filename on success, reason on failure).
type JobStatusDTO struct {
	ID       uint   `json:"id"`
	Status   string `json:"status"`
	Filename string `json:"filename,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// JobSummaryDTO is a history row. Content columns are deliberately excluded
// so listing never drags blobs out of the store.
type JobSummaryDTO struct {
	ID              uint      `json:"id"`
	TxtFilename     string    `json:"txt_filename"`
	CsvFilename     string    `json:"csv_filename"`
	DocxFilename    string    `json:"docx_filename,omitempty"`
	UploadTimestamp time.Time `json:"upload_timestamp"`
	Status          string    `json:"status"`
}
