package model

import (
	"time"
)

const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Job is one upload's lifecycle record: created as "processing", moved
// exactly once to "completed" (artifact attached) or "failed" (reason stored).
type Job struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TxtFilename     string    `gorm:"type:varchar(255)" json:"txt_filename"`
	CsvFilename     string    `gorm:"type:varchar(255)" json:"csv_filename"`
	TxtContent      string    `gorm:"type:text" json:"-"`
	CsvContent      string    `gorm:"type:text" json:"-"`
	DocxFilename    string    `gorm:"type:varchar(255)" json:"docx_filename"`
	DocxContent     []byte    `gorm:"type:blob" json:"-"`
	FailureReason   string    `gorm:"type:text" json:"failure_reason,omitempty"`
	UploadTimestamp time.Time `gorm:"autoCreateTime" json:"upload_timestamp"`
	Status          string    `gorm:"type:varchar(50);default:processing" json:"status"`
}

func (j *Job) TableName() string {
	return "files"
}
