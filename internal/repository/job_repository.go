package repository

import (
	"time"

	"demandletter/internal/model"
	"gorm.io/gorm"
)

// JobFilter narrows ListJobs at the store layer so history queries never load
// the whole table into memory.
type JobFilter struct {
	Status   string
	Query    string // filename substring, matches txt/csv/docx names
	From     time.Time
	To       time.Time
	Sort     string // "oldest" for ascending, anything else is newest-first
	Page     int
	PageSize int
}

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

func (r *JobRepository) CreateJob(job *model.Job) error {
	job.Status = model.StatusProcessing
	job.UploadTimestamp = time.Now()
	return r.db.Create(job).Error
}

// CompleteJob attaches the artifact and marks the job completed. The status
// guard makes a second terminal write (duplicate webhook callback) a no-op.
func (r *JobRepository) CompleteJob(id uint, docxName string, docxContent []byte) error {
	return r.db.Model(&model.Job{}).
		Where("id = ? AND status = ?", id, model.StatusProcessing).
		Updates(map[string]any{
			"docx_filename": docxName,
			"docx_content":  docxContent,
			"status":        model.StatusCompleted,
		}).Error
}

// FailJob records the dispatch failure. No-op if the job is already terminal.
func (r *JobRepository) FailJob(id uint, reason string) error {
	return r.db.Model(&model.Job{}).
		Where("id = ? AND status = ?", id, model.StatusProcessing).
		Updates(map[string]any{
			"failure_reason": reason,
			"status":         model.StatusFailed,
		}).Error
}

func (r *JobRepository) FindJobByID(id uint) (*model.Job, error) {
	var job model.Job
	err := r.db.First(&job, "id = ?", id).Error
	return &job, err
}

// ListJobs returns matching rows (content columns excluded) plus the total
// match count for pagination.
func (r *JobRepository) ListJobs(filter JobFilter) ([]model.Job, int64, error) {
	filtered := func() *gorm.DB {
		q := r.db.Model(&model.Job{})
		if filter.Status != "" {
			q = q.Where("status = ?", filter.Status)
		}
		if filter.Query != "" {
			like := "%" + filter.Query + "%"
			q = q.Where("txt_filename LIKE ? OR csv_filename LIKE ? OR docx_filename LIKE ?", like, like, like)
		}
		if !filter.From.IsZero() {
			q = q.Where("upload_timestamp >= ?", filter.From)
		}
		if !filter.To.IsZero() {
			q = q.Where("upload_timestamp <= ?", filter.To)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "upload_timestamp DESC, id DESC"
	if filter.Sort == "oldest" {
		order = "upload_timestamp ASC, id ASC"
	}
	q := filtered().
		Select("id", "txt_filename", "csv_filename", "docx_filename", "upload_timestamp", "status").
		Order(order)

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		q = q.Limit(filter.PageSize).Offset((page - 1) * filter.PageSize)
	}

	var jobs []model.Job
	err := q.Find(&jobs).Error
	return jobs, total, err
}

// CountByStatus aggregates job counts for the history dashboard. Statuses with
// no rows are reported as zero.
func (r *JobRepository) CountByStatus() (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.Model(&model.Job{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[string]int64{
		model.StatusProcessing: 0,
		model.StatusCompleted:  0,
		model.StatusFailed:     0,
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
