package usecase

import (
	"errors"
	"fmt"
	"log"

	"demandletter/internal/config"
	"demandletter/internal/dto"
	"demandletter/internal/model"
	"demandletter/internal/repository"
	"demandletter/internal/response"
	"demandletter/internal/service"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrJobNotFound = errors.New("job not found")
	ErrJobNotReady = errors.New("document is not ready yet")
)

type LetterUsecase struct {
	jobRepo   *repository.JobRepository
	generator service.GeneratorServiceInterface

	// dispatchSlots bounds the number of in-flight webhook calls. The calls
	// have no timeout and no cancellation, so without a bound a slow webhook
	// would pile up goroutines without limit.
	dispatchSlots chan struct{}
}

func NewLetterUsecase(jobRepo *repository.JobRepository, generator service.GeneratorServiceInterface) *LetterUsecase {
	workers := config.LoadWebhookConfig().DispatchWorkers
	return &LetterUsecase{
		jobRepo:       jobRepo,
		generator:     generator,
		dispatchSlots: make(chan struct{}, workers),
	}
}

// Submit persists the upload and schedules the webhook dispatch. It returns
// the job id as soon as the row is committed; the caller never waits on the
// external call.
func (uc *LetterUsecase) Submit(job model.Job) (uint, error) {
	if err := uc.jobRepo.CreateJob(&job); err != nil {
		return 0, err
	}

	go uc.dispatch(job.ID, job.TxtFilename, job.TxtContent, job.CsvFilename, job.CsvContent)

	return job.ID, nil
}

// dispatch runs detached from the upload request. Exactly one terminal write
// happens per job; if the process dies mid-call the job stays "processing"
// forever, which is a known limitation rather than something we retry.
func (uc *LetterUsecase) dispatch(id uint, txtName, txtContent, csvName, csvContent string) {
	uc.dispatchSlots <- struct{}{}
	defer func() { <-uc.dispatchSlots }()

	docx, err := uc.generator.Generate(txtName, txtContent, csvName, csvContent)
	if err != nil {
		log.Printf("job %d: dispatch failed: %v", id, err)
		if dbErr := uc.jobRepo.FailJob(id, err.Error()); dbErr != nil {
			log.Printf("job %d: could not record failure: %v", id, dbErr)
		}
		return
	}

	docxName := fmt.Sprintf("demand_letter_%d_%s.docx", id, uuid.NewString()[:8])
	if err := uc.jobRepo.CompleteJob(id, docxName, docx); err != nil {
		log.Printf("job %d: could not store document: %v", id, err)
		// still try to reach a terminal state so pollers are not stuck on
		// "processing" for a job that will never deliver
		if dbErr := uc.jobRepo.FailJob(id, "could not store generated document"); dbErr != nil {
			log.Printf("job %d: could not record failure: %v", id, dbErr)
		}
	}
}

func (uc *LetterUsecase) Status(id uint) (*dto.JobStatusDTO, error) {
	job, err := uc.jobRepo.FindJobByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	return &dto.JobStatusDTO{
		ID:       job.ID,
		Status:   job.Status,
		Filename: job.DocxFilename,
		Reason:   job.FailureReason,
	}, nil
}

// Artifact returns the finished document. A job still processing is reported
// as not ready; failed and unknown jobs both look like not found, matching
// what the download endpoint promises.
func (uc *LetterUsecase) Artifact(id uint) (string, []byte, error) {
	job, err := uc.jobRepo.FindJobByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrJobNotFound
		}
		return "", nil, err
	}

	switch job.Status {
	case model.StatusProcessing:
		return "", nil, ErrJobNotReady
	case model.StatusCompleted:
		return job.DocxFilename, job.DocxContent, nil
	default:
		return "", nil, ErrJobNotFound
	}
}

func (uc *LetterUsecase) History(filter repository.JobFilter) ([]dto.JobSummaryDTO, map[string]int64, *response.Pagination, error) {
	jobs, total, err := uc.jobRepo.ListJobs(filter)
	if err != nil {
		return nil, nil, nil, err
	}

	counts, err := uc.jobRepo.CountByStatus()
	if err != nil {
		return nil, nil, nil, err
	}

	summaries := make([]dto.JobSummaryDTO, 0, len(jobs))
	for _, job := range jobs {
		summaries = append(summaries, dto.JobSummaryDTO{
			ID:              job.ID,
			TxtFilename:     job.TxtFilename,
			CsvFilename:     job.CsvFilename,
			DocxFilename:    job.DocxFilename,
			UploadTimestamp: job.UploadTimestamp,
			Status:          job.Status,
		})
	}

	return summaries, counts, response.NewPagination(filter.Page, filter.PageSize, total), nil
}
