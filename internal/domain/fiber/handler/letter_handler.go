package handler

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"demandletter/internal/middleware"
	"demandletter/internal/model"
	"demandletter/internal/repository"
	"demandletter/internal/usecase"
	"demandletter/internal/util"
	"github.com/gofiber/fiber/v2"
)

const (
	maxUploadBytes  = 16 * 1024 * 1024
	docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// errRejected marks requests whose error response has already been written.
// ErrorResponse itself returns the JSON write result, which is nil on success,
// so helpers that reject a request return this sentinel instead — otherwise
// the caller's error check never fires and the handler keeps going.
var errRejected = errors.New("request rejected")

func reject(c *fiber.Ctx, code int, message string, errs ...error) error {
	if err := util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    code,
		Message: message,
	}, errs...); err != nil {
		return err
	}
	return errRejected
}

// handled translates errRejected into a clean nil return so the rejection
// response written by reject is not overwritten downstream.
func handled(err error) error {
	if errors.Is(err, errRejected) {
		return nil
	}
	return err
}

type LetterHandler struct {
	uc *usecase.LetterUsecase
}

func NewLetterHandler(uc *usecase.LetterUsecase) *LetterHandler {
	return &LetterHandler{uc: uc}
}

func (h *LetterHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/upload", middleware.RateLimiter(10, 1*time.Minute), h.Upload)
	app.Get("/check_status/:id", h.Status)
	app.Get("/download/:id", h.Download)
	app.Get("/history", h.History)
}

func (h *LetterHandler) Upload(c *fiber.Ctx) error {
	txtName, txtContent, err := h.readUpload(c, "txt_file", ".txt")
	if err != nil {
		return handled(err)
	}

	csvName, csvContent, err := h.readUpload(c, "csv_file", ".csv")
	if err != nil {
		return handled(err)
	}

	if len(txtContent)+len(csvContent) > maxUploadBytes {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "combined file size is too large (max 16MB)",
		}, nil)
	}

	job := model.Job{
		TxtFilename: txtName,
		CsvFilename: csvName,
		TxtContent:  txtContent,
		CsvContent:  csvContent,
	}

	id, err := h.uc.Submit(job)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to submit upload",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success submit upload",
		Data:    fiber.Map{"file_id": id, "status": model.StatusProcessing},
	})
}

// readUpload pulls one multipart part into memory and validates it before any
// job row exists. Rejections surface as 400 with the offending field named.
func (h *LetterHandler) readUpload(c *fiber.Ctx, fieldName, wantExt string) (string, string, error) {
	file, err := c.FormFile(fieldName)
	if err != nil {
		return "", "", reject(c, fiber.StatusBadRequest,
			fmt.Sprintf("%s file is required", fieldName), err)
	}

	if file.Size == 0 {
		return "", "", reject(c, fiber.StatusBadRequest,
			fmt.Sprintf("%s file is empty", fieldName))
	}

	if file.Size > maxUploadBytes {
		return "", "", reject(c, fiber.StatusBadRequest,
			fmt.Sprintf("%s file size is too large (max 16MB)", fieldName))
	}

	if strings.ToLower(filepath.Ext(file.Filename)) != wantExt {
		return "", "", reject(c, fiber.StatusBadRequest,
			fmt.Sprintf("invalid %s file type, only %s files are allowed", fieldName, wantExt))
	}

	src, err := file.Open()
	if err != nil {
		return "", "", reject(c, fiber.StatusInternalServerError,
			fmt.Sprintf("cannot read %s file", fieldName), err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return "", "", reject(c, fiber.StatusInternalServerError,
			fmt.Sprintf("cannot read %s file", fieldName), err)
	}

	return filepath.Base(file.Filename), string(content), nil
}

func (h *LetterHandler) Status(c *fiber.Ctx) error {
	id, err := h.jobID(c)
	if err != nil {
		return handled(err)
	}

	status, err := h.uc.Status(id)
	if err != nil {
		if errors.Is(err, usecase.ErrJobNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "file not found",
			}, nil)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to check status",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success check status",
		Data:    status,
	})
}

func (h *LetterHandler) Download(c *fiber.Ctx) error {
	id, err := h.jobID(c)
	if err != nil {
		return handled(err)
	}

	name, content, err := h.uc.Artifact(id)
	if err != nil {
		if errors.Is(err, usecase.ErrJobNotReady) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusConflict,
				Message: "document is still processing",
			}, nil)
		}
		if errors.Is(err, usecase.ErrJobNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "file not found or not ready",
			}, nil)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to download document",
		}, err)
	}

	c.Set(fiber.HeaderContentType, docxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Send(content)
}

func (h *LetterHandler) History(c *fiber.Ctx) error {
	filter := repository.JobFilter{
		Status:   c.Query("status"),
		Query:    c.Query("q"),
		Sort:     c.Query("sort"),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}

	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "invalid from date, expected YYYY-MM-DD",
			}, err)
		}
		filter.From = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "invalid to date, expected YYYY-MM-DD",
			}, err)
		}
		// inclusive of the whole named day
		filter.To = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	jobs, counts, pagination, err := h.uc.History(filter)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to get history",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get history",
		Data:       fiber.Map{"jobs": jobs, "counts": counts},
		Pagination: pagination,
	})
}

func (h *LetterHandler) jobID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, reject(c, fiber.StatusBadRequest, "invalid job id", err)
	}
	return uint(id), nil
}
