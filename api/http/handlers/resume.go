package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hr/screening/api/http/presenter"
	"github.com/artem13815/hr/screening/pkg/analysis"
	"github.com/artem13815/hr/screening/pkg/logger"
	"github.com/artem13815/hr/screening/pkg/resume"
	"github.com/artem13815/hr/screening/pkg/vacancy"
)

// ScreeningResponse — успешный ответ: флаг success и результат оценки.
type ScreeningResponse struct {
	Success bool `json:"success"`
	analysis.MatchResult
}

type ResumeHandler struct {
	uc analysis.UseCase
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
	log      *slog.Logger
}

func NewResumeHandler(uc analysis.UseCase, maxBytes int64, log *slog.Logger) *ResumeHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ResumeHandler{uc: uc, maxBytes: maxBytes, log: log}
}

// Screen извлекает текст из загруженного резюме и оценивает его соответствие вакансии.
// @Summary Оценка резюме относительно описания вакансии
// @Description Принимает файл резюме (PDF, DOCX или DOC) и текст вакансии, возвращает итоговый балл, рекомендацию и разбор навыков и опыта.
// @Tags    Screening
// @Accept  multipart/form-data
// @Produce json
// @Param   resume          formData file   true "Файл резюме (PDF или DOCX)"
// @Param   job_description formData string true "Описание вакансии (текст или HTML)"
// @Success 200 {object} ScreeningResponse
// @Failure 400 {object} presenter.ErrorResponse "Ошибка валидации или извлечения текста"
// @Failure 413 {object} presenter.ErrorResponse "Файл слишком большой"
// @Failure 500 {object} presenter.ErrorResponse "Внутренняя ошибка сервиса"
// @Router  /screen-resume [post]
func (h *ResumeHandler) Screen(c *fiber.Ctx) error {
	ctx := c.UserContext()
	log := logger.FromContext(ctx, h.log)

	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "No resume file provided")
	}
	if strings.TrimSpace(fh.Filename) == "" {
		return presenter.Error(c, http.StatusBadRequest, "No file selected")
	}
	in := vacancy.Input{JobDescription: vacancy.PlainText(c.FormValue("job_description"))}
	if err := in.Validate(); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	if !resume.Allowed(fh.Filename) {
		return presenter.Error(c, http.StatusBadRequest, "Invalid file type. Only PDF and DOCX allowed")
	}

	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Failed to extract text: "+err.Error())
	}
	defer file.Close()
	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		if errors.Is(err, errTooLarge) {
			return presenter.Error(c, http.StatusRequestEntityTooLarge, err.Error())
		}
		return presenter.Error(c, http.StatusBadRequest, "Failed to extract text: "+err.Error())
	}

	text, err := resume.ParseResumeText(fh.Filename, data)
	if err != nil {
		log.Info("resume extraction failed", "filename", fh.Filename, "size", len(data), "err", err)
		return presenter.Error(c, http.StatusBadRequest, "Failed to extract text: "+err.Error())
	}
	if strings.TrimSpace(text) == "" {
		return presenter.Error(c, http.StatusBadRequest, "Could not extract text from resume")
	}

	result, err := h.uc.Analyze(ctx, text, in.JobDescription)
	if err != nil {
		log.Error("screening failed", "err", err)
		return presenter.Error(c, http.StatusInternalServerError, "Server error: "+err.Error())
	}
	log.Info("resume screened",
		"filename", fh.Filename,
		"match_score", result.MatchScore,
		"prediction", result.Prediction,
	)
	return presenter.JSON(c, http.StatusOK, ScreeningResponse{Success: true, MatchResult: result})
}

var errTooLarge = errors.New("file too large")

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("%w: limit is %d bytes", errTooLarge, max)
	}
	return b, nil
}
