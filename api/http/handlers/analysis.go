package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/hr/screening/api/http/presenter"
	"github.com/artem13815/hr/screening/pkg/analysis"
	"github.com/artem13815/hr/screening/pkg/logger"
	"github.com/artem13815/hr/screening/pkg/vectorizer"
)

// ModelEngine is the part of the scoring engine the model endpoints need.
type ModelEngine interface {
	analysis.UseCase
	ModelState() vectorizer.State
	ModelID() uuid.UUID
}

// ModelStatus describes the vectorizer currently used for semantic scoring.
type ModelStatus struct {
	State   string `json:"state" example:"fitted"`
	ModelID string `json:"model_id,omitempty"`
}

type AnalysisHandler struct {
	engine ModelEngine
	log    *slog.Logger
}

func NewAnalysisHandler(engine ModelEngine, log *slog.Logger) *AnalysisHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AnalysisHandler{engine: engine, log: log}
}

// Train переобучает векторизатор на встроенном корпусе и сохраняет модель.
// @Summary Train the semantic similarity model
// @Tags    Model
// @Produce json
// @Security BearerAuth
// @Success 200 {object} presenter.MessageResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /train [post]
func (h *AnalysisHandler) Train(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if err := h.engine.Train(ctx); err != nil {
		logger.FromContext(ctx, h.log).Error("training failed", "err", err)
		return presenter.Error(c, http.StatusInternalServerError, "Training failed: "+err.Error())
	}
	return presenter.Message(c, http.StatusOK, "Model trained successfully")
}

// Model reports whether the vectorizer is fitted.
// @Summary Current model status
// @Tags    Model
// @Produce json
// @Success 200 {object} ModelStatus
// @Router  /model [get]
func (h *AnalysisHandler) Model(c *fiber.Ctx) error {
	st := ModelStatus{State: h.engine.ModelState().String()}
	if id := h.engine.ModelID(); id != uuid.Nil {
		st.ModelID = id.String()
	}
	return presenter.JSON(c, http.StatusOK, st)
}
