package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartrecruit/api/internal/analysis"
	"smartrecruit/api/internal/models"
	"smartrecruit/api/internal/repositories"
	"smartrecruit/api/internal/services"
)

type AnalysisHandler struct {
	appRepo      repositories.ApplicationRepository
	jobRepo      repositories.AnalysisJobRepository
	resultRepo   repositories.AnalysisResultRepository
	profileIndex services.ProfileIndexService
	worker       services.Worker
}

func NewAnalysisHandler(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.AnalysisJobRepository,
	resultRepo repositories.AnalysisResultRepository,
	profileIndex services.ProfileIndexService,
	worker services.Worker,
) *AnalysisHandler {
	return &AnalysisHandler{
		appRepo:      appRepo,
		jobRepo:      jobRepo,
		resultRepo:   resultRepo,
		profileIndex: profileIndex,
		worker:       worker,
	}
}

// HandleAnalyze handles POST /applications/:id/analyze. It queues an
// analysis job and returns immediately; the worker picks it up.
func (h *AnalysisHandler) HandleAnalyze(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid application id",
		})
	}

	if _, err := h.appRepo.FindByID(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "application not found",
		})
	}

	job := &models.AnalysisJob{
		ID:            uuid.New(),
		ApplicationID: id,
		Status:        models.JobQueued,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := h.jobRepo.Create(job); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create analysis job",
		})
	}

	h.worker.EnqueueJob(job.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.AnalyzeResponse{
		JobID:  job.ID.String(),
		Status: string(models.JobQueued),
	})
}

// HandleJobStatus handles GET /analysis/jobs/:id
func (h *AnalysisHandler) HandleJobStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job id",
		})
	}

	job, err := h.jobRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "analysis job not found",
		})
	}

	return c.JSON(models.AnalysisJobResponse{
		ID:            job.ID.String(),
		ApplicationID: job.ApplicationID.String(),
		Status:        string(job.Status),
		ErrorMessage:  job.ErrorMessage,
	})
}

// HandleGetAnalysis handles GET /applications/:id/analysis
func (h *AnalysisHandler) HandleGetAnalysis(c *fiber.Ctx) error {
	user := CurrentUser(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid application id",
		})
	}

	app, err := h.appRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "application not found",
		})
	}

	if !user.CanManageApplications() && app.CandidateID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "access denied",
		})
	}

	result, err := h.resultRepo.FindByApplicationID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// No stored result. If the last analysis attempt failed, surface
			// the failure instead of pretending nothing ran.
			if job, jobErr := h.jobRepo.FindLatestByApplication(id); jobErr == nil && job.Status == models.JobFailed {
				msg := "analysis failed"
				if job.ErrorMessage != nil {
					msg = *job.ErrorMessage
				}
				return c.JSON(analysis.ErrorOutcome(errors.New(msg)))
			}
			return c.JSON(fiber.Map{
				"status": "not_analyzed",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load analysis result",
		})
	}

	return c.JSON(models.AnalysisResponse{
		Status:          "completed",
		ScoreGlobal:     result.ScoreGlobal,
		ScoreSimilarity: result.ScoreSimilarity,
		ScoreSkills:     result.ScoreSkills,
		ScoreExperience: result.ScoreExperience,
		ScoreQuality:    result.ScoreQuality,
		Recommendations: result.RecommendationList(),
		ModelName:       result.ModelName,
		ModelVersion:    result.ModelVersion,
		AnalyzedAt:      result.AnalyzedAt,
	})
}

// HandleSimilarProfiles handles GET /applications/:id/similar
func (h *AnalysisHandler) HandleSimilarProfiles(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid application id",
		})
	}

	if _, err := h.appRepo.FindByID(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "application not found",
		})
	}

	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > 20 {
		limit = 5
	}

	profiles, err := h.profileIndex.SimilarProfiles(c.Context(), id, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to search similar profiles",
		})
	}

	if profiles == nil {
		profiles = []models.SimilarProfile{}
	}

	return c.JSON(fiber.Map{
		"application_id": id.String(),
		"profiles":       profiles,
	})
}
