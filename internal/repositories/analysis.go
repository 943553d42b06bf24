package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"smartrecruit/api/internal/models"
)

type AnalysisJobRepository interface {
	Create(job *models.AnalysisJob) error
	FindByID(id uuid.UUID) (*models.AnalysisJob, error)
	UpdateStatus(id uuid.UUID, status models.AnalysisJobStatus) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.AnalysisJob, error)
	FindLatestByApplication(applicationID uuid.UUID) (*models.AnalysisJob, error)
}

type analysisJobRepository struct {
	db *gorm.DB
}

func NewAnalysisJobRepository(db *gorm.DB) AnalysisJobRepository {
	return &analysisJobRepository{db: db}
}

func (r *analysisJobRepository) Create(job *models.AnalysisJob) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create analysis job: %w", err)
	}
	return nil
}

func (r *analysisJobRepository) FindByID(id uuid.UUID) (*models.AnalysisJob, error) {
	var job models.AnalysisJob
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("analysis job not found")
		}
		return nil, fmt.Errorf("failed to find analysis job: %w", err)
	}
	return &job, nil
}

func (r *analysisJobRepository) UpdateStatus(id uuid.UUID, status models.AnalysisJobStatus) error {
	result := r.db.Model(&models.AnalysisJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update job status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("analysis job not found")
	}
	return nil
}

func (r *analysisJobRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.AnalysisJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.JobFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update job error: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("analysis job not found")
	}
	return nil
}

func (r *analysisJobRepository) FindPendingJobs(limit int) ([]models.AnalysisJob, error) {
	var jobs []models.AnalysisJob
	err := r.db.
		Where("status = ?", models.JobQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}
	return jobs, nil
}

func (r *analysisJobRepository) FindLatestByApplication(applicationID uuid.UUID) (*models.AnalysisJob, error) {
	var job models.AnalysisJob
	err := r.db.
		Where("application_id = ?", applicationID).
		Order("created_at DESC").
		First(&job).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("analysis job not found")
		}
		return nil, fmt.Errorf("failed to find analysis job: %w", err)
	}
	return &job, nil
}

type AnalysisResultRepository interface {
	// Upsert writes the analysis for an application, replacing any
	// previous run's row (one row per application).
	Upsert(result *models.AnalysisResult) error
	FindByApplicationID(applicationID uuid.UUID) (*models.AnalysisResult, error)
	FindByApplicationIDs(ids []uuid.UUID) ([]models.AnalysisResult, error)
}

type analysisResultRepository struct {
	db *gorm.DB
}

func NewAnalysisResultRepository(db *gorm.DB) AnalysisResultRepository {
	return &analysisResultRepository{db: db}
}

func (r *analysisResultRepository) Upsert(result *models.AnalysisResult) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "application_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"raw_extracted_data",
			"score_global",
			"score_similarity",
			"score_skills",
			"score_experience",
			"score_quality",
			"recommendations",
			"model_name",
			"model_version",
			"analyzed_at",
		}),
	}).Create(result).Error
	if err != nil {
		return fmt.Errorf("failed to save analysis result: %w", err)
	}
	return nil
}

func (r *analysisResultRepository) FindByApplicationID(applicationID uuid.UUID) (*models.AnalysisResult, error) {
	var result models.AnalysisResult
	err := r.db.Where("application_id = ?", applicationID).First(&result).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to find analysis result: %w", err)
	}
	return &result, nil
}

func (r *analysisResultRepository) FindByApplicationIDs(ids []uuid.UUID) ([]models.AnalysisResult, error) {
	var results []models.AnalysisResult
	if err := r.db.Where("application_id IN ?", ids).Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to find analysis results: %w", err)
	}
	return results, nil
}
