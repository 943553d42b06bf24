package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartrecruit/api/internal/models"
)

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id uuid.UUID) (*models.Application, error)
	FindAll() ([]models.Application, error)
	FindByCandidate(candidateID uuid.UUID) ([]models.Application, error)
	FindByStatus(status models.ApplicationStatus) ([]models.Application, error)
	FindByRecruiter(recruiterID uuid.UUID) ([]models.Application, error)
	ExistsForCandidateAndRole(candidateID uuid.UUID, roleName string) (bool, error)
	UpdateStatus(id uuid.UUID, status models.ApplicationStatus, comment *string) error
	AssignRecruiter(id uuid.UUID, recruiterID uuid.UUID) error
	UpdateAIScore(id uuid.UUID, score float64, status models.ApplicationStatus) error
	Delete(id uuid.UUID) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create implements ApplicationRepository.
func (r *applicationRepository) Create(app *models.Application) error {
	if err := r.db.Create(app).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// FindByID implements ApplicationRepository.
func (r *applicationRepository) FindByID(id uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := r.db.Preload("Candidate").Where("id = ?", id).First(&app).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("application not found")
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return &app, nil
}

// FindAll implements ApplicationRepository.
func (r *applicationRepository) FindAll() ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.Preload("Candidate").Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// FindByCandidate implements ApplicationRepository.
func (r *applicationRepository) FindByCandidate(candidateID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// FindByStatus implements ApplicationRepository.
func (r *applicationRepository) FindByStatus(status models.ApplicationStatus) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applications by status: %w", err)
	}
	return apps, nil
}

// FindByRecruiter implements ApplicationRepository.
func (r *applicationRepository) FindByRecruiter(recruiterID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.
		Where("assigned_recruiter_id = ?", recruiterID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned applications: %w", err)
	}
	return apps, nil
}

// ExistsForCandidateAndRole implements ApplicationRepository.
func (r *applicationRepository) ExistsForCandidateAndRole(candidateID uuid.UUID, roleName string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("candidate_id = ? AND role_name = ?", candidateID, roleName).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check existing application: %w", err)
	}
	return count > 0, nil
}

// UpdateStatus implements ApplicationRepository.
func (r *applicationRepository) UpdateStatus(id uuid.UUID, status models.ApplicationStatus, comment *string) error {
	updates := map[string]interface{}{
		"status":       status,
		"responded_at": time.Now(),
		"updated_at":   time.Now(),
	}
	if comment != nil {
		updates["recruiter_comment"] = *comment
	}

	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("application not found")
	}
	return nil
}

// AssignRecruiter implements ApplicationRepository.
func (r *applicationRepository) AssignRecruiter(id uuid.UUID, recruiterID uuid.UUID) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"assigned_recruiter_id": recruiterID,
			"updated_at":            time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to assign recruiter: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("application not found")
	}
	return nil
}

// UpdateAIScore implements ApplicationRepository.
func (r *applicationRepository) UpdateAIScore(id uuid.UUID, score float64, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"ai_score":   score,
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update ai score: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("application not found")
	}
	return nil
}

// Delete implements ApplicationRepository.
func (r *applicationRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Application{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("application not found")
	}
	return nil
}
