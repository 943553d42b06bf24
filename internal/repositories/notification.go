package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartrecruit/api/internal/models"
)

type NotificationRepository interface {
	GetOrCreatePreferences(userID uuid.UUID) (*models.EmailPreferences, error)
	UpdatePreferences(prefs *models.EmailPreferences) error
	LogNotification(log *models.NotificationLog) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// GetOrCreatePreferences implements NotificationRepository.
func (r *notificationRepository) GetOrCreatePreferences(userID uuid.UUID) (*models.EmailPreferences, error) {
	var prefs models.EmailPreferences
	err := r.db.Where("user_id = ?", userID).First(&prefs).Error
	if err == nil {
		return &prefs, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to load email preferences: %w", err)
	}

	prefs = models.EmailPreferences{
		ID:                     uuid.New(),
		UserID:                 userID,
		ReceiveStatusUpdates:   true,
		ReceiveNewApplications: true,
		ReceiveAssignments:     true,
	}
	if err := r.db.Create(&prefs).Error; err != nil {
		return nil, fmt.Errorf("failed to create email preferences: %w", err)
	}
	return &prefs, nil
}

// UpdatePreferences implements NotificationRepository.
func (r *notificationRepository) UpdatePreferences(prefs *models.EmailPreferences) error {
	if err := r.db.Save(prefs).Error; err != nil {
		return fmt.Errorf("failed to update email preferences: %w", err)
	}
	return nil
}

// LogNotification implements NotificationRepository.
func (r *notificationRepository) LogNotification(log *models.NotificationLog) error {
	if err := r.db.Create(log).Error; err != nil {
		return fmt.Errorf("failed to log notification: %w", err)
	}
	return nil
}
