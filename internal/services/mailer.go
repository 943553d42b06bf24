package services

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"smartrecruit/api/internal/config"
	"smartrecruit/api/internal/models"
	"smartrecruit/api/internal/repositories"
)

var statusLabels = map[models.ApplicationStatus]string{
	models.StatusPending:  "En attente",
	models.StatusInReview: "En cours d'examen",
	models.StatusAccepted: "Acceptée",
	models.StatusRejected: "Refusée",
}

// StatusLabel returns the human-readable French label for a status.
func StatusLabel(status models.ApplicationStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}

// MailerService sends the notification emails of the application workflow.
// Every attempt is recorded in the notification log, failures included;
// sending is best-effort and never fails the triggering operation.
type MailerService interface {
	SendStatusUpdate(app *models.Application, candidate *models.User)
	SendNewApplication(app *models.Application, recruiter *models.User)
	SendAssignment(app *models.Application, recruiter *models.User)
	SendAnalysisComplete(app *models.Application, candidate *models.User, score float64)
}

type mailerService struct {
	dialer           *gomail.Dialer
	from             string
	notificationRepo repositories.NotificationRepository
}

func NewMailerService(cfg config.SMTPConfig, notificationRepo repositories.NotificationRepository) MailerService {
	return &mailerService{
		dialer:           gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:             cfg.From,
		notificationRepo: notificationRepo,
	}
}

// SendStatusUpdate implements MailerService.
func (m *mailerService) SendStatusUpdate(app *models.Application, candidate *models.User) {
	prefs, err := m.notificationRepo.GetOrCreatePreferences(candidate.ID)
	if err != nil {
		log.Printf("⚠️  Failed to load email preferences for %s: %v\n", candidate.Email, err)
		return
	}
	if !prefs.ReceiveStatusUpdates {
		log.Printf("📭 Status update email skipped for %s (user preferences)\n", candidate.Email)
		return
	}

	subject := fmt.Sprintf("Mise à jour de votre candidature - %s", app.RoleName)
	body := fmt.Sprintf(
		"Bonjour %s,\n\n"+
			"Le statut de votre candidature pour le poste \"%s\" a été mis à jour.\n\n"+
			"Nouveau statut: %s\n\n"+
			"Connectez-vous à la plateforme pour plus de détails.",
		candidate.Username, app.RoleName, StatusLabel(app.Status),
	)

	m.deliver(candidate, models.NotificationStatusUpdate, subject, body, &app.ID)
}

// SendNewApplication implements MailerService.
func (m *mailerService) SendNewApplication(app *models.Application, recruiter *models.User) {
	prefs, err := m.notificationRepo.GetOrCreatePreferences(recruiter.ID)
	if err != nil {
		log.Printf("⚠️  Failed to load email preferences for %s: %v\n", recruiter.Email, err)
		return
	}
	if !prefs.ReceiveNewApplications {
		log.Printf("📭 New application email skipped for %s (user preferences)\n", recruiter.Email)
		return
	}

	subject := fmt.Sprintf("Nouvelle candidature - %s", app.RoleName)
	body := fmt.Sprintf(
		"Bonjour %s,\n\n"+
			"Une nouvelle candidature a été déposée pour le poste \"%s\".\n\n"+
			"Connectez-vous à la plateforme pour la consulter.",
		recruiter.Username, app.RoleName,
	)

	m.deliver(recruiter, models.NotificationNewApplication, subject, body, &app.ID)
}

// SendAssignment implements MailerService.
func (m *mailerService) SendAssignment(app *models.Application, recruiter *models.User) {
	prefs, err := m.notificationRepo.GetOrCreatePreferences(recruiter.ID)
	if err != nil {
		log.Printf("⚠️  Failed to load email preferences for %s: %v\n", recruiter.Email, err)
		return
	}
	if !prefs.ReceiveAssignments {
		log.Printf("📭 Assignment email skipped for %s (user preferences)\n", recruiter.Email)
		return
	}

	subject := fmt.Sprintf("Nouvelle candidature assignée - %s", app.RoleName)
	body := fmt.Sprintf(
		"Bonjour %s,\n\n"+
			"Une candidature pour le poste \"%s\" vous a été assignée.\n\n"+
			"Connectez-vous à la plateforme pour l'examiner.",
		recruiter.Username, app.RoleName,
	)

	m.deliver(recruiter, models.NotificationAssignment, subject, body, &app.ID)
}

// SendAnalysisComplete implements MailerService.
func (m *mailerService) SendAnalysisComplete(app *models.Application, candidate *models.User, score float64) {
	prefs, err := m.notificationRepo.GetOrCreatePreferences(candidate.ID)
	if err != nil {
		log.Printf("⚠️  Failed to load email preferences for %s: %v\n", candidate.Email, err)
		return
	}
	if !prefs.ReceiveStatusUpdates {
		log.Printf("📭 Analysis email skipped for %s (user preferences)\n", candidate.Email)
		return
	}

	subject := fmt.Sprintf("Analyse terminée - %s", app.RoleName)
	body := fmt.Sprintf(
		"Bonjour,\n\n"+
			"L'analyse IA de la candidature pour le poste \"%s\" est terminée.\n\n"+
			"Score: %.2f/100\n"+
			"Statut: %s\n\n"+
			"Connectez-vous à la plateforme pour plus de détails.",
		app.RoleName, score, StatusLabel(app.Status),
	)

	m.deliver(candidate, models.NotificationAnalysisComplete, subject, body, &app.ID)
}

func (m *mailerService) deliver(recipient *models.User, kind models.NotificationType, subject, body string, appID *uuid.UUID) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", recipient.Email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	entry := &models.NotificationLog{
		ID:            uuid.New(),
		RecipientID:   recipient.ID,
		Type:          kind,
		Subject:       subject,
		ApplicationID: appID,
		Success:       true,
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Printf("❌ Failed to send %s email to %s: %v\n", kind, recipient.Email, err)
		entry.Success = false
		errMsg := err.Error()
		entry.ErrorMessage = &errMsg
	} else {
		log.Printf("📧 Sent %s email to %s\n", kind, recipient.Email)
	}

	if err := m.notificationRepo.LogNotification(entry); err != nil {
		log.Printf("⚠️  Failed to log notification: %v\n", err)
	}
}
