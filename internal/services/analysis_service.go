package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"smartrecruit/api/internal/analysis"
	"smartrecruit/api/internal/models"
	"smartrecruit/api/internal/repositories"
)

// AnalysisService runs the scoring pipeline for one queued job: resolve the
// application, analyze its résumé, persist the result, index the profile
// vector and notify the candidate. All-or-nothing: a failed run records the
// error on the job and persists no result.
type AnalysisService interface {
	AnalyzeApplication(ctx context.Context, jobID uuid.UUID) error
}

type analysisService struct {
	jobRepo      repositories.AnalysisJobRepository
	resultRepo   repositories.AnalysisResultRepository
	appRepo      repositories.ApplicationRepository
	analyzer     *analysis.Analyzer
	embedder     analysis.Embedder
	profileIndex ProfileIndexService
	mailer       MailerService
	timeout      time.Duration
}

func NewAnalysisService(
	jobRepo repositories.AnalysisJobRepository,
	resultRepo repositories.AnalysisResultRepository,
	appRepo repositories.ApplicationRepository,
	analyzer *analysis.Analyzer,
	embedder analysis.Embedder,
	profileIndex ProfileIndexService,
	mailer MailerService,
	timeout time.Duration,
) AnalysisService {
	return &analysisService{
		jobRepo:      jobRepo,
		resultRepo:   resultRepo,
		appRepo:      appRepo,
		analyzer:     analyzer,
		embedder:     embedder,
		profileIndex: profileIndex,
		mailer:       mailer,
		timeout:      timeout,
	}
}

// AnalyzeApplication implements AnalysisService.
func (s *analysisService) AnalyzeApplication(ctx context.Context, jobID uuid.UUID) error {
	if err := s.jobRepo.UpdateStatus(jobID, models.JobProcessing); err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}

	log.Printf("🔄 Starting analysis for job %s\n", jobID)

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		s.jobRepo.UpdateError(jobID, err.Error())
		return fmt.Errorf("failed to get analysis job: %w", err)
	}

	app, err := s.appRepo.FindByID(job.ApplicationID)
	if err != nil {
		s.jobRepo.UpdateError(jobID, fmt.Sprintf("application not found: %v", err))
		return fmt.Errorf("failed to get application: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	outcome, err := s.analyzer.Analyze(runCtx, app.CVFilePath, app.RoleName)
	if err != nil {
		s.jobRepo.UpdateError(jobID, err.Error())
		return fmt.Errorf("analysis failed: %w", err)
	}

	rawData, err := json.Marshal(outcome.Document)
	if err != nil {
		s.jobRepo.UpdateError(jobID, err.Error())
		return fmt.Errorf("failed to serialize extracted data: %w", err)
	}

	log.Printf("💾 Saving analysis result for application %s\n", app.ID)

	result := &models.AnalysisResult{
		ID:               uuid.New(),
		ApplicationID:    app.ID,
		RawExtractedData: datatypes.JSON(rawData),
		ScoreGlobal:      outcome.ScoreGlobal,
		ScoreSimilarity:  outcome.ScoreSimilarity,
		ScoreSkills:      outcome.ScoreSkills,
		ScoreExperience:  outcome.ScoreExperience,
		ScoreQuality:     outcome.ScoreQuality,
		Recommendations:  strings.Join(outcome.Recommendations, "\n"),
		ModelName:        s.embedder.ModelName(),
		ModelVersion:     s.embedder.ModelVersion(),
		AnalyzedAt:       time.Now(),
	}

	if err := s.resultRepo.Upsert(result); err != nil {
		s.jobRepo.UpdateError(jobID, err.Error())
		return fmt.Errorf("failed to save analysis result: %w", err)
	}

	// A pending application moves to review once scored; decided
	// applications keep their status on reanalysis.
	status := app.Status
	if status == models.StatusPending {
		status = models.StatusInReview
	}
	if err := s.appRepo.UpdateAIScore(app.ID, outcome.ScoreGlobal, status); err != nil {
		s.jobRepo.UpdateError(jobID, err.Error())
		return fmt.Errorf("failed to update application score: %w", err)
	}

	if err := s.profileIndex.UpsertProfile(runCtx, app.ID, app.RoleName, outcome.Vector); err != nil {
		log.Printf("⚠️  Failed to index profile for %s: %v\n", app.ID, err)
	}

	s.mailer.SendAnalysisComplete(app, &app.Candidate, outcome.ScoreGlobal)

	if err := s.jobRepo.UpdateStatus(jobID, models.JobCompleted); err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}

	log.Printf("✅ Analysis completed for job %s (score %.2f)\n", jobID, outcome.ScoreGlobal)
	return nil
}
