package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"smartrecruit/api/internal/models"
	"smartrecruit/api/internal/repositories"
	"smartrecruit/api/internal/services"
)

type ApplicationHandler struct {
	appRepo        repositories.ApplicationRepository
	userRepo       repositories.UserRepository
	resultRepo     repositories.AnalysisResultRepository
	storageService services.StorageService
	mailerService  services.MailerService
	exportService  services.ExportService
	profileIndex   services.ProfileIndexService
	maxFileSize    int64
}

func NewApplicationHandler(
	appRepo repositories.ApplicationRepository,
	userRepo repositories.UserRepository,
	resultRepo repositories.AnalysisResultRepository,
	storageService services.StorageService,
	mailerService services.MailerService,
	exportService services.ExportService,
	profileIndex services.ProfileIndexService,
	maxFileSize int64,
) *ApplicationHandler {
	return &ApplicationHandler{
		appRepo:        appRepo,
		userRepo:       userRepo,
		resultRepo:     resultRepo,
		storageService: storageService,
		mailerService:  mailerService,
		exportService:  exportService,
		profileIndex:   profileIndex,
		maxFileSize:    maxFileSize,
	}
}

// HandleCreate handles POST /applications
func (h *ApplicationHandler) HandleCreate(c *fiber.Ctx) error {
	user := CurrentUser(c)

	if !user.IsCandidate() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "only candidates can submit applications",
		})
	}

	roleName := c.FormValue("role_name")
	if roleName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "role_name is required",
		})
	}

	exists, err := h.appRepo.ExistsForCandidateAndRole(user.ID, roleName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to check existing applications",
		})
	}
	if exists {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "you have already applied for this role",
		})
	}

	cvFile, err := c.FormFile("cv")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cv file is required",
		})
	}
	if cvFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("CV file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	cvFilename, cvFilePath, err := h.storageService.SaveFile(cvFile, "cv")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save CV file: %v", err),
		})
	}

	app := &models.Application{
		ID:                 uuid.New(),
		CandidateID:        user.ID,
		RoleName:           roleName,
		CVFilename:         cvFilename,
		CVOriginalFilename: cvFile.Filename,
		CVFilePath:         cvFilePath,
		Status:             models.StatusPending,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	if message := c.FormValue("message"); message != "" {
		app.Message = &message
	}

	// Optional cover letter
	if letterFile, err := c.FormFile("lettre_motivation"); err == nil && letterFile != nil {
		if letterFile.Size > h.maxFileSize {
			h.storageService.DeleteFile(cvFilename)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("cover letter file too large. Max size: %d bytes", h.maxFileSize),
			})
		}

		letterFilename, letterFilePath, err := h.storageService.SaveFile(letterFile, "lettre")
		if err != nil {
			h.storageService.DeleteFile(cvFilename)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to save letter file: %v", err),
			})
		}
		app.LetterFilename = &letterFilename
		app.LetterFilePath = &letterFilePath
	}

	if err := h.appRepo.Create(app); err != nil {
		// Cleanup uploaded files if database insert fails
		h.storageService.DeleteFile(cvFilename)
		if app.LetterFilename != nil {
			h.storageService.DeleteFile(*app.LetterFilename)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create application",
		})
	}

	// Notify recruiters about the new application
	if recruiters, err := h.userRepo.FindByRole(models.RoleRecruiter); err == nil {
		for i := range recruiters {
			h.mailerService.SendNewApplication(app, &recruiters[i])
		}
	}

	return c.Status(fiber.StatusCreated).JSON(models.NewApplicationResponse(app))
}

// HandleList handles GET /applications. Recruiters and admins see every
// application, candidates only their own.
func (h *ApplicationHandler) HandleList(c *fiber.Ctx) error {
	user := CurrentUser(c)

	var apps []models.Application
	var err error
	if user.CanManageApplications() {
		apps, err = h.appRepo.FindAll()
	} else {
		apps, err = h.appRepo.FindByCandidate(user.ID)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list applications",
		})
	}

	return c.JSON(toResponses(apps))
}

// HandleMine handles GET /applications/my
func (h *ApplicationHandler) HandleMine(c *fiber.Ctx) error {
	user := CurrentUser(c)

	apps, err := h.appRepo.FindByCandidate(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list applications",
		})
	}

	return c.JSON(toResponses(apps))
}

// HandleByStatus handles GET /applications/status/:status
func (h *ApplicationHandler) HandleByStatus(c *fiber.Ctx) error {
	status := models.ApplicationStatus(c.Params("status"))
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid status",
		})
	}

	apps, err := h.appRepo.FindByStatus(status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list applications by status",
		})
	}

	return c.JSON(toResponses(apps))
}

// HandleAssignedToMe handles GET /applications/assigned
func (h *ApplicationHandler) HandleAssignedToMe(c *fiber.Ctx) error {
	user := CurrentUser(c)

	apps, err := h.appRepo.FindByRecruiter(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list assigned applications",
		})
	}

	return c.JSON(toResponses(apps))
}

// HandleExport handles GET /applications/export
func (h *ApplicationHandler) HandleExport(c *fiber.Ctx) error {
	apps, err := h.appRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list applications",
		})
	}

	ids := make([]uuid.UUID, len(apps))
	for i, app := range apps {
		ids[i] = app.ID
	}

	resultsByApp := make(map[uuid.UUID]models.AnalysisResult)
	if len(ids) > 0 {
		results, err := h.resultRepo.FindByApplicationIDs(ids)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load analysis results",
			})
		}
		for _, r := range results {
			resultsByApp[r.ApplicationID] = r
		}
	}

	buf, err := h.exportService.BuildApplicationsWorkbook(apps, resultsByApp)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to build export",
		})
	}

	filename := fmt.Sprintf("candidatures_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(buf.Bytes())
}

// HandleGet handles GET /applications/:id
func (h *ApplicationHandler) HandleGet(c *fiber.Ctx) error {
	app, ok := h.loadAccessibleApplication(c)
	if !ok {
		return nil
	}

	return c.JSON(models.NewApplicationResponse(app))
}

// HandleDelete handles DELETE /applications/:id. Candidates may withdraw
// their own pending application; admins may delete any.
func (h *ApplicationHandler) HandleDelete(c *fiber.Ctx) error {
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

	if !user.IsAdmin() {
		if app.CandidateID != user.ID {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "access denied",
			})
		}
		if app.Status != models.StatusPending {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "only pending applications can be withdrawn",
			})
		}
	}

	if err := h.appRepo.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to delete application",
		})
	}

	// Best-effort cleanup of files and the indexed profile
	if err := h.storageService.DeleteFile(app.CVFilename); err != nil {
		log.Printf("⚠️  Failed to delete CV file for %s: %v\n", app.ID, err)
	}
	if app.LetterFilename != nil {
		if err := h.storageService.DeleteFile(*app.LetterFilename); err != nil {
			log.Printf("⚠️  Failed to delete letter file for %s: %v\n", app.ID, err)
		}
	}
	if err := h.profileIndex.DeleteProfile(context.Background(), app.ID); err != nil {
		log.Printf("⚠️  Failed to delete indexed profile for %s: %v\n", app.ID, err)
	}

	return c.JSON(fiber.Map{
		"message": "application deleted",
	})
}

// HandleUpdateStatus handles PUT /applications/:id/status
func (h *ApplicationHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid application id",
		})
	}

	var req models.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}

	status := models.ApplicationStatus(req.Status)
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid status",
		})
	}

	var comment *string
	if req.Comment != "" {
		comment = &req.Comment
	}

	if err := h.appRepo.UpdateStatus(id, status, comment); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "application not found",
		})
	}

	app, err := h.appRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load application",
		})
	}

	h.mailerService.SendStatusUpdate(app, &app.Candidate)

	return c.JSON(models.NewApplicationResponse(app))
}

// HandleAssign handles PUT /applications/:id/assign
func (h *ApplicationHandler) HandleAssign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid application id",
		})
	}

	var req models.AssignRecruiterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}

	recruiterID, err := uuid.Parse(req.RecruiterID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid recruiter_id format",
		})
	}

	recruiter, err := h.userRepo.FindRecruiter(recruiterID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "recruiter not found",
		})
	}

	if err := h.appRepo.AssignRecruiter(id, recruiterID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "application not found",
		})
	}

	app, err := h.appRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load application",
		})
	}

	h.mailerService.SendAssignment(app, recruiter)

	return c.JSON(models.NewApplicationResponse(app))
}

// HandleDownloadCV handles GET /applications/:id/cv
func (h *ApplicationHandler) HandleDownloadCV(c *fiber.Ctx) error {
	app, ok := h.loadAccessibleApplication(c)
	if !ok {
		return nil
	}

	return c.Download(app.CVFilePath, app.CVOriginalFilename)
}

// loadAccessibleApplication resolves the :id parameter and enforces that the
// current user owns the application or may manage applications. On failure
// it writes the error response and returns ok=false.
func (h *ApplicationHandler) loadAccessibleApplication(c *fiber.Ctx) (*models.Application, bool) {
	user := CurrentUser(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid application id",
		})
		return nil, false
	}

	app, err := h.appRepo.FindByID(id)
	if err != nil {
		c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "application not found",
		})
		return nil, false
	}

	if !user.CanManageApplications() && app.CandidateID != user.ID {
		c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "access denied",
		})
		return nil, false
	}

	return app, true
}

func toResponses(apps []models.Application) []models.ApplicationResponse {
	responses := make([]models.ApplicationResponse, len(apps))
	for i := range apps {
		responses[i] = models.NewApplicationResponse(&apps[i])
	}
	return responses
}
