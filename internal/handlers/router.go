package handlers

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts every authenticated endpoint on the api router. Role
// middleware is attached per route: fiber group middleware on an empty prefix
// would apply to the whole subtree, locking candidates out of their own
// endpoints. Literal paths are registered before the :id routes because fiber
// matches in registration order.
func RegisterRoutes(
	api fiber.Router,
	mw *AuthMiddleware,
	apps *ApplicationHandler,
	analyses *AnalysisHandler,
	users *UserHandler,
) {
	requireUser := mw.RequireUser()
	requireRecruiter := mw.RequireRecruiter()

	api.Get("/me", requireUser, users.HandleMe)
	api.Get("/me/preferences", requireUser, users.HandleGetPreferences)
	api.Put("/me/preferences", requireUser, users.HandleUpdatePreferences)

	api.Post("/applications", requireUser, apps.HandleCreate)
	api.Get("/applications", requireUser, apps.HandleList)
	api.Get("/applications/my", requireUser, apps.HandleMine)

	api.Get("/applications/assigned", requireUser, requireRecruiter, apps.HandleAssignedToMe)
	api.Get("/applications/export", requireUser, requireRecruiter, apps.HandleExport)
	api.Get("/applications/status/:status", requireUser, requireRecruiter, apps.HandleByStatus)

	api.Get("/applications/:id", requireUser, apps.HandleGet)
	api.Delete("/applications/:id", requireUser, apps.HandleDelete)
	api.Get("/applications/:id/cv", requireUser, apps.HandleDownloadCV)
	api.Get("/applications/:id/analysis", requireUser, analyses.HandleGetAnalysis)

	api.Put("/applications/:id/status", requireUser, requireRecruiter, apps.HandleUpdateStatus)
	api.Put("/applications/:id/assign", requireUser, requireRecruiter, apps.HandleAssign)
	api.Post("/applications/:id/analyze", requireUser, requireRecruiter, analyses.HandleAnalyze)
	api.Get("/applications/:id/similar", requireUser, requireRecruiter, analyses.HandleSimilarProfiles)
	api.Get("/analysis/jobs/:id", requireUser, requireRecruiter, analyses.HandleJobStatus)
}
