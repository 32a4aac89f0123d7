package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/audit"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/billing"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/cache"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/config"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/domain/schedule"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/handlers"
	infraRepo "github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/infra/repository"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/middleware"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/storage/photos"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/summary"
	ucProject "github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/usecase/project"
	ucVisit "github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/usecase/visit"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) error {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	organizerRepo := infraRepo.NewOrganizerGormRepository(db)
	detector := schedule.NewDetector(organizerRepo)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	reportCache := cache.NewReportCache(cfg.RedisAddr)
	photoStore := photos.New(cfg)
	summarizer := summary.NewHTTPSummarizer(cfg.SummaryAPIURL, cfg.SummaryAPIKey, cfg.SummaryModel)

	paymentLinker, err := billing.NewMercadoPago(cfg.MercadoPagoToken)
	if err != nil {
		return err
	}

	// ======================================================
	// USE CASES
	// ======================================================
	createVisitUC := ucVisit.NewCreateVisit(organizerRepo, detector, auditDispatcher)
	updateVisitUC := ucVisit.NewUpdateVisit(organizerRepo, detector, auditDispatcher)

	createProjectUC := ucProject.NewCreateProject(organizerRepo, detector, auditDispatcher)
	updateProjectUC := ucProject.NewUpdateProject(organizerRepo, detector, auditDispatcher)
	setPaymentStatusUC := ucProject.NewSetPaymentStatus(organizerRepo, auditDispatcher)
	editPaymentAmountUC := ucProject.NewEditPaymentAmount(organizerRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	adminHandler := handlers.NewAdminHandler(db, auditDispatcher)

	clientHandler := handlers.NewClientHandler(db, auditDispatcher)
	visitHandler := handlers.NewVisitHandler(db, createVisitUC, updateVisitUC, summarizer)
	projectHandler := handlers.NewProjectHandler(db, createProjectUC, updateProjectUC, reportCache)
	paymentHandler := handlers.NewPaymentHandler(db, setPaymentStatusUC, editPaymentAmountUC, paymentLinker, reportCache)
	photoHandler := handlers.NewPhotoHandler(db, photoStore, auditDispatcher)

	masterDataHandler := handlers.NewMasterDataHandler(db, auditDispatcher)
	reportHandler := handlers.NewReportHandler(db, reportCache)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// CLIENTES
			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.GET("/me/clients/:id", clientHandler.Get)
			secured.PATCH("/me/clients/:id", clientHandler.Update)

			// VISITAS
			secured.GET("/me/visits", visitHandler.List)
			secured.POST("/me/visits", visitHandler.Create)
			secured.GET("/me/visits/:id", visitHandler.Get)
			secured.PATCH("/me/visits/:id", visitHandler.Update)
			secured.POST("/me/visits/:id/photos", photoHandler.AddToVisit)
			secured.POST("/me/visits/:id/summarize", visitHandler.Summarize)

			// PROJETOS
			secured.GET("/me/projects", projectHandler.List)
			secured.POST("/me/projects", projectHandler.Create)
			secured.GET("/me/projects/:id", projectHandler.Get)
			secured.PATCH("/me/projects/:id", projectHandler.Update)
			secured.POST("/me/projects/:id/photos", photoHandler.AddToProject)

			// PARCELAS
			secured.PATCH("/me/payments/:id/status", paymentHandler.SetStatus)
			secured.PATCH("/me/payments/:id/amount", paymentHandler.EditAmount)
			secured.POST("/me/payments/:id/link", paymentHandler.CreateLink)

			// RELATÓRIOS E MASTER DATA
			secured.GET("/me/reports/summary", reportHandler.Summary)
			secured.GET("/me/master-data", masterDataHandler.Get)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				admin.GET("/users/pending", adminHandler.ListPendingUsers)
				admin.PATCH("/users/:id/approve", adminHandler.ApproveUser)
				admin.PATCH("/users/:id/reject", adminHandler.RejectUser)

				admin.PUT("/master-data", masterDataHandler.Update)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}

	return nil
}
