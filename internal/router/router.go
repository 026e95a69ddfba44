// Package router assembles the HTTP engine.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-records-api/internal/handler"
	"github.com/noah-isme/campus-records-api/internal/middleware"
	"github.com/noah-isme/campus-records-api/internal/repository"
	"github.com/noah-isme/campus-records-api/internal/service"
	"github.com/noah-isme/campus-records-api/pkg/config"
	"github.com/noah-isme/campus-records-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/campus-records-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/campus-records-api/pkg/middleware/requestid"
	"github.com/noah-isme/campus-records-api/pkg/storage"
)

const (
	facultyProfileField = "faculty_profile"
	studentProfileField = "profile"
)

// Dependencies are the long-lived resources the routes are built over.
type Dependencies struct {
	Config  *config.Config
	DB      *sqlx.DB
	Uploads storage.Store
	Logger  *zap.Logger
	Metrics *service.MetricsService
}

// New wires repositories, services and handlers into a gin engine.
func New(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	logr := deps.Logger
	if logr == nil {
		logr = zap.NewNop()
	}

	validate := validator.New()
	facultySvc := service.NewFacultyService(repository.NewFacultyRepository(deps.DB), validate, logr, deps.Metrics)
	studentSvc := service.NewStudentService(repository.NewStudentRepository(deps.DB), validate, logr, deps.Metrics)

	facultyHandler := handler.NewFacultyHandler(facultySvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	uploadHandler := handler.NewUploadHandler(deps.Uploads)
	healthHandler := handler.NewHealthHandler(deps.DB, deps.Metrics)

	r := gin.New()
	r.MaxMultipartMemory = cfg.Uploads.MaxMemory
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", healthHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.GET("/uploads/:filename", uploadHandler.Serve)

	facultyUpload := middleware.Upload(facultyProfileField, deps.Uploads, cfg.Uploads.MaxMemory, deps.Metrics, logr)
	studentUpload := middleware.Upload(studentProfileField, deps.Uploads, cfg.Uploads.MaxMemory, deps.Metrics, logr)

	api := r.Group("/api")

	faculties := api.Group("/faculties")
	faculties.GET("", facultyHandler.List)
	faculties.GET("/:facultyNumber", facultyHandler.Get)
	faculties.POST("", facultyUpload, facultyHandler.Create)
	faculties.PUT("/:facultyNumber", facultyUpload, facultyHandler.Update)
	faculties.DELETE("/:facultyNumber", facultyHandler.Delete)

	students := api.Group("/students")
	students.GET("", studentHandler.List)
	students.GET("/:id", studentHandler.Get)
	students.POST("", studentUpload, studentHandler.Create)
	students.PUT("/:id", studentUpload, studentHandler.Update)
	students.DELETE("/:id", studentHandler.Delete)

	return r
}
