package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/justsurfingit/career-path-advisor/internal/database"
	"github.com/justsurfingit/career-path-advisor/internal/middleware"
	"github.com/justsurfingit/career-path-advisor/internal/services"
)

// Deps holds everything the router hands out to handlers. All fields are required.
type Deps struct {
	Log    logrus.FieldLogger
	Store  database.Store
	Career *services.CareerService
	Resume *services.ResumeService
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(deps.Log), middleware.Recovery(deps.Log))

	// Wide open for the browser client; tighten before exposing publicly.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{middleware.RequestIDHeader},
	}))

	career := NewCareerHandler(deps.Career, deps.Log)
	resume := NewResumeHandler(deps.Resume, deps.Log)

	r.GET("/", Welcome)
	r.GET("/health", HealthCheck(deps.Store))

	api := r.Group("/api")
	{
		api.POST("/career-suggestion", career.SuggestCareer)
		api.POST("/resume-analysis", resume.AnalyzeResume)
		api.POST("/resume-analysis/upload", resume.UploadResume)
	}
	return r
}
