package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/reviewlens/reviewlens/model"
	"github.com/reviewlens/reviewlens/services"
)

// API holds dependencies for the report handlers.
type API struct {
	provider services.ReportProvider
}

// NewAPI creates a new API handler structure.
func NewAPI(provider services.ReportProvider) *API {
	return &API{provider: provider}
}

// SetupRoutes defines all the routes for the report server. Every endpoint
// is read-only: the served report is the immutable snapshot of one pipeline
// run, and refreshing it means re-running the binary.
func SetupRoutes(router *gin.Engine, provider services.ReportProvider) {
	apiHandler := NewAPI(provider)

	router.Use(CORSMiddleware())

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Report routes
	reportRoutes := router.Group("/report")
	{
		reportRoutes.GET("", apiHandler.GetReportHandler)              // Full report
		reportRoutes.GET("/stats", apiHandler.GetStatsHandler)         // Per-restaurant aggregates
		reportRoutes.GET("/terms", apiHandler.GetTermsHandler)         // Corpus-wide top TF-IDF records
		reportRoutes.GET("/timeline", apiHandler.GetTimelineHandler)   // Monthly review volume
		reportRoutes.GET("/sentiment", apiHandler.GetSentimentHandler) // Sentiment ranking
	}

	// Per-restaurant distinctive terms
	router.GET("/restaurants/:restaurantName/terms", apiHandler.GetRestaurantTermsHandler)
}

// HealthCheckHandler reports whether the server is up and the report ready.
func (api *API) HealthCheckHandler(c *gin.Context) {
	report := api.provider.Report()
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"report_ready": report != nil,
	})
}

// GetReportHandler returns the full report.
func (api *API) GetReportHandler(c *gin.Context) {
	report, ok := api.requireReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetStatsHandler returns the per-restaurant aggregates.
func (api *API) GetStatsHandler(c *gin.Context) {
	report, ok := api.requireReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"stats":       report.Stats,
		"correlation": report.Correlation,
	})
}

// GetTermsHandler returns the corpus-wide top TF-IDF records, optionally
// truncated with ?limit=N.
func (api *API) GetTermsHandler(c *gin.Context) {
	report, ok := api.requireReport(c)
	if !ok {
		return
	}

	terms := report.TopTerms
	if limitParam := c.Query("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit < 0 {
			SendValidationError(c, "limit", "must be a non-negative integer")
			return
		}
		if limit < len(terms) {
			terms = terms[:limit]
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"terms": terms,
		"total": len(terms),
	})
}

// GetTimelineHandler returns the monthly review-volume series.
func (api *API) GetTimelineHandler(c *gin.Context) {
	report, ok := api.requireReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"timeline": report.Timeline})
}

// GetSentimentHandler returns the per-restaurant sentiment ranking.
func (api *API) GetSentimentHandler(c *gin.Context) {
	report, ok := api.requireReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"sentiment": report.Sentiment})
}

// GetRestaurantTermsHandler returns one restaurant's distinctive terms.
func (api *API) GetRestaurantTermsHandler(c *gin.Context) {
	report, ok := api.requireReport(c)
	if !ok {
		return
	}

	name := c.Param("restaurantName")
	terms, found := report.TermsByGroup[name]
	if !found {
		SendRestaurantNotFoundError(c, name)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant": name,
		"terms":      terms,
	})
}

// requireReport fetches the report or replies 503 when the pipeline has not
// produced one yet.
func (api *API) requireReport(c *gin.Context) (*model.Report, bool) {
	report := api.provider.Report()
	if report == nil {
		SendReportNotReadyError(c)
		return nil, false
	}
	return report, true
}
