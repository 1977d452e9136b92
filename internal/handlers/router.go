package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"CT-MUSICAL/internal/observability"
	"CT-MUSICAL/internal/services"
)

// RouterDeps holds what the HTTP surface needs. History may be nil.
type RouterDeps struct {
	Contracts    *services.ContractService
	Templates    *services.TemplateService
	CEP          *services.CEPService
	History      RecordReader
	AllowOrigins []string
	Logger       *zap.Logger
}

// NewRouter builds the gin engine with every /api/v1 route.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(observability.RequestLogger(deps.Logger))
	r.Use(observability.Recovery(deps.Logger))
	r.Use(cors.New(corsConfig(deps.AllowOrigins)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	contracts := NewContractHandler(deps.Contracts)
	templates := NewTemplateHandler(deps.Templates)
	cep := NewCEPHandler(deps.CEP)

	var history *HistoryHandler
	if deps.History != nil {
		history = NewHistoryHandler(deps.History)
	} else {
		history = NewHistoryHandler(services.NewRecordService(nil))
	}

	v1 := r.Group("/api/v1")
	{
		// Contract generation
		v1.POST("/contracts", contracts.Generate)
		v1.POST("/contracts/preview", contracts.Preview)
		v1.POST("/contracts/summary", contracts.Summary)
		v1.POST("/contracts/snapshot", contracts.LoadSnapshot)
		v1.GET("/contracts/:name/download", contracts.Download)

		// Generation history
		v1.GET("/contracts", history.List)
		v1.GET("/records/:id", history.Get)

		// Form support
		v1.GET("/payment-forms", ListPaymentForms)
		v1.GET("/payment-forms/:form/fields", GetPaymentFields)
		v1.GET("/cep/:cep", cep.Lookup)

		// Custom templates
		v1.POST("/templates", templates.UploadTemplate)
		v1.GET("/templates/:templateId/placeholders", templates.GetPlaceholders)
	}

	return r
}

// corsConfig allows every origin when none is configured.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Disposition", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
