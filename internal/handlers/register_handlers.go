package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/SscSPs/wallet_ledger/cmd/docs"
	portssvc "github.com/SscSPs/wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger/internal/platform/config"
)

// APIBasePath is the prefix of every ledger route.
const APIBasePath = "/api/v1/finance"

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// Extra middleware (rate limiting) applies to the API group only.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	apiMiddleware ...gin.HandlerFunc,
) {
	registerValidators()

	r.GET("/health", getHealth)

	setupAPIV1Routes(r, services, apiMiddleware...)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the finance group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer, apiMiddleware ...gin.HandlerFunc) {
	v1 := r.Group(APIBasePath, apiMiddleware...)

	registerWalletRoutes(v1, services.Ledger, services.History)
	registerLedgerRoutes(v1, services.Ledger, services.History)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = APIBasePath
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
