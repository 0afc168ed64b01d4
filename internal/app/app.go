package app

import (
	"lead-dispatcher/internal/config"
	"lead-dispatcher/internal/infra/handlers"
	"lead-dispatcher/internal/infra/logger"
	"lead-dispatcher/internal/infra/provider"
	"lead-dispatcher/internal/infra/routes"
	"lead-dispatcher/internal/infra/services"
	"lead-dispatcher/internal/middleware"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires providers, services and handlers into the HTTP router
// shared by the server and the Lambda entrypoints.
func NewRouter(cfg *config.Config, log *logger.Logger, httpClient *http.Client) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestID, middleware.CORS(cfg.CORSAllowOrigin), middleware.LoggingMiddleware(log))

	graphProvider := provider.NewGraphLeadProvider(log, httpClient, cfg.GraphAPIURL, cfg.GraphAPIVersion, cfg.MetaPageAccessToken)
	telegramProvider := provider.NewTelegramProvider(log, httpClient, cfg.TelegramAPIURL, cfg.TelegramBotToken)

	resolver := services.NewMetaLeadResolver(log, graphProvider, cfg.Forms)
	dispatcher := services.NewNotificationDispatcher(log, telegramProvider)
	leadService := services.NewLeadService(log, cfg, resolver, dispatcher)

	leadHandlers := handlers.NewLeadHandlers(log, cfg.MetaVerifyToken, cfg.MetaAppSecret, leadService)

	routes.NewRoutes(router, leadHandlers).Init()
	return router
}
