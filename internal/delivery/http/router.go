package delivery_http

import (
	"github.com/gorilla/mux"

	"userpost-service/internal/config"
	"userpost-service/internal/delivery/http/middleware"
	post_http "userpost-service/internal/delivery/http/post"
	user_http "userpost-service/internal/delivery/http/user"
	"userpost-service/internal/logger"
	"userpost-service/internal/metrics"
)

func NewRouter(
	userHandler *user_http.Handler,
	postHandler *post_http.Handler,
	api config.API,
	log *logger.Logger,
	metricsProvider metrics.MetricsProvider,
) *mux.Router {
	router := mux.NewRouter()

	router.Use(middleware.APIHeaders(api))
	router.Use(middleware.Logging(log))
	router.Use(middleware.Metrics(metricsProvider))

	userHandler.Register(router)
	postHandler.Register(router)

	return router
}
