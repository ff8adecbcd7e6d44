package router

import "net/http"

type RouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

// New builds the ledger mux. Metrics are served without authentication.
func New(
	clientController RouteRegistrar,
	accountController RouteRegistrar,
	transactionController RouteRegistrar,
	metricsHandler http.Handler,
	authMiddleware func(http.Handler) http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()
	registerSwaggerRoutes(mux)

	if clientController != nil {
		clientController.RegisterRoutes(mux, authMiddleware)
	}
	if accountController != nil {
		accountController.RegisterRoutes(mux, authMiddleware)
	}
	if transactionController != nil {
		transactionController.RegisterRoutes(mux, authMiddleware)
	}
	if metricsHandler != nil {
		mux.Handle("/metrics", metricsHandler)
	}

	return mux
}
