package httpapi

import (
	"expvar"
	"net/http"
)

// NewRouter registers HTTP routes and returns the handler with middleware.
func NewRouter(app *App) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/categories", app.listCategoriesHandler)
	mux.HandleFunc("/categories/", app.categoryHandler)
	mux.HandleFunc("/products", app.mergeProductHandler)
	mux.HandleFunc("/products/combine", app.combineHandler)
	mux.HandleFunc("/products/", app.productHandler)
	mux.HandleFunc("/orders", app.createOrderHandler)
	mux.HandleFunc("/orders/", app.getOrderHandler)
	mux.HandleFunc("/catalog/reload", app.reloadHandler)
	mux.HandleFunc("/healthz", app.healthHandler)
	mux.HandleFunc("/debug/metrics", app.metricsHandler)
	mux.Handle("/debug/vars", expvar.Handler())
	mux.HandleFunc("/openapi.yaml", app.openapiHandler)
	mux.HandleFunc("/docs", app.docsHandler)
	return WithRequestID(WithLogging(mux))
}
