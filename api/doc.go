// Package api provides the HTTP API layer for the noticias service.
// It uses the Huma framework on a chi router for OpenAPI documentation
// and a clean handler interface.
//
// # Routes
//
//   - GET /api/noticias: aggregated news feed, always 200
//   - GET /api/buscar?q=: video search proxy
//   - GET /api/download?url=: download proxy
//   - GET /metrics: Prometheus metrics, when configured
//   - GET /openapi.json and /docs: generated by Huma
//   - OPTIONS on any path: 204 preflight
//   - anything else: 200 plain-text banner
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:         logger,
//	    RateLimit:      120,
//	    MetricsHandler: metrics.Handler(),
//	})
//
//	handlers.NewNewsHandler(aggregator, registry).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
package api
