package router

import (
	"net/http"
	"strings"

	"coaxdirect/app/controller"
)

type Controllers struct {
	Customizer   *controller.CustomizerController
	QuoteRequest *controller.QuoteRequestController
	Newsletter   *controller.NewsletterController
	CatalogAsset *controller.CatalogAssetController
	Quote        *controller.QuoteController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Customizer routes
	http.HandleFunc("/api/customizer/catalog", controllers.Customizer.GetCatalog)
	http.HandleFunc("/api/customizer/price", controllers.Customizer.Price)
	http.HandleFunc("/api/customizer/line-item", controllers.Customizer.AddLineItem)

	// Quote request routes
	http.HandleFunc("/api/quote-requests", controllers.QuoteRequest.Create)
	http.HandleFunc("/admin/quote-requests", controllers.QuoteRequest.List)

	// Newsletter signup
	http.HandleFunc("/api/newsletter", controllers.Newsletter.Subscribe)

	// Catalog asset sync from Drive
	http.HandleFunc("/admin/catalog-assets/sync", controllers.CatalogAsset.SyncAssets)

	// Optimized catalog imagery
	http.HandleFunc("/catalog-assets/", func(w http.ResponseWriter, r *http.Request) {
		// Check if this is the image endpoint
		if strings.HasSuffix(r.URL.Path, "/image") {
			controllers.CatalogAsset.GetOptimizedImage(w, r)
			return
		}
		// Otherwise, return 404
		http.Error(w, "Not found", http.StatusNotFound)
	})

	// Printable quotes
	http.HandleFunc("/admin/quote/render", controllers.Quote.RenderQuote)
	http.HandleFunc("/admin/quote/pdf", controllers.Quote.DownloadQuotePDF)
}
