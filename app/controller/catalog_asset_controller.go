package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"coaxdirect/repository"
	"coaxdirect/service"
)

// CatalogAssetController handles HTTP requests for catalog imagery
type CatalogAssetController struct {
	syncService  service.SyncServiceInterface
	driveService service.DriveServiceInterface
	repository   repository.CatalogAssetRepositoryInterface
}

// NewCatalogAssetController creates a new CatalogAssetController
// syncService and driveService may be nil when Drive credentials are not
// configured; the endpoints respond 503 in that case.
func NewCatalogAssetController(syncService service.SyncServiceInterface, driveService service.DriveServiceInterface, repo repository.CatalogAssetRepositoryInterface) *CatalogAssetController {
	return &CatalogAssetController{
		syncService:  syncService,
		driveService: driveService,
		repository:   repo,
	}
}

// SyncAssets handles POST /admin/catalog-assets/sync?folderId=FOLDER_ID
// Fetches catalog imagery from the shared Drive folder and syncs new files
// into the database.
// Example response: {"inserted": 3, "skipped": 12, "total": 15}
func (c *CatalogAssetController) SyncAssets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if c.syncService == nil {
		http.Error(w, "Asset sync is not configured (missing Drive credentials)", http.StatusServiceUnavailable)
		return
	}

	folderID := r.URL.Query().Get("folderId")
	if folderID == "" {
		http.Error(w, "folderId parameter is required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	_, inserted, skipped, total, err := c.syncService.SyncCatalogAssets(ctx, folderID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to sync catalog assets: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{
		"inserted": inserted,
		"skipped":  skipped,
		"total":    total,
	})
}

// GetOptimizedImage handles GET /catalog-assets/{slug}/image?size=thumb
// Serves an optimized JPEG for a connector or cable type, downloading from
// Drive and caching on first request. size is "thumb" or "medium".
func (c *CatalogAssetController) GetOptimizedImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Path format: /catalog-assets/{slug}/image
	path := strings.TrimPrefix(r.URL.Path, "/catalog-assets/")
	slug := strings.TrimSuffix(path, "/image")
	if slug == "" || slug == path {
		http.Error(w, "slug parameter is required", http.StatusBadRequest)
		return
	}

	size := r.URL.Query().Get("size")
	if size == "" {
		size = "thumb"
	}

	cachePath := service.GetCachePath(slug, size)
	if service.CacheExists(cachePath) {
		data, err := service.ReadFromCache(cachePath)
		if err == nil {
			w.Header().Set("Content-Type", "image/jpeg")
			w.Header().Set("Cache-Control", "public, max-age=86400")
			w.Write(data)
			return
		}
		log.Printf("⚠️  GetOptimizedImage: cache read failed for %s: %v", cachePath, err)
	}

	if c.driveService == nil {
		http.Error(w, "Image downloads are not configured (missing Drive credentials)", http.StatusServiceUnavailable)
		return
	}

	ctx := context.Background()
	asset, err := c.repository.GetBySlug(ctx, slug)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get catalog asset: %v", err), http.StatusNotFound)
		return
	}

	imageData, err := c.driveService.DownloadImage(asset.DriveFileID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to download image: %v", err), http.StatusBadGateway)
		return
	}

	optimized, err := service.OptimizeImage(imageData, size)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to optimize image: %v", err), http.StatusInternalServerError)
		return
	}

	if err := service.SaveToCache(cachePath, optimized); err != nil {
		// Serve anyway; caching is best-effort
		log.Printf("⚠️  GetOptimizedImage: failed to cache %s: %v", cachePath, err)
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(optimized)
}
