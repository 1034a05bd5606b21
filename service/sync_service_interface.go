package service

import (
	"context"

	"coaxdirect/models"
)

// SyncServiceInterface defines the contract for catalog asset synchronization
type SyncServiceInterface interface {
	// SyncCatalogAssets synchronizes imagery from a Drive folder into the
	// catalog_assets table and returns stats: inserted = new rows created,
	// skipped = already existed (by drive_file_id), total = assets seen in Drive.
	SyncCatalogAssets(ctx context.Context, folderID string) (assets []models.CatalogAsset, inserted int, skipped int, total int, err error)
}
