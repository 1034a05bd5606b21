package service

import (
	"context"
	"fmt"
	"log"

	"coaxdirect/models"
	"coaxdirect/repository"
)

// SyncService handles synchronization of catalog imagery between the shared
// Google Drive folder and PostgreSQL.
// Implements SyncServiceInterface
type SyncService struct {
	driveService DriveServiceInterface
	repository   repository.CatalogAssetRepositoryInterface
}

// NewSyncService creates a new SyncService
func NewSyncService(driveService DriveServiceInterface, repo repository.CatalogAssetRepositoryInterface) *SyncService {
	return &SyncService{
		driveService: driveService,
		repository:   repo,
	}
}

// Ensure SyncService implements SyncServiceInterface
var _ SyncServiceInterface = (*SyncService)(nil)

// SyncCatalogAssets synchronizes catalog imagery from Google Drive to
// PostgreSQL. A file that fails to insert is logged and skipped so one bad
// file never aborts the whole sync.
func (s *SyncService) SyncCatalogAssets(ctx context.Context, folderID string) (assets []models.CatalogAsset, inserted int, skipped int, total int, err error) {
	log.Printf("🔄 Starting catalog asset sync for folder: %s", folderID)

	driveAssets, err := s.driveService.ListCatalogAssets(folderID)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("failed to list catalog assets from Drive: %w", err)
	}

	log.Printf("📦 Processing %d catalog assets from Google Drive", len(driveAssets))
	total = len(driveAssets)

	for _, asset := range driveAssets {
		exists, err := s.repository.ExistsByDriveFileID(ctx, asset.DriveFileID)
		if err != nil {
			log.Printf("❌ Error checking existence for drive_file_id: %s: %v", asset.DriveFileID, err)
			continue
		}

		if exists {
			log.Printf("⏭️  Skipping drive_file_id: %s (already exists in database)", asset.DriveFileID)
			skipped++
			continue
		}

		log.Printf("🆕 New asset detected (slug: %s, drive_file_id: %s)", asset.Slug, asset.DriveFileID)

		dbAsset := &models.CatalogAssetDB{
			DriveFileID: asset.DriveFileID,
			Slug:        asset.Slug,
			ImageURL:    asset.ImageURL,
		}

		if err := s.repository.Insert(ctx, dbAsset); err != nil {
			log.Printf("❌ Error inserting drive_file_id %s into database: %v", asset.DriveFileID, err)
			continue
		}

		log.Printf("✅ Successfully synced asset (slug: %s)", asset.Slug)
		inserted++
	}

	log.Printf("🎉 Catalog asset sync completed: %d inserted, %d skipped, %d total processed", inserted, skipped, total)
	return driveAssets, inserted, skipped, total, nil
}
