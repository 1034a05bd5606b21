package service

import "coaxdirect/models"

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListCatalogAssets(folderID string) ([]models.CatalogAsset, error)
	DownloadImage(fileID string) ([]byte, error)
}
