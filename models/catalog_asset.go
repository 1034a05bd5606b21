package models

// CatalogAsset represents an image file discovered in the Drive assets folder.
// The filename (minus extension) is the catalog slug the image belongs to,
// e.g. "n-male.png" -> connector slug "n-male".
type CatalogAsset struct {
	DriveFileID string `json:"driveFileId"`
	FileName    string `json:"fileName"`
	Slug        string `json:"slug"`
	ImageURL    string `json:"imageUrl"`
}

// CatalogAssetDB is the database row for a synced catalog asset
type CatalogAssetDB struct {
	ID          int64  `json:"id"`
	DriveFileID string `json:"driveFileId"`
	Slug        string `json:"slug"`
	ImageURL    string `json:"imageUrl"`
}
