package dto

// CatalogStats reports row counts per table
type CatalogStats struct {
	Categories int64 `json:"categories"`
	Artworks   int64 `json:"artworks"`
	Users      int64 `json:"users"`
	Comments   int64 `json:"comments"`
	Reviews    int64 `json:"reviews"`
	Tags       int64 `json:"tags"`
}
