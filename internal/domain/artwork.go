package domain

import "gorm.io/datatypes"

// ArtworkTagTable is the join table between artworks and tags
const ArtworkTagTable = "artwork_tag"

// Artwork is a single catalog entry (film, book, show) belonging to a category
type Artwork struct {
	BaseModel
	Title       string         `gorm:"type:varchar(255);not null;index" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	PosterURL   string         `gorm:"type:varchar(2048)" json:"poster_url"`
	ReleaseDate datatypes.Date `json:"release_date"`
	AgeRating   string         `gorm:"type:varchar(3)" json:"age_rating"`
	StarRating  float64        `json:"star_rating"`
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	Comments []Comment `gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Reviews  []Review  `gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	Tags     []Tag     `gorm:"many2many:artwork_tag;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
}

func (Artwork) TableName() string {
	return "artworks"
}
