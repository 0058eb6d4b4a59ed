package domain

// Review is a scored opinion. A user has at most one review per artwork.
type Review struct {
	BaseModel
	Text      string  `gorm:"type:text;not null" json:"text"`
	Score     float64 `gorm:"not null" json:"score"`
	AuthorID  uint    `gorm:"not null;uniqueIndex:idx_reviews_author_artwork" json:"author_id"`
	ArtworkID uint    `gorm:"not null;uniqueIndex:idx_reviews_author_artwork;index" json:"artwork_id"`

	Author  *User    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Artwork *Artwork `gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}
