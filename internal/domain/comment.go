package domain

type Comment struct {
	BaseModel
	Text      string `gorm:"type:text;not null" json:"text"`
	Likes     int    `gorm:"not null;default:0" json:"likes"`
	Dislikes  int    `gorm:"not null;default:0" json:"dislikes"`
	AuthorID  uint   `gorm:"not null;index" json:"author_id"`
	ArtworkID uint   `gorm:"not null;index" json:"artwork_id"`

	Author  *User    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Artwork *Artwork `gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}
