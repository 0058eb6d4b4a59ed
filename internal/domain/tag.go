package domain

type Tag struct {
	BaseModel
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Artworks    []Artwork `gorm:"many2many:artwork_tag;constraint:OnDelete:CASCADE" json:"artworks,omitempty"`
}

func (Tag) TableName() string {
	return "tags"
}
