package domain

// Category groups artworks. Deleting a category deletes its artworks.
type Category struct {
	BaseModel
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Artworks    []Artwork `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"artworks,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}
