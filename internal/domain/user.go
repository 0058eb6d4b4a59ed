package domain

// User authors comments and reviews. PasswordHash holds a bcrypt hash.
type User struct {
	BaseModel
	Login        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"login"`
	PasswordHash string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Comments     []Comment `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Reviews      []Review  `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

func (User) TableName() string {
	return "users"
}
