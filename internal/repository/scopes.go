package repository

import "gorm.io/gorm"

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
