package models

import "gorm.io/gorm"

// Partner is the tenant every POS entity is scoped under.
type Partner struct {
	gorm.Model

	Name     string `json:"name" gorm:"size:255"`
	Email    string `json:"email" gorm:"size:150;uniqueIndex"`
	Password string `json:"-" gorm:"size:255"`
}
