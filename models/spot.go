// File: /models/spot.go
package models

import (
	"time"
)

type FishingSpot struct {
	ID          string      `json:"id" gorm:"primaryKey;size:191"`
	Name        string      `json:"name" gorm:"not null;size:255"`
	Image       string      `json:"image" gorm:"size:500"`
	Distance    string      `json:"distance" gorm:"size:50"`
	Tags        StringSlice `json:"tags" gorm:"type:json"`
	Rating      float64     `json:"rating" gorm:"default:0"`
	Price       string      `json:"price" gorm:"size:50"`
	Address     string      `json:"address" gorm:"size:500"`
	Features    StringSlice `json:"features" gorm:"type:json"`
	FishSpecies StringSlice `json:"fish_species" gorm:"type:json"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
