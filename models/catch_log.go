// File: /models/catch_log.go
package models

import (
	"time"
)

type CatchLog struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Species   string    `json:"species" gorm:"not null;size:255"`
	Weight    float64   `json:"weight" gorm:"default:0"`
	Length    float64   `json:"length" gorm:"default:0"`
	Location  string    `json:"location" gorm:"size:255"`
	Date      string    `json:"date" gorm:"size:20"`
	Note      string    `json:"note"`
	Image     string    `json:"image" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
