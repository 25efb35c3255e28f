package models

import "time"

// Ponto é um registro de batida (entrada, almoço, saída).
type Ponto struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`

	Type      string    `gorm:"size:20;not null" json:"type"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`
}
