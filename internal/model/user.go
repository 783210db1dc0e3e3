// Package model defines domain entities for the application.
package model

import "time"

// User represents a stored user record.
// The store assigns ID on insert and GORM populates CreatedAt; neither field
// is mutated afterwards.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
