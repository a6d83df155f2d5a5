package models

import "time"

// Visit is a hit on the landing route, kept for the public stats counter.
type Visit struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	IP        string    `json:"ip"`
	CreatedAt time.Time `json:"created_at"`
}
