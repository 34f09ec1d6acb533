package models

import "time"

type Category struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"type:varchar(100);not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	Items       []MenuItem `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
}
