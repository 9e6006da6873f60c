package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	PhoneNumber string `gorm:"uniqueIndex;not null" json:"phoneNumber"`
	// Empty string means the name was never provided. Check-in only
	// backfills it, never overwrites.
	Name        string     `json:"name,omitempty"`
	TotalPoints int        `gorm:"default:0" json:"totalPoints"`
	LastCheckIn *time.Time `json:"lastCheckIn"`

	// Merchant the customer first checked in at.
	MerchantID uuid.UUID `gorm:"type:uuid;index;not null" json:"merchantId"`

	Transactions []Transaction `gorm:"foreignKey:CustomerID" json:"transactions,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}

// Initialize UUID before creating
func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
