package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Merchant struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address,omitempty"`

	// Phone numbers are unique among non-deleted merchants only, so a
	// soft-deleted merchant's number can be reused.
	PhoneNumber *string `gorm:"uniqueIndex:idx_merchants_phone,where:deleted_at IS NULL" json:"phoneNumber,omitempty"`

	PointsPerVisit  int      `gorm:"default:10" json:"pointsPerVisit"`
	PointsPerDollar *float64 `gorm:"type:decimal(10,2)" json:"pointsPerDollar,omitempty"`
	WelcomeBonus    int      `gorm:"default:0" json:"welcomeBonus"`
	IsActive        bool     `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}

// Initialize UUID before creating
func (m *Merchant) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
