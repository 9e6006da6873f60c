package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Points ledger activity types.
const (
	ActivityEarn       = "EARN"
	ActivityRedeem     = "REDEEM"
	ActivityAdjustment = "ADJUSTMENT"
)

// Transaction is an append-only ledger entry explaining a single points
// change. Rows are never updated or deleted.
type Transaction struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	MerchantID uuid.UUID `gorm:"type:uuid;index;not null" json:"merchantId"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`

	DateTime     time.Time `gorm:"index" json:"dateTime"`
	PointsChange int       `gorm:"not null" json:"pointsChange"`
	ActivityType string    `gorm:"type:varchar(20);not null" json:"activityType"`
	Notes        string    `json:"notes,omitempty"`

	PurchaseAmount *float64   `gorm:"type:decimal(10,2)" json:"purchaseAmount,omitempty"`
	RewardID       *uuid.UUID `gorm:"type:uuid" json:"rewardId,omitempty"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.DateTime.IsZero() {
		t.DateTime = time.Now()
	}
	return
}
