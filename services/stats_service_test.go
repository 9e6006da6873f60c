package services

import (
	"testing"
	"time"

	"loyaltypro-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogDailyStats(t *testing.T) {
	db := newTestDB(t)
	core, logs := observer.New(zap.InfoLevel)
	svc := NewStatsService(db, zap.New(core))

	merchant := seedMerchant(t, db, 10, 0, true)
	customer := models.Customer{PhoneNumber: "5551234567", MerchantID: merchant.ID}
	require.NoError(t, db.Create(&customer).Error)

	yesterday := time.Now().AddDate(0, 0, -1)
	for i := 0; i < 3; i++ {
		txn := models.Transaction{
			MerchantID:   merchant.ID,
			CustomerID:   customer.ID,
			DateTime:     yesterday,
			PointsChange: 10,
			ActivityType: models.ActivityEarn,
		}
		require.NoError(t, db.Create(&txn).Error)
	}
	// Today's activity is outside the reporting window.
	today := models.Transaction{
		MerchantID:   merchant.ID,
		CustomerID:   customer.ID,
		DateTime:     time.Now(),
		PointsChange: 10,
		ActivityType: models.ActivityEarn,
	}
	require.NoError(t, db.Create(&today).Error)

	svc.LogDailyStats()

	entries := logs.FilterMessage("daily merchant stats").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.EqualValues(t, 3, fields["earnTransactions"])
	assert.EqualValues(t, 30, fields["pointsAwarded"])
}
