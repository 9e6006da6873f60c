// services/stats_service.go
package services

import (
	"time"

	"loyaltypro-backend/models"
	"loyaltypro-backend/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StatsService logs a per-merchant summary of the previous day's check-in
// activity every night.
type StatsService struct {
	db   *gorm.DB
	log  *zap.Logger
	cron *cron.Cron
}

func NewStatsService(db *gorm.DB, log *zap.Logger) *StatsService {
	return &StatsService{db: db, log: log}
}

func (s *StatsService) Start() {
	c := cron.New()

	// Run every day at 2 AM
	c.AddFunc("0 2 * * *", s.LogDailyStats)

	c.Start()
	s.cron = c
	s.log.Info("daily stats scheduler started")
}

func (s *StatsService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

type merchantDayStats struct {
	MerchantID uuid.UUID
	CheckIns   int64
	Points     int64
}

// LogDailyStats aggregates yesterday's EARN ledger entries per merchant.
func (s *StatsService) LogDailyStats() {
	start, end := utils.PreviousDayRange(time.Now())

	var rows []merchantDayStats
	err := s.db.Model(&models.Transaction{}).
		Select("merchant_id, COUNT(*) AS check_ins, SUM(points_change) AS points").
		Where("activity_type = ? AND date_time >= ? AND date_time < ?", models.ActivityEarn, start, end).
		Group("merchant_id").
		Scan(&rows).Error
	if err != nil {
		s.log.Error("failed to aggregate daily stats", zap.Error(err))
		return
	}

	for _, row := range rows {
		s.log.Info("daily merchant stats",
			zap.String("merchantId", row.MerchantID.String()),
			zap.String("day", start.Format("2006-01-02")),
			zap.Int64("earnTransactions", row.CheckIns),
			zap.Int64("pointsAwarded", row.Points),
		)
	}
}
