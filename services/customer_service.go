// services/customer_service.go
package services

import (
	"errors"
	"strings"
	"time"

	"loyaltypro-backend/models"
	"loyaltypro-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const recentTransactionCount = 5

type CustomerService struct {
	db       *gorm.DB
	log      *zap.Logger
	notifier *NotificationService
}

func NewCustomerService(db *gorm.DB, log *zap.Logger, notifier *NotificationService) *CustomerService {
	return &CustomerService{db: db, log: log, notifier: notifier}
}

// UpdateCustomerData carries the optional fields of a customer update.
// Nil means "leave untouched".
type UpdateCustomerData struct {
	Name        *string
	PhoneNumber *string
	TotalPoints *int
}

// CustomerFilterOptions are AND-combined list filters.
type CustomerFilterOptions struct {
	PhoneNumber    string
	Name           string
	TotalPointsMin *int
	TotalPointsMax *int
	MerchantID     *uuid.UUID
}

// CheckIn awards visit points to the customer identified by phoneNumber at
// the given merchant, creating the customer on first visit. The whole
// operation runs in one database transaction: a failure at any point leaves
// no partial customer or ledger state.
func (s *CustomerService) CheckIn(phoneNumber string, merchantID uuid.UUID, name string) (*models.Customer, *models.Transaction, error) {
	var (
		customer models.Customer
		checkIn  models.Transaction
		merchant models.Merchant
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&merchant, "id = ? AND deleted_at IS NULL", merchantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFoundError("Merchant not found")
			}
			return err
		}
		if !merchant.IsActive {
			return NewInvalidStateError("Merchant is not active")
		}

		now := time.Now()

		// Resolve customer existence exactly once, then branch.
		err := tx.First(&customer, "phone_number = ?", phoneNumber).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			customer = models.Customer{
				PhoneNumber: phoneNumber,
				Name:        name,
				TotalPoints: merchant.PointsPerVisit + merchant.WelcomeBonus,
				MerchantID:  merchant.ID,
				LastCheckIn: &now,
			}
			if err := tx.Create(&customer).Error; err != nil {
				if IsDuplicateKeyError(err) {
					// Lost a concurrent first check-in race.
					return NewConflictError("Customer with this phone number already exists")
				}
				return err
			}

			if merchant.WelcomeBonus > 0 {
				bonus := models.Transaction{
					MerchantID:   merchant.ID,
					CustomerID:   customer.ID,
					PointsChange: merchant.WelcomeBonus,
					ActivityType: models.ActivityEarn,
					Notes:        "Welcome bonus",
				}
				if err := tx.Create(&bonus).Error; err != nil {
					return err
				}
			}

		case err != nil:
			return err

		default:
			updates := map[string]interface{}{
				"total_points":  gorm.Expr("total_points + ?", merchant.PointsPerVisit),
				"last_check_in": now,
			}
			// Backfill the name only when it was never set.
			if name != "" && customer.Name == "" {
				updates["name"] = name
			}
			if err := tx.Model(&customer).Updates(updates).Error; err != nil {
				return err
			}
			if err := tx.First(&customer, "id = ?", customer.ID).Error; err != nil {
				return err
			}
		}

		checkIn = models.Transaction{
			MerchantID:   merchant.ID,
			CustomerID:   customer.ID,
			PointsChange: merchant.PointsPerVisit,
			ActivityType: models.ActivityEarn,
			Notes:        "Check-in points",
		}
		return tx.Create(&checkIn).Error
	})
	if err != nil {
		return nil, nil, err
	}

	s.log.Info("customer checked in",
		zap.String("customerId", customer.ID.String()),
		zap.String("merchantId", merchant.ID.String()),
		zap.Int("pointsChange", checkIn.PointsChange),
	)

	if s.notifier.Enabled() {
		go s.notifier.SendCheckInConfirmation(customer.PhoneNumber, checkIn.PointsChange, customer.TotalPoints, merchant.Name)
	}

	return &customer, &checkIn, nil
}

// GetByPhone returns a customer with its 5 most recent ledger entries.
func (s *CustomerService) GetByPhone(phoneNumber string) (*models.Customer, error) {
	return s.findWithTransactions("phone_number = ? AND deleted_at IS NULL", phoneNumber)
}

// GetByID returns a customer with its 5 most recent ledger entries.
func (s *CustomerService) GetByID(id uuid.UUID) (*models.Customer, error) {
	return s.findWithTransactions("id = ? AND deleted_at IS NULL", id)
}

func (s *CustomerService) findWithTransactions(query string, arg interface{}) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.
		Preload("Transactions", func(db *gorm.DB) *gorm.DB {
			return db.Order("date_time DESC").Limit(recentTransactionCount)
		}).
		First(&customer, query, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Customer not found")
		}
		return nil, err
	}
	return &customer, nil
}

// Update applies the supplied fields to the customer identified by
// currentPhoneNumber and returns it with recent transactions.
func (s *CustomerService) Update(currentPhoneNumber string, data UpdateCustomerData) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, "phone_number = ? AND deleted_at IS NULL", currentPhoneNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Customer not found")
		}
		return nil, err
	}

	if data.PhoneNumber != nil && *data.PhoneNumber != currentPhoneNumber {
		var count int64
		if err := s.db.Model(&models.Customer{}).
			Where("phone_number = ? AND deleted_at IS NULL", *data.PhoneNumber).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, NewConflictError("Phone number already exists for another customer")
		}
		customer.PhoneNumber = *data.PhoneNumber
	}
	if data.Name != nil {
		customer.Name = *data.Name
	}
	if data.TotalPoints != nil {
		customer.TotalPoints = *data.TotalPoints
	}

	if err := s.db.Save(&customer).Error; err != nil {
		if IsDuplicateKeyError(err) {
			return nil, NewConflictError("Phone number already exists for another customer")
		}
		return nil, err
	}

	return s.findWithTransactions("id = ?", customer.ID)
}

// Delete soft-deletes a customer. Points and ledger history are preserved.
func (s *CustomerService) Delete(phoneNumber string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, "phone_number = ?", phoneNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Customer not found")
		}
		return nil, err
	}

	if customer.DeletedAt != nil {
		return nil, NewInvalidStateError("Customer already deleted")
	}

	now := time.Now()
	customer.DeletedAt = &now
	if err := s.db.Save(&customer).Error; err != nil {
		return nil, err
	}

	return &customer, nil
}

// List returns customers matching the filters, most recently created first.
func (s *CustomerService) List(filters CustomerFilterOptions, opts utils.PaginationOptions) (*utils.PaginatedResult, error) {
	query := s.db.Model(&models.Customer{})

	if filters.PhoneNumber != "" {
		query = query.Where("phone_number LIKE ?", "%"+filters.PhoneNumber+"%")
	}
	if filters.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filters.Name)+"%")
	}
	if filters.TotalPointsMin != nil {
		query = query.Where("total_points >= ?", *filters.TotalPointsMin)
	}
	if filters.TotalPointsMax != nil {
		query = query.Where("total_points <= ?", *filters.TotalPointsMax)
	}
	if filters.MerchantID != nil {
		query = query.Where("merchant_id = ?", *filters.MerchantID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var customers []models.Customer
	if err := query.
		Order("created_at DESC").
		Offset(opts.Skip).
		Limit(opts.Limit).
		Find(&customers).Error; err != nil {
		return nil, err
	}

	result := utils.PaginateResponse(customers, total, opts)
	return &result, nil
}
