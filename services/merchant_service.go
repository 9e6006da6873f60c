// services/merchant_service.go
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

type MerchantService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewMerchantService(db *gorm.DB, log *zap.Logger) *MerchantService {
	return &MerchantService{db: db, log: log}
}

// CreateMerchantData carries the fields of a merchant creation request.
type CreateMerchantData struct {
	Name            string
	Address         string
	PhoneNumber     *string
	PointsPerVisit  *int
	PointsPerDollar *float64
	WelcomeBonus    *int
	IsActive        *bool
}

// UpdateMerchantData carries the optional fields of a merchant update.
type UpdateMerchantData struct {
	Name            *string
	Address         *string
	PhoneNumber     *string
	PointsPerVisit  *int
	PointsPerDollar *float64
	WelcomeBonus    *int
	IsActive        *bool
}

// MerchantFilterOptions are AND-combined list filters.
type MerchantFilterOptions struct {
	Name        string
	PhoneNumber string
	IsActive    *bool
}

// Create registers a merchant, applying defaults: pointsPerVisit 10,
// welcomeBonus 0, isActive true.
func (s *MerchantService) Create(data CreateMerchantData) (*models.Merchant, error) {
	if data.PhoneNumber != nil {
		taken, err := s.phoneTaken(*data.PhoneNumber, uuid.Nil)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, NewConflictError("Phone number already exists for another merchant")
		}
	}

	merchant := models.Merchant{
		Name:            data.Name,
		Address:         data.Address,
		PhoneNumber:     data.PhoneNumber,
		PointsPerVisit:  10,
		PointsPerDollar: data.PointsPerDollar,
		WelcomeBonus:    0,
		IsActive:        true,
	}
	if data.PointsPerVisit != nil {
		merchant.PointsPerVisit = *data.PointsPerVisit
	}
	if data.WelcomeBonus != nil {
		merchant.WelcomeBonus = *data.WelcomeBonus
	}
	if data.IsActive != nil {
		merchant.IsActive = *data.IsActive
	}

	if err := s.db.Create(&merchant).Error; err != nil {
		if IsDuplicateKeyError(err) {
			return nil, NewConflictError("Phone number already exists for another merchant")
		}
		return nil, err
	}

	s.log.Info("merchant created",
		zap.String("merchantId", merchant.ID.String()),
		zap.String("name", merchant.Name),
	)
	return &merchant, nil
}

// Update applies the supplied fields to a merchant. Soft-deleted merchants
// cannot be updated.
func (s *MerchantService) Update(id uuid.UUID, data UpdateMerchantData) (*models.Merchant, error) {
	var merchant models.Merchant
	if err := s.db.First(&merchant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Merchant not found")
		}
		return nil, err
	}

	if merchant.DeletedAt != nil {
		return nil, NewInvalidStateError("Cannot update deleted merchant")
	}

	if data.PhoneNumber != nil &&
		(merchant.PhoneNumber == nil || *data.PhoneNumber != *merchant.PhoneNumber) {
		taken, err := s.phoneTaken(*data.PhoneNumber, merchant.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, NewConflictError("Phone number already exists for another merchant")
		}
		merchant.PhoneNumber = data.PhoneNumber
	}
	if data.Name != nil {
		merchant.Name = *data.Name
	}
	if data.Address != nil {
		merchant.Address = *data.Address
	}
	if data.PointsPerVisit != nil {
		merchant.PointsPerVisit = *data.PointsPerVisit
	}
	if data.PointsPerDollar != nil {
		merchant.PointsPerDollar = data.PointsPerDollar
	}
	if data.WelcomeBonus != nil {
		merchant.WelcomeBonus = *data.WelcomeBonus
	}
	if data.IsActive != nil {
		merchant.IsActive = *data.IsActive
	}

	if err := s.db.Save(&merchant).Error; err != nil {
		if IsDuplicateKeyError(err) {
			return nil, NewConflictError("Phone number already exists for another merchant")
		}
		return nil, err
	}

	return &merchant, nil
}

// Delete soft-deletes a merchant and forces it inactive.
func (s *MerchantService) Delete(id uuid.UUID) (*models.Merchant, error) {
	var merchant models.Merchant
	if err := s.db.First(&merchant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Merchant not found")
		}
		return nil, err
	}

	if merchant.DeletedAt != nil {
		return nil, NewInvalidStateError("Merchant already deleted")
	}

	now := time.Now()
	merchant.DeletedAt = &now
	merchant.IsActive = false
	if err := s.db.Save(&merchant).Error; err != nil {
		return nil, err
	}

	return &merchant, nil
}

// GetByID returns a merchant; soft-deleted merchants read as absent.
func (s *MerchantService) GetByID(id uuid.UUID) (*models.Merchant, error) {
	return s.find("id = ? AND deleted_at IS NULL", id)
}

// GetByPhone returns a merchant; soft-deleted merchants read as absent.
func (s *MerchantService) GetByPhone(phoneNumber string) (*models.Merchant, error) {
	return s.find("phone_number = ? AND deleted_at IS NULL", phoneNumber)
}

func (s *MerchantService) find(query string, arg interface{}) (*models.Merchant, error) {
	var merchant models.Merchant
	if err := s.db.First(&merchant, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Merchant not found")
		}
		return nil, err
	}
	return &merchant, nil
}

// List returns non-deleted merchants matching the filters, most recently
// created first.
func (s *MerchantService) List(filters MerchantFilterOptions, opts utils.PaginationOptions) (*utils.PaginatedResult, error) {
	query := s.db.Model(&models.Merchant{}).Where("deleted_at IS NULL")

	if filters.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filters.Name)+"%")
	}
	if filters.PhoneNumber != "" {
		query = query.Where("phone_number LIKE ?", "%"+filters.PhoneNumber+"%")
	}
	if filters.IsActive != nil {
		query = query.Where("is_active = ?", *filters.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var merchants []models.Merchant
	if err := query.
		Order("created_at DESC").
		Offset(opts.Skip).
		Limit(opts.Limit).
		Find(&merchants).Error; err != nil {
		return nil, err
	}

	result := utils.PaginateResponse(merchants, total, opts)
	return &result, nil
}

// phoneTaken reports whether another non-deleted merchant already holds the
// phone number.
func (s *MerchantService) phoneTaken(phoneNumber string, excludeID uuid.UUID) (bool, error) {
	query := s.db.Model(&models.Merchant{}).
		Where("phone_number = ? AND deleted_at IS NULL", phoneNumber)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
