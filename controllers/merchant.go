package controllers

import (
	"net/http"
	"strconv"

	"loyaltypro-backend/services"
	"loyaltypro-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateMerchantInput defines the expected JSON structure for creating a merchant
type CreateMerchantInput struct {
	Name            string   `json:"name" binding:"required"`
	Address         string   `json:"address"`
	PhoneNumber     *string  `json:"phoneNumber"`
	PointsPerVisit  *int     `json:"pointsPerVisit"`
	PointsPerDollar *float64 `json:"pointsPerDollar"`
	WelcomeBonus    *int     `json:"welcomeBonus"`
	IsActive        *bool    `json:"isActive"`
}

// UpdateMerchantInput defines the expected JSON structure for updating a merchant
type UpdateMerchantInput struct {
	Name            *string  `json:"name"`
	Address         *string  `json:"address"`
	PhoneNumber     *string  `json:"phoneNumber"`
	PointsPerVisit  *int     `json:"pointsPerVisit"`
	PointsPerDollar *float64 `json:"pointsPerDollar"`
	WelcomeBonus    *int     `json:"welcomeBonus"`
	IsActive        *bool    `json:"isActive"`
}

type MerchantController struct {
	svc *services.MerchantService
	log *zap.Logger
}

func NewMerchantController(svc *services.MerchantService, log *zap.Logger) *MerchantController {
	return &MerchantController{svc: svc, log: log}
}

// CreateMerchant creates a new merchant
func (ctl *MerchantController) CreateMerchant(c *gin.Context) {
	var input CreateMerchantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var errs []utils.FieldError
	errs = append(errs, utils.ValidateRequired("name", input.Name)...)
	errs = append(errs, utils.ValidateOptionalPhoneField("phoneNumber", input.PhoneNumber)...)
	errs = append(errs, utils.ValidateNonNegative("pointsPerVisit", input.PointsPerVisit)...)
	errs = append(errs, utils.ValidateNonNegativeFloat("pointsPerDollar", input.PointsPerDollar)...)
	errs = append(errs, utils.ValidateNonNegative("welcomeBonus", input.WelcomeBonus)...)
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	merchant, err := ctl.svc.Create(services.CreateMerchantData{
		Name:            input.Name,
		Address:         input.Address,
		PhoneNumber:     input.PhoneNumber,
		PointsPerVisit:  input.PointsPerVisit,
		PointsPerDollar: input.PointsPerDollar,
		WelcomeBonus:    input.WelcomeBonus,
		IsActive:        input.IsActive,
	})
	if err != nil {
		respondWithServiceError(c, ctl.log, err)
		return
	}

	utils.RespondWithSuccess(c, http.StatusCreated, "Merchant created successfully", merchant)
}

// GetMerchant retrieves a merchant by ID
func (ctl *MerchantController) GetMerchant(c *gin.Context) {
	id, errs := utils.ValidateUUIDParam("id", c.Param("id"))
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	merchant, err := ctl.svc.GetByID(id)
	if err != nil {
		respondWithServiceError(c, ctl.log, err)
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, "Merchant retrieved successfully", merchant)
}

// GetMerchantByPhone retrieves a merchant by phone number
func (ctl *MerchantController) GetMerchantByPhone(c *gin.Context) {
	phoneNumber := c.Param("phoneNumber")
	if errs := utils.ValidatePhoneField("phoneNumber", phoneNumber); len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	merchant, err := ctl.svc.GetByPhone(phoneNumber)
	if err != nil {
		respondWithServiceError(c, ctl.log, err)
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, "Merchant retrieved successfully", merchant)
}

// UpdateMerchant updates an existing merchant
func (ctl *MerchantController) UpdateMerchant(c *gin.Context) {
	id, errs := utils.ValidateUUIDParam("id", c.Param("id"))
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	var input UpdateMerchantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	errs = append(errs, utils.ValidateOptionalPhoneField("phoneNumber", input.PhoneNumber)...)
	errs = append(errs, utils.ValidateNonNegative("pointsPerVisit", input.PointsPerVisit)...)
	errs = append(errs, utils.ValidateNonNegativeFloat("pointsPerDollar", input.PointsPerDollar)...)
	errs = append(errs, utils.ValidateNonNegative("welcomeBonus", input.WelcomeBonus)...)
	if input.Name != nil {
		errs = append(errs, utils.ValidateRequired("name", *input.Name)...)
	}
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	merchant, err := ctl.svc.Update(id, services.UpdateMerchantData{
		Name:            input.Name,
		Address:         input.Address,
		PhoneNumber:     input.PhoneNumber,
		PointsPerVisit:  input.PointsPerVisit,
		PointsPerDollar: input.PointsPerDollar,
		WelcomeBonus:    input.WelcomeBonus,
		IsActive:        input.IsActive,
	})
	if err != nil {
		respondWithServiceError(c, ctl.log, err)
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, "Merchant updated successfully", merchant)
}

// DeleteMerchant soft deletes a merchant
func (ctl *MerchantController) DeleteMerchant(c *gin.Context) {
	id, errs := utils.ValidateUUIDParam("id", c.Param("id"))
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	merchant, err := ctl.svc.Delete(id)
	if err != nil {
		respondWithServiceError(c, ctl.log, err)
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, "Merchant deleted successfully", merchant)
}

// GetAllMerchants retrieves merchants with filtering and pagination
func (ctl *MerchantController) GetAllMerchants(c *gin.Context) {
	filters := services.MerchantFilterOptions{
		Name:        c.Query("name"),
		PhoneNumber: c.Query("phoneNumber"),
	}

	if raw := c.Query("isActive"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondWithValidationErrors(c, []utils.FieldError{
				{Path: "isActive", Message: "isActive must be 'true' or 'false'"},
			})
			return
		}
		filters.IsActive = &v
	}

	result, err := ctl.svc.List(filters, utils.GetPaginationOptions(c))
	if err != nil {
		respondWithServiceError(c, ctl.log, err)
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, "Merchants retrieved successfully", result)
}
