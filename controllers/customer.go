package controllers

import (
	"net/http"
	"strconv"

	"loyaltypro-backend/services"
	"loyaltypro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckInInput defines the expected JSON structure for a customer check-in
type CheckInInput struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	MerchantID  string `json:"merchantId" binding:"required"`
	Name        string `json:"name"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
	TotalPoints *int    `json:"totalPoints"`
}

type CustomerController struct {
	svc *services.CustomerService
	log *zap.Logger
}

func NewCustomerController(svc *services.CustomerService, log *zap.Logger) *CustomerController {
	return &CustomerController{svc: svc, log: log}
}

// CheckIn awards visit points, creating the customer on first visit
func (ctl *CustomerController) CheckIn(c *gin.Context) {
	var input CheckInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var errs []utils.FieldError
	errs = append(errs, utils.ValidatePhoneField("phoneNumber", input.PhoneNumber)...)
	merchantID, idErrs := utils.ValidateUUIDParam("merchantId", input.MerchantID)
	errs = append(errs, idErrs...)
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	customer, transaction, err := ctl.svc.CheckIn(input.PhoneNumber, merchantID, input.Name)
	if err != nil {
		respondWithServiceError(c, ctl.log, err)
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, "Customer checked in successfully", gin.H{
		"customer":    customer,
		"transaction": transaction,
	})
}

// GetCustomer retrieves a customer by phone number, with recent transactions
func (ctl *CustomerController) GetCustomer(c *gin.Context) {
	phoneNumber := c.Param("phoneNumber")
	if errs := utils.ValidatePhoneField("phoneNumber", phoneNumber); len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	customer, err := ctl.svc.GetByPhone(phoneNumber)
	if err != nil {
		respondWithServiceError(c, ctl.log, err)
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, "Customer retrieved successfully", customer)
}

// GetCustomerByID retrieves a customer by ID, with recent transactions
func (ctl *CustomerController) GetCustomerByID(c *gin.Context) {
	id, errs := utils.ValidateUUIDParam("id", c.Param("id"))
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	customer, err := ctl.svc.GetByID(id)
	if err != nil {
		respondWithServiceError(c, ctl.log, err)
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, "Customer retrieved successfully", customer)
}

// UpdateCustomer updates an existing customer
func (ctl *CustomerController) UpdateCustomer(c *gin.Context) {
	phoneNumber := c.Param("phoneNumber")

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var errs []utils.FieldError
	errs = append(errs, utils.ValidatePhoneField("phoneNumber", phoneNumber)...)
	errs = append(errs, utils.ValidateOptionalPhoneField("phoneNumber", input.PhoneNumber)...)
	errs = append(errs, utils.ValidateNonNegative("totalPoints", input.TotalPoints)...)
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	customer, err := ctl.svc.Update(phoneNumber, services.UpdateCustomerData{
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		TotalPoints: input.TotalPoints,
	})
	if err != nil {
		respondWithServiceError(c, ctl.log, err)
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, "Customer updated successfully", customer)
}

// DeleteCustomer soft deletes a customer
func (ctl *CustomerController) DeleteCustomer(c *gin.Context) {
	phoneNumber := c.Param("phoneNumber")
	if errs := utils.ValidatePhoneField("phoneNumber", phoneNumber); len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	customer, err := ctl.svc.Delete(phoneNumber)
	if err != nil {
		respondWithServiceError(c, ctl.log, err)
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, "Customer deleted successfully", customer)
}

// GetAllCustomers retrieves customers with filtering and pagination
func (ctl *CustomerController) GetAllCustomers(c *gin.Context) {
	filters := services.CustomerFilterOptions{
		PhoneNumber: c.Query("phoneNumber"),
		Name:        c.Query("name"),
	}

	var errs []utils.FieldError
	if raw := c.Query("totalPointsMin"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, utils.FieldError{Path: "totalPointsMin", Message: "totalPointsMin must be an integer"})
		} else {
			filters.TotalPointsMin = &v
		}
	}
	if raw := c.Query("totalPointsMax"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, utils.FieldError{Path: "totalPointsMax", Message: "totalPointsMax must be an integer"})
		} else {
			filters.TotalPointsMax = &v
		}
	}
	if raw := c.Query("merchantId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			errs = append(errs, utils.FieldError{Path: "merchantId", Message: "merchantId must be a valid UUID"})
		} else {
			filters.MerchantID = &id
		}
	}
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	result, err := ctl.svc.List(filters, utils.GetPaginationOptions(c))
	if err != nil {
		respondWithServiceError(c, ctl.log, err)
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, "Customers retrieved successfully", result)
}
