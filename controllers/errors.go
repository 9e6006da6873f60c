package controllers

import (
	"errors"
	"net/http"

	"loyaltypro-backend/services"
	"loyaltypro-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondWithServiceError maps a service error to the response envelope.
// Typed errors keep their status; engine errors are normalized so internal
// detail never reaches the client.
func respondWithServiceError(c *gin.Context, log *zap.Logger, err error) {
	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		utils.RespondWithError(c, apiErr.Status, apiErr.Message)
		return
	}

	if services.IsDuplicateKeyError(err) {
		utils.RespondWithError(c, http.StatusConflict, "Phone number already exists")
		return
	}

	if services.IsDatabaseError(err) {
		log.Error("database error", zap.Error(err))
		utils.RespondWithError(c, http.StatusBadRequest, "Database Error")
		return
	}

	log.Error("unhandled error", zap.Error(err))
	utils.RespondWithError(c, http.StatusInternalServerError, "Internal Server Error")
}
