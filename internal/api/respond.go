package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farmtotable-be/internal/cart"
	"farmtotable-be/internal/logger"
	"farmtotable-be/internal/order"
	"farmtotable-be/internal/product"
	"farmtotable-be/internal/user"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondServiceError maps domain sentinels to the HTTP taxonomy:
// validation 400, unauthorized 401, not found 404, conflict 409,
// everything else 500 with a generic message.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrQuantityExceedsStock),
		errors.Is(err, order.ErrCartEmpty),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, product.ErrNameRequired),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, product.ErrInvalidStock):
		respondError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, user.ErrWrongPassword):
		respondError(c, http.StatusUnauthorized, err.Error())

	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, cart.ErrCartNotFound),
		errors.Is(err, cart.ErrLineNotFound),
		errors.Is(err, cart.ErrProductNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, user.ErrUserNotFound):
		respondError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, user.ErrEmailExists):
		respondError(c, http.StatusConflict, err.Error())

	default:
		logger.FromCtx(c.Request.Context()).Error("unhandled service error", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}
