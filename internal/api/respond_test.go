package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"farmtotable-be/internal/cart"
	"farmtotable-be/internal/order"
	"farmtotable-be/internal/product"
	"farmtotable-be/internal/user"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondServiceError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"InvalidQuantity", cart.ErrInvalidQuantity, http.StatusBadRequest},
		{"QuantityExceedsStock", cart.ErrQuantityExceedsStock, http.StatusBadRequest},
		{"CartEmpty", order.ErrCartEmpty, http.StatusBadRequest},
		{"InvalidTransition", order.ErrInvalidTransition, http.StatusBadRequest},
		{"NameRequired", product.ErrNameRequired, http.StatusBadRequest},
		{"InvalidCredentials", user.ErrInvalidCredentials, http.StatusUnauthorized},
		{"WrongPassword", user.ErrWrongPassword, http.StatusUnauthorized},
		{"ProductNotFound", product.ErrProductNotFound, http.StatusNotFound},
		{"CartNotFound", cart.ErrCartNotFound, http.StatusNotFound},
		{"OrderNotFound", order.ErrOrderNotFound, http.StatusNotFound},
		{"UserNotFound", user.ErrUserNotFound, http.StatusNotFound},
		{"EmailExists", user.ErrEmailExists, http.StatusConflict},
		{"Unknown", errors.New("db exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondServiceError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestRespondServiceError_HidesInternalDetail(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondServiceError(c, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Contains(t, w.Body.String(), "internal server error")
}
