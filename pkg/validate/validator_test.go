package validate

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type signup struct {
	FirstName string `validate:"required"`
	Email     string `validate:"required,email"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&signup{FirstName: "Ada", Email: "ada@x.com"}))

	err := v.Validate(&signup{Email: "not-an-email"})
	httpErr, ok := err.(*echo.HTTPError)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Equal(t, "FirstName is required; Email must be a valid email", httpErr.Message)
	}
}
