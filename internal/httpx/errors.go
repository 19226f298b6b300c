package httpx

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the single error body every endpoint emits,
// whatever the failure kind.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Internal server error"`
	Detail  string `json:"detail,omitempty"`
}

// Fail writes the uniform error body and aborts the request. All error
// paths go through here so the formatting exists exactly once.
func Fail(c *gin.Context, status int, msg, detail string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg, Detail: detail})
}

// FailValidation rejects malformed input before any database access.
func FailValidation(c *gin.Context, field, detail string) {
	Fail(c, http.StatusBadRequest, fmt.Sprintf("invalid %s parameter", field), detail)
}

// FailNotFound reports a missing order, echoing the requested id.
func FailNotFound(c *gin.Context, orderID int) {
	Fail(c, http.StatusNotFound, fmt.Sprintf("Order %d not found", orderID), "")
}

// FailDB reports a data-source failure with a generic message plus
// diagnostic detail. Credentials never reach the error text: repository
// errors carry query context, not connection strings.
func FailDB(c *gin.Context, msg string, err error) {
	Fail(c, http.StatusInternalServerError, msg, err.Error())
}

// Recovery is the top-level catch-all; panics become the same uniform
// 500 body instead of gin's default plain-text response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		Fail(c, http.StatusInternalServerError, "Internal server error", fmt.Sprintf("%v", recovered))
	})
}
