package handler

import (
	"net/http"

	"github.com/chokiwild/ChainFund-Dapp/internal/errs"
	"github.com/gin-gonic/gin"
)

// Response is the uniform API envelope.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// SuccessResponse writes a success envelope.
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes an error envelope.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}

// ClassifiedErrorResponse maps an error's taxonomy kind to an HTTP
// status and includes the kind so clients can react distinctly, most
// notably to partial governance failures.
func ClassifiedErrorResponse(c *gin.Context, err error) {
	ClassifiedErrorResponseWithData(c, err, nil)
}

// ClassifiedErrorResponseWithData additionally carries a payload, used
// when a failed operation still leaves usable state behind (a connected
// session whose registry load failed).
func ClassifiedErrorResponseWithData(c *gin.Context, err error, data interface{}) {
	kind := errs.KindOf(err)

	status := http.StatusInternalServerError
	switch kind {
	case errs.KindInvalidAmount, errs.KindInvalidAddress:
		status = http.StatusBadRequest
	case errs.KindPreconditionFailed:
		status = http.StatusConflict
	case errs.KindWalletUnavailable, errs.KindRegistryUnavailable:
		status = http.StatusServiceUnavailable
	case errs.KindTxRejected:
		status = http.StatusBadGateway
	case errs.KindPartialGovernanceFailure:
		status = http.StatusInternalServerError
	}

	c.JSON(status, Response{
		Success: false,
		Message: err.Error(),
		Error:   string(kind),
		Data:    data,
	})
}
