package gosi

import (
	"net/http"

	"ksa-hris/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Calculate previews the contribution split for one employee's wage components.
func (h *Handler) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	in := req.toInput()
	if err := in.Validate(); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toResponse(Calculate(in)), nil)
}
