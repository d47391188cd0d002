package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tourgether/internal/models/request_models"
	"tourgether/internal/services"
	"tourgether/pkg/utils"
)

type ImportController struct {
	importService services.ImportServiceInterface
}

func NewImportController(importService services.ImportServiceInterface) *ImportController {
	return &ImportController{importService: importService}
}

// ImportHandler handles POST /api/admin/import. Catalog population is an
// operator action and sits behind the auth middleware.
func (ctrl *ImportController) ImportHandler(c *gin.Context) {
	var req request_models.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	summary, err := ctrl.importService.Import(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			utils.RespondError(c, http.StatusBadRequest, "No attraction or restaurant records provided")
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
