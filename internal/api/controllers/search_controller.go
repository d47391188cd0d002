package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tourgether/internal/models/request_models"
	"tourgether/internal/services"
	"tourgether/pkg/utils"
)

type SearchController struct {
	searchService services.SearchServiceInterface
}

func NewSearchController(searchService services.SearchServiceInterface) *SearchController {
	return &SearchController{searchService: searchService}
}

// SearchHandler handles POST /api/search.
func (ctrl *SearchController) SearchHandler(c *gin.Context) {
	var req request_models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := ctrl.searchService.Search(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			utils.RespondError(c, http.StatusBadRequest, "Either query or destination is required")
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
