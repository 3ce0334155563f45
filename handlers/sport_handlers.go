package handlers

import (
	"github.com/PelvK/club-sarmiento-management-sub001/utils"

	"github.com/gin-gonic/gin"
)

// ListSports retrieves the sport catalog with fee quotes
func ListSports(c *gin.Context) {
	sports, err := handlerServices.CatalogService.LoadSports()
	if err != nil {
		utils.HandleError(c, utils.NewInternalError(utils.ErrFailedToRetrieve))
		return
	}

	utils.HandleSuccess(c, sports)
}

// ListSocietaryQuotes retrieves the club-membership-only fee tiers
func ListSocietaryQuotes(c *gin.Context) {
	quotes, err := handlerServices.CatalogService.LoadSocietaryQuotes()
	if err != nil {
		utils.HandleError(c, utils.NewInternalError(utils.ErrFailedToRetrieve))
		return
	}

	utils.HandleSuccess(c, quotes)
}
