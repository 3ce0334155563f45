package handlers

import (
	"strconv"

	"github.com/PelvK/club-sarmiento-management-sub001/models"
	"github.com/PelvK/club-sarmiento-management-sub001/utils"

	"github.com/gin-gonic/gin"
)

// CreateMember handles the creation of a new membership record
func CreateMember(c *gin.Context) {
	var request models.CreateMemberRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	member, err := handlerServices.MemberService.CreateMember(currentUser(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, member)
}

// ListMembers lists every membership record
func ListMembers(c *gin.Context) {
	members, err := handlerServices.MemberService.ListMembers(currentUser(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, members)
}

// GetMember retrieves one membership record with its family relation
func GetMember(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid member ID"))
		return
	}

	member, err := handlerServices.MemberService.GetMember(currentUser(c), memberID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, member)
}

// UpdateMember edits a membership record's direct fields
func UpdateMember(c *gin.Context) {
	var request models.UpdateMemberRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	member, err := handlerServices.MemberService.UpdateMember(currentUser(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, member)
}

// ToggleMemberActive flips a membership record's soft-delete flag
func ToggleMemberActive(c *gin.Context) {
	var request models.ToggleActiveRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.MemberService.ToggleActive(currentUser(c), request.MemberID, request.Active); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, true)
}

// SelectSport adds or removes a sport selection on a membership record
func SelectSport(c *gin.Context) {
	var request models.SelectSportRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	member, err := handlerServices.MemberService.SelectSport(currentUser(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, member)
}

// SetPrincipalSport designates a membership record's principal selection
func SetPrincipalSport(c *gin.Context) {
	var request models.SetPrincipalSportRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	member, err := handlerServices.MemberService.SetPrincipalSport(currentUser(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, member)
}

// SetQuoteForSport attaches a catalog quote to a sport selection
func SetQuoteForSport(c *gin.Context) {
	var request models.SetQuoteRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	member, err := handlerServices.MemberService.SetQuoteForSport(currentUser(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, member)
}
