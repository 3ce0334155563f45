package handlers

import (
	"github.com/PelvK/club-sarmiento-management-sub001/models"
	"github.com/PelvK/club-sarmiento-management-sub001/utils"

	"github.com/gin-gonic/gin"
)

// ListMemberPayments retrieves all payment rows for a member
func ListMemberPayments(c *gin.Context) {
	var request models.MemberPaymentsRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	payments, err := handlerServices.PaymentService.ListByMember(currentUser(c), request.MemberID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payments)
}

// RecordPayment applies an installment to a payment row
func RecordPayment(c *gin.Context) {
	var request models.RecordPaymentRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	payment, err := handlerServices.PaymentService.RecordInstallment(currentUser(c), request.PaymentID, request.Amount)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payment)
}

// CancelPayment moves a payment row to its terminal cancelled state
func CancelPayment(c *gin.Context) {
	var request models.CancelPaymentRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	payment, err := handlerServices.PaymentService.CancelPayment(currentUser(c), request.PaymentID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payment)
}

// MemberPaymentSummary aggregates a member's payment rows
func MemberPaymentSummary(c *gin.Context) {
	var request models.MemberPaymentsRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	summary, err := handlerServices.PaymentService.SummarizeMember(currentUser(c), request.MemberID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, summary)
}

// GenerateMonthlyDues creates the dues rows for a member and billing period
func GenerateMonthlyDues(c *gin.Context) {
	var request models.GenerateDuesRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	dues, err := handlerServices.BillingService.GenerateMonthlyDues(currentUser(c), request.MemberID, request.Month, request.Year)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, dues)
}
