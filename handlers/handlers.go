package handlers

import (
	"github.com/PelvK/club-sarmiento-management-sub001/repository"
	"github.com/PelvK/club-sarmiento-management-sub001/services"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	CatalogService *services.CatalogService
	MemberService  *services.MemberService
	PaymentService *services.PaymentService
	BillingService *services.BillingService
	ReportService  *services.ReportService
}

// NewHandlerServices creates a new handler services instance
func NewHandlerServices() *HandlerServices {
	memberRepo := repository.NewMemberRepository()
	paymentRepo := repository.NewPaymentRepository(repository.GetDB())
	sportRepo := repository.NewSportRepository()

	catalogService := services.NewCatalogService(sportRepo)
	familyService := services.NewFamilyService()
	selectionService := services.NewSelectionService(familyService)
	ledgerService := services.NewLedgerService()
	permissionService := services.NewPermissionService()

	return &HandlerServices{
		CatalogService: catalogService,
		MemberService: services.NewMemberService(
			memberRepo, catalogService, familyService, selectionService, permissionService),
		PaymentService: services.NewPaymentService(
			paymentRepo, memberRepo, ledgerService, permissionService),
		BillingService: services.NewBillingService(
			paymentRepo, memberRepo, catalogService, permissionService),
		ReportService: services.NewReportService(
			memberRepo, paymentRepo, catalogService, ledgerService, permissionService),
	}
}

var handlerServices *HandlerServices

// InitHandlers initializes the handler services
func InitHandlers() {
	handlerServices = NewHandlerServices()
}
