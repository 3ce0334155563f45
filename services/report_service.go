package services

import (
	"fmt"
	"time"

	"github.com/PelvK/club-sarmiento-management-sub001/models"
	"github.com/PelvK/club-sarmiento-management-sub001/repository"
	"github.com/PelvK/club-sarmiento-management-sub001/utils"
	"github.com/xuri/excelize/v2"
)

// ReportService handles Excel export of membership and dues data
type ReportService struct {
	memberRepo        *repository.MemberRepository
	paymentRepo       *repository.PaymentRepository
	catalogService    *CatalogService
	ledgerService     *LedgerService
	permissionService *PermissionService
}

// NewReportService creates a new report service
func NewReportService(
	memberRepo *repository.MemberRepository,
	paymentRepo *repository.PaymentRepository,
	catalogService *CatalogService,
	ledgerService *LedgerService,
	permissionService *PermissionService,
) *ReportService {
	return &ReportService{
		memberRepo:        memberRepo,
		paymentRepo:       paymentRepo,
		catalogService:    catalogService,
		ledgerService:     ledgerService,
		permissionService: permissionService,
	}
}

// ExportDuesReport generates an Excel workbook with members, their payment
// rows and a per-member dues summary
func (s *ReportService) ExportDuesReport(user *models.User) (*excelize.File, string, error) {
	if !s.permissionService.HasPermission(user, models.CapGenerateReports) {
		return nil, "", utils.NewForbiddenError("not allowed to generate reports")
	}

	members, err := s.memberRepo.LoadAll()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get members: %v", err)
	}
	sports, err := s.catalogService.LoadSports()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get sports: %v", err)
	}

	paymentsByMember := make(map[int][]models.Payment)
	for _, member := range members {
		payments, err := s.paymentRepo.LoadByMember(member.ID)
		if err != nil {
			return nil, "", fmt.Errorf("failed to get payments for member %d: %v", member.ID, err)
		}
		paymentsByMember[member.ID] = payments
	}

	f := excelize.NewFile()

	if err := s.createMembersSheet(f, members, sports); err != nil {
		return nil, "", fmt.Errorf("failed to create members sheet: %v", err)
	}
	if err := s.createPaymentsSheet(f, members, paymentsByMember); err != nil {
		return nil, "", fmt.Errorf("failed to create payments sheet: %v", err)
	}
	if err := s.createSummarySheet(f, members, paymentsByMember); err != nil {
		return nil, "", fmt.Errorf("failed to create summary sheet: %v", err)
	}

	// Delete the default sheet if it exists
	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s_%s.xlsx",
		utils.CleanFileName("Club Sarmiento Dues"),
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

// createMembersSheet creates Sheet 1: Members
func (s *ReportService) createMembersSheet(f *excelize.File, members []models.Member, sports []models.Sport) error {
	sheetName := "Members"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	headers := []string{"ID", "Full Name", "DNI", "Active", "Family Role", "Principal Sport", "Sports"}
	writeHeaderRow(f, sheetName, headers)

	sportNames := make(map[int]string)
	for _, sport := range sports {
		sportNames[sport.ID] = sport.Name
	}

	for i, member := range members {
		row := i + 2
		principal := ""
		if selection := member.PrincipalSelection(); selection != nil {
			principal = sportNames[selection.SportID]
		}
		var selected string
		for _, selection := range member.Sports {
			if selected != "" {
				selected += ", "
			}
			selected += sportNames[selection.SportID]
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), member.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), utils.FormatFullName(member.Name, member.SecondName))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), member.DNI)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), member.Active)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), string(member.FamilyGroupStatus))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), principal)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), selected)
	}

	f.SetColWidth(sheetName, "A", "G", 18)
	return nil
}

// createPaymentsSheet creates Sheet 2: Payments
func (s *ReportService) createPaymentsSheet(f *excelize.File, members []models.Member, paymentsByMember map[int][]models.Payment) error {
	sheetName := "Payments"
	f.NewSheet(sheetName)

	headers := []string{"Member", "Period", "Type", "Description", "Amount", "Paid", "Status", "Receipt"}
	writeHeaderRow(f, sheetName, headers)

	row := 2
	for _, member := range members {
		fullName := utils.FormatFullName(member.Name, member.SecondName)
		for _, payment := range paymentsByMember[member.ID] {
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), fullName)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), fmt.Sprintf("%02d/%d", payment.Month, payment.Year))
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), string(payment.Type))
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), payment.Description)
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), payment.Amount)
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), payment.PaidAmount)
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), string(payment.Status))
			f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), payment.ReceiptNumber)
			row++
		}
	}

	f.SetColWidth(sheetName, "A", "H", 18)
	return nil
}

// createSummarySheet creates Sheet 3: Summary
func (s *ReportService) createSummarySheet(f *excelize.File, members []models.Member, paymentsByMember map[int][]models.Payment) error {
	sheetName := "Summary"
	f.NewSheet(sheetName)

	headers := []string{"Member", "Total Amount", "Total Paid", "Pending Quotas"}
	writeHeaderRow(f, sheetName, headers)

	for i, member := range members {
		row := i + 2
		summary := s.ledgerService.Summarize(paymentsByMember[member.ID])
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), utils.FormatFullName(member.Name, member.SecondName))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), summary.TotalAmount)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), summary.TotalPaid)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), summary.PendingCount)
	}

	f.SetColWidth(sheetName, "A", "D", 18)
	return nil
}

// writeHeaderRow writes and styles the first row of a sheet
func writeHeaderRow(f *excelize.File, sheetName string, headers []string) {
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), headerStyle)
}
