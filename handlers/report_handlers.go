package handlers

import (
	"fmt"
	"net/http"

	"github.com/PelvK/club-sarmiento-management-sub001/utils"

	"github.com/gin-gonic/gin"
)

// ExportDuesReport streams the membership dues workbook as an Excel download
func ExportDuesReport(c *gin.Context) {
	reportFile, filename, err := handlerServices.ReportService.ExportDuesReport(currentUser(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	// Set headers for file download
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := reportFile.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file: " + err.Error()})
		return
	}
}
