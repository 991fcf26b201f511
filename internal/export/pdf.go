package export

import (
	"bytes"
	"fmt"

	"github.com/hudumaworks/utility-backend/internal/models"
	"github.com/jung-kurt/gofpdf"
)

// PDF lays out one block per report with the same field projection as CSV.
func PDF(reports []models.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Reports Export", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	for i, r := range reports {
		pdf.SetFont("Helvetica", "U", 12)
		pdf.CellFormat(0, 7, fmt.Sprintf("Report %d:", i+1), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.MultiCell(0, 6, "Title: "+r.Title, "", "L", false)
		pdf.MultiCell(0, 6, "Description: "+r.Description, "", "L", false)
		pdf.CellFormat(0, 6, "Status: "+r.Status, "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, "Created At: "+r.CreatedAt.Format("2006-01-02"), "", 1, "L", false, 0, "")
		pdf.Ln(4)
	}

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buffer.Bytes(), nil
}
