package invoicepdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/garsabers/storefront/app/models"
)

// RenderEbook renders the downloadable product document: a cover page and,
// when the product carries a chapter list, table-of-contents pages. A new
// page starts whenever the running offset crosses the fixed threshold with
// chapters remaining.
func RenderEbook(product models.Product, company models.CompanySettings) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Cover.
	textColor(pdf, brandNavy)
	pdf.SetFont("Times", "B", 30)
	y := 80.0
	for _, line := range pdf.SplitText(tr(strings.ToUpper(product.Name)), 170) {
		pdf.Text(leftEdge, y, line)
		y += 13
	}

	pdf.SetFont("Helvetica", "B", 14)
	textColor(pdf, brandTeal)
	y += 7
	pdf.Text(leftEdge, y, tr(product.Tagline))

	pdf.SetFont("Helvetica", "", 10)
	textColor(pdf, slateGray)
	y += 15
	for _, line := range pdf.SplitText(tr(product.Description), 150) {
		pdf.Text(leftEdge, y, line)
		y += 5
	}

	pdf.SetFont("Helvetica", "B", 10)
	textColor(pdf, brandNavy)
	pdf.Text(leftEdge, 270, tr(fmt.Sprintf("© %d %s", time.Now().Year(), strings.ToUpper(company.Name))))

	// Contents.
	if len(product.Chapters) > 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		textColor(pdf, brandNavy)
		pdf.Text(leftEdge, 30, "TABLE OF CONTENTS")

		y = 45.0
		for i, chapter := range product.Chapters {
			if y > 270 {
				pdf.AddPage()
				y = 30
			}
			pdf.SetFont("Helvetica", "B", 12)
			textColor(pdf, brandNavy)
			pdf.Text(leftEdge, y, tr(fmt.Sprintf("%d. %s", i+1, chapter.Title)))
			y += 7

			pdf.SetFont("Helvetica", "", 9)
			textColor(pdf, slateGray)
			for _, point := range chapter.Points {
				if y > 270 {
					pdf.AddPage()
					y = 30
				}
				pdf.Text(leftEdge+6, y, tr("– "+point))
				y += 5.5
			}
			y += 6
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("ebook %s: %w", product.ID, err)
	}
	return buf.Bytes(), nil
}
