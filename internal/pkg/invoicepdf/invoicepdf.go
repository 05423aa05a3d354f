// Package invoicepdf renders the storefront's PDF documents: the invoice
// with its delivery audit panel, and the ebook cover/contents document.
// The layout is fixed A4 portrait in millimetres; pagination is a simple
// vertical-position threshold, not a content-fit measurement.
package invoicepdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/garsabers/storefront/app/models"
)

// Page geometry (A4, mm).
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	leftEdge   = 20.0
	rightEdge  = 190.0
)

// Brand palette, matching the storefront's web theme.
var (
	brandNavy  = rgb{15, 23, 42}
	brandTeal  = rgb{20, 184, 166}
	brandLight = rgb{241, 245, 249}
	slateGray  = rgb{100, 116, 139}
	slate400   = rgb{148, 163, 184}
	slate700   = rgb{51, 65, 85}
	slate200   = rgb{226, 232, 240}
	alertRed   = rgb{239, 68, 68}
)

type rgb struct{ r, g, b int }

// InvoiceData is everything the invoice renderer needs: the invoice itself,
// its computed audit trail, the issuing company and the line item text.
type InvoiceData struct {
	Invoice     models.Invoice
	Audit       models.InvoiceAuditTrail
	Company     models.CompanySettings
	Description string
}

// headerTagline is the small brand line under the company name.
const headerTagline = "ECOMMERCE DEVELOPMENT"

// RenderInvoice lays out the invoice document and returns the PDF bytes.
func RenderInvoice(data InvoiceData) ([]byte, error) {
	inv := data.Invoice
	company := data.Company
	audit := data.Audit

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	// Page breaks are explicit threshold checks below.
	pdf.SetAutoPageBreak(false, 0)

	// Footer repeats on every page.
	pdf.SetFooterFunc(func() {
		pdf.SetFont("Helvetica", "", 7)
		textColor(pdf, slate400)
		textCenter(pdf, pageHeight-15, tr(company.FooterText))
		textCenter(pdf, pageHeight-10, tr(company.Website))
	})
	pdf.AddPage()

	// Header band with brand and a light watermark-style INVOICE label.
	pdf.SetFillColor(brandLight.r, brandLight.g, brandLight.b)
	pdf.Rect(0, 0, pageWidth, 40, "F")

	pdf.SetFont("Helvetica", "B", 18)
	textColor(pdf, brandNavy)
	pdf.Text(leftEdge, 26, tr(company.Name))

	pdf.SetFont("Helvetica", "", 8)
	textColor(pdf, brandTeal)
	pdf.Text(leftEdge, 31, headerTagline)

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(200, 200, 200)
	textRight(pdf, rightEdge, 28, "INVOICE")

	// Left column: bill-to party. The address is variable length, so the
	// column tracks its own vertical extent.
	y := 60.0
	pdf.SetFont("Helvetica", "B", 9)
	textColor(pdf, brandNavy)
	pdf.Text(leftEdge, y, "BILL TO")

	pdf.SetFont("Helvetica", "", 10)
	textColor(pdf, brandNavy)
	y += 6
	pdf.Text(leftEdge, y, tr(inv.BillTo.Name))
	y += 5
	textColor(pdf, slateGray)
	pdf.Text(leftEdge, y, tr(inv.BillTo.Email))
	y += 5
	for _, line := range pdf.SplitText(tr(inv.BillTo.Address), 70) {
		pdf.Text(leftEdge, y, line)
		y += 5
	}
	if inv.BillTo.Country != "" {
		pdf.Text(leftEdge, y, tr(inv.BillTo.Country))
	}
	billToEndY := y

	// Right column: invoice number, issue date, status.
	y = 60.0
	const rightColX = 140.0

	pdf.SetFont("Helvetica", "B", 9)
	textColor(pdf, brandNavy)
	pdf.Text(rightColX, y, "INVOICE #")
	pdf.SetFont("Helvetica", "", 10)
	textColor(pdf, brandNavy)
	textRight(pdf, rightEdge, y, tr(inv.InvoiceNumber))

	y += 10
	pdf.SetFont("Helvetica", "B", 9)
	pdf.Text(rightColX, y, "ISSUE DATE")
	pdf.SetFont("Helvetica", "", 10)
	textRight(pdf, rightEdge, y, inv.IssueDate.Format("Jan 2, 2006"))

	y += 10
	pdf.SetFont("Helvetica", "B", 9)
	pdf.Text(rightColX, y, "STATUS")
	pdf.SetFont("Helvetica", "", 10)
	if inv.Status == models.InvoiceStatusPaid {
		textColor(pdf, brandTeal)
	} else {
		textColor(pdf, brandNavy)
	}
	textRight(pdf, rightEdge, y, tr(inv.Status))
	detailsEndY := y

	// Pay-to block starts below the taller of the two columns.
	leftY := billToEndY
	if detailsEndY > leftY {
		leftY = detailsEndY
	}
	leftY += 10

	pdf.SetFont("Helvetica", "B", 9)
	textColor(pdf, brandNavy)
	pdf.Text(leftEdge, leftY, "PAY TO")

	pdf.SetFont("Helvetica", "", 9)
	textColor(pdf, slateGray)
	leftY += 5
	pdf.Text(leftEdge, leftY, tr(company.Name))
	leftY += 5
	for _, line := range pdf.SplitText(tr(company.Address), 70) {
		pdf.Text(leftEdge, leftY, line)
		leftY += 5
	}
	pdf.Text(leftEdge, leftY, tr("VAT ID: "+company.VATNumber))

	// Single line item table. This system only ever bills one item.
	tableTop := leftY + 10
	if tableTop < 125 {
		tableTop = 125
	}
	finalY := drawItemTable(pdf, tr, tableTop, data.Description, inv.Subtotal) + 10

	// Totals, on a fresh page when the item table ran long.
	if finalY > 210 {
		pdf.AddPage()
		finalY = 40
	}
	const totalsX = 130.0

	pdf.SetFont("Helvetica", "", 10)
	textColor(pdf, slateGray)
	pdf.Text(totalsX, finalY, "Subtotal")
	textColor(pdf, brandNavy)
	textRight(pdf, rightEdge, finalY, tr(euro(inv.Subtotal)))

	if inv.Discount > 0 {
		finalY += 6
		textColor(pdf, alertRed)
		pdf.Text(totalsX, finalY, "Discount")
		textRight(pdf, rightEdge, finalY, tr("-"+euro(inv.Discount)))
	}

	finalY += 6
	textColor(pdf, slateGray)
	pdf.Text(totalsX, finalY, "VAT (20%)")
	textColor(pdf, brandNavy)
	textRight(pdf, rightEdge, finalY, tr(euro(inv.Tax)))

	finalY += 6
	pdf.SetDrawColor(slate200.r, slate200.g, slate200.b)
	pdf.Line(totalsX, finalY, rightEdge, finalY)

	finalY += 10
	pdf.SetFont("Helvetica", "B", 14)
	textColor(pdf, brandNavy)
	pdf.Text(totalsX, finalY, "Total")
	textColor(pdf, brandTeal)
	textRight(pdf, rightEdge, finalY, tr(euro(inv.Total)))

	// Delivered-asset link, shown only for the service variant.
	if inv.WebsiteURL != "" {
		boxY := finalY + 15
		if boxY > 260 {
			pdf.AddPage()
			boxY = 40
		}
		drawWebsiteBox(pdf, tr, boxY, inv.WebsiteURL)
	}

	drawAuditPanel(pdf, tr, audit)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("invoice %s: %w", inv.ID, err)
	}
	return buf.Bytes(), nil
}

// drawItemTable renders the header strip and the single line item; returns
// the y position below the table.
func drawItemTable(pdf *gofpdf.Fpdf, tr func(string) string, top float64, description string, subtotal float64) float64 {
	// Column layout: DESCRIPTION 80, TYPE 40, QTY 20, AMOUNT 30.
	const (
		descX = leftEdge + 2
		typeX = 102.0
		qtyX  = 150.0 // centered in its 20mm column
	)

	pdf.SetFillColor(248, 250, 252)
	pdf.Rect(leftEdge, top, 170, 10, "F")

	pdf.SetFont("Helvetica", "B", 8)
	textColor(pdf, slateGray)
	headY := top + 6.5
	pdf.Text(descX, headY, "DESCRIPTION")
	pdf.Text(typeX, headY, "TYPE")
	textCenterAt(pdf, qtyX, headY, "QTY")
	textRight(pdf, rightEdge-2, headY, "AMOUNT")

	pdf.SetFont("Helvetica", "", 10)
	textColor(pdf, slate700)
	rowY := top + 17
	lines := pdf.SplitText(tr(description), 76)
	for i, line := range lines {
		pdf.Text(descX, rowY+float64(i)*5, line)
	}
	pdf.Text(typeX, rowY, "Professional Service")
	textCenterAt(pdf, qtyX, rowY, "1")
	pdf.SetFont("Helvetica", "B", 10)
	textRight(pdf, rightEdge-2, rowY, tr(euro(subtotal)))

	bottom := rowY + float64(len(lines))*5
	pdf.SetDrawColor(brandLight.r, brandLight.g, brandLight.b)
	pdf.Line(leftEdge, bottom, rightEdge, bottom)
	return bottom
}

// drawWebsiteBox renders the clickable delivered-store panel. The display
// text is truncated past 75 characters; the link target never is.
func drawWebsiteBox(pdf *gofpdf.Fpdf, tr func(string) string, top float64, url string) {
	pdf.SetFillColor(240, 253, 250) // teal-50
	pdf.SetDrawColor(204, 251, 241) // teal-100
	pdf.RoundedRect(leftEdge, top, 170, 22, 2, "1234", "FD")

	pdf.SetFont("Helvetica", "B", 7)
	textColor(pdf, brandTeal)
	pdf.Text(leftEdge+6, top+8, "DELIVERED STORE")

	display := url
	if len(display) > 75 {
		display = display[:72] + "..."
	}
	pdf.SetFont("Helvetica", "", 9)
	textColor(pdf, brandNavy)
	pdf.Text(leftEdge+6, top+16, tr(display))
	pdf.LinkString(leftEdge+6, top+10, 170-12, 10, url)
}

// drawAuditPanel renders the tamper-evidence section proving the buyer
// retrieved the asset. It is pinned near the page bottom, above the footer.
func drawAuditPanel(pdf *gofpdf.Fpdf, tr func(string) string, audit models.InvoiceAuditTrail) {
	top := pageHeight - 67 // 230

	pdf.SetFillColor(248, 250, 252) // slate-50
	pdf.SetDrawColor(slate200.r, slate200.g, slate200.b)
	pdf.RoundedRect(leftEdge, top, 170, 45, 2, "1234", "FD")

	pdf.SetFont("Helvetica", "B", 7)
	textColor(pdf, slateGray)
	pdf.Text(leftEdge+6, top+7, "DELIVERY AUDIT TRAIL")
	if audit.IsSandbox {
		pdf.SetTextColor(180, 83, 9) // amber-700
		textRight(pdf, rightEdge-6, top+7, "SANDBOX")
	}

	row := func(y float64, label, value string, valueColor rgb) {
		pdf.SetFont("Helvetica", "B", 8)
		textColor(pdf, brandNavy)
		pdf.Text(leftEdge+6, y, label)
		pdf.SetFont("Helvetica", "", 8)
		textColor(pdf, valueColor)
		pdf.Text(leftEdge+40, y, value)
	}

	statusColor := brandNavy
	if audit.DeliveryStatus == models.DeliveryStatusDownloaded {
		statusColor = brandTeal
	}

	y := top + 14
	row(y, "STATUS", tr(audit.DeliveryStatus), statusColor)
	y += 5
	row(y, "LINK REF", tr(audit.LinkID+"  ·  sent "+audit.SentTimestamp), slate700)
	y += 5
	row(y, "ACCESS IP", tr(audit.AccessIP), slate700)
	y += 5
	row(y, "ACCESS TIME", tr(audit.AccessTime), slate700)
	y += 5
	pdf.SetFont("Helvetica", "B", 8)
	textColor(pdf, brandNavy)
	pdf.Text(leftEdge+6, y, "DEVICE")
	pdf.SetFont("Helvetica", "", 6)
	textColor(pdf, slate700)
	for i, line := range pdf.SplitText(tr(audit.DeviceSig), 144) {
		if i >= 2 {
			break
		}
		pdf.Text(leftEdge+40, y, line)
		y += 3.5
	}
}

func euro(v float64) string {
	return fmt.Sprintf("€%.2f", v)
}

func textColor(pdf *gofpdf.Fpdf, c rgb) {
	pdf.SetTextColor(c.r, c.g, c.b)
}

// textRight draws s with its right edge at x.
func textRight(pdf *gofpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s), y, s)
}

// textCenter draws s centered on the page width.
func textCenter(pdf *gofpdf.Fpdf, y float64, s string) {
	textCenterAt(pdf, pageWidth/2, y, s)
}

// textCenterAt draws s centered on x.
func textCenterAt(pdf *gofpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s)/2, y, s)
}
