package labels

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"packtrack/internal/core/application/usecases/queries"
)

// RenderContainerLabelPDF renders one A4 landscape label page per
// container: order header, barcode of the container code, content lines
// and the nested capsule list.
func RenderContainerLabelPDF(data queries.GetContainerPrintQueryResponse) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Container Label", false)

	barcodePNG, err := renderCode128PNG(data.Container.Code, 1200, 260)
	if err != nil {
		return nil, err
	}

	pdf.AddPage()

	customer := strings.TrimSpace(data.Customer)
	if customer == "" {
		customer = "Unknown Customer"
	}

	pdf.SetFont("Helvetica", "B", 40)
	pdf.CellFormat(0, 18, customer, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 48)
	pdf.CellFormat(0, 20, data.Container.Code, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 8, "Order: "+data.OrderNo+"  "+data.OrderName, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Type: %s    Pieces: %s", data.Container.Type,
		formatQuantity(data.Container.Quantity)), "", 1, "C", false, 0, "")
	if data.DeliveryDate != "" {
		pdf.CellFormat(0, 8, "Delivery: "+data.DeliveryDate, "", 1, "C", false, 0, "")
	}
	if data.Container.Supervisor != "" {
		pdf.CellFormat(0, 8, "Supervisor: "+data.Container.Supervisor, "", 1, "C", false, 0, "")
	}

	opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	imageName := "container-barcode-" + data.Container.Code
	pdf.RegisterImageOptionsReader(imageName, opt, bytes.NewReader(barcodePNG))
	pageW, _ := pdf.GetPageSize()
	imgW := 220.0
	imgH := 48.0
	pdf.ImageOptions(imageName, (pageW-imgW)/2, 96, imgW, imgH, false, opt, 0, "")
	pdf.SetY(96 + imgH + 4)

	if len(data.Children) > 0 {
		codes := make([]string, 0, len(data.Children))
		for _, child := range data.Children {
			codes = append(codes, fmt.Sprintf("%s (%s)", child.Code, formatQuantity(child.Quantity)))
		}
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 7, "Contains: "+strings.Join(codes, ", "), "", 1, "C", false, 0, "")
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// RenderPackingListPDF renders the order packing list: one table section
// per container with its content lines. Empty containers are skipped.
func RenderPackingListPDF(
	summary queries.GetOrderSummaryQueryResponse,
	containers []queries.GetContainersQueryResponse,
) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Packing List", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Packing List  "+summary.OrderNo, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, summary.Name+"  /  "+summary.Customer, "", 1, "L", false, 0, "")
	if summary.DeliveryDate != "" {
		pdf.CellFormat(0, 6, "Delivery date: "+summary.DeliveryDate, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	for _, c := range containers {
		if c.Quantity <= 0 && len(c.Children) == 0 {
			continue
		}

		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, fmt.Sprintf("%s  (%s, %s)", c.Code, c.Type, c.Status), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, "Code", "B", 0, "L", false, 0, "")
		pdf.CellFormat(90, 6, "Product", "B", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, "Qty", "B", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, "Unit", "B", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		for _, line := range c.Lines {
			pdf.CellFormat(40, 6, line.DisplayCode, "", 0, "L", false, 0, "")
			pdf.CellFormat(90, 6, line.Name, "", 0, "L", false, 0, "")
			pdf.CellFormat(25, 6, formatQuantity(line.Quantity), "", 0, "R", false, 0, "")
			pdf.CellFormat(25, 6, line.Unit, "", 1, "L", false, 0, "")
		}

		if len(c.Children) > 0 {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(0, 6, "Contains: "+strings.Join(c.Children, ", "), "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// formatQuantity prints whole quantities without a decimal part.
func formatQuantity(q float64) string {
	if q == float64(int64(q)) {
		return fmt.Sprintf("%d", int64(q))
	}
	return fmt.Sprintf("%.2f", q)
}
