// Package export renders a packing list as a proforma workbook with an
// invoice sheet, a per-series packing calculation and a shipment summary.
package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Sheet names, in workbook order.
const (
	SheetInvoice     = "Invoice"
	SheetCalculation = "Packing Calculation"
	SheetSummary     = "Packing Summary"
)

// ContentType is the MIME type of the rendered workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Company is the seller printed at the top of the invoice.
type Company struct {
	Name    string
	Address string
}

// Document is everything printed on the workbook. All grand totals come from
// Packing.Totals so the three sheets always agree.
type Document struct {
	Company  Company
	Header   model.ProformaHeader
	Packing  model.PackingList
	Language language.Tag
}

// Filename returns a download name derived from the proforma number.
func (d Document) Filename() string {
	number := strings.TrimSpace(d.Header.Number)
	if number == "" {
		return "packing-list.xlsx"
	}
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, number)
	return "proforma-" + clean + ".xlsx"
}

// Row layout of the invoice sheet.
const (
	invoiceHeaderRow = 10
	invoiceFirstLine = invoiceHeaderRow + 1
)

var (
	invoiceColumns = []string{"No", "Product ID", "Product", "Series", "Quantity", "Unit", "Unit Price", "Total"}
	calcColumns    = []string{
		"No", "Group", "Products", "Unit", "Quantity", "Pcs/Case", "Net kg/Unit", "Packaging kg/Unit",
		"Pallet kg/Unit", "Tare kg/Unit", "Gross kg/Unit", "Net kg", "Tare kg", "Gross kg", "Pieces",
	}
	palletColumns = []string{"Pallet", "Width (cm)", "Length (cm)", "Height (cm)"}
)

// Workbook renders doc and returns the xlsx bytes.
func Workbook(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteWorkbook renders doc to w.
func WriteWorkbook(w io.Writer, doc Document) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetInvoice); err != nil {
		return fmt.Errorf("set sheet name: %w", err)
	}
	for _, name := range []string{SheetCalculation, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	tag := doc.Language
	if tag == language.Und {
		tag = language.English
	}
	p := message.NewPrinter(tag)

	writers := []struct {
		name  string
		write func(*sheet)
	}{
		{SheetInvoice, func(s *sheet) { writeInvoice(s, doc, p) }},
		{SheetCalculation, func(s *sheet) { writeCalculation(s, doc.Packing) }},
		{SheetSummary, func(s *sheet) { writeSummary(s, doc.Packing.Totals) }},
	}
	for _, sw := range writers {
		s := &sheet{f: f, name: sw.name, bold: bold}
		sw.write(s)
		if s.err != nil {
			return fmt.Errorf("write %s: %w", sw.name, s.err)
		}
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeInvoice(s *sheet, doc Document, p *message.Printer) {
	h := doc.Header
	pl := doc.Packing

	s.boldText(1, 1, "PROFORMA INVOICE")
	s.text(1, 2, doc.Company.Name)
	s.text(1, 3, doc.Company.Address)

	s.boldText(1, 4, "Number")
	s.text(2, 4, h.Number)
	s.boldText(4, 4, "Date")
	if !h.Date.IsZero() {
		s.text(5, 4, h.Date.Format("2006-01-02"))
	}

	s.boldText(1, 5, "Customer")
	s.text(2, 5, h.Customer.Name)
	s.text(2, 6, h.Customer.Address)
	s.text(2, 7, strings.TrimSpace(h.Customer.Country+" "+h.Customer.TaxID))

	s.boldText(1, 8, "Currency")
	s.text(2, 8, h.Currency)
	s.boldText(4, 8, "Incoterm")
	s.text(5, 8, h.Incoterm)
	s.boldText(1, 9, "Payment Terms")
	s.text(2, 9, h.PaymentTerms)

	s.header(invoiceHeaderRow, invoiceColumns)

	row := invoiceFirstLine
	for i, line := range pl.Lines {
		s.value(1, row, i+1)
		s.text(2, row, line.ProductID)
		s.text(3, row, line.ProductName)
		s.text(4, row, line.Series)
		s.value(5, row, line.Quantity)
		s.text(6, row, string(line.Unit))
		s.value(7, row, line.UnitPrice.InexactFloat64())
		s.value(8, row, line.Total.InexactFloat64())
		row++
	}

	s.boldText(4, row, "Total")
	s.value(5, row, pl.Totals.TotalCases)
	s.text(6, row, string(pl.Unit))
	s.value(8, row, pl.Totals.InvoiceTotal.InexactFloat64())
	row++

	s.text(7, row, "Amount")
	s.text(8, row, strings.TrimSpace(p.Sprintf("%.2f %s", pl.Totals.InvoiceTotal.InexactFloat64(), h.Currency)))

	if h.Notes != "" {
		s.boldText(1, row+2, "Notes")
		s.text(2, row+2, h.Notes)
	}
}

func writeCalculation(s *sheet, pl model.PackingList) {
	s.header(1, calcColumns)

	row := 2
	for _, g := range pl.Groups {
		s.value(1, row, g.Number)
		s.text(2, row, g.Label)
		s.text(3, row, strings.Join(g.ProductIDs, ", "))
		s.text(4, row, string(g.Unit))
		s.value(5, row, g.TotalQuantity)
		s.value(6, row, g.PiecesPerCase)
		s.value(7, row, g.NetWeightPerUnit)
		s.value(8, row, g.PackagingWeightPerUnit)
		s.value(9, row, g.PalletWeightPerUnit)
		s.value(10, row, g.TarePerUnit)
		s.value(11, row, g.GrossWeightPerUnit)
		s.value(12, row, g.TotalNetKg)
		s.value(13, row, g.TotalTareKg)
		s.value(14, row, g.TotalGrossKg)
		s.value(15, row, g.TotalPieces)
		row++
	}

	t := pl.Totals
	s.boldText(2, row, "Total")
	s.value(5, row, t.TotalCases)
	s.value(12, row, t.TotalNetKg)
	s.value(13, row, t.TotalTareKg)
	s.value(14, row, t.TotalGrossKg)
	s.value(15, row, t.TotalPieces)
}

func writeSummary(s *sheet, t model.ShipmentTotals) {
	rows := []struct {
		label string
		value interface{}
	}{
		{"Total Cases", t.TotalCases},
		{"Total Pieces", t.TotalPieces},
		{"Total Net Weight (kg)", t.TotalNetKg},
		{"Total Tare Weight (kg)", t.TotalTareKg},
		{"Total Gross Weight (kg)", t.TotalGrossKg},
		{"Pallet Count", t.PalletCount},
		{"Weight per Pallet (kg)", t.WeightPerPalletKg},
		{"Total Pallet Weight (kg)", t.TotalPalletWeightKg},
	}
	for i, r := range rows {
		s.boldText(1, i+1, r.label)
		s.value(2, i+1, r.value)
	}

	row := len(rows) + 2
	s.header(row, palletColumns)
	for _, pallet := range t.Pallets {
		row++
		s.value(1, row, pallet.Number)
		s.value(2, row, pallet.WidthCm)
		s.value(3, row, pallet.LengthCm)
		s.value(4, row, pallet.HeightCm)
	}
}

// sheet writes cells to one worksheet and keeps the first error.
type sheet struct {
	f    *excelize.File
	name string
	bold int
	err  error
}

func (s *sheet) value(col, row int, v interface{}) {
	if s.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		s.err = err
		return
	}
	s.err = s.f.SetCellValue(s.name, cell, v)
}

func (s *sheet) text(col, row int, v string) {
	if v == "" {
		return
	}
	s.value(col, row, sanitizeCell(v))
}

func (s *sheet) boldText(col, row int, v string) {
	s.text(col, row, v)
	if s.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		s.err = err
		return
	}
	s.err = s.f.SetCellStyle(s.name, cell, cell, s.bold)
}

func (s *sheet) header(row int, titles []string) {
	for i, t := range titles {
		s.boldText(i+1, row, t)
	}
}

// sanitizeCell prevents formula injection by prefixing cells Excel would
// otherwise evaluate.
func sanitizeCell(v string) string {
	if v == "" {
		return v
	}
	switch v[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + v
	}
	return v
}
