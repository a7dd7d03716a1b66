// Package importer reads and writes the catalog spreadsheet.
package importer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrNoSheet is returned when the workbook has no worksheet to read.
	ErrNoSheet = errors.New("workbook has no sheets")
	// ErrMissingColumn is returned when a required header is absent.
	ErrMissingColumn = errors.New("missing required column")
)

// SheetName is the worksheet written by WriteCatalog.
const SheetName = "Products"

// Column names, in the order WriteCatalog lays them out.
const (
	ColID                = "id"
	ColName              = "name"
	ColSeries            = "series"
	ColPricePerCase      = "price_per_case"
	ColPricePerPiece     = "price_per_piece"
	ColNetWeightKg       = "net_weight_kg"
	ColPiecesPerCase     = "pieces_per_case"
	ColPackagingWeightKg = "packaging_weight_kg"
)

var columns = []string{
	ColID, ColName, ColSeries, ColPricePerCase, ColPricePerPiece,
	ColNetWeightKg, ColPiecesPerCase, ColPackagingWeightKg,
}

var requiredColumns = []string{ColID, ColName, ColPiecesPerCase}

// aliases maps normalized header text to a column. Headers are lower-cased,
// stripped of diacritics, and have spaces, dots and slashes folded to "_".
var aliases = map[string]string{
	"product_id":        ColID,
	"sku":               ColID,
	"code":              ColID,
	"urun_kodu":         ColID,
	"product":           ColName,
	"product_name":      ColName,
	"urun":              ColName,
	"urun_adi":          ColName,
	"seri":              ColSeries,
	"case_price":        ColPricePerCase,
	"koli_fiyati":       ColPricePerCase,
	"piece_price":       ColPricePerPiece,
	"unit_price":        ColPricePerPiece,
	"adet_fiyati":       ColPricePerPiece,
	"net_weight":        ColNetWeightKg,
	"net_kg":            ColNetWeightKg,
	"net_agirlik":       ColNetWeightKg,
	"pcs_per_case":      ColPiecesPerCase,
	"koli_ici_adet":     ColPiecesPerCase,
	"adet_koli":         ColPiecesPerCase,
	"packaging_weight":  ColPackagingWeightKg,
	"tare_kg":           ColPackagingWeightKg,
	"ambalaj_agirligi":  ColPackagingWeightKg,
	"koli_agirligi":     ColPackagingWeightKg,
	"packaging_kg_case": ColPackagingWeightKg,
}

// RowError is a rejected data row. Row is the 1-based spreadsheet row.
type RowError struct {
	Row     int    `json:"row"`
	Column  string `json:"column,omitempty"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("row %d: %s", e.Row, e.Message)
	}
	return fmt.Sprintf("row %d, %s: %s", e.Row, e.Column, e.Message)
}

// ImportResult holds the products read from a catalog sheet and the rows that
// were skipped.
type ImportResult struct {
	Sheet     string          `json:"sheet"`
	Products  []model.Product `json:"products"`
	RowErrors []RowError      `json:"row_errors,omitempty"`
}

// Skipped returns the number of rejected rows.
func (r *ImportResult) Skipped() int {
	return len(r.RowErrors)
}

// ParseCatalog reads products from the first sheet of an xlsx workbook. The
// first non-empty row is the header. Rows that fail to parse are collected in
// RowErrors and skipped; a missing required header fails the whole file.
// Numbers may use a comma as the decimal separator ("1,5"); a comma followed
// by three digits is not read as a decimal, so "1,234" is rejected. NaN and
// infinite weights are rejected.
func ParseCatalog(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	result := &ImportResult{Sheet: sheet, Products: make([]model.Product, 0, len(rows))}

	headerIdx := -1
	for i, row := range rows {
		if !blankRow(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return result, nil
	}

	index, err := columnIndex(rows[headerIdx])
	if err != nil {
		return nil, err
	}

	for i := headerIdx + 1; i < len(rows); i++ {
		row := rows[i]
		if blankRow(row) {
			continue
		}
		product, rowErr := parseRow(row, index)
		if rowErr != nil {
			rowErr.Row = i + 1
			result.RowErrors = append(result.RowErrors, *rowErr)
			continue
		}
		result.Products = append(result.Products, product)
	}

	return result, nil
}

// WriteCatalog renders products in the layout ParseCatalog reads.
func WriteCatalog(products []model.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, p := range products {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{
			sanitizeCell(p.ID),
			sanitizeCell(p.Name),
			sanitizeCell(p.Series),
			p.PricePerCase.String(),
			p.PricePerPiece.String(),
			p.NetWeightKg,
			p.PiecesPerCase,
			p.PackagingWeightKg,
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write product %s: %w", p.ID, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(columns))
	for i, h := range header {
		col := canonicalColumn(h)
		if col == "" {
			continue
		}
		if _, seen := index[col]; !seen {
			index[col] = i
		}
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return index, nil
}

func canonicalColumn(header string) string {
	key := normalizeHeader(header)
	for _, c := range columns {
		if key == c {
			return c
		}
	}
	return aliases[key]
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizeHeader(s string) string {
	s = strings.NewReplacer("ı", "i", "İ", "i").Replace(strings.TrimSpace(s))
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)
	s = strings.NewReplacer("(", " ", ")", " ", ".", " ", "/", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), "_")
}

func parseRow(row []string, index map[string]int) (model.Product, *RowError) {
	cell := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return unsanitizeCell(strings.TrimSpace(row[i]))
	}

	p := model.Product{
		ID:     cell(ColID),
		Name:   cell(ColName),
		Series: cell(ColSeries),
	}
	if p.ID == "" {
		return p, &RowError{Column: ColID, Message: "is required"}
	}
	if p.Name == "" {
		return p, &RowError{Column: ColName, Message: "is required"}
	}

	var err error
	if p.PricePerCase, err = parsePrice(cell(ColPricePerCase)); err != nil {
		return p, &RowError{Column: ColPricePerCase, Message: err.Error()}
	}
	if p.PricePerPiece, err = parsePrice(cell(ColPricePerPiece)); err != nil {
		return p, &RowError{Column: ColPricePerPiece, Message: err.Error()}
	}
	if p.NetWeightKg, err = parseWeight(cell(ColNetWeightKg)); err != nil {
		return p, &RowError{Column: ColNetWeightKg, Message: err.Error()}
	}
	if p.PackagingWeightKg, err = parseWeight(cell(ColPackagingWeightKg)); err != nil {
		return p, &RowError{Column: ColPackagingWeightKg, Message: err.Error()}
	}

	pcs, err := strconv.Atoi(cell(ColPiecesPerCase))
	if err != nil || pcs < 1 {
		return p, &RowError{Column: ColPiecesPerCase, Message: "must be a whole number of at least 1"}
	}
	p.PiecesPerCase = pcs

	return p, nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(decimalPoint(s))
	if err != nil {
		return decimal.Zero, errors.New("must be a number")
	}
	if d.IsNegative() {
		return decimal.Zero, errors.New("must not be negative")
	}
	return d, nil
}

func parseWeight(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(decimalPoint(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("must be a number")
	}
	if v < 0 {
		return 0, errors.New("must not be negative")
	}
	return v, nil
}

// decimalPoint accepts a single comma as the decimal separator when no point
// is present and at most two digits follow it. "1,234" is left alone, so a
// thousands separator fails to parse instead of reading as 1.234.
func decimalPoint(s string) string {
	if strings.Contains(s, ".") || strings.Count(s, ",") != 1 {
		return s
	}
	if i := strings.IndexByte(s, ','); len(s)-i-1 <= 2 {
		return s[:i] + "." + s[i+1:]
	}
	return s
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func unsanitizeCell(s string) string {
	if len(s) > 1 && s[0] == '\'' && sanitizeCell(s[1:]) != s[1:] {
		return s[1:]
	}
	return s
}

// sanitizeCell prefixes values Excel would evaluate as formulas.
func sanitizeCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
