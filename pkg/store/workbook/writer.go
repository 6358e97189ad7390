package workbook

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/netops-tools/te-reporter/pkg/models/domain"
	"github.com/netops-tools/te-reporter/pkg/models/store"
)

const (
	minColWidth = 10
	maxColWidth = 60
)

type Settings struct {
	// Dir is the output directory; empty means the working directory.
	Dir    string
	Prefix string
}

// Writer persists report sheets as one xlsx workbook named
// <prefix>-<unix timestamp>.xlsx, so consecutive runs never overwrite each
// other. Headers are bold, columns are sized to their content, all-numeric
// columns carry the General number format, and a sheet's color column gets
// its cells filled with their own color.
type Writer interface {
	Write(ctx context.Context, sheets []store.Sheet) (string, error)
}

type reportWriter struct {
	settings Settings
}

func NewWriter(settings Settings) Writer {
	return &reportWriter{settings: settings}
}

func (w *reportWriter) Write(ctx context.Context, sheets []store.Sheet) (string, error) {
	path := filepath.Join(w.settings.Dir, fmt.Sprintf("%s-%d.xlsx", w.settings.Prefix, time.Now().Unix()))

	if w.settings.Dir != "" {
		if err := os.MkdirAll(w.settings.Dir, 0o755); err != nil {
			return "", &domain.WriteError{Path: path, Err: err}
		}
	}

	file := excelize.NewFile()
	defer func() {
		if err := file.Close(); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to close workbook")
		}
	}()

	headerStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return "", &domain.WriteError{Path: path, Err: err}
	}
	generalStyle, err := file.NewStyle(&excelize.Style{NumFmt: 0})
	if err != nil {
		return "", &domain.WriteError{Path: path, Err: err}
	}

	for i, sheet := range sheets {
		if i == 0 {
			err = file.SetSheetName(file.GetSheetName(0), sheet.Name)
		} else {
			_, err = file.NewSheet(sheet.Name)
		}
		if err != nil {
			return "", &domain.WriteError{Path: path, Err: err}
		}

		if err := writeSheet(file, sheet, headerStyle, generalStyle); err != nil {
			return "", &domain.WriteError{Path: path, Err: err}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return "", &domain.WriteError{Path: path, Err: err}
	}
	return path, nil
}

func writeSheet(file *excelize.File, sheet store.Sheet, headerStyle, generalStyle int) error {
	for col, name := range sheet.Header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheet.Name, cell, name); err != nil {
			return err
		}
	}
	if len(sheet.Header) > 0 {
		last, err := excelize.CoordinatesToCellName(len(sheet.Header), 1)
		if err != nil {
			return err
		}
		if err := file.SetCellStyle(sheet.Name, "A1", last, headerStyle); err != nil {
			return err
		}
	}

	for rowIdx, row := range sheet.Rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := file.SetCellValue(sheet.Name, cell, value); err != nil {
				return err
			}
		}
	}

	if err := applyNumberFormats(file, sheet, generalStyle); err != nil {
		return err
	}
	if err := applyColumnWidths(file, sheet); err != nil {
		return err
	}
	return applyColorFills(file, sheet)
}

// numericColumns marks the columns whose every non-empty value is a number or
// a numeric string. Those columns carry the General number format; the cell
// values themselves are never rewritten.
func numericColumns(sheet store.Sheet) []bool {
	numeric := make([]bool, len(sheet.Header))
	for col := range sheet.Header {
		seen := false
		ok := true
		for _, row := range sheet.Rows {
			if col >= len(row) {
				continue
			}
			switch v := row[col].(type) {
			case int64, float64:
				seen = true
			case string:
				if v == "" {
					continue
				}
				if _, err := strconv.ParseFloat(v, 64); err != nil {
					ok = false
				}
				seen = true
			default:
				ok = false
			}
			if !ok {
				break
			}
		}
		numeric[col] = seen && ok
	}
	return numeric
}

func applyNumberFormats(file *excelize.File, sheet store.Sheet, styleID int) error {
	if len(sheet.Rows) == 0 {
		return nil
	}
	for col, isNumeric := range numericColumns(sheet) {
		if !isNumeric {
			continue
		}
		first, err := excelize.CoordinatesToCellName(col+1, 2)
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(col+1, len(sheet.Rows)+1)
		if err != nil {
			return err
		}
		if err := file.SetCellStyle(sheet.Name, first, last, styleID); err != nil {
			return err
		}
	}
	return nil
}

func applyColumnWidths(file *excelize.File, sheet store.Sheet) error {
	for colIdx, name := range sheet.Header {
		width := float64(len(name))
		for _, row := range sheet.Rows {
			if colIdx >= len(row) {
				continue
			}
			if l := float64(len(displayString(row[colIdx]))); l > width {
				width = l
			}
		}
		width += 2
		if width < minColWidth {
			width = minColWidth
		}
		if width > maxColWidth {
			width = maxColWidth
		}

		colName, err := excelize.ColumnNumberToName(colIdx + 1)
		if err != nil {
			return err
		}
		if err := file.SetColWidth(sheet.Name, colName, colName, width); err != nil {
			return err
		}
	}
	return nil
}

func applyColorFills(file *excelize.File, sheet store.Sheet) error {
	if sheet.ColorColumn == "" {
		return nil
	}
	col := sheet.ColumnIndex(sheet.ColorColumn)
	if col < 0 {
		return nil
	}

	styles := make(map[string]int)
	for rowIdx, row := range sheet.Rows {
		if col >= len(row) {
			continue
		}
		value, isString := row[col].(string)
		if !isString {
			continue
		}
		color, valid := normalizeHexColor(value)
		if !valid {
			continue
		}

		styleID, cached := styles[color]
		if !cached {
			var err error
			styleID, err = file.NewStyle(&excelize.Style{
				Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
			})
			if err != nil {
				return err
			}
			styles[color] = styleID
		}

		cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
		if err != nil {
			return err
		}
		if err := file.SetCellStyle(sheet.Name, cell, cell, styleID); err != nil {
			return err
		}
	}
	return nil
}

// normalizeHexColor strips an optional leading # and upcases; anything that is
// not exactly six hex digits afterwards is not a fillable color.
func normalizeHexColor(value string) (string, bool) {
	color := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(value), "#"))
	if len(color) != 6 {
		return "", false
	}
	for _, r := range color {
		if (r < '0' || r > '9') && (r < 'A' || r > 'F') {
			return "", false
		}
	}
	return color, true
}

func displayString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
