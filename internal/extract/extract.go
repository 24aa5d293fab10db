// Package extract converts reference files (PDF, image, spreadsheet, CSV)
// into normalized summary records. Extraction is shape-and-text only: no
// spreadsheet cell values leave this package.
package extract

import (
	"encoding/csv"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"

	"craft/internal/core"
)

const (
	maxSummaryRunes = 1000 // PDF text is truncated for the prompt context
	maxColumns      = 10   // column names reported per tabular file
)

// File summarizes a single reference file, dispatching on its extension.
// It never returns an error and never panics: any failure, including an
// unsupported extension or a missing file, yields an error-tagged summary so
// that sibling files keep processing.
func File(path string) (summary core.ReferenceSummary) {
	defer func() {
		if r := recover(); r != nil {
			summary = errorSummary(kindForExt(ext(path)), fmt.Sprintf("파일 처리 실패: %v", r))
		}
	}()

	if _, err := os.Stat(path); err != nil {
		return errorSummary("", fmt.Sprintf("파일을 찾을 수 없습니다: %s", path))
	}

	switch e := ext(path); e {
	case ".pdf":
		return pdfSummary(path)
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp":
		return imageSummary(path)
	case ".xlsx", ".xls":
		return excelSummary(path)
	case ".csv":
		return csvSummary(path)
	default:
		return errorSummary("", fmt.Sprintf("지원하지 않는 파일 형식입니다: %s", e))
	}
}

// Files summarizes each path independently. Order is preserved; a failure in
// one file never aborts the rest.
func Files(paths []string) []core.ReferenceSummary {
	summaries := make([]core.ReferenceSummary, 0, len(paths))
	for _, path := range paths {
		summaries = append(summaries, File(path))
	}
	return summaries
}

func pdfSummary(path string) core.ReferenceSummary {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return errorSummary("pdf", err.Error())
	}
	defer func() { _ = f.Close() }()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil || text == "" {
			continue
		}
		pages = append(pages, text)
	}

	return core.ReferenceSummary{
		Kind:      "pdf",
		Status:    core.StatusSuccess,
		Summary:   Truncate(strings.Join(pages, "\n\n"), maxSummaryRunes),
		PageCount: len(pages),
	}
}

func imageSummary(path string) core.ReferenceSummary {
	f, err := os.Open(path)
	if err != nil {
		return errorSummary("image", err.Error())
	}
	defer func() { _ = f.Close() }()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return errorSummary("image", err.Error())
	}

	return core.ReferenceSummary{
		Kind:   "image",
		Status: core.StatusSuccess,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}

func excelSummary(path string) core.ReferenceSummary {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return errorSummary("excel", err.Error())
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return errorSummary("excel", "시트가 없습니다")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return errorSummary("excel", err.Error())
	}

	return tabularSummary("excel", rows)
}

func csvSummary(path string) core.ReferenceSummary {
	f, err := os.Open(path)
	if err != nil {
		return errorSummary("csv", err.Error())
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return errorSummary("csv", err.Error())
	}

	return tabularSummary("csv", rows)
}

// tabularSummary reports shape and up to maxColumns header names. The first
// row is the header; data rows are counted without it.
func tabularSummary(kind string, rows [][]string) core.ReferenceSummary {
	if len(rows) == 0 {
		return errorSummary(kind, "데이터가 없습니다")
	}

	header := rows[0]
	columns := header
	if len(columns) > maxColumns {
		columns = columns[:maxColumns]
	}

	return core.ReferenceSummary{
		Kind:        kind,
		Status:      core.StatusSuccess,
		Columns:     append([]string(nil), columns...),
		RowCount:    len(rows) - 1,
		ColumnCount: len(header),
	}
}

// Truncate cuts text to at most limit runes, appending "..." when anything
// was dropped.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

func errorSummary(kind, message string) core.ReferenceSummary {
	return core.ReferenceSummary{Kind: kind, Status: core.StatusError, Err: message}
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

func kindForExt(e string) string {
	switch e {
	case ".pdf":
		return "pdf"
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp":
		return "image"
	case ".xlsx", ".xls":
		return "excel"
	case ".csv":
		return "csv"
	default:
		return ""
	}
}
