package extract

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"craft/internal/core"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
	return path
}

// writePDF builds a minimal single-page PDF with one text run. Object
// offsets in the xref table are computed while writing, so the fixture is a
// structurally valid document.
func writePDF(t *testing.T, dir, name, text string) string {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, 6)
	object := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	object(1, "<< /Type /Catalog /Pages 2 0 R >>")
	object(2, "<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	object(3, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>")
	object(4, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")
	object(5, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))

	xref := buf.Len()
	buf.WriteString("xref\n0 6\n0000000000 65535 f \n")
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xref)

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("failed to write pdf fixture: %v", err)
	}
	return path
}

func TestFilePDF(t *testing.T) {
	path := writePDF(t, t.TempDir(), "doc.pdf", "Hello PDF")

	summary := File(path)

	if summary.Status != core.StatusSuccess {
		t.Fatalf("status = %v (%s), expected success", summary.Status, summary.Err)
	}
	if summary.Kind != "pdf" {
		t.Errorf("kind = %q, expected pdf", summary.Kind)
	}
	if summary.PageCount != 1 {
		t.Errorf("page count = %d, expected 1", summary.PageCount)
	}
	if !strings.Contains(summary.Summary, "Hello PDF") {
		t.Errorf("summary %q missing the page text", summary.Summary)
	}
}

func TestFileCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "data.csv", "이름,나이,도시\n김철수,30,서울\n이영희,25,부산\n")

	summary := File(path)

	if summary.Status != core.StatusSuccess {
		t.Fatalf("status = %v (%s), expected success", summary.Status, summary.Err)
	}
	if summary.Kind != "csv" {
		t.Errorf("kind = %q, expected csv", summary.Kind)
	}
	if summary.RowCount != 2 || summary.ColumnCount != 3 {
		t.Errorf("shape = (%d, %d), expected (2, 3)", summary.RowCount, summary.ColumnCount)
	}
	if len(summary.Columns) != 3 || summary.Columns[0] != "이름" {
		t.Errorf("columns = %v, expected [이름 나이 도시]", summary.Columns)
	}
}

func TestFileCSVColumnCap(t *testing.T) {
	dir := t.TempDir()
	header := "c1,c2,c3,c4,c5,c6,c7,c8,c9,c10,c11,c12"
	path := writeFile(t, dir, "wide.csv", header+"\n1,2,3,4,5,6,7,8,9,10,11,12\n")

	summary := File(path)

	if summary.Status != core.StatusSuccess {
		t.Fatalf("status = %v (%s), expected success", summary.Status, summary.Err)
	}
	if len(summary.Columns) != 10 {
		t.Errorf("got %d column names, expected cap at 10", len(summary.Columns))
	}
	if summary.ColumnCount != 12 {
		t.Errorf("column count = %d, expected 12", summary.ColumnCount)
	}
}

func TestFileExcel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.xlsx")

	f := excelize.NewFile()
	headers := []string{"분기", "매출", "이익"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue("Sheet1", cell, h); err != nil {
			t.Fatalf("failed to set header: %v", err)
		}
	}
	for row := 2; row <= 4; row++ {
		for col := 1; col <= 3; col++ {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			if err := f.SetCellValue("Sheet1", cell, row*col); err != nil {
				t.Fatalf("failed to set cell: %v", err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save xlsx fixture: %v", err)
	}

	summary := File(path)

	if summary.Status != core.StatusSuccess {
		t.Fatalf("status = %v (%s), expected success", summary.Status, summary.Err)
	}
	if summary.Kind != "excel" {
		t.Errorf("kind = %q, expected excel", summary.Kind)
	}
	if summary.RowCount != 3 || summary.ColumnCount != 3 {
		t.Errorf("shape = (%d, %d), expected (3, 3)", summary.RowCount, summary.ColumnCount)
	}
	if len(summary.Columns) != 3 || summary.Columns[0] != "분기" {
		t.Errorf("columns = %v, expected [분기 매출 이익]", summary.Columns)
	}
}

func TestFileImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logo.png")

	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	if err := png.Encode(out, image.NewRGBA(image.Rect(0, 0, 12, 8))); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	_ = out.Close()

	summary := File(path)

	if summary.Status != core.StatusSuccess {
		t.Fatalf("status = %v (%s), expected success", summary.Status, summary.Err)
	}
	if summary.Kind != "image" || summary.Format != "png" {
		t.Errorf("kind/format = %q/%q, expected image/png", summary.Kind, summary.Format)
	}
	if summary.Width != 12 || summary.Height != 8 {
		t.Errorf("size = %dx%d, expected 12x8", summary.Width, summary.Height)
	}
}

func TestFileUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "그냥 텍스트")

	summary := File(path)

	if summary.Status != core.StatusError {
		t.Fatalf("status = %v, expected error", summary.Status)
	}
	if !strings.Contains(summary.Err, "지원하지 않는 파일 형식") {
		t.Errorf("error message %q should name the unsupported kind", summary.Err)
	}
}

func TestFileMissing(t *testing.T) {
	summary := File(filepath.Join(t.TempDir(), "nope.pdf"))

	if summary.Status != core.StatusError {
		t.Fatalf("status = %v, expected error", summary.Status)
	}
	if !strings.Contains(summary.Err, "파일을 찾을 수 없습니다") {
		t.Errorf("unexpected error message %q", summary.Err)
	}
}

func TestFileCorruptImageIsIsolated(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.png", "this is not a png")

	summary := File(path)

	if summary.Status != core.StatusError {
		t.Fatalf("status = %v, expected error", summary.Status)
	}
	if summary.Kind != "image" {
		t.Errorf("kind = %q, expected image", summary.Kind)
	}
}

func TestFilesIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "ok.csv", "a,b\n1,2\n")
	bad := filepath.Join(dir, "missing.pdf")
	unsupported := writeFile(t, dir, "notes.txt", "텍스트")

	summaries := Files([]string{bad, good, unsupported})

	if len(summaries) != 3 {
		t.Fatalf("got %d summaries, expected 3", len(summaries))
	}
	if summaries[0].Status != core.StatusError {
		t.Error("first summary should be the missing-file error")
	}
	if summaries[1].Status != core.StatusSuccess || summaries[1].Kind != "csv" {
		t.Error("a failing sibling must not abort the CSV extraction")
	}
	if summaries[2].Status != core.StatusError {
		t.Error("third summary should be the unsupported-extension error")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{"short text untouched", "짧은 글", 1000, "짧은 글"},
		{"exact limit untouched", "abcd", 4, "abcd"},
		{"over limit gets ellipsis", "abcdef", 4, "abcd..."},
		{"counts runes not bytes", "가나다라마", 3, "가나다..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.limit); got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, expected %q", tt.input, tt.limit, got, tt.expected)
			}
		})
	}
}
