package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Generator — интерфейс, удобно мокать в тестах.
type Generator interface {
	GenerateRegister(data RegisterData) (string, error)
}

type RegisterRow struct {
	RegNo  string
	Name   string
	Status string
	Time   string
}

type RegisterData struct {
	CourseTitle string
	CourseCode  string
	Level       string
	Semester    string
	Date        time.Time
	Rows        []RegisterRow
	Filename    string // без путей; если пусто — сгенерируем
}

type RegisterGenerator struct {
	RootDir string // корень хранения, например "./files"
}

func NewRegisterGenerator(rootDir string) *RegisterGenerator {
	return &RegisterGenerator{RootDir: filepath.Clean(rootDir)}
}

func (g *RegisterGenerator) ensureTarget(filename string) (string, error) {
	dir := filepath.Join(g.RootDir, "reports")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	return filepath.Join(dir, filepath.Base(filename)), nil
}

func (g *RegisterGenerator) GenerateRegister(data RegisterData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("register_%s_%s.pdf", data.CourseCode, data.Date.Format("2006-01-02"))
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Attendance Register — %s", data.CourseCode), false)
	pdf.SetAuthor("Attendify", false)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "ATTENDANCE REGISTER", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s — %s", data.CourseCode, data.CourseTitle), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Level %s, %s semester, %s",
		data.Level, data.Semester, data.Date.Format("02 Jan 2006")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// шапка таблицы
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(12, 8, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 8, "Reg No", "1", 0, "L", true, 0, "")
	pdf.CellFormat(80, 8, "Name", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Status", "1", 0, "C", true, 0, "")
	pdf.CellFormat(23, 8, "Time", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	present := 0
	for i, row := range data.Rows {
		if row.Status == "present" {
			present++
		}
		pdf.CellFormat(12, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 7, row.RegNo, "1", 0, "L", false, 0, "")
		pdf.CellFormat(80, 7, row.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, row.Status, "1", 0, "C", false, 0, "")
		pdf.CellFormat(23, 7, row.Time, "1", 1, "C", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 7, fmt.Sprintf("Present: %d / %d", present, len(data.Rows)), "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", fmt.Errorf("write register pdf: %w", err)
	}
	return absPath, nil
}
