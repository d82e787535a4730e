package pdf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func sampleData() RegisterData {
	return RegisterData{
		CourseTitle: "Digital Systems",
		CourseCode:  "ECE371",
		Level:       "300",
		Semester:    "first",
		Date:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Rows: []RegisterRow{
			{RegNo: "2021/187101", Name: "John Doe", Status: "present", Time: "09:15:04"},
			{RegNo: "2021/187102", Name: "Jane Roe", Status: "absent", Time: ""},
		},
	}
}

func TestGenerateRegister_WritesFile(t *testing.T) {
	g := NewRegisterGenerator(t.TempDir())

	path, err := g.GenerateRegister(sampleData())
	require.NoError(t, err)
	require.Equal(t, "register_ECE371_2026-03-10.pdf", filepath.Base(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))

	head := make([]byte, 5)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = f.Read(head)
	require.NoError(t, err)
	require.Equal(t, "%PDF-", string(head))
}

func TestGenerateRegister_CustomFilenameStripsPath(t *testing.T) {
	root := t.TempDir()
	g := NewRegisterGenerator(root)

	data := sampleData()
	data.Filename = "../../escape.pdf"
	path, err := g.GenerateRegister(data)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "reports", "escape.pdf"), path)
}
