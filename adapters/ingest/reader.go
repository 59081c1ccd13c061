package ingest

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"fieldcorr/domain/core"
	"fieldcorr/domain/table"
	apperrors "fieldcorr/internal/errors"
)

// Reader loads a tabular dataset file into a domain table. It handles CSV and
// Excel (Sheet1) files, chosen by extension.
type Reader struct {
	filePath string
	fileType string // "csv" or "xlsx"
}

// NewReader creates a reader for the given dataset file
func NewReader(filePath string) *Reader {
	fileType := "csv"
	if strings.ToLower(filepath.Ext(filePath)) == ".xlsx" {
		fileType = "xlsx"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Read loads the dataset into a table. A missing file is reported as
// core.ErrInputMissing so callers can surface it as a user-facing condition
// rather than a crash.
func (r *Reader) Read() (*table.Table, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, core.NewInputMissingError(r.filePath)
	}

	switch r.fileType {
	case "xlsx":
		return r.readExcel()
	default:
		return r.readCSV()
	}
}

func (r *Reader) readCSV() (*table.Table, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, apperrors.IngestError("failed to open CSV file", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; the table pads them

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.IngestError("failed to parse CSV file", err)
	}
	return buildTable(records)
}

func (r *Reader) readExcel() (*table.Table, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, apperrors.IngestError("failed to open Excel file", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, apperrors.IngestError("failed to read Sheet1", err)
	}
	return buildTable(rows)
}

// buildTable converts header + records into a table with per-cell coercion.
func buildTable(records [][]string) (*table.Table, error) {
	if len(records) == 0 {
		return nil, core.ErrEmptyDataset
	}
	t := table.New(records[0])
	for _, record := range records[1:] {
		t.Append(record)
	}
	return t, nil
}
