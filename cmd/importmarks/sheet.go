package main

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/sahilchouksey/unimatch-api/services/scoring"
)

var errNoRows = errors.New("sheet has no data rows")

// profileColumns are copied onto students created by the import
var profileColumns = []string{"first_name", "last_name", "school"}

// MarkRow is one student's marks read from the sheet
type MarkRow struct {
	Line      int
	Email     string
	FirstName string
	LastName  string
	School    string
	Marks     scoring.MarkSet
}

// RowProblem explains why a line was skipped
type RowProblem struct {
	Line    int
	Message string
}

// Sheet is the parsed first worksheet of an import workbook
type Sheet struct {
	Rows     []MarkRow
	Problems []RowProblem
	// Ignored lists header cells that are neither profile nor subject columns
	Ignored []string
}

type subjectColumn struct {
	index   int
	subject scoring.Subject
}

// subjectForHeader accepts the subject key or its display label
func subjectForHeader(header string) (scoring.Subject, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(header)), " ", "_")
	s := scoring.Subject(key)
	return s, s.Valid()
}

// ParseSheet reads an email column, optional profile columns and one column
// per subject. Blank mark cells leave the subject unrecorded.
func ParseSheet(r io.Reader) (*Sheet, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open workbook")
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errNoRows
	}
	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %q", sheets[0])
	}
	if len(rows) < 2 {
		return nil, errNoRows
	}

	sheet := &Sheet{}
	columns := make(map[string]int)
	var subjects []subjectColumn
	for i, cell := range rows[0] {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name == "" {
			continue
		}
		if subject, ok := subjectForHeader(name); ok {
			subjects = append(subjects, subjectColumn{index: i, subject: subject})
			continue
		}
		if name == "email" || slices.Contains(profileColumns, name) {
			columns[name] = i
			continue
		}
		sheet.Ignored = append(sheet.Ignored, cell)
	}
	if _, ok := columns["email"]; !ok {
		return nil, errors.New("missing required column: email")
	}
	if len(subjects) == 0 {
		return nil, errors.New("no subject columns found")
	}

	for i, row := range rows[1:] {
		line := i + 2
		if blank(row) {
			continue
		}
		markRow, err := parseRow(row, columns, subjects)
		if err != nil {
			sheet.Problems = append(sheet.Problems, RowProblem{Line: line, Message: err.Error()})
			continue
		}
		markRow.Line = line
		sheet.Rows = append(sheet.Rows, *markRow)
	}
	return sheet, nil
}

func parseRow(row []string, columns map[string]int, subjects []subjectColumn) (*MarkRow, error) {
	cell := func(idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}
	value := func(name string) string {
		if idx, ok := columns[name]; ok {
			return cell(idx)
		}
		return ""
	}

	email := strings.ToLower(value("email"))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email %q", email)
	}

	marks := scoring.MarkSet{}
	for _, col := range subjects {
		subject := col.subject
		raw := strings.TrimSuffix(cell(col.index), "%")
		if raw == "" {
			continue
		}
		mark, err := parseMark(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", subject.Label(), err)
		}
		marks[subject] = mark
	}
	if len(marks) == 0 {
		return nil, errors.New("no marks recorded")
	}
	if err := scoring.Validate(marks); err != nil {
		var verr *scoring.ValidationError
		if errors.As(err, &verr) {
			return nil, fmt.Errorf("%s: %s", scoring.Subject(verr.Field).Label(), verr.Message)
		}
		return nil, err
	}

	return &MarkRow{
		Email:     email,
		FirstName: value("first_name"),
		LastName:  value("last_name"),
		School:    value("school"),
		Marks:     marks,
	}, nil
}

// parseMark accepts whole numbers, including spreadsheet floats like "75.0"
func parseMark(raw string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid mark %q", raw)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("mark %q is not a whole number", raw)
	}
	return int(f), nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
