package pdfvalidation

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pkg/errors"
)

var pdfHeader = []byte("%PDF-")

// Limits bounds an uploaded PDF
type Limits struct {
	MaxFileSizeMB int
	MaxPages      int
	Kind          string // used in error messages
}

// OfferDocumentLimits apply to documents uploaded against an offer condition
var OfferDocumentLimits = Limits{
	MaxFileSizeMB: 10,
	MaxPages:      20,
	Kind:          "offer document",
}

// Result describes an upload. Problem is empty when Valid is true.
type Result struct {
	Valid     bool
	PageCount int
	FileSize  int64
	Problem   string
}

// ReadUpload validates a multipart upload and returns its content so callers
// can store it without reading the file twice.
func ReadUpload(file *multipart.FileHeader, limits Limits) (*Result, []byte, error) {
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		return &Result{FileSize: file.Size, Problem: "Only PDF files are supported"}, nil, nil
	}
	if file.Size > limits.maxBytes() {
		return &Result{FileSize: file.Size, Problem: limits.sizeProblem()}, nil, nil
	}

	f, err := file.Open()
	if err != nil {
		return nil, nil, errors.Wrap(err, "open upload")
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, errors.Wrap(err, "read upload")
	}
	return Check(content, limits), content, nil
}

// Check validates raw PDF bytes
func Check(content []byte, limits Limits) *Result {
	res := &Result{FileSize: int64(len(content))}

	if res.FileSize > limits.maxBytes() {
		res.Problem = limits.sizeProblem()
		return res
	}
	if !bytes.HasPrefix(content, pdfHeader) {
		res.Problem = "Invalid PDF file: missing PDF header"
		return res
	}

	pages, err := pageCount(content)
	if err != nil {
		res.Problem = fmt.Sprintf("Failed to read PDF: %v", err)
		return res
	}
	res.PageCount = pages

	switch {
	case pages == 0:
		res.Problem = "PDF has no pages"
	case pages > limits.MaxPages:
		res.Problem = fmt.Sprintf("PDF has %d pages, which exceeds the maximum of %d pages for an %s",
			pages, limits.MaxPages, limits.Kind)
	default:
		res.Valid = true
	}
	return res
}

func (l Limits) maxBytes() int64 {
	return int64(l.MaxFileSizeMB) * 1024 * 1024
}

func (l Limits) sizeProblem() string {
	return fmt.Sprintf("File size exceeds maximum allowed size of %dMB", l.MaxFileSizeMB)
}

// trimTrailing drops bytes after the last %%EOF marker; some scanners append junk
func trimTrailing(content []byte) []byte {
	end := bytes.LastIndex(content, []byte("%%EOF"))
	if end == -1 {
		return content
	}
	end += len("%%EOF")
	for end < len(content) && (content[end] == '\n' || content[end] == '\r') {
		end++
	}
	return content[:end]
}

func pageCount(content []byte) (int, error) {
	content = trimTrailing(content)
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return 0, errors.Wrap(err, "parse PDF")
	}
	return r.NumPage(), nil
}
