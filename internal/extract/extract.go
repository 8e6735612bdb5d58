package extract

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/ledongthuc/pdf"
)

// PageText holds the plain text of a single page. Number is 1-based and
// follows document order.
type PageText struct {
	Number int
	Text   string
}

// Error reports a document that could not be parsed. It carries the
// underlying cause from the PDF reader.
type Error struct {
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("unreadable document: %v", e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

const memoLimit = 16

// Extractor turns PDF bytes into per-page text blocks. Results are
// memoized on the content hash so a re-submitted upload is not parsed
// twice within the same process. The memo is an optimization only; a
// document's text never changes across calls.
type Extractor struct {
	mu   sync.Mutex
	memo map[[sha256.Size]byte][]PageText

	parse func(data []byte) ([]PageText, error)
}

// New constructs an Extractor backed by github.com/ledongthuc/pdf.
func New() *Extractor {
	return &Extractor{
		memo:  make(map[[sha256.Size]byte][]PageText),
		parse: parsePDF,
	}
}

// Pages extracts plain text per page, in page order. Layout and
// formatting are discarded. Extraction is attempted at most once per
// upload; a failed parse is not retried.
func (e *Extractor) Pages(ctx context.Context, data []byte) ([]PageText, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := sha256.Sum256(data)

	e.mu.Lock()
	cached, ok := e.memo[key]
	e.mu.Unlock()
	if ok {
		return cached, nil
	}

	pages, err := e.parse(data)
	if err != nil {
		return nil, &Error{Cause: err}
	}

	e.mu.Lock()
	if len(e.memo) >= memoLimit {
		e.memo = make(map[[sha256.Size]byte][]PageText)
	}
	e.memo[key] = pages
	e.mu.Unlock()

	return pages, nil
}

func parsePDF(data []byte) (pages []PageText, err error) {
	// The pdf package panics on some malformed cross-reference tables.
	defer func() {
		if rec := recover(); rec != nil {
			pages = nil
			err = fmt.Errorf("parse pdf: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	total := reader.NumPage()
	pages = make([]PageText, 0, total)
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, PageText{Number: i})
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, PageText{Number: i, Text: text})
	}
	return pages, nil
}
