// Package importer implements the statement import pipeline: a small state
// machine that turns a spreadsheet or a scanned document into normalized
// account and transaction drafts, previews them, and merges them into the
// store only on explicit confirmation. An import attempt is all-or-nothing;
// nothing touches the store before Confirm.
package importer

import (
	"context"
	"fmt"
	"log"

	"github.com/Ray-XRay/wealthdash-google"
	"github.com/Ray-XRay/wealthdash-google/oracle"
)

// State is the pipeline's position in an import attempt.
type State int

const (
	Idle State = iota
	Reading
	Extracting
	Previewing
	Confirmed
	Cancelled
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Reading:
		return "reading"
	case Extracting:
		return "extracting"
	case Previewing:
		return "previewing"
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Kind declares what the source file is.
type Kind int

const (
	// Spreadsheet is delimiter-separated tabular text, parsed locally.
	Spreadsheet Kind = iota
	// Document is a scanned statement whose rasterized pages go to the
	// extraction oracle.
	Document
)

// maxPages bounds how many rasterized pages a single extraction submits.
const maxPages = 4

// Source is one statement to import. For spreadsheets Data carries the raw
// file bytes; for documents Pages carries the rasterized pages (page
// rasterization happens upstream).
type Source struct {
	Kind  Kind
	Name  string
	Data  []byte
	Pages []oracle.Page
}

// Extractor is the oracle call the document path needs. *oracle.Client
// satisfies it.
type Extractor interface {
	ExtractStatement(ctx context.Context, pages []oracle.Page, text string) (*wealthdash.Extraction, error)
}

// Pipeline runs one import attempt at a time. It is driven from the single
// event goroutine, so it carries no locking. Cancellation is cooperative and
// coarse: an in-flight extraction is simply discarded when it lands.
type Pipeline struct {
	extractor Extractor

	state  State
	result *wealthdash.Extraction
	err    error
}

// New creates an idle pipeline. The extractor may be nil when only the
// spreadsheet path is needed.
func New(extractor Extractor) *Pipeline {
	return &Pipeline{state: Idle, extractor: extractor}
}

// State returns the current pipeline state.
func (p *Pipeline) State() State { return p.state }

// Err returns the failure of the last attempt, nil unless Failed.
func (p *Pipeline) Err() error { return p.err }

// Preview returns the extraction awaiting confirmation, nil unless
// Previewing.
func (p *Pipeline) Preview() *wealthdash.Extraction {
	if p.state != Previewing {
		return nil
	}
	return p.result
}

// Run executes Reading and Extracting for one source and leaves the pipeline
// Previewing on success. On failure the pipeline is Failed with the error
// recorded; Reset returns it to Idle. Run on a non-idle pipeline is an
// error: the UI disables imports while one is outstanding.
func (p *Pipeline) Run(ctx context.Context, src Source) error {
	if p.state != Idle {
		return fmt.Errorf("import already in progress (state %s)", p.state)
	}

	p.state = Reading
	var ex *wealthdash.Extraction
	var err error

	switch src.Kind {
	case Spreadsheet:
		if len(src.Data) == 0 {
			err = &wealthdash.ParseError{Msg: "the file is empty"}
			break
		}
		p.state = Extracting
		ex, err = extractAccounts(src.Data)
	case Document:
		if len(src.Pages) == 0 {
			err = &wealthdash.ParseError{Msg: "the document produced no pages"}
			break
		}
		if p.extractor == nil {
			err = &wealthdash.ParseError{Msg: "document import needs the extraction service"}
			break
		}
		pages := src.Pages
		if len(pages) > maxPages {
			log.Printf("import %q: submitting only the first %d of %d pages", src.Name, maxPages, len(pages))
			pages = pages[:maxPages]
		}
		p.state = Extracting
		ex, err = p.extractor.ExtractStatement(ctx, pages, "")
	default:
		err = &wealthdash.ParseError{Msg: "unknown file kind"}
	}

	// The import dialog may have been closed while the oracle call was in
	// flight; the result is discarded, not committed.
	if p.state == Cancelled {
		return nil
	}

	if err != nil {
		p.state = Failed
		p.err = err
		return err
	}
	p.state = Previewing
	p.result = ex
	return nil
}

// Confirm merges the previewed extraction into the store. Terminal success
// for the attempt. Exchange rates stated by the statement replace the table
// wholesale, like a refresh would.
func (p *Pipeline) Confirm(store *wealthdash.Store) error {
	if p.state != Previewing || p.result == nil {
		return fmt.Errorf("nothing to confirm (state %s)", p.state)
	}
	if len(p.result.Rates) > 0 {
		store.SetRates(p.result.Rates)
	}
	store.MergeImportedAccounts(p.result.Accounts)
	store.MergeImportedTransactions(p.result.Transactions)
	p.state = Confirmed
	p.result = nil
	return nil
}

// Cancel abandons the attempt with no side effects on the store.
func (p *Pipeline) Cancel() {
	p.state = Cancelled
	p.result = nil
}

// Reset returns a terminal pipeline to Idle for the next attempt.
func (p *Pipeline) Reset() {
	p.state = Idle
	p.result = nil
	p.err = nil
}
