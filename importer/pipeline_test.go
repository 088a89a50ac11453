package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/Ray-XRay/wealthdash-google"
	"github.com/Ray-XRay/wealthdash-google/oracle"
	"github.com/shopspring/decimal"
)

// fakeExtractor scripts the oracle call for pipeline tests.
type fakeExtractor struct {
	result *wealthdash.Extraction
	err    error
	pages  int    // pages seen on the last call
	hook   func() // runs while the call is "in flight"
}

func (f *fakeExtractor) ExtractStatement(ctx context.Context, pages []oracle.Page, text string) (*wealthdash.Extraction, error) {
	f.pages = len(pages)
	if f.hook != nil {
		f.hook()
	}
	return f.result, f.err
}

func draftExtraction() *wealthdash.Extraction {
	return &wealthdash.Extraction{
		Accounts: []wealthdash.AccountDraft{
			{Name: "HSBC", Type: wealthdash.Bank, Currency: wealthdash.HKD, Balance: decimal.NewFromInt(100)},
		},
		Transactions: []wealthdash.TransactionDraft{
			{Description: "Lunch", Category: wealthdash.Dining, Amount: decimal.NewFromInt(-80)},
		},
	}
}

func TestPipeline_SpreadsheetHappyPath(t *testing.T) {
	p := New(nil)
	src := Source{Kind: Spreadsheet, Name: "a.csv", Data: []byte("Name,Balance\nHSBC,100\n")}

	if err := p.Run(context.Background(), src); err != nil {
		t.Fatal(err)
	}
	if p.State() != Previewing {
		t.Fatalf("state = %s, want previewing", p.State())
	}
	preview := p.Preview()
	if preview == nil || len(preview.Accounts) != 1 {
		t.Fatalf("preview = %+v", preview)
	}

	store := wealthdash.NewStore(nil)
	if err := p.Confirm(store); err != nil {
		t.Fatal(err)
	}
	if p.State() != Confirmed {
		t.Errorf("state = %s, want confirmed", p.State())
	}
	if len(store.Accounts()) != 1 {
		t.Errorf("store holds %d accounts after confirm", len(store.Accounts()))
	}
}

func TestPipeline_DocumentUsesExtractor(t *testing.T) {
	fake := &fakeExtractor{result: draftExtraction()}
	p := New(fake)
	pages := make([]oracle.Page, 6)
	for i := range pages {
		pages[i] = oracle.Page{MIMEType: "image/png", Data: []byte{0x89}}
	}

	if err := p.Run(context.Background(), Source{Kind: Document, Name: "stmt.pdf", Pages: pages}); err != nil {
		t.Fatal(err)
	}
	if fake.pages != 4 {
		t.Errorf("extractor saw %d pages, want the 4-page cap", fake.pages)
	}
	if p.State() != Previewing {
		t.Errorf("state = %s", p.State())
	}
}

func TestPipeline_ConfirmAppliesStatementRates(t *testing.T) {
	ex := draftExtraction()
	ex.Rates = wealthdash.RateTable{
		wealthdash.USD: decimal.NewFromFloat(7.75),
		wealthdash.CNY: decimal.NewFromFloat(1.09),
	}
	p := New(&fakeExtractor{result: ex})
	if err := p.Run(context.Background(), Source{Kind: Document, Pages: []oracle.Page{{}}}); err != nil {
		t.Fatal(err)
	}

	store := wealthdash.NewStore(nil)
	if err := p.Confirm(store); err != nil {
		t.Fatal(err)
	}
	rates := store.Rates()
	if !rates[wealthdash.USD].Equal(decimal.NewFromFloat(7.75)) {
		t.Errorf("USD = %s, want 7.75 from the statement", rates[wealthdash.USD])
	}
	// Wholesale replacement: currencies the statement did not state are gone.
	if _, ok := rates[wealthdash.EUR]; ok {
		t.Error("statement rates must replace the table, not merge into it")
	}
	if !rates[wealthdash.Anchor].Equal(decimal.NewFromInt(1)) {
		t.Errorf("anchor = %s, want 1", rates[wealthdash.Anchor])
	}
}

func TestPipeline_ConfirmWithoutRatesKeepsTable(t *testing.T) {
	p := New(&fakeExtractor{result: draftExtraction()})
	if err := p.Run(context.Background(), Source{Kind: Document, Pages: []oracle.Page{{}}}); err != nil {
		t.Fatal(err)
	}

	store := wealthdash.NewStore(nil)
	want := store.Rates()
	if err := p.Confirm(store); err != nil {
		t.Fatal(err)
	}
	got := store.Rates()
	if len(got) != len(want) || !got[wealthdash.EUR].Equal(want[wealthdash.EUR]) {
		t.Errorf("rates changed by a rate-less import: %v", got)
	}
}

func TestPipeline_RunGuards(t *testing.T) {
	p := New(nil)

	if err := p.Run(context.Background(), Source{Kind: Spreadsheet}); err == nil {
		t.Fatal("empty spreadsheet must fail")
	}
	if p.State() != Failed || p.Err() == nil {
		t.Fatalf("state = %s, err = %v", p.State(), p.Err())
	}

	// A failed pipeline refuses a second run until Reset.
	if err := p.Run(context.Background(), Source{Kind: Spreadsheet, Data: []byte("Name,Balance\nX,1\n")}); err == nil {
		t.Fatal("run on a non-idle pipeline must fail")
	}
	p.Reset()
	if p.State() != Idle || p.Err() != nil {
		t.Fatalf("after reset: state = %s, err = %v", p.State(), p.Err())
	}
	if err := p.Run(context.Background(), Source{Kind: Spreadsheet, Data: []byte("Name,Balance\nX,1\n")}); err != nil {
		t.Fatal(err)
	}

	if err := p.Run(context.Background(), Source{Kind: Document, Pages: []oracle.Page{{}}}); err == nil {
		t.Fatal("document import without an extractor must fail")
	}
}

func TestPipeline_CancelDiscardsInFlightResult(t *testing.T) {
	fake := &fakeExtractor{result: draftExtraction()}
	p := New(fake)
	// The dialog closes while the extraction is in flight.
	fake.hook = func() { p.Cancel() }

	if err := p.Run(context.Background(), Source{Kind: Document, Pages: []oracle.Page{{}}}); err != nil {
		t.Fatal(err)
	}
	if p.State() != Cancelled {
		t.Errorf("state = %s, want cancelled", p.State())
	}
	if p.Preview() != nil {
		t.Error("cancelled attempt must not expose a preview")
	}
	store := wealthdash.NewStore(nil)
	if err := p.Confirm(store); err == nil {
		t.Fatal("confirm after cancel must fail")
	}
	if len(store.Accounts()) != 0 || len(store.Transactions()) != 0 {
		t.Error("cancelled import leaked into the store")
	}
}

func TestPipeline_ExtractorFailure(t *testing.T) {
	wantErr := &wealthdash.OracleError{RateLimited: true, Err: errors.New("429")}
	p := New(&fakeExtractor{err: wantErr})

	err := p.Run(context.Background(), Source{Kind: Document, Pages: []oracle.Page{{}}})
	if err == nil {
		t.Fatal("expected failure")
	}
	if p.State() != Failed {
		t.Errorf("state = %s", p.State())
	}
	if !wealthdash.IsRateLimited(p.Err()) {
		t.Errorf("rate-limit flag lost: %v", p.Err())
	}
}

func TestPipeline_ConfirmRequiresPreview(t *testing.T) {
	p := New(nil)
	if err := p.Confirm(wealthdash.NewStore(nil)); err == nil {
		t.Fatal("confirm on an idle pipeline must fail")
	}
}
