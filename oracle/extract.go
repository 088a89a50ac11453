package oracle

import (
	"context"
	"encoding/json"
	"log"

	"github.com/Ray-XRay/wealthdash-google"
	"github.com/Ray-XRay/wealthdash-google/date"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

// Page is one rasterized statement page ready for the oracle.
type Page struct {
	MIMEType string
	Data     []byte
}

const extractPrompt = `You are reading a bank or investment statement.
Extract every account with its closing balance, and every transaction.
Use only the enum values offered by the schema; amounts are plain numbers,
negative for outflows. Dates are YYYY-MM-DD. If the statement states
exchange rates, report each as HKD units per one unit of the currency;
omit exchangeRates entirely otherwise.`

// extractionSchema pins the response to the import contract:
// {accounts:[{name,balance,currency,type}], transactions:[{date,description,category,amount}]}.
var extractionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"accounts": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":     {Type: genai.TypeString},
					"balance":  {Type: genai.TypeNumber},
					"currency": {Type: genai.TypeString, Enum: currencyEnum()},
					"type":     {Type: genai.TypeString, Enum: typeEnum()},
				},
				Required: []string{"name", "balance"},
			},
		},
		"transactions": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date":        {Type: genai.TypeString},
					"description": {Type: genai.TypeString},
					"category":    {Type: genai.TypeString, Enum: categoryEnum()},
					"amount":      {Type: genai.TypeNumber},
				},
				Required: []string{"description", "amount"},
			},
		},
		"exchangeRates": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"currency": {Type: genai.TypeString, Enum: currencyEnum()},
					"rate":     {Type: genai.TypeNumber},
				},
				Required: []string{"currency", "rate"},
			},
		},
	},
}

func currencyEnum() []string {
	out := make([]string, 0, len(wealthdash.Currencies))
	for _, c := range wealthdash.Currencies {
		out = append(out, string(c))
	}
	return out
}

func typeEnum() []string {
	out := make([]string, 0, len(wealthdash.AccountTypes))
	for _, t := range wealthdash.AccountTypes {
		out = append(out, string(t))
	}
	return out
}

func categoryEnum() []string {
	out := make([]string, 0, len(wealthdash.Categories))
	for _, c := range wealthdash.Categories {
		out = append(out, string(c))
	}
	return out
}

// ExtractStatement submits statement pages (and optional extra text, e.g.
// unrecognized spreadsheet rows) and returns the normalized extraction.
func (c *Client) ExtractStatement(ctx context.Context, pages []Page, text string) (*wealthdash.Extraction, error) {
	parts := []*genai.Part{genai.NewPartFromText(extractPrompt)}
	for _, p := range pages {
		parts = append(parts, genai.NewPartFromBytes(p.Data, p.MIMEType))
	}
	if text != "" {
		parts = append(parts, genai.NewPartFromText(text))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   extractionSchema,
	}

	raw, err := c.generate(ctx, contents, config)
	if err != nil {
		return nil, err
	}
	return decodeExtraction([]byte(raw))
}

// decodeExtraction is the validation boundary for the oracle's JSON. The
// response must match the contract shape or the import fails; inside the
// shape, every enum is coerced to the supported sets and every amount is
// coerced to a decimal.
func decodeExtraction(raw []byte) (*wealthdash.Extraction, error) {
	type jaccount struct {
		Name     string          `json:"name"`
		Balance  json.RawMessage `json:"balance"`
		Currency string          `json:"currency"`
		Type     string          `json:"type"`
	}
	type jtransaction struct {
		Date        string          `json:"date"`
		Description string          `json:"description"`
		Category    string          `json:"category"`
		Amount      json.RawMessage `json:"amount"`
	}
	type jrate struct {
		Currency string  `json:"currency"`
		Rate     float64 `json:"rate"`
	}
	type jextraction struct {
		Accounts     []jaccount     `json:"accounts"`
		Transactions []jtransaction `json:"transactions"`
		Rates        []jrate        `json:"exchangeRates"`
	}

	var je jextraction
	if err := json.Unmarshal(raw, &je); err != nil {
		return nil, &wealthdash.ParseError{Msg: "extraction response is not the expected JSON shape"}
	}

	ex := &wealthdash.Extraction{}
	for _, ja := range je.Accounts {
		if ja.Name == "" {
			continue
		}
		ex.Accounts = append(ex.Accounts, wealthdash.AccountDraft{
			Name:     ja.Name,
			Type:     wealthdash.CoerceAccountType(ja.Type),
			Currency: wealthdash.CoerceCurrency(ja.Currency),
			Balance:  coerceAmount(ja.Balance),
		})
	}
	for _, jt := range je.Transactions {
		day, err := date.Parse(jt.Date)
		if err != nil {
			log.Printf("extraction: unreadable date %q, keeping transaction undated", jt.Date)
			day = date.Date{}
		}
		ex.Transactions = append(ex.Transactions, wealthdash.TransactionDraft{
			Date:        day,
			Description: jt.Description,
			Category:    wealthdash.CoerceCategory(jt.Category),
			Amount:      coerceAmount(jt.Amount),
		})
	}
	for _, jr := range je.Rates {
		cur, err := wealthdash.ParseCurrency(jr.Currency)
		if err != nil || jr.Rate <= 0 {
			log.Printf("extraction: dropping unusable %s rate %v", jr.Currency, jr.Rate)
			continue
		}
		if ex.Rates == nil {
			ex.Rates = wealthdash.RateTable{}
		}
		ex.Rates[cur] = decimal.NewFromFloat(jr.Rate)
	}
	if ex.IsEmpty() {
		return nil, &wealthdash.ParseError{Msg: "the statement produced no accounts or transactions"}
	}
	return ex, nil
}

// coerceAmount accepts a JSON number or a formatted string, anything else is
// zero.
func coerceAmount(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err == nil {
		return d
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return wealthdash.CoerceAmount(s)
	}
	return decimal.Zero
}
