package oracle

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ray-XRay/wealthdash-google"
	"google.golang.org/genai"
)

const insightInstruction = `You are a pragmatic personal finance advisor.
The user shares a summary of their accounts and recent transactions.
Comment briefly on currency exposure, spending patterns and liabilities.
Plain prose, at most five short paragraphs, no investment advice disclaimers.`

// Insight sends a ledger summary to the oracle and returns free-text
// commentary for the dashboard's insight card.
func (c *Client) Insight(ctx context.Context, summary string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(summary)}, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{genai.NewPartFromText(insightInstruction)}},
	}
	return c.generate(ctx, contents, config)
}

// Summarize renders the ledger into the plain-text summary the insight
// prompt consumes. Only aggregates and account shapes are sent, never ids.
func Summarize(accounts []wealthdash.Account, txs []wealthdash.Transaction, rates wealthdash.RateTable, base wealthdash.Currency) string {
	var b strings.Builder
	totals := wealthdash.ComputeTotals(accounts, rates, base)
	fmt.Fprintf(&b, "Base currency: %s\n", base)
	fmt.Fprintf(&b, "Net worth: %s, cash %s, investments %s, liabilities %s\n",
		totals.NetWorth, totals.Cash(), totals.Investments, totals.Liabilities)
	fmt.Fprintf(&b, "Accounts (%d):\n", len(accounts))
	for _, a := range accounts {
		fmt.Fprintf(&b, "- %s (%s, %s): %s\n", a.Name, a.Type, a.Currency, a.Money())
	}
	spending := wealthdash.SpendingByCategory(txs)
	if len(spending) > 0 {
		fmt.Fprintf(&b, "Spending by category over %d transactions:\n", len(txs))
		for _, cat := range wealthdash.Categories {
			if amount, ok := spending[cat]; ok {
				fmt.Fprintf(&b, "- %s: %s %s\n", cat, amount.StringFixed(2), wealthdash.Anchor)
			}
		}
	}
	return b.String()
}
