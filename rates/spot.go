package rates

import (
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/Ray-XRay/wealthdash-google"
	"github.com/shopspring/decimal"
)

// Spot fetches the feed untyped and plucks a single currency's rate out of
// it with a jsonpath query. Feeds are loosely structured and shift shape
// over time; addressing one value by path keeps this tolerant of fields we
// don't model.
func (c *Client) Spot(cur wealthdash.Currency) (decimal.Decimal, error) {
	var jobj any
	if err := jwget(c.HTTP, c.URL, &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("error fetching %s spot rate: %w", cur, err)
	}

	path := fmt.Sprintf("$.rates.%s", cur)
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error reading %q from the rate feed: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok || val <= 0 {
		return decimal.Zero, fmt.Errorf("the rate feed has no usable %s rate (%v)", cur, jval)
	}
	return decimal.NewFromFloat(val), nil
}
