// Package wealthdash implements the domain core of a single-user,
// multi-currency personal finance dashboard.
//
// The root package owns the ledger store (accounts and transactions), the
// exchange-rate table and the two-hop currency conversion built on it, the
// net-worth aggregation, and the persisted-snapshot codec. Statement import,
// the AI extraction oracle, exchange-rate refresh and presentation live in
// subpackages and only ever talk to the store through its mutation entry
// points.
//
// Amounts are decimal (shopspring/decimal) everywhere; floats appear only at
// the boundary with external JSON feeds. The guiding policy throughout is
// fail-safe, not fail-stop: a missing exchange rate converts as identity, an
// unparseable statement cell becomes zero, a corrupt snapshot loads as an
// empty ledger. The dashboard never crashes over bad data; at worst it shows
// a number it had to guess, and says so on stderr.
package wealthdash
