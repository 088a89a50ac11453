package importer

import (
	"strings"

	"github.com/Ray-XRay/wealthdash-google"
)

// Statement headers come in whatever language the bank speaks; the app's
// home market is Hong Kong, so the keyword sets cover English and Chinese.
// Matching is case-insensitive substring matching over the trimmed cell.

var nameKeywords = []string{
	"name", "account", "description", "institution", "bank",
	"名稱", "名称", "戶口", "账户", "帳戶", "機構", "银行", "銀行",
}

var balanceKeywords = []string{
	"balance", "amount", "value", "total",
	"結餘", "结余", "餘額", "余额", "金額", "金额", "市值",
}

var currencyKeywords = []string{
	"currency", "ccy",
	"貨幣", "货币", "幣種", "币种", "幣別",
}

// keywordMatch reports whether the cell mentions any of the keywords.
func keywordMatch(cell string, keywords []string) bool {
	cell = strings.ToLower(strings.TrimSpace(cell))
	if cell == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(cell, kw) {
			return true
		}
	}
	return false
}

// typeKeywords classify an account by its name. First match wins, checked in
// order; anything unmatched is a Bank account.
var typeKeywords = []struct {
	typ      wealthdash.AccountType
	keywords []string
}{
	{wealthdash.Investment, []string{
		"invest", "stock", "fund", "securities", "broker", "etf", "mpf",
		"證券", "证券", "股票", "基金", "投資", "投资", "強積金",
	}},
	{wealthdash.Wallet, []string{
		"wallet", "cash", "octopus", "alipay", "wechat", "payme", "tng",
		"錢包", "钱包", "現金", "现金", "八達通", "支付寶", "微信",
	}},
	{wealthdash.Personal, []string{
		"loan", "borrow", "iou", "lend", "owed",
		"借", "貸", "贷", "欠",
	}},
}

// inferAccountType classifies an account name into a type.
func inferAccountType(name string) wealthdash.AccountType {
	lower := strings.ToLower(name)
	for _, entry := range typeKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.typ
			}
		}
	}
	return wealthdash.Bank
}

// currencyKeywordTable maps symbols, codes and local names to currencies.
// Checked in order so the longer, unambiguous markers ("HK$", "US$") win
// over bare "$".
var currencyKeywordTable = []struct {
	cur      wealthdash.Currency
	keywords []string
}{
	{wealthdash.HKD, []string{"hkd", "hk$", "港幣", "港币", "港元"}},
	{wealthdash.CNY, []string{"cny", "rmb", "人民幣", "人民币", "¥cn"}},
	{wealthdash.USD, []string{"usd", "us$", "美元", "美金"}},
	{wealthdash.JPY, []string{"jpy", "日元", "日圓", "円"}},
	{wealthdash.EUR, []string{"eur", "€", "歐元", "欧元"}},
	{wealthdash.GBP, []string{"gbp", "£", "英鎊", "英镑"}},
	{wealthdash.AUD, []string{"aud", "au$", "澳元"}},
	{wealthdash.CAD, []string{"cad", "ca$", "加元"}},
	{wealthdash.SGD, []string{"sgd", "s$", "新加坡元", "新元"}},
}

// inferCurrency guesses a currency from free text (an account name or a raw
// cell) and falls back to the anchor.
func inferCurrency(text string) wealthdash.Currency {
	lower := strings.ToLower(text)
	for _, entry := range currencyKeywordTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.cur
			}
		}
	}
	return wealthdash.Anchor
}
