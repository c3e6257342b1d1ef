package model

import "strings"

// AssetTypes is the fixed catalog of asset categories the collection flow
// offers. Free-form labels are normalized against it; labels that match
// nothing pass through untouched.
var AssetTypes = []string{
	"Equities (Stocks)",
	"Fixed Income (Bonds)",
	"Real Estate",
	"Cash & Equivalents",
	"Gold & Precious Metals",
	"Alternative Investments",
	"Cryptocurrencies",
	"Mutual Funds",
	"ETFs",
	"Retirement Accounts",
}

// assetAliases maps lowercase keywords found in free-form labels to catalog
// entries. Ordered: first hit wins, and more specific keywords come first.
var assetAliases = []struct {
	keyword  string
	category string
}{
	{"etf", "ETFs"},
	{"mutual fund", "Mutual Funds"},
	{"mutual_fund", "Mutual Funds"},
	{"elss", "Mutual Funds"},
	{"retirement", "Retirement Accounts"},
	{"401", "Retirement Accounts"},
	{"ppf", "Retirement Accounts"},
	{"epf", "Retirement Accounts"},
	{"ira", "Retirement Accounts"},
	{"pension", "Retirement Accounts"},
	{"stock", "Equities (Stocks)"},
	{"equit", "Equities (Stocks)"},
	{"share", "Equities (Stocks)"},
	{"bond", "Fixed Income (Bonds)"},
	{"debenture", "Fixed Income (Bonds)"},
	{"fixed deposit", "Fixed Income (Bonds)"},
	{"fd", "Fixed Income (Bonds)"},
	{"debt", "Fixed Income (Bonds)"},
	{"real estate", "Real Estate"},
	{"property", "Real Estate"},
	{"reit", "Real Estate"},
	{"gold", "Gold & Precious Metals"},
	{"silver", "Gold & Precious Metals"},
	{"precious", "Gold & Precious Metals"},
	{"crypto", "Cryptocurrencies"},
	{"bitcoin", "Cryptocurrencies"},
	{"cash", "Cash & Equivalents"},
	{"savings", "Cash & Equivalents"},
	{"liquid", "Cash & Equivalents"},
	{"money market", "Cash & Equivalents"},
	{"hedge", "Alternative Investments"},
	{"private equity", "Alternative Investments"},
	{"commodit", "Alternative Investments"},
}

// NormalizeAssetType maps a free-form asset label onto the fixed catalog.
// Exact catalog names are returned as-is; otherwise the first matching
// keyword decides. Unmatched labels are returned unchanged.
func NormalizeAssetType(label string) string {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return ""
	}
	lower := strings.ToLower(trimmed)
	for _, t := range AssetTypes {
		if strings.ToLower(t) == lower {
			return t
		}
	}
	for _, a := range assetAliases {
		if strings.Contains(lower, a.keyword) {
			return a.category
		}
	}
	return trimmed
}

// AssetDetails is the nested detail record produced by the collection flow
// when it records an asset in two steps (type first, details second).
type AssetDetails struct {
	Amount          float64  `json:"amount"`
	Name            string   `json:"name"`
	ExpectedReturns *float64 `json:"expected_returns,omitempty"`
	CurrentValue    *float64 `json:"current_value,omitempty"`
	PurchaseDate    string   `json:"purchase_date,omitempty"`
	Tenure          string   `json:"tenure,omitempty"`
	RiskCategory    string   `json:"risk_category,omitempty"`
	AdditionalNotes string   `json:"additional_notes,omitempty"`
}

// Investment is one recorded holding. Fields may live at the top level
// (API input) or inside Details (dialogue flow input); resolution prefers
// the nested form and defaults rather than failing on gaps.
type Investment struct {
	AssetType       string        `json:"asset_type,omitempty"`
	Amount          float64       `json:"amount,omitempty"`
	Name            string        `json:"name,omitempty"`
	ExpectedReturns *float64      `json:"expected_returns,omitempty"`
	CurrentValue    *float64      `json:"current_value,omitempty"`
	PurchaseDate    string        `json:"purchase_date,omitempty"`
	Tenure          string        `json:"tenure,omitempty"`
	RiskCategory    string        `json:"risk_category,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	Details         *AssetDetails `json:"details,omitempty"`
}

// ResolvedType returns the normalized asset type, falling back to the
// details name and finally "Unknown".
func (inv Investment) ResolvedType() string {
	if t := NormalizeAssetType(inv.AssetType); t != "" {
		return t
	}
	if inv.Details != nil {
		if t := NormalizeAssetType(inv.Details.Name); t != "" {
			return t
		}
	}
	return "Unknown"
}

// ResolvedAmount returns the invested amount, preferring the nested detail
// record over the top-level field. Missing amounts resolve to zero.
func (inv Investment) ResolvedAmount() float64 {
	if inv.Details != nil && inv.Details.Amount > 0 {
		return inv.Details.Amount
	}
	return inv.Amount
}

// ResolvedValue returns the current value of the holding, defaulting to the
// invested amount when no mark is recorded.
func (inv Investment) ResolvedValue() float64 {
	if inv.Details != nil && inv.Details.CurrentValue != nil {
		return *inv.Details.CurrentValue
	}
	if inv.CurrentValue != nil {
		return *inv.CurrentValue
	}
	return inv.ResolvedAmount()
}
