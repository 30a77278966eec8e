package models

// Meta holds scalar company facts found anywhere in the sheet.
type Meta struct {
	// CompanyName is the value of the "COMPANY NAME" row.
	CompanyName string `json:"companyName" yaml:"companyName"`
	// FaceValue is the nominal value of one share.
	FaceValue float64 `json:"faceValue" yaml:"faceValue"`
	// CurrentPrice is the share price at export time.
	CurrentPrice float64 `json:"currentPrice" yaml:"currentPrice"`
	// MarketCapitalization is the market value of the company.
	MarketCapitalization float64 `json:"marketCapitalization" yaml:"marketCapitalization"`
	// NumberOfShares is set from "Number of shares" or "Adjusted Equity Shares" rows (nil if absent).
	NumberOfShares *float64 `json:"numberOfShares,omitempty" yaml:"numberOfShares,omitempty"`
}
