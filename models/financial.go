package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Financial carries a company's revenue history and profitability.
// Money fields stay decimal end-to-end; the schema stores them as NUMERIC.
type Financial struct {
	ID                 int64            `json:"id"`
	CompanyID          int64            `json:"companyId"`
	RevenueCurrent     decimal.Decimal  `json:"revenueCurrent"`
	RevenuePrevious    *decimal.Decimal `json:"revenuePrevious"`
	RevenueTwoYearsAgo *decimal.Decimal `json:"revenueTwoYearsAgo"`
	EBITDA             decimal.Decimal  `json:"ebitda"`
	NetMargin          float64          `json:"netMargin"` // percent
	CreatedAt          time.Time        `json:"createdAt"`
}
