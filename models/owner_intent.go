package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OwnerIntent struct {
	ID                   int64            `json:"id"`
	CompanyID            int64            `json:"companyId"`
	Intent               string           `json:"intent"`
	ExitTimeline         string           `json:"exitTimeline"`
	IdealOutcome         string           `json:"idealOutcome"`
	ValuationExpectation *decimal.Decimal `json:"valuationExpectation"`
	CreatedAt            time.Time        `json:"createdAt"`
}
