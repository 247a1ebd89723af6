package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valuation is one run of the valuation engine for a company. A company may
// accumulate several rows; reads by company return the first match.
type Valuation struct {
	ID                         int64           `json:"id"`
	CompanyID                  int64           `json:"companyId"`
	ValuationMin               decimal.Decimal `json:"valuationMin"`
	ValuationMedian            decimal.Decimal `json:"valuationMedian"`
	ValuationMax               decimal.Decimal `json:"valuationMax"`
	EBITDAMultipleValue        decimal.Decimal `json:"ebitdaMultipleValue"`
	RevenueMultipleValue       decimal.Decimal `json:"revenueMultipleValue"`
	DCFValue                   decimal.Decimal `json:"dcfValue"`
	AssetBasedValue            decimal.Decimal `json:"assetBasedValue"`
	RiskScore                  int             `json:"riskScore"`
	FinancialHealthScore       int             `json:"financialHealthScore"`
	MarketPositionScore        int             `json:"marketPositionScore"`
	OperationalEfficiencyScore int             `json:"operationalEfficiencyScore"`
	DebtStructureScore         int             `json:"debtStructureScore"`
	RedFlags                   []string        `json:"redFlags"`
	CreatedAt                  time.Time       `json:"createdAt"`
}
