// Package valuation derives a heuristic valuation range, risk scores and red
// flags from a company's intake records.
package valuation

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"bizworth/backend/models"
)

// Methodology multipliers.
var (
	ebitdaMultiple  = decimal.NewFromFloat(4.5)
	revenueMultiple = decimal.NewFromFloat(2.0)
	dcfMultiple     = decimal.NewFromFloat(5.0)
	assetRatio      = decimal.NewFromFloat(0.8)
	rangeLow        = decimal.NewFromFloat(0.85)
	rangeHigh       = decimal.NewFromFloat(1.15)
	two             = decimal.NewFromInt(2)
)

// Red flag labels, appended in this order when their condition holds.
const (
	FlagDecliningRevenue         = "Declining Revenue"
	FlagLowProfitMargin          = "Low Profit Margin"
	FlagDigitalTransformationLag = "Digital Transformation Lag"
)

// Generate computes a valuation from the four intake records. It performs no
// input validation; callers must reject incomplete data before invoking it.
func Generate(fin *models.Financial, emp *models.Employee, tech *models.Technology, intent *models.OwnerIntent) models.Valuation {
	estimates := []decimal.Decimal{
		fin.EBITDA.Mul(ebitdaMultiple),
		fin.RevenueCurrent.Mul(revenueMultiple),
		fin.EBITDA.Mul(dcfMultiple),
		fin.RevenueCurrent.Mul(assetRatio),
	}
	sort.Slice(estimates, func(i, j int) bool { return estimates[i].LessThan(estimates[j]) })

	// n=4, so the median is the mean of the two middle estimates.
	median := estimates[1].Add(estimates[2]).Div(two)

	fh := clampScore(50+fin.NetMargin*2, 20, 100)
	mp := 48
	oe := 35
	if tech.TransformationLevel > 3 {
		oe += 15
	}
	ds := 72
	risk := int(math.Round(float64(fh+mp+oe+ds) / 4.0))

	flags := []string{}
	if fin.RevenuePrevious != nil && fin.RevenueCurrent.LessThan(*fin.RevenuePrevious) {
		flags = append(flags, FlagDecliningRevenue)
	}
	if fin.NetMargin < 10 {
		flags = append(flags, FlagLowProfitMargin)
	}
	if tech.TransformationLevel < 3 {
		flags = append(flags, FlagDigitalTransformationLag)
	}

	return models.Valuation{
		CompanyID:                  fin.CompanyID,
		ValuationMin:               median.Mul(rangeLow).Round(0),
		ValuationMedian:            median.Round(0),
		ValuationMax:               median.Mul(rangeHigh).Round(0),
		EBITDAMultipleValue:        estimateRound(fin.EBITDA.Mul(ebitdaMultiple)),
		RevenueMultipleValue:       estimateRound(fin.RevenueCurrent.Mul(revenueMultiple)),
		DCFValue:                   estimateRound(fin.EBITDA.Mul(dcfMultiple)),
		AssetBasedValue:            estimateRound(fin.RevenueCurrent.Mul(assetRatio)),
		RiskScore:                  risk,
		FinancialHealthScore:       fh,
		MarketPositionScore:        mp,
		OperationalEfficiencyScore: oe,
		DebtStructureScore:         ds,
		RedFlags:                   flags,
	}
}

func estimateRound(d decimal.Decimal) decimal.Decimal { return d.Round(0) }

func clampScore(v, lo, hi float64) int {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return int(math.Round(v))
}
