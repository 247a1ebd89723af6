package valuation

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizworth/backend/models"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func baseInputs() (*models.Financial, *models.Employee, *models.Technology, *models.OwnerIntent) {
	fin := &models.Financial{
		CompanyID:       1,
		RevenueCurrent:  dec(1000000),
		RevenuePrevious: decPtr(1100000),
		EBITDA:          dec(200000),
		NetMargin:       8,
	}
	emp := &models.Employee{CompanyID: 1, Headcount: 25}
	tech := &models.Technology{CompanyID: 1, TransformationLevel: 2}
	intent := &models.OwnerIntent{CompanyID: 1, Intent: "full_sale"}
	return fin, emp, tech, intent
}

func TestGenerateWorkedScenario(t *testing.T) {
	fin, emp, tech, intent := baseInputs()
	v := Generate(fin, emp, tech, intent)

	assert.True(t, v.ValuationMin.Equal(dec(807500)), "min: %s", v.ValuationMin)
	assert.True(t, v.ValuationMedian.Equal(dec(950000)), "median: %s", v.ValuationMedian)
	assert.True(t, v.ValuationMax.Equal(dec(1092500)), "max: %s", v.ValuationMax)

	assert.True(t, v.EBITDAMultipleValue.Equal(dec(900000)))
	assert.True(t, v.RevenueMultipleValue.Equal(dec(2000000)))
	assert.True(t, v.DCFValue.Equal(dec(1000000)))
	assert.True(t, v.AssetBasedValue.Equal(dec(800000)))

	assert.Contains(t, v.RedFlags, FlagDecliningRevenue)
	assert.Contains(t, v.RedFlags, FlagLowProfitMargin)
}

func TestGenerateRangeOrdering(t *testing.T) {
	tests := []struct {
		name    string
		revenue int64
		ebitda  int64
	}{
		{"ebitda heavy", 500000, 900000},
		{"revenue heavy", 5000000, 100000},
		{"small", 120000, 30000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fin, emp, tech, intent := baseInputs()
			fin.RevenueCurrent = dec(tt.revenue)
			fin.EBITDA = dec(tt.ebitda)
			v := Generate(fin, emp, tech, intent)

			require.True(t, v.ValuationMin.LessThanOrEqual(v.ValuationMedian))
			require.True(t, v.ValuationMedian.LessThanOrEqual(v.ValuationMax))
			// spread is exactly median x {0.85, 1.15} within rounding
			assert.True(t, v.ValuationMin.Equal(v.ValuationMedian.Mul(decimal.NewFromFloat(0.85)).Round(0)))
			assert.True(t, v.ValuationMax.Equal(v.ValuationMedian.Mul(decimal.NewFromFloat(1.15)).Round(0)))
		})
	}
}

func TestRiskScoreIsAverageOfComponents(t *testing.T) {
	for _, margin := range []float64{-20, 0, 8, 15, 40} {
		fin, emp, tech, intent := baseInputs()
		fin.NetMargin = margin
		v := Generate(fin, emp, tech, intent)

		sum := v.FinancialHealthScore + v.MarketPositionScore + v.OperationalEfficiencyScore + v.DebtStructureScore
		want := int(math.Round(float64(sum) / 4))
		assert.Equal(t, want, v.RiskScore, "margin %v", margin)
	}
}

func TestFinancialHealthScoreClamp(t *testing.T) {
	tests := []struct {
		margin float64
		want   int
	}{
		{-40, 20},
		{-15, 20},
		{0, 50},
		{8, 66},
		{25, 100},
		{60, 100},
	}
	for _, tt := range tests {
		fin, emp, tech, intent := baseInputs()
		fin.NetMargin = tt.margin
		v := Generate(fin, emp, tech, intent)
		assert.Equal(t, tt.want, v.FinancialHealthScore, "margin %v", tt.margin)
	}
}

func TestOperationalEfficiencySwitch(t *testing.T) {
	for level := 1; level <= 5; level++ {
		fin, emp, tech, intent := baseInputs()
		tech.TransformationLevel = level
		v := Generate(fin, emp, tech, intent)
		if level > 3 {
			assert.Equal(t, 50, v.OperationalEfficiencyScore, "level %d", level)
		} else {
			assert.Equal(t, 35, v.OperationalEfficiencyScore, "level %d", level)
		}
	}
}

func TestFixedComponentScores(t *testing.T) {
	fin, emp, tech, intent := baseInputs()
	v := Generate(fin, emp, tech, intent)
	assert.Equal(t, 48, v.MarketPositionScore)
	assert.Equal(t, 72, v.DebtStructureScore)
}

func TestDigitalTransformationLagFlag(t *testing.T) {
	for level := 1; level <= 5; level++ {
		fin, emp, tech, intent := baseInputs()
		fin.NetMargin = 20
		fin.RevenuePrevious = decPtr(900000)
		tech.TransformationLevel = level
		v := Generate(fin, emp, tech, intent)
		if level < 3 {
			assert.Equal(t, []string{FlagDigitalTransformationLag}, v.RedFlags, "level %d", level)
		} else {
			assert.Empty(t, v.RedFlags, "level %d", level)
		}
	}
}

func TestDecliningRevenueNeedsPreviousRevenue(t *testing.T) {
	fin, emp, tech, intent := baseInputs()
	fin.RevenuePrevious = nil
	v := Generate(fin, emp, tech, intent)
	assert.NotContains(t, v.RedFlags, FlagDecliningRevenue)

	fin.RevenuePrevious = decPtr(1000001)
	v = Generate(fin, emp, tech, intent)
	assert.Contains(t, v.RedFlags, FlagDecliningRevenue)
}

func TestRedFlagOrder(t *testing.T) {
	fin, emp, tech, intent := baseInputs()
	tech.TransformationLevel = 1
	v := Generate(fin, emp, tech, intent)
	assert.Equal(t, []string{FlagDecliningRevenue, FlagLowProfitMargin, FlagDigitalTransformationLag}, v.RedFlags)
}
