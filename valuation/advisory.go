package valuation

import "bizworth/backend/models"

// Recommendations returns the advisory set for a company. The content is
// currently fixed per category; the signature takes the valuation so future
// logic can key off risk output without changing callers.
func Recommendations(companyID int64, _ *models.Valuation) []models.Recommendation {
	return []models.Recommendation{
		{
			CompanyID: companyID,
			Category:  "Digital Transformation",
			Impact:    4,
			Suggestions: []string{
				"Migrate core workflows to a cloud ERP or CRM platform",
				"Automate invoicing and reporting to cut manual bookkeeping",
				"Adopt a customer data platform to consolidate channel data",
			},
			EstimatedValueImpactMin: 10,
			EstimatedValueImpactMax: 25,
		},
		{
			CompanyID: companyID,
			Category:  "AI Operations",
			Impact:    3,
			Suggestions: []string{
				"Deploy AI-assisted demand forecasting on historical sales",
				"Use document extraction to speed up diligence preparation",
				"Pilot a support chatbot to reduce response times",
			},
			EstimatedValueImpactMin: 5,
			EstimatedValueImpactMax: 15,
		},
		{
			CompanyID: companyID,
			Category:  "Financial Health",
			Impact:    5,
			Suggestions: []string{
				"Shift one-off revenue toward recurring contracts",
				"Trim low-margin product lines to lift net margin above 10%",
				"Build a 13-week cash flow forecast reviewed monthly",
			},
			EstimatedValueImpactMin: 15,
			EstimatedValueImpactMax: 30,
		},
	}
}

// BuyerMatches returns the fixed buyer profiles for a company, ordered by
// match percentage.
func BuyerMatches(companyID int64, _ *models.Valuation) []models.BuyerMatch {
	return []models.BuyerMatch{
		{
			CompanyID:    companyID,
			BuyerName:    "Meridian Growth Partners",
			BuyerType:    "Private Equity",
			Description:  "Mid-market fund acquiring founder-led services businesses with recurring revenue.",
			MatchPercent: 94,
			Tags:         []string{"majority buyout", "recurring revenue", "services"},
			DealType:     "Majority Acquisition",
		},
		{
			CompanyID:    companyID,
			BuyerName:    "Northgate Industrial Group",
			BuyerType:    "Strategic Acquirer",
			Description:  "Regional operator consolidating complementary businesses for cross-sell synergies.",
			MatchPercent: 87,
			Tags:         []string{"strategic", "synergies", "regional"},
			DealType:     "Full Acquisition",
		},
		{
			CompanyID:    companyID,
			BuyerName:    "Halcyon Family Office",
			BuyerType:    "Family Office",
			Description:  "Patient-capital buyer seeking profitable companies with retained management.",
			MatchPercent: 79,
			Tags:         []string{"long hold", "management retention"},
			DealType:     "Minority Investment",
		},
	}
}
