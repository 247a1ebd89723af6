package models

import "time"

type Recommendation struct {
	ID                      int64     `json:"id"`
	CompanyID               int64     `json:"companyId"`
	Category                string    `json:"category"`
	Impact                  int       `json:"impact"` // 1..5
	Suggestions             []string  `json:"suggestions"`
	EstimatedValueImpactMin float64   `json:"estimatedValueImpactMin"` // percent
	EstimatedValueImpactMax float64   `json:"estimatedValueImpactMax"` // percent
	CreatedAt               time.Time `json:"createdAt"`
}
