package models

import "time"

type Technology struct {
	ID                  int64     `json:"id"`
	CompanyID           int64     `json:"companyId"`
	TransformationLevel int       `json:"transformationLevel"` // 1..5
	Technologies        []string  `json:"technologies"`
	TechInvestmentPct   float64   `json:"techInvestmentPct"` // percent of revenue
	CreatedAt           time.Time `json:"createdAt"`
}
