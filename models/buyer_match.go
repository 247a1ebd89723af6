package models

import "time"

type BuyerMatch struct {
	ID           int64     `json:"id"`
	CompanyID    int64     `json:"companyId"`
	BuyerName    string    `json:"buyerName"`
	BuyerType    string    `json:"buyerType"`
	Description  string    `json:"description"`
	MatchPercent int       `json:"matchPercent"` // 0..100
	Tags         []string  `json:"tags"`
	DealType     string    `json:"dealType"`
	CreatedAt    time.Time `json:"createdAt"`
}
