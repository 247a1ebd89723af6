package models

import "time"

type Employee struct {
	ID             int64     `json:"id"`
	CompanyID      int64     `json:"companyId"`
	Headcount      int       `json:"headcount"`
	DigitalSystems []string  `json:"digitalSystems"`
	OtherSystem    string    `json:"otherSystem"`
	CreatedAt      time.Time `json:"createdAt"`
}
