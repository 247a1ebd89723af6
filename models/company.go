package models

import "time"

type Company struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	Name            string    `json:"name"`
	Sector          string    `json:"sector"`
	Location        string    `json:"location"`
	YearsInBusiness int       `json:"yearsInBusiness"`
	Goal            string    `json:"goal"`
	CreatedAt       time.Time `json:"createdAt"`
}
