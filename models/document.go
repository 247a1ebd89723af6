package models

import "time"

// Document types accepted on upload.
const (
	DocTypeFinancial = "financial"
	DocTypeTax       = "tax"
	DocTypeContract  = "contract"
)

type Document struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"companyId"`
	DocType   string    `json:"docType"`
	FileName  string    `json:"fileName"`
	FilePath  string    `json:"filePath"`
	CreatedAt time.Time `json:"createdAt"`
}
