package models

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateCompanyRequest struct {
	Name            string `json:"name" binding:"required"`
	Sector          string `json:"sector"`
	Location        string `json:"location"`
	YearsInBusiness int    `json:"yearsInBusiness"`
	Goal            string `json:"goal"`
}
