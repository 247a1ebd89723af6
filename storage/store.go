package storage

import (
	"context"
	"errors"

	"bizworth/backend/models"
)

// ErrNotFound is returned by reads when no row matches.
var ErrNotFound = errors.New("not found")

// Store is the persistence contract shared by the in-memory and Postgres
// backends. Create methods assign the entity's ID and CreatedAt.
type Store interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	CreateCompany(ctx context.Context, co *models.Company) error
	GetCompany(ctx context.Context, id int64) (*models.Company, error)
	GetCompaniesByUser(ctx context.Context, userID int64) ([]models.Company, error)
	// EnsureCompany creates a placeholder company with the given id when none
	// exists. Write endpoints call it before inserting child rows so that a
	// dangling companyId never rejects the request.
	EnsureCompany(ctx context.Context, id int64) error

	CreateFinancial(ctx context.Context, f *models.Financial) error
	// GetFinancialByCompany returns the most recent financial record.
	GetFinancialByCompany(ctx context.Context, companyID int64) (*models.Financial, error)

	CreateEmployee(ctx context.Context, e *models.Employee) error
	GetEmployeeByCompany(ctx context.Context, companyID int64) (*models.Employee, error)

	CreateTechnology(ctx context.Context, t *models.Technology) error
	GetTechnologyByCompany(ctx context.Context, companyID int64) (*models.Technology, error)

	CreateOwnerIntent(ctx context.Context, oi *models.OwnerIntent) error
	GetOwnerIntentByCompany(ctx context.Context, companyID int64) (*models.OwnerIntent, error)

	CreateValuation(ctx context.Context, v *models.Valuation) error
	// GetValuationByCompany returns the first stored valuation for the company.
	GetValuationByCompany(ctx context.Context, companyID int64) (*models.Valuation, error)

	CreateRecommendation(ctx context.Context, r *models.Recommendation) error
	GetRecommendationsByCompany(ctx context.Context, companyID int64) ([]models.Recommendation, error)

	CreateBuyerMatch(ctx context.Context, b *models.BuyerMatch) error
	GetBuyerMatchesByCompany(ctx context.Context, companyID int64) ([]models.BuyerMatch, error)

	CreateDocument(ctx context.Context, d *models.Document) error
	GetDocumentsByCompany(ctx context.Context, companyID int64) ([]models.Document, error)
}
