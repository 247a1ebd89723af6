package storage

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizworth/backend/models"
)

func TestUserLifecycle(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	u := models.User{Email: "owner@example.com", Name: "Owner", Role: "user", PasswordHash: "x"}
	require.NoError(t, st.CreateUser(ctx, &u))
	assert.Equal(t, int64(1), u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := st.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)

	byEmail, err := st.GetUserByEmail(ctx, "OWNER@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = st.GetUserByID(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnsureCompanyPlaceholder(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	_, err := st.GetCompany(ctx, 42)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.EnsureCompany(ctx, 42))
	co, err := st.GetCompany(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), co.ID)
	assert.Equal(t, "Pending Company", co.Name)

	// idempotent: a second ensure keeps the existing row
	require.NoError(t, st.EnsureCompany(ctx, 42))
	again, err := st.GetCompany(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, co.CreatedAt, again.CreatedAt)

	// later serial ids do not collide with the explicit one
	next := models.Company{UserID: 1, Name: "Real Co"}
	require.NoError(t, st.CreateCompany(ctx, &next))
	assert.Equal(t, int64(43), next.ID)
}

func TestEnsureCompanyLeavesExistingAlone(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	co := models.Company{UserID: 1, Name: "Acme Logistics", Sector: "logistics"}
	require.NoError(t, st.CreateCompany(ctx, &co))
	require.NoError(t, st.EnsureCompany(ctx, co.ID))

	got, err := st.GetCompany(ctx, co.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Logistics", got.Name)
}

func TestFinancialLatestWins(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, st.EnsureCompany(ctx, 1))

	first := models.Financial{CompanyID: 1, RevenueCurrent: decimal.NewFromInt(100), EBITDA: decimal.NewFromInt(10)}
	second := models.Financial{CompanyID: 1, RevenueCurrent: decimal.NewFromInt(200), EBITDA: decimal.NewFromInt(20)}
	require.NoError(t, st.CreateFinancial(ctx, &first))
	require.NoError(t, st.CreateFinancial(ctx, &second))

	got, err := st.GetFinancialByCompany(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.RevenueCurrent.Equal(decimal.NewFromInt(200)))
}

func TestValuationFirstMatchWins(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, st.EnsureCompany(ctx, 1))

	first := models.Valuation{CompanyID: 1, ValuationMedian: decimal.NewFromInt(500000), RiskScore: 55}
	second := models.Valuation{CompanyID: 1, ValuationMedian: decimal.NewFromInt(900000), RiskScore: 60}
	require.NoError(t, st.CreateValuation(ctx, &first))
	require.NoError(t, st.CreateValuation(ctx, &second))

	got, err := st.GetValuationByCompany(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.ValuationMedian.Equal(decimal.NewFromInt(500000)))
	assert.Equal(t, 55, got.RiskScore)
}

func TestChildCollections(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, st.EnsureCompany(ctx, 1))

	require.NoError(t, st.CreateRecommendation(ctx, &models.Recommendation{CompanyID: 1, Category: "Digital Transformation", Impact: 4}))
	require.NoError(t, st.CreateRecommendation(ctx, &models.Recommendation{CompanyID: 1, Category: "Financial Health", Impact: 5}))
	recs, err := st.GetRecommendationsByCompany(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	require.NoError(t, st.CreateBuyerMatch(ctx, &models.BuyerMatch{CompanyID: 1, BuyerName: "Fund A", MatchPercent: 94}))
	matches, err := st.GetBuyerMatchesByCompany(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	require.NoError(t, st.CreateDocument(ctx, &models.Document{CompanyID: 1, DocType: models.DocTypeTax, FileName: "returns.pdf", FilePath: "uploads/1_returns.pdf"}))
	docs, err := st.GetDocumentsByCompany(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	// other companies see nothing
	recs, err = st.GetRecommendationsByCompany(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestGetCompaniesByUser(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, st.CreateCompany(ctx, &models.Company{UserID: 1, Name: "A"}))
	require.NoError(t, st.CreateCompany(ctx, &models.Company{UserID: 2, Name: "B"}))
	require.NoError(t, st.CreateCompany(ctx, &models.Company{UserID: 1, Name: "C"}))

	list, err := st.GetCompaniesByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
