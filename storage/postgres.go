package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"bizworth/backend/models"
)

// PostgresStore is the durable backend. NUMERIC columns are read and written
// as text so money values round-trip without float drift.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func decText(d decimal.Decimal) string { return d.String() }

func decTextPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func parseDec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseDecPtr(s *string) *decimal.Decimal {
	if s == nil {
		return nil
	}
	d := parseDec(*s)
	return &d
}

func (s *PostgresStore) CreateUser(ctx context.Context, u *models.User) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO users(email, password_hash, name, role) VALUES($1,$2,$3,$4) RETURNING id, created_at`,
		u.Email, u.PasswordHash, u.Name, u.Role,
	).Scan(&u.ID, &u.CreatedAt)
}

func (s *PostgresStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, name, role, created_at FROM users WHERE id=$1`, id,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, name, role, created_at FROM users WHERE lower(email)=lower($1)`, email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *PostgresStore) CreateCompany(ctx context.Context, co *models.Company) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO companies(user_id, name, sector, location, years_in_business, goal)
		 VALUES($1,$2,$3,$4,$5,$6) RETURNING id, created_at`,
		co.UserID, co.Name, co.Sector, co.Location, co.YearsInBusiness, co.Goal,
	).Scan(&co.ID, &co.CreatedAt)
}

func (s *PostgresStore) GetCompany(ctx context.Context, id int64) (*models.Company, error) {
	var co models.Company
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, name, sector, location, years_in_business, goal, created_at FROM companies WHERE id=$1`, id,
	).Scan(&co.ID, &co.UserID, &co.Name, &co.Sector, &co.Location, &co.YearsInBusiness, &co.Goal, &co.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &co, nil
}

func (s *PostgresStore) GetCompaniesByUser(ctx context.Context, userID int64) ([]models.Company, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, name, sector, location, years_in_business, goal, created_at FROM companies WHERE user_id=$1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []models.Company{}
	for rows.Next() {
		var co models.Company
		if err := rows.Scan(&co.ID, &co.UserID, &co.Name, &co.Sector, &co.Location, &co.YearsInBusiness, &co.Goal, &co.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, co)
	}
	return out, rows.Err()
}

func (s *PostgresStore) EnsureCompany(ctx context.Context, id int64) error {
	// Explicit placeholder policy: a write referencing an unknown company
	// creates a pending row with that id instead of failing. Bump the id
	// sequence past explicit inserts so later serial ids do not collide.
	_, err := s.pool.Exec(ctx,
		`INSERT INTO companies(id, user_id, name) VALUES($1, 0, 'Pending Company') ON CONFLICT (id) DO NOTHING`, id)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx,
		`SELECT setval('companies_id_seq', GREATEST((SELECT MAX(id) FROM companies), 1))`)
	return err
}

func (s *PostgresStore) CreateFinancial(ctx context.Context, f *models.Financial) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO financials(company_id, revenue_current, revenue_previous, revenue_two_years_ago, ebitda, net_margin)
		 VALUES($1,$2::numeric,$3::numeric,$4::numeric,$5::numeric,$6) RETURNING id, created_at`,
		f.CompanyID, decText(f.RevenueCurrent), decTextPtr(f.RevenuePrevious), decTextPtr(f.RevenueTwoYearsAgo), decText(f.EBITDA), f.NetMargin,
	).Scan(&f.ID, &f.CreatedAt)
}

func (s *PostgresStore) GetFinancialByCompany(ctx context.Context, companyID int64) (*models.Financial, error) {
	var (
		f             models.Financial
		cur, eb       string
		prev, twoBack *string
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, company_id, revenue_current::text, revenue_previous::text, revenue_two_years_ago::text, ebitda::text, net_margin, created_at
		 FROM financials WHERE company_id=$1 ORDER BY created_at DESC, id DESC LIMIT 1`, companyID,
	).Scan(&f.ID, &f.CompanyID, &cur, &prev, &twoBack, &eb, &f.NetMargin, &f.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	f.RevenueCurrent = parseDec(cur)
	f.RevenuePrevious = parseDecPtr(prev)
	f.RevenueTwoYearsAgo = parseDecPtr(twoBack)
	f.EBITDA = parseDec(eb)
	return &f, nil
}

func (s *PostgresStore) CreateEmployee(ctx context.Context, e *models.Employee) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO employees(company_id, headcount, digital_systems, other_system)
		 VALUES($1,$2,$3,$4) RETURNING id, created_at`,
		e.CompanyID, e.Headcount, e.DigitalSystems, e.OtherSystem,
	).Scan(&e.ID, &e.CreatedAt)
}

func (s *PostgresStore) GetEmployeeByCompany(ctx context.Context, companyID int64) (*models.Employee, error) {
	var e models.Employee
	err := s.pool.QueryRow(ctx,
		`SELECT id, company_id, headcount, COALESCE(digital_systems,'{}'::text[]), other_system, created_at
		 FROM employees WHERE company_id=$1 ORDER BY created_at DESC, id DESC LIMIT 1`, companyID,
	).Scan(&e.ID, &e.CompanyID, &e.Headcount, &e.DigitalSystems, &e.OtherSystem, &e.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &e, nil
}

func (s *PostgresStore) CreateTechnology(ctx context.Context, t *models.Technology) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO technology(company_id, transformation_level, technologies, tech_investment_pct)
		 VALUES($1,$2,$3,$4) RETURNING id, created_at`,
		t.CompanyID, t.TransformationLevel, t.Technologies, t.TechInvestmentPct,
	).Scan(&t.ID, &t.CreatedAt)
}

func (s *PostgresStore) GetTechnologyByCompany(ctx context.Context, companyID int64) (*models.Technology, error) {
	var t models.Technology
	err := s.pool.QueryRow(ctx,
		`SELECT id, company_id, transformation_level, COALESCE(technologies,'{}'::text[]), tech_investment_pct, created_at
		 FROM technology WHERE company_id=$1 ORDER BY created_at DESC, id DESC LIMIT 1`, companyID,
	).Scan(&t.ID, &t.CompanyID, &t.TransformationLevel, &t.Technologies, &t.TechInvestmentPct, &t.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (s *PostgresStore) CreateOwnerIntent(ctx context.Context, oi *models.OwnerIntent) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO owner_intent(company_id, intent, exit_timeline, ideal_outcome, valuation_expectation)
		 VALUES($1,$2,$3,$4,$5::numeric) RETURNING id, created_at`,
		oi.CompanyID, oi.Intent, oi.ExitTimeline, oi.IdealOutcome, decTextPtr(oi.ValuationExpectation),
	).Scan(&oi.ID, &oi.CreatedAt)
}

func (s *PostgresStore) GetOwnerIntentByCompany(ctx context.Context, companyID int64) (*models.OwnerIntent, error) {
	var (
		oi  models.OwnerIntent
		exp *string
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, company_id, intent, exit_timeline, ideal_outcome, valuation_expectation::text, created_at
		 FROM owner_intent WHERE company_id=$1 ORDER BY created_at DESC, id DESC LIMIT 1`, companyID,
	).Scan(&oi.ID, &oi.CompanyID, &oi.Intent, &oi.ExitTimeline, &oi.IdealOutcome, &exp, &oi.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	oi.ValuationExpectation = parseDecPtr(exp)
	return &oi, nil
}

func (s *PostgresStore) CreateValuation(ctx context.Context, v *models.Valuation) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO valuations(company_id, valuation_min, valuation_median, valuation_max,
		        ebitda_multiple_value, revenue_multiple_value, dcf_value, asset_based_value,
		        risk_score, financial_health_score, market_position_score, operational_efficiency_score, debt_structure_score, red_flags)
		 VALUES($1,$2::numeric,$3::numeric,$4::numeric,$5::numeric,$6::numeric,$7::numeric,$8::numeric,$9,$10,$11,$12,$13,$14)
		 RETURNING id, created_at`,
		v.CompanyID, decText(v.ValuationMin), decText(v.ValuationMedian), decText(v.ValuationMax),
		decText(v.EBITDAMultipleValue), decText(v.RevenueMultipleValue), decText(v.DCFValue), decText(v.AssetBasedValue),
		v.RiskScore, v.FinancialHealthScore, v.MarketPositionScore, v.OperationalEfficiencyScore, v.DebtStructureScore, v.RedFlags,
	).Scan(&v.ID, &v.CreatedAt)
}

func (s *PostgresStore) GetValuationByCompany(ctx context.Context, companyID int64) (*models.Valuation, error) {
	var (
		v                                 models.Valuation
		vmin, vmed, vmax, em, rm, dcf, ab string
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, company_id, valuation_min::text, valuation_median::text, valuation_max::text,
		        ebitda_multiple_value::text, revenue_multiple_value::text, dcf_value::text, asset_based_value::text,
		        risk_score, financial_health_score, market_position_score, operational_efficiency_score, debt_structure_score,
		        COALESCE(red_flags,'{}'::text[]), created_at
		 FROM valuations WHERE company_id=$1 ORDER BY id ASC LIMIT 1`, companyID,
	).Scan(&v.ID, &v.CompanyID, &vmin, &vmed, &vmax, &em, &rm, &dcf, &ab,
		&v.RiskScore, &v.FinancialHealthScore, &v.MarketPositionScore, &v.OperationalEfficiencyScore, &v.DebtStructureScore,
		&v.RedFlags, &v.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	v.ValuationMin = parseDec(vmin)
	v.ValuationMedian = parseDec(vmed)
	v.ValuationMax = parseDec(vmax)
	v.EBITDAMultipleValue = parseDec(em)
	v.RevenueMultipleValue = parseDec(rm)
	v.DCFValue = parseDec(dcf)
	v.AssetBasedValue = parseDec(ab)
	return &v, nil
}

func (s *PostgresStore) CreateRecommendation(ctx context.Context, r *models.Recommendation) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO recommendations(company_id, category, impact, suggestions, estimated_value_impact_min, estimated_value_impact_max)
		 VALUES($1,$2,$3,$4,$5,$6) RETURNING id, created_at`,
		r.CompanyID, r.Category, r.Impact, r.Suggestions, r.EstimatedValueImpactMin, r.EstimatedValueImpactMax,
	).Scan(&r.ID, &r.CreatedAt)
}

func (s *PostgresStore) GetRecommendationsByCompany(ctx context.Context, companyID int64) ([]models.Recommendation, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, company_id, category, impact, COALESCE(suggestions,'{}'::text[]), estimated_value_impact_min, estimated_value_impact_max, created_at
		 FROM recommendations WHERE company_id=$1 ORDER BY id`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []models.Recommendation{}
	for rows.Next() {
		var r models.Recommendation
		if err := rows.Scan(&r.ID, &r.CompanyID, &r.Category, &r.Impact, &r.Suggestions, &r.EstimatedValueImpactMin, &r.EstimatedValueImpactMax, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CreateBuyerMatch(ctx context.Context, b *models.BuyerMatch) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO buyer_matches(company_id, buyer_name, buyer_type, description, match_percent, tags, deal_type)
		 VALUES($1,$2,$3,$4,$5,$6,$7) RETURNING id, created_at`,
		b.CompanyID, b.BuyerName, b.BuyerType, b.Description, b.MatchPercent, b.Tags, b.DealType,
	).Scan(&b.ID, &b.CreatedAt)
}

func (s *PostgresStore) GetBuyerMatchesByCompany(ctx context.Context, companyID int64) ([]models.BuyerMatch, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, company_id, buyer_name, buyer_type, description, match_percent, COALESCE(tags,'{}'::text[]), deal_type, created_at
		 FROM buyer_matches WHERE company_id=$1 ORDER BY id`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []models.BuyerMatch{}
	for rows.Next() {
		var b models.BuyerMatch
		if err := rows.Scan(&b.ID, &b.CompanyID, &b.BuyerName, &b.BuyerType, &b.Description, &b.MatchPercent, &b.Tags, &b.DealType, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CreateDocument(ctx context.Context, d *models.Document) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO documents(company_id, doc_type, file_name, file_path)
		 VALUES($1,$2,$3,$4) RETURNING id, created_at`,
		d.CompanyID, d.DocType, d.FileName, d.FilePath,
	).Scan(&d.ID, &d.CreatedAt)
}

func (s *PostgresStore) GetDocumentsByCompany(ctx context.Context, companyID int64) ([]models.Document, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, company_id, doc_type, file_name, file_path, created_at
		 FROM documents WHERE company_id=$1 ORDER BY id`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []models.Document{}
	for rows.Next() {
		var d models.Document
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.DocType, &d.FileName, &d.FilePath, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
