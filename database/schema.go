package database

import (
	"context"
	"log"
)

// EnsureSchema creates required tables if they do not exist.
func EnsureSchema() {
	if Pool == nil {
		return
	}
	ctx := context.Background()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            email TEXT NOT NULL UNIQUE,
            password_hash TEXT NOT NULL,
            name TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'user',
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE TABLE IF NOT EXISTS companies (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL DEFAULT 0,
            name TEXT NOT NULL,
            sector TEXT NOT NULL DEFAULT '',
            location TEXT NOT NULL DEFAULT '',
            years_in_business INT NOT NULL DEFAULT 0,
            goal TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE TABLE IF NOT EXISTS financials (
            id BIGSERIAL PRIMARY KEY,
            company_id BIGINT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
            revenue_current NUMERIC NOT NULL,
            revenue_previous NUMERIC NULL,
            revenue_two_years_ago NUMERIC NULL,
            ebitda NUMERIC NOT NULL,
            net_margin DOUBLE PRECISION NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE TABLE IF NOT EXISTS employees (
            id BIGSERIAL PRIMARY KEY,
            company_id BIGINT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
            headcount INT NOT NULL DEFAULT 0,
            digital_systems TEXT[] NOT NULL DEFAULT '{}',
            other_system TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE TABLE IF NOT EXISTS technology (
            id BIGSERIAL PRIMARY KEY,
            company_id BIGINT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
            transformation_level INT NOT NULL DEFAULT 1,
            technologies TEXT[] NOT NULL DEFAULT '{}',
            tech_investment_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE TABLE IF NOT EXISTS owner_intent (
            id BIGSERIAL PRIMARY KEY,
            company_id BIGINT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
            intent TEXT NOT NULL DEFAULT '',
            exit_timeline TEXT NOT NULL DEFAULT '',
            ideal_outcome TEXT NOT NULL DEFAULT '',
            valuation_expectation NUMERIC NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE TABLE IF NOT EXISTS valuations (
            id BIGSERIAL PRIMARY KEY,
            company_id BIGINT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
            valuation_min NUMERIC NOT NULL,
            valuation_median NUMERIC NOT NULL,
            valuation_max NUMERIC NOT NULL,
            ebitda_multiple_value NUMERIC NOT NULL,
            revenue_multiple_value NUMERIC NOT NULL,
            dcf_value NUMERIC NOT NULL,
            asset_based_value NUMERIC NOT NULL,
            risk_score INT NOT NULL,
            financial_health_score INT NOT NULL,
            market_position_score INT NOT NULL,
            operational_efficiency_score INT NOT NULL,
            debt_structure_score INT NOT NULL,
            red_flags TEXT[] NOT NULL DEFAULT '{}',
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE TABLE IF NOT EXISTS recommendations (
            id BIGSERIAL PRIMARY KEY,
            company_id BIGINT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
            category TEXT NOT NULL,
            impact INT NOT NULL DEFAULT 1,
            suggestions TEXT[] NOT NULL DEFAULT '{}',
            estimated_value_impact_min DOUBLE PRECISION NOT NULL DEFAULT 0,
            estimated_value_impact_max DOUBLE PRECISION NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE TABLE IF NOT EXISTS buyer_matches (
            id BIGSERIAL PRIMARY KEY,
            company_id BIGINT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
            buyer_name TEXT NOT NULL,
            buyer_type TEXT NOT NULL DEFAULT '',
            description TEXT NOT NULL DEFAULT '',
            match_percent INT NOT NULL DEFAULT 0,
            tags TEXT[] NOT NULL DEFAULT '{}',
            deal_type TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE TABLE IF NOT EXISTS documents (
            id BIGSERIAL PRIMARY KEY,
            company_id BIGINT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
            doc_type TEXT NOT NULL,
            file_name TEXT NOT NULL,
            file_path TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE INDEX IF NOT EXISTS companies_user_id_idx ON companies(user_id)`,
		`CREATE INDEX IF NOT EXISTS financials_company_id_idx ON financials(company_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS valuations_company_id_idx ON valuations(company_id)`,
	}

	for _, s := range stmts {
		if _, err := Pool.Exec(ctx, s); err != nil {
			log.Printf("schema ensure error: %v in stmt: %s", err, s)
		}
	}
}
