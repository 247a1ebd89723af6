package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"bizworth/backend/models"
	"bizworth/backend/storage"
)

// Intake POSTs share a permissive policy: a companyId that does not exist is
// ensured as a placeholder company first, then the child row is created.

type financialRequest struct {
	CompanyID          int64            `json:"companyId" binding:"required"`
	RevenueCurrent     decimal.Decimal  `json:"revenueCurrent"`
	RevenuePrevious    *decimal.Decimal `json:"revenuePrevious"`
	RevenueTwoYearsAgo *decimal.Decimal `json:"revenueTwoYearsAgo"`
	EBITDA             decimal.Decimal  `json:"ebitda"`
	NetMargin          float64          `json:"netMargin"`
}

func CreateFinancial(st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req financialRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		if err := st.EnsureCompany(ctx, req.CompanyID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		f := models.Financial{
			CompanyID:          req.CompanyID,
			RevenueCurrent:     req.RevenueCurrent,
			RevenuePrevious:    req.RevenuePrevious,
			RevenueTwoYearsAgo: req.RevenueTwoYearsAgo,
			EBITDA:             req.EBITDA,
			NetMargin:          req.NetMargin,
		}
		if err := st.CreateFinancial(ctx, &f); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusCreated, f)
	}
}

func GetCompanyFinancials(st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, ok := pathID(c, "id")
		if !ok {
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		f, err := st.GetFinancialByCompany(ctx, companyID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "financials not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, f)
	}
}

type employeeRequest struct {
	CompanyID      int64    `json:"companyId" binding:"required"`
	Headcount      int      `json:"headcount"`
	DigitalSystems []string `json:"digitalSystems"`
	OtherSystem    string   `json:"otherSystem"`
}

func CreateEmployee(st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req employeeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		if err := st.EnsureCompany(ctx, req.CompanyID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		e := models.Employee{
			CompanyID:      req.CompanyID,
			Headcount:      req.Headcount,
			DigitalSystems: req.DigitalSystems,
			OtherSystem:    req.OtherSystem,
		}
		if err := st.CreateEmployee(ctx, &e); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusCreated, e)
	}
}

func GetCompanyEmployees(st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, ok := pathID(c, "id")
		if !ok {
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		e, err := st.GetEmployeeByCompany(ctx, companyID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "employee record not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, e)
	}
}

type technologyRequest struct {
	CompanyID           int64    `json:"companyId" binding:"required"`
	TransformationLevel int      `json:"transformationLevel" binding:"required,min=1,max=5"`
	Technologies        []string `json:"technologies"`
	TechInvestmentPct   float64  `json:"techInvestmentPct"`
}

func CreateTechnology(st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req technologyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		if err := st.EnsureCompany(ctx, req.CompanyID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		t := models.Technology{
			CompanyID:           req.CompanyID,
			TransformationLevel: req.TransformationLevel,
			Technologies:        req.Technologies,
			TechInvestmentPct:   req.TechInvestmentPct,
		}
		if err := st.CreateTechnology(ctx, &t); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusCreated, t)
	}
}

func GetCompanyTechnology(st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, ok := pathID(c, "id")
		if !ok {
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		t, err := st.GetTechnologyByCompany(ctx, companyID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "technology record not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

type ownerIntentRequest struct {
	CompanyID            int64            `json:"companyId" binding:"required"`
	Intent               string           `json:"intent"`
	ExitTimeline         string           `json:"exitTimeline"`
	IdealOutcome         string           `json:"idealOutcome"`
	ValuationExpectation *decimal.Decimal `json:"valuationExpectation"`
}

func CreateOwnerIntent(st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ownerIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		if err := st.EnsureCompany(ctx, req.CompanyID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		oi := models.OwnerIntent{
			CompanyID:            req.CompanyID,
			Intent:               req.Intent,
			ExitTimeline:         req.ExitTimeline,
			IdealOutcome:         req.IdealOutcome,
			ValuationExpectation: req.ValuationExpectation,
		}
		if err := st.CreateOwnerIntent(ctx, &oi); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusCreated, oi)
	}
}

func GetCompanyOwnerIntent(st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, ok := pathID(c, "id")
		if !ok {
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		oi, err := st.GetOwnerIntentByCompany(ctx, companyID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "owner intent not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, oi)
	}
}
