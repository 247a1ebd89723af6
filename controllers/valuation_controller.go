package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bizworth/backend/models"
	"bizworth/backend/storage"
	"bizworth/backend/valuation"
)

// GenerateValuation reads the company's four intake records, runs the engine
// and persists the valuation together with the advisory output.
func GenerateValuation(st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, ok := pathID(c, "id")
		if !ok {
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()

		fin, finErr := st.GetFinancialByCompany(ctx, companyID)
		emp, empErr := st.GetEmployeeByCompany(ctx, companyID)
		tech, techErr := st.GetTechnologyByCompany(ctx, companyID)
		intent, intentErr := st.GetOwnerIntentByCompany(ctx, companyID)
		for _, err := range []error{finErr, empErr, techErr, intentErr} {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Incomplete data for valuation"})
				return
			}
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
				return
			}
		}

		v := valuation.Generate(fin, emp, tech, intent)
		if err := st.CreateValuation(ctx, &v); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		recs := valuation.Recommendations(companyID, &v)
		for i := range recs {
			if err := st.CreateRecommendation(ctx, &recs[i]); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
				return
			}
		}
		matches := valuation.BuyerMatches(companyID, &v)
		for i := range matches {
			if err := st.CreateBuyerMatch(ctx, &matches[i]); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
				return
			}
		}

		c.JSON(http.StatusCreated, gin.H{
			"valuation":       v,
			"recommendations": recs,
			"buyerMatches":    matches,
		})
	}
}

// CreateValuation persists a precomputed valuation row directly, same
// placeholder policy as the other intake writes.
func CreateValuation(st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var v models.Valuation
		if err := c.ShouldBindJSON(&v); err != nil || v.CompanyID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		if err := st.EnsureCompany(ctx, v.CompanyID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if err := st.CreateValuation(ctx, &v); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusCreated, v)
	}
}

func GetCompanyValuation(st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, ok := pathID(c, "id")
		if !ok {
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		v, err := st.GetValuationByCompany(ctx, companyID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "valuation not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

func GetCompanyRecommendations(st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, ok := pathID(c, "id")
		if !ok {
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		list, err := st.GetRecommendationsByCompany(ctx, companyID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func GetCompanyBuyerMatches(st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, ok := pathID(c, "id")
		if !ok {
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		list, err := st.GetBuyerMatchesByCompany(ctx, companyID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
