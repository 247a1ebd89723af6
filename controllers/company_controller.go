package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bizworth/backend/models"
	"bizworth/backend/storage"
)

func reqCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), 5*time.Second)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func CreateCompany(st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateCompanyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		co := models.Company{
			UserID:          c.GetInt64("user_id"),
			Name:            req.Name,
			Sector:          req.Sector,
			Location:        req.Location,
			YearsInBusiness: req.YearsInBusiness,
			Goal:            req.Goal,
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		if err := st.CreateCompany(ctx, &co); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusCreated, co)
	}
}

func GetCompany(st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		co, err := st.GetCompany(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, co)
	}
}

func GetUserCompanies(st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := pathID(c, "userId")
		if !ok {
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		list, err := st.GetCompaniesByUser(ctx, uid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
