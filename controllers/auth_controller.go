package controllers

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bizworth/backend/config"
	"bizworth/backend/models"
	"bizworth/backend/storage"
	"bizworth/backend/utils"
)

func hash(pw string) string {
	h := sha256.Sum256([]byte(pw))
	return hex.EncodeToString(h[:])
}

func Signup(cfg config.Config, st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		if _, err := st.GetUserByEmail(ctx, req.Email); err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		u := models.User{
			Email:        req.Email,
			PasswordHash: hash(req.Password),
			Name:         req.Name,
			Role:         "user",
		}
		if err := st.CreateUser(ctx, &u); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		token, _ := utils.GenerateJWT(cfg.JWTSecret, u.ID, u.Role, 24*time.Hour)
		c.JSON(http.StatusCreated, gin.H{"token": token, "user": u})
	}
}

func Login(cfg config.Config, st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		u, err := st.GetUserByEmail(ctx, req.Email)
		if err != nil || u.PasswordHash != hash(req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		token, _ := utils.GenerateJWT(cfg.JWTSecret, u.ID, u.Role, 24*time.Hour)
		c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
	}
}

// Logout exists for client symmetry; tokens are stateless so there is
// nothing to revoke server-side.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func Me(st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64("user_id")
		ctx, cancel := reqCtx(c)
		defer cancel()
		u, err := st.GetUserByID(ctx, uid)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, u)
	}
}
