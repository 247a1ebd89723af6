package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"bizworth/backend/config"
	"bizworth/backend/models"
	"bizworth/backend/storage"
)

const maxUploadBytes = 10 << 20 // 10MB

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".xlsx": true,
	".xls":  true,
	".csv":  true,
	".doc":  true,
	".docx": true,
}

var allowedDocTypes = map[string]bool{
	models.DocTypeFinancial: true,
	models.DocTypeTax:       true,
	models.DocTypeContract:  true,
}

// UploadDocument accepts multipart/form-data with fields "file", "companyId"
// and "docType", and stores the file under the configured upload directory.
func UploadDocument(cfg config.Config, st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

		file, header, err := c.Request.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing file (field 'file')"})
			return
		}
		defer file.Close()
		if header.Size > maxUploadBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds 10MB limit"})
			return
		}

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !allowedExtensions[ext] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type; use pdf, xlsx, xls, csv, doc or docx"})
			return
		}

		companyID, err := strconv.ParseInt(c.PostForm("companyId"), 10, 64)
		if err != nil || companyID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid companyId"})
			return
		}
		docType := c.PostForm("docType")
		if !allowedDocTypes[docType] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "docType must be financial, tax or contract"})
			return
		}

		if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
			return
		}
		dst := filepath.Join(cfg.UploadDir, fmt.Sprintf("%d_%d%s", companyID, time.Now().UnixNano(), ext))
		if err := c.SaveUploadedFile(header, dst); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
			return
		}

		ctx, cancel := reqCtx(c)
		defer cancel()
		if err := st.EnsureCompany(ctx, companyID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		d := models.Document{
			CompanyID: companyID,
			DocType:   docType,
			FileName:  header.Filename,
			FilePath:  dst,
		}
		if err := st.CreateDocument(ctx, &d); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusCreated, d)
	}
}

func GetCompanyDocuments(st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, ok := pathID(c, "id")
		if !ok {
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		list, err := st.GetDocumentsByCompany(ctx, companyID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
