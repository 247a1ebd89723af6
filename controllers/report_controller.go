package controllers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"bizworth/backend/models"
	"bizworth/backend/storage"
)

type reportData struct {
	company         *models.Company
	valuation       *models.Valuation
	recommendations []models.Recommendation
}

func loadReport(c *gin.Context, st storage.Store) (*reportData, bool) {
	companyID, ok := pathID(c, "id")
	if !ok {
		return nil, false
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	co, err := st.GetCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return nil, false
	}
	v, err := st.GetValuationByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "valuation not found; generate one first"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return nil, false
	}
	recs, err := st.GetRecommendationsByCompany(ctx, companyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return nil, false
	}
	return &reportData{company: co, valuation: v, recommendations: recs}, true
}

func reportRows(rd *reportData) [][]string {
	v := rd.valuation
	rows := [][]string{
		{"Company", rd.company.Name},
		{"Sector", rd.company.Sector},
		{},
		{"Valuation Min", v.ValuationMin.String()},
		{"Valuation Median", v.ValuationMedian.String()},
		{"Valuation Max", v.ValuationMax.String()},
		{"EBITDA Multiple Value", v.EBITDAMultipleValue.String()},
		{"Revenue Multiple Value", v.RevenueMultipleValue.String()},
		{"DCF Value", v.DCFValue.String()},
		{"Asset Based Value", v.AssetBasedValue.String()},
		{},
		{"Risk Score", strconv.Itoa(v.RiskScore)},
		{"Financial Health", strconv.Itoa(v.FinancialHealthScore)},
		{"Market Position", strconv.Itoa(v.MarketPositionScore)},
		{"Operational Efficiency", strconv.Itoa(v.OperationalEfficiencyScore)},
		{"Debt Structure", strconv.Itoa(v.DebtStructureScore)},
		{"Red Flags", strings.Join(v.RedFlags, "; ")},
	}
	if len(rd.recommendations) > 0 {
		rows = append(rows, []string{}, []string{"Recommendation", "Impact", "Est. Value Impact"})
		for _, r := range rd.recommendations {
			rows = append(rows, []string{
				r.Category,
				strconv.Itoa(r.Impact),
				fmt.Sprintf("%.0f%%-%.0f%%", r.EstimatedValueImpactMin, r.EstimatedValueImpactMax),
			})
		}
	}
	return rows
}

func ExportReportCSV(st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		rd, ok := loadReport(c, st)
		if !ok {
			return
		}
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		for _, row := range reportRows(rd) {
			if len(row) == 0 {
				row = []string{""}
			}
			if err := w.Write(row); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "report error"})
				return
			}
		}
		w.Flush()
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=valuation_%d.csv", rd.company.ID))
		c.Data(http.StatusOK, "text/csv", buf.Bytes())
	}
}

func ExportReportXLSX(st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		rd, ok := loadReport(c, st)
		if !ok {
			return
		}
		f := excelize.NewFile()
		defer f.Close()
		sheet := "Valuation"
		f.SetSheetName("Sheet1", sheet)
		for i, row := range reportRows(rd) {
			for j, cell := range row {
				ref, err := excelize.CoordinatesToCellName(j+1, i+1)
				if err != nil {
					continue
				}
				_ = f.SetCellValue(sheet, ref, cell)
			}
		}
		var buf bytes.Buffer
		if err := f.Write(&buf); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "report error"})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=valuation_%d.xlsx", rd.company.ID))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	}
}
