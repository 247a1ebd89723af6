package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"

	"bizworth/backend/config"
	"bizworth/backend/storage"
	"bizworth/backend/utils"
)

// Canned answers used when no Gemini key is configured, keyed by topic
// keywords found in the prompt.
var cannedAnswers = []struct {
	keywords []string
	answer   string
}{
	{
		keywords: []string{"valuation", "worth", "value"},
		answer:   "Based on the submitted financials, the business sits in a typical mid-market multiple range. The largest levers on value are net margin and revenue trend; improving either shifts the whole range upward.",
	},
	{
		keywords: []string{"market", "sector", "industry"},
		answer:   "The sector shows steady consolidation, with strategic acquirers paying a premium for recurring revenue and documented processes. Benchmark peers grow high single digits annually.",
	},
	{
		keywords: []string{"risk", "flag"},
		answer:   "The main risks buyers price in are revenue concentration, declining top-line trend and thin margins. Address the red flags on the valuation report before going to market.",
	},
	{
		keywords: []string{"digital", "technology", "ai"},
		answer:   "Digital maturity is a value multiplier at exit. Companies above level 3 digital transformation typically command stronger operational-efficiency scores in diligence.",
	},
}

const cannedDefault = "Thanks for the question. For a tailored answer, generate a valuation first; the engine's risk scores and red flags are the best starting point for next steps."

func cannedAnswer(prompt string) string {
	p := strings.ToLower(prompt)
	for _, entry := range cannedAnswers {
		for _, kw := range entry.keywords {
			if strings.Contains(p, kw) {
				return entry.answer
			}
		}
	}
	return cannedDefault
}

func aiReply(c *gin.Context, cfg config.Config, prompt string) (string, bool) {
	if cfg.GeminiAPIKey == "" {
		return cannedAnswer(prompt), true
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	client, err := utils.NewAIClient(ctx, utils.AIConfig{APIKey: cfg.GeminiAPIKey, GenModel: cfg.GeminiModel})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "ai provider error", "detail": err.Error()})
		return "", false
	}
	defer client.Close()
	out, err := utils.GenerateText(ctx, client, cfg.GeminiModel, genai.Text(prompt))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "ai provider error", "detail": err.Error()})
		return "", false
	}
	return out, true
}

type analyzeCompanyRequest struct {
	CompanyID int64  `json:"companyId" binding:"required"`
	Question  string `json:"question"`
}

func AnalyzeCompany(cfg config.Config, st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req analyzeCompanyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		co, err := st.GetCompany(ctx, req.CompanyID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Analyze the business %q (sector: %s, location: %s, %d years in business).\n",
			co.Name, co.Sector, co.Location, co.YearsInBusiness)
		if fin, err := st.GetFinancialByCompany(ctx, req.CompanyID); err == nil {
			fmt.Fprintf(&sb, "Current revenue %s, EBITDA %s, net margin %.1f%%.\n",
				fin.RevenueCurrent.String(), fin.EBITDA.String(), fin.NetMargin)
		}
		if v, err := st.GetValuationByCompany(ctx, req.CompanyID); err == nil {
			fmt.Fprintf(&sb, "Valuation range %s-%s, risk score %d, red flags: %s.\n",
				v.ValuationMin.String(), v.ValuationMax.String(), v.RiskScore, strings.Join(v.RedFlags, ", "))
		}
		if req.Question != "" {
			fmt.Fprintf(&sb, "Question: %s\n", req.Question)
		}

		analysis, ok := aiReply(c, cfg, sb.String())
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"companyId": req.CompanyID, "analysis": analysis})
	}
}

type marketAnalysisRequest struct {
	Sector   string `json:"sector" binding:"required"`
	Location string `json:"location"`
}

func MarketAnalysis(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req marketAnalysisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		prompt := fmt.Sprintf("Provide a short market analysis for the %s sector", req.Sector)
		if req.Location != "" {
			prompt += " in " + req.Location
		}
		analysis, ok := aiReply(c, cfg, prompt)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"sector": req.Sector, "analysis": analysis})
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Messages []chatMessage `json:"messages" binding:"required,min=1"`
}

func ChatCompletions(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req chatCompletionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		var sb strings.Builder
		for _, m := range req.Messages {
			fmt.Fprintf(&sb, "%s: %s\n", m.Role, m.Content)
		}
		reply, ok := aiReply(c, cfg, sb.String())
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"choices": []gin.H{
				{"message": gin.H{"role": "assistant", "content": reply}},
			},
		})
	}
}
