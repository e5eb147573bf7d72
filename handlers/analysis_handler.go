package handlers

import (
	"errors"
	"net/http"

	"nyaay-backend/pdf"
	"nyaay-backend/pkg/logger"
	"nyaay-backend/service"

	"github.com/gin-gonic/gin"
)

// AnalysisHandler handles HTTP requests for grievance analysis
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// AnalyzeRequest represents the request body for analyzing a grievance
type AnalyzeRequest struct {
	UserQuery    string `json:"user_query"`
	DocumentText string `json:"document_text"`
}

// Analyze handles POST /api/analyze
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	serviceReq := service.AnalyzeRequest{
		UserQuery:    req.UserQuery,
		DocumentText: req.DocumentText,
	}

	result, err := h.analysisService.Analyze(c.Request.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, service.ErrEmptyInput) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "EMPTY_INPUT",
					"message": "Either user_query or document_text is required.",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ANALYSIS_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	logger.Info(c.Request.Context(), "grievance analyzed",
		"category", result.Analysis.Classification.Category,
		"references", len(result.Analysis.RightsAndLaws),
	)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Analysis,
	})
}

// FillTemplateRequest represents the request body for filling a template
type FillTemplateRequest struct {
	TemplateText         string `json:"template_text" binding:"required"`
	FullName             string `json:"full_name" binding:"required"`
	Address              string `json:"address" binding:"required"`
	OppositePartyName    string `json:"opposite_party_name"`
	OppositePartyAddress string `json:"opposite_party_address"`
	Date                 string `json:"date"`
	MobileNumber         string `json:"mobile_number"`
	EmailID              string `json:"email_id"`
	Signature            string `json:"signature"`
}

// FillTemplate handles POST /api/fill-template
func (h *AnalysisHandler) FillTemplate(c *gin.Context) {
	var req FillTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	serviceReq := service.FillTemplateRequest{
		TemplateText: req.TemplateText,
		Data: service.FillData{
			FullName:             req.FullName,
			Address:              req.Address,
			OppositePartyName:    req.OppositePartyName,
			OppositePartyAddress: req.OppositePartyAddress,
			Date:                 req.Date,
			MobileNumber:         req.MobileNumber,
			EmailID:              req.EmailID,
			Signature:            req.Signature,
		},
	}

	result, err := h.analysisService.FillTemplate(c.Request.Context(), serviceReq)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILL_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"filled_template": result.FilledTemplate,
		},
	})
}

// DownloadPDFRequest represents the request body for the PDF download
type DownloadPDFRequest struct {
	IssueSummary      string `json:"issue_summary"`
	ComplaintTemplate string `json:"complaint_template"`
}

// DownloadPDF handles POST /api/download-pdf
func (h *AnalysisHandler) DownloadPDF(c *gin.Context) {
	var req DownloadPDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	data, err := pdf.Build(req.IssueSummary, req.ComplaintTemplate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PDF_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="nyaay_result.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
