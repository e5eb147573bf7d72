package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nyaay-backend/service"

	"github.com/gin-gonic/gin"
)

func newAnalysisRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAnalysisHandler(service.NewAnalysisService())

	router := gin.New()
	router.POST("/api/analyze", handler.Analyze)
	router.POST("/api/fill-template", handler.FillTemplate)
	router.POST("/api/download-pdf", handler.DownloadPDF)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp
}

func TestAnalyzeEndpoint(t *testing.T) {
	router := newAnalysisRouter()

	w := postJSON(t, router, "/api/analyze", map[string]string{
		"user_query": "My landlord refuses to return my security deposit",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, body = %s", w.Code, w.Body.String())
	}
	resp := decodeResponse(t, w)
	if resp["success"] != true {
		t.Fatalf("Expected success, got %v", resp)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("Missing data object: %v", resp)
	}
	classification, ok := data["classification"].(map[string]any)
	if !ok {
		t.Fatalf("Missing classification: %v", data)
	}
	if classification["category"] != "Tenancy / Housing" {
		t.Errorf("Category = %v", classification["category"])
	}
	if data["disclaimer"] == "" {
		t.Error("Disclaimer missing from response")
	}
}

func TestAnalyzeEndpointEmptyInput(t *testing.T) {
	router := newAnalysisRouter()

	w := postJSON(t, router, "/api/analyze", map[string]string{})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Status = %d, want 400", w.Code)
	}
	resp := decodeResponse(t, w)
	errObj, ok := resp["error"].(map[string]any)
	if !ok {
		t.Fatalf("Missing error object: %v", resp)
	}
	if errObj["code"] != "EMPTY_INPUT" {
		t.Errorf("Error code = %v", errObj["code"])
	}
}

func TestAnalyzeEndpointMalformedJSON(t *testing.T) {
	router := newAnalysisRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Status = %d, want 400", w.Code)
	}
}

func TestFillTemplateEndpoint(t *testing.T) {
	router := newAnalysisRouter()

	w := postJSON(t, router, "/api/fill-template", map[string]string{
		"template_text": "I, [FULL NAME], residing at [FULL ADDRESS].",
		"full_name":     "Asha Verma",
		"address":       "12 MG Road, Pune",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, body = %s", w.Code, w.Body.String())
	}
	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]any)
	if data["filled_template"] != "I, Asha Verma, residing at 12 MG Road, Pune." {
		t.Errorf("filled_template = %v", data["filled_template"])
	}
}

func TestFillTemplateEndpointMissingRequiredFields(t *testing.T) {
	router := newAnalysisRouter()

	w := postJSON(t, router, "/api/fill-template", map[string]string{
		"template_text": "text only",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Status = %d, want 400 when full_name and address missing", w.Code)
	}
	resp := decodeResponse(t, w)
	errObj := resp["error"].(map[string]any)
	if errObj["code"] != "INVALID_REQUEST" {
		t.Errorf("Error code = %v", errObj["code"])
	}
}

func TestDownloadPDFEndpoint(t *testing.T) {
	router := newAnalysisRouter()

	w := postJSON(t, router, "/api/download-pdf", map[string]string{
		"issue_summary":      "Landlord refuses to return the deposit.",
		"complaint_template": "To whom it may concern.",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, body = %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "nyaay_result.pdf") {
		t.Errorf("Content-Disposition = %q", got)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("Response body is not a PDF document")
	}
}
