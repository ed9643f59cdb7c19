package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func postJSON(t *testing.T, handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/download-leads", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

// The controller is built with a nil DB on purpose: validation must reject
// the payload before any query runs, so a store hit would panic the test.
func TestLeadCreateRejectsMissingFields(t *testing.T) {
	lc := NewLeadController(nil)

	cases := map[string]string{
		"empty phone":      `{"fullName":"Sara","phone":"  ","email":"s@example.com","project":"Oasis","documentType":"brochure"}`,
		"missing phone":    `{"fullName":"Sara","email":"s@example.com","project":"Oasis","documentType":"brochure"}`,
		"missing fullName": `{"phone":"+971500000000","email":"s@example.com","project":"Oasis","documentType":"brochure"}`,
		"missing email":    `{"fullName":"Sara","phone":"+971500000000","project":"Oasis","documentType":"brochure"}`,
		"missing project":  `{"fullName":"Sara","phone":"+971500000000","email":"s@example.com","documentType":"brochure"}`,
	}
	for name, body := range cases {
		w := postJSON(t, lc.Create, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
		assert.Contains(t, w.Body.String(), "required", name)
	}
}

func TestLeadCreateRejectsUnknownDocumentType(t *testing.T) {
	lc := NewLeadController(nil)

	w := postJSON(t, lc.Create, `{"fullName":"Sara","phone":"+971500000000","email":"s@example.com","project":"Oasis","documentType":"contract"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "document type")
}

func TestLeadCreateRejectsMalformedJSON(t *testing.T) {
	lc := NewLeadController(nil)

	w := postJSON(t, lc.Create, `{broken`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
