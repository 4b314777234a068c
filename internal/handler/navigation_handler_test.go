package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/middleware"
	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
	"github.com/madinatul-uloom/madrasah-admin-api/internal/service"
	"github.com/madinatul-uloom/madrasah-admin-api/pkg/response"
)

func navigationRouter(role models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewNavigationHandler(service.NewAccessService())
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if role != "" {
			c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "u1", Username: "user", Role: role})
		}
		c.Next()
	})
	r.GET("/navigation/sections", h.Sections)
	return r
}

func decodeNavigation(t *testing.T, rec *httptest.ResponseRecorder) navigationResponse {
	t.Helper()
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var nav navigationResponse
	require.NoError(t, json.Unmarshal(raw, &nav))
	return nav
}

func TestSectionsForFinanceManager(t *testing.T) {
	r := navigationRouter(models.RoleFinanceManager)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/navigation/sections", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	nav := decodeNavigation(t, rec)
	assert.Equal(t,
		[]models.Section{models.SectionDashboard, models.SectionDonations, models.SectionAccounts},
		nav.Sections)
	assert.Equal(t, models.SectionDashboard, nav.DefaultSection)
	assert.Equal(t, models.SectionDashboard, nav.ActiveSection)
}

func TestSectionsReconcilesActiveSelection(t *testing.T) {
	r := navigationRouter(models.RoleTeacher)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/navigation/sections?active=results", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.SectionResults, decodeNavigation(t, rec).ActiveSection)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/navigation/sections?active=donations", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.SectionDashboard, decodeNavigation(t, rec).ActiveSection)
}

func TestSectionsRequireClaims(t *testing.T) {
	r := navigationRouter("")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/navigation/sections", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
