package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
	"github.com/madinatul-uloom/madrasah-admin-api/internal/service"
)

func sectionRouter(role models.Role, section models.Section, withClaims bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if withClaims {
			c.Set(ContextUserKey, &models.JWTClaims{UserID: "u1", Username: "user", Role: role})
		}
		c.Next()
	})
	r.GET("/probe", RequireSection(service.NewAccessService(), section), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireSectionAllowsPermittedRole(t *testing.T) {
	r := sectionRouter(models.RoleFinanceManager, models.SectionAccounts, true)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireSectionDeniesOtherRoles(t *testing.T) {
	cases := []struct {
		role    models.Role
		section models.Section
	}{
		{models.RoleTeacher, models.SectionAccounts},
		{models.RoleContentManager, models.SectionStudents},
		{models.RoleFinanceManager, models.SectionResults},
		{models.Role("intruder"), models.SectionDashboard},
	}
	for _, tc := range cases {
		r := sectionRouter(tc.role, tc.section, true)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/probe", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code, "%s should not reach %s", tc.role, tc.section)
	}
}

func TestRequireSectionWithoutClaims(t *testing.T) {
	r := sectionRouter(models.RoleSuperAdmin, models.SectionDashboard, false)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
