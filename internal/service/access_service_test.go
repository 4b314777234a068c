package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
)

func TestAllowedSectionsPerRole(t *testing.T) {
	svc := NewAccessService()

	assert.Equal(t, models.SectionCatalog, svc.AllowedSections(models.RoleSuperAdmin))
	assert.Equal(t,
		[]models.Section{models.SectionDashboard, models.SectionRoutine, models.SectionGallery, models.SectionFeedback},
		svc.AllowedSections(models.RoleContentManager))
	assert.Equal(t,
		[]models.Section{models.SectionDashboard, models.SectionDonations, models.SectionAccounts},
		svc.AllowedSections(models.RoleFinanceManager))
	assert.Equal(t,
		[]models.Section{models.SectionDashboard, models.SectionStudents, models.SectionResults},
		svc.AllowedSections(models.RoleTeacher))
}

func TestAllowedSectionsUnknownRoleFailsClosed(t *testing.T) {
	svc := NewAccessService()

	assert.Empty(t, svc.AllowedSections(models.Role("intruder")))
	assert.Empty(t, svc.AllowedSections(models.Role("")))
	assert.Equal(t, models.Section(""), svc.DefaultSection(models.Role("intruder")))
	for _, section := range models.SectionCatalog {
		assert.False(t, svc.IsPermitted(models.Role("intruder"), section))
	}
}

func TestAllowedSectionsFollowCatalogOrder(t *testing.T) {
	svc := NewAccessService()

	for role := range models.RolePermissions {
		sections := svc.AllowedSections(role)
		position := make(map[models.Section]int, len(models.SectionCatalog))
		for i, section := range models.SectionCatalog {
			position[section] = i
		}
		for i := 1; i < len(sections); i++ {
			assert.Less(t, position[sections[i-1]], position[sections[i]],
				"sections for %s out of catalog order", role)
		}
	}
}

func TestDefaultSectionIsFirstAllowed(t *testing.T) {
	svc := NewAccessService()

	for role := range models.RolePermissions {
		sections := svc.AllowedSections(role)
		assert.NotEmpty(t, sections)
		assert.Equal(t, sections[0], svc.DefaultSection(role))
	}
	assert.Equal(t, models.SectionDashboard, svc.DefaultSection(models.RoleFinanceManager))
}

func TestIsPermittedMatchesAllowedSet(t *testing.T) {
	svc := NewAccessService()

	assert.True(t, svc.IsPermitted(models.RoleTeacher, models.SectionResults))
	assert.False(t, svc.IsPermitted(models.RoleTeacher, models.SectionDonations))
	assert.False(t, svc.IsPermitted(models.RoleContentManager, models.SectionAccounts))
	assert.True(t, svc.IsPermitted(models.RoleFinanceManager, models.SectionAccounts))

	for role := range models.RolePermissions {
		allowed := make(map[models.Section]bool)
		for _, section := range svc.AllowedSections(role) {
			allowed[section] = true
		}
		for _, section := range models.SectionCatalog {
			assert.Equal(t, allowed[section], svc.IsPermitted(role, section))
		}
	}
}

func TestResolveActiveKeepsPermittedSection(t *testing.T) {
	svc := NewAccessService()

	assert.Equal(t, models.SectionResults, svc.ResolveActive(models.RoleTeacher, models.SectionResults))
}

func TestResolveActiveCollapsesToDefault(t *testing.T) {
	svc := NewAccessService()

	// Role change left a selection the new role cannot open.
	assert.Equal(t, models.SectionDashboard, svc.ResolveActive(models.RoleFinanceManager, models.SectionStudents))
	// Unknown and empty selections also collapse.
	assert.Equal(t, models.SectionDashboard, svc.ResolveActive(models.RoleTeacher, models.Section("nonsense")))
	assert.Equal(t, models.SectionDashboard, svc.ResolveActive(models.RoleTeacher, models.Section("")))
	// An unknown role has no default to fall back to.
	assert.Equal(t, models.Section(""), svc.ResolveActive(models.Role("intruder"), models.SectionDashboard))
}
