package models

// Role is one of the fixed administrative identity classes. The set is closed
// at deploy time; it is never extended at runtime.
type Role string

const (
	RoleSuperAdmin     Role = "super-admin"
	RoleContentManager Role = "content-manager"
	RoleFinanceManager Role = "finance-manager"
	RoleTeacher        Role = "teacher"
)

// Section identifies one addressable area of the admin interface.
type Section string

const (
	SectionDashboard Section = "dashboard"
	SectionStudents  Section = "students"
	SectionResults   Section = "results"
	SectionDonations Section = "donations"
	SectionAccounts  Section = "accounts"
	SectionRoutine   Section = "routine"
	SectionGallery   Section = "gallery"
	SectionFeedback  Section = "feedback"
)

// SectionCatalog lists every section in canonical order. Default-section
// resolution depends on this order, so it must stay stable.
var SectionCatalog = []Section{
	SectionDashboard,
	SectionStudents,
	SectionResults,
	SectionDonations,
	SectionAccounts,
	SectionRoutine,
	SectionGallery,
	SectionFeedback,
}

// RolePermissions maps each role to the sections it may reach. Fixed at
// compile time; every role includes the dashboard landing section.
var RolePermissions = map[Role][]Section{
	RoleSuperAdmin: {
		SectionDashboard, SectionStudents, SectionResults, SectionDonations,
		SectionAccounts, SectionRoutine, SectionGallery, SectionFeedback,
	},
	RoleContentManager: {SectionDashboard, SectionRoutine, SectionGallery, SectionFeedback},
	RoleFinanceManager: {SectionDashboard, SectionDonations, SectionAccounts},
	RoleTeacher:        {SectionDashboard, SectionStudents, SectionResults},
}

// ValidSection reports whether the value names a catalogued section.
func ValidSection(s Section) bool {
	for _, candidate := range SectionCatalog {
		if candidate == s {
			return true
		}
	}
	return false
}
