package service

import (
	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
)

// AccessService decides which administrative sections a role may reach. It is
// pure: the permission table is fixed at compile time and every method is a
// lookup against it. Unknown or empty roles fail closed to no sections.
type AccessService struct{}

// NewAccessService constructs an AccessService.
func NewAccessService() *AccessService {
	return &AccessService{}
}

// AllowedSections returns the sections visible to the role, in canonical
// catalog order. An unrecognised role gets the empty set, never a
// default-allow.
func (s *AccessService) AllowedSections(role models.Role) []models.Section {
	allowed, ok := models.RolePermissions[role]
	if !ok {
		return nil
	}
	permitted := make(map[models.Section]struct{}, len(allowed))
	for _, section := range allowed {
		permitted[section] = struct{}{}
	}
	ordered := make([]models.Section, 0, len(allowed))
	for _, section := range models.SectionCatalog {
		if _, ok := permitted[section]; ok {
			ordered = append(ordered, section)
		}
	}
	return ordered
}

// DefaultSection returns the first allowed section in catalog order, or the
// empty section when the role has none.
func (s *AccessService) DefaultSection(role models.Role) models.Section {
	sections := s.AllowedSections(role)
	if len(sections) == 0 {
		return ""
	}
	return sections[0]
}

// IsPermitted reports whether the role may view the section. Handlers call
// this at request time, independent of any menu the client built from
// AllowedSections, so a stale or hand-crafted section is still denied.
func (s *AccessService) IsPermitted(role models.Role, section models.Section) bool {
	for _, allowed := range s.AllowedSections(role) {
		if allowed == section {
			return true
		}
	}
	return false
}

// ResolveActive reconciles a caller-held active section against the role's
// current permissions: a still-permitted section is kept, anything else
// collapses to the role's default. The result is deterministic so a role
// change never leaves a dangling selection behind.
func (s *AccessService) ResolveActive(role models.Role, current models.Section) models.Section {
	if current != "" && s.IsPermitted(role, current) {
		return current
	}
	return s.DefaultSection(role)
}
