package models

import "strings"

type Role string

const (
	RoleAdmin         Role = "admin"
	RoleArchaeologist Role = "archaeologist"
	RoleResearcher    Role = "researcher"
	RoleUser          Role = "user"
)

// Roles lists every known role.
var Roles = []Role{RoleAdmin, RoleArchaeologist, RoleResearcher, RoleUser}

type Capability string

const (
	CapEditArtifacts Capability = "artifacts:edit"
)

var roleCapabilities = map[Role][]Capability{
	RoleAdmin:         {CapEditArtifacts},
	RoleArchaeologist: {CapEditArtifacts},
	RoleResearcher:    nil,
	RoleUser:          nil,
}

// ParseRole matches s case-insensitively against the known roles.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := roleCapabilities[r]; ok {
		return r, true
	}
	return "", false
}

// Can reports whether the role grants capability c.
func (r Role) Can(c Capability) bool {
	for _, granted := range roleCapabilities[r] {
		if granted == c {
			return true
		}
	}
	return false
}
