package store

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScopeType is a level of the organizational tree.
type ScopeType string

const (
	ScopeAll          ScopeType = "all"
	ScopeOrganization ScopeType = "organization"
	ScopeDepartment   ScopeType = "department"
	ScopeManager      ScopeType = "manager"
	ScopeTeam         ScopeType = "team"
)

// Scope selects a subtree of the organizational tree. The zero value
// selects everything.
type Scope struct {
	Type ScopeType
	ID   uuid.UUID
}

func OrganizationScope(id uuid.UUID) Scope {
	return Scope{Type: ScopeOrganization, ID: id}
}

func DepartmentScope(id uuid.UUID) Scope {
	return Scope{Type: ScopeDepartment, ID: id}
}

func ManagerScope(id uuid.UUID) Scope {
	return Scope{Type: ScopeManager, ID: id}
}

func TeamScope(id uuid.UUID) Scope {
	return Scope{Type: ScopeTeam, ID: id}
}

func (sc Scope) String() string {
	if sc.Type == ScopeAll || sc.Type == "" {
		return string(ScopeAll)
	}

	return fmt.Sprintf("%s %s", sc.Type, sc.ID)
}

// teams restricts a query that includes the teams table to the teams in the
// scope.
func (sc Scope) teams(db *gorm.DB) *gorm.DB {
	switch sc.Type {
	case ScopeOrganization:
		return db.
			Joins("JOIN managers ON managers.id = teams.manager_id").
			Joins("JOIN departments ON departments.id = managers.department_id").
			Where("departments.organization_id = ?", sc.ID)
	case ScopeDepartment:
		return db.
			Joins("JOIN managers ON managers.id = teams.manager_id").
			Where("managers.department_id = ?", sc.ID)
	case ScopeManager:
		return db.Where("teams.manager_id = ?", sc.ID)
	case ScopeTeam:
		return db.Where("teams.id = ?", sc.ID)
	}

	return db
}
