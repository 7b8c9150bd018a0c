package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Manager leads teams within a Department.
type Manager struct {
	DefaultModel
	Department   Department `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	DepartmentID uuid.UUID  `gorm:"index"`
	Name         string
}

func (m *Manager) BeforeSave(tx *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)

	if m.Name == "" {
		return ErrNameMissing
	}

	return lookup(tx).First(&Department{}, "id = ?", m.DepartmentID).Error
}
