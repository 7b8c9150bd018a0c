package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Department is a part of an Organization with its own nominal budget.
type Department struct {
	DefaultModel
	Organization       Organization `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	OrganizationID     uuid.UUID    `gorm:"index"`
	Name               string
	DepartmentHeadName string
	TotalBudget        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (d *Department) BeforeSave(tx *gorm.DB) error {
	d.Name = strings.TrimSpace(d.Name)
	d.DepartmentHeadName = strings.TrimSpace(d.DepartmentHeadName)

	if d.Name == "" {
		return ErrNameMissing
	}

	return lookup(tx).First(&Organization{}, "id = ?", d.OrganizationID).Error
}
