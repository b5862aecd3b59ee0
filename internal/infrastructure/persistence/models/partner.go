package models

import (
	"github.com/rentops/backend/internal/domain/partner"
)

// DepositorModel is the GORM model for depositors
type DepositorModel struct {
	AggregateModel
	Name   string `gorm:"type:varchar(200);not null;index"`
	Email  string `gorm:"type:varchar(200)"`
	Phone  string `gorm:"type:varchar(50)"`
	IBAN   string `gorm:"type:varchar(50)"`
	Notes  string `gorm:"type:text"`
	Active bool   `gorm:"not null;default:true"`
}

// TableName specifies the table name for DepositorModel
func (DepositorModel) TableName() string {
	return "depositors"
}

// ToDomain converts DepositorModel to domain Depositor
func (m *DepositorModel) ToDomain() *partner.Depositor {
	return &partner.Depositor{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Email:             m.Email,
		Phone:             m.Phone,
		IBAN:              m.IBAN,
		Notes:             m.Notes,
		Active:            m.Active,
	}
}

// DepositorModelFromDomain converts domain Depositor to DepositorModel
func DepositorModelFromDomain(d *partner.Depositor) *DepositorModel {
	m := &DepositorModel{
		Name:   d.Name,
		Email:  d.Email,
		Phone:  d.Phone,
		IBAN:   d.IBAN,
		Notes:  d.Notes,
		Active: d.Active,
	}
	m.FromDomainAggregateRoot(d.BaseAggregateRoot)
	return m
}
