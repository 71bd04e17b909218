package models

import (
	"time"
)

// PlanBenefit is a single benefit line attached to a plan. Benefits are
// deleted together with their plan.
type PlanBenefit struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PlanID      uint      `gorm:"index;not null" json:"plan_id"`
	BenefitText string    `gorm:"type:varchar(255);not null" json:"benefit_text" validate:"required,max=255"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`
}

// TableName specifies the table name for the PlanBenefit model
func (PlanBenefit) TableName() string {
	return "plan_benefits"
}
