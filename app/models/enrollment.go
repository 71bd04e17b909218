package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	STATUS_PENDING  = "pending"
	STATUS_APPROVED = "approved"
	STATUS_REJECTED = "rejected"
)

// Enrollment is one accepted submission against a plan. The plan display
// fields are copied into the row at creation time so the record keeps the
// terms the applicant actually saw, independent of later catalog changes.
type Enrollment struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	PlanID              uint      `gorm:"index;not null" json:"plan_id"`
	Plan                Plan      `gorm:"foreignKey:PlanID" json:"-"`
	PlanName            string    `gorm:"type:varchar(100)" json:"plan_name"`
	PlanInterestRate    string    `gorm:"type:varchar(10)" json:"plan_interest_rate"`
	PlanTerm            string    `gorm:"type:varchar(50)" json:"plan_term"`
	FullName            string    `gorm:"type:varchar(100)" json:"full_name" validate:"required,min=2,max=100"`
	Email               string    `gorm:"type:varchar(100);index" json:"email" validate:"required,email"`
	Phone               string    `gorm:"type:varchar(20)" json:"phone" validate:"required,min=10,max=15"`
	Address             string    `gorm:"type:varchar(200)" json:"address" validate:"required,min=10,max=200"`
	MonthlyContribution float64   `gorm:"type:decimal(12,2);not null" json:"monthly_contribution" validate:"gt=0"`
	Status              string    `gorm:"type:varchar(20);default:'pending'" json:"status" validate:"omitempty,oneof=pending approved rejected"`
	EnrollmentDate      time.Time `gorm:"autoCreateTime" json:"enrollment_date"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Enrollment model
func (Enrollment) TableName() string {
	return "enrollments"
}

func (e *Enrollment) Validate() error {
	v := validator.New()

	return v.Struct(e)
}
