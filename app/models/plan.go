package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Plan represents a financial plan offered to customers
type Plan struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	Name            string        `gorm:"type:varchar(100);index" json:"name" validate:"required,min=2,max=100"`
	InterestRate    string        `gorm:"type:varchar(10)" json:"interest_rate" validate:"required"`
	Term            string        `gorm:"type:varchar(50)" json:"term" validate:"required"`
	MinContribution int           `gorm:"not null" json:"min_contribution" validate:"gte=0"`
	MaxContribution int           `gorm:"not null" json:"max_contribution" validate:"gtefield=MinContribution"`
	Description     string        `gorm:"type:text" json:"description" validate:"required"`
	IsActive        bool          `gorm:"type:tinyint(1);default:1" json:"-"`
	Benefits        []PlanBenefit `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt       time.Time     `gorm:"autoCreateTime" json:"-"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"-"`
}

// TableName specifies the table name for the Plan model
func (Plan) TableName() string {
	return "plans"
}

func (p *Plan) Validate() error {
	v := validator.New()

	return v.Struct(p)
}

// BenefitTexts returns the benefit strings in insertion order.
func (p *Plan) BenefitTexts() []string {
	texts := make([]string, 0, len(p.Benefits))
	for _, b := range p.Benefits {
		texts = append(texts, b.BenefitText)
	}
	return texts
}
