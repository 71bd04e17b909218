package catalog

import (
	"github.com/securebank/securebank-api/app/models"
)

// Plan is the wire representation of a catalog entry, with benefits
// flattened to plain strings.
type Plan struct {
	ID              uint     `json:"id"`
	Name            string   `json:"name"`
	InterestRate    string   `json:"interest_rate"`
	Term            string   `json:"term"`
	MinContribution int      `json:"min_contribution"`
	MaxContribution int      `json:"max_contribution"`
	Benefits        []string `json:"benefits"`
	Description     string   `json:"description"`
}

// FromModel converts a persisted plan row into its wire representation.
func FromModel(m *models.Plan) Plan {
	return Plan{
		ID:              m.ID,
		Name:            m.Name,
		InterestRate:    m.InterestRate,
		Term:            m.Term,
		MinContribution: m.MinContribution,
		MaxContribution: m.MaxContribution,
		Benefits:        m.BenefitTexts(),
		Description:     m.Description,
	}
}
