package catalog

import (
	"log"

	"gorm.io/gorm"

	"github.com/securebank/securebank-api/app/models"
	"github.com/securebank/securebank-api/internal/pkg/cache"
)

// SeedPlans inserts the initial plan catalog into the database. Seeding is
// skipped when any plans already exist.
func SeedPlans(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Plan{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Financial plans already exist, skipping seed data")
		return nil
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		for _, plan := range fallbackPlans {
			row := models.Plan{
				ID:              plan.ID,
				Name:            plan.Name,
				InterestRate:    plan.InterestRate,
				Term:            plan.Term,
				MinContribution: plan.MinContribution,
				MaxContribution: plan.MaxContribution,
				Description:     plan.Description,
				IsActive:        true,
			}
			for _, text := range plan.Benefits {
				row.Benefits = append(row.Benefits, models.PlanBenefit{BenefitText: text})
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		return err
	}

	// Drop any stale cached listing from a previous run.
	if err := cache.Delete(cacheKeyActivePlans); err != nil {
		log.Printf("Warning: could not invalidate plan catalog cache: %v", err)
	}

	log.Println("Successfully seeded initial financial plans data")
	return nil
}
