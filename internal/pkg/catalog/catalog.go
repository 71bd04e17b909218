package catalog

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/securebank/securebank-api/app/models"
	"github.com/securebank/securebank-api/internal/pkg/cache"
)

const (
	cacheKeyActivePlans = "catalog:plans:active"
	cacheExpiration     = 5 * time.Minute
)

// ListActivePlans returns the active plans in id order. Reads go to the
// cache first, then the database; any storage failure falls back to the
// static plan list so the listing never errors.
func ListActivePlans(db *gorm.DB) []Plan {
	if cached, err := cache.Get(cacheKeyActivePlans); err == nil {
		var plans []Plan
		if err := json.Unmarshal([]byte(cached), &plans); err == nil {
			return plans
		}
	}

	if db != nil {
		var rows []models.Plan
		err := db.Preload("Benefits").Where("is_active = ?", true).Order("id").Find(&rows).Error
		if err == nil && len(rows) > 0 {
			plans := make([]Plan, 0, len(rows))
			for i := range rows {
				plans = append(plans, FromModel(&rows[i]))
			}
			if payload, merr := json.Marshal(plans); merr == nil {
				// Plans are immutable at runtime, a short TTL is safe.
				if cerr := cache.Set(cacheKeyActivePlans, payload, cacheExpiration); cerr != nil {
					log.Printf("Warning: could not cache plan catalog: %v", cerr)
				}
			}
			return plans
		}
		if err != nil {
			log.Printf("Warning: database error listing plans, using fallback catalog: %v", err)
		}
	}

	return FallbackPlans()
}

// GetPlan resolves one active plan by id, falling back to the static list
// when the database cannot serve the lookup.
func GetPlan(db *gorm.DB, id uint) (*Plan, bool) {
	if db != nil {
		var row models.Plan
		err := db.Preload("Benefits").Where("id = ? AND is_active = ?", id, true).First(&row).Error
		if err == nil {
			plan := FromModel(&row)
			return &plan, true
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false
		}
		log.Printf("Warning: database error resolving plan %d, using fallback catalog: %v", id, err)
	}

	return FallbackPlan(id)
}
