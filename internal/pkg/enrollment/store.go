package enrollment

import (
	"time"

	"github.com/securebank/securebank-api/internal/pkg/catalog"
)

// PlanSummary is the plan snapshot denormalized into a record at creation
// time. It is never re-synced with the catalog afterwards.
type PlanSummary struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	InterestRate string `json:"interest_rate"`
	Term         string `json:"term"`
}

// Record is the denormalized enrollment returned to callers. Records are
// immutable after creation; there is no update or delete path.
type Record struct {
	EnrollmentID        string      `json:"enrollment_id"`
	Name                string      `json:"name"`
	Email               string      `json:"email"`
	Phone               string      `json:"phone"`
	Address             string      `json:"address"`
	SelectedPlan        PlanSummary `json:"selected_plan"`
	MonthlyContribution float64     `json:"monthly_contribution"`
	EnrollmentDate      time.Time   `json:"enrollment_date"`
	Status              string      `json:"status"`
}

// Store is the narrow storage capability set the enrollment service runs
// on. Keeping validation on one side of this interface is what prevents the
// durable and transient paths from drifting apart.
type Store interface {
	// FindPlan resolves an active plan or returns ErrPlanNotFound.
	FindPlan(id uint) (*catalog.Plan, error)
	// InsertEnrollment persists the record, assigning EnrollmentID and
	// EnrollmentDate.
	InsertEnrollment(rec *Record) error
	// FindEnrollment resolves a record by id or returns ErrNotFound.
	FindEnrollment(id string) (*Record, error)
	// ListByEmail returns records with an exact email match, in insertion
	// order.
	ListByEmail(email string) ([]Record, error)
	// ListAll returns every record in insertion order.
	ListAll() ([]Record, error)
}
