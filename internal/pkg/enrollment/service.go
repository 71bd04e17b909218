package enrollment

import (
	"errors"
	"log"

	"github.com/securebank/securebank-api/app/models"
	"github.com/securebank/securebank-api/internal/pkg/metrics/counter"
)

// Service validates submissions against the plan catalog and persists
// accepted enrollments. One validation routine runs against whichever Store
// is active, so business rules cannot diverge between the durable and
// transient paths.
type Service struct {
	primary  Store
	fallback *MemoryStore
}

// NewService creates an enrollment service. primary may be nil when the
// durable store is unavailable; the fallback store is required.
func NewService(primary Store, fallback *MemoryStore) *Service {
	return &Service{primary: primary, fallback: fallback}
}

// Fallback exposes the transient store, mainly for tests and diagnostics.
func (s *Service) Fallback() *MemoryStore {
	return s.fallback
}

// Submit validates the request and persists one enrollment. Business-rule
// rejections come back as *ValidationError. A storage failure in the durable
// path is logged, counted, and retried once against the transient store;
// validation runs again there against the static catalog.
func (s *Service) Submit(req *models.EnrollmentRequest) (*Record, error) {
	if s.primary != nil {
		rec, err := s.submitTo(s.primary, req)
		if err == nil {
			if cerr := counter.AddSubmission(); cerr != nil {
				log.Printf("Warning: could not record submission metric: %v", cerr)
			}
			return rec, nil
		}
		if IsValidationError(err) {
			return nil, err
		}
		s.noteFailover("submit", err)
	}

	rec, err := s.submitTo(s.fallback, req)
	if err != nil {
		return nil, err
	}
	if cerr := counter.AddSubmission(); cerr != nil {
		log.Printf("Warning: could not record submission metric: %v", cerr)
	}
	return rec, nil
}

// submitTo is the single validation+persistence routine shared by both
// storage modes.
func (s *Service) submitTo(store Store, req *models.EnrollmentRequest) (*Record, error) {
	plan, err := store.FindPlan(req.SelectedPlanID)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			return nil, errInvalidPlan(req.SelectedPlanID)
		}
		return nil, err
	}

	// Bounds are inclusive; only the first violated rule is reported.
	if req.MonthlyContribution < float64(plan.MinContribution) {
		return nil, errContributionTooLow(plan.MinContribution)
	}
	if req.MonthlyContribution > float64(plan.MaxContribution) {
		return nil, errContributionTooHigh(plan.MaxContribution)
	}

	rec := &Record{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		SelectedPlan: PlanSummary{
			ID:           plan.ID,
			Name:         plan.Name,
			InterestRate: plan.InterestRate,
			Term:         plan.Term,
		},
		MonthlyContribution: req.MonthlyContribution,
		Status:              models.STATUS_PENDING,
	}

	if err := store.InsertEnrollment(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get resolves an enrollment by its identifier. Records written during a
// database outage live in the transient store, so a durable miss still
// consults the fallback.
func (s *Service) Get(id string) (*Record, error) {
	if s.primary != nil {
		rec, err := s.primary.FindEnrollment(id)
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, ErrNotFound) {
			s.noteFailover("get", err)
		}
	}

	return s.fallback.FindEnrollment(id)
}

// ListByEmail returns all enrollments for an exact email match, durable
// records first, then transient ones.
func (s *Service) ListByEmail(email string) ([]Record, error) {
	records := []Record{}

	if s.primary != nil {
		durable, err := s.primary.ListByEmail(email)
		if err != nil {
			s.noteFailover("list_by_email", err)
		} else {
			records = append(records, durable...)
		}
	}

	transient, err := s.fallback.ListByEmail(email)
	if err != nil {
		return nil, err
	}
	return append(records, transient...), nil
}

// ListAll returns every enrollment, durable records first, then transient
// ones.
func (s *Service) ListAll() ([]Record, error) {
	records := []Record{}

	if s.primary != nil {
		durable, err := s.primary.ListAll()
		if err != nil {
			s.noteFailover("list_all", err)
		} else {
			records = append(records, durable...)
		}
	}

	transient, err := s.fallback.ListAll()
	if err != nil {
		return nil, err
	}
	return append(records, transient...), nil
}

func (s *Service) noteFailover(op string, err error) {
	log.Printf("Warning: durable store error on %s, falling back to transient storage: %v", op, err)
	if cerr := counter.AddFailover(); cerr != nil {
		log.Printf("Warning: could not record failover metric: %v", cerr)
	}
}
