package enrollment

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/securebank/securebank-api/app/models"
	"github.com/securebank/securebank-api/internal/pkg/catalog"
)

// gormStore is the durable Store backed by MySQL.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a durable enrollment store over the given GORM handle.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) FindPlan(id uint) (*catalog.Plan, error) {
	var row models.Plan
	err := s.db.Preload("Benefits").Where("id = ? AND is_active = ?", id, true).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	plan := catalog.FromModel(&row)
	return &plan, nil
}

func (s *gormStore) InsertEnrollment(rec *Record) error {
	row := models.Enrollment{
		PlanID:              rec.SelectedPlan.ID,
		PlanName:            rec.SelectedPlan.Name,
		PlanInterestRate:    rec.SelectedPlan.InterestRate,
		PlanTerm:            rec.SelectedPlan.Term,
		FullName:            rec.Name,
		Email:               rec.Email,
		Phone:               rec.Phone,
		Address:             rec.Address,
		MonthlyContribution: rec.MonthlyContribution,
		Status:              rec.Status,
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	}); err != nil {
		return err
	}

	rec.EnrollmentID = strconv.FormatUint(uint64(row.ID), 10)
	rec.EnrollmentDate = row.EnrollmentDate
	return nil
}

func (s *gormStore) FindEnrollment(id string) (*Record, error) {
	numericID, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		// Non-numeric ids belong to the transient store.
		return nil, ErrNotFound
	}

	var row models.Enrollment
	if err := s.db.First(&row, numericID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rec := recordFromModel(&row)
	return &rec, nil
}

func (s *gormStore) ListByEmail(email string) ([]Record, error) {
	var rows []models.Enrollment
	if err := s.db.Where("email = ?", email).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return recordsFromModels(rows), nil
}

func (s *gormStore) ListAll() ([]Record, error) {
	var rows []models.Enrollment
	if err := s.db.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return recordsFromModels(rows), nil
}

func recordFromModel(row *models.Enrollment) Record {
	return Record{
		EnrollmentID: strconv.FormatUint(uint64(row.ID), 10),
		Name:         row.FullName,
		Email:        row.Email,
		Phone:        row.Phone,
		Address:      row.Address,
		SelectedPlan: PlanSummary{
			ID:           row.PlanID,
			Name:         row.PlanName,
			InterestRate: row.PlanInterestRate,
			Term:         row.PlanTerm,
		},
		MonthlyContribution: row.MonthlyContribution,
		EnrollmentDate:      row.EnrollmentDate,
		Status:              row.Status,
	}
}

func recordsFromModels(rows []models.Enrollment) []Record {
	records := make([]Record, 0, len(rows))
	for i := range rows {
		records = append(records, recordFromModel(&rows[i]))
	}
	return records
}
