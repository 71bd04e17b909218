package enrollment

// Stats is the aggregate view over all enrollments. Per-plan counts are
// keyed by the denormalized plan name, so historical counts are not
// reconciled if a plan is ever renamed.
type Stats struct {
	TotalEnrollments              int            `json:"total_enrollments"`
	UniqueEmails                  int            `json:"unique_emails"`
	DuplicateEmails               int            `json:"duplicate_emails"`
	EnrollmentsByPlan             map[string]int `json:"enrollments_by_plan"`
	EmailsWithMultipleEnrollments map[string]int `json:"emails_with_multiple_enrollments"`
}

// Statistics aggregates counts over every stored enrollment.
func (s *Service) Statistics() (*Stats, error) {
	records, err := s.ListAll()
	if err != nil {
		return nil, err
	}

	planCounts := map[string]int{}
	emailCounts := map[string]int{}
	for _, rec := range records {
		planCounts[rec.SelectedPlan.Name]++
		emailCounts[rec.Email]++
	}

	duplicates := map[string]int{}
	for email, count := range emailCounts {
		if count > 1 {
			duplicates[email] = count
		}
	}

	return &Stats{
		TotalEnrollments:              len(records),
		UniqueEmails:                  len(emailCounts),
		DuplicateEmails:               len(duplicates),
		EnrollmentsByPlan:             planCounts,
		EmailsWithMultipleEnrollments: duplicates,
	}, nil
}
