package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// EnrollmentRequest is the inbound payload for POST /api/enroll.
type EnrollmentRequest struct {
	Name                string  `json:"name" validate:"required,min=2,max=100"`
	Email               string  `json:"email" validate:"required,email"`
	Phone               string  `json:"phone" validate:"required,min=10,max=15"`
	Address             string  `json:"address" validate:"required,min=10,max=200"`
	SelectedPlanID      uint    `json:"selected_plan_id" validate:"required"`
	MonthlyContribution float64 `json:"monthly_contribution" validate:"required,gt=0"`
}

func (r *EnrollmentRequest) Validate() error {
	v := validator.New()

	return v.Struct(r)
}

// FieldErrors maps each invalid request field to a readable message so the
// client can surface per-field feedback on the form.
func (r *EnrollmentRequest) FieldErrors(err error) map[string]string {
	fields := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["request"] = "malformed request body"
		return fields
	}

	for _, fe := range verrs {
		switch fe.Field() {
		case "Name":
			fields["name"] = "name must be between 2 and 100 characters"
		case "Email":
			fields["email"] = "a valid email address is required"
		case "Phone":
			fields["phone"] = "phone must be between 10 and 15 characters"
		case "Address":
			fields["address"] = "address must be between 10 and 200 characters"
		case "SelectedPlanID":
			fields["selected_plan_id"] = "a plan must be selected"
		case "MonthlyContribution":
			fields["monthly_contribution"] = "monthly contribution must be greater than zero"
		}
	}

	return fields
}
