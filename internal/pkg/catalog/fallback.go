package catalog

// fallbackPlans is the fixed plan list served when the database is
// unavailable, so plan listing never fails outright. Values must stay in
// sync with the seed data in seed.go.
var fallbackPlans = []Plan{
	{
		ID:              1,
		Name:            "Savings Plan",
		InterestRate:    "3.5%",
		Term:            "12 months",
		MinContribution: 100,
		MaxContribution: 5000,
		Benefits: []string{
			"Flexible monthly contributions",
			"No lock-in period",
			"Instant withdrawals",
			"Mobile banking access",
		},
		Description: "Perfect for building your emergency fund with competitive interest rates and complete flexibility.",
	},
	{
		ID:              2,
		Name:            "Premium Plan",
		InterestRate:    "5.2%",
		Term:            "24 months",
		MinContribution: 500,
		MaxContribution: 10000,
		Benefits: []string{
			"Higher interest rates",
			"Priority customer support",
			"Quarterly bonus rewards",
			"Free financial consultation",
		},
		Description: "Enhanced savings plan with premium benefits and higher returns for serious savers.",
	},
	{
		ID:              3,
		Name:            "Retirement Plan",
		InterestRate:    "6.8%",
		Term:            "60 months",
		MinContribution: 200,
		MaxContribution: 15000,
		Benefits: []string{
			"Tax advantages",
			"Compound interest growth",
			"Retirement planning tools",
			"Estate planning support",
		},
		Description: "Long-term investment plan designed to secure your financial future with maximum growth potential.",
	},
	{
		ID:              4,
		Name:            "Education Plan",
		InterestRate:    "4.7%",
		Term:            "36 months",
		MinContribution: 150,
		MaxContribution: 8000,
		Benefits: []string{
			"Education-focused savings",
			"Flexible contribution schedule",
			"Goal tracking tools",
			"Educational resources",
		},
		Description: "Specially designed to help you save for educational expenses with steady growth and flexibility.",
	},
}

// FallbackPlans returns the static plan list in id order.
func FallbackPlans() []Plan {
	plans := make([]Plan, len(fallbackPlans))
	copy(plans, fallbackPlans)
	return plans
}

// FallbackPlan returns the static plan with the given id, if any.
func FallbackPlan(id uint) (*Plan, bool) {
	for i := range fallbackPlans {
		if fallbackPlans[i].ID == id {
			plan := fallbackPlans[i]
			return &plan, true
		}
	}
	return nil, false
}
