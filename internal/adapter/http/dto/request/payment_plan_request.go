package request

// PaymentPlanSelectRequest is the payload for selecting (or reselecting) a
// project's payment plan.
type PaymentPlanSelectRequest struct {
	PlanType string `json:"plan_type" binding:"required"`
}
