package routes

import (
	"smarthaus/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects  = "/projects"
	PathPayments  = "/payments"
	PathTransfers = "/transfers"
)

func addMilestoneRoutes(rg *gin.RouterGroup, planHandler *handlers.PaymentPlanHandler, paymentHandler *handlers.MilestonePaymentHandler, transferHandler *handlers.TransferHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("/:project_id/payment-plan", planHandler.SelectPaymentPlan)
		projects.GET("/:project_id/milestones", planHandler.ListMilestones)
		projects.POST("/:project_id/milestones/:milestone_id/pay", paymentHandler.InitializePayment)
		projects.GET("/:project_id/shipment", paymentHandler.GetShipment)
		projects.GET("/:project_id/trips", paymentHandler.ListTrips)
	}

	payments := rg.Group(PathPayments)
	{
		// Gateway redirect/webhook target; reference arrives as a query param.
		payments.GET("/verify", paymentHandler.VerifyPayment)
	}

	transfers := rg.Group(PathTransfers)
	{
		transfers.POST("", transferHandler.CreateTransfer)
	}
}
