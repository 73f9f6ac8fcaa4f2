package routers

import (
	"sangha-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDonationRoutes(r chi.Router, donationController *controllers.DonationController) {
	r.Post("/initialize-payment", donationController.InitializePayment)
	r.Get("/payment-status/{transactionID}", donationController.GetPaymentStatus)
}
