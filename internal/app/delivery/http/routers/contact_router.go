package routers

import (
	"sangha-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachContactRoutes(r chi.Router, contactController *controllers.ContactController) {
	r.Post("/send-email", contactController.SendEmail)
}
