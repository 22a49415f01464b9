package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/samandr77/approval/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/approvals", func(r chi.Router) {
			r.Use(mw.BearerAuth)

			r.Post("/invoices", h.CreateInvoice)
			r.Get("/invoices", h.Invoices)
			r.Get("/invoices/{invoice_id}", h.Invoice)
			r.Post("/invoices/{invoice_id}/void", h.VoidInvoice)
			r.Get("/invoices/{invoice_id}/requests", h.InvoiceRequests)

			r.Post("/requests", h.RequestApproval)
			r.Get("/requests/{request_id}", h.ApprovalRequest)
			r.Post("/requests/{request_id}/decision", h.DecideApproval)
		})

		r.Route("/internal", func(r chi.Router) {
			r.Use(mw.APIKeyAuth)
			r.Post("/requests/expire", h.ExpireRequests)
		})
	})

	return mux
}
