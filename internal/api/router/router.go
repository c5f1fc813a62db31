package router

import (
	"net/http"

	"github.com/RoyceAzure/lab/artmarket/api"
	m "github.com/RoyceAzure/lab/artmarket/internal/api/middleware"
	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"github.com/RoyceAzure/lab/artmarket/internal/token"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, tokenMaker token.Maker, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(m.AuthPayloadMiddleware(tokenMaker))
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware(logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		// 公開路由
		r.Group(func(r chi.Router) {
			r.Route("/users", func(r chi.Router) {
				r.Post("/register", server.UserHandler.Register)
				r.Get("/verify", server.UserHandler.Verify)
				r.Post("/login", server.UserHandler.Login)
				r.With(m.AuthMiddleware).Get("/me", server.UserHandler.Me)
				r.With(m.AuthMiddleware).Patch("/me", server.UserHandler.UpdateMe)
				r.With(m.AuthMiddleware).Delete("/me", server.UserHandler.DeleteMe)
			})

			r.Route("/artworks", func(r chi.Router) {
				r.Get("/", server.BuyerHandler.BrowseArtworks)
				r.Get("/{artwork_id}", server.BuyerHandler.GetArtwork)
			})
		})

		// 買家路由
		r.Group(func(r chi.Router) {
			r.Use(m.RequireRole(model.RoleBuyer, model.RoleAdmin))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", server.BuyerHandler.GetCart)
				r.Delete("/", server.BuyerHandler.ClearCart)
				r.Post("/items", server.BuyerHandler.AddToCart)
				r.Delete("/items/{artwork_id}", server.BuyerHandler.RemoveFromCart)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", server.BuyerHandler.PlaceOrder)
				r.Get("/", server.BuyerHandler.GetMyOrders)
				r.Post("/{order_id}/payments", server.PaymentHandler.CreatePayment)
				r.Get("/{order_id}/payments", server.PaymentHandler.GetOrderPayments)
			})

			r.Route("/payments", func(r chi.Router) {
				r.Post("/{payment_id}/complete", server.PaymentHandler.CompletePayment)
				r.Post("/{payment_id}/fail", server.PaymentHandler.FailPayment)
			})
		})

		// 藝術家路由
		r.Group(func(r chi.Router) {
			r.Use(m.RequireRole(model.RoleArtist))

			r.Route("/artist/artworks", func(r chi.Router) {
				r.Post("/", server.ArtistHandler.UploadArtwork)
				r.Get("/", server.ArtistHandler.GetMyArtworks)
				r.Patch("/{artwork_id}", server.ArtistHandler.UpdateArtwork)
				r.Delete("/{artwork_id}", server.ArtistHandler.DeleteArtwork)
			})
		})

		// 管理員路由
		r.Group(func(r chi.Router) {
			r.Use(m.RequireRole(model.RoleAdmin))

			r.Route("/admin", func(r chi.Router) {
				r.Get("/users", server.AdminHandler.GetAllUsers)
				r.Delete("/users/{user_id}", server.AdminHandler.DeleteUser)
				r.Get("/orders", server.AdminHandler.GetAllOrders)
				r.Get("/payments", server.AdminHandler.GetAllPayments)
				r.Patch("/orders/{order_id}/status", server.AdminHandler.UpdateOrderStatus)
				r.Delete("/artworks/{artwork_id}", server.AdminHandler.DeleteArtwork)
			})
		})
	})

	return r
}
