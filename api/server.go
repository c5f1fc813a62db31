package api

import "github.com/RoyceAzure/lab/artmarket/internal/api/handler"

type Server struct {
	UserHandler    *handler.UserHandler
	ArtistHandler  *handler.ArtistHandler
	BuyerHandler   *handler.BuyerHandler
	PaymentHandler *handler.PaymentHandler
	AdminHandler   *handler.AdminHandler
}

func NewServer(
	userHandler *handler.UserHandler,
	artistHandler *handler.ArtistHandler,
	buyerHandler *handler.BuyerHandler,
	paymentHandler *handler.PaymentHandler,
	adminHandler *handler.AdminHandler,
) *Server {
	return &Server{
		UserHandler:    userHandler,
		ArtistHandler:  artistHandler,
		BuyerHandler:   buyerHandler,
		PaymentHandler: paymentHandler,
		AdminHandler:   adminHandler,
	}
}
