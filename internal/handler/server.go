// Package handler implements the HTTP handlers for the Itinerary Planner API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into files by resource (health.go, itinerary.go, history.go)
// but share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/handler/gen"
)

// ItineraryServicer defines the business operations the itinerary and history
// handlers depend on. Handler tests inject a mock through it.
type ItineraryServicer interface {
	Create(ctx context.Context, req domain.ItineraryRequest) (domain.Itinerary, error)
	ListByUser(ctx context.Context, email string) ([]domain.Itinerary, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via NewStrictHandler.
type Server struct {
	itineraries ItineraryServicer
}

var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server with all its dependencies.
func NewServer(itineraries ItineraryServicer) *Server {
	return &Server{itineraries: itineraries}
}

// NewStrictHandler adapts s to the generated ServerInterface with this
// package's request and response error handlers installed.
func NewStrictHandler(s *Server, log *slog.Logger) gen.ServerInterface {
	return gen.NewStrictHandlerWithOptions(s, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  RequestErrorHandler,
		ResponseErrorHandlerFunc: NewResponseErrorHandler(log),
	})
}
