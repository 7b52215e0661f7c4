package handler

import (
	"context"
	"errors"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/handler/gen"
)

// CreateItinerary handles POST /itineraries.
func (s *Server) CreateItinerary(ctx context.Context, req gen.CreateItineraryRequestObject) (gen.CreateItineraryResponseObject, error) {
	created, err := s.itineraries.Create(ctx, requestToItinerary(req.Body))
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			return gen.CreateItinerary400JSONResponse(verr.Fields), nil
		case errors.Is(err, domain.ErrGeneration):
			return gen.CreateItinerary500JSONResponse(generationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateItinerary201JSONResponse(itineraryToResponse(created)), nil
}

// requestToItinerary copies the optional body fields into a domain request.
// Absent fields stay at their zero value and fail validation in the service.
func requestToItinerary(body *gen.CreateItineraryRequest) domain.ItineraryRequest {
	var req domain.ItineraryRequest
	if body == nil {
		return req
	}
	if body.Destination != nil {
		req.Destination = *body.Destination
	}
	if body.Days != nil {
		req.Days = *body.Days
	}
	if body.UserEmail != nil {
		req.UserEmail = *body.UserEmail
	}
	return req
}

func itineraryToResponse(it domain.Itinerary) gen.Itinerary {
	return gen.Itinerary{
		Id:          it.ID,
		Destination: it.Destination,
		Days:        it.Days,
		UserEmail:   it.UserEmail,
		Result:      it.Result,
		CreatedAt:   it.CreatedAt,
	}
}

func itinerariesToResponse(items []domain.Itinerary) []gen.Itinerary {
	out := make([]gen.Itinerary, len(items))
	for i, it := range items {
		out[i] = itineraryToResponse(it)
	}
	return out
}
