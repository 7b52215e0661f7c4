// Package service contains the business logic for the Itinerary Planner API.
// Services validate inputs, enforce business rules, and orchestrate repo and
// completion calls. No SQL or HTTP lives here.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/repo"
)

// Generator produces itinerary text for a prompt. Implementations report a
// non-success answer from the provider as *domain.UpstreamError.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ItineraryService implements business logic for Itinerary operations.
type ItineraryService struct {
	repo     repo.ItineraryRepo
	gen      Generator
	validate *validator.Validate
	log      *slog.Logger
}

// NewItineraryService constructs an ItineraryService. log receives generation
// failures; pass slog.Default() when no dedicated logger is configured.
func NewItineraryService(r repo.ItineraryRepo, g Generator, log *slog.Logger) *ItineraryService {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names so handlers can return them verbatim.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &ItineraryService{repo: r, gen: g, validate: v, log: log}
}

// Create validates req, asks the generator for an itinerary and persists it.
//
// Returns a *domain.ValidationError (matching domain.ErrValidation) when input
// is invalid; the generator is not called. Returns an error matching
// domain.ErrGeneration when the completion call fails; nothing is persisted.
// Repo errors are returned wrapped.
func (s *ItineraryService) Create(ctx context.Context, req domain.ItineraryRequest) (domain.Itinerary, error) {
	req.Destination = strings.TrimSpace(req.Destination)
	req.UserEmail = strings.TrimSpace(req.UserEmail)
	if err := s.validateRequest(req); err != nil {
		return domain.Itinerary{}, err
	}

	text, err := s.gen.Generate(ctx, itineraryPrompt(req.Destination, req.Days))
	if err != nil {
		s.logGenerationFailure(ctx, req, err)
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Create: %w: %w", domain.ErrGeneration, err)
	}
	if strings.TrimSpace(text) == "" {
		err := errors.New("completion service returned empty text")
		s.logGenerationFailure(ctx, req, err)
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Create: %w: %w", domain.ErrGeneration, err)
	}

	created, err := s.repo.Create(ctx, domain.Itinerary{
		Destination: req.Destination,
		Days:        req.Days,
		UserEmail:   req.UserEmail,
		Result:      text,
	})
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	return created, nil
}

// ListByUser returns every itinerary stored for email, newest first.
// Always returns a non-nil slice so callers can safely range over it.
// Returns a *domain.ValidationError when email is empty.
func (s *ItineraryService) ListByUser(ctx context.Context, email string) ([]domain.Itinerary, error) {
	if email == "" {
		return nil, domain.NewValidationError("user_email", "user_email is required")
	}

	out, err := s.repo.ListByUserEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.ListByUser: %w", err)
	}
	if out == nil {
		return []domain.Itinerary{}, nil
	}
	return out, nil
}

// validateRequest runs the struct-tag rules on req and converts failures into
// a field→message ValidationError.
func (s *ItineraryService) validateRequest(req domain.ItineraryRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("service.ItineraryService: validate: %w", err)
	}

	verr := &domain.ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		verr.Fields[fe.Field()] = fieldMessage(fe)
	}
	return verr
}

// fieldMessage renders a human-readable message for one failed rule.
func fieldMessage(fe validator.FieldError) string {
	switch {
	case fe.Field() == "days" && fe.Tag() == "lte":
		return "must be at most " + fe.Param()
	case fe.Field() == "days":
		return "must be a positive whole number"
	case fe.Tag() == "required":
		return fe.Field() + " is required"
	case fe.Tag() == "email":
		return "must be a valid email address"
	case fe.Tag() == "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

func (s *ItineraryService) logGenerationFailure(ctx context.Context, req domain.ItineraryRequest, err error) {
	attrs := []any{
		"destination", req.Destination,
		"days", req.Days,
		"error", err,
	}
	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		attrs = append(attrs, "upstream_status", upstream.StatusCode)
	}
	s.log.ErrorContext(ctx, "itinerary generation failed", attrs...)
}
