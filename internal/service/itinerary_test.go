package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/repo"
	"github.com/pkordes/itinerary-planner/internal/service"
)

// memRepo is an in-memory repo.ItineraryRepo. It assigns ids and timestamps
// the way the Postgres table does, so tests can count stored records.
type memRepo struct {
	rows      []domain.Itinerary
	clock     time.Time
	createErr error
}

func newMemRepo() *memRepo {
	return &memRepo{clock: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (m *memRepo) Create(_ context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	if m.createErr != nil {
		return domain.Itinerary{}, m.createErr
	}
	m.clock = m.clock.Add(time.Second)
	it.ID = int64(len(m.rows) + 1)
	it.CreatedAt = m.clock
	m.rows = append(m.rows, it)
	return it, nil
}

func (m *memRepo) ListByUserEmail(_ context.Context, email string) ([]domain.Itinerary, error) {
	var out []domain.Itinerary
	for _, r := range m.rows {
		if r.UserEmail == email {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

var _ repo.ItineraryRepo = (*memRepo)(nil)

// fakeGenerator is a service.Generator test double that records prompts.
type fakeGenerator struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

var _ service.Generator = (*fakeGenerator)(nil)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validRequest() domain.ItineraryRequest {
	return domain.ItineraryRequest{Destination: "Lisbon", Days: 3, UserEmail: "traveller@example.com"}
}

// ---- Create ----------------------------------------------------------------

func TestItineraryService_Create_Valid(t *testing.T) {
	r := newMemRepo()
	g := &fakeGenerator{text: "Day 1: Belém"}
	svc := service.NewItineraryService(r, g, discardLogger())

	got, err := svc.Create(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Lisbon", got.Destination)
	assert.Equal(t, 3, got.Days)
	assert.Equal(t, "traveller@example.com", got.UserEmail)
	assert.Equal(t, "Day 1: Belém", got.Result)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Len(t, r.rows, 1, "exactly one record stored")
}

func TestItineraryService_Create_PromptMentionsDestinationAndDays(t *testing.T) {
	g := &fakeGenerator{text: "ok"}
	svc := service.NewItineraryService(newMemRepo(), g, discardLogger())

	_, err := svc.Create(context.Background(), domain.ItineraryRequest{
		Destination: "  Kyoto ", Days: 5, UserEmail: "a@example.com",
	})

	require.NoError(t, err)
	require.Len(t, g.prompts, 1)
	p := g.prompts[0]
	assert.Contains(t, p, "Create a detailed 5-day itinerary for Kyoto.")
	for _, section := range []string{
		"Daily activities with timing",
		"Restaurant recommendations for each meal",
		"Transportation tips between locations",
		"Estimated costs for major activities",
		"Local customs and etiquette tips",
		"day-by-day breakdown",
	} {
		assert.Contains(t, p, section)
	}
}

func TestItineraryService_Create_ValidationErrors(t *testing.T) {
	cases := []struct {
		name  string
		req   domain.ItineraryRequest
		field string
	}{
		{"missing destination", domain.ItineraryRequest{Days: 3, UserEmail: "a@example.com"}, "destination"},
		{"blank destination", domain.ItineraryRequest{Destination: "   ", Days: 3, UserEmail: "a@example.com"}, "destination"},
		{"too long destination", domain.ItineraryRequest{Destination: strings.Repeat("x", 256), Days: 3, UserEmail: "a@example.com"}, "destination"},
		{"zero days", domain.ItineraryRequest{Destination: "Rome", Days: 0, UserEmail: "a@example.com"}, "days"},
		{"negative days", domain.ItineraryRequest{Destination: "Rome", Days: -2, UserEmail: "a@example.com"}, "days"},
		{"days exceeds int4", domain.ItineraryRequest{Destination: "Rome", Days: 3_000_000_000, UserEmail: "a@example.com"}, "days"},
		{"missing email", domain.ItineraryRequest{Destination: "Rome", Days: 2}, "user_email"},
		{"malformed email", domain.ItineraryRequest{Destination: "Rome", Days: 2, UserEmail: "not-an-email"}, "user_email"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newMemRepo()
			g := &fakeGenerator{text: "unused"}
			svc := service.NewItineraryService(r, g, discardLogger())

			_, err := svc.Create(context.Background(), tc.req)

			require.ErrorIs(t, err, domain.ErrValidation)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tc.field)
			assert.Empty(t, g.prompts, "generator must not be called")
			assert.Empty(t, r.rows, "nothing stored")
		})
	}
}

func TestItineraryService_Create_DaysUpperBound(t *testing.T) {
	r := newMemRepo()
	g := &fakeGenerator{text: "Day 1"}
	svc := service.NewItineraryService(r, g, discardLogger())

	_, err := svc.Create(context.Background(), domain.ItineraryRequest{
		Destination: "Rome", Days: 2147483648, UserEmail: "a@example.com",
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be at most 2147483647", verr.Fields["days"])
	assert.Empty(t, g.prompts)

	created, err := svc.Create(context.Background(), domain.ItineraryRequest{
		Destination: "Rome", Days: 2147483647, UserEmail: "a@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 2147483647, created.Days)
}

func TestItineraryService_Create_ReportsAllInvalidFields(t *testing.T) {
	svc := service.NewItineraryService(newMemRepo(), &fakeGenerator{}, discardLogger())

	_, err := svc.Create(context.Background(), domain.ItineraryRequest{})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{
		"destination": "destination is required",
		"days":        "must be a positive whole number",
		"user_email":  "user_email is required",
	}, verr.Fields)
}

func TestItineraryService_Create_UpstreamError(t *testing.T) {
	r := newMemRepo()
	upstream := &domain.UpstreamError{StatusCode: 401, Body: `{"error":"invalid api key"}`}
	svc := service.NewItineraryService(r, &fakeGenerator{err: upstream}, discardLogger())

	_, err := svc.Create(context.Background(), validRequest())

	require.ErrorIs(t, err, domain.ErrGeneration)
	var got *domain.UpstreamError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, upstream, got)
	assert.Empty(t, r.rows)
}

func TestItineraryService_Create_GeneratorFault(t *testing.T) {
	r := newMemRepo()
	fault := errors.New("read: connection reset by peer")
	svc := service.NewItineraryService(r, &fakeGenerator{err: fault}, discardLogger())

	_, err := svc.Create(context.Background(), validRequest())

	require.ErrorIs(t, err, domain.ErrGeneration)
	assert.ErrorIs(t, err, fault)
	assert.Empty(t, r.rows)
}

func TestItineraryService_Create_BlankCompletionIsFault(t *testing.T) {
	r := newMemRepo()
	svc := service.NewItineraryService(r, &fakeGenerator{text: " \n"}, discardLogger())

	_, err := svc.Create(context.Background(), validRequest())

	assert.ErrorIs(t, err, domain.ErrGeneration)
	assert.Empty(t, r.rows)
}

func TestItineraryService_Create_RepoError(t *testing.T) {
	r := newMemRepo()
	r.createErr = errors.New("db exploded")
	svc := service.NewItineraryService(r, &fakeGenerator{text: "ok"}, discardLogger())

	_, err := svc.Create(context.Background(), validRequest())

	assert.ErrorIs(t, err, r.createErr)
	assert.NotErrorIs(t, err, domain.ErrGeneration)
}

// ---- ListByUser ------------------------------------------------------------

func TestItineraryService_ListByUser_NewestFirst(t *testing.T) {
	r := newMemRepo()
	svc := service.NewItineraryService(r, &fakeGenerator{text: "ok"}, discardLogger())
	ctx := context.Background()

	for _, dest := range []string{"Lisbon", "Porto", "Faro"} {
		req := validRequest()
		req.Destination = dest
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}
	other := validRequest()
	other.UserEmail = "other@example.com"
	_, err := svc.Create(ctx, other)
	require.NoError(t, err)

	got, err := svc.ListByUser(ctx, "traveller@example.com")

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Faro", "Porto", "Lisbon"},
		[]string{got[0].Destination, got[1].Destination, got[2].Destination})
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].CreatedAt.After(got[i].CreatedAt))
	}

	again, err := svc.ListByUser(ctx, "traveller@example.com")
	require.NoError(t, err)
	assert.Equal(t, got, again, "repeated query returns the same list in the same order")
}

func TestItineraryService_ListByUser_Empty(t *testing.T) {
	svc := service.NewItineraryService(newMemRepo(), &fakeGenerator{}, discardLogger())

	got, err := svc.ListByUser(context.Background(), "nobody@example.com")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestItineraryService_ListByUser_MissingEmail(t *testing.T) {
	svc := service.NewItineraryService(newMemRepo(), &fakeGenerator{}, discardLogger())

	_, err := svc.ListByUser(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
