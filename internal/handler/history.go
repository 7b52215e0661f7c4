package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/jszwec/csvutil"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/handler/gen"
)

// exportBasename is the download name of an export, before the extension.
const exportBasename = "itineraries"

// csvRow is one line of the CSV export. Column order follows field order.
type csvRow struct {
	ID          int64  `csv:"id"`
	Destination string `csv:"destination"`
	Days        int    `csv:"days"`
	UserEmail   string `csv:"user_email"`
	CreatedAt   string `csv:"created_at"`
	Result      string `csv:"result"`
}

// GetHistory handles GET /history.
// user_email is declared optional in the API document so that its absence
// reaches the handler and gets the JSON error body rather than a plain-text one.
func (s *Server) GetHistory(ctx context.Context, req gen.GetHistoryRequestObject) (gen.GetHistoryResponseObject, error) {
	items, err := s.itineraries.ListByUser(ctx, deref(req.Params.UserEmail))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.GetHistory400JSONResponse{Error: validationMessage(err)}, nil
		}
		return nil, err
	}
	return gen.GetHistory200JSONResponse(itinerariesToResponse(items)), nil
}

// ExportHistory handles GET /history/export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) ExportHistory(ctx context.Context, req gen.ExportHistoryRequestObject) (gen.ExportHistoryResponseObject, error) {
	format := gen.Json
	if req.Params.Format != nil {
		format = *req.Params.Format
	}
	if format != gen.Json && format != gen.Csv {
		return gen.ExportHistory400JSONResponse{Error: "format must be json or csv"}, nil
	}

	items, err := s.itineraries.ListByUser(ctx, deref(req.Params.UserEmail))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.ExportHistory400JSONResponse{Error: validationMessage(err)}, nil
		}
		return nil, err
	}

	if format == gen.Csv {
		return buildCSVResponse(items)
	}
	return gen.ExportHistory200JSONResponse{
		Body:    itinerariesToResponse(items),
		Headers: exportHeaders(gen.Json),
	}, nil
}

// buildCSVResponse encodes items with a header row, even when there are none.
func buildCSVResponse(items []domain.Itinerary) (gen.ExportHistory200TextcsvResponse, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	enc := csvutil.NewEncoder(w)

	if err := enc.EncodeHeader(csvRow{}); err != nil {
		return gen.ExportHistory200TextcsvResponse{}, fmt.Errorf("handler.buildCSVResponse: header: %w", err)
	}
	for _, it := range items {
		if err := enc.Encode(itineraryToCSVRow(it)); err != nil {
			return gen.ExportHistory200TextcsvResponse{}, fmt.Errorf("handler.buildCSVResponse: row %d: %w", it.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return gen.ExportHistory200TextcsvResponse{}, fmt.Errorf("handler.buildCSVResponse: flush: %w", err)
	}

	return gen.ExportHistory200TextcsvResponse{
		Body:          &buf,
		ContentLength: int64(buf.Len()),
		Headers:       exportHeaders(gen.Csv),
	}, nil
}

func exportHeaders(format gen.ExportHistoryParamsFormat) gen.ExportHistory200ResponseHeaders {
	return gen.ExportHistory200ResponseHeaders{
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", exportBasename+"."+string(format)),
	}
}

func itineraryToCSVRow(it domain.Itinerary) csvRow {
	return csvRow{
		ID:          it.ID,
		Destination: it.Destination,
		Days:        it.Days,
		UserEmail:   it.UserEmail,
		CreatedAt:   it.CreatedAt.UTC().Format(time.RFC3339Nano),
		Result:      it.Result,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
