package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brunogodoif/projectmanagement/internal/adapters/http/dto"
	"github.com/brunogodoif/projectmanagement/internal/domain"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{
			name:       "validation maps to 400",
			err:        domain.NewValidationError("name", "is required"),
			wantStatus: http.StatusBadRequest,
			wantKind:   "validation",
		},
		{
			name:       "not found maps to 404",
			err:        &domain.NotFoundError{Entity: "client", ID: "42"},
			wantStatus: http.StatusNotFound,
			wantKind:   "not_found",
		},
		{
			name:       "duplicate maps to 409",
			err:        &domain.DuplicateError{Entity: "client", Field: "email", Value: "a@x.com"},
			wantStatus: http.StatusConflict,
			wantKind:   "duplicate",
		},
		{
			name:       "in use maps to 409",
			err:        &domain.InUseError{Entity: "client", ID: "42", Dependent: "project", Count: 2},
			wantStatus: http.StatusConflict,
			wantKind:   "in_use",
		},
		{
			name:       "operation maps to 500",
			err:        &domain.OperationError{Op: "failed to create client", Err: errors.New("boom")},
			wantStatus: http.StatusInternalServerError,
			wantKind:   "operation",
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("oops"),
			wantStatus: http.StatusInternalServerError,
			wantKind:   "operation",
		},
		{
			name:       "wrapped not found preserves mapping",
			err:        fmt.Errorf("loading: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantKind:   "not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/clients/42", nil)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Title != http.StatusText(tt.wantStatus) {
				t.Errorf("Title = %q, want %q", got.Title, http.StatusText(tt.wantStatus))
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", got.Kind, tt.wantKind)
			}
			if got.Instance != "/api/v1/clients/42" {
				t.Errorf("Instance = %q", got.Instance)
			}
		})
	}
}

func TestNewErrorResponse_InUseCarriesDependents(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodDelete, "/api/v1/projects/1", nil)
	got := dto.NewErrorResponse(r, &domain.InUseError{Entity: "project", ID: "1", Dependent: "activity", Count: 3})

	if got.Dependents != 3 || got.Dependent != "activity" {
		t.Errorf("Dependents = %d, Dependent = %q; want 3, activity", got.Dependents, got.Dependent)
	}
}

func TestNewErrorResponse_HidesOperationCause(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/clients", nil)

	got := dto.NewErrorResponse(r, &domain.OperationError{Op: "failed to create client", Err: errors.New("dial tcp: refused")})
	if got.Detail != "failed to create client" {
		t.Errorf("Detail = %q, want operation message only", got.Detail)
	}

	got = dto.NewErrorResponse(r, errors.New("secret internals"))
	if got.Detail != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("Detail = %q, want generic text", got.Detail)
	}
}

func TestNewErrorResponse_ValidationDetailsSorted(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/projects", nil)
	got := dto.NewErrorResponse(r, &domain.ValidationError{Fields: map[string]string{
		"name":     "is required",
		"end_date": "cannot be before start date",
	}})

	if len(got.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2", len(got.Errors))
	}
	if got.Errors[0].Location != "body.end_date" || got.Errors[1].Location != "body.name" {
		t.Errorf("Errors = %+v, want sorted by location", got.Errors)
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/clients/1", nil)
	dto.WriteErrorResponse(rec, r, &domain.NotFoundError{Entity: "client", ID: "1"})

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Detail != "client not found: 1" {
		t.Errorf("Detail = %q", body.Detail)
	}
}

func TestWriteProblem(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil)
	dto.WriteProblem(rec, r, http.StatusTooManyRequests, "rate limit exceeded")

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}
	var body dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Title != "Too Many Requests" || body.Detail != "rate limit exceeded" {
		t.Errorf("body = %+v", body)
	}
}
