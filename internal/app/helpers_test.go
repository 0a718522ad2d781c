package app

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/brunogodoif/projectmanagement/internal/domain"
	"github.com/brunogodoif/projectmanagement/internal/domain/activity"
	"github.com/brunogodoif/projectmanagement/internal/domain/client"
	"github.com/brunogodoif/projectmanagement/internal/domain/project"
)

var (
	fixedNow   = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	errStorage = errors.New("connection refused")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func fixedClock() Option {
	return WithClock(func() time.Time { return fixedNow })
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func validClient() client.Client {
	return client.Client{
		ID:        uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Name:      "Acme",
		Email:     "a@x.com",
		Active:    true,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func validProject(clientID uuid.UUID) project.Project {
	return project.Project{
		ID:        uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Name:      "Website",
		ClientID:  clientID,
		StartDate: day(2025, 1, 1),
		EndDate:   day(2025, 6, 1),
		Status:    project.StatusOpen,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func validActivity(projectID uuid.UUID) activity.Activity {
	return activity.Activity{
		ID:        uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		Title:     "T",
		ProjectID: projectID,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func requireKind(t *testing.T, err error, want domain.Kind) {
	t.Helper()

	if got := domain.KindOf(err); got != want {
		t.Fatalf("KindOf(%v) = %v, want %v", err, got, want)
	}
}
