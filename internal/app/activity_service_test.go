package app

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/brunogodoif/projectmanagement/internal/domain"
	"github.com/brunogodoif/projectmanagement/internal/domain/activity"
	"github.com/brunogodoif/projectmanagement/internal/ports"
	"github.com/brunogodoif/projectmanagement/mocks"
)

func newActivityService(t *testing.T) (*ActivityService, *mocks.MockActivityRepository, *mocks.MockProjectRepository) {
	t.Helper()

	activities := mocks.NewMockActivityRepository(t)
	projects := mocks.NewMockProjectRepository(t)
	return NewActivityService(activities, projects, discardLogger(), fixedClock()), activities, projects
}

func echoActivity(_ context.Context, a *activity.Activity) (*activity.Activity, error) { return a, nil }

func TestActivityService_Create(t *testing.T) {
	t.Parallel()

	t.Run("persists with resolved project", func(t *testing.T) {
		t.Parallel()
		svc, activities, projects := newActivityService(t)

		p := validProject(uuid.New())
		projects.EXPECT().FindByID(mock.Anything, p.ID).Return(&p, nil)
		activities.EXPECT().Save(mock.Anything, mock.Anything).RunAndReturn(echoActivity)

		got, err := svc.Create(context.Background(), activity.Params{Title: "T", ProjectID: p.ID})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if got.ProjectID != p.ID || got.Completed {
			t.Errorf("Create() = %+v", got)
		}
	})

	t.Run("unknown project", func(t *testing.T) {
		t.Parallel()
		svc, _, projects := newActivityService(t)

		id := uuid.New()
		projects.EXPECT().FindByID(mock.Anything, id).Return(nil, ports.ErrRecordNotFound)

		_, err := svc.Create(context.Background(), activity.Params{Title: "T", ProjectID: id})
		requireKind(t, err, domain.KindNotFound)
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()
		svc, _, projects := newActivityService(t)

		p := validProject(uuid.New())
		projects.EXPECT().FindByID(mock.Anything, p.ID).Return(&p, nil)

		_, err := svc.Create(context.Background(), activity.Params{ProjectID: p.ID})
		requireKind(t, err, domain.KindValidation)
	})
}

func TestActivityService_Get(t *testing.T) {
	t.Parallel()

	svc, activities, _ := newActivityService(t)
	id := uuid.New()
	activities.EXPECT().FindByID(mock.Anything, id).Return(nil, ports.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), id)
	requireKind(t, err, domain.KindNotFound)
}

func TestActivityService_ListByProject(t *testing.T) {
	t.Parallel()

	t.Run("missing project is not found", func(t *testing.T) {
		t.Parallel()
		svc, _, projects := newActivityService(t)

		id := uuid.New()
		projects.EXPECT().FindByID(mock.Anything, id).Return(nil, ports.ErrRecordNotFound)

		_, err := svc.ListByProject(context.Background(), id)
		requireKind(t, err, domain.KindNotFound)
	})

	t.Run("existing project without activities", func(t *testing.T) {
		t.Parallel()
		svc, activities, projects := newActivityService(t)

		p := validProject(uuid.New())
		projects.EXPECT().FindByID(mock.Anything, p.ID).Return(&p, nil)
		activities.EXPECT().FindByProjectID(mock.Anything, p.ID).Return(nil, nil)

		got, err := svc.ListByProject(context.Background(), p.ID)
		if err != nil {
			t.Fatalf("ListByProject() error = %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("ListByProject() = %#v, want empty slice", got)
		}
	})

	t.Run("pending only", func(t *testing.T) {
		t.Parallel()
		svc, activities, projects := newActivityService(t)

		p := validProject(uuid.New())
		pending := validActivity(p.ID)
		projects.EXPECT().FindByID(mock.Anything, p.ID).Return(&p, nil)
		activities.EXPECT().FindByProjectIDAndCompletedFalse(mock.Anything, p.ID).
			Return([]activity.Activity{pending}, nil)

		got, err := svc.ListPendingByProject(context.Background(), p.ID)
		if err != nil {
			t.Fatalf("ListPendingByProject() error = %v", err)
		}
		if len(got) != 1 {
			t.Errorf("ListPendingByProject() len = %d, want 1", len(got))
		}
	})
}

func TestActivityService_Update(t *testing.T) {
	t.Parallel()

	t.Run("re-parent to unknown project", func(t *testing.T) {
		t.Parallel()
		svc, activities, projects := newActivityService(t)

		a := validActivity(uuid.New())
		missing := uuid.New()
		activities.EXPECT().FindByID(mock.Anything, a.ID).Return(&a, nil)
		projects.EXPECT().FindByID(mock.Anything, missing).Return(nil, ports.ErrRecordNotFound)

		_, err := svc.Update(context.Background(), a.ID, activity.Patch{ProjectID: domain.Set(missing)})
		requireKind(t, err, domain.KindNotFound)
	})

	t.Run("marks completed", func(t *testing.T) {
		t.Parallel()
		svc, activities, _ := newActivityService(t)

		a := validActivity(uuid.New())
		activities.EXPECT().FindByID(mock.Anything, a.ID).Return(&a, nil)
		activities.EXPECT().Save(mock.Anything, mock.Anything).RunAndReturn(echoActivity)

		got, err := svc.Update(context.Background(), a.ID, activity.Patch{Completed: domain.Set(true)})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if !got.Completed || !got.UpdatedAt.Equal(fixedNow) {
			t.Errorf("Update() = %+v", got)
		}
	})
}

func TestActivityService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("hard deletes", func(t *testing.T) {
		t.Parallel()
		svc, activities, _ := newActivityService(t)

		a := validActivity(uuid.New())
		activities.EXPECT().FindByID(mock.Anything, a.ID).Return(&a, nil)
		activities.EXPECT().DeleteByID(mock.Anything, a.ID).Return(nil)

		if err := svc.Delete(context.Background(), a.ID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
	})

	t.Run("missing activity", func(t *testing.T) {
		t.Parallel()
		svc, activities, _ := newActivityService(t)

		id := uuid.New()
		activities.EXPECT().FindByID(mock.Anything, id).Return(nil, ports.ErrRecordNotFound)

		requireKind(t, svc.Delete(context.Background(), id), domain.KindNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		t.Parallel()
		svc, activities, _ := newActivityService(t)

		a := validActivity(uuid.New())
		activities.EXPECT().FindByID(mock.Anything, a.ID).Return(&a, nil)
		activities.EXPECT().DeleteByID(mock.Anything, a.ID).Return(errStorage)

		err := svc.Delete(context.Background(), a.ID)
		requireKind(t, err, domain.KindOperation)
		if err.Error() != "failed to delete activity: connection refused" {
			t.Errorf("Delete() error = %q", err.Error())
		}
	})
}
