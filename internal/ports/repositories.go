package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/brunogodoif/projectmanagement/internal/domain/activity"
	"github.com/brunogodoif/projectmanagement/internal/domain/client"
	"github.com/brunogodoif/projectmanagement/internal/domain/project"
)

// ErrRecordNotFound is returned by FindByID when no record has the given id.
// It is a storage fact, not a domain outcome: services translate it into a
// *domain.NotFoundError.
var ErrRecordNotFound = errors.New("record not found")

// ClientRepository persists clients. Implementations must be safe for
// concurrent use. Email uniqueness is not enforced here.
type ClientRepository interface {
	// Save inserts or replaces the client keyed by its ID.
	Save(ctx context.Context, c *client.Client) (*client.Client, error)

	// FindByID returns ErrRecordNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error)

	FindAll(ctx context.Context) ([]client.Client, error)

	// FindAllActive returns only clients whose Active flag is set.
	FindAllActive(ctx context.Context) ([]client.Client, error)

	// ExistsByEmail compares against the normalized email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// DeleteByID removes the record. Deleting a missing id is not an error.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// ProjectRepository persists projects. Soft-deleted projects are stored and
// returned like any other; filtering is the caller's concern.
type ProjectRepository interface {
	Save(ctx context.Context, p *project.Project) (*project.Project, error)

	// FindByID returns ErrRecordNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error)

	FindAll(ctx context.Context) ([]project.Project, error)
	FindByStatus(ctx context.Context, status project.Status) ([]project.Project, error)
	FindByClientID(ctx context.Context, clientID uuid.UUID) ([]project.Project, error)
}

// ActivityRepository persists activities.
type ActivityRepository interface {
	Save(ctx context.Context, a *activity.Activity) (*activity.Activity, error)

	// FindByID returns ErrRecordNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*activity.Activity, error)

	FindAll(ctx context.Context) ([]activity.Activity, error)
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]activity.Activity, error)
	FindByProjectIDAndCompletedFalse(ctx context.Context, projectID uuid.UUID) ([]activity.Activity, error)

	// DeleteByID removes the record. Deleting a missing id is not an error.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
