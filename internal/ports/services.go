package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/brunogodoif/projectmanagement/internal/domain/activity"
	"github.com/brunogodoif/projectmanagement/internal/domain/client"
	"github.com/brunogodoif/projectmanagement/internal/domain/project"
)

// ClientService defines the service port for client lifecycle operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every returned error unwraps to one of the domain sentinels.
type ClientService interface {
	// Create returns domain.ErrDuplicate if the email is already taken and
	// domain.ErrValidation if the client fails validation.
	Create(ctx context.Context, params client.Params) (*client.Client, error)

	// Get returns the client with the projects referencing it attached.
	// Returns domain.ErrNotFound if the client does not exist.
	Get(ctx context.Context, id uuid.UUID) (*client.Detail, error)

	// List returns every client regardless of its Active flag.
	List(ctx context.Context) ([]client.Client, error)

	// ListActive returns only clients flagged active.
	ListActive(ctx context.Context) ([]client.Client, error)

	// Update returns domain.ErrNotFound if the client does not exist and
	// domain.ErrDuplicate if a changed email belongs to another client.
	Update(ctx context.Context, id uuid.UUID, patch client.Patch) (*client.Client, error)

	// Delete hard-deletes the client.
	// Returns domain.ErrInUse while any project references it.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProjectService defines the service port for project lifecycle operations.
type ProjectService interface {
	// Create returns domain.ErrNotFound if the referenced client does not exist.
	Create(ctx context.Context, params project.Params) (*project.Project, error)

	// Get returns the project, soft-deleted or not, with its activities attached.
	Get(ctx context.Context, id uuid.UUID) (*project.Detail, error)

	// List, ListByStatus and ListByClient exclude soft-deleted projects and
	// return an empty slice when nothing matches.
	List(ctx context.Context) ([]project.Project, error)
	ListByStatus(ctx context.Context, status string) ([]project.Project, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]project.Project, error)

	// Update re-resolves the client when ClientID changes.
	// Returns domain.ErrNotFound if the project or the new client does not exist.
	Update(ctx context.Context, id uuid.UUID, patch project.Patch) (*project.Project, error)

	// Delete soft-deletes the project.
	// Returns domain.ErrInUse while any activity references it.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ActivityService defines the service port for activity lifecycle operations.
type ActivityService interface {
	// Create returns domain.ErrNotFound if the referenced project does not exist.
	Create(ctx context.Context, params activity.Params) (*activity.Activity, error)

	// Get returns domain.ErrNotFound if the activity does not exist.
	Get(ctx context.Context, id uuid.UUID) (*activity.Activity, error)

	List(ctx context.Context) ([]activity.Activity, error)

	// ListByProject returns domain.ErrNotFound if the project does not exist.
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]activity.Activity, error)

	// ListPendingByProject is ListByProject restricted to activities not yet
	// completed.
	ListPendingByProject(ctx context.Context, projectID uuid.UUID) ([]activity.Activity, error)

	// Update re-resolves the project when ProjectID changes.
	Update(ctx context.Context, id uuid.UUID, patch activity.Patch) (*activity.Activity, error)

	// Delete hard-deletes the activity; nothing depends on it.
	Delete(ctx context.Context, id uuid.UUID) error
}
