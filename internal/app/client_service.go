package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/brunogodoif/projectmanagement/internal/domain"
	"github.com/brunogodoif/projectmanagement/internal/domain/client"
	"github.com/brunogodoif/projectmanagement/internal/ports"
)

// Compile-time check that ClientService implements ports.ClientService.
var _ ports.ClientService = (*ClientService)(nil)

// ClientService implements ports.ClientService. It enforces email uniqueness
// and the "no referencing projects" deletion guard on top of repositories
// that guarantee neither.
//
// Each method is a read-check-write sequence without locking; concurrent
// calls can interleave between the check and the write.
type ClientService struct {
	clients  ports.ClientRepository
	projects ports.ProjectRepository
	logger   *slog.Logger
	opts     options
}

// NewClientService creates a ClientService. The project repository is read
// to build client details and to guard deletion.
func NewClientService(
	clients ports.ClientRepository,
	projects ports.ProjectRepository,
	logger *slog.Logger,
	opts ...Option,
) *ClientService {
	return &ClientService{
		clients:  clients,
		projects: projects,
		logger:   loggerOrDiscard(logger),
		opts:     newOptions(opts),
	}
}

func (s *ClientService) fail(ctx context.Context, operation, msg string, err error, attrs ...slog.Attr) error {
	return failure(ctx, s.logger, s.opts.metrics, domain.EntityClient, operation, msg, err, attrs...)
}

// Create validates the input, rejects a taken email and persists the client.
func (s *ClientService) Create(ctx context.Context, params client.Params) (*client.Client, error) {
	s.logger.InfoContext(ctx, "creating client", slog.String("name", params.Name))

	c, err := client.New(params, s.opts.now())
	if err != nil {
		return nil, err
	}

	taken, err := s.clients.ExistsByEmail(ctx, c.Email)
	if err != nil {
		return nil, s.fail(ctx, "Create", "failed to create client", err)
	}
	if taken {
		return nil, &domain.DuplicateError{Entity: domain.EntityClient, Field: "email", Value: c.Email}
	}

	saved, err := s.clients.Save(ctx, c)
	if err != nil {
		return nil, s.fail(ctx, "Create", "failed to create client", err)
	}

	s.opts.metrics.IncrementCreated(domain.EntityClient)
	return saved, nil
}

// Get returns the client with every project that references it, soft-deleted
// ones included.
func (s *ClientService) Get(ctx context.Context, id uuid.UUID) (*client.Detail, error) {
	s.logger.InfoContext(ctx, "fetching client", slog.String("id", id.String()))

	c, err := s.find(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "Get", "failed to fetch client", err, slog.String("id", id.String()))
	}

	projects, err := s.projects.FindByClientID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "Get", "failed to fetch client projects", err, slog.String("id", id.String()))
	}

	return &client.Detail{Client: *c, Projects: nonNil(projects)}, nil
}

// List returns every client regardless of the Active flag.
func (s *ClientService) List(ctx context.Context) ([]client.Client, error) {
	s.logger.InfoContext(ctx, "listing clients")

	clients, err := s.clients.FindAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, "List", "failed to list clients", err)
	}
	return nonNil(clients), nil
}

// ListActive returns only clients flagged active.
func (s *ClientService) ListActive(ctx context.Context) ([]client.Client, error) {
	s.logger.InfoContext(ctx, "listing active clients")

	clients, err := s.clients.FindAllActive(ctx)
	if err != nil {
		return nil, s.fail(ctx, "ListActive", "failed to list active clients", err)
	}
	return nonNil(clients), nil
}

// Update applies patch to an existing client. A changed email must not
// belong to any other client.
func (s *ClientService) Update(ctx context.Context, id uuid.UUID, patch client.Patch) (*client.Client, error) {
	s.logger.InfoContext(ctx, "updating client", slog.String("id", id.String()))

	current, err := s.find(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "Update", "failed to update client", err, slog.String("id", id.String()))
	}

	next, err := current.Apply(patch, s.opts.now())
	if err != nil {
		return nil, err
	}

	if next.Email != current.Email {
		taken, err := s.clients.ExistsByEmail(ctx, next.Email)
		if err != nil {
			return nil, s.fail(ctx, "Update", "failed to update client", err, slog.String("id", id.String()))
		}
		if taken {
			return nil, &domain.DuplicateError{Entity: domain.EntityClient, Field: "email", Value: next.Email}
		}
	}

	saved, err := s.clients.Save(ctx, next)
	if err != nil {
		return nil, s.fail(ctx, "Update", "failed to update client", err, slog.String("id", id.String()))
	}
	return saved, nil
}

// Delete hard-deletes a client that no project references. Soft-deleted
// projects still count as references.
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting client", slog.String("id", id.String()))

	if _, err := s.find(ctx, id); err != nil {
		return s.fail(ctx, "Delete", "failed to delete client", err, slog.String("id", id.String()))
	}

	projects, err := s.projects.FindByClientID(ctx, id)
	if err != nil {
		return s.fail(ctx, "Delete", "failed to delete client", err, slog.String("id", id.String()))
	}
	if n := len(projects); n > 0 {
		s.opts.metrics.IncrementDeletionBlocked(domain.EntityClient)
		s.logger.InfoContext(ctx, "client deletion blocked",
			slog.String("id", id.String()),
			slog.Int("projects", n),
		)
		return &domain.InUseError{
			Entity:    domain.EntityClient,
			ID:        id.String(),
			Dependent: domain.EntityProject,
			Count:     n,
		}
	}

	if err := s.clients.DeleteByID(ctx, id); err != nil {
		return s.fail(ctx, "Delete", "failed to delete client", err, slog.String("id", id.String()))
	}

	s.opts.metrics.IncrementDeleted(domain.EntityClient, client.Deletion.String())
	return nil
}

func (s *ClientService) find(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	c, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, domain.EntityClient, id.String())
	}
	return c, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
