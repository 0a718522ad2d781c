// Package storagetest holds the behavioural contract every repository driver
// must satisfy, expressed as a testify suite.
package storagetest

import (
	"bytes"
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/brunogodoif/projectmanagement/internal/domain/activity"
	"github.com/brunogodoif/projectmanagement/internal/domain/client"
	"github.com/brunogodoif/projectmanagement/internal/domain/project"
	"github.com/brunogodoif/projectmanagement/internal/ports"
)

// Repos bundles one driver's three repositories.
type Repos struct {
	Clients    ports.ClientRepository
	Projects   ports.ProjectRepository
	Activities ports.ActivityRepository
}

// RepositorySuite runs the contract against fresh Repos for every test.
// Drivers embed it and set NewRepos.
type RepositorySuite struct {
	suite.Suite

	NewRepos func() Repos
	repos    Repos
	ctx      context.Context
	base     time.Time
}

func (s *RepositorySuite) SetupTest() {
	s.Require().NotNil(s.NewRepos, "NewRepos must be set")
	s.repos = s.NewRepos()
	s.ctx = context.Background()
	s.base = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
}

func (s *RepositorySuite) at(minutes int) time.Time {
	return s.base.Add(time.Duration(minutes) * time.Minute)
}

func (s *RepositorySuite) saveClient(email string, active bool, minute int) client.Client {
	c := client.Client{
		ID:          uuid.New(),
		Name:        "Client " + email,
		Email:       email,
		Phone:       "+55 11 0000-0000",
		CompanyName: "Co",
		Address:     "Street 1",
		Active:      active,
		CreatedAt:   s.at(minute),
		UpdatedAt:   s.at(minute),
	}
	_, err := s.repos.Clients.Save(s.ctx, &c)
	s.Require().NoError(err)
	return c
}

func (s *RepositorySuite) saveProject(clientID uuid.UUID, status project.Status, minute int) project.Project {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	p := project.Project{
		ID:          uuid.New(),
		Name:        "Project",
		Description: "desc",
		ClientID:    clientID,
		StartDate:   &start,
		EndDate:     &end,
		Status:      status,
		ManagerName: "Ana",
		Notes:       "n",
		CreatedAt:   s.at(minute),
		UpdatedAt:   s.at(minute),
	}
	_, err := s.repos.Projects.Save(s.ctx, &p)
	s.Require().NoError(err)
	return p
}

func (s *RepositorySuite) saveActivity(projectID uuid.UUID, completed bool, minute int) activity.Activity {
	due := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	a := activity.Activity{
		ID:             uuid.New(),
		Title:          "Activity",
		Description:    "desc",
		ProjectID:      projectID,
		DueDate:        &due,
		Assignee:       "Bia",
		Completed:      completed,
		Priority:       "high",
		EstimatedHours: 2.5,
		CreatedAt:      s.at(minute),
		UpdatedAt:      s.at(minute),
	}
	_, err := s.repos.Activities.Save(s.ctx, &a)
	s.Require().NoError(err)
	return a
}

func (s *RepositorySuite) TestClient_RoundTrip() {
	want := s.saveClient("a@x.com", true, 0)

	got, err := s.repos.Clients.FindByID(s.ctx, want.ID)
	s.Require().NoError(err)
	s.Equal(want.ID, got.ID)
	s.Equal(want.Name, got.Name)
	s.Equal(want.Email, got.Email)
	s.Equal(want.Phone, got.Phone)
	s.Equal(want.CompanyName, got.CompanyName)
	s.Equal(want.Address, got.Address)
	s.Equal(want.Active, got.Active)
	s.True(want.CreatedAt.Equal(got.CreatedAt), "CreatedAt %v != %v", want.CreatedAt, got.CreatedAt)
	s.True(want.UpdatedAt.Equal(got.UpdatedAt), "UpdatedAt %v != %v", want.UpdatedAt, got.UpdatedAt)
}

func (s *RepositorySuite) TestClient_MicrosecondTimestampsRoundTrip() {
	stamp := time.Date(2025, 1, 1, 8, 0, 0, 123456000, time.UTC)
	want := client.Client{
		ID:        uuid.New(),
		Name:      "Precise",
		Email:     "precise@x.com",
		Active:    true,
		CreatedAt: stamp,
		UpdatedAt: stamp.Add(789 * time.Microsecond),
	}
	_, err := s.repos.Clients.Save(s.ctx, &want)
	s.Require().NoError(err)

	got, err := s.repos.Clients.FindByID(s.ctx, want.ID)
	s.Require().NoError(err)
	s.True(want.CreatedAt.Equal(got.CreatedAt), "CreatedAt %v != %v", want.CreatedAt, got.CreatedAt)
	s.True(want.UpdatedAt.Equal(got.UpdatedAt), "UpdatedAt %v != %v", want.UpdatedAt, got.UpdatedAt)
}

func (s *RepositorySuite) TestClient_FindAllBreaksTimestampTiesByID() {
	want := []uuid.UUID{
		s.saveClient("t1@x.com", true, 0).ID,
		s.saveClient("t2@x.com", true, 0).ID,
		s.saveClient("t3@x.com", true, 0).ID,
	}
	slices.SortFunc(want, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })

	for range 3 {
		all, err := s.repos.Clients.FindAll(s.ctx)
		s.Require().NoError(err)
		got := make([]uuid.UUID, 0, len(all))
		for _, c := range all {
			got = append(got, c.ID)
		}
		s.Equal(want, got)
	}
}

func (s *RepositorySuite) TestClient_FindByIDMissing() {
	_, err := s.repos.Clients.FindByID(s.ctx, uuid.New())
	s.ErrorIs(err, ports.ErrRecordNotFound)
}

func (s *RepositorySuite) TestClient_ExistsByEmail() {
	c := s.saveClient("a@x.com", false, 0)

	exists, err := s.repos.Clients.ExistsByEmail(s.ctx, "a@x.com")
	s.Require().NoError(err)
	s.True(exists, "inactive clients still own their email")

	exists, err = s.repos.Clients.ExistsByEmail(s.ctx, " A@X.COM ")
	s.Require().NoError(err)
	s.True(exists, "lookup is case-insensitive")

	exists, err = s.repos.Clients.ExistsByEmail(s.ctx, "b@x.com")
	s.Require().NoError(err)
	s.False(exists)

	c.Email = "c@x.com"
	_, err = s.repos.Clients.Save(s.ctx, &c)
	s.Require().NoError(err)

	exists, err = s.repos.Clients.ExistsByEmail(s.ctx, "a@x.com")
	s.Require().NoError(err)
	s.False(exists, "old email is released after change")
}

func (s *RepositorySuite) TestClient_FindAllAndActive() {
	first := s.saveClient("a@x.com", true, 0)
	second := s.saveClient("b@x.com", false, 1)

	all, err := s.repos.Clients.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(first.ID, all[0].ID)
	s.Equal(second.ID, all[1].ID)

	active, err := s.repos.Clients.FindAllActive(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.Equal(first.ID, active[0].ID)
}

func (s *RepositorySuite) TestClient_DeleteByID() {
	c := s.saveClient("a@x.com", true, 0)

	s.Require().NoError(s.repos.Clients.DeleteByID(s.ctx, c.ID))
	_, err := s.repos.Clients.FindByID(s.ctx, c.ID)
	s.ErrorIs(err, ports.ErrRecordNotFound)

	exists, err := s.repos.Clients.ExistsByEmail(s.ctx, "a@x.com")
	s.Require().NoError(err)
	s.False(exists)

	s.NoError(s.repos.Clients.DeleteByID(s.ctx, c.ID), "deleting twice is not an error")
}

func (s *RepositorySuite) TestProject_RoundTripAndSoftDelete() {
	c := s.saveClient("a@x.com", true, 0)
	p := s.saveProject(c.ID, project.StatusOpen, 1)

	got, err := s.repos.Projects.FindByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(p.ClientID, got.ClientID)
	s.Equal(p.Status, got.Status)
	s.Equal(p.ManagerName, got.ManagerName)
	s.Require().NotNil(got.StartDate)
	s.Require().NotNil(got.EndDate)
	s.True(p.StartDate.Equal(*got.StartDate))
	s.True(p.EndDate.Equal(*got.EndDate))
	s.False(got.IsDeleted)

	p.IsDeleted = true
	_, err = s.repos.Projects.Save(s.ctx, &p)
	s.Require().NoError(err)

	got, err = s.repos.Projects.FindByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.True(got.IsDeleted, "soft-deleted projects stay readable")

	byClient, err := s.repos.Projects.FindByClientID(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Len(byClient, 1, "finders do not filter soft-deleted rows")
}

func (s *RepositorySuite) TestProject_NullDates() {
	c := s.saveClient("a@x.com", true, 0)
	p := s.saveProject(c.ID, project.StatusOpen, 1)
	p.StartDate, p.EndDate = nil, nil
	_, err := s.repos.Projects.Save(s.ctx, &p)
	s.Require().NoError(err)

	got, err := s.repos.Projects.FindByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Nil(got.StartDate)
	s.Nil(got.EndDate)
}

func (s *RepositorySuite) TestProject_FindByStatusFollowsUpdates() {
	c := s.saveClient("a@x.com", true, 0)
	p := s.saveProject(c.ID, project.StatusOpen, 1)
	s.saveProject(c.ID, project.StatusPlanned, 2)

	open, err := s.repos.Projects.FindByStatus(s.ctx, project.StatusOpen)
	s.Require().NoError(err)
	s.Len(open, 1)

	p.Status = project.StatusCompleted
	_, err = s.repos.Projects.Save(s.ctx, &p)
	s.Require().NoError(err)

	open, err = s.repos.Projects.FindByStatus(s.ctx, project.StatusOpen)
	s.Require().NoError(err)
	s.Empty(open)

	done, err := s.repos.Projects.FindByStatus(s.ctx, project.StatusCompleted)
	s.Require().NoError(err)
	s.Require().Len(done, 1)
	s.Equal(p.ID, done[0].ID)
}

func (s *RepositorySuite) TestProject_FindByClientIDFollowsReparent() {
	a := s.saveClient("a@x.com", true, 0)
	b := s.saveClient("b@x.com", true, 1)
	p := s.saveProject(a.ID, project.StatusOpen, 2)

	p.ClientID = b.ID
	_, err := s.repos.Projects.Save(s.ctx, &p)
	s.Require().NoError(err)

	ofA, err := s.repos.Projects.FindByClientID(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Empty(ofA)

	ofB, err := s.repos.Projects.FindByClientID(s.ctx, b.ID)
	s.Require().NoError(err)
	s.Len(ofB, 1)

	none, err := s.repos.Projects.FindByClientID(s.ctx, uuid.New())
	s.Require().NoError(err)
	s.NotNil(none)
	s.Empty(none)
}

func (s *RepositorySuite) TestProject_FindAllOrdered() {
	c := s.saveClient("a@x.com", true, 0)
	later := s.saveProject(c.ID, project.StatusOpen, 5)
	earlier := s.saveProject(c.ID, project.StatusOpen, 1)

	all, err := s.repos.Projects.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(earlier.ID, all[0].ID)
	s.Equal(later.ID, all[1].ID)
}

func (s *RepositorySuite) TestActivity_Finders() {
	c := s.saveClient("a@x.com", true, 0)
	p := s.saveProject(c.ID, project.StatusOpen, 1)
	other := s.saveProject(c.ID, project.StatusOpen, 2)

	pending := s.saveActivity(p.ID, false, 3)
	s.saveActivity(p.ID, true, 4)
	s.saveActivity(other.ID, false, 5)

	got, err := s.repos.Activities.FindByID(s.ctx, pending.ID)
	s.Require().NoError(err)
	s.Equal(pending.Title, got.Title)
	s.Equal(pending.Priority, got.Priority)
	s.InDelta(pending.EstimatedHours, got.EstimatedHours, 0.0001)
	s.Require().NotNil(got.DueDate)
	s.True(pending.DueDate.Equal(*got.DueDate))

	all, err := s.repos.Activities.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 3)

	ofP, err := s.repos.Activities.FindByProjectID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Len(ofP, 2)

	open, err := s.repos.Activities.FindByProjectIDAndCompletedFalse(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Require().Len(open, 1)
	s.Equal(pending.ID, open[0].ID)
}

func (s *RepositorySuite) TestActivity_ReparentAndDelete() {
	c := s.saveClient("a@x.com", true, 0)
	p := s.saveProject(c.ID, project.StatusOpen, 1)
	q := s.saveProject(c.ID, project.StatusOpen, 2)
	a := s.saveActivity(p.ID, false, 3)

	a.ProjectID = q.ID
	_, err := s.repos.Activities.Save(s.ctx, &a)
	s.Require().NoError(err)

	ofP, err := s.repos.Activities.FindByProjectID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Empty(ofP)

	ofQ, err := s.repos.Activities.FindByProjectID(s.ctx, q.ID)
	s.Require().NoError(err)
	s.Len(ofQ, 1)

	s.Require().NoError(s.repos.Activities.DeleteByID(s.ctx, a.ID))
	_, err = s.repos.Activities.FindByID(s.ctx, a.ID)
	s.ErrorIs(err, ports.ErrRecordNotFound)

	ofQ, err = s.repos.Activities.FindByProjectID(s.ctx, q.ID)
	s.Require().NoError(err)
	s.Empty(ofQ)
}
