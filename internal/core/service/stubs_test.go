package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/venturehub/investment-api/internal/core/domain"
)

// In-memory repository stubs shared by the service tests.

var testLogger = zerolog.Nop()

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.InterestIDs = append([]string(nil), u.InterestIDs...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubProjectRepo struct {
	projects map[string]*domain.Project
	nextID   int
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*domain.Project)}
}

func cloneProject(p *domain.Project) *domain.Project {
	if p == nil {
		return nil
	}
	clone := *p
	clone.InterestIDs = append([]string(nil), p.InterestIDs...)
	return &clone
}

func (r *stubProjectRepo) Create(_ context.Context, project *domain.Project) (*domain.Project, error) {
	r.nextID++
	copy := cloneProject(project)
	copy.ID = fmt.Sprintf("project-%d", r.nextID)
	r.projects[copy.ID] = cloneProject(copy)
	return copy, nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return cloneProject(p), nil
}

func (r *stubProjectRepo) FindAll(_ context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, *cloneProject(p))
	}
	return out, nil
}

func (r *stubProjectRepo) FindByOwner(_ context.Context, ownerID string) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range r.projects {
		if p.OwnerID == ownerID {
			out = append(out, *cloneProject(p))
		}
	}
	return out, nil
}

func (r *stubProjectRepo) FindByInterests(_ context.Context, interestIDs []string) ([]domain.Project, error) {
	wanted := make(map[string]struct{}, len(interestIDs))
	for _, id := range interestIDs {
		wanted[id] = struct{}{}
	}
	var out []domain.Project
	for _, p := range r.projects {
		for _, id := range p.InterestIDs {
			if _, ok := wanted[id]; ok {
				out = append(out, *cloneProject(p))
				break
			}
		}
	}
	return out, nil
}

func (r *stubProjectRepo) Update(_ context.Context, project *domain.Project) (*domain.Project, error) {
	if _, ok := r.projects[project.ID]; !ok {
		return nil, domain.ErrProjectNotFound
	}
	r.projects[project.ID] = cloneProject(project)
	return cloneProject(project), nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

type stubInvestmentRepo struct {
	investments map[string]*domain.Investment
	nextID      int
}

func newStubInvestmentRepo() *stubInvestmentRepo {
	return &stubInvestmentRepo{investments: make(map[string]*domain.Investment)}
}

func (r *stubInvestmentRepo) Create(_ context.Context, investment *domain.Investment) (*domain.Investment, error) {
	r.nextID++
	copy := *investment
	copy.ID = fmt.Sprintf("investment-%d", r.nextID)
	stored := copy
	r.investments[copy.ID] = &stored
	return &copy, nil
}

func (r *stubInvestmentRepo) FindByID(_ context.Context, id string) (*domain.Investment, error) {
	inv, ok := r.investments[id]
	if !ok {
		return nil, domain.ErrInvestmentNotFound
	}
	copy := *inv
	return &copy, nil
}

func (r *stubInvestmentRepo) FindAll(_ context.Context) ([]domain.Investment, error) {
	out := make([]domain.Investment, 0, len(r.investments))
	for _, inv := range r.investments {
		out = append(out, *inv)
	}
	return out, nil
}

func (r *stubInvestmentRepo) FindByInvestor(_ context.Context, investorID string) ([]domain.Investment, error) {
	var out []domain.Investment
	for _, inv := range r.investments {
		if inv.InvestorID == investorID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *stubInvestmentRepo) FindByProject(_ context.Context, projectID string) ([]domain.Investment, error) {
	var out []domain.Investment
	for _, inv := range r.investments {
		if inv.ProjectID == projectID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *stubInvestmentRepo) FindByIdempotencyKey(_ context.Context, key string) (*domain.Investment, error) {
	for _, inv := range r.investments {
		if inv.IdempotencyKey == key {
			copy := *inv
			return &copy, nil
		}
	}
	return nil, domain.ErrInvestmentNotFound
}

func (r *stubInvestmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.investments[id]; !ok {
		return domain.ErrInvestmentNotFound
	}
	delete(r.investments, id)
	return nil
}

type stubInterestRepo struct {
	interests map[string]*domain.Interest
	nextID    int
}

func newStubInterestRepo() *stubInterestRepo {
	return &stubInterestRepo{interests: make(map[string]*domain.Interest)}
}

func (r *stubInterestRepo) Create(_ context.Context, interest *domain.Interest) (*domain.Interest, error) {
	r.nextID++
	copy := *interest
	copy.ID = fmt.Sprintf("interest-%d", r.nextID)
	stored := copy
	r.interests[copy.ID] = &stored
	return &copy, nil
}

func (r *stubInterestRepo) FindByID(_ context.Context, id string) (*domain.Interest, error) {
	in, ok := r.interests[id]
	if !ok {
		return nil, domain.ErrInterestNotFound
	}
	copy := *in
	return &copy, nil
}

func (r *stubInterestRepo) FindAll(_ context.Context) ([]domain.Interest, error) {
	out := make([]domain.Interest, 0, len(r.interests))
	for _, in := range r.interests {
		out = append(out, *in)
	}
	return out, nil
}

func (r *stubInterestRepo) Update(_ context.Context, interest *domain.Interest) (*domain.Interest, error) {
	if _, ok := r.interests[interest.ID]; !ok {
		return nil, domain.ErrInterestNotFound
	}
	copy := *interest
	r.interests[interest.ID] = &copy
	return interest, nil
}

func (r *stubInterestRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.interests[id]; !ok {
		return domain.ErrInterestNotFound
	}
	delete(r.interests, id)
	return nil
}

type stubDedup struct {
	seen map[string]bool
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) IsDuplicate(_ context.Context, key string) (bool, error) {
	return d.seen[key], nil
}

func (d *stubDedup) Mark(_ context.Context, key string) error {
	d.seen[key] = true
	return nil
}
