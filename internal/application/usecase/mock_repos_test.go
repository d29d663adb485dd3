package usecase_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/canvacrancha/badge-api/internal/domain/entity"
)

// memTemplateRepo implementación en memoria con la misma unicidad (company, slot)
// que impone el almacenamiento real.
type memTemplateRepo struct {
	mu      sync.Mutex
	nextID  int64
	byID    map[int64]*entity.BadgeTemplate
	writes  int
	failErr error
}

func newMemTemplateRepo() *memTemplateRepo {
	return &memTemplateRepo{byID: map[int64]*entity.BadgeTemplate{}}
}

func (r *memTemplateRepo) UpsertByKey(_ context.Context, t *entity.BadgeTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return r.failErr
	}
	r.writes++
	for _, existing := range r.byID {
		if existing.CompanyID == t.CompanyID && existing.SlotNumber == t.SlotNumber {
			existing.TemplateName = t.TemplateName
			existing.FrontImage = t.FrontImage
			existing.BackImage = t.BackImage
			existing.Layout = t.Layout
			existing.UpdatedAt = t.UpdatedAt
			t.ID = existing.ID
			t.CreatedAt = existing.CreatedAt
			return nil
		}
	}
	r.nextID++
	t.ID = r.nextID
	stored := *t
	r.byID[t.ID] = &stored
	return nil
}

func (r *memTemplateRepo) FindByKey(_ context.Context, companyID string, slot int) (*entity.BadgeTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return nil, r.failErr
	}
	for _, t := range r.byID {
		if t.CompanyID == companyID && t.SlotNumber == slot {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memTemplateRepo) FindByOwner(_ context.Context, companyID string) ([]*entity.BadgeTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return nil, r.failErr
	}
	var out []*entity.BadgeTemplate
	for _, t := range r.byID {
		if t.CompanyID == companyID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SlotNumber < out[j].SlotNumber })
	return out, nil
}

func (r *memTemplateRepo) FindByID(_ context.Context, id int64) (*entity.BadgeTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return nil, r.failErr
	}
	t, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *memTemplateRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

// memEmployeeRepo funcionarios en memoria.
type memEmployeeRepo struct {
	items   []*entity.Employee
	failErr error
}

var errDBDown = errors.New("connection refused")

func (r *memEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	e.ID = int64(len(r.items) + 1)
	r.items = append(r.items, e)
	return nil
}

func (r *memEmployeeRepo) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	for _, e := range r.items {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *memEmployeeRepo) List(_ context.Context, company string) ([]*entity.Employee, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	var out []*entity.Employee
	for _, e := range r.items {
		if company == "" || e.CompanyName == company {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memEmployeeRepo) ListCompanyNames(_ context.Context) ([]string, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	seen := map[string]bool{}
	var out []string
	for _, e := range r.items {
		if e.CompanyName != "" && !seen[e.CompanyName] {
			seen[e.CompanyName] = true
			out = append(out, e.CompanyName)
		}
	}
	sort.Strings(out)
	return out, nil
}
