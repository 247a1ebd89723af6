package storage

import (
	"context"
	"strings"
	"sync"
	"time"

	"bizworth/backend/models"
)

// MemoryStore keeps everything in process memory. Data lives for the lifetime
// of the process; ids are assigned from per-entity counters starting at 1.
type MemoryStore struct {
	mu sync.RWMutex

	users           map[int64]*models.User
	companies       map[int64]*models.Company
	financials      map[int64][]*models.Financial
	employees       map[int64][]*models.Employee
	technologies    map[int64][]*models.Technology
	ownerIntents    map[int64][]*models.OwnerIntent
	valuations      map[int64][]*models.Valuation
	recommendations map[int64][]*models.Recommendation
	buyerMatches    map[int64][]*models.BuyerMatch
	documents       map[int64][]*models.Document

	nextID map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:           map[int64]*models.User{},
		companies:       map[int64]*models.Company{},
		financials:      map[int64][]*models.Financial{},
		employees:       map[int64][]*models.Employee{},
		technologies:    map[int64][]*models.Technology{},
		ownerIntents:    map[int64][]*models.OwnerIntent{},
		valuations:      map[int64][]*models.Valuation{},
		recommendations: map[int64][]*models.Recommendation{},
		buyerMatches:    map[int64][]*models.BuyerMatch{},
		documents:       map[int64][]*models.Document{},
		nextID:          map[string]int64{},
	}
}

func (s *MemoryStore) next(kind string) int64 {
	s.nextID[kind]++
	return s.nextID[kind]
}

func (s *MemoryStore) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.next("user")
	u.CreatedAt = time.Now()
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *MemoryStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateCompany(_ context.Context, co *models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	co.ID = s.next("company")
	co.CreatedAt = time.Now()
	cp := *co
	s.companies[co.ID] = &cp
	return nil
}

func (s *MemoryStore) GetCompany(_ context.Context, id int64) (*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	co, ok := s.companies[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *co
	return &cp, nil
}

func (s *MemoryStore) GetCompaniesByUser(_ context.Context, userID int64) ([]models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Company{}
	for _, co := range s.companies {
		if co.UserID == userID {
			out = append(out, *co)
		}
	}
	return out, nil
}

func (s *MemoryStore) EnsureCompany(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[id]; ok {
		return nil
	}
	if cur := s.nextID["company"]; id > cur {
		s.nextID["company"] = id
	}
	s.companies[id] = &models.Company{
		ID:        id,
		Name:      "Pending Company",
		CreatedAt: time.Now(),
	}
	return nil
}

func (s *MemoryStore) CreateFinancial(_ context.Context, f *models.Financial) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f.ID = s.next("financial")
	f.CreatedAt = time.Now()
	cp := *f
	s.financials[f.CompanyID] = append(s.financials[f.CompanyID], &cp)
	return nil
}

// Latest row wins: intake may be re-submitted and the newest values apply.
func (s *MemoryStore) GetFinancialByCompany(_ context.Context, companyID int64) (*models.Financial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := s.financials[companyID]
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	cp := *rows[len(rows)-1]
	return &cp, nil
}

func (s *MemoryStore) CreateEmployee(_ context.Context, e *models.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.next("employee")
	e.CreatedAt = time.Now()
	cp := *e
	s.employees[e.CompanyID] = append(s.employees[e.CompanyID], &cp)
	return nil
}

func (s *MemoryStore) GetEmployeeByCompany(_ context.Context, companyID int64) (*models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := s.employees[companyID]
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	cp := *rows[len(rows)-1]
	return &cp, nil
}

func (s *MemoryStore) CreateTechnology(_ context.Context, t *models.Technology) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.next("technology")
	t.CreatedAt = time.Now()
	cp := *t
	s.technologies[t.CompanyID] = append(s.technologies[t.CompanyID], &cp)
	return nil
}

func (s *MemoryStore) GetTechnologyByCompany(_ context.Context, companyID int64) (*models.Technology, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := s.technologies[companyID]
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	cp := *rows[len(rows)-1]
	return &cp, nil
}

func (s *MemoryStore) CreateOwnerIntent(_ context.Context, oi *models.OwnerIntent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	oi.ID = s.next("owner_intent")
	oi.CreatedAt = time.Now()
	cp := *oi
	s.ownerIntents[oi.CompanyID] = append(s.ownerIntents[oi.CompanyID], &cp)
	return nil
}

func (s *MemoryStore) GetOwnerIntentByCompany(_ context.Context, companyID int64) (*models.OwnerIntent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := s.ownerIntents[companyID]
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	cp := *rows[len(rows)-1]
	return &cp, nil
}

func (s *MemoryStore) CreateValuation(_ context.Context, v *models.Valuation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.next("valuation")
	v.CreatedAt = time.Now()
	cp := *v
	s.valuations[v.CompanyID] = append(s.valuations[v.CompanyID], &cp)
	return nil
}

// First match, not necessarily the latest.
func (s *MemoryStore) GetValuationByCompany(_ context.Context, companyID int64) (*models.Valuation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := s.valuations[companyID]
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	cp := *rows[0]
	return &cp, nil
}

func (s *MemoryStore) CreateRecommendation(_ context.Context, r *models.Recommendation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.next("recommendation")
	r.CreatedAt = time.Now()
	cp := *r
	s.recommendations[r.CompanyID] = append(s.recommendations[r.CompanyID], &cp)
	return nil
}

func (s *MemoryStore) GetRecommendationsByCompany(_ context.Context, companyID int64) ([]models.Recommendation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Recommendation{}
	for _, r := range s.recommendations[companyID] {
		out = append(out, *r)
	}
	return out, nil
}

func (s *MemoryStore) CreateBuyerMatch(_ context.Context, b *models.BuyerMatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = s.next("buyer_match")
	b.CreatedAt = time.Now()
	cp := *b
	s.buyerMatches[b.CompanyID] = append(s.buyerMatches[b.CompanyID], &cp)
	return nil
}

func (s *MemoryStore) GetBuyerMatchesByCompany(_ context.Context, companyID int64) ([]models.BuyerMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.BuyerMatch{}
	for _, b := range s.buyerMatches[companyID] {
		out = append(out, *b)
	}
	return out, nil
}

func (s *MemoryStore) CreateDocument(_ context.Context, d *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = s.next("document")
	d.CreatedAt = time.Now()
	cp := *d
	s.documents[d.CompanyID] = append(s.documents[d.CompanyID], &cp)
	return nil
}

func (s *MemoryStore) GetDocumentsByCompany(_ context.Context, companyID int64) ([]models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Document{}
	for _, d := range s.documents[companyID] {
		out = append(out, *d)
	}
	return out, nil
}
