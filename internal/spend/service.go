package spend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=spend
type Repository interface {
	ListSpends(ctx context.Context, userID uuid.UUID) ([]*Spend, error)
	CreateSpend(ctx context.Context, userID uuid.UUID, sp *Spend) error
	UpdateType(ctx context.Context, userID, id uuid.UUID, typ Type) error

	BeginImport(ctx context.Context, userID uuid.UUID, minDate, maxDate time.Time) (ImportTx, error)
}

type ImportTx interface {
	FindDuplicates(ctx context.Context, params []LogParams) ([]*Spend, error)
	CreateSpends(ctx context.Context, spends []*Spend) error
	Commit() error
	Rollback() error
}

// RateProvider supplies the current annual interest-rate assumption used
// for every projection. The rate is a global setting, never a per-record
// snapshot.
type RateProvider interface {
	Rate() float64
}

// Service owns the authoritative in-memory list of one user's spends.
// Mutations go to the repository first; the list is only touched once the
// repository call succeeds, so a failed request leaves it unchanged.
type Service struct {
	repo   Repository
	rates  RateProvider
	userID uuid.UUID
	now    func() time.Time

	mu     sync.Mutex
	spends []*Spend
}

type Option func(*Service)

// WithClock overrides the service clock. Tests use it to fix "today" for
// streak and monthly derivations.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a store for the given user. A uuid.Nil user means no
// one is signed in: the list stays empty and mutations are rejected.
func NewService(repo Repository, rates RateProvider, userID uuid.UUID, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		rates:  rates,
		userID: userID,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load fetches the user's records from the repository, most recent first.
func (s *Service) Load(ctx context.Context) error {
	if s.userID == uuid.Nil {
		return nil
	}

	spends, err := s.repo.ListSpends(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("loading spends: %w", err)
	}

	s.mu.Lock()
	s.spends = spends
	s.mu.Unlock()

	return nil
}

type LogParams struct {
	Amount      float64
	Category    Category
	Mood        Mood
	Date        time.Time
	Description string
}

func (p LogParams) validate() error {
	if p.Amount <= 0 {
		return ErrInvalidAmount
	}

	if _, err := ParseCategory(string(p.Category)); err != nil {
		return err
	}

	if _, err := ParseMood(string(p.Mood)); err != nil {
		return err
	}

	return nil
}

// Log records a new spend. The repository assigns the id and creation
// timestamp; the record starts unclassified.
func (s *Service) Log(ctx context.Context, params LogParams) (*Spend, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	if s.userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	sp := &Spend{
		Amount:      params.Amount,
		Category:    params.Category,
		Mood:        params.Mood,
		Date:        params.Date,
		Description: params.Description,
	}

	if err := s.repo.CreateSpend(ctx, s.userID, sp); err != nil {
		return nil, fmt.Errorf("creating spend: %w", err)
	}

	s.mu.Lock()
	s.spends = append([]*Spend{sp}, s.spends...)
	s.mu.Unlock()

	return sp, nil
}

// Classify sets the need/want/impulse type on an existing record.
func (s *Service) Classify(ctx context.Context, id uuid.UUID, typ Type) error {
	if _, err := ParseType(string(typ)); err != nil {
		return err
	}

	if s.userID == uuid.Nil {
		return ErrUnauthenticated
	}

	s.mu.Lock()
	var target *Spend

	for _, sp := range s.spends {
		if sp.ID == id {
			target = sp
			break
		}
	}
	s.mu.Unlock()

	if target == nil {
		return ErrNotFound
	}

	if err := s.repo.UpdateType(ctx, s.userID, id, typ); err != nil {
		return fmt.Errorf("updating spend type: %w", err)
	}

	s.mu.Lock()
	target.Type = typ
	s.mu.Unlock()

	return nil
}

// List returns the records most recent first.
func (s *Service) List() []*Spend {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Spend, len(s.spends))
	copy(out, s.spends)

	return out
}

// Rate exposes the current interest-rate assumption to callers that need
// to show projections next to individual records.
func (s *Service) Rate() float64 {
	return s.rates.Rate()
}

// MonthlyStats recomputes the current month's snapshot from the full list.
// There is no caching; every call reduces the list again.
func (s *Service) MonthlyStats() MonthlyStats {
	return ComputeMonthly(s.List(), s.rates.Rate(), s.now())
}

// Streak reports the completed impulse-free days ending yesterday.
func (s *Service) Streak() int {
	return StreakDays(s.List(), s.now())
}

type ImportResult struct {
	Imported  []*Spend
	New       []LogParams
	Conflicts []Conflict
}

type Conflict struct {
	Incoming LogParams
	Existing *Spend
}

// ImportBatch inserts a batch of restored records, reporting rather than
// silently re-inserting anything that looks like a duplicate of an
// existing record on the same day.
func (s *Service) ImportBatch(ctx context.Context, params []LogParams) (*ImportResult, error) {
	if len(params) == 0 {
		return &ImportResult{}, nil
	}

	if s.userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	for _, p := range params {
		if err := p.validate(); err != nil {
			return nil, err
		}
	}

	minDate, maxDate := dateRange(params)

	itx, err := s.repo.BeginImport(ctx, s.userID, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	duplicates, err := itx.FindDuplicates(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("find duplicates: %w", err)
	}

	lookup := make(map[dupKey]*Spend, len(duplicates))
	for _, d := range duplicates {
		lookup[dupKeyOf(d.Date, d.Amount, d.Category, d.Description)] = d
	}

	var newParams []LogParams

	var conflicts []Conflict

	for _, p := range params {
		existing, found := lookup[dupKeyOf(p.Date, p.Amount, p.Category, p.Description)]
		if found {
			conflicts = append(conflicts, Conflict{Incoming: p, Existing: existing})
			continue
		}

		newParams = append(newParams, p)
	}

	if len(conflicts) > 0 {
		return &ImportResult{New: newParams, Conflicts: conflicts}, nil
	}

	spends := paramsToSpends(newParams)
	if err := itx.CreateSpends(ctx, spends); err != nil {
		return nil, fmt.Errorf("create spends: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	s.mu.Lock()
	s.spends = append(spends, s.spends...)
	s.mu.Unlock()

	return &ImportResult{Imported: spends}, nil
}

// CreateBatch inserts the given records without duplicate detection. The
// import confirmation flow uses it after the user has reviewed conflicts.
func (s *Service) CreateBatch(ctx context.Context, params []LogParams) ([]*Spend, error) {
	if len(params) == 0 {
		return nil, nil
	}

	if s.userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	for _, p := range params {
		if err := p.validate(); err != nil {
			return nil, err
		}
	}

	minDate, maxDate := dateRange(params)

	itx, err := s.repo.BeginImport(ctx, s.userID, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	spends := paramsToSpends(params)
	if err := itx.CreateSpends(ctx, spends); err != nil {
		return nil, fmt.Errorf("create spends: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	s.mu.Lock()
	s.spends = append(spends, s.spends...)
	s.mu.Unlock()

	return spends, nil
}

type dupKey struct {
	Date     string
	Amount   float64
	Category Category
	Desc     string
}

func dupKeyOf(date time.Time, amount float64, category Category, desc string) dupKey {
	return dupKey{
		Date:     date.Format(time.DateOnly),
		Amount:   amount,
		Category: category,
		Desc:     desc,
	}
}

func dateRange(params []LogParams) (time.Time, time.Time) {
	minDate := params[0].Date
	maxDate := params[0].Date

	for _, p := range params[1:] {
		if p.Date.Before(minDate) {
			minDate = p.Date
		}

		if p.Date.After(maxDate) {
			maxDate = p.Date
		}
	}

	return minDate, maxDate
}

func paramsToSpends(params []LogParams) []*Spend {
	spends := make([]*Spend, len(params))
	for i, p := range params {
		spends[i] = &Spend{
			Amount:      p.Amount,
			Category:    p.Category,
			Mood:        p.Mood,
			Date:        p.Date,
			Description: p.Description,
		}
	}

	return spends
}
