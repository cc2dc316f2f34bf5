package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"meridian/contexts/admission/applicant-service/domain/entities"
	domainerrors "meridian/contexts/admission/applicant-service/domain/errors"
	"meridian/contexts/admission/applicant-service/ports"

	"github.com/google/uuid"
)

const reviewLimit = 2

// ReviewLookup lets the in-memory applicant store apply the assignment
// exclusions without owning review state. The review service's memory store
// satisfies it.
type ReviewLookup interface {
	ReviewerSets() map[string]map[string]bool
}

type Store struct {
	mu sync.RWMutex

	applicants map[string]entities.Applicant
	reviews    ReviewLookup
}

func NewStore(seed []entities.Applicant, reviews ReviewLookup) *Store {
	applicants := make(map[string]entities.Applicant, len(seed))
	for _, item := range seed {
		applicants[item.ID] = item
	}
	return &Store{
		applicants: applicants,
		reviews:    reviews,
	}
}

func (s *Store) CreateApplicant(_ context.Context, applicant entities.Applicant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.applicants {
		if existing.AuthID == applicant.AuthID {
			return domainerrors.ErrDuplicateApplicant
		}
	}
	s.applicants[applicant.ID] = applicant
	return nil
}

func (s *Store) UpdateApplicant(_ context.Context, applicant entities.Applicant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.applicants[applicant.ID]; !exists {
		return domainerrors.ErrApplicantNotFound
	}
	s.applicants[applicant.ID] = applicant
	return nil
}

func (s *Store) GetApplicant(_ context.Context, id string) (entities.Applicant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.applicants[strings.TrimSpace(id)]
	if !exists {
		return entities.Applicant{}, domainerrors.ErrApplicantNotFound
	}
	return item, nil
}

func (s *Store) GetApplicantByAuthID(_ context.Context, authID string) (entities.Applicant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.applicants {
		if item.AuthID == strings.TrimSpace(authID) {
			return item, nil
		}
	}
	return entities.Applicant{}, domainerrors.ErrApplicantNotFound
}

func (s *Store) ListApplicants(
	_ context.Context,
	filter ports.ApplicantFilter,
	opts ports.ListOptions,
) ([]entities.Applicant, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Applicant, 0, len(s.applicants))
	for _, item := range s.applicants {
		if filter.Status != nil && item.Status != *filter.Status {
			continue
		}
		if filter.University != "" && item.University != filter.University {
			continue
		}
		if filter.Country != "" && item.Country != filter.Country {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if opts.Descending {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	total := int64(len(items))
	if opts.Offset > 0 {
		if opts.Offset >= len(items) {
			return nil, total, nil
		}
		items = items[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(items) {
		items = items[:opts.Limit]
	}
	return items, total, nil
}

func (s *Store) DeleteApplicant(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.applicants[strings.TrimSpace(id)]; !exists {
		return domainerrors.ErrApplicantNotFound
	}
	delete(s.applicants, strings.TrimSpace(id))
	return nil
}

func (s *Store) NextForReviewer(_ context.Context, reviewerAuthID string, limit int) ([]entities.Applicant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var reviewers map[string]map[string]bool
	if s.reviews != nil {
		reviewers = s.reviews.ReviewerSets()
	}

	eligible := make([]entities.Applicant, 0, len(s.applicants))
	for _, item := range s.applicants {
		if item.Status != entities.StatusApplied {
			continue
		}
		set := reviewers[item.ID]
		if len(set) >= reviewLimit {
			continue
		}
		if set[reviewerAuthID] {
			continue
		}
		eligible = append(eligible, item)
	}
	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].CreatedAt.Before(eligible[j].CreatedAt)
	})
	if limit > 0 && limit < len(eligible) {
		eligible = eligible[:limit]
	}
	return eligible, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

// ObjectStore is an in-memory ObjectStorage used for local boot and tests.
type ObjectStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewObjectStore() *ObjectStore {
	return &ObjectStore{blobs: make(map[string][]byte)}
}

func (o *ObjectStore) Upload(_ context.Context, key string, data []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.blobs[key] = append([]byte(nil), data...)
	return nil
}

func (o *ObjectStore) Delete(_ context.Context, key string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.blobs, key)
	return nil
}

func (o *ObjectStore) Get(key string) ([]byte, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	data, ok := o.blobs[key]
	return data, ok
}
