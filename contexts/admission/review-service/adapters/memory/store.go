package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"meridian/contexts/admission/review-service/domain/entities"
	domainerrors "meridian/contexts/admission/review-service/domain/errors"

	"github.com/google/uuid"
)

const defaultReviewLimit = 2

type Store struct {
	mu sync.RWMutex

	reviews     map[string]entities.Review
	reviewLimit int
}

func NewStore(seed []entities.Review) *Store {
	reviews := make(map[string]entities.Review, len(seed))
	for _, item := range seed {
		reviews[item.ID] = item
	}
	return &Store{
		reviews:     reviews,
		reviewLimit: defaultReviewLimit,
	}
}

func (s *Store) CreateReview(_ context.Context, review entities.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int
	for _, existing := range s.reviews {
		if existing.ApplicantID != review.ApplicantID {
			continue
		}
		if existing.CreatedByAuthID == review.CreatedByAuthID {
			return domainerrors.ErrDuplicateReview
		}
		total++
	}
	if total >= s.reviewLimit {
		return domainerrors.ErrReviewLimitReached
	}
	s.reviews[review.ID] = review
	return nil
}

func (s *Store) GetReview(_ context.Context, applicantID string, reviewerAuthID string) (entities.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.reviews {
		if item.ApplicantID == strings.TrimSpace(applicantID) &&
			item.CreatedByAuthID == strings.TrimSpace(reviewerAuthID) {
			return item, nil
		}
	}
	return entities.Review{}, domainerrors.ErrReviewNotFound
}

func (s *Store) ListForApplicant(_ context.Context, applicantID string) ([]entities.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Review, 0)
	for _, item := range s.reviews {
		if item.ApplicantID == strings.TrimSpace(applicantID) {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) CountForApplicant(_ context.Context, applicantID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, item := range s.reviews {
		if item.ApplicantID == strings.TrimSpace(applicantID) {
			total++
		}
	}
	return total, nil
}

// ReviewerSets exposes applicant -> reviewer membership for the applicant
// store's assignment exclusions.
func (s *Store) ReviewerSets() map[string]map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sets := make(map[string]map[string]bool)
	for _, item := range s.reviews {
		set, ok := sets[item.ApplicantID]
		if !ok {
			set = make(map[string]bool)
			sets[item.ApplicantID] = set
		}
		set[item.CreatedByAuthID] = true
	}
	return sets
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
