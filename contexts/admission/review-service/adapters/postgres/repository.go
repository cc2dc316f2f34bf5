package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"meridian/contexts/admission/review-service/domain/entities"
	domainerrors "meridian/contexts/admission/review-service/domain/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const defaultReviewLimit = 2

type Repository struct {
	db          *gorm.DB
	reviewLimit int
	logger      *slog.Logger
}

func NewRepository(db *gorm.DB, reviewLimit int, logger *slog.Logger) *Repository {
	if reviewLimit <= 0 {
		reviewLimit = defaultReviewLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:          db,
		reviewLimit: reviewLimit,
		logger:      logger,
	}
}

// CreateReview runs the pair-uniqueness check and the committed review cap
// check in the same transaction as the insert, so two racing submissions
// resolve to exactly one stored row. The unique index on
// (applicant_id, created_by_auth_id) backs the check against writers that
// committed between the count and the insert.
func (r *Repository) CreateReview(ctx context.Context, review entities.Review) error {
	row := reviewModelFromEntity(review)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pairCount int64
		if err := tx.Model(&reviewModel{}).
			Where("applicant_id = ?", row.ApplicantID).
			Where("created_by_auth_id = ?", row.CreatedByAuthID).
			Count(&pairCount).
			Error; err != nil {
			return err
		}
		if pairCount > 0 {
			return domainerrors.ErrDuplicateReview
		}

		var total int64
		if err := tx.Model(&reviewModel{}).
			Where("applicant_id = ?", row.ApplicantID).
			Count(&total).
			Error; err != nil {
			return err
		}
		if total >= int64(r.reviewLimit) {
			return domainerrors.ErrReviewLimitReached
		}

		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrDuplicateReview
			}
			return err
		}
		return nil
	})
}

func (r *Repository) GetReview(
	ctx context.Context,
	applicantID string,
	reviewerAuthID string,
) (entities.Review, error) {
	var row reviewModel
	err := r.db.WithContext(ctx).
		Where("applicant_id = ?", strings.TrimSpace(applicantID)).
		Where("created_by_auth_id = ?", strings.TrimSpace(reviewerAuthID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Review{}, domainerrors.ErrReviewNotFound
		}
		return entities.Review{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListForApplicant(ctx context.Context, applicantID string) ([]entities.Review, error) {
	var rows []reviewModel
	err := r.db.WithContext(ctx).
		Where("applicant_id = ?", strings.TrimSpace(applicantID)).
		Order("created_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]entities.Review, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) CountForApplicant(ctx context.Context, applicantID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("applicant_id = ?", strings.TrimSpace(applicantID)).
		Count(&total).
		Error
	return total, err
}

type reviewModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	ApplicantID     string    `gorm:"column:applicant_id;uniqueIndex:idx_reviews_pair"`
	CreatedByAuthID string    `gorm:"column:created_by_auth_id;uniqueIndex:idx_reviews_pair"`
	AverageScore    float64   `gorm:"column:average_score"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func reviewModelFromEntity(review entities.Review) reviewModel {
	return reviewModel{
		ID:              strings.TrimSpace(review.ID),
		ApplicantID:     strings.TrimSpace(review.ApplicantID),
		CreatedByAuthID: strings.TrimSpace(review.CreatedByAuthID),
		AverageScore:    review.AverageScore,
		CreatedAt:       review.CreatedAt.UTC(),
	}
}

func (m reviewModel) toEntity() entities.Review {
	return entities.Review{
		ID:              m.ID,
		ApplicantID:     m.ApplicantID,
		CreatedByAuthID: m.CreatedByAuthID,
		AverageScore:    m.AverageScore,
		CreatedAt:       m.CreatedAt.UTC(),
	}
}

// UUIDGenerator creates UUIDv4 identifiers for stored reviews.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

// SystemClock satisfies the Clock port with wall time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
