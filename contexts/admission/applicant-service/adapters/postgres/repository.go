package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"meridian/contexts/admission/applicant-service/domain/entities"
	domainerrors "meridian/contexts/admission/applicant-service/domain/errors"
	"meridian/contexts/admission/applicant-service/ports"

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

func (r *Repository) CreateApplicant(ctx context.Context, applicant entities.Applicant) error {
	row := applicantModelFromEntity(applicant)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&applicantModel{}).
			Where("auth_id = ?", row.AuthID).
			Count(&existing).
			Error; err != nil {
			return err
		}
		if existing > 0 {
			return domainerrors.ErrDuplicateApplicant
		}
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrDuplicateApplicant
			}
			return err
		}
		return nil
	})
}

func (r *Repository) UpdateApplicant(ctx context.Context, applicant entities.Applicant) error {
	row := applicantModelFromEntity(applicant)
	result := r.db.WithContext(ctx).
		Model(&applicantModel{}).
		Where("id = ?", row.ID).
		Updates(applicantUpdates(row))
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrDuplicateApplicant
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrApplicantNotFound
	}
	return nil
}

func (r *Repository) GetApplicant(ctx context.Context, id string) (entities.Applicant, error) {
	return r.getByColumn(ctx, "id", strings.TrimSpace(id))
}

func (r *Repository) GetApplicantByAuthID(ctx context.Context, authID string) (entities.Applicant, error) {
	return r.getByColumn(ctx, "auth_id", strings.TrimSpace(authID))
}

func (r *Repository) getByColumn(ctx context.Context, column string, value string) (entities.Applicant, error) {
	var row applicantModel
	err := r.db.WithContext(ctx).
		Where(column+" = ?", value).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Applicant{}, domainerrors.ErrApplicantNotFound
		}
		return entities.Applicant{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListApplicants(
	ctx context.Context,
	filter ports.ApplicantFilter,
	opts ports.ListOptions,
) ([]entities.Applicant, int64, error) {
	tx := r.db.WithContext(ctx).Model(&applicantModel{})
	if filter.Status != nil {
		tx = tx.Where("application_status = ?", int(*filter.Status))
	}
	if filter.University != "" {
		tx = tx.Where("university = ?", filter.University)
	}
	if filter.Country != "" {
		tx = tx.Where("country = ?", filter.Country)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx = tx.Order(orderClause(opts))
	if opts.Limit > 0 {
		tx = tx.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		tx = tx.Offset(opts.Offset)
	}

	var rows []applicantModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	items := make([]entities.Applicant, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, total, nil
}

func (r *Repository) DeleteApplicant(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(id)).
		Delete(&applicantModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrApplicantNotFound
	}
	return nil
}

// NextForReviewer reads committed state only: an applicant that reached the
// review cap in a committed transaction is excluded, in-flight reviews are
// not. Both exclusions are expressed as NOT IN subqueries over reviews.
func (r *Repository) NextForReviewer(
	ctx context.Context,
	reviewerAuthID string,
	limit int,
) ([]entities.Applicant, error) {
	capped := r.db.Model(&reviewRow{}).
		Select("applicant_id").
		Group("applicant_id").
		Having("COUNT(*) >= ?", r.reviewLimit)
	seen := r.db.Model(&reviewRow{}).
		Select("applicant_id").
		Where("created_by_auth_id = ?", reviewerAuthID)

	var rows []applicantModel
	err := r.db.WithContext(ctx).
		Model(&applicantModel{}).
		Where("application_status = ?", int(entities.StatusApplied)).
		Where("id NOT IN (?)", capped).
		Where("id NOT IN (?)", seen).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.Applicant, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

type applicantModel struct {
	ID               string    `gorm:"column:id;primaryKey"`
	AuthID           string    `gorm:"column:auth_id;uniqueIndex"`
	FullName         string    `gorm:"column:full_name"`
	Email            string    `gorm:"column:email"`
	Age              int       `gorm:"column:age"`
	Gender           string    `gorm:"column:gender"`
	Nationality      string    `gorm:"column:nationality"`
	Country          string    `gorm:"column:country"`
	City             string    `gorm:"column:city"`
	University       string    `gorm:"column:university"`
	Degree           string    `gorm:"column:degree"`
	StudyYear        string    `gorm:"column:study_year"`
	WorkArea         string    `gorm:"column:work_area"`
	Dietary          string    `gorm:"column:dietary"`
	TShirtSize       string    `gorm:"column:tshirt_size"`
	HearAboutUs      string    `gorm:"column:hear_about_us"`
	Skills           string    `gorm:"column:skills"`
	Motivation       string    `gorm:"column:motivation"`
	PastProjects     string    `gorm:"column:past_projects"`
	HardwareRequests string    `gorm:"column:hardware_requests"`
	HackathonCount   *int      `gorm:"column:hackathon_count"`
	CVKey            string    `gorm:"column:cv_key"`
	Status           int       `gorm:"column:application_status"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (applicantModel) TableName() string { return "applicants" }

// reviewRow is a read-only projection of the review table owned by the review
// service; the assignment query only ever filters on these two columns.
type reviewRow struct {
	ApplicantID     string `gorm:"column:applicant_id"`
	CreatedByAuthID string `gorm:"column:created_by_auth_id"`
}

func (reviewRow) TableName() string { return "reviews" }

func applicantModelFromEntity(applicant entities.Applicant) applicantModel {
	return applicantModel{
		ID:               strings.TrimSpace(applicant.ID),
		AuthID:           strings.TrimSpace(applicant.AuthID),
		FullName:         applicant.FullName,
		Email:            applicant.Email,
		Age:              applicant.Age,
		Gender:           string(applicant.Gender),
		Nationality:      applicant.Nationality,
		Country:          applicant.Country,
		City:             applicant.City,
		University:       applicant.University,
		Degree:           applicant.Degree,
		StudyYear:        applicant.StudyYear,
		WorkArea:         applicant.WorkArea,
		Dietary:          applicant.Dietary,
		TShirtSize:       string(applicant.TShirtSize),
		HearAboutUs:      applicant.HearAboutUs,
		Skills:           applicant.Skills,
		Motivation:       applicant.Motivation,
		PastProjects:     applicant.PastProjects,
		HardwareRequests: applicant.HardwareRequests,
		HackathonCount:   applicant.HackathonCount,
		CVKey:            applicant.CVKey,
		Status:           int(applicant.Status),
		CreatedAt:        applicant.CreatedAt.UTC(),
		UpdatedAt:        applicant.UpdatedAt.UTC(),
	}
}

// applicantUpdates is passed to gorm Updates as a map so zero values (for
// example a cleared CV key or status Applied) are still written.
func applicantUpdates(row applicantModel) map[string]interface{} {
	return map[string]interface{}{
		"auth_id":            row.AuthID,
		"full_name":          row.FullName,
		"email":              row.Email,
		"age":                row.Age,
		"gender":             row.Gender,
		"nationality":        row.Nationality,
		"country":            row.Country,
		"city":               row.City,
		"university":         row.University,
		"degree":             row.Degree,
		"study_year":         row.StudyYear,
		"work_area":          row.WorkArea,
		"dietary":            row.Dietary,
		"tshirt_size":        row.TShirtSize,
		"hear_about_us":      row.HearAboutUs,
		"skills":             row.Skills,
		"motivation":         row.Motivation,
		"past_projects":      row.PastProjects,
		"hardware_requests":  row.HardwareRequests,
		"hackathon_count":    row.HackathonCount,
		"cv_key":             row.CVKey,
		"application_status": row.Status,
		"updated_at":         row.UpdatedAt,
	}
}

func (m applicantModel) toEntity() entities.Applicant {
	return entities.Applicant{
		ID:               m.ID,
		AuthID:           m.AuthID,
		FullName:         m.FullName,
		Email:            m.Email,
		Age:              m.Age,
		Gender:           entities.Gender(m.Gender),
		Nationality:      m.Nationality,
		Country:          m.Country,
		City:             m.City,
		University:       m.University,
		Degree:           m.Degree,
		StudyYear:        m.StudyYear,
		WorkArea:         m.WorkArea,
		Dietary:          m.Dietary,
		TShirtSize:       entities.TShirtSize(m.TShirtSize),
		HearAboutUs:      m.HearAboutUs,
		Skills:           m.Skills,
		Motivation:       m.Motivation,
		PastProjects:     m.PastProjects,
		HardwareRequests: m.HardwareRequests,
		HackathonCount:   m.HackathonCount,
		CVKey:            m.CVKey,
		Status:           entities.ApplicationStatus(m.Status),
		CreatedAt:        m.CreatedAt.UTC(),
		UpdatedAt:        m.UpdatedAt.UTC(),
	}
}

func orderClause(opts ports.ListOptions) string {
	column := "created_at"
	switch opts.OrderBy {
	case "university", "country", "full_name", "application_status", "created_at":
		column = opts.OrderBy
	}
	if opts.Descending {
		return column + " DESC"
	}
	return column + " ASC"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
