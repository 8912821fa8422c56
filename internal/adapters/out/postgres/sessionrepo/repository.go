package sessionrepo

import (
	"context"
	"errors"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/session"
	"lytefood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSessionRepository implements SessionRepository using GORM.
type GormSessionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSessionRepository creates a new GORM session repository.
func NewGormSessionRepository(db *gorm.DB, tracker aggregateTracker) *GormSessionRepository {
	return &GormSessionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new session to the database.
func (r *GormSessionRepository) Add(ctx context.Context, id kernel.UUID, user *session.User) error {
	if err := errors.Join(id.Validate(), user.Validate()); err != nil {
		return err
	}

	dto, err := fromDomain(id, user)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(id, user)
	return nil
}

// Get retrieves the user stored under a session identifier. A row whose
// payload no longer decodes is reported as not found, so a corrupt session
// degrades to anonymous instead of erroring the whole request.
func (r *GormSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("session", id.String())
		}
		return nil, err
	}

	user, err := toDomain(dto)
	if err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("session", id.String(), err)
	}

	return user, nil
}

// Delete removes a session. Absent sessions are ignored.
func (r *GormSessionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&SessionDTO{}, "id = ?", id.Value()).Error
}
