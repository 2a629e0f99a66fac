package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tareas/internal/database"
	"tareas/internal/model"
)

// TaskListQuery selects a window of one owner's tasks.
type TaskListQuery struct {
	OwnerID uuid.UUID
	Search  string
	Offset  int
	Limit   int
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	ListByOwner(ctx context.Context, q TaskListQuery) ([]model.Task, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID, search string) (int64, error)
	CountIncomplete(ctx context.Context, ownerID uuid.UUID, search string) (int64, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task to the database
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID retrieves a task by its ID
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// ListByOwner returns the owner's tasks matching the search term, incomplete first.
func (r *TaskRepository) ListByOwner(ctx context.Context, q TaskListQuery) ([]model.Task, error) {
	var tasks []model.Task
	tx := r.owned(ctx, q.OwnerID, q.Search).
		Order("completed ASC").
		Order("created_at ASC").
		Order("id ASC")
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit).Offset(q.Offset)
	}
	if err := tx.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// CountByOwner counts the owner's tasks matching the search term
func (r *TaskRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID, search string) (int64, error) {
	var count int64
	err := r.owned(ctx, ownerID, search).Count(&count).Error
	return count, err
}

// CountIncomplete counts the not yet completed tasks inside the same filtered set
func (r *TaskRepository) CountIncomplete(ctx context.Context, ownerID uuid.UUID, search string) (int64, error) {
	var count int64
	err := r.owned(ctx, ownerID, search).Where("completed = ?", false).Count(&count).Error
	return count, err
}

// Update writes the editable columns of an existing task. Owner and creation
// time are never touched.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	result := r.db.WithContext(ctx).
		Model(task).
		Select("title", "description", "completed", "completed_at").
		Updates(task)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a task by its ID
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) owned(ctx context.Context, ownerID uuid.UUID, search string) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&model.Task{}).Where("owner_id = ?", ownerID)
	if search == "" {
		return tx
	}

	// both sides are folded by the same function so non-ASCII letters compare caselessly
	switch r.db.Dialector.Name() {
	case "postgres":
		return tx.Where(`title ILIKE ? ESCAPE '\'`, containsPattern(search))
	case "sqlite":
		return tx.Where(database.CaseFoldFunc+`(title) LIKE ? ESCAPE '\'`, containsPattern(database.CaseFold(search)))
	default:
		return tx.Where(`LOWER(title) LIKE LOWER(?) ESCAPE '\'`, containsPattern(search))
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a user supplied term into a LIKE pattern that matches
// the term literally anywhere in the value.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
