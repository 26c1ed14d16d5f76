package services

import (
	"strings"
	"time"

	"todo-manager/backend/internal/models"

	"gorm.io/gorm"
)

// TodoFilter narrows a listing. Empty fields are not applied.
type TodoFilter struct {
	Status   string
	Priority string
	Category string
	Search   string
}

type TodoStats struct {
	Total        int64 `json:"total"`
	Pending      int64 `json:"pending"`
	InProgress   int64 `json:"in_progress"`
	Completed    int64 `json:"completed"`
	HighPriority int64 `json:"high_priority"`
}

type TodoService interface {
	ListTodos(db *gorm.DB, filter TodoFilter) ([]models.Todo, error)
	GetTodoByID(db *gorm.DB, id int64) (models.Todo, error)
	CreateTodo(db *gorm.DB, todo *models.Todo) error
	UpdateTodo(db *gorm.DB, id int64, update models.TodoUpdate) (models.Todo, error)
	DeleteTodo(db *gorm.DB, id int64) error
	BatchDeleteTodos(db *gorm.DB, ids []int64) (int64, error)
	GetStats(db *gorm.DB) (TodoStats, error)
}

type TodoServiceImpl struct{}

func NewTodoService() *TodoServiceImpl {
	return &TodoServiceImpl{}
}

func (s *TodoServiceImpl) ListTodos(db *gorm.DB, filter TodoFilter) ([]models.Todo, error) {
	query := db.Model(&models.Todo{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	todos := make([]models.Todo, 0)
	if err := query.Order("created_at DESC").Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (s *TodoServiceImpl) GetTodoByID(db *gorm.DB, id int64) (models.Todo, error) {
	var todo models.Todo
	if err := db.First(&todo, id).Error; err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

func (s *TodoServiceImpl) CreateTodo(db *gorm.DB, todo *models.Todo) error {
	if todo.Status == "" {
		todo.Status = models.StatusPending
	}
	if todo.Priority == "" {
		todo.Priority = models.PriorityMedium
	}
	return db.Create(todo).Error
}

// UpdateTodo reads the row, merges the update and writes it back. The
// read and the write are separate statements; a concurrent delete in
// between surfaces as a store error, not a 404.
func (s *TodoServiceImpl) UpdateTodo(db *gorm.DB, id int64, update models.TodoUpdate) (models.Todo, error) {
	var todo models.Todo
	if err := db.First(&todo, id).Error; err != nil {
		return models.Todo{}, err
	}

	update.ApplyTo(&todo)
	todo.UpdatedAt = time.Now()

	if err := db.Save(&todo).Error; err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

func (s *TodoServiceImpl) DeleteTodo(db *gorm.DB, id int64) error {
	var todo models.Todo
	if err := db.First(&todo, id).Error; err != nil {
		return err
	}
	return db.Delete(&todo).Error
}

// BatchDeleteTodos removes every listed id and reports how many rows
// actually went away. Ids with no row are not an error.
func (s *TodoServiceImpl) BatchDeleteTodos(db *gorm.DB, ids []int64) (int64, error) {
	result := db.Where("id IN ?", ids).Delete(&models.Todo{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (s *TodoServiceImpl) GetStats(db *gorm.DB) (TodoStats, error) {
	var stats TodoStats
	err := db.Model(&models.Todo{}).
		Select("COUNT(*) AS total, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS pending, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS in_progress, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS completed, "+
			"COALESCE(SUM(CASE WHEN priority = ? THEN 1 ELSE 0 END), 0) AS high_priority",
			models.StatusPending, models.StatusInProgress, models.StatusCompleted, models.PriorityHigh).
		Scan(&stats).Error
	if err != nil {
		return TodoStats{}, err
	}
	return stats, nil
}
