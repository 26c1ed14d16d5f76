package services

import (
	"fmt"
	"time"

	"todo-manager/backend/internal/cache"
	"todo-manager/backend/internal/models"

	"gorm.io/gorm"
)

// CachedTodoService wraps a TodoService with the multilevel cache.
// Every write invalidates the list and stats entries, so cached reads
// never diverge from the uncached contract.
type CachedTodoService struct {
	todoService TodoService
	cache       *cache.MultiLevelCache
	todoTTL     time.Duration
	listTTL     time.Duration
}

func NewCachedTodoService(todoService TodoService, cacheInstance *cache.MultiLevelCache, todoTTL, listTTL time.Duration) *CachedTodoService {
	if todoTTL <= 0 {
		todoTTL = 30 * time.Minute
	}
	if listTTL <= 0 {
		listTTL = 5 * time.Minute
	}

	return &CachedTodoService{
		todoService: todoService,
		cache:       cacheInstance,
		todoTTL:     todoTTL,
		listTTL:     listTTL,
	}
}

func todoCacheKey(id int64) string {
	return fmt.Sprintf("todo:%d", id)
}

func listCacheKey(filter TodoFilter) string {
	return fmt.Sprintf("todos:list:%s:%s:%s:%s", filter.Status, filter.Priority, filter.Category, filter.Search)
}

const statsCacheKey = "todos:stats"

func (s *CachedTodoService) invalidate(id int64) {
	s.cache.Delete(todoCacheKey(id))
	s.cache.DeletePattern("todos:list:*")
	s.cache.Delete(statsCacheKey)
}

func (s *CachedTodoService) ListTodos(db *gorm.DB, filter TodoFilter) ([]models.Todo, error) {
	cacheKey := listCacheKey(filter)

	var cachedTodos []models.Todo
	if err := s.cache.Get(cacheKey, &cachedTodos); err == nil {
		return cachedTodos, nil
	}

	todos, err := s.todoService.ListTodos(db, filter)
	if err != nil {
		return todos, err
	}

	s.cache.Set(cacheKey, todos, s.listTTL)

	return todos, nil
}

func (s *CachedTodoService) GetTodoByID(db *gorm.DB, id int64) (models.Todo, error) {
	cacheKey := todoCacheKey(id)

	var cachedTodo models.Todo
	if err := s.cache.Get(cacheKey, &cachedTodo); err == nil {
		return cachedTodo, nil
	}

	todo, err := s.todoService.GetTodoByID(db, id)
	if err != nil {
		return todo, err
	}

	s.cache.Set(cacheKey, todo, s.todoTTL)

	return todo, nil
}

func (s *CachedTodoService) CreateTodo(db *gorm.DB, todo *models.Todo) error {
	if err := s.todoService.CreateTodo(db, todo); err != nil {
		return err
	}

	s.cache.Set(todoCacheKey(todo.ID), *todo, s.todoTTL)
	s.cache.DeletePattern("todos:list:*")
	s.cache.Delete(statsCacheKey)

	return nil
}

func (s *CachedTodoService) UpdateTodo(db *gorm.DB, id int64, update models.TodoUpdate) (models.Todo, error) {
	todo, err := s.todoService.UpdateTodo(db, id, update)
	if err != nil {
		return todo, err
	}

	s.invalidate(id)
	s.cache.Set(todoCacheKey(id), todo, s.todoTTL)

	return todo, nil
}

func (s *CachedTodoService) DeleteTodo(db *gorm.DB, id int64) error {
	if err := s.todoService.DeleteTodo(db, id); err != nil {
		return err
	}

	s.invalidate(id)

	return nil
}

func (s *CachedTodoService) BatchDeleteTodos(db *gorm.DB, ids []int64) (int64, error) {
	deleted, err := s.todoService.BatchDeleteTodos(db, ids)
	if err != nil {
		return deleted, err
	}

	for _, id := range ids {
		s.cache.Delete(todoCacheKey(id))
	}
	s.cache.DeletePattern("todos:list:*")
	s.cache.Delete(statsCacheKey)

	return deleted, nil
}

func (s *CachedTodoService) GetStats(db *gorm.DB) (TodoStats, error) {
	var cachedStats TodoStats
	if err := s.cache.Get(statsCacheKey, &cachedStats); err == nil {
		return cachedStats, nil
	}

	stats, err := s.todoService.GetStats(db)
	if err != nil {
		return stats, err
	}

	s.cache.Set(statsCacheKey, stats, s.listTTL)

	return stats, nil
}
