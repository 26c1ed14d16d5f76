package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"todo-manager/backend/internal/models"
	"todo-manager/backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TodoHandler struct {
	db          *gorm.DB
	todoService services.TodoService
}

func NewTodoHandler(db *gorm.DB, todoService services.TodoService) *TodoHandler {
	return &TodoHandler{db: db, todoService: todoService}
}

func (h *TodoHandler) ListTodos(c *gin.Context) {
	filter := services.TodoFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	// "all" is what the frontend filter dropdowns send for no filter.
	if filter.Status == "all" {
		filter.Status = ""
	}
	if filter.Priority == "all" {
		filter.Priority = ""
	}

	todos, err := h.todoService.ListTodos(h.db, filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list todos", err)
		return
	}
	respondSuccess(c, http.StatusOK, "", todos)
}

func (h *TodoHandler) GetTodoByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	todo, err := h.todoService.GetTodoByID(h.db, id)
	if err != nil {
		handleTodoError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "", todo)
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var todoInput struct {
		Title       string  `json:"title" binding:"required"`
		Description *string `json:"description"`
		Status      string  `json:"status"`
		Priority    string  `json:"priority"`
		Category    *string `json:"category"`
		DueDate     *string `json:"due_date"`
	}
	if err := c.ShouldBindJSON(&todoInput); err != nil {
		respondError(c, http.StatusBadRequest, "title is required", err)
		return
	}

	todo := models.Todo{
		Title:       todoInput.Title,
		Description: todoInput.Description,
		Status:      todoInput.Status,
		Priority:    todoInput.Priority,
		Category:    todoInput.Category,
		DueDate:     todoInput.DueDate,
	}
	if err := h.todoService.CreateTodo(h.db, &todo); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create todo", err)
		return
	}
	respondSuccess(c, http.StatusCreated, "todo created successfully", todo)
}

func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var update models.TodoUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	todo, err := h.todoService.UpdateTodo(h.db, id, update)
	if err != nil {
		handleTodoError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "todo updated successfully", todo)
}

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.todoService.DeleteTodo(h.db, id); err != nil {
		handleTodoError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "todo deleted successfully", nil)
}

func (h *TodoHandler) BatchDeleteTodos(c *gin.Context) {
	var batchInput struct {
		IDs []int64 `json:"ids"`
	}
	if err := c.ShouldBindJSON(&batchInput); err != nil {
		respondError(c, http.StatusBadRequest, "please provide the ids of the todos to delete", err)
		return
	}
	if len(batchInput.IDs) == 0 {
		respondError(c, http.StatusBadRequest, "please provide the ids of the todos to delete", nil)
		return
	}

	deleted, err := h.todoService.BatchDeleteTodos(h.db, batchInput.IDs)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete todos", err)
		return
	}
	respondSuccess(c, http.StatusOK, fmt.Sprintf("deleted %d todos", deleted), gin.H{"deleted": deleted})
}

func (h *TodoHandler) GetStats(c *gin.Context) {
	stats, err := h.todoService.GetStats(h.db)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to compute stats", err)
		return
	}
	respondSuccess(c, http.StatusOK, "", stats)
}

func handleTodoError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, "todo does not exist", nil)
	} else {
		respondError(c, http.StatusInternalServerError, "failed to process todo request", err)
	}
}
