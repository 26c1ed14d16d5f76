package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"todo-manager/backend/internal/models"
)

func strPtr(s string) *string {
	return &s
}

func TestTodo_JSONShape(t *testing.T) {
	todo := models.Todo{
		ID:        1,
		Title:     "Write report",
		Status:    models.StatusPending,
		Priority:  models.PriorityMedium,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	data, err := json.Marshal(todo)
	if err != nil {
		t.Fatalf("Failed to marshal todo: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal todo: %v", err)
	}

	for _, key := range []string{"id", "title", "description", "status", "priority", "category", "due_date", "created_at", "updated_at"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("Expected key %q in JSON output", key)
		}
	}

	if decoded["description"] != nil {
		t.Errorf("Expected null description, got %v", decoded["description"])
	}
}

func TestField_Unmarshal(t *testing.T) {
	var update models.TodoUpdate
	body := `{"title": "New title", "description": null, "status": ""}`

	if err := json.Unmarshal([]byte(body), &update); err != nil {
		t.Fatalf("Failed to unmarshal update: %v", err)
	}

	if !update.Title.Present || update.Title.String() != "New title" {
		t.Errorf("Expected present title 'New title', got %+v", update.Title)
	}

	if !update.Description.Present {
		t.Error("Expected description to be present")
	}
	if update.Description.Value != nil {
		t.Errorf("Expected null description value, got %v", *update.Description.Value)
	}

	if !update.Status.Present || update.Status.String() != "" {
		t.Errorf("Expected present empty status, got %+v", update.Status)
	}

	if update.Priority.Present {
		t.Error("Expected omitted priority to be absent")
	}
	if update.DueDate.Present {
		t.Error("Expected omitted due_date to be absent")
	}
}

func TestTodoUpdate_ApplyTo(t *testing.T) {
	todo := models.Todo{
		ID:          7,
		Title:       "Original",
		Description: strPtr("keep or clear"),
		Status:      models.StatusPending,
		Priority:    models.PriorityMedium,
		Category:    strPtr("work"),
		DueDate:     strPtr("2026-09-01"),
	}

	var update models.TodoUpdate
	body := `{"status": "completed", "description": null, "title": ""}`
	if err := json.Unmarshal([]byte(body), &update); err != nil {
		t.Fatalf("Failed to unmarshal update: %v", err)
	}

	update.ApplyTo(&todo)

	if todo.Status != models.StatusCompleted {
		t.Errorf("Expected status 'completed', got %s", todo.Status)
	}

	// Empty title must not clobber the existing one.
	if todo.Title != "Original" {
		t.Errorf("Expected title to be preserved, got %s", todo.Title)
	}

	// Explicit null clears a nullable field.
	if todo.Description != nil {
		t.Errorf("Expected description to be cleared, got %v", *todo.Description)
	}

	// Omitted fields stay untouched.
	if todo.Category == nil || *todo.Category != "work" {
		t.Error("Expected category to be preserved")
	}
	if todo.DueDate == nil || *todo.DueDate != "2026-09-01" {
		t.Error("Expected due date to be preserved")
	}
	if todo.Priority != models.PriorityMedium {
		t.Errorf("Expected priority to be preserved, got %s", todo.Priority)
	}
}

func TestTodoUpdate_ApplyTo_SetNullable(t *testing.T) {
	todo := models.Todo{ID: 8, Title: "Original"}

	var update models.TodoUpdate
	body := `{"category": "errands", "due_date": "2026-10-01"}`
	if err := json.Unmarshal([]byte(body), &update); err != nil {
		t.Fatalf("Failed to unmarshal update: %v", err)
	}

	update.ApplyTo(&todo)

	if todo.Category == nil || *todo.Category != "errands" {
		t.Error("Expected category to be set")
	}
	if todo.DueDate == nil || *todo.DueDate != "2026-10-01" {
		t.Error("Expected due date to be set")
	}
}
