package models

import "encoding/json"

// Field records whether a key was sent in a request body at all, so an
// explicit null can be told apart from an omitted key.
type Field struct {
	Present bool
	Value   *string
}

func (f *Field) UnmarshalJSON(data []byte) error {
	f.Present = true
	if string(data) == "null" {
		f.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	f.Value = &s
	return nil
}

// String returns the carried value, or the empty string for a null.
func (f Field) String() string {
	if f.Value == nil {
		return ""
	}
	return *f.Value
}

// TodoUpdate is the body of a PUT request. Every key is optional.
type TodoUpdate struct {
	Title       Field `json:"title"`
	Description Field `json:"description"`
	Status      Field `json:"status"`
	Priority    Field `json:"priority"`
	Category    Field `json:"category"`
	DueDate     Field `json:"due_date"`
}

// ApplyTo merges the update into an existing todo. Title, status and
// priority override only when sent non-empty; description, category and
// due date override whenever the key was sent, so an explicit null
// clears them.
func (u TodoUpdate) ApplyTo(todo *Todo) {
	if u.Title.Present && u.Title.String() != "" {
		todo.Title = u.Title.String()
	}
	if u.Status.Present && u.Status.String() != "" {
		todo.Status = u.Status.String()
	}
	if u.Priority.Present && u.Priority.String() != "" {
		todo.Priority = u.Priority.String()
	}
	if u.Description.Present {
		todo.Description = u.Description.Value
	}
	if u.Category.Present {
		todo.Category = u.Category.Value
	}
	if u.DueDate.Present {
		todo.DueDate = u.DueDate.Value
	}
}
