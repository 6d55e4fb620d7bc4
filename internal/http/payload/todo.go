package payload

import (
	"net/url"
	"strings"
	"time"
	"todolist/internal/core"

	"github.com/jellydator/validation"
)

const DateLayout = "2006-01-02"

// TodoForm is the body of the create and edit forms. Completed is only read by edit.
type TodoForm struct {
	Title       string
	Description string
	DueDate     string
	Completed   bool
}

func (t *TodoForm) BindForm(values url.Values) {
	t.Title = strings.TrimSpace(values.Get("title"))
	t.Description = values.Get("description")
	t.DueDate = strings.TrimSpace(values.Get("dueDate"))
	t.Completed = checkbox(values.Get("completed"))
}

func (t TodoForm) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&t.DueDate, validation.Required, validation.Date(DateLayout)),
	)
}

// ToMessage assumes Validate passed; an unparsable date becomes the zero time.
func (t TodoForm) ToMessage() core.TodoMessage {
	due, _ := time.Parse(DateLayout, t.DueDate)
	return core.TodoMessage{
		Title:       t.Title,
		Description: t.Description,
		DueDate:     due,
		Completed:   t.Completed,
	}
}

// checkbox coerces an HTML checkbox or select value to a bool.
func checkbox(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
