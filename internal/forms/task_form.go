package forms

import (
	"tareas/internal/i18n"
	"tareas/internal/model"
)

// TaskForm is shared by the create and edit pages.
type TaskForm struct {
	Title       string `form:"title" validate:"required,max=200"`
	Description string `form:"description"`
	Completed   string `form:"completed"`
}

// TaskFormFrom pre-fills the form with a stored task.
func TaskFormFrom(task *model.Task) TaskForm {
	f := TaskForm{Title: task.Title, Description: task.Description}
	if task.Completed {
		f.Completed = "on"
	}
	return f
}

func (f *TaskForm) IsCompleted() bool {
	return checkbox(f.Completed)
}

func (f *TaskForm) Validate(tr *i18n.Translator) Errors {
	f.Title = trim(f.Title)
	return check(f, tr)
}
