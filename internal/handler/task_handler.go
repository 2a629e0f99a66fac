package handler

import (
	"errors"
	"net/http"
	"time"

	"tareas/internal/forms"
	"tareas/internal/i18n"
	"tareas/internal/logger"
	"tareas/internal/middleware"
	"tareas/internal/model"
	"tareas/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskHandler struct {
	taskRepo repository.TaskRepositoryInterface
	// enforceOwnership hides other users' tasks from detail, edit and delete.
	enforceOwnership bool
	now              func() time.Time
}

func NewTaskHandler(taskRepo repository.TaskRepositoryInterface, enforceOwnership bool) *TaskHandler {
	return &TaskHandler{
		taskRepo:         taskRepo,
		enforceOwnership: enforceOwnership,
		now:              time.Now,
	}
}

// List shows the requester's tasks
//
// @Summary      List own tasks
// @Tags         Tasks
// @Produce      html
// @Param        area-buscar  query  string  false  "case-insensitive title filter"
// @Param        page         query  string  false  "page number or 'last'"
// @Success      200
// @Failure      404
// @Router       / [get]
func (h *TaskHandler) List(c *gin.Context) {
	principal, _ := middleware.CurrentUser(c)
	ctx := c.Request.Context()
	search := c.Query("area-buscar")

	total, err := h.taskRepo.CountByOwner(ctx, principal.UserID, search)
	if err != nil {
		serverError(c, "Failed to count tasks", err)
		return
	}

	incomplete, err := h.taskRepo.CountIncomplete(ctx, principal.UserID, search)
	if err != nil {
		serverError(c, "Failed to count incomplete tasks", err)
		return
	}

	page, err := paginate(c.Query("page"), total, tasksPerPage)
	if err != nil {
		notFound(c)
		return
	}

	tasks, err := h.taskRepo.ListByOwner(ctx, repository.TaskListQuery{
		OwnerID: principal.UserID,
		Search:  search,
		Offset:  page.Offset(),
		Limit:   page.PerPage,
	})
	if err != nil {
		serverError(c, "Failed to retrieve tasks", err)
		return
	}

	render(c, http.StatusOK, "task_list.html", gin.H{
		"Tasks":  tasks,
		"Count":  incomplete,
		"Search": search,
		"Page":   page,
	})
}

// Detail shows one task
//
// @Summary      Task detail
// @Tags         Tasks
// @Produce      html
// @Param        id  path  string  true  "task id"
// @Success      200
// @Failure      404
// @Router       /tarea/{id} [get]
func (h *TaskHandler) Detail(c *gin.Context) {
	task, ok := h.visibleTask(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "task_detail.html", gin.H{"Task": task})
}

func (h *TaskHandler) CreatePage(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "Create task", "/crear-tarea/", &forms.TaskForm{}, nil)
}

// Create stores a new task owned by the requester
//
// @Summary      Create task
// @Tags         Tasks
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        title        formData  string  true   "title"
// @Param        description  formData  string  false  "description"
// @Param        completed    formData  string  false  "checkbox"
// @Success      302
// @Router       /crear-tarea/ [post]
func (h *TaskHandler) Create(c *gin.Context) {
	principal, _ := middleware.CurrentUser(c)

	var form forms.TaskForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusOK, "Create task", "/crear-tarea/", &form, invalidForm(c))
		return
	}
	if errs := form.Validate(i18n.From(c)); errs.Any() {
		h.renderForm(c, http.StatusOK, "Create task", "/crear-tarea/", &form, errs)
		return
	}

	ownerID := principal.UserID
	task := &model.Task{
		OwnerID:     &ownerID,
		Title:       form.Title,
		Description: form.Description,
		Completed:   form.IsCompleted(),
	}
	if err := h.taskRepo.Create(c.Request.Context(), task); err != nil {
		serverError(c, "Failed to create task", err)
		return
	}

	logger.InfoContext(c.Request.Context(), "Task created", "task_id", task.ID.String(), "user_id", ownerID.String())
	c.Redirect(http.StatusFound, "/")
}

func (h *TaskHandler) EditPage(c *gin.Context) {
	task, ok := h.visibleTask(c)
	if !ok {
		return
	}
	form := forms.TaskFormFrom(task)
	h.renderForm(c, http.StatusOK, "Edit task", editPath(task.ID), &form, nil)
}

// Update edits a task. Submitting it as completed stamps completed_at.
//
// @Summary      Edit task
// @Tags         Tasks
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        id           path      string  true   "task id"
// @Param        title        formData  string  true   "title"
// @Param        description  formData  string  false  "description"
// @Param        completed    formData  string  false  "checkbox"
// @Success      302
// @Failure      404
// @Router       /editar-tarea/{id} [post]
func (h *TaskHandler) Update(c *gin.Context) {
	task, ok := h.visibleTask(c)
	if !ok {
		return
	}

	var form forms.TaskForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusOK, "Edit task", editPath(task.ID), &form, invalidForm(c))
		return
	}
	if errs := form.Validate(i18n.From(c)); errs.Any() {
		h.renderForm(c, http.StatusOK, "Edit task", editPath(task.ID), &form, errs)
		return
	}

	task.Title = form.Title
	task.Description = form.Description
	task.MarkCompleted(form.IsCompleted(), h.now())

	if err := h.taskRepo.Update(c.Request.Context(), task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			notFound(c)
			return
		}
		serverError(c, "Failed to update task", err)
		return
	}

	logger.InfoContext(c.Request.Context(), "Task updated", "task_id", task.ID.String(), "completed", task.Completed)
	c.Redirect(http.StatusFound, "/")
}

func (h *TaskHandler) DeletePage(c *gin.Context) {
	task, ok := h.visibleTask(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "task_confirm_delete.html", gin.H{"Task": task})
}

// Delete removes a task permanently
//
// @Summary      Delete task
// @Tags         Tasks
// @Param        id  path  string  true  "task id"
// @Success      302
// @Failure      404
// @Router       /eliminar-tarea/{id} [post]
func (h *TaskHandler) Delete(c *gin.Context) {
	var taskID uuid.UUID
	if h.enforceOwnership {
		task, ok := h.visibleTask(c)
		if !ok {
			return
		}
		taskID = task.ID
	} else {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			notFound(c)
			return
		}
		taskID = id
	}

	if err := h.taskRepo.Delete(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			notFound(c)
			return
		}
		serverError(c, "Failed to delete task", err)
		return
	}

	logger.InfoContext(c.Request.Context(), "Task deleted", "task_id", taskID.String())
	c.Redirect(http.StatusFound, "/")
}

// visibleTask loads the task named by :id and applies the ownership rule. It
// writes the not found page itself and reports false when the caller must stop.
func (h *TaskHandler) visibleTask(c *gin.Context) (*model.Task, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notFound(c)
		return nil, false
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			notFound(c)
		} else {
			serverError(c, "Failed to retrieve task", err)
		}
		return nil, false
	}

	if h.enforceOwnership {
		principal, _ := middleware.CurrentUser(c)
		if !task.IsOwnedBy(principal.UserID) {
			notFound(c)
			return nil, false
		}
	}
	return task, true
}

func (h *TaskHandler) renderForm(c *gin.Context, status int, heading, action string, form *forms.TaskForm, errs forms.Errors) {
	if errs == nil {
		errs = forms.Errors{}
	}
	render(c, status, "task_form.html", gin.H{
		"Heading": heading,
		"Action":  action,
		"Form":    form,
		"Errors":  errs,
	})
}

func editPath(id uuid.UUID) string {
	return "/editar-tarea/" + id.String()
}
