package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"tareas/internal/handler"
	"tareas/internal/model"
	"tareas/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taskFixture struct {
	router *gin.Engine
	repo   *repository.TaskRepository
	ana    *model.User
	bruno  *model.User
	anaCk  *http.Cookie
}

func setupTaskTest(t *testing.T, enforceOwnership bool) *taskFixture {
	db := setupSQLiteDB(t)
	tokens := newTokens()
	r, protected := newEngine(t, tokens)

	repo := repository.NewTaskRepository(db)
	h := handler.NewTaskHandler(repo, enforceOwnership)
	protected.GET("/", h.List)
	protected.GET("/tarea/:id", h.Detail)
	protected.GET("/crear-tarea/", h.CreatePage)
	protected.POST("/crear-tarea/", h.Create)
	protected.GET("/editar-tarea/:id", h.EditPage)
	protected.POST("/editar-tarea/:id", h.Update)
	protected.GET("/eliminar-tarea/:id", h.DeletePage)
	protected.POST("/eliminar-tarea/:id", h.Delete)

	ana := createUser(t, db, "ana")
	return &taskFixture{
		router: r,
		repo:   repo,
		ana:    ana,
		bruno:  createUser(t, db, "bruno"),
		anaCk:  sessionCookie(t, tokens, ana),
	}
}

func (f *taskFixture) add(t *testing.T, owner *model.User, title string, completed bool) *model.Task {
	t.Helper()
	task := &model.Task{OwnerID: &owner.ID, Title: title, Completed: completed}
	require.NoError(t, f.repo.Create(context.Background(), task))
	return task
}

func (f *taskFixture) reload(t *testing.T, id uuid.UUID) *model.Task {
	t.Helper()
	task, err := f.repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	return task
}

func TestTaskList_ShowsOnlyOwnTasks(t *testing.T) {
	// Arrange
	f := setupTaskTest(t, false)
	f.add(t, f.ana, "Comprar pan", false)
	f.add(t, f.ana, "Pagar luz", true)
	f.add(t, f.bruno, "Tarea de Bruno", false)

	// Act
	resp := get(f.router, "/", f.anaCk)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Contains(t, body, "Comprar pan")
	assert.Contains(t, body, "Pagar luz")
	assert.NotContains(t, body, "Tarea de Bruno")
	assert.Contains(t, body, "You have 1 pending tasks")
}

func TestTaskList_Search(t *testing.T) {
	f := setupTaskTest(t, false)
	f.add(t, f.ana, "Comprar PAN", false)
	f.add(t, f.ana, "Pagar luz", false)

	resp := get(f.router, "/?area-buscar=pan", f.anaCk)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Comprar PAN")
	assert.NotContains(t, resp.Body.String(), "Pagar luz")
	assert.Contains(t, resp.Body.String(), "You have 1 pending tasks")
}

func TestTaskList_Pagination(t *testing.T) {
	f := setupTaskTest(t, false)
	for i := 1; i <= 12; i++ {
		f.add(t, f.ana, fmt.Sprintf("tarea-%02d", i), false)
	}

	tests := []struct {
		name     string
		page     string
		status   int
		contains string
	}{
		{"first page", "", http.StatusOK, "Page 1 of 2"},
		{"second page", "2", http.StatusOK, "Page 2 of 2"},
		{"last page", "last", http.StatusOK, "Page 2 of 2"},
		{"past the end", "3", http.StatusNotFound, "Page not found"},
		{"not a number", "abc", http.StatusNotFound, "Page not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(f.router, "/?page="+tt.page, f.anaCk)
			assert.Equal(t, tt.status, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.contains)
		})
	}
}

func TestTaskList_EmptyFirstPage(t *testing.T) {
	f := setupTaskTest(t, false)

	resp := get(f.router, "/?page=1", f.anaCk)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "You have 0 pending tasks")
}

func TestTaskList_RequiresLogin(t *testing.T) {
	f := setupTaskTest(t, false)

	resp := get(f.router, "/", nil)

	assert.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/login/?next=%2F", resp.Header().Get("Location"))
}

func TestTaskDetail_Ownership(t *testing.T) {
	tests := []struct {
		name    string
		enforce bool
		status  int
	}{
		{"visible without enforcement", false, http.StatusOK},
		{"hidden with enforcement", true, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupTaskTest(t, tt.enforce)
			other := f.add(t, f.bruno, "Tarea de Bruno", false)

			resp := get(f.router, "/tarea/"+other.ID.String(), f.anaCk)

			assert.Equal(t, tt.status, resp.Code)
		})
	}
}

func TestTaskDetail_NotFound(t *testing.T) {
	f := setupTaskTest(t, false)

	assert.Equal(t, http.StatusNotFound, get(f.router, "/tarea/"+uuid.NewString(), f.anaCk).Code)
	assert.Equal(t, http.StatusNotFound, get(f.router, "/tarea/42", f.anaCk).Code)
}

func TestTaskCreate_Success(t *testing.T) {
	f := setupTaskTest(t, false)

	resp := postForm(f.router, "/crear-tarea/", url.Values{
		"title":       {"  Regar plantas  "},
		"description": {"las del balcón"},
	}, f.anaCk)

	assert.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/", resp.Header().Get("Location"))

	tasks, err := f.repo.ListByOwner(context.Background(), repository.TaskListQuery{OwnerID: f.ana.ID})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Regar plantas", tasks[0].Title)
	assert.False(t, tasks[0].Completed)
	assert.True(t, tasks[0].IsOwnedBy(f.ana.ID))
}

func TestTaskCreate_EmptyTitle(t *testing.T) {
	f := setupTaskTest(t, false)

	resp := postForm(f.router, "/crear-tarea/", url.Values{"title": {"   "}}, f.anaCk)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "This field is required.")

	count, err := f.repo.CountByOwner(context.Background(), f.ana.ID, "")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTaskUpdate_CompletedAtIsKept(t *testing.T) {
	f := setupTaskTest(t, false)
	task := f.add(t, f.ana, "Llamar", false)
	path := "/editar-tarea/" + task.ID.String()

	resp := postForm(f.router, path, url.Values{"title": {"Llamar"}, "completed": {"on"}}, f.anaCk)
	require.Equal(t, http.StatusFound, resp.Code)

	done := f.reload(t, task.ID)
	assert.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)
	assert.False(t, done.CompletedAt.Before(done.CreatedAt.Add(-time.Second)))
	assert.True(t, done.IsOwnedBy(f.ana.ID))

	resp = postForm(f.router, path, url.Values{"title": {"Llamar otra vez"}}, f.anaCk)
	require.Equal(t, http.StatusFound, resp.Code)

	reopened := f.reload(t, task.ID)
	assert.False(t, reopened.Completed)
	assert.Equal(t, "Llamar otra vez", reopened.Title)
	require.NotNil(t, reopened.CompletedAt)
	assert.True(t, reopened.CompletedAt.Equal(*done.CompletedAt))
}

func TestTaskUpdate_InvalidKeepsStoredTask(t *testing.T) {
	f := setupTaskTest(t, false)
	task := f.add(t, f.ana, "Llamar", false)

	resp := postForm(f.router, "/editar-tarea/"+task.ID.String(), url.Values{"title": {""}}, f.anaCk)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Llamar", f.reload(t, task.ID).Title)
}

func TestTaskEditPage_Prefilled(t *testing.T) {
	f := setupTaskTest(t, false)
	task := f.add(t, f.ana, "Llamar", true)

	resp := get(f.router, "/editar-tarea/"+task.ID.String(), f.anaCk)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `value="Llamar"`)
	assert.Contains(t, resp.Body.String(), "checked")
}

func TestTaskDelete(t *testing.T) {
	f := setupTaskTest(t, false)
	task := f.add(t, f.ana, "Tirar basura", false)
	path := "/eliminar-tarea/" + task.ID.String()

	page := get(f.router, path, f.anaCk)
	assert.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Tirar basura")

	resp := postForm(f.router, path, url.Values{}, f.anaCk)
	assert.Equal(t, http.StatusFound, resp.Code)

	_, err := f.repo.GetByID(context.Background(), task.ID)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)

	again := postForm(f.router, path, url.Values{}, f.anaCk)
	assert.Equal(t, http.StatusNotFound, again.Code)
}

func TestTaskDelete_OtherUsersTask(t *testing.T) {
	tests := []struct {
		name    string
		enforce bool
		status  int
		removed bool
	}{
		{"unscoped without enforcement", false, http.StatusFound, true},
		{"hidden with enforcement", true, http.StatusNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupTaskTest(t, tt.enforce)
			other := f.add(t, f.bruno, "Tarea de Bruno", false)

			resp := postForm(f.router, "/eliminar-tarea/"+other.ID.String(), url.Values{}, f.anaCk)
			assert.Equal(t, tt.status, resp.Code)

			_, err := f.repo.GetByID(context.Background(), other.ID)
			if tt.removed {
				assert.ErrorIs(t, err, repository.ErrTaskNotFound)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTaskUpdate_OtherUsersTask(t *testing.T) {
	tests := []struct {
		name      string
		enforce   bool
		status    int
		wantTitle string
	}{
		{"unscoped without enforcement", false, http.StatusFound, "Cambiada por Ana"},
		{"hidden with enforcement", true, http.StatusNotFound, "Tarea de Bruno"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupTaskTest(t, tt.enforce)
			other := f.add(t, f.bruno, "Tarea de Bruno", false)

			resp := postForm(f.router, "/editar-tarea/"+other.ID.String(), url.Values{"title": {"Cambiada por Ana"}}, f.anaCk)
			assert.Equal(t, tt.status, resp.Code)

			stored := f.reload(t, other.ID)
			assert.Equal(t, tt.wantTitle, stored.Title)
			assert.True(t, stored.IsOwnedBy(f.bruno.ID))
		})
	}
}
