package repository_test

import (
	"context"
	"testing"

	"tareas/internal/model"
	"tareas/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func TestUserRepository_Create(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	user := &model.User{
		Username:       "ana",
		HashedPassword: "hashed_password",
	}

	// Ожидаем SQL запрос на создание пользователя
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users"`).
		WithArgs(sqlmock.AnyArg(), user.Username, user.HashedPassword, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	// Act
	err := userRepo.Create(context.Background(), user)

	// Assert
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	userID := uuid.New()
	username := "ana"

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE username = .* LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "hashed_password", "created_at"}).
			AddRow(userID.String(), username, "hashed_password", "2023-01-01 00:00:00"))

	// Act
	user, err := userRepo.FindByUsername(context.Background(), username)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, username, user.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE username = .* LIMIT`).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	user, err := userRepo.FindByUsername(context.Background(), "nobody")

	// Assert
	assert.NoError(t, err) // отсутствие записи не считается ошибкой
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername_Error(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE username = .* LIMIT`).
		WillReturnError(assert.AnError)

	// Act
	user, err := userRepo.FindByUsername(context.Background(), "ana")

	// Assert
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdatePassword_MissingUser(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET "hashed_password"=\$1 WHERE id = \$2`).
		WithArgs("new-hash", id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	err := userRepo.UpdatePassword(context.Background(), id, "new-hash")

	// Assert
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	db := setupSQLiteDB(t)
	userRepo := repository.NewUserRepository(db)

	require.NoError(t, userRepo.Create(context.Background(), &model.User{Username: "ana", HashedPassword: "x"}))

	err := userRepo.Create(context.Background(), &model.User{Username: "ana", HashedPassword: "y"})

	assert.ErrorIs(t, err, repository.ErrUsernameTaken)
}

func TestUserRepository_UpdatePassword_SQLite(t *testing.T) {
	db := setupSQLiteDB(t)
	userRepo := repository.NewUserRepository(db)
	user := &model.User{Username: "ana", HashedPassword: "old"}
	require.NoError(t, userRepo.Create(context.Background(), user))

	require.NoError(t, userRepo.UpdatePassword(context.Background(), user.ID, "new"))

	stored, err := userRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "new", stored.HashedPassword)

	missing, err := userRepo.GetByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
