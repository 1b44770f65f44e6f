package integration

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/promco/backend/internal/auth/service"
	"github.com/promco/backend/internal/config"
	"github.com/promco/backend/internal/models"
	"github.com/promco/backend/internal/repositories"
	"github.com/promco/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// setupTestDB connects to the TEST_DB_* database and migrates it, skipping when it is not configured
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg, err := config.LoadTestConfig()
	require.NoError(t, err)
	if !cfg.HasDatabase() {
		t.Skip("TEST_DB_* variables not set, skipping MySQL integration test")
	}

	db, err := sql.Open("mysql", cfg.DSN()+"&multiStatements=true")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, db.PingContext(ctx))

	driver, err := mysql.WithInstance(db, &mysql.Config{})
	require.NoError(t, err)
	m, err := migrate.NewWithDatabaseInstance("file://../../migrations", "mysql", driver)
	require.NoError(t, err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err)
	}

	_, err = db.Exec("DELETE FROM users")
	require.NoError(t, err)
	_, err = db.Exec("DELETE FROM machines")
	require.NoError(t, err)
	_, err = db.Exec("DELETE FROM parameters")
	require.NoError(t, err)

	return db
}

func TestMySQLLoginFlow(t *testing.T) {
	db := setupTestDB(t)
	logger := zap.NewNop()

	tokens, err := service.NewTokenGenerator(testSecret, 24*time.Hour)
	require.NoError(t, err)
	hasher, err := service.NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := repositories.NewUserRepository(db, logger, 5*time.Second)
	authService := services.NewAuthService(userRepo, hasher, tokens, logger)
	ctx := context.Background()

	require.NoError(t, authService.EnsureAdmin(ctx, "john_doe", "admin@example.com", "adminpass"))
	require.NoError(t, authService.EnsureAdmin(ctx, "john_doe", "admin@example.com", "adminpass"))

	resp, err := authService.Login(ctx, &models.LoginRequest{Email: "Admin@Example.com", Password: "adminpass"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)

	claims, err := tokens.Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	_, err = authService.Login(ctx, &models.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = authService.Register(ctx, &models.CreateUserRequest{
		Username: "dup", Email: "ADMIN@example.com", Password: "x", Role: "user",
	})
	assert.ErrorIs(t, err, models.ErrAlreadyExists)

	// Duplicate inserts racing past the existence check hit the unique key
	err = userRepo.Create(ctx, &models.User{Username: "dup", Email: "admin@example.com", PasswordHash: "h", Role: models.RoleUser})
	assert.ErrorIs(t, err, models.ErrAlreadyExists)
}

func TestMySQLMachines(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewMachineRepository(db, zap.NewNop(), 5*time.Second)
	records := repositories.NewMachineRecordRepository(db, zap.NewNop(), 5*time.Second)
	svc := services.NewMachineService(repo, records, zap.NewNop())
	ctx := context.Background()

	id, err := svc.Create(ctx, &models.MachineRequest{Name: "Lathe", Code: "L-1", MachineTypeID: 1, MainSectionID: 1})
	require.NoError(t, err)

	faultID, err := svc.ReportFault(ctx, models.Principal{UserID: 1, Role: models.RoleOperator}, id, &models.FaultRequest{Description: "Noise"})
	require.NoError(t, err)
	faults, err := svc.Faults(ctx, id)
	require.NoError(t, err)
	require.Len(t, faults, 1)
	assert.Equal(t, faultID, faults[0].ID)
	assert.Equal(t, models.FaultPriorityMedium, faults[0].Priority)

	history, err := svc.Maintenance(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, history)

	m, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.MachineStatusActive, m.Status)
	assert.Nil(t, m.SubSectionID)

	// Unchanged updates still count as found
	_, err = svc.Update(ctx, id, &models.MachineRequest{Name: "Lathe", Code: "L-1", MachineTypeID: 1, MainSectionID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMySQLParameters(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewParameterService(repositories.NewParameterRepository(db, zap.NewNop(), 5*time.Second), zap.NewNop())
	ctx := context.Background()

	unit := "°C"
	id, err := svc.Create(ctx, &models.ParameterRequest{Name: "Temperature", Code: "TEMP-001", DataType: "Numeric", Unit: &unit})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &models.ParameterRequest{Name: "Other", Code: "TEMP-001", DataType: "Numeric"})
	assert.ErrorIs(t, err, models.ErrAlreadyExists)

	_, err = db.Exec("INSERT INTO parameter_qualified_values (parameter_id, value, min_value, max_value) VALUES (?, 'High', 61, 85), (?, 'Low', 0, 30)", id, id)
	require.NoError(t, err)

	values, err := svc.QualifiedValues(ctx, id)
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, "Low", values[0].Value)

	p, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, p.Unit)
	assert.Equal(t, "°C", *p.Unit)
	assert.Nil(t, p.Description)

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.QualifiedValues(ctx, id)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
