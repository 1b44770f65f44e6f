package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/promco/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func plainHash(p string) (string, error) { return "hashed:" + p, nil }

func newSeededUserRepository(t *testing.T) *memoryUserRepository {
	t.Helper()
	users, err := DevUsers(plainHash)
	require.NoError(t, err)
	return NewMemoryUserRepository(zap.NewNop(), users...)
}

func TestDevUsers(t *testing.T) {
	users, err := DevUsers(plainHash)
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "admin@example.com", users[0].Email)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.Equal(t, "hashed:adminpass", users[0].PasswordHash)
	assert.Equal(t, "manager@example.com", users[1].Email)
	assert.Equal(t, models.RoleManager, users[1].Role)

	_, err = DevUsers(func(string) (string, error) { return "", fmt.Errorf("boom") })
	assert.Error(t, err)
}

func TestMemoryUserRepository_Lookup(t *testing.T) {
	repo := newSeededUserRepository(t)
	ctx := context.Background()

	user, err := repo.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "john_doe", user.Username)

	user, err = repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, user.Role)

	_, err = repo.GetByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, models.ErrNotFound)

	exists, err := repo.ExistsByEmail(ctx, "manager@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 2, all[1].ID)
}

func TestMemoryUserRepository_ReturnedUserIsACopy(t *testing.T) {
	repo := newSeededUserRepository(t)

	user, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	user.Role = models.RoleUser

	again, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, again.Role)
}

func TestMemoryUserRepository_CreateUpdateDelete(t *testing.T) {
	repo := newSeededUserRepository(t)
	ctx := context.Background()

	user := &models.User{Username: "op", Email: "op@example.com", PasswordHash: "h", Role: models.RoleOperator}
	require.NoError(t, repo.Create(ctx, user))
	assert.Equal(t, 3, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	dup := &models.User{Username: "op2", Email: "op@example.com", PasswordHash: "h", Role: models.RoleUser}
	assert.ErrorIs(t, repo.Create(ctx, dup), models.ErrAlreadyExists)

	user.Username = "operator"
	user.Role = models.RoleManager
	require.NoError(t, repo.Update(ctx, user))

	stored, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "operator", stored.Username)
	assert.Equal(t, "h", stored.PasswordHash)

	stored.Email = "admin@example.com"
	assert.ErrorIs(t, repo.Update(ctx, stored), models.ErrAlreadyExists)

	assert.ErrorIs(t, repo.Update(ctx, &models.User{ID: 99}), models.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, 3))
	assert.ErrorIs(t, repo.Delete(ctx, 3), models.ErrNotFound)
}

func TestMemoryUserRepository_ConcurrentCreateKeepsEmailUnique(t *testing.T) {
	repo := NewMemoryUserRepository(zap.NewNop())

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Create(context.Background(), &models.User{Email: "same@example.com", Role: models.RoleUser})
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
}

func TestMemoryUserRepository_CanceledContext(t *testing.T) {
	repo := newSeededUserRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetByEmail(ctx, "admin@example.com")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryMachineRepository(t *testing.T) {
	repo := NewMemoryMachineRepository(DevMachines()...)
	ctx := context.Background()

	machines, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, machines, 2)
	assert.Equal(t, "CNC Lathe 1", machines[0].Name)
	assert.Equal(t, "Hydraulic Press", machines[1].Name)

	m := &models.Machine{Name: "Drill", Code: "DR-1", MachineTypeID: 1, MainSectionID: 1, Status: models.MachineStatusActive}
	require.NoError(t, repo.Create(ctx, m))
	assert.Equal(t, 3, m.ID)

	m.Status = models.MachineStatusInactive
	require.NoError(t, repo.Update(ctx, m))

	got, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, models.MachineStatusInactive, got.Status)
	assert.Equal(t, m.CreatedAt, got.CreatedAt)

	assert.ErrorIs(t, repo.Update(ctx, &models.Machine{ID: 50}), models.ErrNotFound)
	require.NoError(t, repo.Delete(ctx, 3))
	_, err = repo.GetByID(ctx, 3)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMemoryParameterRepository(t *testing.T) {
	repo := NewMemoryParameterRepository(DevParameters(), DevQualifiedValues())
	ctx := context.Background()

	parameters, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, parameters, 3)
	assert.Equal(t, "TEMP-001", parameters[0].Code)
	assert.False(t, parameters[0].CreatedAt.IsZero())

	values, err := repo.GetQualifiedValues(ctx, 1)
	require.NoError(t, err)
	require.Len(t, values, 3)
	for i := 1; i < len(values); i++ {
		assert.LessOrEqual(t, *values[i-1].MinValue, *values[i].MinValue)
	}

	dup := &models.Parameter{Name: "Copy", Code: "TEMP-001", DataType: "Numeric"}
	assert.ErrorIs(t, repo.Create(ctx, dup), models.ErrAlreadyExists)

	p := &models.Parameter{Name: "Vibration", Code: "VIB-004", DataType: "Numeric"}
	require.NoError(t, repo.Create(ctx, p))
	assert.Equal(t, 4, p.ID)

	p.Code = "PRESS-002"
	assert.ErrorIs(t, repo.Update(ctx, p), models.ErrAlreadyExists)
	p.Code = "VIB-004"
	p.IsRequired = true
	require.NoError(t, repo.Update(ctx, p))

	require.NoError(t, repo.Delete(ctx, 1))
	values, err = repo.GetQualifiedValues(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, values)
	assert.ErrorIs(t, repo.Delete(ctx, 1), models.ErrNotFound)
}

func TestMemoryMachineRecordRepository(t *testing.T) {
	repo := NewMemoryMachineRecordRepository(DevMaintenanceRecords(), DevFaults())
	ctx := context.Background()

	history, err := repo.GetMaintenance(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].MaintenanceDate.After(history[1].MaintenanceDate))

	faults, err := repo.GetFaults(ctx, 1)
	require.NoError(t, err)
	require.Len(t, faults, 2)
	assert.Equal(t, "Unusual noise during operation", faults[0].Description)

	f := &models.Fault{MachineID: 1, Description: "Oil leak", Priority: models.FaultPriorityLow, ReportedBy: 2, ReportDate: faults[0].ReportDate, Status: models.FaultStatusOpen}
	require.NoError(t, repo.CreateFault(ctx, f))
	assert.Equal(t, 4, f.ID)

	faults, err = repo.GetFaults(ctx, 1)
	require.NoError(t, err)
	require.Len(t, faults, 3)
	assert.Equal(t, f.ID, faults[0].ID, "same report date orders newest id first")

	none, err := repo.GetMaintenance(ctx, 42)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = repo.GetFaults(canceled, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
