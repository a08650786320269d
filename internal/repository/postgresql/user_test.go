package postgresql

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avis-hq/avis-backend-go/internal/domain/attendance"
	"github.com/avis-hq/avis-backend-go/internal/domain/user"
	"github.com/avis-hq/avis-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
)

// testInit connects to the test database. Tests are skipped when
// TEST_DATABASE_URL is not set; the schema is expected to be migrated.
func testInit(t *testing.T) *database.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	testDBOnce.Do(func() {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
	})
	return testDB
}

func truncateTables(t *testing.T, ctx context.Context, db *database.DB) {
	tables := []string{"comments", "tasks", "attendance_records", "leave_requests", "users"}
	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createTestUser(t *testing.T, ctx context.Context, repo user.UserRepository, email string, role user.Role, managerID *string) user.User {
	created, err := repo.Create(ctx, user.User{
		Email:        email,
		PasswordHash: "not-a-real-hash",
		Name:         "Test User",
		Role:         role,
		ManagerID:    managerID,
	})
	require.NoError(t, err)
	return created
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := testInit(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	repo := NewUserRepository(db)
	created := createTestUser(t, ctx, repo, "owner@avis.test", user.RoleOwner, nil)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "ACTIVE", created.Status)

	// Email lookup is case-insensitive
	found, err := repo.GetByEmail(ctx, "OWNER@avis.test")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	exists, err := repo.ExistsByEmail(ctx, "owner@avis.test")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepository_ListScoped(t *testing.T) {
	db := testInit(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	repo := NewUserRepository(db)
	manager := createTestUser(t, ctx, repo, "manager@avis.test", user.RoleManager, nil)
	report := createTestUser(t, ctx, repo, "report@avis.test", user.RoleEmployee, &manager.ID)
	createTestUser(t, ctx, repo, "other@avis.test", user.RoleEmployee, nil)

	// Manager scope sees direct reports only
	managed, err := repo.List(ctx, user.Scope{Kind: user.ScopeManaged, CallerID: manager.ID})
	require.NoError(t, err)
	require.Len(t, managed, 1)
	assert.Equal(t, report.ID, managed[0].ID)
	require.NotNil(t, managed[0].ManagerName)

	// Owner scope sees everyone
	all, err := repo.List(ctx, user.Scope{Kind: user.ScopeAll})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAttendanceRepository_ClockInRace(t *testing.T) {
	db := testInit(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	userRepo := NewUserRepository(db)
	employee := createTestUser(t, ctx, userRepo, "clock@avis.test", user.RoleEmployee, nil)

	repo := NewAttendanceRepository(db)
	today := time.Now().Truncate(24 * time.Hour)

	first, err := repo.ClockIn(ctx, "11111111-1111-4111-8111-111111111111", employee.ID, today, time.Now())
	require.NoError(t, err)
	require.NotNil(t, first.ClockIn)

	// Second submission for the same day loses
	_, err = repo.ClockIn(ctx, "22222222-2222-4222-8222-222222222222", employee.ID, today, time.Now())
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}
