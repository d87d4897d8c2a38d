package services

import (
	"api/database"
	"api/utils"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupMockDB swaps database.DB for a gorm connection backed by sqlmock for
// the duration of one test
func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	previous := database.DB
	database.DB = gormDB
	t.Cleanup(func() { database.DB = previous })

	return mock
}

func scrambleRows(id string, dayKey string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "day_key", "move_sequence", "created_at"}).
		AddRow(id, dayKey, "R U R' U'", time.Now())
}

func TestSubmitSolve_RejectsNonPositiveDuration(t *testing.T) {
	_, err := SubmitSolve("user-1", "scramble-1", 0, time.Now())
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = SubmitSolve("user-1", "scramble-1", -500, time.Now())
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestSubmitSolve_RejectsUnknownScramble(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "scrambles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "day_key", "move_sequence", "created_at"}))

	_, err := SubmitSolve("user-1", "scramble-1", 9000, time.Now())
	assert.ErrorIs(t, err, ErrScrambleNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitSolve_RejectsStaleScramble(t *testing.T) {
	mock := setupMockDB(t)

	now := time.Now()
	yesterday := utils.DayKeyFor(now.AddDate(0, 0, -1))
	mock.ExpectQuery(`SELECT (.+) FROM "scrambles"`).
		WillReturnRows(scrambleRows("scramble-1", yesterday))

	_, err := SubmitSolve("user-1", "scramble-1", 9000, now)
	assert.ErrorIs(t, err, ErrScrambleMismatch)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitSolve_AcceptsFirstSubmission(t *testing.T) {
	mock := setupMockDB(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM "scrambles"`).
		WillReturnRows(scrambleRows("scramble-1", utils.DayKeyFor(now)))

	// Conditional insert on the (user_id, day_key) unique index
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "solve_attempts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("attempt-1"))
	mock.ExpectCommit()

	attempt, err := SubmitSolve("user-1", "scramble-1", 9000, now)
	require.NoError(t, err)
	assert.Equal(t, "attempt-1", attempt.ID)
	assert.Equal(t, "user-1", attempt.UserID)
	assert.Equal(t, int64(9000), attempt.DurationMillis)
	assert.Equal(t, utils.DayKeyFor(now), attempt.DayKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitSolve_SecondSubmissionReturnsExistingAttempt(t *testing.T) {
	mock := setupMockDB(t)

	now := time.Now()
	dayKey := utils.DayKeyFor(now)
	mock.ExpectQuery(`SELECT (.+) FROM "scrambles"`).
		WillReturnRows(scrambleRows("scramble-1", dayKey))

	// The insert hits the unique index and affects no rows: first write wins
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "solve_attempts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	// The recorded attempt is fetched and handed back to the caller
	mock.ExpectQuery(`SELECT (.+) FROM "solve_attempts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "scramble_id", "day_key", "duration_millis", "submitted_at"}).
			AddRow("attempt-1", "user-1", "scramble-1", dayKey, 9000, now.Add(-time.Minute)))

	attempt, err := SubmitSolve("user-1", "scramble-1", 9500, now)
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	// The 9500ms retry did not overwrite the accepted 9000ms solve
	assert.Equal(t, "attempt-1", attempt.ID)
	assert.Equal(t, int64(9000), attempt.DurationMillis)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrCreateScramble_Idempotent(t *testing.T) {
	mock := setupMockDB(t)

	// First call: nothing stored yet, the conditional insert wins the race
	mock.ExpectQuery(`SELECT (.+) FROM "scrambles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "day_key", "move_sequence", "created_at"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "scrambles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("scramble-1"))
	mock.ExpectCommit()

	created, err := GetOrCreateScramble("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, "scramble-1", created.ID)

	// Second call: the stored scramble is returned unchanged
	mock.ExpectQuery(`SELECT (.+) FROM "scrambles"`).
		WillReturnRows(scrambleRows("scramble-1", "2024-05-01"))

	fetched, err := GetOrCreateScramble("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrCreateScramble_LosingRacerReadsWinner(t *testing.T) {
	mock := setupMockDB(t)

	// Not found on first read, insert conflicts (another request created the
	// row in between), winner is read back
	mock.ExpectQuery(`SELECT (.+) FROM "scrambles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "day_key", "move_sequence", "created_at"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "scrambles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT (.+) FROM "scrambles"`).
		WillReturnRows(scrambleRows("scramble-winner", "2024-05-01"))

	scramble, err := GetOrCreateScramble("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, "scramble-winner", scramble.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaderboardFor_EmptyDayReturnsEmptyList(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "solve_attempts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "scramble_id", "day_key", "duration_millis", "submitted_at"}))

	entries, err := LeaderboardFor("2024-05-01")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}
