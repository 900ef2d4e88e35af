package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	commitmodel "github.com/kiwicollection/crbot/internal/commit/model"
	reviewmodel "github.com/kiwicollection/crbot/internal/review/model"
	"github.com/kiwicollection/crbot/internal/stats/model"
	"github.com/kiwicollection/crbot/internal/stats/repository"
	usermodel "github.com/kiwicollection/crbot/internal/user/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&usermodel.User{}, &commitmodel.Commit{}, &reviewmodel.Review{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, uid, realName string) int64 {
	u := &usermodel.User{UID: uid, Name: strings.ToLower(realName), RealName: realName}
	require.NoError(t, db.Create(u).Error)
	return u.ID
}

func seedCommit(t *testing.T, db *gorm.DB, n int, userID, datestamp int64) {
	c := &commitmodel.Commit{
		Hash:          fmt.Sprintf("%040d", n),
		Repository:    "app-x",
		Datestamp:     datestamp,
		Intervalstamp: int64(n),
		UserID:        userID,
	}
	require.NoError(t, db.Create(c).Error)
}

func seedReview(t *testing.T, db *gorm.DB, n int, userID, datestamp int64, commented bool) {
	kind := "eyes"
	if commented {
		kind = "speech_balloon"
	}
	r := &reviewmodel.Review{
		CommitHash:    fmt.Sprintf("%040d", n),
		Datestamp:     datestamp,
		Intervalstamp: int64(n),
		UserID:        userID,
		Commented:     commented,
		Type:          kind,
	}
	require.NoError(t, db.Create(r).Error)
}

func newService(db *gorm.DB, now func() time.Time) Service {
	repo := repository.New(db, zap.NewNop().Sugar())
	return NewWithClock(repo, zap.NewNop().Sugar(), now)
}

func TestLeaderboard_Overall(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	alice := seedUser(t, db, "U1", "Alice Adams")
	bob := seedUser(t, db, "U2", "Bob Brown")

	// Alice: 3 commits. Bob: 1 commit, 5 reviews (3 reviewed, 2 commented).
	for i := 0; i < 3; i++ {
		seedCommit(t, db, i, alice, 1700000000)
	}
	seedCommit(t, db, 10, bob, 1700000000)
	for i := 0; i < 3; i++ {
		seedReview(t, db, i, bob, 1700000000, false)
	}
	for i := 3; i < 5; i++ {
		seedReview(t, db, i, bob, 1700000000, true)
	}

	svc := newService(db, time.Now)
	entries, err := svc.Leaderboard(ctx, "overall")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Bob Brown", entries[0].Name)
	assert.Equal(t, int64(1), entries[0].CommitCount)
	assert.Equal(t, int64(3), entries[0].ReviewedCount)
	assert.Equal(t, int64(2), entries[0].CommentedCount)
	assert.Equal(t, int64(6), entries[0].TotalCount)

	assert.Equal(t, "Alice Adams", entries[1].Name)
	assert.Equal(t, int64(3), entries[1].CommitCount)
	assert.Zero(t, entries[1].ReviewedCount)
	assert.Equal(t, int64(3), entries[1].TotalCount)
}

func TestLeaderboard_EmptyScopeIsOverall(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	alice := seedUser(t, db, "U1", "Alice Adams")
	seedCommit(t, db, 0, alice, 1700000000)

	svc := newService(db, time.Now)

	entries, err := svc.Leaderboard(ctx, "")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLeaderboard_MonthScope(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	alice := seedUser(t, db, "U1", "Alice Adams")
	bob := seedUser(t, db, "U2", "Bob Brown")

	now := func() time.Time { return time.Date(2017, time.August, 15, 12, 0, 0, 0, time.UTC) }
	july := time.Date(2017, time.July, 10, 0, 0, 0, 0, time.UTC).Unix()
	august := time.Date(2017, time.August, 10, 0, 0, 0, 0, time.UTC).Unix()

	seedCommit(t, db, 0, alice, july)
	seedCommit(t, db, 1, bob, august)
	seedReview(t, db, 0, bob, july, false)

	svc := newService(db, now)

	t.Run("restricts both joins to the month", func(t *testing.T) {
		entries, err := svc.Leaderboard(ctx, "jul")
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, "Alice Adams", entries[0].Name)
		assert.Equal(t, int64(1), entries[0].CommitCount)
		assert.Equal(t, "Bob Brown", entries[1].Name)
		assert.Zero(t, entries[1].CommitCount)
		assert.Equal(t, int64(1), entries[1].ReviewedCount)
	})

	t.Run("full month name accepted", func(t *testing.T) {
		entries, err := svc.Leaderboard(ctx, "august")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Bob Brown", entries[0].Name)
	})

	t.Run("unknown month", func(t *testing.T) {
		_, err := svc.Leaderboard(ctx, "smarch")
		assert.ErrorIs(t, err, model.ErrUnknownScope)
	})
}

func TestLeaderboard_Empty(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newService(db, time.Now)

	entries, err := svc.Leaderboard(ctx, "overall")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
