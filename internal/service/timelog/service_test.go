package timelog

import (
	"context"
	"testing"
	"time"

	"github.com/crewlog/crewlog-backend/internal/domain/timelog"
	"github.com/crewlog/crewlog-backend/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimelogRepo struct {
	byID    map[string]timelog.Timelog
	deleted []string
}

func newFakeTimelogRepo() *fakeTimelogRepo {
	return &fakeTimelogRepo{byID: make(map[string]timelog.Timelog)}
}

func (f *fakeTimelogRepo) Create(_ context.Context, t timelog.Timelog) (timelog.Timelog, error) {
	t.ID = "tl-1"
	f.byID[t.ID] = t
	return t, nil
}

func (f *fakeTimelogRepo) GetByID(_ context.Context, id string) (timelog.Timelog, error) {
	t, ok := f.byID[id]
	if !ok {
		return timelog.Timelog{}, timelog.ErrTimelogNotFound
	}
	return t, nil
}

func (f *fakeTimelogRepo) Update(_ context.Context, t timelog.Timelog) error {
	if _, ok := f.byID[t.ID]; !ok {
		return timelog.ErrTimelogNotFound
	}
	f.byID[t.ID] = t
	return nil
}

func (f *fakeTimelogRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return timelog.ErrTimelogNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func TestCreateTimelog(t *testing.T) {
	repo := newFakeTimelogRepo()
	svc := NewTimelogService(repo)

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	created, err := svc.Create(context.Background(), "u1", "p1", timelog.CreateTimelogRequest{
		Date: monthStart.Format("2006-01-02"),
		Time: "6:50",
		Desc: "api work",
	})
	require.NoError(t, err)

	assert.Equal(t, 410, created.Minutes)
	assert.Equal(t, "u1", created.UserID)
	assert.Equal(t, "p1", created.ProjectID)
	assert.Equal(t, time.Date(monthStart.Year(), monthStart.Month(), 1, 12, 0, 0, 0, time.UTC), created.Date)
}

func TestCreateTimelogRejectsPastMonth(t *testing.T) {
	repo := newFakeTimelogRepo()
	svc := NewTimelogService(repo)

	lastMonth := time.Now().UTC().AddDate(0, -2, 0)

	_, err := svc.Create(context.Background(), "u1", "p1", timelog.CreateTimelogRequest{
		Date: lastMonth.Format("2006-01-02"),
		Time: "7:30",
	})
	assert.ErrorIs(t, err, timelog.ErrPastMonth)
	assert.Empty(t, repo.byID)
}

func TestCreateTimelogRejectsMalformedDuration(t *testing.T) {
	svc := NewTimelogService(newFakeTimelogRepo())

	_, err := svc.Create(context.Background(), "u1", "p1", timelog.CreateTimelogRequest{
		Date: time.Now().UTC().Format("2006-01-02"),
		Time: "6h50m",
	})
	assert.Error(t, err)
}

func TestChangeTimelogOwnership(t *testing.T) {
	repo := newFakeTimelogRepo()
	repo.byID["tl-1"] = timelog.Timelog{ID: "tl-1", UserID: "u1", Minutes: 410}
	svc := NewTimelogService(repo)

	newTime := "8:00"

	// Another regular user cannot touch it.
	_, err := svc.Change(context.Background(), "tl-1", timelog.ChangeTimelogRequest{Time: &newTime},
		user.User{ID: "u2", Role: user.RoleUser})
	assert.ErrorIs(t, err, timelog.ErrNotYourTimelog)

	// The author can.
	updated, err := svc.Change(context.Background(), "tl-1", timelog.ChangeTimelogRequest{Time: &newTime},
		user.User{ID: "u1", Role: user.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, 480, updated.Minutes)

	// So can an admin.
	halfDay := "4:00"
	updated, err = svc.Change(context.Background(), "tl-1", timelog.ChangeTimelogRequest{Time: &halfDay},
		user.User{ID: "admin", Role: user.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, 240, updated.Minutes)
}

func TestDeleteTimelogOwnership(t *testing.T) {
	repo := newFakeTimelogRepo()
	repo.byID["tl-1"] = timelog.Timelog{ID: "tl-1", UserID: "u1"}
	svc := NewTimelogService(repo)

	err := svc.Delete(context.Background(), "tl-1", user.User{ID: "u2", Role: user.RoleUser})
	assert.ErrorIs(t, err, timelog.ErrNotYourTimelog)

	err = svc.Delete(context.Background(), "tl-1", user.User{ID: "u1", Role: user.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, []string{"tl-1"}, repo.deleted)
}

func TestDeleteTimelogNotFound(t *testing.T) {
	svc := NewTimelogService(newFakeTimelogRepo())

	err := svc.Delete(context.Background(), "missing", user.User{ID: "u1", Role: user.RoleAdmin})
	assert.ErrorIs(t, err, timelog.ErrTimelogNotFound)
}
