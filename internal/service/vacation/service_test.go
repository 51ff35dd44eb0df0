package vacation

import (
	"context"
	"testing"
	"time"

	"github.com/crewlog/crewlog-backend/internal/config"
	"github.com/crewlog/crewlog-backend/internal/domain/user"
	"github.com/crewlog/crewlog-backend/internal/domain/vacation"
	"github.com/crewlog/crewlog-backend/internal/pkg/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVacationRepo struct {
	created      []vacation.Vacation
	byID         map[string]vacation.Vacation
	approved     map[vacation.Type]int
	lastCountKey struct {
		from, to time.Time
	}
}

func newFakeVacationRepo() *fakeVacationRepo {
	return &fakeVacationRepo{
		byID:     make(map[string]vacation.Vacation),
		approved: make(map[vacation.Type]int),
	}
}

func (f *fakeVacationRepo) Create(_ context.Context, v vacation.Vacation) (vacation.Vacation, error) {
	v.ID = "vac-1"
	f.created = append(f.created, v)
	return v, nil
}

func (f *fakeVacationRepo) GetByID(_ context.Context, id string) (vacation.Vacation, error) {
	v, ok := f.byID[id]
	if !ok {
		return vacation.Vacation{}, vacation.ErrVacationNotFound
	}
	return v, nil
}

func (f *fakeVacationRepo) UpdateStatus(_ context.Context, id string, status vacation.Status) (vacation.Vacation, error) {
	v, ok := f.byID[id]
	if !ok {
		return vacation.Vacation{}, vacation.ErrVacationNotFound
	}
	v.Status = status
	f.byID[id] = v
	return v, nil
}

func (f *fakeVacationRepo) Pending(_ context.Context) ([]vacation.WithRequester, error) {
	return nil, nil
}

func (f *fakeVacationRepo) CountApproved(_ context.Context, _ string, t vacation.Type, from, to time.Time) (int, error) {
	f.lastCountKey.from = from
	f.lastCountKey.to = to
	return f.approved[t], nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) { return u, nil }

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(_ context.Context) ([]user.User, error)  { return nil, nil }
func (f *fakeUserRepo) Update(_ context.Context, _ user.User) error  { return nil }
func (f *fakeUserRepo) UpdatePassword(_ context.Context, _, _ string) error {
	return nil
}
func (f *fakeUserRepo) SetEndDate(_ context.Context, _ string, _ time.Time) error { return nil }
func (f *fakeUserRepo) OwnerSlackHandles(_ context.Context) ([]string, error)     { return nil, nil }

var testCaps = config.LeaveConfig{DefaultVacationCap: 18, DefaultSickCap: 5}

func newTestService(vacRepo *fakeVacationRepo, users map[string]user.User) *Service {
	return NewService(vacRepo, &fakeUserRepo{users: users}, slack.NewNotifier(config.SlackConfig{}), testCaps)
}

func employedUser(id string) user.User {
	return user.User{ID: id, Name: "Jane", LastName: "Doe"}
}

func futureDate() string {
	return time.Now().UTC().AddDate(0, 1, 0).Format("2006-01-02")
}

func TestCreateVacation(t *testing.T) {
	vacRepo := newFakeVacationRepo()
	svc := newTestService(vacRepo, map[string]user.User{"u1": employedUser("u1")})

	created, err := svc.Create(context.Background(), "u1", vacation.CreateVacationRequest{
		Date: futureDate(),
		Type: vacation.TypeVacationPaid,
		Desc: "family trip",
	})
	require.NoError(t, err)

	assert.Equal(t, vacation.StatusPending, created.Status)
	assert.Equal(t, "u1", created.UserID)
	require.Len(t, vacRepo.created, 1)
}

func TestCreateVacationRejectsPastMonth(t *testing.T) {
	vacRepo := newFakeVacationRepo()
	svc := newTestService(vacRepo, map[string]user.User{"u1": employedUser("u1")})

	lastMonth := time.Now().UTC().AddDate(0, -1, 0).Format("2006-01-02")
	_, err := svc.Create(context.Background(), "u1", vacation.CreateVacationRequest{
		Date: lastMonth,
		Type: vacation.TypeVacationUnpaid,
		Desc: "too late",
	})
	assert.ErrorIs(t, err, vacation.ErrPastMonth)
	assert.Empty(t, vacRepo.created)
}

func TestCreateVacationRejectsTerminatedUser(t *testing.T) {
	endDate := time.Now().UTC().AddDate(0, -2, 0)
	terminated := employedUser("u1")
	terminated.EndDate = &endDate

	svc := newTestService(newFakeVacationRepo(), map[string]user.User{"u1": terminated})

	_, err := svc.Create(context.Background(), "u1", vacation.CreateVacationRequest{
		Date: futureDate(),
		Type: vacation.TypeVacationUnpaid,
		Desc: "any",
	})
	assert.ErrorIs(t, err, vacation.ErrUserTerminated)
}

func TestCreateVacationExhaustedBalance(t *testing.T) {
	vacRepo := newFakeVacationRepo()
	vacRepo.approved[vacation.TypeVacationPaid] = 18
	vacRepo.approved[vacation.TypeSickPaid] = 5
	svc := newTestService(vacRepo, map[string]user.User{"u1": employedUser("u1")})

	_, err := svc.Create(context.Background(), "u1", vacation.CreateVacationRequest{
		Date: futureDate(),
		Type: vacation.TypeVacationPaid,
		Desc: "one more",
	})
	assert.ErrorIs(t, err, vacation.ErrNoPaidVacationsLeft)

	_, err = svc.Create(context.Background(), "u1", vacation.CreateVacationRequest{
		Date: futureDate(),
		Type: vacation.TypeSickPaid,
		Desc: "sick again",
	})
	assert.ErrorIs(t, err, vacation.ErrNoPaidSickDaysLeft)

	// Unpaid leave is never gated by the caps.
	_, err = svc.Create(context.Background(), "u1", vacation.CreateVacationRequest{
		Date: futureDate(),
		Type: vacation.TypeVacationUnpaid,
		Desc: "unpaid is fine",
	})
	assert.NoError(t, err)
}

func TestAvailableCountDefaults(t *testing.T) {
	vacRepo := newFakeVacationRepo()
	svc := newTestService(vacRepo, map[string]user.User{"u1": employedUser("u1")})

	count, err := svc.AvailableCount(context.Background(), "u1", vacation.TypeVacationPaid)
	require.NoError(t, err)
	assert.Equal(t, 18, count)

	vacRepo.approved[vacation.TypeVacationPaid] = 1
	count, err = svc.AvailableCount(context.Background(), "u1", vacation.TypeVacationPaid)
	require.NoError(t, err)
	assert.Equal(t, 17, count)
}

func TestAvailableCountUserOverride(t *testing.T) {
	u := employedUser("u1")
	u.VacationCount = 25
	svc := newTestService(newFakeVacationRepo(), map[string]user.User{"u1": u})

	count, err := svc.AvailableCount(context.Background(), "u1", vacation.TypeVacationPaid)
	require.NoError(t, err)
	assert.Equal(t, 25, count)
}

func TestAvailableCountNeverNegative(t *testing.T) {
	vacRepo := newFakeVacationRepo()
	vacRepo.approved[vacation.TypeSickPaid] = 9
	svc := newTestService(vacRepo, map[string]user.User{"u1": employedUser("u1")})

	count, err := svc.AvailableCount(context.Background(), "u1", vacation.TypeSickPaid)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestAvailableCountWindowIsCurrentYear(t *testing.T) {
	vacRepo := newFakeVacationRepo()
	svc := newTestService(vacRepo, map[string]user.User{"u1": employedUser("u1")})

	_, err := svc.AvailableCount(context.Background(), "u1", vacation.TypeVacationPaid)
	require.NoError(t, err)

	year := time.Now().UTC().Year()
	assert.Equal(t, time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), vacRepo.lastCountKey.from)
	assert.Equal(t, time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC), vacRepo.lastCountKey.to)
}

func TestStatusChange(t *testing.T) {
	vacRepo := newFakeVacationRepo()
	vacRepo.byID["vac-1"] = vacation.Vacation{
		ID:     "vac-1",
		UserID: "u1",
		Status: vacation.StatusPending,
		Type:   vacation.TypeVacationPaid,
		Date:   time.Now().UTC(),
	}
	svc := newTestService(vacRepo, map[string]user.User{"u1": employedUser("u1")})

	updated, err := svc.StatusChange(context.Background(), "vac-1",
		vacation.ChangeStatusRequest{Status: vacation.StatusApproved}, employedUser("owner"))
	require.NoError(t, err)
	assert.Equal(t, vacation.StatusApproved, updated.Status)
}

func TestStatusChangeAlreadyProcessed(t *testing.T) {
	vacRepo := newFakeVacationRepo()
	vacRepo.byID["vac-1"] = vacation.Vacation{
		ID:     "vac-1",
		UserID: "u1",
		Status: vacation.StatusApproved,
	}
	svc := newTestService(vacRepo, map[string]user.User{"u1": employedUser("u1")})

	_, err := svc.StatusChange(context.Background(), "vac-1",
		vacation.ChangeStatusRequest{Status: vacation.StatusRejected}, employedUser("owner"))
	assert.ErrorIs(t, err, vacation.ErrAlreadyProcessed)
}
