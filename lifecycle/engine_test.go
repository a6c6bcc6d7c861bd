package lifecycle

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meinhoongagan/handyhub/access"
	"github.com/meinhoongagan/handyhub/apperr"
	"github.com/meinhoongagan/handyhub/db"
	"github.com/meinhoongagan/handyhub/models"
	"github.com/meinhoongagan/handyhub/repository"
)

type recordingNotifier struct {
	created []string
	changed []models.BookingStatus
}

func (r *recordingNotifier) BookingCreated(_ context.Context, b *models.Booking) {
	r.created = append(r.created, b.ID)
}

func (r *recordingNotifier) BookingStatusChanged(_ context.Context, b *models.Booking) {
	r.changed = append(r.changed, b.Status)
}

type env struct {
	store    *repository.GormStore
	engine   *Engine
	notifier *recordingNotifier
	customer access.Principal
	provider access.Principal
	service  models.Service
	now      time.Time
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gdb, err := db.OpenTest()
	require.NoError(t, err)
	store := repository.NewGormStore(gdb)
	ctx := context.Background()

	email := "cust@example.com"
	cust, err := store.UpsertUser(ctx, &models.User{ID: "cust", Email: &email, FirstName: "Cara"})
	require.NoError(t, err)

	provEmail := "prov@example.com"
	prov, err := store.UpsertUser(ctx, &models.User{ID: "prov", Email: &provEmail, FirstName: "Pat"})
	require.NoError(t, err)
	prov, err = store.UpdateUserRole(ctx, prov.ID, models.RoleProvider)
	require.NoError(t, err)

	profile := &models.ProviderProfile{UserID: prov.ID}
	require.NoError(t, store.CreateProviderProfile(ctx, profile))

	service := models.Service{ProviderID: profile.ID, Category: "Plumbing", Title: "Leak repair", PricePerHour: models.MustMoney("50.00")}
	require.NoError(t, store.CreateService(ctx, &service))

	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	notifier := &recordingNotifier{}

	return &env{
		store:    store,
		engine:   NewEngine(store, notifier).WithClock(func() time.Time { return now }),
		notifier: notifier,
		customer: access.Principal{User: *cust},
		provider: access.Principal{User: *prov, Profile: profile},
		service:  service,
		now:      now,
	}
}

func (e *env) input() CreateInput {
	return CreateInput{
		ServiceID:      e.service.ID,
		ScheduledDate:  e.now.Add(48 * time.Hour),
		EstimatedHours: models.MustHours("2"),
		Address:        "1 Main St",
	}
}

func TestCreateDerivesPartiesAndPrice(t *testing.T) {
	e := newEnv(t)

	b, err := e.engine.Create(context.Background(), e.input(), e.customer)
	require.NoError(t, err)

	assert.Equal(t, e.customer.User.ID, b.CustomerID)
	assert.Equal(t, e.provider.Profile.ID, b.ProviderID)
	assert.Equal(t, models.StatusPending, b.Status)
	assert.Equal(t, "100.00", b.TotalPrice.String())
	assert.Equal(t, []string{b.ID}, e.notifier.created)

	stored, err := e.store.GetBooking(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "100.00", stored.TotalPrice.String())
	assert.Equal(t, "2.0", stored.EstimatedHours.String())
}

func TestCreateValidation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	in := e.input()
	in.ServiceID = "missing"
	_, err := e.engine.Create(ctx, in, e.customer)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	assert.Equal(t, MsgServiceNotFound, apperr.Message(err))

	in = e.input()
	in.EstimatedHours = models.MustHours("0")
	_, err = e.engine.Create(ctx, in, e.customer)
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	in = e.input()
	in.ScheduledDate = e.now.Add(-24 * time.Hour)
	_, err = e.engine.Create(ctx, in, e.customer)
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	// Earlier today is still bookable.
	in = e.input()
	in.ScheduledDate = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	_, err = e.engine.Create(ctx, in, e.customer)
	assert.NoError(t, err)

	_, err = e.engine.Create(ctx, e.input(), e.provider)
	assert.True(t, apperr.Is(err, apperr.KindForbidden))
}

func TestCreateAcceptsLocalTodayWestOfUTC(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	// 20:00 on 2026-03-10 in UTC-8.
	now := time.Date(2026, 3, 11, 4, 0, 0, 0, time.UTC)
	engine := NewEngine(e.store, nil).WithClock(func() time.Time { return now })

	in := e.input()
	in.ScheduledDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	b, err := engine.Create(ctx, in, e.customer)
	require.NoError(t, err)
	assert.Equal(t, in.ScheduledDate, b.ScheduledDate)

	in.ScheduledDate = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	_, err = engine.Create(ctx, in, e.customer)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Equal(t, "Scheduled date cannot be in the past", apperr.Message(err))
}

func TestTransitionLifecycle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	b, err := e.engine.Create(ctx, e.input(), e.customer)
	require.NoError(t, err)

	_, err = e.engine.Transition(ctx, b.ID, "accepted", e.customer)
	assert.True(t, apperr.Is(err, apperr.KindForbidden))

	_, err = e.engine.Transition(ctx, b.ID, "completed", e.provider)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Equal(t, "invalid transition from pending to completed", apperr.Message(err))

	_, err = e.engine.Transition(ctx, b.ID, "done", e.provider)
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	_, err = e.engine.Transition(ctx, b.ID, "", e.provider)
	assert.Equal(t, MsgStatusRequired, apperr.Message(err))

	_, err = e.engine.Transition(ctx, "missing", "accepted", e.provider)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	accepted, err := e.engine.Transition(ctx, b.ID, "accepted", e.provider)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, accepted.Status)

	_, err = e.engine.Transition(ctx, b.ID, "cancelled", e.provider)
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	completed, err := e.engine.Transition(ctx, b.ID, "completed", e.provider)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, completed.Status)

	_, err = e.engine.Transition(ctx, b.ID, "accepted", e.provider)
	assert.Equal(t, "no transitions allowed from completed", apperr.Message(err))

	assert.Equal(t, []models.BookingStatus{models.StatusAccepted, models.StatusCompleted}, e.notifier.changed)
}

type fakeMailer struct {
	sent []string
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, to+"|"+subject)
	return nil
}

func TestMailNotifier(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	mailer := &fakeMailer{}
	engine := NewEngine(e.store, NewMailNotifier(mailer, e.store, slog.New(slog.NewTextHandler(io.Discard, nil)))).
		WithClock(func() time.Time { return e.now })

	b, err := engine.Create(ctx, e.input(), e.customer)
	require.NoError(t, err)
	_, err = engine.Transition(ctx, b.ID, "cancelled", e.provider)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"prov@example.com|New booking request",
		"cust@example.com|Booking cancelled",
	}, mailer.sent)
}
