package coordinator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/switchboard/internal/application/port"
	"github.com/bnema/switchboard/internal/domain/entity"
)

func TestInitialURL(t *testing.T) {
	assert.Equal(t, "http://localhost:5173/mail", InitialURL("http://localhost:5173", entity.ViewMail))
	assert.Equal(t, "http://localhost:5173/calendar", InitialURL("http://localhost:5173/", entity.ViewCalendar))
	assert.Equal(t, "https://app.example.test/shell/account", InitialURL("https://app.example.test/shell", entity.ViewAccount))
}

func TestSurfaceRegistry_CreateSurfaceLoadsInitialURL(t *testing.T) {
	platform := newFakePlatform()
	journal := &fakeJournal{}
	reg := NewSurfaceRegistry(platform, testViews(), testBaseURL, newEventRecorder(journal, "s1"))

	s, err := reg.CreateSurface(context.Background(), entity.ViewCalendar)
	require.NoError(t, err)

	fake := platform.surface(entity.ViewCalendar)
	require.NotNil(t, fake)
	assert.Same(t, fake, s)
	assert.Equal(t, []string{testBaseURL + "/calendar"}, fake.loads)

	rec, ok := reg.Record(entity.ViewCalendar)
	require.True(t, ok)
	assert.Equal(t, entity.SurfaceLoading, rec.State)
	assert.NotEmpty(t, rec.InstanceID.String())

	require.Len(t, journal.events, 1)
	assert.Equal(t, entity.EventSurfaceCreated, journal.events[0].Kind)
	assert.Equal(t, "s1", journal.events[0].SessionID)
	assert.False(t, journal.events[0].At.IsZero())
}

func TestSurfaceRegistry_CreateSurfaceTwiceFails(t *testing.T) {
	platform := newFakePlatform()
	reg := NewSurfaceRegistry(platform, testViews(), testBaseURL, nil)

	first, err := reg.CreateSurface(context.Background(), entity.ViewMail)
	require.NoError(t, err)

	_, err = reg.CreateSurface(context.Background(), entity.ViewMail)
	require.ErrorIs(t, err, ErrSurfaceExists)

	got, err := reg.GetSurface(entity.ViewMail)
	require.NoError(t, err)
	assert.Same(t, first, got)
	assert.Len(t, platform.surfaces[entity.ViewMail], 1)
}

func TestSurfaceRegistry_GetSurfaceErrors(t *testing.T) {
	reg := NewSurfaceRegistry(newFakePlatform(), testViews(), testBaseURL, nil)

	_, err := reg.GetSurface("contacts")
	assert.ErrorIs(t, err, ErrUnknownView)

	_, err = reg.GetSurface(entity.ViewAccount)
	assert.ErrorIs(t, err, ErrSurfaceNotCreated)

	_, err = reg.CreateSurface(context.Background(), "contacts")
	assert.ErrorIs(t, err, ErrUnknownView)
}

func TestSurfaceRegistry_FactoryErrorLeavesNoRecord(t *testing.T) {
	platform := newFakePlatform()
	platform.failViews[entity.ViewAccount] = true
	reg := NewSurfaceRegistry(platform, testViews(), testBaseURL, nil)

	_, err := reg.CreateSurface(context.Background(), entity.ViewAccount)
	require.Error(t, err)

	_, ok := reg.Record(entity.ViewAccount)
	assert.False(t, ok)
}

func TestSurfaceRegistry_TracksLoadOutcome(t *testing.T) {
	platform := newFakePlatform()
	journal := &fakeJournal{}
	reg := NewSurfaceRegistry(platform, testViews(), testBaseURL, newEventRecorder(journal, ""))

	_, err := reg.CreateSurface(context.Background(), entity.ViewMail)
	require.NoError(t, err)
	_, err = reg.CreateSurface(context.Background(), entity.ViewAccount)
	require.NoError(t, err)

	platform.surface(entity.ViewMail).finishLoad()
	platform.surface(entity.ViewAccount).emit(port.SurfaceEvent{
		Type:    port.EventLoadFailed,
		URL:     testBaseURL + "/account",
		Failure: &port.LoadFailure{Code: 502, Description: "bad gateway"},
	})

	mail, _ := reg.Record(entity.ViewMail)
	assert.Equal(t, entity.SurfaceReady, mail.State)

	account, _ := reg.Record(entity.ViewAccount)
	assert.Equal(t, entity.SurfaceFailed, account.State)
	assert.Equal(t, "502 bad gateway", account.LastError)

	assert.Equal(t, 1, journal.count(entity.EventLoadFinished))
	assert.Equal(t, 1, journal.count(entity.EventLoadFailed))
}

func TestSurfaceRegistry_ImmediateLoadErrorMarksFailed(t *testing.T) {
	platform := newFakePlatform()
	reg := NewSurfaceRegistry(platform, testViews(), testBaseURL, nil)
	reg.OnSurfaceCreated(func(_ context.Context, _ entity.ViewID, s port.Surface) {
		s.(*fakeSurface).loadErr = errors.New("invalid scheme")
	})

	_, err := reg.CreateSurface(context.Background(), entity.ViewMail)
	require.NoError(t, err)

	rec, _ := reg.Record(entity.ViewMail)
	assert.Equal(t, entity.SurfaceFailed, rec.State)
	assert.Contains(t, rec.LastError, "invalid scheme")
}

func TestSurfaceRegistry_OnSurfaceCreatedRunsBeforeLoad(t *testing.T) {
	platform := newFakePlatform()
	reg := NewSurfaceRegistry(platform, testViews(), testBaseURL, nil)

	var loadsAtHook []string
	reg.OnSurfaceCreated(func(_ context.Context, view entity.ViewID, s port.Surface) {
		assert.Equal(t, entity.ViewMail, view)
		loadsAtHook = append([]string(nil), s.(*fakeSurface).loads...)
	})

	_, err := reg.CreateSurface(context.Background(), entity.ViewMail)
	require.NoError(t, err)
	assert.Empty(t, loadsAtHook)
	assert.Len(t, platform.surface(entity.ViewMail).loads, 1)
}

func TestSurfaceRegistry_CrashAndRecreate(t *testing.T) {
	platform := newFakePlatform()
	journal := &fakeJournal{}
	reg := NewSurfaceRegistry(platform, testViews(), testBaseURL, newEventRecorder(journal, ""))

	_, err := reg.CreateSurface(context.Background(), entity.ViewCalendar)
	require.NoError(t, err)
	old := platform.surface(entity.ViewCalendar)
	oldRec, _ := reg.Record(entity.ViewCalendar)

	old.crash("oom")
	rec, _ := reg.Record(entity.ViewCalendar)
	assert.Equal(t, entity.SurfaceCrashed, rec.State)
	assert.Equal(t, "oom", rec.LastError)

	fresh, err := reg.Recreate(context.Background(), entity.ViewCalendar)
	require.NoError(t, err)
	assert.NotSame(t, old, fresh)
	assert.True(t, old.destroyed)
	assert.Empty(t, old.handlers)

	rec, _ = reg.Record(entity.ViewCalendar)
	assert.Equal(t, entity.SurfaceLoading, rec.State)
	assert.NotEqual(t, oldRec.InstanceID, rec.InstanceID)
	assert.Equal(t, 1, journal.count(entity.EventSurfaceRecreated))

	_, err = reg.Recreate(context.Background(), entity.ViewMail)
	assert.ErrorIs(t, err, ErrSurfaceNotCreated)
}

func TestSurfaceRegistry_RecreateFactoryErrorKeepsCrashedSurface(t *testing.T) {
	platform := newFakePlatform()
	journal := &fakeJournal{}
	reg := NewSurfaceRegistry(platform, testViews(), testBaseURL, newEventRecorder(journal, ""))

	_, err := reg.CreateSurface(context.Background(), entity.ViewMail)
	require.NoError(t, err)
	crashed := platform.surface(entity.ViewMail)
	before, _ := reg.Record(entity.ViewMail)
	crashed.crash("oom")

	platform.failViews[entity.ViewMail] = true
	_, err = reg.Recreate(context.Background(), entity.ViewMail)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "renderer unavailable")

	assert.False(t, crashed.destroyed)
	got, err := reg.GetSurface(entity.ViewMail)
	require.NoError(t, err)
	assert.Same(t, crashed, got)

	rec, ok := reg.Record(entity.ViewMail)
	require.True(t, ok)
	assert.Equal(t, entity.SurfaceCrashed, rec.State)
	assert.Equal(t, before.InstanceID, rec.InstanceID)
	assert.Zero(t, journal.count(entity.EventSurfaceRecreated))

	// Still tracked: a later recreate succeeds.
	platform.failViews[entity.ViewMail] = false
	fresh, err := reg.Recreate(context.Background(), entity.ViewMail)
	require.NoError(t, err)
	assert.NotSame(t, crashed, fresh)
	assert.True(t, crashed.destroyed)
}

func TestSurfaceRegistry_RejectedLoadStaysFailed(t *testing.T) {
	platform := newFakePlatform()
	reg := NewSurfaceRegistry(platform, testViews(), testBaseURL, nil)
	reg.OnSurfaceCreated(func(_ context.Context, _ entity.ViewID, s port.Surface) {
		s.(*fakeSurface).loadErr = errors.New("unsupported scheme")
	})

	_, err := reg.CreateSurface(context.Background(), entity.ViewMail)
	require.NoError(t, err)

	// A start event queued before the rejection arrives afterwards.
	platform.surface(entity.ViewMail).emit(port.SurfaceEvent{Type: port.EventLoadStarted, URL: testBaseURL + "/mail"})

	rec, _ := reg.Record(entity.ViewMail)
	assert.Equal(t, entity.SurfaceFailed, rec.State)

	// A start for another address is a real new load.
	platform.surface(entity.ViewMail).emit(port.SurfaceEvent{Type: port.EventLoadStarted, URL: testBaseURL + "/mail/inbox"})
	rec, _ = reg.Record(entity.ViewMail)
	assert.Equal(t, entity.SurfaceLoading, rec.State)
}

func TestSurfaceRegistry_AllFollowsViewOrderAndCloseDestroys(t *testing.T) {
	platform := newFakePlatform()
	reg := NewSurfaceRegistry(platform, testViews(), testBaseURL, nil)

	for _, id := range []entity.ViewID{entity.ViewAccount, entity.ViewMail} {
		_, err := reg.CreateSurface(context.Background(), id)
		require.NoError(t, err)
	}

	all := reg.All()
	require.Len(t, all, 2)
	assert.Equal(t, entity.ViewMail, all[0].View)
	assert.Equal(t, entity.ViewAccount, all[1].View)

	reg.Close()
	assert.Empty(t, reg.All())
	assert.True(t, platform.surface(entity.ViewMail).destroyed)
	assert.True(t, platform.surface(entity.ViewAccount).destroyed)
}
