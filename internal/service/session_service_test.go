package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mapmyojt/mapmyojt/internal/model"
	"github.com/mapmyojt/mapmyojt/internal/store"
)

func newSessionService(t *testing.T) (*SessionService, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	svc := NewSessionService(store.NewSessionStore(path), store.NewUserStore(nil), zap.NewNop())
	return svc, path
}

func studentProfile() *model.UserProfile {
	return &model.UserProfile{
		ID:        "std-1",
		Name:      "Alex Rivera",
		Role:      model.RoleStudent,
		Email:     "alex@university.edu",
		OJTStatus: model.OJTStatusSearching,
		JoinedAt:  time.Now(),
	}
}

func TestLoginDefaultViews(t *testing.T) {
	tests := []struct {
		role model.Role
		view model.View
	}{
		{model.RoleStudent, model.ViewMap},
		{model.RoleBusiness, model.ViewDashboardBus},
		{model.RoleCoordinator, model.ViewDashboardCoord},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			svc, _ := newSessionService(t)

			_, view, err := svc.Login(&model.UserProfile{ID: "u1", Name: "U", Role: tt.role})
			require.NoError(t, err)
			assert.Equal(t, tt.view, view)

			// navigate на дефолтный экран роли остаётся на нём же
			effective, err := svc.Navigate(tt.view)
			require.NoError(t, err)
			assert.Equal(t, tt.view, effective)
		})
	}
}

func TestLoginPersistsProfile(t *testing.T) {
	svc, path := newSessionService(t)

	_, _, err := svc.Login(studentProfile())
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestLogoutClearsPersistenceAndRestartIsLoggedOut(t *testing.T) {
	svc, path := newSessionService(t)

	_, _, err := svc.Login(studentProfile())
	require.NoError(t, err)

	require.NoError(t, svc.Logout())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// "Перезапуск": новый сервис поверх того же файла
	restarted := NewSessionService(store.NewSessionStore(path), store.NewUserStore(nil), zap.NewNop())
	require.NoError(t, restarted.Restore())
	assert.Nil(t, restarted.User())
}

func TestRestoreFromPersistedProfile(t *testing.T) {
	svc, path := newSessionService(t)

	_, _, err := svc.Login(studentProfile())
	require.NoError(t, err)

	restarted := NewSessionService(store.NewSessionStore(path), store.NewUserStore(nil), zap.NewNop())
	require.NoError(t, restarted.Restore())

	user, view, _ := restarted.Current()
	require.NotNil(t, user)
	assert.Equal(t, "std-1", user.ID)
	assert.Equal(t, model.ViewMap, view)
}

func TestRestoreCorruptedFileFallsBackToLoggedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	svc := NewSessionService(store.NewSessionStore(path), store.NewUserStore(nil), zap.NewNop())
	require.NoError(t, svc.Restore())

	assert.Nil(t, svc.User())

	// Битая запись вычищена
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestNavigateRequiresSession(t *testing.T) {
	svc, _ := newSessionService(t)

	_, err := svc.Navigate(model.ViewMap)
	assert.ErrorIs(t, err, model.ErrLoggedOut)
}

func TestNavigateUnknownViewRejected(t *testing.T) {
	svc, _ := newSessionService(t)
	_, _, err := svc.Login(studentProfile())
	require.NoError(t, err)

	_, err = svc.Navigate("nonsense")
	assert.Error(t, err)
}

func TestUnverifiedBusinessRedirectedToDashboard(t *testing.T) {
	svc, _ := newSessionService(t)

	_, _, err := svc.Login(&model.UserProfile{
		ID:         "bus-9",
		Name:       "New Biz",
		Role:       model.RoleBusiness,
		IsVerified: false,
	})
	require.NoError(t, err)

	// Слоты недоступны до верификации: редирект, не ошибка
	view, err := svc.Navigate(model.ViewSlots)
	require.NoError(t, err)
	assert.Equal(t, model.ViewDashboardBus, view)

	// Профиль доступен всегда
	view, err = svc.Navigate(model.ViewProfile)
	require.NoError(t, err)
	assert.Equal(t, model.ViewProfile, view)
}

func TestVerifiedBusinessReachesSlots(t *testing.T) {
	svc, _ := newSessionService(t)

	_, _, err := svc.Login(&model.UserProfile{
		ID:         "bus-1",
		Name:       "Sarah Chen",
		Role:       model.RoleBusiness,
		IsVerified: true,
	})
	require.NoError(t, err)

	view, err := svc.Navigate(model.ViewSlots)
	require.NoError(t, err)
	assert.Equal(t, model.ViewSlots, view)
}

func TestUpdateProfileKeepsRoleStatusInvariant(t *testing.T) {
	svc, _ := newSessionService(t)
	user, _, err := svc.Login(studentProfile())
	require.NoError(t, err)

	patch := user.Clone()
	patch.CompanyStatus = model.CompanyStatusHiring // Не должно прилипнуть к студенту
	patch.OJTStatus = model.OJTStatusHired

	updated, err := svc.UpdateProfile(patch)
	require.NoError(t, err)
	assert.Equal(t, model.OJTStatusHired, updated.OJTStatus)
	assert.Empty(t, updated.CompanyStatus)
}

func TestUpdateProfileRoleImmutable(t *testing.T) {
	svc, _ := newSessionService(t)
	user, _, err := svc.Login(studentProfile())
	require.NoError(t, err)

	patch := user.Clone()
	patch.Role = model.RoleBusiness

	_, err = svc.UpdateProfile(patch)
	assert.ErrorIs(t, err, model.ErrRoleImmutable)
}

func TestRegisterBusinessStartsUnverified(t *testing.T) {
	svc, _ := newSessionService(t)

	user, view, err := svc.Register(RegisterInput{
		Name:  "Bob Vance",
		Email: "bob@quantumfin.io",
		Role:  model.RoleBusiness,
	})
	require.NoError(t, err)

	assert.False(t, user.IsVerified)
	assert.Equal(t, model.CompanyStatusHiring, user.CompanyStatus)
	assert.Empty(t, user.OJTStatus)
	assert.Equal(t, model.ViewDashboardBus, view)
}

func TestRegisterStudentDefaults(t *testing.T) {
	svc, _ := newSessionService(t)

	user, _, err := svc.Register(RegisterInput{
		Name:  "Maria Lopez",
		Email: "maria@university.edu",
		Role:  model.RoleStudent,
	})
	require.NoError(t, err)

	assert.True(t, user.IsVerified)
	assert.Equal(t, model.OJTStatusSearching, user.OJTStatus)
	assert.NotEmpty(t, user.ID)
}

func TestLogoutFiresResetHooks(t *testing.T) {
	svc, _ := newSessionService(t)

	fired := false
	svc.OnLogout(func() { fired = true })

	_, _, err := svc.Login(studentProfile())
	require.NoError(t, err)
	require.NoError(t, svc.Logout())

	assert.True(t, fired)
}

func TestStartChatSetsContactAndNavigatingAwayClearsIt(t *testing.T) {
	svc, _ := newSessionService(t)
	_, _, err := svc.Login(studentProfile())
	require.NoError(t, err)

	contact, err := svc.StartChat(&model.OJTPosting{ID: "p1", CompanyName: "Nexus Labs"})
	require.NoError(t, err)
	assert.Equal(t, "Nexus Labs", contact.Name)

	_, view, got := svc.Current()
	assert.Equal(t, model.ViewChat, view)
	require.NotNil(t, got)

	_, err = svc.Navigate(model.ViewMap)
	require.NoError(t, err)

	_, _, got = svc.Current()
	assert.Nil(t, got)
}
