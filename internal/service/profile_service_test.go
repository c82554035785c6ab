package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mapmyojt/mapmyojt/internal/model"
)

func newProfileService(t *testing.T, latency time.Duration) (*ProfileService, *SessionService) {
	t.Helper()
	session, _ := newSessionService(t)
	return NewProfileService(session, latency, zap.NewNop()), session
}

func TestNewDraftRequiresSession(t *testing.T) {
	profiles, _ := newProfileService(t, 0)

	_, err := profiles.NewDraft()
	assert.ErrorIs(t, err, model.ErrLoggedOut)
}

func TestSkillSetSemantics(t *testing.T) {
	profiles, session := newProfileService(t, 0)
	_, _, err := session.Login(studentProfile())
	require.NoError(t, err)

	draft, err := profiles.NewDraft()
	require.NoError(t, err)

	draft.AddSkill("Go")
	draft.AddSkill(" Go ")
	draft.AddSkill("SQL")
	draft.AddSkill("")
	draft.RemoveSkill("SQL")
	draft.RemoveSkill("never there")

	assert.Equal(t, []string{"Go"}, draft.Profile().Skills)
}

func TestCommitAppliesThroughSession(t *testing.T) {
	profiles, session := newProfileService(t, 0)
	_, _, err := session.Login(studentProfile())
	require.NoError(t, err)

	draft, err := profiles.NewDraft()
	require.NoError(t, err)
	draft.SetBio("Updated bio")
	draft.SetOJTStatus(model.OJTStatusHired)

	updated, err := draft.Commit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Updated bio", updated.Bio)
	assert.Equal(t, model.OJTStatusHired, updated.OJTStatus)

	assert.Equal(t, "Updated bio", session.User().Bio)
}

func TestDraftIsInvisibleUntilCommit(t *testing.T) {
	profiles, session := newProfileService(t, 0)
	_, _, err := session.Login(studentProfile())
	require.NoError(t, err)

	draft, err := profiles.NewDraft()
	require.NoError(t, err)
	draft.SetName("Someone Else")

	assert.Equal(t, "Alex Rivera", session.User().Name)
}

func TestCommitDiscardedWhenContextCancelled(t *testing.T) {
	profiles, session := newProfileService(t, 50*time.Millisecond)
	_, _, err := session.Login(studentProfile())
	require.NoError(t, err)

	draft, err := profiles.NewDraft()
	require.NoError(t, err)
	draft.SetBio("never lands")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	updated, err := draft.Commit(ctx)
	require.NoError(t, err)
	assert.Nil(t, updated)

	assert.NotEqual(t, "never lands", session.User().Bio)
}

func TestCommitDiscardedAfterLogout(t *testing.T) {
	profiles, session := newProfileService(t, 0)
	_, _, err := session.Login(studentProfile())
	require.NoError(t, err)

	draft, err := profiles.NewDraft()
	require.NoError(t, err)
	draft.SetBio("stale")

	require.NoError(t, session.Logout())

	updated, err := draft.Commit(context.Background())
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestCommitDiscardedAfterUserSwitch(t *testing.T) {
	profiles, session := newProfileService(t, 0)
	_, _, err := session.Login(studentProfile())
	require.NoError(t, err)

	draft, err := profiles.NewDraft()
	require.NoError(t, err)
	draft.SetBio("stale")

	_, _, err = session.Login(&model.UserProfile{ID: "std-2", Name: "Other", Role: model.RoleStudent})
	require.NoError(t, err)

	updated, err := draft.Commit(context.Background())
	require.NoError(t, err)
	assert.Nil(t, updated)
	assert.NotEqual(t, "stale", session.User().Bio)
}
