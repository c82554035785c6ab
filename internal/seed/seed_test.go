package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapmyojt/mapmyojt/internal/model"
)

func TestLoadParsesEmbeddedData(t *testing.T) {
	data, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, data.Users)
	assert.NotEmpty(t, data.Postings)
	assert.NotEmpty(t, data.Logs)
	assert.NotEmpty(t, data.Messages)
}

func TestLoadReturnsFreshCopies(t *testing.T) {
	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)

	first.Postings[0].Status = model.PostingStatusClosed
	assert.Equal(t, model.PostingStatusActive, second.Postings[0].Status)
}

func TestSeedStatusesMatchRoles(t *testing.T) {
	data, err := Load()
	require.NoError(t, err)

	for _, u := range data.Users {
		switch u.Role {
		case model.RoleStudent:
			assert.Empty(t, u.CompanyStatus, "student %s carries a company status", u.ID)
		case model.RoleBusiness:
			assert.Empty(t, u.OJTStatus, "business %s carries an OJT status", u.ID)
		}
		assert.True(t, u.Role.IsValid(), "user %s has unknown role", u.ID)
	}
}

func TestSeedMessagesAreAscending(t *testing.T) {
	data, err := Load()
	require.NoError(t, err)

	var prev int64
	for _, m := range data.Messages {
		assert.Greater(t, m.Timestamp, prev)
		prev = m.Timestamp
	}
}

func TestSeedPostingsHaveValidCategories(t *testing.T) {
	data, err := Load()
	require.NoError(t, err)

	for _, p := range data.Postings {
		assert.True(t, p.Category.IsValid(), "posting %s has unknown category %q", p.ID, p.Category)
		assert.NotEmpty(t, p.CompanyName)
	}
}

func TestSeedContainsUnverifiedBusiness(t *testing.T) {
	data, err := Load()
	require.NoError(t, err)

	found := false
	for _, u := range data.Users {
		if u.Role == model.RoleBusiness && !u.IsVerified {
			found = true
		}
	}
	assert.True(t, found, "verification queue would start empty")
}
