package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mapmyojt/mapmyojt/internal/model"
	"github.com/mapmyojt/mapmyojt/internal/store"
)

func newPostingService() *PostingService {
	return NewPostingService(store.NewPostingStore(nil), zap.NewNop())
}

func TestCreateAppearsExactlyOnceAsActive(t *testing.T) {
	svc := newPostingService()

	created, err := svc.Create("Nexus Labs", PostingDraft{
		Title:       "Frontend Intern",
		Description: "Build dashboards",
		Category:    model.CategoryTech,
		Slots:       2,
		Skills:      "React, CSS",
	})
	require.NoError(t, err)
	assert.Equal(t, model.PostingStatusActive, created.Status)
	assert.Equal(t, []string{"React", "CSS"}, created.RequiredSkills)

	all := svc.List("")
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
}

func TestCreateAppliesLocationDefaults(t *testing.T) {
	svc := newPostingService()

	created, err := svc.Create("Nexus Labs", PostingDraft{
		Title:       "Intern",
		Description: "Work",
		Category:    model.CategoryDesign,
	})
	require.NoError(t, err)

	assert.Equal(t, defaultAddress, created.Address)
	assert.Equal(t, defaultLat, created.Lat)
	assert.Equal(t, defaultLng, created.Lng)
}

func TestCreateValidation(t *testing.T) {
	svc := newPostingService()

	_, err := svc.Create("", PostingDraft{Title: "T", Description: "D", Category: model.CategoryTech})
	assert.Error(t, err)

	_, err = svc.Create("Nexus Labs", PostingDraft{Title: "  ", Description: "D", Category: model.CategoryTech})
	assert.Error(t, err)

	_, err = svc.Create("Nexus Labs", PostingDraft{Title: "T", Description: "D", Category: "Cooking"})
	assert.Error(t, err)

	_, err = svc.Create("Nexus Labs", PostingDraft{Title: "T", Description: "D", Category: model.CategoryTech, Slots: -1})
	assert.Error(t, err)
}

func TestToggleStatusIsInvolution(t *testing.T) {
	svc := newPostingService()

	created, err := svc.Create("Nexus Labs", PostingDraft{
		Title:       "Intern",
		Description: "Work",
		Category:    model.CategoryTech,
	})
	require.NoError(t, err)

	closed, err := svc.ToggleStatus(created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PostingStatusClosed, closed.Status)

	reopened, err := svc.ToggleStatus(created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PostingStatusActive, reopened.Status)
}

func TestToggleStatusUnknownIDIsNotFound(t *testing.T) {
	svc := newPostingService()

	_, err := svc.ToggleStatus("missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestListFiltersByCategory(t *testing.T) {
	svc := newPostingService()

	_, err := svc.Create("Nexus Labs", PostingDraft{Title: "A", Description: "D", Category: model.CategoryTech})
	require.NoError(t, err)
	_, err = svc.Create("Vivid Media", PostingDraft{Title: "B", Description: "D", Category: model.CategoryDesign})
	require.NoError(t, err)

	assert.Len(t, svc.List("Tech"), 1)
	assert.Len(t, svc.List("Design"), 1)
	assert.Len(t, svc.List("Marketing"), 0)
	assert.Len(t, svc.List("All"), 2)
	assert.Len(t, svc.List(""), 2)
}

func TestListByCompany(t *testing.T) {
	svc := newPostingService()

	_, err := svc.Create("Nexus Labs", PostingDraft{Title: "A", Description: "D", Category: model.CategoryTech})
	require.NoError(t, err)
	_, err = svc.Create("Vivid Media", PostingDraft{Title: "B", Description: "D", Category: model.CategoryTech})
	require.NoError(t, err)

	mine := svc.ListByCompany("Nexus Labs")
	require.Len(t, mine, 1)
	assert.Equal(t, "A", mine[0].Title)
}

func TestMarkersExcludeClosedPostings(t *testing.T) {
	svc := newPostingService()

	active, err := svc.Create("Nexus Labs", PostingDraft{Title: "A", Description: "D", Category: model.CategoryTech})
	require.NoError(t, err)
	closed, err := svc.Create("Vivid Media", PostingDraft{Title: "B", Description: "D", Category: model.CategoryTech})
	require.NoError(t, err)
	_, err = svc.ToggleStatus(closed.ID)
	require.NoError(t, err)

	markers := svc.Markers()
	require.Len(t, markers, 1)
	assert.Equal(t, active.ID, markers[0].ID)
	assert.Equal(t, "Nexus Labs: A", markers[0].Label)
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"React", "CSS"}, SplitSkills("React, CSS"))
	assert.Equal(t, []string{"Go"}, SplitSkills("  Go , ,"))
	assert.Empty(t, SplitSkills(""))
	assert.Empty(t, SplitSkills(" , ,, "))
}
