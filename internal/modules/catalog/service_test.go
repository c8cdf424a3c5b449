package catalog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sessiondesk/internal/domain"
	"sessiondesk/internal/repository"
	"sessiondesk/internal/store"
)

func newService(t *testing.T) (*Service, *repository.StudioRepository) {
	t.Helper()
	db := store.Open()
	studios := repository.NewStudioRepository(db)

	svc := NewService(studios)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return svc, studios
}

func TestList_LocationFilter(t *testing.T) {
	svc, studios := newService(t)
	studios.Save(domain.Studio{ID: "1", Name: "Downtown Studios", Location: "Brooklyn, NY"})
	studios.Save(domain.Studio{ID: "2", Name: "Harbor Sound", Location: "Queens, NY"})

	assert.Len(t, svc.List(context.Background(), ""), 2)
	assert.Len(t, svc.List(context.Background(), "all"), 2)
	assert.Len(t, svc.List(context.Background(), "All"), 2)

	got := svc.List(context.Background(), "brooklyn")
	require.Len(t, got, 1)
	assert.Equal(t, "Downtown Studios", got[0].Name)

	assert.Empty(t, svc.List(context.Background(), "austin"))
}

func TestList_FollowersCount(t *testing.T) {
	svc, studios := newService(t)
	studios.Save(domain.Studio{ID: "1", Followers: []string{"u1", "u2"}})

	got := svc.List(context.Background(), "")
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].FollowersCount)
}

func TestGet(t *testing.T) {
	svc, studios := newService(t)
	studios.Save(domain.Studio{ID: "1", Name: "Downtown Studios", Followers: []string{"u1"}})

	v, err := svc.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Downtown Studios", v.Name)
	assert.Equal(t, 1, v.FollowersCount)

	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrStudioNotFound)
}

func TestCreateOrUpdate_CreatesWithDefaults(t *testing.T) {
	svc, studios := newService(t)

	name := "Harbor Sound"
	v, created, err := svc.CreateOrUpdate(context.Background(), StudioPatch{
		Owner: "owner@example.com",
		Name:  &name,
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Harbor Sound", v.Name)
	assert.Equal(t, 4.8, v.Rating)
	assert.Equal(t, 12, v.ReviewCount)
	assert.True(t, v.IsAvailable)

	stored, ok := studios.GetByID(v.ID)
	require.True(t, ok)
	assert.Equal(t, "owner@example.com", stored.Owner)
}

func TestCreateOrUpdate_NameDefaultsWhenUnset(t *testing.T) {
	svc, _ := newService(t)

	v, created, err := svc.CreateOrUpdate(context.Background(), StudioPatch{Owner: "owner@example.com"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "New Studio", v.Name)
}

func TestCreateOrUpdate_UpdatesByOwnerAndPreservesFollowers(t *testing.T) {
	svc, studios := newService(t)
	studios.Save(domain.Studio{
		ID:        "s1",
		Name:      "Old Name",
		Owner:     "owner@example.com",
		Followers: []string{"u1", "u2"},
	})

	name := "New Name"
	v, created, err := svc.CreateOrUpdate(context.Background(), StudioPatch{
		Owner: "owner@example.com",
		Name:  &name,
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "s1", v.ID, "owner match resolves to the existing studio")
	assert.Equal(t, "New Name", v.Name)
	assert.Equal(t, 2, v.FollowersCount)

	stored, _ := studios.GetByID("s1")
	assert.Equal(t, []string{"u1", "u2"}, stored.Followers)
}

func TestUpdate_PatchesInPlace(t *testing.T) {
	svc, studios := newService(t)
	studios.Save(domain.Studio{ID: "s1", Name: "Downtown Studios", HourlyRate: 100, Followers: []string{"u1"}})

	rate := 120.0
	v, err := svc.Update(context.Background(), "s1", StudioPatch{HourlyRate: &rate})
	require.NoError(t, err)
	assert.Equal(t, 120.0, v.HourlyRate)
	assert.Equal(t, "Downtown Studios", v.Name, "unset patch fields are untouched")
	assert.Equal(t, "2024-06-01T12:00:00Z", v.UpdatedAt)

	stored, _ := studios.GetByID("s1")
	assert.Equal(t, []string{"u1"}, stored.Followers)

	_, err = svc.Update(context.Background(), "missing", StudioPatch{})
	assert.ErrorIs(t, err, ErrStudioNotFound)
}
