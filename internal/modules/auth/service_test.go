package auth

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sessiondesk/internal/domain"
	"sessiondesk/internal/pkg/jwt"
	"sessiondesk/internal/repository"
	"sessiondesk/internal/store"
)

func newService(t *testing.T) (*Service, *repository.UserRepository, *repository.StudioRepository) {
	t.Helper()
	db := store.Open()
	users := repository.NewUserRepository(db)
	studios := repository.NewStudioRepository(db)

	svc := NewService(users, studios, jwt.New("test-secret", time.Hour))
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return svc, users, studios
}

func TestLogin_CreatesUnknownUser(t *testing.T) {
	svc, users, _ := newService(t)

	res, err := svc.Login(context.Background(), LoginInput{Email: "mike@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Mike", res.User.Name, "name falls back to the capitalized email local part")
	assert.Equal(t, "rapper", res.User.Role)
	assert.NotEmpty(t, res.Token)
	assert.Empty(t, res.StudioID)

	stored, ok := users.GetByEmail("mike@example.com")
	require.True(t, ok)
	assert.Equal(t, res.User.ID, stored.ID)
}

func TestLogin_ExistingUserKeepsIDAndUpdatesRole(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	first, err := svc.Login(ctx, LoginInput{Email: "mike@example.com"})
	require.NoError(t, err)

	second, err := svc.Login(ctx, LoginInput{Email: "mike@example.com", Role: "producer"})
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Equal(t, "producer", second.User.Role)
}

func TestLogin_StudioRoleResolvesStudio(t *testing.T) {
	svc, _, studios := newService(t)
	studios.Save(domain.Studio{ID: "s1", Name: "Downtown Studios", Owner: "owner@example.com"})

	res, err := svc.Login(context.Background(), LoginInput{Email: "owner@example.com", Role: "studio"})
	require.NoError(t, err)
	assert.Equal(t, "s1", res.StudioID)

	// The resolved mapping is persisted for the next login.
	mapped, ok := studios.OwnerStudioID(res.User.ID)
	require.True(t, ok)
	assert.Equal(t, "s1", mapped)
}

func TestLogin_MissingEmail(t *testing.T) {
	svc, _, _ := newService(t)
	_, err := svc.Login(context.Background(), LoginInput{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{Email: "mike@example.com", Name: "Mike Chen"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, SignupInput{Email: "mike@example.com", Name: "Other Mike"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestSignup_ConcurrentSameEmail(t *testing.T) {
	svc, users, _ := newService(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	var accepted int32
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Signup(ctx, SignupInput{Email: "dup@example.com"}); err == nil {
				atomic.AddInt32(&accepted, 1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, accepted, "exactly one signup may win the email")
	_, ok := users.GetByEmail("dup@example.com")
	assert.True(t, ok)

	_, err := svc.Signup(ctx, SignupInput{Email: "dup@example.com"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestSignup_StudioRoleCreatesStudio(t *testing.T) {
	svc, _, studios := newService(t)

	res, err := svc.Signup(context.Background(), SignupInput{
		Email:      "owner@example.com",
		Name:       "Dana Lee",
		Role:       "studio",
		StudioName: "Harbor Sound",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.StudioID)

	studio, ok := studios.GetByID(res.StudioID)
	require.True(t, ok)
	assert.Equal(t, "Harbor Sound", studio.Name)
	assert.Equal(t, "owner@example.com", studio.Owner)
	assert.True(t, studio.IsAvailable)
	assert.Empty(t, studio.Rooms)

	mapped, ok := studios.OwnerStudioID(res.User.ID)
	require.True(t, ok)
	assert.Equal(t, res.StudioID, mapped)
}

func TestSignup_StudioNameDefaults(t *testing.T) {
	svc, _, studios := newService(t)

	res, err := svc.Signup(context.Background(), SignupInput{Email: "dana@example.com", Role: "studio"})
	require.NoError(t, err)

	studio, ok := studios.GetByID(res.StudioID)
	require.True(t, ok)
	assert.Equal(t, "Dana Studio", studio.Name)
}

func TestUpdateProfile(t *testing.T) {
	svc, users, _ := newService(t)
	users.Save(domain.User{ID: "u1", Name: "Mike Chen", Bio: "old bio", Location: "Queens"})

	name := "M. Chen"
	bio := "engineer and producer"
	updated, err := svc.UpdateProfile(context.Background(), "u1", UserPatch{Name: &name, Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "M. Chen", updated.Name)
	assert.Equal(t, "engineer and producer", updated.Bio)
	assert.Equal(t, "Queens", updated.Location, "unset patch fields are untouched")
	assert.Equal(t, "2024-06-01T12:00:00Z", updated.UpdatedAt)

	_, err = svc.UpdateProfile(context.Background(), "ghost", UserPatch{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserStudios(t *testing.T) {
	svc, users, studios := newService(t)
	users.Save(domain.User{ID: "u1", Email: "owner@example.com"})
	studios.Save(domain.Studio{ID: "s1", Owner: "owner@example.com"})

	// Falls back to the owner-email match when no mapping exists.
	owned := svc.UserStudios(context.Background(), "u1")
	require.Len(t, owned, 1)
	assert.Equal(t, "s1", owned[0].ID)

	studios.Save(domain.Studio{ID: "s2", Owner: "owner@example.com"})
	studios.SetOwnerStudio("u1", "s2")
	owned = svc.UserStudios(context.Background(), "u1")
	require.Len(t, owned, 1)
	assert.Equal(t, "s2", owned[0].ID, "explicit mapping wins over the email match")

	assert.Empty(t, svc.UserStudios(context.Background(), "ghost"))
}

func TestGeneratedTokenValidates(t *testing.T) {
	svc, _, _ := newService(t)

	res, err := svc.Login(context.Background(), LoginInput{Email: "mike@example.com", Role: "producer"})
	require.NoError(t, err)

	claims, err := jwt.New("test-secret", time.Hour).ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, "producer", claims.Role)

	_, err = jwt.New("other-secret", time.Hour).ValidateToken(res.Token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
