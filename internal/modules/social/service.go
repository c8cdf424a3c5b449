package social

import (
	"context"
	"sync"

	"sessiondesk/internal/domain"
)

type UserRepository interface {
	GetByID(id string) (*domain.User, bool)
	Save(u domain.User)
}

type StudioRepository interface {
	GetByID(id string) (*domain.Studio, bool)
	Save(s domain.Studio)
}

// Service maintains the mirrored follow adjacency lists: `following` on
// the follower, `followers` on the target. Targets may be users or
// studios.
type Service struct {
	// mu keeps the two mirrored list updates atomic; no caller ever
	// observes one side updated without the other.
	mu sync.Mutex

	users   UserRepository
	studios StudioRepository
}

func NewService(users UserRepository, studios StudioRepository) *Service {
	return &Service{users: users, studios: studios}
}

// Toggle follows the target if not yet followed, unfollows otherwise.
func (s *Service) Toggle(ctx context.Context, in ToggleInput) (*ToggleResult, error) {
	if in.FollowerID == "" || in.FollowedID == "" {
		return nil, ErrValidation
	}
	if in.FollowerID == in.FollowedID {
		return nil, ErrSelfFollow
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	follower, ok := s.users.GetByID(in.FollowerID)
	if !ok {
		return nil, ErrFollowerNotFound
	}

	// Targets are looked up among studios first, then users.
	var (
		targetFollowers *[]string
		saveTarget      func()
	)
	if studio, ok := s.studios.GetByID(in.FollowedID); ok {
		targetFollowers = &studio.Followers
		saveTarget = func() { s.studios.Save(*studio) }
	} else if user, ok := s.users.GetByID(in.FollowedID); ok {
		targetFollowers = &user.Followers
		saveTarget = func() { s.users.Save(*user) }
	} else {
		return nil, ErrTargetNotFound
	}

	// Stored lists are replaced, never mutated in place: records already
	// handed out by the store share the old backing arrays, and the read
	// paths do not hold mu.
	res := &ToggleResult{}
	if contains(follower.Following, in.FollowedID) {
		follower.Following = remove(follower.Following, in.FollowedID)
		*targetFollowers = remove(*targetFollowers, in.FollowerID)
		res.Action = "unfollowed"
		res.IsFollowing = false
	} else {
		follower.Following = appended(follower.Following, in.FollowedID)
		*targetFollowers = appended(*targetFollowers, in.FollowerID)
		res.Action = "followed"
		res.IsFollowing = true
	}

	s.users.Save(*follower)
	saveTarget()

	res.FollowersCount = len(*targetFollowers)
	res.FollowingCount = len(follower.Following)
	return res, nil
}

// Following resolves the entries a user follows into display records.
// Dangling ids (deleted targets) are skipped.
func (s *Service) Following(ctx context.Context, userID string) ([]FollowingEntry, error) {
	user, ok := s.users.GetByID(userID)
	if !ok {
		return nil, ErrUserNotFound
	}

	out := []FollowingEntry{}
	for _, id := range user.Following {
		if studio, ok := s.studios.GetByID(id); ok {
			rating := studio.Rating
			location := studio.Location
			if location == "" {
				location = studio.Address
			}
			out = append(out, FollowingEntry{
				ID:           id,
				Name:         displayName(studio.Name, "Unnamed Studio"),
				Type:         "studio",
				ProfileImage: studio.ProfileImage,
				Location:     location,
				Rating:       &rating,
			})
			continue
		}
		if followed, ok := s.users.GetByID(id); ok {
			out = append(out, FollowingEntry{
				ID:           id,
				Name:         displayName(followed.Name, "Unknown User"),
				Type:         "user",
				ProfileImage: followed.ProfileImage,
				Location:     followed.Location,
			})
		}
	}
	return out, nil
}

// Followers returns the user records following the target, which may be
// a user or a studio.
func (s *Service) Followers(ctx context.Context, targetID string) ([]FollowerEntry, error) {
	var ids []string
	if studio, ok := s.studios.GetByID(targetID); ok {
		ids = studio.Followers
	} else if user, ok := s.users.GetByID(targetID); ok {
		ids = user.Followers
	} else {
		return nil, ErrTargetNotFound
	}

	out := []FollowerEntry{}
	for _, id := range ids {
		if u, ok := s.users.GetByID(id); ok {
			out = append(out, FollowerEntry{User: *u, Type: "user"})
		}
	}
	return out, nil
}

// Status reports whether userID follows targetID, with both counts.
func (s *Service) Status(ctx context.Context, userID, targetID string) (*FollowStatus, error) {
	user, ok := s.users.GetByID(userID)
	if !ok {
		return nil, ErrUserNotFound
	}

	followersCount := 0
	if studio, ok := s.studios.GetByID(targetID); ok {
		followersCount = len(studio.Followers)
	} else if target, ok := s.users.GetByID(targetID); ok {
		followersCount = len(target.Followers)
	}

	return &FollowStatus{
		IsFollowing:    contains(user.Following, targetID),
		FollowersCount: followersCount,
		FollowingCount: len(user.Following),
	}, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// remove and appended return fresh slices so previously stored list
// snapshots stay intact.
func remove(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func appended(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids...)
	return append(out, id)
}

func displayName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
