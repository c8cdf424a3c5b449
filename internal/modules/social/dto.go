package social

import "sessiondesk/internal/domain"

type ToggleInput struct {
	FollowerID string `json:"followerId"`
	FollowedID string `json:"followedId"`
}

type ToggleResult struct {
	Action         string `json:"action"`
	IsFollowing    bool   `json:"isFollowing"`
	FollowersCount int    `json:"followersCount"`
	FollowingCount int    `json:"followingCount"`
}

// FollowingEntry is a resolved member of a user's following list; the
// target may be a studio or another user. Rating is only present for
// studios.
type FollowingEntry struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	ProfileImage string   `json:"profileImage,omitempty"`
	Location     string   `json:"location,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
}

type FollowerEntry struct {
	domain.User
	Type string `json:"type"`
}

type FollowStatus struct {
	IsFollowing    bool `json:"isFollowing"`
	FollowersCount int  `json:"followersCount"`
	FollowingCount int  `json:"followingCount"`
}
