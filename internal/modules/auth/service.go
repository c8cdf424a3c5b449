package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"sessiondesk/internal/domain"
)

type UserRepository interface {
	GetByID(id string) (*domain.User, bool)
	GetByEmail(email string) (*domain.User, bool)
	Save(u domain.User)
}

type StudioRepository interface {
	GetByID(id string) (*domain.Studio, bool)
	ListByOwner(ownerEmail string) []domain.Studio
	Save(s domain.Studio)
	OwnerStudioID(userID string) (string, bool)
	SetOwnerStudio(userID, studioID string)
}

// TokenIssuer signs the placeholder session tokens handed out at login
// and signup. No endpoint verifies them.
type TokenIssuer interface {
	GenerateToken(userID, role string) (string, error)
}

type Service struct {
	// mu serializes the email existence check against the insert, for
	// both signup and login's find-or-create.
	mu sync.Mutex

	users   UserRepository
	studios StudioRepository
	tokens  TokenIssuer

	now   func() time.Time
	newID func() string
}

func NewService(users UserRepository, studios StudioRepository, tokens TokenIssuer) *Service {
	return &Service{
		users:   users,
		studios: studios,
		tokens:  tokens,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Login resolves the user by email, creating one on the fly when the
// email is unknown. Studio-role users also get their studio id resolved.
func (s *Service) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if in.Email == "" {
		return nil, ErrValidation
	}
	role := in.Role
	if role == "" {
		role = "rapper"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users.GetByEmail(in.Email)
	if ok {
		user.Role = role
		s.users.Save(*user)
	} else {
		u := domain.User{
			ID:        s.newID(),
			Email:     in.Email,
			Name:      defaultName(in.Name, in.Email),
			Role:      role,
			Following: []string{},
			Followers: []string{},
			CreatedAt: s.timestamp(),
		}
		s.users.Save(u)
		user = &u
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	res := &AuthResult{User: user, Token: token}
	if role == "studio" {
		res.StudioID = s.resolveStudioID(user)
	}
	return res, nil
}

// Signup registers a new account. Studio-role signups also get a stub
// studio created and mapped to the new user.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	if in.Email == "" {
		return nil, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users.GetByEmail(in.Email); exists {
		return nil, ErrEmailExists
	}

	role := in.Role
	if role == "" {
		role = "rapper"
	}

	user := domain.User{
		ID:        s.newID(),
		Email:     in.Email,
		Name:      in.Name,
		Role:      role,
		Following: []string{},
		Followers: []string{},
		CreatedAt: s.timestamp(),
	}
	s.users.Save(user)

	res := &AuthResult{User: &user}

	if role == "studio" {
		studioName := in.StudioName
		if studioName == "" {
			studioName = defaultName(in.Name, in.Email) + " Studio"
		}
		studio := domain.Studio{
			ID:           s.newID(),
			Name:         studioName,
			Location:     "Location TBD",
			Phone:        in.Phone,
			Email:        in.Email,
			Owner:        in.Email,
			ProfileImage: "/placeholder.svg?height=300&width=400",
			CoverImage:   "/placeholder.svg?height=400&width=600",
			HourlyRate:   100,
			Description:  "Professional recording studio",
			Images:       []string{"/placeholder.svg?height=300&width=400"},
			Gallery:      []string{"/placeholder.svg?height=300&width=400"},
			Specialties:  []string{},
			Amenities:    []string{},
			Equipment:    []string{},
			Rooms:        []domain.Room{},
			Staff:        []string{},
			Followers:    []string{},
			IsAvailable:  true,
			CreatedAt:    s.timestamp(),
			UpdatedAt:    s.timestamp(),
		}
		s.studios.Save(studio)
		s.studios.SetOwnerStudio(user.ID, studio.ID)
		res.StudioID = studio.ID
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	res.Token = token
	return res, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, ok := s.users.GetByID(id)
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, id string, patch UserPatch) (*domain.User, error) {
	user, ok := s.users.GetByID(id)
	if !ok {
		return nil, ErrUserNotFound
	}

	patch.apply(user)
	user.UpdatedAt = s.timestamp()
	s.users.Save(*user)
	return user, nil
}

// UserStudios returns the studios a user owns: the explicit owner
// mapping first, then any studio whose owner email matches.
func (s *Service) UserStudios(ctx context.Context, userID string) []domain.Studio {
	if studioID, ok := s.studios.OwnerStudioID(userID); ok {
		if studio, found := s.studios.GetByID(studioID); found {
			return []domain.Studio{*studio}
		}
	}
	if user, ok := s.users.GetByID(userID); ok {
		return s.studios.ListByOwner(user.Email)
	}
	return []domain.Studio{}
}

func (s *Service) resolveStudioID(user *domain.User) string {
	if studioID, ok := s.studios.OwnerStudioID(user.ID); ok {
		return studioID
	}
	owned := s.studios.ListByOwner(user.Email)
	if len(owned) == 0 {
		return ""
	}
	s.studios.SetOwnerStudio(user.ID, owned[0].ID)
	return owned[0].ID
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// defaultName falls back to the capitalized local part of the email.
func defaultName(name, email string) string {
	if name != "" {
		return name
	}
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return email
	}
	return strings.ToUpper(local[:1]) + local[1:]
}
