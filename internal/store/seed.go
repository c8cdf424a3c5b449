package store

import (
	"fmt"
	"time"

	"sessiondesk/internal/domain"
)

// Seed loads the sample dataset every fresh process starts with: one
// fully fleshed-out studio, a handful of bare ones, two artists, two
// pending booking requests and three open calls.
func Seed(db *DB) {
	now := time.Now().UTC().Format(time.RFC3339)

	db.Studios.Put("1", domain.Studio{
		ID:           "1",
		Name:         "Downtown Studios",
		Location:     "Los Angeles, CA",
		Address:      "123 Music Row, Downtown LA",
		Phone:        "(555) 123-4567",
		Email:        "info@downtownstudios.com",
		Website:      "https://downtownstudios.com",
		ProfileImage: "/placeholder.svg?height=300&width=400",
		CoverImage:   "/placeholder.svg?height=400&width=600",
		HourlyRate:   120,
		Specialties:  []string{"Hip Hop", "R&B", "Pop"},
		Rating:       4.8,
		ReviewCount:  127,
		Description:  "Professional recording studio in the heart of downtown LA.",
		Amenities:    []string{"24/7 Access", "Parking", "Mixing Board", "Instruments", "WiFi", "Coffee"},
		Owner:        "studio@downtown.com",
		Images:       []string{"/placeholder.svg?height=300&width=400"},
		Gallery:      []string{"/placeholder.svg?height=300&width=400"},
		Equipment:    []string{"Pro Tools", "SSL Console", "Neumann Mics"},
		IsAvailable:  true,
		Followers:    []string{},
		Staff:        []string{},
		Rooms: []domain.Room{
			{
				ID:          "room-1-1",
				Name:        "Studio A",
				Description: "Main recording room with live room and booth",
				HourlyRate:  150,
				Capacity:    10,
				Images:      []string{"/placeholder.svg?height=300&width=400"},
				Equipment:   []string{"Pro Tools", "SSL Console", "Neumann U87"},
			},
			{
				ID:          "room-1-2",
				Name:        "Studio B",
				Description: "Compact recording studio perfect for vocals",
				HourlyRate:  95,
				Capacity:    4,
				Images:      []string{"/placeholder.svg?height=300&width=400"},
				Equipment:   []string{"Logic Pro", "Focusrite Interface", "Shure SM7B"},
			},
		},
	})

	for i := 2; i <= 5; i++ {
		id := fmt.Sprintf("%d", i)
		db.Studios.Put(id, domain.Studio{
			ID:           id,
			Name:         fmt.Sprintf("Studio %d", i),
			Location:     "Los Angeles, CA",
			Address:      fmt.Sprintf("Address %d", i),
			Phone:        fmt.Sprintf("(555) 123-456%d", i),
			Email:        fmt.Sprintf("studio%d@example.com", i),
			Website:      fmt.Sprintf("https://studio%d.com", i),
			ProfileImage: "/placeholder.svg?height=300&width=400",
			CoverImage:   "/placeholder.svg?height=400&width=600",
			HourlyRate:   float64(100 + i*10),
			Specialties:  []string{"Hip Hop", "R&B"},
			Rating:       4.0 + float64(i)*0.1,
			ReviewCount:  50 + i*10,
			Description:  fmt.Sprintf("Professional recording studio %d.", i),
			Amenities:    []string{"24/7 Access", "Parking", "WiFi"},
			Owner:        fmt.Sprintf("owner%d@example.com", i),
			Images:       []string{"/placeholder.svg?height=300&width=400"},
			Gallery:      []string{"/placeholder.svg?height=300&width=400"},
			Equipment:    []string{"Pro Tools"},
			IsAvailable:  true,
			Followers:    []string{},
			Rooms:        []domain.Room{},
			Staff:        []string{},
		})
	}

	db.Users.Put("sample-user-1", domain.User{
		ID:         "sample-user-1",
		Email:      "mike@example.com",
		Name:       "Mike Chen",
		Role:       "rapper",
		Bio:        "Hip-hop artist from LA specializing in conscious rap and storytelling.",
		Location:   "Los Angeles, CA",
		Experience: "intermediate",
		Genres:     []string{"Hip Hop", "Conscious Rap"},
		SocialMedia: map[string]string{
			"instagram":  "@mikechen",
			"twitter":    "@mikechen",
			"soundcloud": "mikechen-music",
		},
		ProfileImage: "/placeholder.svg?height=300&width=300",
		BannerImage:  "/placeholder.svg?height=200&width=800",
		ProjectHighlights: []domain.ProjectHighlight{
			{ID: "project-1", Title: "Midnight Reflections EP", Description: "A 5-track EP exploring themes of urban life and personal growth."},
			{ID: "project-2", Title: "City Lights (Single)", Description: "Collaboration with local producer featuring live instrumentation."},
		},
		Following: []string{},
		Followers: []string{},
		CreatedAt: now,
	})

	db.Users.Put("sample-user-2", domain.User{
		ID:         "sample-user-2",
		Email:      "sarah@example.com",
		Name:       "Sarah Johnson",
		Role:       "rapper",
		Bio:        "R&B and hip-hop vocalist with a passion for melodic flows.",
		Location:   "Atlanta, GA",
		Experience: "advanced",
		Genres:     []string{"R&B", "Hip Hop", "Neo Soul"},
		SocialMedia: map[string]string{
			"instagram": "@sarahj_music",
			"spotify":   "Sarah Johnson",
		},
		ProfileImage: "/placeholder.svg?height=300&width=300",
		ProjectHighlights: []domain.ProjectHighlight{
			{ID: "project-3", Title: "Velvet Dreams Album", Description: "Debut album blending contemporary R&B with classic soul influences."},
		},
		Following: []string{},
		Followers: []string{},
		CreatedAt: now,
	})

	db.BookingRequests.Put("req-456-789", domain.BookingRequest{
		ID:         "req-456-789",
		StudioID:   "1",
		StudioName: "Downtown Studios",
		RoomID:     "room-1-2",
		RoomName:   "Studio B",
		UserID:     "rapper2",
		UserName:   "Maya Johnson",
		UserEmail:  "maya@example.com",
		Date:       "2024-06-20",
		StartTime:  "16:00",
		EndTime:    "20:00",
		Duration:   4,
		HourlyRate: 95,
		TotalCost:  380,
		Message:    "Need to record vocals for my EP. Looking for a clean, professional sound.",
		Status:     domain.RequestPending,
		CreatedAt:  "2024-06-12T14:20:00Z",
	})

	db.BookingRequests.Put("req-789-456", domain.BookingRequest{
		ID:         "req-789-456",
		StudioID:   "1",
		StudioName: "Downtown Studios",
		RoomID:     "room-1-3",
		RoomName:   "Studio C",
		UserID:     "rapper4",
		UserName:   "Sam Turner",
		UserEmail:  "sam@example.com",
		Date:       "2024-07-05",
		StartTime:  "18:00",
		EndTime:    "22:00",
		Duration:   4,
		HourlyRate: 75,
		TotalCost:  300,
		Message:    "First time recording, looking for a professional experience.",
		Status:     domain.RequestPending,
		CreatedAt:  "2024-06-25T16:45:00Z",
	})

	db.OpenCalls.Put("call-1", domain.OpenCall{
		ID:            "call-1",
		PostedByID:    "1",
		PostedByType:  "studio",
		PostedByName:  "Downtown Studios",
		PostedByImage: "/placeholder.svg?height=40&width=40",
		Role:          "Looking for mixing engineer",
		Description:   "We're seeking an experienced mixing engineer for our upcoming R&B project. Must have experience with analog gear and Pro Tools. This is a paid opportunity for the right candidate.",
		Genre:         "R&B",
		Location:      "Los Angeles, CA",
		Budget:        "$1000-2000",
		Deadline:      "2024-07-15",
		ContactEmail:  "info@downtownstudios.com",
		Status:        domain.OpenCallActive,
		CreatedAt:     "2024-06-10T10:30:00Z",
		Applicants:    []domain.Applicant{},
	})

	db.OpenCalls.Put("call-2", domain.OpenCall{
		ID:            "call-2",
		PostedByID:    "rapper2",
		PostedByType:  "user",
		PostedByName:  "Maya Johnson",
		PostedByImage: "/placeholder.svg?height=40&width=40",
		Role:          "Need a producer",
		Description:   "Looking for a producer who specializes in trap beats. I'm working on my debut EP and need someone who can bring fresh energy to my sound. Open to collaboration or work-for-hire.",
		Genre:         "Hip Hop",
		Location:      "Remote",
		Budget:        "$500-1500",
		Deadline:      "2024-07-30",
		ContactEmail:  "maya@example.com",
		Status:        domain.OpenCallActive,
		CreatedAt:     "2024-06-12T14:20:00Z",
		Applicants:    []domain.Applicant{},
	})

	db.OpenCalls.Put("call-3", domain.OpenCall{
		ID:            "call-3",
		PostedByID:    "2",
		PostedByType:  "studio",
		PostedByName:  "Studio 2",
		PostedByImage: "/placeholder.svg?height=40&width=40",
		Role:          "Vocalist needed",
		Description:   "Demo project needs a soulful vocalist for background vocals. Great opportunity for newer artists to build their portfolio. Session includes meal and transportation covered.",
		Genre:         "Soul",
		Location:      "Los Angeles, CA",
		Budget:        "$200-500",
		Deadline:      "2024-06-25",
		ContactEmail:  "studio2@example.com",
		Status:        domain.OpenCallActive,
		CreatedAt:     "2024-06-08T09:15:00Z",
		Applicants:    []domain.Applicant{},
	})
}
