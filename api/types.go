package api

import "time"

// Profile is the remote service's view of a user's career profile.
// Optional fields are pointers so an absent value is distinguishable
// from an empty one.
type Profile struct {
	FirstName string     `json:"firstName"`
	Surname   string     `json:"surname"`
	Email     string     `json:"email"`
	GoalTitle *string    `json:"goalTitle,omitempty"`
	Skills    []string   `json:"skills"`
	Interests []string   `json:"interests"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Roadmap is a generated multi-stage career roadmap.
// Stages is non-empty once a roadmap exists.
type Roadmap struct {
	TargetRole string  `json:"targetRole"`
	Stages     []Stage `json:"stages"`
}

// Stage is one ordered phase of a roadmap. Order is display metadata;
// when absent the 1-based position is used instead.
type Stage struct {
	Order       *int     `json:"order,omitempty"`
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Items       []Course `json:"items"`
}

// Course is a learning item within a stage.
type Course struct {
	ItemID         *string  `json:"itemId,omitempty"`
	Title          string   `json:"title"`
	Description    *string  `json:"description,omitempty"`
	EstimatedHours *float64 `json:"estimatedHours,omitempty"`
	URL            *string  `json:"url,omitempty"`
}

// DashboardSnapshot is the composite dashboard read: profile, roadmap
// summaries and aggregate statistics.
type DashboardSnapshot struct {
	Profile  *Profile         `json:"profile,omitempty"`
	Roadmaps []RoadmapSummary `json:"roadmaps"`
	Stats    DashboardStats   `json:"stats"`
}

type DashboardStats struct {
	TotalRoadmaps        int `json:"totalRoadmaps"`
	TotalStages          int `json:"totalStages"`
	TotalStagesCompleted int `json:"totalStagesCompleted"`
}

// RoadmapSummary is the dashboard's per-roadmap listing entry.
type RoadmapSummary struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Summary     string        `json:"summary"`
	CreatedAt   *time.Time    `json:"createdAt,omitempty"`
	TotalStages int           `json:"totalStages"`
	Stats       *SummaryStats `json:"stats,omitempty"`
}

type SummaryStats struct {
	CompletedCourses int `json:"completedCourses"`
	TotalCourses     int `json:"totalCourses"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned for both accepted and rejected logins;
// Message is only populated when Success is false.
type LoginResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// GenerateRequest carries the profile fields the generator personalises
// a roadmap with. Skills and Interests are always sent, defaulting to
// empty lists when the profile is unavailable.
type GenerateRequest struct {
	UserID    string   `json:"userId"`
	FirstName string   `json:"firstName"`
	Surname   string   `json:"surname"`
	GoalTitle string   `json:"goalTitle"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
}
