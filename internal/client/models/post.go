package models

import "time"

// ExperienceType classifies the kind of engagement the interview was for.
type ExperienceType string

const (
	ExperienceInternship ExperienceType = "internship"
	ExperienceFullTime   ExperienceType = "full-time"
	ExperienceContract   ExperienceType = "contract"
	ExperienceOther      ExperienceType = "other"
)

// Difficulty rates the interview process overall.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Outcome records how the process ended for the author.
type Outcome string

const (
	OutcomeSelected    Outcome = "selected"
	OutcomeRejected    Outcome = "rejected"
	OutcomePending     Outcome = "pending"
	OutcomeDidntAttend Outcome = "didnt-attend"
)

// Round is one stage of an interview process within a post.
type Round struct {
	RoundName   string   `json:"roundName"`
	Description string   `json:"description"`
	Duration    string   `json:"duration,omitempty"`
	Questions   []string `json:"questions"`
	Tips        []string `json:"tips"`
}

// Author is the condensed user reference embedded in posts and comments.
type Author struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Post is one submitted interview-experience record.
type Post struct {
	ID             string         `json:"_id"`
	Title          string         `json:"title"`
	Company        string         `json:"company"`
	Position       string         `json:"position"`
	Location       string         `json:"location,omitempty"`
	ExperienceType ExperienceType `json:"experienceType"`
	Difficulty     Difficulty     `json:"difficulty"`
	Outcome        Outcome        `json:"outcome"`
	Salary         string         `json:"salary,omitempty"`
	Content        string         `json:"content"`
	Rounds         []Round        `json:"rounds"`
	Comments       []Comment      `json:"comments,omitempty"`
	Author         Author         `json:"author"`
	LikesCount     int            `json:"likesCount"`
	CommentsCount  int            `json:"commentsCount"`
	Views          int            `json:"views"`
	IsLiked        bool           `json:"isLiked"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// PostDraft is the client-side payload for creating or updating a post.
// Rounds are expected to be pruned of blank entries before submission.
type PostDraft struct {
	Title          string         `json:"title"`
	Company        string         `json:"company"`
	Position       string         `json:"position"`
	Location       string         `json:"location,omitempty"`
	ExperienceType ExperienceType `json:"experienceType"`
	Difficulty     Difficulty     `json:"difficulty"`
	Outcome        Outcome        `json:"outcome"`
	Salary         string         `json:"salary,omitempty"`
	Content        string         `json:"content"`
	Rounds         []Round        `json:"rounds"`
}

// Comment is one reader comment attached to a post.
type Comment struct {
	ID        string    `json:"_id"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// Pagination is the backend's paging envelope for list and search results.
type Pagination struct {
	Current int  `json:"current"`
	Pages   int  `json:"pages"`
	Total   int  `json:"total"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
}

// PostPage is one page of posts together with its paging envelope.
type PostPage struct {
	Posts      []Post     `json:"posts"`
	Pagination Pagination `json:"pagination"`
}

// LikeResult is the backend's response to a like/unlike toggle.
type LikeResult struct {
	IsLiked    bool `json:"isLiked"`
	LikesCount int  `json:"likesCount"`
}
