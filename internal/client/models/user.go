// Package models defines the record types exchanged with the platform backend.
package models

// User is the authenticated account profile as returned by the backend.
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Bio            string `json:"bio,omitempty"`
	College        string `json:"college,omitempty"`
	Branch         string `json:"branch,omitempty"`
	GraduationYear int    `json:"graduationYear,omitempty"`
}

// RegisterRequest carries the fields required to create an account.
type RegisterRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	College        string `json:"college,omitempty"`
	Branch         string `json:"branch,omitempty"`
	GraduationYear int    `json:"graduationYear,omitempty"`
}

// ProfileUpdate is a partial profile patch; zero-valued fields are omitted.
type ProfileUpdate struct {
	Name           string `json:"name,omitempty"`
	Bio            string `json:"bio,omitempty"`
	College        string `json:"college,omitempty"`
	Branch         string `json:"branch,omitempty"`
	GraduationYear int    `json:"graduationYear,omitempty"`
}

// ProfileUser is a user document enriched with posting totals; the backend
// computes the counters onto the user object itself.
type ProfileUser struct {
	User
	PostsCount    int `json:"postsCount"`
	LikesReceived int `json:"likesReceived"`
	CommentsCount int `json:"commentsCount"`
}

// PublicProfile is another user's public page envelope.
type PublicProfile struct {
	User ProfileUser `json:"user"`
}
