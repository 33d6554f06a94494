package api

import (
	"context"
	"net/url"

	"github.com/placeprep/ppclient/internal/client/models"
)

// Client is the transport-agnostic contract for talking to the platform
// backend. The concrete implementation lives in HTTPClient; tests substitute
// fakes.
//
// SetToken is owned exclusively by the session store. Views must never call
// it directly.
type Client interface {
	Close() error
	SetToken(token string)

	Me(ctx context.Context) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (string, *models.User, error)
	UpdateProfile(ctx context.Context, patch models.ProfileUpdate) (*models.User, error)

	ListPosts(ctx context.Context, query url.Values) (*models.PostPage, error)
	SearchPosts(ctx context.Context, query url.Values) (*models.PostPage, error)
	FeaturedPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id string) (*models.Post, error)
	CreatePost(ctx context.Context, draft models.PostDraft) (*models.Post, error)
	UpdatePost(ctx context.Context, id string, draft models.PostDraft) (*models.Post, error)
	DeletePost(ctx context.Context, id string) error

	ToggleLike(ctx context.Context, postID string) (*models.LikeResult, error)
	AddComment(ctx context.Context, postID, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID string) error

	UserProfile(ctx context.Context, userID string) (*models.PublicProfile, error)
	UserPosts(ctx context.Context, userID string) ([]models.Post, error)
	Dashboard(ctx context.Context, userID string) (*models.Dashboard, error)

	TrendingStats(ctx context.Context) (*models.TrendingStats, error)
	OverviewStats(ctx context.Context) (*models.OverviewStats, error)
}
