package models

// OverviewStats is the platform-wide summary shown on the home view.
type OverviewStats struct {
	TotalUsers       int     `json:"totalUsers"`
	TotalExperiences int     `json:"totalExperiences"`
	SuccessRate      float64 `json:"successRate"`
	UniqueCompanies  int     `json:"uniqueCompanies"`
}

// CompanyStat is one company's share of trending activity. The backend
// aggregates by company name, which arrives as the group id.
type CompanyStat struct {
	Company     string  `json:"_id"`
	Count       int     `json:"count"`
	SuccessRate float64 `json:"successRate"`
}

// TrendingStats aggregates recent activity for the home view. Unlike the
// overview numbers, the body is the envelope itself.
type TrendingStats struct {
	TrendingCompanies []CompanyStat `json:"trendingCompanies"`
}

// DashboardStats summarizes one user's posting activity.
type DashboardStats struct {
	TotalPosts            int `json:"totalPosts"`
	TotalLikesReceived    int `json:"totalLikesReceived"`
	TotalCommentsReceived int `json:"totalCommentsReceived"`
	TotalViews            int `json:"totalViews"`
}

// Achievements carries the dashboard's derived quality numbers.
type Achievements struct {
	AveragePostScore float64 `json:"averagePostScore"`
	HighlightedPosts int     `json:"highlightedPosts"`
}

// Dashboard is the aggregate view returned for the authenticated user.
// Recent activity entries are posts, not a separate event record.
type Dashboard struct {
	Stats          DashboardStats `json:"stats"`
	RecentPosts    []Post         `json:"recentPosts"`
	MostLikedPost  *Post          `json:"mostLikedPost"`
	RecentActivity []Post         `json:"recentActivity"`
	Achievements   Achievements   `json:"achievements"`
}
