package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminMessage is a platform-wide broadcast created by an admin.
type AdminMessage struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	Type      string             `json:"type" bson:"type"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	CreatedBy primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`

	CreatorInfo *UserSummary `json:"creatorInfo,omitempty" bson:"-"`
}

// CreateAdminMessageRequest is the payload for broadcasting a platform message.
type CreateAdminMessageRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required,max=1000"`
	Type    string `json:"type" binding:"required,oneof=update alert maintenance announcement"`
}

// AdminMessageListQuery holds the filters for listing platform messages.
type AdminMessageListQuery struct {
	Type     string `form:"type" binding:"omitempty,oneof=update alert maintenance announcement"`
	IsActive *bool  `form:"isActive"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit    int    `form:"limit,default=10" binding:"omitempty,min=1,max=50"`
}

// AdminMessageListResponse is the response for listing platform messages.
type AdminMessageListResponse struct {
	Messages   []AdminMessage `json:"messages"`
	Pagination Pagination     `json:"pagination"`
}

// BanUserRequest is the optional payload accompanying a ban toggle.
type BanUserRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

// BanUserResponse echoes the toggled user's moderation state.
type BanUserResponse struct {
	UserID   primitive.ObjectID `json:"userId"`
	Name     string             `json:"name"`
	Email    string             `json:"email"`
	IsBanned bool               `json:"isBanned"`
	Reason   string             `json:"reason,omitempty"`
}

// AdminUserListQuery holds the moderation listing filters.
type AdminUserListQuery struct {
	Status string `form:"status,default=all" binding:"omitempty,oneof=all active inactive banned unbanned"`
	Role   string `form:"role,default=all" binding:"omitempty,oneof=all user admin"`
	Search string `form:"search"`
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=10" binding:"omitempty,min=1,max=50"`
}

// AdminSwapListQuery holds the swap monitoring filters.
type AdminSwapListQuery struct {
	Status    string `form:"status,default=all" binding:"omitempty,oneof=all pending accepted rejected completed cancelled"`
	SortBy    string `form:"sortBy,default=createdAt" binding:"omitempty,oneof=createdAt updatedAt status"`
	SortOrder string `form:"sortOrder,default=desc" binding:"omitempty,oneof=asc desc"`
	Page      int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit     int    `form:"limit,default=10" binding:"omitempty,min=1,max=50"`
}

// ReportQuery selects a daily-bucketed report over a date range.
type ReportQuery struct {
	Type      string     `form:"type" binding:"required,oneof=users swaps ratings"`
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02"`
}

// StatusCount is one bucket of a status breakdown aggregation.
type StatusCount struct {
	Status string `json:"status" bson:"_id"`
	Count  int    `json:"count" bson:"count"`
}

// MonthlyTrend is one year/month bucket of the six-month swap trend.
type MonthlyTrend struct {
	Year      int `json:"year" bson:"year"`
	Month     int `json:"month" bson:"month"`
	Count     int `json:"count" bson:"count"`
	Completed int `json:"completed" bson:"completed"`
}

// SkillCount is one bucket of a top-skills aggregation.
type SkillCount struct {
	Skill string `json:"skill" bson:"_id"`
	Count int    `json:"count" bson:"count"`
}

// StatisticsOverview holds the headline platform counters.
type StatisticsOverview struct {
	TotalSwaps     int64   `json:"totalSwaps"`
	CompletedSwaps int64   `json:"completedSwaps"`
	PendingSwaps   int64   `json:"pendingSwaps"`
	TotalUsers     int64   `json:"totalUsers"`
	ActiveUsers    int64   `json:"activeUsers"`
	CompletionRate float64 `json:"completionRate"` // percent
	AverageRating  float64 `json:"averageRating"`
	TotalRatings   int64   `json:"totalRatings"`
}

// Statistics is the full admin statistics response.
type Statistics struct {
	Overview            StatisticsOverview `json:"overview"`
	SwapStatusBreakdown []StatusCount      `json:"swapStatusBreakdown"`
	MonthlyTrends       []MonthlyTrend     `json:"monthlyTrends"`
	TopSkillsRequested  []SkillCount       `json:"topSkillsRequested"`
	TopSkillsOffered    []SkillCount       `json:"topSkillsOffered"`
}

// DailyUserReport is one day of the users report.
type DailyUserReport struct {
	Date        string `json:"date" bson:"_id"`
	NewUsers    int    `json:"newUsers" bson:"newUsers"`
	ActiveUsers int    `json:"activeUsers" bson:"activeUsers"`
	BannedUsers int    `json:"bannedUsers" bson:"bannedUsers"`
}

// DailySwapReport is one day/status bucket of the swaps report.
type DailySwapReport struct {
	Date   string `json:"date" bson:"date"`
	Status string `json:"status" bson:"status"`
	Count  int    `json:"count" bson:"count"`
}

// DailyRatingReport is one day of the ratings report.
type DailyRatingReport struct {
	Date          string  `json:"date" bson:"_id"`
	TotalRatings  int     `json:"totalRatings" bson:"totalRatings"`
	AverageRating float64 `json:"averageRating" bson:"averageRating"`
}

// Report wraps a generated report with its parameters.
type Report struct {
	ReportType string      `json:"reportType"`
	StartDate  time.Time   `json:"startDate"`
	EndDate    time.Time   `json:"endDate"`
	Data       interface{} `json:"data"`
}
