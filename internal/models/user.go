// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Availability holds a user's weekly availability flags.
type Availability struct {
	Weekdays bool `json:"weekdays" bson:"weekdays"`
	Weekends bool `json:"weekends" bson:"weekends"`
	Evenings bool `json:"evenings" bson:"evenings"`
	Mornings bool `json:"mornings" bson:"mornings"`
}

// User represents a user in the system.
type User struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Email         string             `json:"email" bson:"email"`
	Password      string             `json:"-" bson:"password"` // "-" = never include in JSON response
	Location      string             `json:"location,omitempty" bson:"location,omitempty"`
	Bio           string             `json:"bio,omitempty" bson:"bio,omitempty"`
	ProfilePhoto  string             `json:"profilePhoto,omitempty" bson:"-"` // Pre-signed URL, not stored in DB
	PhotoKey      string             `json:"-" bson:"photoKey,omitempty"`     // S3 key, not exposed in JSON
	SkillsOffered []string           `json:"skillsOffered" bson:"skillsOffered"`
	SkillsWanted  []string           `json:"skillsWanted" bson:"skillsWanted"`
	Availability  Availability       `json:"availability" bson:"availability"`
	IsPublic      bool               `json:"isPublic" bson:"isPublic"`
	IsActive      bool               `json:"isActive" bson:"isActive"`
	IsBanned      bool               `json:"isBanned" bson:"isBanned"`
	TotalSwaps    int                `json:"totalSwaps" bson:"totalSwaps"`
	AverageRating float64            `json:"averageRating" bson:"averageRating"`
	TotalRatings  int                `json:"totalRatings" bson:"totalRatings"`
	Role          string             `json:"role" bson:"role"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// UserSummary is the trimmed view of a user embedded in swap and rating
// responses, mirroring the fields the list endpoints project.
type UserSummary struct {
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	Name          string             `json:"name" bson:"name"`
	ProfilePhoto  string             `json:"profilePhoto,omitempty" bson:"-"`
	AverageRating float64            `json:"averageRating" bson:"averageRating"`
	TotalSwaps    int                `json:"totalSwaps,omitempty" bson:"totalSwaps"`
}

// SignupRequest is the payload for registration.
type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is the response after successful signup or login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UpdateProfileRequest is the payload for updating a profile. Pointer fields
// distinguish "not sent" from "set to zero value".
type UpdateProfileRequest struct {
	Name          *string       `json:"name" binding:"omitempty,min=2,max=100"`
	Location      *string       `json:"location" binding:"omitempty,max=100"`
	Bio           *string       `json:"bio" binding:"omitempty,max=500"`
	SkillsOffered *[]string     `json:"skillsOffered" binding:"omitempty,max=20,dive,max=50,skill"`
	SkillsWanted  *[]string     `json:"skillsWanted" binding:"omitempty,max=20,dive,max=50,skill"`
	Availability  *Availability `json:"availability"`
}

// UpdateVisibilityRequest is the payload for toggling profile visibility.
type UpdateVisibilityRequest struct {
	IsPublic *bool `json:"isPublic" binding:"required"`
}

// PhotoUploadRequest is the payload for requesting a profile photo upload.
type PhotoUploadRequest struct {
	ContentType string `json:"contentType" binding:"required,oneof=image/jpeg image/png image/webp"`
}

// PhotoUploadResponse carries the pre-signed upload URL for a profile photo.
type PhotoUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	PhotoKey  string `json:"photoKey"`
}

// UserSearchQuery holds the optional discovery filters.
type UserSearchQuery struct {
	Skill    string `form:"skill"`
	Location string `form:"location"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit    int    `form:"limit,default=10" binding:"omitempty,min=1,max=50"`
}

// UserListResponse is the response for paginated user listings.
type UserListResponse struct {
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}

// Pagination matches the original API's pagination block.
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

// NewPagination computes the pagination block for a page read.
func NewPagination(page, limit int, total int64) Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{Current: page, Pages: pages, Total: total}
}

// Summary projects the embedded view of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:            u.ID,
		Name:          u.Name,
		ProfilePhoto:  u.ProfilePhoto,
		AverageRating: u.AverageRating,
		TotalSwaps:    u.TotalSwaps,
	}
}
