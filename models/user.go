// models/user.go
package models

import "time"

// User represents a patient account.
type User struct {
	ID                   string    `bson:"id" json:"id"`
	Name                 string    `bson:"name" json:"name"`
	Email                string    `bson:"email" json:"email"`
	Phone                string    `bson:"phone" json:"phone"`
	Avatar               string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	PasswordHash         string    `bson:"passwordHash" json:"-"`
	TotalAppointments    int       `bson:"-" json:"totalAppointments"`
	TotalDoctors         int       `bson:"-" json:"totalDoctors"`
	UpcomingAppointments int       `bson:"-" json:"upcomingAppointments"`
	CreatedAt            time.Time `bson:"createdAt" json:"createdAt"`
}

// UserRegistrationData is the payload accepted by the register endpoint.
type UserRegistrationData struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload accepted by the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse contains the issued token and the signed-in user.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      *User     `json:"user"`
}
