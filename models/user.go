package models

import "time"

// User roles supported by the platform.
const (
	RoleStudent = "student"
	RoleParent  = "parent"
	RoleTutor   = "tutor"
	RoleAdmin   = "admin"
)

// User is the authentication identity shared by all roles. Role-specific
// documents (Tutor, Student) are materialized lazily on first access.
type User struct {
	UID          string    `bson:"uid" json:"uid"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PhotoURL     string    `bson:"photoURL" json:"photoURL,omitempty"`
	PasswordHash string    `bson:"passwordHash,omitempty" json:"-"`
	UserType     string    `bson:"userType" json:"userType"` // student, parent, tutor, admin; empty until role selection
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// Identity is the read-only actor view supplied by the identity provider.
type Identity struct {
	UID         string `json:"uid"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	PhotoURL    string `json:"photoURL"`
}
