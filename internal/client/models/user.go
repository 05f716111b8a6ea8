// Package models defines the SocialHub client data model: the session
// user, tracked social accounts and the patch records used to edit them.
package models

import "time"

// User is the authenticated identity. It owns every account whose
// UserID equals its ID.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserPatch carries a profile update. Nil fields are left untouched.
type UserPatch struct {
	Name   *string
	Email  *string
	Avatar *string
}

// Apply returns u with the present fields of p merged in.
func (u User) Apply(p UserPatch) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	return u
}

// Ptr returns a pointer to v. Handy for building patches.
func Ptr[T any](v T) *T {
	return &v
}
