package model

import "time"

// Profile shares its id with the owning user.
type Profile struct {
	UserID    string     `firestore:"-" json:"id"`
	FullName  *string    `firestore:"full_name" json:"full_name,omitempty"`
	AvatarURL *string    `firestore:"avatar_url" json:"avatar_url,omitempty"`
	CreatedAt time.Time  `firestore:"created_at,serverTimestamp" json:"created_at"`
	UpdatedAt *time.Time `firestore:"updated_at" json:"updated_at,omitempty"`
}
