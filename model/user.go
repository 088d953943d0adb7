package model

import "time"

type User struct {
	UserID    string    `firestore:"-" json:"user_id"`
	Email     string    `firestore:"email" json:"email"`
	Password  string    `firestore:"password" json:"-"` // bcrypt hash
	CreatedAt time.Time `firestore:"created_at,serverTimestamp" json:"created_at"`
}
