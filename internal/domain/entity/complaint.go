package entity

import (
	"time"
)

type Complaint struct {
	ID         string    `json:"id" firestore:"id"`
	Name       string    `json:"name" firestore:"name"`
	Email      string    `json:"email" firestore:"email"`
	Details    string    `json:"details" firestore:"details"`
	IsResolved bool      `json:"is_resolved" firestore:"isResolved"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt  time.Time `json:"updated_at" firestore:"updatedAt"`
}
