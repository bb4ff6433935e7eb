package entity

import (
	"time"
)

type Review struct {
	ID            string    `json:"id" firestore:"id"`
	Name          string    `json:"name" firestore:"name"`
	Email         string    `json:"email" firestore:"email"`
	Rating        int       `json:"rating" firestore:"rating"` // 1-5
	Comment       string    `json:"comment" firestore:"comment"`
	IsTestimonial bool      `json:"is_testimonial" firestore:"isTestimonial"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updatedAt"`
}
