package entity

import (
	"time"
)

// Condition values a listing may carry
const (
	ConditionNew           = "new"
	ConditionUsedExcellent = "used-excellent"
	ConditionUsedGood      = "used-good"
	ConditionUsedFair      = "used-fair"
)

type Listing struct {
	ID          string    `json:"id" firestore:"id"`
	Make        string    `json:"make" firestore:"make"`
	Model       string    `json:"model" firestore:"model"`
	Year        int       `json:"year" firestore:"year"`
	Price       float64   `json:"price" firestore:"price"`
	Mileage     float64   `json:"mileage" firestore:"mileage"`
	Condition   string    `json:"condition" firestore:"condition"`
	Features    []string  `json:"features" firestore:"features"`
	Images      []string  `json:"images" firestore:"images"`
	Description string    `json:"description" firestore:"description"`
	Sold        bool      `json:"sold" firestore:"sold"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}

// ListingAttributes is the subset of listing fields the ad copy
// generator works from.
type ListingAttributes struct {
	Make      string   `json:"make"`
	Model     string   `json:"model"`
	Year      int      `json:"year"`
	Price     float64  `json:"price"`
	Mileage   float64  `json:"mileage"`
	Condition string   `json:"condition"`
	Features  []string `json:"features"`
}
