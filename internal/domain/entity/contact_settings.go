package entity

import (
	"time"
)

// ContactSettings is a singleton record; there is exactly one document.
type ContactSettings struct {
	WhatsappNumber   string    `json:"whatsapp_number" firestore:"whatsappNumber"`
	MessengerID      string    `json:"messenger_id" firestore:"messengerId"`
	FacebookPageLink string    `json:"facebook_page_link" firestore:"facebookPageLink"`
	UpdatedAt        time.Time `json:"updated_at" firestore:"updatedAt"`
}
