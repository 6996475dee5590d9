package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// LeadSubmission holds the contact-form fields as submitted by a visitor. The
// same shape is carried through the pending OTP challenge and into the
// committed lead record.
type LeadSubmission struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Phone   string `json:"phone" bson:"phone"`
	Message string `json:"message" bson:"message"`
	Purpose string `json:"purpose" bson:"purpose"`
}

// Lead holds the structure for the leads collection in mongo. Leads are only
// ever written by the OTP verifier, always with Verified set to true.
type Lead struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Phone     string             `json:"phone" bson:"phone"`
	Message   string             `json:"message" bson:"message"`
	Purpose   string             `json:"purpose" bson:"purpose"`
	Verified  bool               `json:"verified" bson:"verified"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
}
