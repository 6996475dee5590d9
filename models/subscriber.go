package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Subscriber holds the structure for the subscribers collection in mongo
type Subscriber struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Email     string             `json:"email" bson:"email"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
}
