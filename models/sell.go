package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Sell holds the structure for the sells collection in mongo. A sell listing is
// a property submitted by a seller; once an admin approves it, a copy is
// promoted into the properties collection.
type Sell struct {
	ID    primitive.ObjectID `json:"_id" bson:"_id"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email"`
	Phone string             `json:"phone" bson:"phone"`

	Title       string `json:"title" bson:"title"`
	Slug        string `json:"slug" bson:"slug"`
	Description string `json:"description" bson:"description"`
	Purpose     string `json:"purpose" bson:"purpose"`
	Type        string `json:"type" bson:"type"`
	Location    string `json:"location" bson:"location"`

	Images []string `json:"images" bson:"images"`

	Price     *float64 `json:"price" bson:"price"`
	Bedrooms  *int     `json:"bedrooms" bson:"bedrooms"`
	Bathrooms *int     `json:"bathrooms" bson:"bathrooms"`
	AreaSqft  *float64 `json:"areaSqft" bson:"areaSqft"`

	Highlights        []string `json:"highlights" bson:"highlights"`
	FeaturesAmenities []string `json:"featuresAmenities" bson:"featuresAmenities"`
	Nearby            []string `json:"nearby" bson:"nearby"`

	GoogleMapURL    string   `json:"googleMapUrl" bson:"googleMapUrl"`
	VideoLink       string   `json:"videoLink" bson:"videoLink"`
	ExtraHighlights []string `json:"extraHighlights" bson:"extraHighlights"`

	Approved bool `json:"approved" bson:"approved"`

	CreatedAt   primitive.DateTime `json:"createdAt" bson:"createdAt"`
	LastUpdated primitive.DateTime `json:"lastUpdated" bson:"lastUpdated"`
}
