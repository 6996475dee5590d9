package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Property holds the structure for the properties collection in mongo. Numeric
// fields are pointers so an empty form value is stored as null rather than 0.
type Property struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`
	Slug        string             `json:"slug" bson:"slug"`
	Description string             `json:"description" bson:"description"`
	Purpose     string             `json:"purpose" bson:"purpose"` // Buy, Sell or Offplan
	Location    string             `json:"location" bson:"location"`

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

	CreatedAt   primitive.DateTime `json:"createdAt" bson:"createdAt"`
	LastUpdated primitive.DateTime `json:"lastUpdated" bson:"lastUpdated"`
}
