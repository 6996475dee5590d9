package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bigwigdigital/kpd-realty-api/api"
	"github.com/bigwigdigital/kpd-realty-api/config"
	"github.com/bigwigdigital/kpd-realty-api/databases"
	"github.com/bigwigdigital/kpd-realty-api/models"
)

// AdminApproval handles promoting seller-submitted listings into the public
// properties collection
type AdminApproval struct {
	SDB databases.SellDatabase
	PDB databases.PropertyDatabase
}

// ApproveSellHandler copies a sell listing into the properties collection and
// marks the original as approved
func (a AdminApproval) ApproveSellHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	sellID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	sell, err := a.SDB.FindOne(ctx, bson.M{"_id": sellID})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			config.ErrorStatus("sell entry not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to fetch sell entry", http.StatusInternalServerError, w, err)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	property := models.Property{
		ID:          primitive.NewObjectID(),
		Title:       sell.Title,
		Slug:        slugify(sell.Title),
		Description: sell.Description,
		Purpose:     sell.Purpose,
		Location:    sell.Location,
		Images:      sell.Images,

		Price:     sell.Price,
		Bedrooms:  sell.Bedrooms,
		Bathrooms: sell.Bathrooms,
		AreaSqft:  sell.AreaSqft,

		Highlights:        sell.Highlights,
		FeaturesAmenities: sell.FeaturesAmenities,
		Nearby:            sell.Nearby,
		GoogleMapURL:      sell.GoogleMapURL,
		VideoLink:         sell.VideoLink,
		ExtraHighlights:   sell.ExtraHighlights,

		CreatedAt:   now,
		LastUpdated: now,
	}

	if _, err := a.PDB.InsertOne(ctx, property); err != nil {
		config.ErrorStatus("failed to approve sell", http.StatusInternalServerError, w, err)
		return
	}

	if err := a.SDB.UpdateOne(ctx, bson.M{"_id": sellID}, bson.M{"$set": bson.M{"approved": true}}); err != nil {
		config.ErrorStatus("failed to mark sell as approved", http.StatusInternalServerError, w, err)
		return
	}

	response := struct {
		Message string          `json:"message"`
		NewBuy  models.Property `json:"newBuy"`
	}{
		Message: "Sell approved and added to properties",
		NewBuy:  property,
	}
	b, err := json.Marshal(response)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
