package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bigwigdigital/kpd-realty-api/api"
	"github.com/bigwigdigital/kpd-realty-api/config"
	"github.com/bigwigdigital/kpd-realty-api/databases"
	"github.com/bigwigdigital/kpd-realty-api/models"
	"github.com/bigwigdigital/kpd-realty-api/storage"
)

// Sell handles seller-submitted listing requests
type Sell struct {
	DB       databases.SellDatabase
	Uploader storage.Uploader
}

// CreateSellHandler creates a new sell listing from a multipart form
func (s Sell) CreateSellHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		config.ErrorStatus("failed to parse multipart form", http.StatusBadRequest, w, err)
		return
	}

	name := r.FormValue("name")
	email := r.FormValue("email")
	phone := r.FormValue("phone")
	title := r.FormValue("title")
	location := r.FormValue("location")
	if name == "" || email == "" || phone == "" || title == "" || location == "" {
		config.ErrorStatus("name, email, phone, title and location are required", http.StatusBadRequest, w, fmt.Errorf("missing required fields"))
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) > maxListingImages {
		config.ErrorStatus("too many images", http.StatusBadRequest, w, fmt.Errorf("at most %d images allowed", maxListingImages))
		return
	}

	images, err := uploadImages(r.Context(), s.Uploader, files)
	if err != nil {
		config.ErrorStatus("failed to upload images", http.StatusInternalServerError, w, err)
		return
	}

	purpose := r.FormValue("purpose")
	if purpose == "" {
		purpose = "Buy"
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	sell := models.Sell{
		ID:    primitive.NewObjectID(),
		Name:  name,
		Email: email,
		Phone: phone,

		Title:       title,
		Slug:        slugify(title),
		Description: r.FormValue("description"),
		Purpose:     purpose,
		Type:        r.FormValue("type"),
		Location:    location,
		Images:      images,

		Price:     floatOrNil(r.FormValue("price")),
		Bedrooms:  intOrNil(r.FormValue("bedrooms")),
		Bathrooms: intOrNil(r.FormValue("bathrooms")),
		AreaSqft:  floatOrNil(r.FormValue("areaSqft")),

		Highlights:        stringList(r.FormValue("highlights")),
		FeaturesAmenities: stringList(r.FormValue("featuresAmenities")),
		Nearby:            stringList(r.FormValue("nearby")),
		GoogleMapURL:      r.FormValue("googleMapUrl"),
		VideoLink:         r.FormValue("videoLink"),
		ExtraHighlights:   stringList(r.FormValue("extraHighlights")),

		Approved: false,

		CreatedAt:   now,
		LastUpdated: now,
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := s.DB.InsertOne(ctx, sell); err != nil {
		config.ErrorStatus("failed to create sell listing", http.StatusBadRequest, w, err)
		return
	}

	b, err := json.Marshal(sell)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// SellsHandler returns all sell listings, newest first
func (s Sell) SellsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	sort := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	dbResp, err := s.DB.Find(ctx, bson.M{}, sort)
	if err != nil {
		config.ErrorStatus("failed to fetch sell listings", http.StatusInternalServerError, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Sell{}
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// SellBySlugHandler returns a single sell listing by slug
func (s Sell) SellBySlugHandler(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := s.DB.FindOne(ctx, bson.M{"slug": slug})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			config.ErrorStatus("sell listing not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to fetch sell listing", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteSellHandler removes a sell listing by slug
func (s Sell) DeleteSellHandler(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	_, err := s.DB.FindOneAndDelete(ctx, bson.M{"slug": slug})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			config.ErrorStatus("sell listing not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to delete sell listing", http.StatusInternalServerError, w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Sell listing deleted successfully")
}

// UpdateSellHandler partially updates a sell listing by slug
func (s Sell) UpdateSellHandler(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		config.ErrorStatus("failed to parse multipart form", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	existing, err := s.DB.FindOne(ctx, bson.M{"slug": slug})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			config.ErrorStatus("sell listing not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to fetch sell listing", http.StatusInternalServerError, w, err)
		return
	}

	images := existing.Images
	if formHas(r, "existingImages") {
		images = stringList(r.FormValue("existingImages"))
	}
	files := r.MultipartForm.File["images"]
	if len(files) > 0 {
		newImages, err := uploadImages(r.Context(), s.Uploader, files)
		if err != nil {
			config.ErrorStatus("failed to upload images", http.StatusInternalServerError, w, err)
			return
		}
		images = append(images, newImages...)
	}

	set := bson.M{
		"images":      images,
		"lastUpdated": primitive.NewDateTimeFromTime(time.Now()),
	}
	for _, field := range []string{"name", "email", "phone", "description", "purpose", "type", "location", "googleMapUrl", "videoLink"} {
		if formHas(r, field) {
			set[field] = r.FormValue(field)
		}
	}
	if formHas(r, "title") {
		set["title"] = r.FormValue("title")
		set["slug"] = slugify(r.FormValue("title"))
	}
	if formHas(r, "price") {
		set["price"] = floatOrNil(r.FormValue("price"))
	}
	if formHas(r, "bedrooms") {
		set["bedrooms"] = intOrNil(r.FormValue("bedrooms"))
	}
	if formHas(r, "bathrooms") {
		set["bathrooms"] = intOrNil(r.FormValue("bathrooms"))
	}
	if formHas(r, "areaSqft") {
		set["areaSqft"] = floatOrNil(r.FormValue("areaSqft"))
	}
	for _, field := range []string{"highlights", "featuresAmenities", "nearby", "extraHighlights"} {
		if formHas(r, field) {
			set[field] = stringList(r.FormValue(field))
		}
	}

	after := options.After
	updated, err := s.DB.FindOneAndUpdate(ctx, bson.M{"slug": slug}, bson.M{"$set": set},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after})
	if err != nil {
		config.ErrorStatus("failed to update sell listing", http.StatusBadRequest, w, err)
		return
	}

	b, err := json.Marshal(updated)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
