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

// Property handles property listing requests
type Property struct {
	DB       databases.PropertyDatabase
	Uploader storage.Uploader
}

// CreatePropertyHandler creates a new property from a multipart form, uploading
// any attached images
func (p Property) CreatePropertyHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		config.ErrorStatus("failed to parse multipart form", http.StatusBadRequest, w, err)
		return
	}

	title := r.FormValue("title")
	purpose := r.FormValue("purpose")
	location := r.FormValue("location")
	if title == "" || purpose == "" || location == "" {
		config.ErrorStatus("title, purpose and location are required", http.StatusBadRequest, w, fmt.Errorf("missing required fields"))
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) > maxListingImages {
		config.ErrorStatus("too many images", http.StatusBadRequest, w, fmt.Errorf("at most %d images allowed", maxListingImages))
		return
	}

	images, err := uploadImages(r.Context(), p.Uploader, files)
	if err != nil {
		config.ErrorStatus("failed to upload images", http.StatusInternalServerError, w, err)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	property := models.Property{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Slug:        slugify(title),
		Description: r.FormValue("description"),
		Purpose:     purpose,
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

		CreatedAt:   now,
		LastUpdated: now,
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := p.DB.InsertOne(ctx, property); err != nil {
		config.ErrorStatus("failed to create property", http.StatusBadRequest, w, err)
		return
	}

	b, err := json.Marshal(property)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// PropertiesHandler returns all properties, newest first
func (p Property) PropertiesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	sort := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	dbResp, err := p.DB.Find(ctx, bson.M{}, sort)
	if err != nil {
		config.ErrorStatus("failed to fetch properties", http.StatusInternalServerError, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Property{}
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

// PropertyBySlugHandler returns a single property by slug
func (p Property) PropertyBySlugHandler(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := p.DB.FindOne(ctx, bson.M{"slug": slug})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			config.ErrorStatus("property not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to fetch property", http.StatusInternalServerError, w, err)
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

// DeletePropertyHandler removes a property by slug
func (p Property) DeletePropertyHandler(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	_, err := p.DB.FindOneAndDelete(ctx, bson.M{"slug": slug})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			config.ErrorStatus("property not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to delete property", http.StatusInternalServerError, w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Property deleted successfully")
}

// UpdatePropertyHandler partially updates a property by slug. Only fields
// present in the form are touched; new image uploads are appended to whatever
// the frontend sent back as existingImages.
func (p Property) UpdatePropertyHandler(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		config.ErrorStatus("failed to parse multipart form", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	existing, err := p.DB.FindOne(ctx, bson.M{"slug": slug})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			config.ErrorStatus("property not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to fetch property", http.StatusInternalServerError, w, err)
		return
	}

	images := existing.Images
	if formHas(r, "existingImages") {
		images = stringList(r.FormValue("existingImages"))
	}
	files := r.MultipartForm.File["images"]
	if len(files) > 0 {
		newImages, err := uploadImages(r.Context(), p.Uploader, files)
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
	if formHas(r, "title") {
		set["title"] = r.FormValue("title")
		set["slug"] = slugify(r.FormValue("title"))
	}
	if formHas(r, "description") {
		set["description"] = r.FormValue("description")
	}
	if formHas(r, "purpose") {
		set["purpose"] = r.FormValue("purpose")
	}
	if formHas(r, "location") {
		set["location"] = r.FormValue("location")
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
	if formHas(r, "highlights") {
		set["highlights"] = stringList(r.FormValue("highlights"))
	}
	if formHas(r, "featuresAmenities") {
		set["featuresAmenities"] = stringList(r.FormValue("featuresAmenities"))
	}
	if formHas(r, "nearby") {
		set["nearby"] = stringList(r.FormValue("nearby"))
	}
	if formHas(r, "googleMapUrl") {
		set["googleMapUrl"] = r.FormValue("googleMapUrl")
	}
	if formHas(r, "videoLink") {
		set["videoLink"] = r.FormValue("videoLink")
	}
	if formHas(r, "extraHighlights") {
		set["extraHighlights"] = stringList(r.FormValue("extraHighlights"))
	}

	after := options.After
	updated, err := p.DB.FindOneAndUpdate(ctx, bson.M{"slug": slug}, bson.M{"$set": set},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after})
	if err != nil {
		config.ErrorStatus("failed to update property", http.StatusBadRequest, w, err)
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
