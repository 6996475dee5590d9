package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/bigwigdigital/kpd-realty-api/api"
	"github.com/bigwigdigital/kpd-realty-api/config"
	"github.com/bigwigdigital/kpd-realty-api/databases"
	"github.com/bigwigdigital/kpd-realty-api/mailer"
	"github.com/bigwigdigital/kpd-realty-api/models"
	templates "github.com/bigwigdigital/kpd-realty-api/templates/html"
)

// Subscriber handles newsletter subscription requests
type Subscriber struct {
	DB     databases.SubscriberDatabase
	Mailer mailer.Mailer
}

// SubscribeHandler adds an email to the newsletter list
func (s Subscriber) SubscribeHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody struct {
		Email string `json:"email"`
	}

	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if requestBody.Email == "" {
		config.ErrorStatus("email is required", http.StatusBadRequest, w, fmt.Errorf("missing email"))
		return
	}
	requestBody.Email = strings.TrimSpace(strings.ToLower(requestBody.Email))

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	_, err := s.DB.FindOne(ctx, bson.M{"email": requestBody.Email})
	if err == nil {
		config.ErrorStatus("email already subscribed", http.StatusConflict, w, fmt.Errorf("subscriber already exists"))
		return
	}
	if err != mongo.ErrNoDocuments {
		config.ErrorStatus("failed to check for existing subscriber", http.StatusInternalServerError, w, err)
		return
	}

	subscriber := models.Subscriber{
		ID:        primitive.NewObjectID(),
		Email:     requestBody.Email,
		CreatedAt: primitive.NewDateTimeFromTime(time.Now()),
	}
	if _, err := s.DB.InsertOne(ctx, subscriber); err != nil {
		config.ErrorStatus("failed to save subscriber", http.StatusInternalServerError, w, err)
		return
	}

	// Confirmation mail is best effort, the subscription is already saved
	err = s.Mailer.Send(mailer.Mail{
		To:        requestBody.Email,
		Subject:   "You are subscribed to our Newsletter",
		PlainText: "Thank you for subscribing",
		HTML:      templates.RenderGenericEmail("Subscription Confirmed", "Hi there,\n\nThank you for subscribing to our newsletter. We'll keep you updated with the latest news, offers, and insights.\n\nIf you didn't subscribe, please ignore this email.\n\nBest regards,\nThe Team"),
	})
	if err != nil {
		zap.S().Errorw("failed to send subscription confirmation email",
			"email", requestBody.Email,
			"error", err,
		)
	}

	writeMessage(w, http.StatusCreated, "Subscribed successfully")
}

// SubscribersHandler returns all subscribers, newest first
func (s Subscriber) SubscribersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	sort := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	dbResp, err := s.DB.Find(ctx, bson.M{}, sort)
	if err != nil {
		config.ErrorStatus("failed to fetch subscribers", http.StatusInternalServerError, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Subscriber{}
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
