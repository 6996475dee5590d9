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
	"github.com/bigwigdigital/kpd-realty-api/otp"
	templates "github.com/bigwigdigital/kpd-realty-api/templates/html"
)

// Lead handles the OTP-gated lead capture pipeline: a contact form submission
// is held as a pending challenge until the visitor proves control of their
// email address, and only then committed as a lead record.
type Lead struct {
	DB         databases.LeadDatabase
	Challenges otp.Store
	Mailer     mailer.Mailer
	OpsEmail   string
}

// SendOTPHandler issues an OTP challenge for a contact form submission
func (l Lead) SendOTPHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody models.LeadSubmission

	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if requestBody.Email == "" || requestBody.Name == "" || requestBody.Phone == "" {
		config.ErrorStatus("name, email and phone are required", http.StatusBadRequest, w, fmt.Errorf("missing required fields"))
		return
	}

	// Normalize email to lowercase so issue and verify agree on the key
	requestBody.Email = strings.TrimSpace(strings.ToLower(requestBody.Email))

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	// Fast-path duplicate check; the unique index on leads.email is the
	// authoritative guard against concurrent submissions
	_, err := l.DB.FindOne(ctx, bson.M{"email": requestBody.Email})
	if err == nil {
		config.ErrorStatus("email already exists, please use another email ID", http.StatusBadRequest, w, fmt.Errorf("lead already exists for email"))
		return
	}
	if err != mongo.ErrNoDocuments {
		config.ErrorStatus("failed to check for existing lead", http.StatusInternalServerError, w, err)
		return
	}

	code, err := otp.GenerateCode()
	if err != nil {
		config.ErrorStatus("failed to generate verification code", http.StatusInternalServerError, w, err)
		return
	}

	// Overwrites any challenge already pending for this email, which makes the
	// old code permanently unusable
	l.Challenges.Put(requestBody.Email, otp.Challenge{
		Email:    requestBody.Email,
		Code:     code,
		Payload:  requestBody,
		IssuedAt: time.Now(),
	})

	// Best effort: a failed send is logged but never rolls back the challenge
	// or fails the request
	err = l.Mailer.Send(mailer.Mail{
		To:        requestBody.Email,
		ToName:    requestBody.Name,
		Subject:   "Your OTP - Bigwig Media",
		PlainText: "Your OTP is: " + code,
		HTML:      templates.RenderCode(requestBody.Name, code),
	})
	if err != nil {
		zap.S().Errorw("failed to send OTP email",
			"email", requestBody.Email,
			"error", err,
		)
	}

	writeMessage(w, http.StatusOK, "OTP sent to email.")
}

// VerifyOTPHandler consumes an OTP challenge and, on a match, commits the lead
// and fires the confirmation and internal alert notifications
func (l Lead) VerifyOTPHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}

	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if requestBody.Email == "" || requestBody.OTP == "" {
		config.ErrorStatus("email and otp are required", http.StatusBadRequest, w, fmt.Errorf("missing required fields"))
		return
	}

	requestBody.Email = strings.TrimSpace(strings.ToLower(requestBody.Email))

	challenge, err := l.Challenges.TakeIfMatches(requestBody.Email, requestBody.OTP)
	if err == otp.ErrNotFound {
		config.ErrorStatus("OTP expired or not found", http.StatusBadRequest, w, err)
		return
	}
	if err == otp.ErrCodeMismatch {
		// The challenge stays pending, the visitor may retry
		config.ErrorStatus("invalid OTP", http.StatusBadRequest, w, err)
		return
	}

	newLead := models.Lead{
		ID:        primitive.NewObjectID(),
		Name:      challenge.Payload.Name,
		Email:     challenge.Payload.Email,
		Phone:     challenge.Payload.Phone,
		Message:   challenge.Payload.Message,
		Purpose:   challenge.Payload.Purpose,
		Verified:  true,
		CreatedAt: primitive.NewDateTimeFromTime(time.Now()),
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	// The challenge is already consumed at this point; an insert failure (for
	// example the unique index rejecting a concurrent duplicate) cannot be
	// retried with the same code and must be surfaced, not swallowed
	if _, err := l.DB.InsertOne(ctx, newLead); err != nil {
		zap.S().Errorw("failed to save verified lead",
			"email", newLead.Email,
			"createdAt", newLead.CreatedAt.Time(),
			"error", err,
		)
		config.ErrorStatus("server error while saving lead", http.StatusInternalServerError, w, fmt.Errorf("failed to save lead"))
		return
	}

	// The lead is durably committed; both notifications are fire and forget
	err = l.Mailer.Send(mailer.Mail{
		To:        challenge.Payload.Email,
		ToName:    challenge.Payload.Name,
		Subject:   "We've received your query - KPD",
		PlainText: "Thank you for reaching out to KPD. Our team will get in touch with you within 24-48 hours.",
		HTML:      templates.RenderLeadConfirmation(challenge.Payload.Name),
	})
	if err != nil {
		zap.S().Errorw("failed to send lead confirmation email",
			"email", challenge.Payload.Email,
			"error", err,
		)
	}

	err = l.Mailer.Send(mailer.Mail{
		To:        l.OpsEmail,
		Subject:   "New Lead Captured - Bigwig Media",
		PlainText: fmt.Sprintf("New lead: %s <%s> %s", challenge.Payload.Name, challenge.Payload.Email, challenge.Payload.Phone),
		HTML:      templates.RenderLeadAlert(challenge.Payload),
	})
	if err != nil {
		zap.S().Errorw("failed to send internal lead alert",
			"email", challenge.Payload.Email,
			"opsEmail", l.OpsEmail,
			"error", err,
		)
	}

	writeMessage(w, http.StatusOK, "Lead captured, confirmation sent, HR notified.")
}

// LeadsHandler returns all committed leads, newest first
func (l Lead) LeadsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	sort := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	dbResp, err := l.DB.Find(ctx, bson.M{}, sort)
	if err != nil {
		config.ErrorStatus("server error while fetching leads", http.StatusInternalServerError, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Lead{}
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

func writeMessage(w http.ResponseWriter, status int, message string) {
	b, _ := json.Marshal(models.MessageResponse{Message: message})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}
