// Package docs KPD Realty API.
//
// Documentation of KPD Realty API.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//     Host: https://api.bigwigdigital.in
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
// swagger:meta
package docs

import (
	"github.com/bigwigdigital/kpd-realty-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route POST /send-otp lead sendOTPEndpointID
// Issues a one-time verification code for a contact form submission.
// responses:
//   200: messageResponse

// swagger:route POST /verify-otp lead verifyOTPEndpointID
// Verifies a one-time code and commits the pending lead.
// responses:
//   200: messageResponse

// A human-readable outcome message.
// swagger:response messageResponse
type messageResponseWrapper struct {
	// in:body
	Body models.MessageResponse
}

// swagger:route GET /all lead allLeadsEndpointID
// Lists every captured lead, newest first.
// responses:
//   200: leadsResponse

// All verified leads.
// swagger:response leadsResponse
type leadsResponseWrapper struct {
	// in:body
	Body []models.Lead
}

// swagger:route GET /api/properties property propertiesEndpointID
// Lists every property listing, newest first.
// responses:
//   200: propertiesResponse

// All property listings.
// swagger:response propertiesResponse
type propertiesResponseWrapper struct {
	// in:body
	Body []models.Property
}

// swagger:route GET /api/sell/viewsell sell sellsEndpointID
// Lists every seller-submitted listing, newest first.
// responses:
//   200: sellsResponse

// All seller-submitted listings.
// swagger:response sellsResponse
type sellsResponseWrapper struct {
	// in:body
	Body []models.Sell
}
