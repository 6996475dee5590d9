package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bigwigdigital/kpd-realty-api/api/handlers"
	"github.com/bigwigdigital/kpd-realty-api/databases"
	"github.com/bigwigdigital/kpd-realty-api/databases/mocks"
	"github.com/bigwigdigital/kpd-realty-api/models"
)

func approveRequest(t *testing.T, id string) *http.Request {
	req, err := http.NewRequest("POST", "/api/admin/approve/"+id, nil)
	if err != nil {
		t.Fatal(err)
	}
	return req
}

func serveApprove(a handlers.AdminApproval, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r := mux.NewRouter()
	r.HandleFunc("/api/admin/approve/{id}", a.ApproveSellHandler)
	r.ServeHTTP(rr, req)
	return rr
}

func TestAdminApproval_ApproveSellHandler_BadID(t *testing.T) {
	a := handlers.AdminApproval{}

	rr := serveApprove(a, approveRequest(t, "not-a-hex-id"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to get objectID from Hex")
}

func TestAdminApproval_ApproveSellHandler_NotFound(t *testing.T) {
	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "sells").Return(conn)

	a := handlers.AdminApproval{SDB: databases.NewSellDatabase(db)}

	rr := serveApprove(a, approveRequest(t, primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "sell entry not found")
}

func TestAdminApproval_ApproveSellHandler_Success(t *testing.T) {
	price := 4500000.0
	db := &MockDatabaseHelper{}

	sellConn := &mocks.CollectionHelper{}
	sellResult := &mocks.SingleResultHelper{}
	sellResult.On("Decode", mock.Anything).Run(func(args mock.Arguments) {
		sell := args.Get(0).(**models.Sell)
		(*sell).Title = "2 BHK Flat in Sector 62"
		(*sell).Location = "Noida"
		(*sell).Purpose = "Buy"
		(*sell).Price = &price
		(*sell).Images = []string{"https://res.cloudinary.com/demo/kpd/flat.jpg"}
	}).Return(nil)
	sellConn.On("FindOne", mock.Anything, mock.Anything).Return(sellResult)

	var approvedUpdate bson.M
	sellConn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		approvedUpdate = args.Get(2).(bson.M)
	}).Return(&mongo.UpdateResult{ModifiedCount: 1}, nil)

	propConn := &mocks.CollectionHelper{}
	var inserted models.Property
	propConn.On("InsertOne", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		inserted = args.Get(1).(models.Property)
	}).Return(&mocks.InsertOneResultHelper{}, nil)

	db.On("Collection", "sells").Return(sellConn)
	db.On("Collection", "properties").Return(propConn)

	a := handlers.AdminApproval{
		SDB: databases.NewSellDatabase(db),
		PDB: databases.NewPropertyDatabase(db),
	}

	rr := serveApprove(a, approveRequest(t, primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Sell approved and added to properties")

	assert.Equal(t, "2 BHK Flat in Sector 62", inserted.Title)
	assert.Equal(t, "2-bhk-flat-in-sector-62", inserted.Slug)
	assert.Equal(t, []string{"https://res.cloudinary.com/demo/kpd/flat.jpg"}, inserted.Images)
	if assert.NotNil(t, inserted.Price) {
		assert.Equal(t, price, *inserted.Price)
	}

	set := approvedUpdate["$set"].(bson.M)
	assert.Equal(t, true, set["approved"])
}

func TestAdminApproval_ApproveSellHandler_InsertFailure(t *testing.T) {
	db := &MockDatabaseHelper{}

	sellConn := &mocks.CollectionHelper{}
	sellResult := &mocks.SingleResultHelper{}
	sellResult.On("Decode", mock.Anything).Return(nil)
	sellConn.On("FindOne", mock.Anything, mock.Anything).Return(sellResult)

	propConn := &mocks.CollectionHelper{}
	propConn.On("InsertOne", mock.Anything, mock.Anything).Return(nil, mongo.ErrClientDisconnected)

	db.On("Collection", "sells").Return(sellConn)
	db.On("Collection", "properties").Return(propConn)

	a := handlers.AdminApproval{
		SDB: databases.NewSellDatabase(db),
		PDB: databases.NewPropertyDatabase(db),
	}

	rr := serveApprove(a, approveRequest(t, primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to approve sell")
}
