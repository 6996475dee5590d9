package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bigwigdigital/kpd-realty-api/api/handlers"
	"github.com/bigwigdigital/kpd-realty-api/databases"
	"github.com/bigwigdigital/kpd-realty-api/databases/mocks"
	"github.com/bigwigdigital/kpd-realty-api/models"
)

func TestSell_CreateSellHandler_MissingFields(t *testing.T) {
	s := handlers.Sell{}

	rr := httptest.NewRecorder()
	req := multipartRequest(t, "POST", "/api/sell/addsell", map[string]string{
		"name":  "Ravi",
		"email": "ravi@example.com",
		"title": "2 BHK Flat",
	})
	http.HandlerFunc(s.CreateSellHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "name, email, phone, title and location are required")
}

func TestSell_CreateSellHandler_Success(t *testing.T) {
	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	var inserted models.Sell
	conn.On("InsertOne", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		inserted = args.Get(1).(models.Sell)
	}).Return(&mocks.InsertOneResultHelper{}, nil)
	db.On("Collection", "sells").Return(conn)

	s := handlers.Sell{DB: databases.NewSellDatabase(db)}

	rr := httptest.NewRecorder()
	req := multipartRequest(t, "POST", "/api/sell/addsell", map[string]string{
		"name":     "Ravi",
		"email":    "ravi@example.com",
		"phone":    "9876543210",
		"title":    "2 BHK Flat in Sector 62",
		"location": "Noida",
	})
	http.HandlerFunc(s.CreateSellHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "2-bhk-flat-in-sector-62", inserted.Slug)
	assert.Equal(t, "Buy", inserted.Purpose, "purpose defaults to Buy when omitted")
	assert.False(t, inserted.Approved, "seller submissions always start unapproved")
}

func TestSell_SellsHandler_Empty(t *testing.T) {
	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	cursor := &mocks.CursorHelper{}

	cursor.On("Decode", mock.Anything).Return(nil)
	conn.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(cursor, nil)
	db.On("Collection", "sells").Return(conn)

	s := handlers.Sell{DB: databases.NewSellDatabase(db)}

	req, err := http.NewRequest("GET", "/api/sell/viewsell", nil)
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()
	http.HandlerFunc(s.SellsHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}

func TestSell_SellBySlugHandler_NotFound(t *testing.T) {
	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "sells").Return(conn)

	s := handlers.Sell{DB: databases.NewSellDatabase(db)}

	req, err := http.NewRequest("GET", "/api/sell/no-such-slug", nil)
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()
	r := mux.NewRouter()
	r.HandleFunc("/api/sell/{slug}", s.SellBySlugHandler)
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "sell listing not found")
}

func TestSell_DeleteSellHandler_Success(t *testing.T) {
	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(nil)
	conn.On("FindOneAndDelete", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "sells").Return(conn)

	s := handlers.Sell{DB: databases.NewSellDatabase(db)}

	req, err := http.NewRequest("DELETE", "/api/sell/2-bhk-flat", nil)
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()
	r := mux.NewRouter()
	r.HandleFunc("/api/sell/{slug}", s.DeleteSellHandler)
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Sell listing deleted successfully")
}

func TestSell_UpdateSellHandler_PartialUpdate(t *testing.T) {
	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	findResult := &mocks.SingleResultHelper{}
	updateResult := &mocks.SingleResultHelper{}

	findResult.On("Decode", mock.Anything).Run(func(args mock.Arguments) {
		sell := args.Get(0).(**models.Sell)
		(*sell).Title = "2 BHK Flat"
		(*sell).Slug = "2-bhk-flat"
	}).Return(nil)
	conn.On("FindOne", mock.Anything, mock.Anything).Return(findResult)

	updateResult.On("Decode", mock.Anything).Return(nil)
	conn.On("FindOneAndUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(updateResult)
	db.On("Collection", "sells").Return(conn)

	s := handlers.Sell{DB: databases.NewSellDatabase(db)}

	rr := httptest.NewRecorder()
	req := multipartRequest(t, "PATCH", "/api/sell/2-bhk-flat", map[string]string{
		"phone": "9999999999",
	})
	r := mux.NewRouter()
	r.HandleFunc("/api/sell/{slug}", s.UpdateSellHandler)
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
