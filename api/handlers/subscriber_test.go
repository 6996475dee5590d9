package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bigwigdigital/kpd-realty-api/api/handlers"
	"github.com/bigwigdigital/kpd-realty-api/databases"
	"github.com/bigwigdigital/kpd-realty-api/databases/mocks"
	"github.com/bigwigdigital/kpd-realty-api/models"
)

func subscribeRequest(t *testing.T, body string) *http.Request {
	req, err := http.NewRequest("POST", "/subscribe", bytes.NewReader([]byte(body)))
	if err != nil {
		t.Fatal(err)
	}
	return req
}

func TestSubscriber_SubscribeHandler_MissingEmail(t *testing.T) {
	s := handlers.Subscriber{Mailer: &MockMailer{}}

	rr := httptest.NewRecorder()
	http.HandlerFunc(s.SubscribeHandler).ServeHTTP(rr, subscribeRequest(t, `{}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "email is required")
}

func TestSubscriber_SubscribeHandler_AlreadySubscribed(t *testing.T) {
	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(nil)
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "subscribers").Return(conn)

	m := &MockMailer{}
	s := handlers.Subscriber{DB: databases.NewSubscriberDatabase(db), Mailer: m}

	rr := httptest.NewRecorder()
	http.HandlerFunc(s.SubscribeHandler).ServeHTTP(rr, subscribeRequest(t, `{"email":"asha@example.com"}`))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "email already subscribed")
	m.AssertNotCalled(t, "Send", mock.Anything)
}

func TestSubscriber_SubscribeHandler_Success(t *testing.T) {
	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	var inserted models.Subscriber
	conn.On("InsertOne", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		inserted = args.Get(1).(models.Subscriber)
	}).Return(&mocks.InsertOneResultHelper{}, nil)
	db.On("Collection", "subscribers").Return(conn)

	m := &MockMailer{}
	m.On("Send", mock.Anything).Return(nil)
	s := handlers.Subscriber{DB: databases.NewSubscriberDatabase(db), Mailer: m}

	rr := httptest.NewRecorder()
	http.HandlerFunc(s.SubscribeHandler).ServeHTTP(rr, subscribeRequest(t, `{"email":"Asha@Example.COM"}`))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "Subscribed successfully")
	assert.Equal(t, "asha@example.com", inserted.Email)

	sent := m.sentMail()
	assert.Len(t, sent, 1)
	assert.Equal(t, "You are subscribed to our Newsletter", sent[0].Subject)
}

func TestSubscriber_SubscribeHandler_MailFailureStillSubscribes(t *testing.T) {
	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	conn.On("InsertOne", mock.Anything, mock.Anything).Return(&mocks.InsertOneResultHelper{}, nil)
	db.On("Collection", "subscribers").Return(conn)

	m := &MockMailer{}
	m.On("Send", mock.Anything).Return(errors.New("sendgrid returned status 503"))
	s := handlers.Subscriber{DB: databases.NewSubscriberDatabase(db), Mailer: m}

	rr := httptest.NewRecorder()
	http.HandlerFunc(s.SubscribeHandler).ServeHTTP(rr, subscribeRequest(t, `{"email":"asha@example.com"}`))

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestSubscriber_SubscribersHandler_Empty(t *testing.T) {
	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	cursor := &mocks.CursorHelper{}

	cursor.On("Decode", mock.Anything).Return(nil)
	conn.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(cursor, nil)
	db.On("Collection", "subscribers").Return(conn)

	s := handlers.Subscriber{DB: databases.NewSubscriberDatabase(db)}

	req, err := http.NewRequest("GET", "/subscribers", nil)
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()
	http.HandlerFunc(s.SubscribersHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}
