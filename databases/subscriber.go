package databases

// go generate: mockery --name SubscriberDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bigwigdigital/kpd-realty-api/models"
)

const subscriberName = "subscribers"

// SubscriberDatabase contains the methods to use with the subscriber database
type SubscriberDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Subscriber, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Subscriber, error)
	InsertOne(ctx context.Context, subscriber models.Subscriber) (InsertOneResultHelper, error)
}

type subscriberDatabase struct {
	db DatabaseHelper
}

// NewSubscriberDatabase initializes a new instance of subscriber database with the provided db connection
func NewSubscriberDatabase(db DatabaseHelper) SubscriberDatabase {
	return &subscriberDatabase{
		db: db,
	}
}

func (s *subscriberDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Subscriber, error) {
	subscriber := &models.Subscriber{}
	err := s.db.Collection(subscriberName).FindOne(ctx, filter).Decode(&subscriber)
	if err != nil {
		return nil, err
	}
	return subscriber, nil
}

func (s *subscriberDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Subscriber, error) {
	cursor, err := s.db.Collection(subscriberName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var subscribers []models.Subscriber
	if err := cursor.Decode(&subscribers); err != nil {
		return nil, err
	}
	return subscribers, nil
}

func (s *subscriberDatabase) InsertOne(ctx context.Context, subscriber models.Subscriber) (InsertOneResultHelper, error) {
	return s.db.Collection(subscriberName).InsertOne(ctx, subscriber)
}
