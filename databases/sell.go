package databases

// go generate: mockery --name SellDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bigwigdigital/kpd-realty-api/models"
)

const sellName = "sells"

// SellDatabase contains the methods to use with the sell database
type SellDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Sell, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Sell, error)
	InsertOne(ctx context.Context, sell models.Sell) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error
	FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) (*models.Sell, error)
	FindOneAndDelete(ctx context.Context, filter interface{}) (*models.Sell, error)
}

type sellDatabase struct {
	db DatabaseHelper
}

// NewSellDatabase initializes a new instance of sell database with the provided db connection
func NewSellDatabase(db DatabaseHelper) SellDatabase {
	return &sellDatabase{
		db: db,
	}
}

func (s *sellDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Sell, error) {
	sell := &models.Sell{}
	err := s.db.Collection(sellName).FindOne(ctx, filter).Decode(&sell)
	if err != nil {
		return nil, err
	}
	return sell, nil
}

func (s *sellDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Sell, error) {
	cursor, err := s.db.Collection(sellName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var sells []models.Sell
	if err := cursor.Decode(&sells); err != nil {
		return nil, err
	}
	return sells, nil
}

func (s *sellDatabase) InsertOne(ctx context.Context, sell models.Sell) (InsertOneResultHelper, error) {
	return s.db.Collection(sellName).InsertOne(ctx, sell)
}

func (s *sellDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	_, err := s.db.Collection(sellName).UpdateOne(ctx, filter, update, opts...)
	return err
}

func (s *sellDatabase) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) (*models.Sell, error) {
	sell := &models.Sell{}
	err := s.db.Collection(sellName).FindOneAndUpdate(ctx, filter, update, opts...).Decode(&sell)
	if err != nil {
		return nil, err
	}
	return sell, nil
}

func (s *sellDatabase) FindOneAndDelete(ctx context.Context, filter interface{}) (*models.Sell, error) {
	sell := &models.Sell{}
	err := s.db.Collection(sellName).FindOneAndDelete(ctx, filter).Decode(&sell)
	if err != nil {
		return nil, err
	}
	return sell, nil
}
