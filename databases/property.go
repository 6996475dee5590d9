package databases

// go generate: mockery --name PropertyDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bigwigdigital/kpd-realty-api/models"
)

const propertyName = "properties"

// PropertyDatabase contains the methods to use with the property database
type PropertyDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Property, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Property, error)
	InsertOne(ctx context.Context, property models.Property) (InsertOneResultHelper, error)
	FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) (*models.Property, error)
	FindOneAndDelete(ctx context.Context, filter interface{}) (*models.Property, error)
}

type propertyDatabase struct {
	db DatabaseHelper
}

// NewPropertyDatabase initializes a new instance of property database with the provided db connection
func NewPropertyDatabase(db DatabaseHelper) PropertyDatabase {
	return &propertyDatabase{
		db: db,
	}
}

func (p *propertyDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Property, error) {
	property := &models.Property{}
	err := p.db.Collection(propertyName).FindOne(ctx, filter).Decode(&property)
	if err != nil {
		return nil, err
	}
	return property, nil
}

func (p *propertyDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Property, error) {
	cursor, err := p.db.Collection(propertyName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var properties []models.Property
	if err := cursor.Decode(&properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (p *propertyDatabase) InsertOne(ctx context.Context, property models.Property) (InsertOneResultHelper, error) {
	return p.db.Collection(propertyName).InsertOne(ctx, property)
}

func (p *propertyDatabase) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) (*models.Property, error) {
	property := &models.Property{}
	err := p.db.Collection(propertyName).FindOneAndUpdate(ctx, filter, update, opts...).Decode(&property)
	if err != nil {
		return nil, err
	}
	return property, nil
}

func (p *propertyDatabase) FindOneAndDelete(ctx context.Context, filter interface{}) (*models.Property, error) {
	property := &models.Property{}
	err := p.db.Collection(propertyName).FindOneAndDelete(ctx, filter).Decode(&property)
	if err != nil {
		return nil, err
	}
	return property, nil
}
