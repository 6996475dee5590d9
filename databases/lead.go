package databases

// go generate: mockery --name LeadDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bigwigdigital/kpd-realty-api/models"
)

const leadName = "leads"

// LeadDatabase contains the methods to use with the lead database
type LeadDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Lead, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Lead, error)
	InsertOne(ctx context.Context, lead models.Lead) (InsertOneResultHelper, error)
	EnsureIndexes(ctx context.Context) error
}

type leadDatabase struct {
	db DatabaseHelper
}

// NewLeadDatabase initializes a new instance of lead database with the provided db connection
func NewLeadDatabase(db DatabaseHelper) LeadDatabase {
	return &leadDatabase{
		db: db,
	}
}

func (l *leadDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Lead, error) {
	lead := &models.Lead{}
	err := l.db.Collection(leadName).FindOne(ctx, filter).Decode(&lead)
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (l *leadDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Lead, error) {
	cursor, err := l.db.Collection(leadName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var leads []models.Lead
	if err := cursor.Decode(&leads); err != nil {
		return nil, err
	}
	return leads, nil
}

func (l *leadDatabase) InsertOne(ctx context.Context, lead models.Lead) (InsertOneResultHelper, error) {
	return l.db.Collection(leadName).InsertOne(ctx, lead)
}

// EnsureIndexes creates the unique email index. The duplicate-email pre-check in
// the OTP issuer is only a fast path; this index is the authoritative guard.
func (l *leadDatabase) EnsureIndexes(ctx context.Context) error {
	_, err := l.db.Collection(leadName).CreateOneIndex(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
