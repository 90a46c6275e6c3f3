package mongodb

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/scoir/corral/pkg/datastore"
)

func (r *mongoDBStore) InsertCredential(c *datastore.CredentialRecord) (string, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	_, err := r.db.Collection(datastore.CredentialC).InsertOne(context.Background(), c)
	if err != nil {
		return "", errors.Wrap(err, "unable to insert credential")
	}

	return c.ID, nil
}

func (r *mongoDBStore) GetCredential(id string) (*datastore.CredentialRecord, error) {
	c := &datastore.CredentialRecord{}
	err := r.db.Collection(datastore.CredentialC).FindOne(context.Background(),
		bson.M{"id": id}).Decode(c)

	if err != nil {
		return nil, status.Error(codes.NotFound, errors.Wrap(err, "failed to load credential").Error())
	}

	return c, nil
}

func (r *mongoDBStore) DeleteCredential(id string) error {
	_, err := r.db.Collection(datastore.CredentialC).DeleteOne(context.Background(), bson.M{"id": id})
	if err != nil {
		return errors.Wrap(err, "unable to delete credential")
	}

	return nil
}

func (r *mongoDBStore) InsertW3CCredential(c *datastore.W3CCredentialRecord) (string, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	_, err := r.db.Collection(datastore.W3CCredentialC).InsertOne(context.Background(), c)
	if err != nil {
		return "", errors.Wrap(err, "unable to insert w3c credential")
	}

	return c.ID, nil
}

func (r *mongoDBStore) GetW3CCredential(id string) (*datastore.W3CCredentialRecord, error) {
	c := &datastore.W3CCredentialRecord{}
	err := r.db.Collection(datastore.W3CCredentialC).FindOne(context.Background(),
		bson.M{"id": id}).Decode(c)

	if err != nil {
		return nil, status.Error(codes.NotFound, errors.Wrap(err, "failed to load w3c credential").Error())
	}

	return c, nil
}

func (r *mongoDBStore) DeleteW3CCredential(id string) error {
	_, err := r.db.Collection(datastore.W3CCredentialC).DeleteOne(context.Background(), bson.M{"id": id})
	if err != nil {
		return errors.Wrap(err, "unable to delete w3c credential")
	}

	return nil
}

func (r *mongoDBStore) ListCredential(c *datastore.CredentialCriteria) (*datastore.CredentialList, error) {
	if c == nil {
		c = &datastore.CredentialCriteria{
			Start:    0,
			PageSize: 10,
		}
	}

	bc := bson.M{}
	if c.SchemaID != "" {
		bc["schemaid"] = c.SchemaID
	}

	opts := &options.FindOptions{}
	opts = opts.SetSkip(int64(c.Start)).SetLimit(int64(c.PageSize))

	ctx := context.Background()
	count, err := r.db.Collection(datastore.CredentialC).CountDocuments(ctx, bc)
	if err != nil {
		return nil, errors.Wrap(err, "unable to count credentials")
	}

	results, err := r.db.Collection(datastore.CredentialC).Find(ctx, bc, opts)
	if err != nil {
		return nil, errors.Wrap(err, "error trying to find credentials")
	}

	var native []*datastore.CredentialRecord
	err = results.All(ctx, &native)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode credentials")
	}

	out := &datastore.CredentialList{
		Count:       int(count),
		Credentials: []datastore.Record{},
	}
	for _, rec := range native {
		out.Credentials = append(out.Credentials, rec)
	}

	// W3C records keep their schema id in the tag set, not on the record.
	w3cFilter := bson.M{}
	if c.SchemaID != "" {
		w3cFilter["tags.anonCredsSchemaId"] = c.SchemaID
	}

	w3cCount, w3c, err := r.findW3C(ctx, w3cFilter, opts)
	if err != nil {
		return nil, err
	}
	out.Count += w3cCount
	out.Credentials = append(out.Credentials, w3c...)

	return out, nil
}

func (r *mongoDBStore) FindCredentialsByTag(key string, value interface{}) ([]datastore.Record, error) {
	return r.findByTags(bson.M{"tags." + key: value})
}

func (r *mongoDBStore) FindCredentialsByAttribute(name, rawValue string) ([]datastore.Record, error) {
	return r.findByTags(bson.M{"tags.anonCredsAttr::" + name + "::value": rawValue})
}

func (r *mongoDBStore) findByTags(bc bson.M) ([]datastore.Record, error) {
	ctx := context.Background()

	results, err := r.db.Collection(datastore.CredentialC).Find(ctx, bc)
	if err != nil {
		return nil, errors.Wrap(err, "error trying to find credentials by tag")
	}

	var native []*datastore.CredentialRecord
	err = results.All(ctx, &native)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode credentials")
	}

	out := []datastore.Record{}
	for _, rec := range native {
		out = append(out, rec)
	}

	_, w3c, err := r.findW3C(ctx, bc, nil)
	if err != nil {
		return nil, err
	}

	return append(out, w3c...), nil
}

func (r *mongoDBStore) findW3C(ctx context.Context, bc bson.M, opts *options.FindOptions) (int, []datastore.Record, error) {
	count, err := r.db.Collection(datastore.W3CCredentialC).CountDocuments(ctx, bc)
	if err != nil {
		return 0, nil, errors.Wrap(err, "unable to count w3c credentials")
	}

	fopts := []*options.FindOptions{}
	if opts != nil {
		fopts = append(fopts, opts)
	}

	cur, err := r.db.Collection(datastore.W3CCredentialC).Find(ctx, bc, fopts...)
	if err != nil {
		return 0, nil, errors.Wrap(err, "error trying to find w3c credentials")
	}

	var w3c []*datastore.W3CCredentialRecord
	err = cur.All(ctx, &w3c)
	if err != nil {
		return 0, nil, errors.Wrap(err, "unable to decode w3c credentials")
	}

	out := make([]datastore.Record, 0, len(w3c))
	for _, rec := range w3c {
		out = append(out, rec)
	}

	return int(count), out, nil
}
