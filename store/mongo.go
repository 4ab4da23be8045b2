package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/earnhalal/Lasercurrencystore/models"
)

// MongoStore persists the store records in MongoDB. Users and devices are
// one document per record; order history is one document per account with
// an appended array, mirroring the email -> sequence-of-orders shape.
type MongoStore struct {
	client  *mongo.Client
	users   *mongo.Collection
	orders  *mongo.Collection
	devices *mongo.Collection
	meta    *mongo.Collection
}

const (
	metaDeviceID     = "appDeviceId"
	metaLoggedInUser = "loggedInUser"
)

// NewMongoStore connects to MongoDB and returns a store backed by the
// given database.
func NewMongoStore(uri, database string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(database)
	return &MongoStore{
		client:  client,
		users:   db.Collection("users"),
		orders:  db.Collection("orders"),
		devices: db.Collection("devices"),
		meta:    db.Collection("meta"),
	}, nil
}

func (m *MongoStore) GetUser(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := m.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (m *MongoStore) PutUser(ctx context.Context, user models.User) error {
	opts := options.Replace().SetUpsert(true)
	_, err := m.users.ReplaceOne(ctx, bson.M{"email": user.Email}, user, opts)
	return err
}

func (m *MongoStore) DeleteUser(ctx context.Context, email string) error {
	_, err := m.users.DeleteOne(ctx, bson.M{"email": email})
	return err
}

func (m *MongoStore) Orders(ctx context.Context, email string) ([]models.Order, error) {
	var doc struct {
		Orders []models.Order `bson:"orders"`
	}
	err := m.orders.FindOne(ctx, bson.M{"_id": email}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return []models.Order{}, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.Orders, nil
}

func (m *MongoStore) AppendOrder(ctx context.Context, email string, order models.Order) error {
	opts := options.Update().SetUpsert(true)
	_, err := m.orders.UpdateOne(ctx, bson.M{"_id": email}, bson.M{
		"$push": bson.M{"orders": order},
	}, opts)
	return err
}

func (m *MongoStore) DeviceID(ctx context.Context) (string, error) {
	return m.getMeta(ctx, metaDeviceID)
}

func (m *MongoStore) SetDeviceID(ctx context.Context, id string) error {
	return m.setMeta(ctx, metaDeviceID, id)
}

func (m *MongoStore) DeviceEmail(ctx context.Context, deviceID string) (string, error) {
	var doc struct {
		Email string `bson:"email"`
	}
	err := m.devices.FindOne(ctx, bson.M{"_id": deviceID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return doc.Email, nil
}

func (m *MongoStore) BindDevice(ctx context.Context, deviceID, email string) error {
	opts := options.Update().SetUpsert(true)
	_, err := m.devices.UpdateOne(ctx, bson.M{"_id": deviceID}, bson.M{
		"$set": bson.M{"email": email},
	}, opts)
	return err
}

func (m *MongoStore) LoggedInUser(ctx context.Context) (string, error) {
	return m.getMeta(ctx, metaLoggedInUser)
}

func (m *MongoStore) SetLoggedInUser(ctx context.Context, email string) error {
	return m.setMeta(ctx, metaLoggedInUser, email)
}

func (m *MongoStore) ClearLoggedInUser(ctx context.Context) error {
	_, err := m.meta.DeleteOne(ctx, bson.M{"_id": metaLoggedInUser})
	return err
}

func (m *MongoStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *MongoStore) getMeta(ctx context.Context, key string) (string, error) {
	var doc struct {
		Value string `bson:"value"`
	}
	err := m.meta.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return doc.Value, nil
}

func (m *MongoStore) setMeta(ctx context.Context, key, value string) error {
	opts := options.Update().SetUpsert(true)
	_, err := m.meta.UpdateOne(ctx, bson.M{"_id": key}, bson.M{
		"$set": bson.M{"value": value},
	}, opts)
	return err
}
