package store

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"

	"github.com/earnhalal/Lasercurrencystore/models"
)

// RedisStore persists the store records in Redis under keys mirroring the
// original on-device layout: users:<email>, orders:<email>,
// devices:<deviceID>, appDeviceId and loggedInUser.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

func (r *RedisStore) GetUser(ctx context.Context, email string) (models.User, error) {
	var user models.User
	if err := r.getJSON(ctx, "users:"+email, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *RedisStore) PutUser(ctx context.Context, user models.User) error {
	return r.setJSON(ctx, "users:"+user.Email, user)
}

func (r *RedisStore) DeleteUser(ctx context.Context, email string) error {
	return r.client.Del(ctx, "users:"+email).Err()
}

func (r *RedisStore) Orders(ctx context.Context, email string) ([]models.Order, error) {
	var orders []models.Order
	err := r.getJSON(ctx, "orders:"+email, &orders)
	if err == ErrNotFound {
		return []models.Order{}, nil
	}
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *RedisStore) AppendOrder(ctx context.Context, email string, order models.Order) error {
	orders, err := r.Orders(ctx, email)
	if err != nil {
		return err
	}
	return r.setJSON(ctx, "orders:"+email, append(orders, order))
}

func (r *RedisStore) DeviceID(ctx context.Context) (string, error) {
	return r.getString(ctx, "appDeviceId")
}

func (r *RedisStore) SetDeviceID(ctx context.Context, id string) error {
	return r.client.Set(ctx, "appDeviceId", id, 0).Err()
}

func (r *RedisStore) DeviceEmail(ctx context.Context, deviceID string) (string, error) {
	return r.getString(ctx, "devices:"+deviceID)
}

func (r *RedisStore) BindDevice(ctx context.Context, deviceID, email string) error {
	return r.client.Set(ctx, "devices:"+deviceID, email, 0).Err()
}

func (r *RedisStore) LoggedInUser(ctx context.Context) (string, error) {
	return r.getString(ctx, "loggedInUser")
}

func (r *RedisStore) SetLoggedInUser(ctx context.Context, email string) error {
	return r.client.Set(ctx, "loggedInUser", email, 0).Err()
}

func (r *RedisStore) ClearLoggedInUser(ctx context.Context) error {
	return r.client.Del(ctx, "loggedInUser").Err()
}

func (r *RedisStore) Close(context.Context) error {
	return r.client.Close()
}

func (r *RedisStore) getString(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *RedisStore) setJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, 0).Err()
}

func (r *RedisStore) getJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}
