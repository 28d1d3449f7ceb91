package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDBClient wraps the driver client with connect/disconnect lifecycle.
type MongoDBClient struct {
	Client *mongo.Client
}

// NewMongoDBClient connects to MongoDB and verifies the connection with a ping.
func NewMongoDBClient(uri string) (*MongoDBClient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &MongoDBClient{Client: client}, nil
}

// Ping checks liveness of the deployment.
func (c *MongoDBClient) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx, readpref.Primary())
}

// Disconnect closes the underlying connections.
func (c *MongoDBClient) Disconnect() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = c.Client.Disconnect(ctx)
}
