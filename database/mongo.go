package database

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"postboard/log"
)

func ConnectMongo(uri string) *mongo.Client {
	if uri == "" {
		log.Error.Fatal("MONGO_URI not set in environment")
	}

	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(opts)
	if err != nil {
		log.Error.Fatal("Failed to connect:", err)
	}

	if err := client.Ping(context.TODO(), readpref.Primary()); err != nil {
		log.Error.Fatal("Failed to ping MongoDB:", err)
	}

	log.Info.Println("Connected to MongoDB")
	return client
}

func DisconnectMongo(client *mongo.Client) {
	if err := client.Disconnect(context.TODO()); err != nil {
		log.Error.Println("Failed to disconnect:", err)
	}
}
