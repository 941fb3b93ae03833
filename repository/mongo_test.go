package repository

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const testDBName = "notes_test"

// connectTestMongo connects to a local MongoDB, sets up indexes, and
// returns the client with a cleanup function. Tests are skipped when no
// server is reachable so the suite stays runnable without one.
func connectTestMongo(t *testing.T) (*mongo.Client, func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx,
		options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("MongoDB not reachable: %v", err)
	}

	if err := SetupIndexes(client.Database(testDBName)); err != nil {
		t.Fatalf("failed to set up indexes: %v", err)
	}

	cleanup := func() {
		db := client.Database(testDBName)
		if err := db.Collection("notes").Drop(context.Background()); err != nil {
			t.Errorf("failed to drop notes collection: %v", err)
		}
		if err := db.Collection("users").Drop(context.Background()); err != nil {
			t.Errorf("failed to drop users collection: %v", err)
		}
		if err := client.Disconnect(context.Background()); err != nil {
			t.Errorf("failed to disconnect from MongoDB: %v", err)
		}
	}

	return client, cleanup
}
