package connection

import (
	"context"
	"fmt"
	"log"
	"os"

	firebase "firebase.google.com/go"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	"lifetrack/store"
)

// NewStore connects to Firestore when service-account credentials are
// configured and falls back to the in-memory store otherwise, so the
// server still comes up for local development.
func NewStore() (store.Store, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: No .env file found or failed to load")
	}

	serviceAccountKeyPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if serviceAccountKeyPath == "" {
		log.Println("GOOGLE_APPLICATION_CREDENTIALS is not set, using in-memory store")
		return store.NewMemoryStore(), nil
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(serviceAccountKeyPath))
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting firestore client: %w", err)
	}

	fmt.Println("Firestore connection successful")
	return store.NewFirestoreStore(client), nil
}
