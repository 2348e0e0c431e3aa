package database

import (
	"context"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"medinatours/config"
)

// App is the global Firebase app instance.
var App *firebase.App

// AuthClient verifies ID tokens and mints custom tokens.
var AuthClient *auth.Client

// Store is the global keyed store backed by the Realtime Database.
var Store KeyedStore

// InitDB initializes the Firebase app, the Realtime Database client and the
// Auth client.
func InitDB() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentials)

	app, err := firebase.NewApp(ctx, &firebase.Config{
		DatabaseURL: config.AppConfig.DatabaseURL,
	}, opt)
	if err != nil {
		log.Fatalf("failed to initialize Firebase app: %v", err)
	}

	dbClient, err := app.Database(ctx)
	if err != nil {
		log.Fatalf("failed to create Realtime Database client: %v", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("failed to create Auth client: %v", err)
	}

	App = app
	AuthClient = authClient
	Store = NewRTDBStore(dbClient)
	log.Println("Connected to Firebase successfully!")
}
