// Command import_csv seeds back-office accounts from a CSV file:
//
//	go run ./cmd/scripts admins.csv
//
// Columns: Email (required), Name, Role (admin|staff, default staff),
// Password (generated and printed when empty).
package main

import (
	"context"
	"log"
	"os"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/pridecenter/pride-backend/internal/config"
	mongorepo "github.com/pridecenter/pride-backend/internal/repositories/mongodb"
	"github.com/pridecenter/pride-backend/internal/services"
	"github.com/pridecenter/pride-backend/internal/utils"
	"github.com/pridecenter/pride-backend/pkg/mongodb"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	mongoURI := config.GetEnv("MONGODB_URI", "mongodb://localhost:27017")
	dbName := config.GetEnv("MONGODB_DATABASE", "pride-center")
	timeout := time.Duration(config.GetEnvAsInt("IMPORT_TIMEOUT_SECONDS", 60)) * time.Second

	if len(os.Args) < 2 {
		log.Fatal("CSV file path is required as a command line argument")
	}
	file, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to open CSV: %v", err)
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongodb.NewClient(ctx, mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(dbName)
	if err := mongorepo.EnsureAdminUserIndexes(ctx, db); err != nil {
		log.Printf("Warning: could not ensure indexes: %v", err)
	}
	users := services.NewAdminUserService(mongorepo.NewAdminUserRepository(db))

	result, err := utils.NewCSVImporter(users).ImportAdmins(ctx, file)
	if err != nil {
		log.Fatalf("Failed to import data: %v", err)
	}

	log.Printf("Rows: %d, created: %d, errors: %d", result.TotalRows, result.Created, len(result.Errors))
	for _, e := range result.Errors {
		log.Printf("  %s", e)
	}
	emails := make([]string, 0, len(result.Generated))
	for email := range result.Generated {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	for _, email := range emails {
		log.Printf("Generated password for %s: %s", email, result.Generated[email])
	}
}
