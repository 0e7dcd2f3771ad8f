package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/discoverypromo/raffle-admin-backend/internal/models"
	mongorepo "github.com/discoverypromo/raffle-admin-backend/internal/repositories/mongodb"
	"github.com/discoverypromo/raffle-admin-backend/pkg/mongodb"
)

// Imports raffle submissions from a CSV export into MongoDB, and optionally
// seeds an admin account:
//
//	go run ./cmd/scripts -csv entries.csv
//	go run ./cmd/scripts -admin-email ops@example.com -admin-password secret
func main() {
	csvPath := flag.String("csv", "", "path to a submissions CSV export")
	collection := flag.String("collection", "raffle-entries", "submissions collection name")
	adminEmail := flag.String("admin-email", "", "create an admin account with this email")
	adminPassword := flag.String("admin-password", "", "password for the new admin account")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable is required")
	}
	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "discovery-raffle"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongodb.NewClient(ctx, mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())
	db := client.Database(dbName)

	if *adminEmail != "" {
		if *adminPassword == "" {
			log.Fatal("-admin-password is required with -admin-email")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		adminRepo := mongorepo.NewAdminUserRepository(db)
		admin, err := adminRepo.Create(ctx, &models.AdminUser{
			Email:    *adminEmail,
			Password: string(hash),
			Role:     "admin",
		})
		if err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Created admin user %s (%s)", admin.Email, admin.ID.Hex())
	}

	if *csvPath == "" {
		return
	}

	file, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		log.Fatalf("Failed to read CSV header: %v", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	field := func(record []string, name string) string {
		if i, ok := columns[name]; ok && i < len(record) {
			return record[i]
		}
		return ""
	}

	imported := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("Failed to read CSV record: %v", err)
		}

		entries, _ := strconv.Atoi(field(record, "raffleEntries"))
		if entries == 0 {
			entries = 1
		}
		amount, _ := strconv.ParseFloat(field(record, "purchaseAmount"), 64)

		doc := bson.M{
			"fullName":           field(record, "fullName"),
			"mobileNumber":       field(record, "mobileNumber"),
			"email":              field(record, "email"),
			"birthdate":          field(record, "birthdate"),
			"residentialAddress": field(record, "residentialAddress"),
			"branch":             field(record, "branch"),
			"dateOfPurchase":     field(record, "dateOfPurchase"),
			"purchaseAmount":     amount,
			"receiptNumber":      field(record, "receiptNumber"),
			"raffleEntries":      entries,
			"entryStatus":        models.SubmissionStatusPending,
			"submittedAt":        time.Now(),
		}
		if _, err := db.Collection(*collection).InsertOne(ctx, doc); err != nil {
			log.Fatalf("Failed to insert submission: %v", err)
		}
		imported++
	}

	log.Printf("Imported %d submissions into %s.%s", imported, dbName, *collection)
}
