// Command generate_demo creates a demo database with a small sample library.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/smartlib/library/internal/config"
	"github.com/smartlib/library/internal/database"
	"github.com/smartlib/library/internal/entities"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	dbPath := flag.String("db", config.DefaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Info().Str("path", *dbPath).Msg("generating demo database")

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatal().Err(err).Msg("failed to remove existing demo database")
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create database")
	}
	defer db.Close()

	for _, book := range demoBooks() {
		if err := db.DB.Create(&book).Error; err != nil {
			log.Fatal().Err(err).Str("book", book.BookID).Msg("failed to seed book")
		}
		log.Info().Str("book", book.BookID).Str("title", book.Title).Msg("seeded book")
	}
	for _, member := range demoMembers() {
		if err := db.DB.Create(&member).Error; err != nil {
			log.Fatal().Err(err).Str("member", member.UserID).Msg("failed to seed member")
		}
		log.Info().Str("member", member.UserID).Str("name", member.Name).Msg("seeded member")
	}
	for _, record := range demoRecords() {
		if err := db.DB.Create(&record).Error; err != nil {
			log.Fatal().Err(err).Str("record", record.RecordID).Msg("failed to seed record")
		}
		log.Info().Str("record", record.RecordID).Msg("seeded borrow record")
	}

	log.Info().Msg("demo database generated")
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func demoBooks() []entities.Book {
	return []entities.Book{
		{BookID: "B001", Title: "Database System Concepts", Author: "Abraham Silberschatz", Category: "Computer Science", PublishYear: 2019, Status: entities.BookStatusAvailable, Description: "The fundamental text for database systems."},
		{BookID: "B002", Title: "Introduction to Algorithms", Author: "Thomas H. Cormen", Category: "Computer Science", PublishYear: 2009, Status: entities.BookStatusBorrowed, Description: "Comprehensive guide to algorithms."},
		{BookID: "B003", Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Category: "Literature", PublishYear: 1925, Status: entities.BookStatusAvailable, Description: "A novel about the American dream."},
		{BookID: "B004", Title: "Clean Code", Author: "Robert C. Martin", Category: "Computer Science", PublishYear: 2008, Status: entities.BookStatusAvailable, Description: "A handbook of agile software craftsmanship."},
		{BookID: "B005", Title: "Design Patterns", Author: "Erich Gamma", Category: "Computer Science", PublishYear: 1994, Status: entities.BookStatusAvailable, Description: "Elements of reusable object-oriented software."},
	}
}

func demoMembers() []entities.Member {
	return []entities.Member{
		{UserID: "U001", Name: "Alice Johnson", Email: "alice@example.com", Phone: "555-0101", RegisterDate: date(2025, time.January, 15)},
		{UserID: "U002", Name: "Bob Smith", Email: "bob@example.com", Phone: "555-0102", RegisterDate: date(2025, time.February, 20)},
		{UserID: "U003", Name: "Charlie Brown", Email: "charlie@example.com", Phone: "555-0103", RegisterDate: date(2025, time.March, 10)},
	}
}

func demoRecords() []entities.BorrowRecord {
	returned := date(2025, time.September, 10)
	return []entities.BorrowRecord{
		// Active borrow keeping B002 in Borrowed status
		{RecordID: "R001", UserID: "U002", BookID: "B002", BorrowDate: date(2025, time.October, 1), DueDate: date(2025, time.November, 1), ReturnDate: nil},
		// Closed loan
		{RecordID: "R002", UserID: "U001", BookID: "B001", BorrowDate: date(2025, time.August, 10), DueDate: date(2025, time.September, 10), ReturnDate: &returned},
	}
}
