package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/user/notecart/backend/internal/config"
	"github.com/user/notecart/backend/internal/database"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	if !cfg.HasDatabase() {
		log.Fatal("DATABASE_URL must be set to run migrations")
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Running database migrations...")

	// 1. Create the users table
	log.Println("Creating users table...")
	createUsersTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			google_id VARCHAR(255) UNIQUE,
			email VARCHAR(255) UNIQUE NOT NULL,
			display_name VARCHAR(255),
			avatar_url TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		);
	`
	if err := db.Exec(createUsersTableSQL).Error; err != nil {
		log.Fatalf("Failed to create users table: %v", err)
	}
	log.Println("  ✓ users table created")

	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_deleted_at ON users(deleted_at)")

	// 2. Create the lists table
	log.Println("Creating lists table...")
	createListsTableSQL := `
		CREATE TABLE IF NOT EXISTS lists (
			id VARCHAR(64) PRIMARY KEY,
			user_id UUID NOT NULL,
			name VARCHAR(200) NOT NULL,
			type VARCHAR(50) NOT NULL,
			shared_with TEXT[] DEFAULT '{}',
			items JSONB DEFAULT '[]',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			CONSTRAINT fk_lists_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		);
	`
	if err := db.Exec(createListsTableSQL).Error; err != nil {
		log.Fatalf("Failed to create lists table: %v", err)
	}
	log.Println("  ✓ lists table created")

	// 3. Indexes: the owner query filters on user_id, the shared query needs
	// array membership on shared_with.
	log.Println("Creating indexes for lists...")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_lists_user_id ON lists(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_lists_created_at ON lists(created_at DESC)")
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_lists_shared_with ON lists USING GIN (shared_with)").Error; err != nil {
		log.Printf("  Warning: Could not create shared_with GIN index: %v", err)
	} else {
		log.Println("  ✓ shared_with GIN index created")
	}
	log.Println("  ✓ Indexes created")

	log.Println("")
	log.Println("========================================")
	log.Println("Migrations completed successfully!")
	log.Println("========================================")
}
