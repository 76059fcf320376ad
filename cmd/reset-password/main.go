package main

import (
	"log"
	"os"

	"stockemdia-backend/internal/model"
	"stockemdia-backend/pkg/database"
	"stockemdia-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Operational tool: reset an account password by phone number.
// Usage: reset-password <phone> <new-password>
func main() {
	if len(os.Args) != 3 {
		log.Fatal("Usage: reset-password <phone> <new-password>")
	}
	phone := os.Args[1]
	newPassword := os.Args[2]

	if !validator.IsValidPhone(phone) {
		log.Fatalf("❌ %s is not a valid phone number (9 digits starting with 9)", phone)
	}
	if len(newPassword) < 6 {
		log.Fatal("❌ Password must be at least 6 characters")
	}

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()

	// 3. Find Account
	var account model.Account
	if err := db.Where("phone = ?", phone).First(&account).Error; err != nil {
		log.Fatalf("❌ Account %s not found in database: %v", phone, err)
	}

	// 4. Hash new password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	// 5. Update password and rotate the token version so open sessions drop
	updates := map[string]interface{}{
		"password":      string(hashedPassword),
		"token_version": uuid.New().String(),
	}
	if err := db.Model(&account).Updates(updates).Error; err != nil {
		log.Fatalf("❌ Failed to update password in DB: %v", err)
	}

	log.Printf("✅ Success! Password for %s has been reset", phone)
}
