package database

import (
	"fmt"
	"log"

	"api/config"
	"api/models"
	"api/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

var DefaultPassword = "admin"

// InitDB initializes the database connection, migrates the models, canonicalizes
// legacy solve durations and populates the database with default values if needed
func InitDB() {
    dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=UTC", config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

    var err error
    DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
    if err != nil {
        log.Fatal("failed to connect database: ", err)
    }

    err = DB.AutoMigrate(
        &models.User{},
        &models.Scramble{},
        &models.SolveAttempt{},
    )
    if err != nil {
        log.Fatal("failed to migrate database: ", err)
    }

    if err := CanonicalizeLegacyDurations(); err != nil {
        log.Fatal("failed to canonicalize legacy durations: ", err)
    }

    Populate()
}

// CanonicalizeLegacyDurations rewrites solve durations recorded before the
// milliseconds contract. The old client stored values at or below 100 as whole
// seconds and guessed the unit at display time; those rows are converted to
// milliseconds once so every reader can divide by 1000 unconditionally. Any
// legitimate solve recorded under the contract is far above 100 ms, so re-running
// the update never touches converted rows.
func CanonicalizeLegacyDurations() error {
    result := DB.Model(&models.SolveAttempt{}).
        Where("duration_millis <= ?", 100).
        Update("duration_millis", gorm.Expr("duration_millis * 1000"))
    if result.Error != nil {
        return result.Error
    }

    if result.RowsAffected > 0 {
        log.Printf("Canonicalized %d legacy solve durations to milliseconds", result.RowsAffected)
    }
    return nil
}

// Populate populates the database with default values if needed
func Populate() {
    var countUser int64

    DB.Model(&models.User{}).Count(&countUser)
    if countUser == 0 {
        // Create default user admin with a default hashed password either from the .env file or the DefaultPassword constant
        password := DefaultPassword
        if config.DefaultPassword != "" {
            password = config.DefaultPassword
        }

        password, err := utils.HashPassword(password)
        if err != nil {
            panic(err)
        }

        user := models.User{
            Username: "admin",
            Email:    "admin@admin.com",
            Password: password,
        }
        DB.Create(&user)
        log.Println("Default user admin created")
    }
}
