package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"newsportal/database"
	"newsportal/internal/config"
	"newsportal/internal/logging"
	"newsportal/internal/models"
	"newsportal/internal/repository"
	"newsportal/internal/services"
)

func main() {
	adminCmd := flag.NewFlagSet("admin", flag.ExitOnError)
	adminConfig := adminCmd.String("config", "config.yaml", "path to the YAML config file")
	email := adminCmd.String("email", "", "email of the admin account")
	password := adminCmd.String("password", "", "password of the admin account")
	username := adminCmd.String("username", "admin", "display name of the admin account")

	promoteCmd := flag.NewFlagSet("promote", flag.ExitOnError)
	promoteConfig := promoteCmd.String("config", "config.yaml", "path to the YAML config file")
	promoteEmail := promoteCmd.String("email", "", "email of the account to change")
	role := promoteCmd.String("role", string(models.RoleAdmin), "Reader, Admin or Institution")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "admin":
		adminCmd.Parse(os.Args[2:])
		if *email == "" || *password == "" {
			logrus.Fatal("-email and -password are required")
		}
		repo, log := connect(*adminConfig)
		if err := createAdmin(context.Background(), repo, *email, *password, *username); err != nil {
			log.Fatalf("Error creating admin: %v", err)
		}
		log.Infof("Admin %s is ready", *email)

	case "promote":
		promoteCmd.Parse(os.Args[2:])
		if *promoteEmail == "" {
			logrus.Fatal("-email is required")
		}
		r := models.Role(*role)
		if !r.Valid() {
			logrus.Fatalf("unknown role %q", *role)
		}
		repo, log := connect(*promoteConfig)
		if err := promote(context.Background(), repo, *promoteEmail, r); err != nil {
			log.Fatalf("Error changing role: %v", err)
		}
		log.Infof("%s is now %s", *promoteEmail, r)

	case "help":
		printHelp()

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func connect(configPath string) (repository.UserRepository, *logrus.Logger) {
	cfg, err := config.Load(configPath)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := logging.New(cfg.LogLevel)

	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	return repository.NewUserRepository(db), log
}

// createAdmin inserts a verified admin, or promotes and verifies the account
// already registered under email.
func createAdmin(ctx context.Context, repo repository.UserRepository, email, password, username string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := services.HashPassword(password)
	if err != nil {
		return err
	}

	existing, err := repo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repo.Create(ctx, &models.User{
			Username:      username,
			Email:         email,
			Password:      hash,
			Role:          models.RoleAdmin,
			EmailVerified: true,
		})
	case err != nil:
		return err
	}

	existing.Password = hash
	existing.Role = models.RoleAdmin
	existing.EmailVerified = true
	existing.VerificationCode = ""
	existing.VerificationExpiresAt = nil
	return repo.UpdateFields(ctx, existing, "password", "role", "email_verified", "verification_code", "verification_expires_at")
}

func promote(ctx context.Context, repo repository.UserRepository, email string, role models.Role) error {
	user, err := repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return err
	}
	return repo.UpdateRole(ctx, user.ID, role)
}

func printHelp() {
	fmt.Println("Newsportal account seeder")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  seed admin -email <email> -password <password> [-username <name>] [-config <path>]")
	fmt.Println("      Create a verified admin, or promote and verify an existing account")
	fmt.Println("  seed promote -email <email> [-role Reader|Admin|Institution] [-config <path>]")
	fmt.Println("      Change the role of an existing account")
	fmt.Println("  seed help")
}
