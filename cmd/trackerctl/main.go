// trackerctl is the operations CLI: migrations, catalog seeding, and user
// administration against the same database the server uses.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/sanctuary-tracker/api/internal/config"
	"github.com/sanctuary-tracker/api/internal/database"
	"github.com/sanctuary-tracker/api/internal/models"
	"github.com/sanctuary-tracker/api/internal/validation"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "trackerctl",
		Short:         "Admin CLI for the sanctuary tracker API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(),
		newSeedCmd(),
		newCreateUserCmd(),
		newListUsersCmd(),
		newResetPasswordCmd(),
	)
	return root
}

// openDB loads config and connects. Every subcommand needs this pair.
func openDB() (*database.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return database.New(cfg.DatabaseURL)
}

func cmdContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

func newMigrateCmd() *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			if down {
				if err := db.MigrateDown(); err != nil {
					return err
				}
				fmt.Println("Rolled back one migration")
				return nil
			}

			if err := db.Migrate(); err != nil {
				return err
			}
			fmt.Println("Migrations applied")
			return nil
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "Roll back the most recent migration instead of applying")
	return cmd
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the activity, event, and reward catalogs",
		Long:  "Inserts the base catalog data. Safe to run repeatedly; existing rows are left untouched.",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := cmdContext()
			defer cancel()

			if err := database.Seed(ctx, db); err != nil {
				return err
			}
			fmt.Printf("Seeded %d activities, %d events, %d rewards\n",
				len(database.SeedActivities), len(database.SeedEvents), len(database.SeedRewards))
			return nil
		},
	}
}

func newCreateUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-user <username> <email> <password>",
		Short: "Create a user account",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := validation.SanitizeText(args[0])
			email := validation.SanitizeText(args[1])
			password := args[2]

			if len(password) < 8 {
				return fmt.Errorf("password must be at least 8 characters")
			}

			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := cmdContext()
			defer cancel()

			users := database.NewUserRepository(db)
			exists, err := users.Exists(ctx, email, username)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("user %s already exists", username)
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			user := &models.User{
				ID:           uuid.New(),
				Username:     username,
				Email:        email,
				PasswordHash: string(hash),
			}
			if err := users.Create(ctx, user); err != nil {
				return err
			}

			fmt.Printf("Created user %s (%s)\n", user.Username, user.ID)
			return nil
		},
	}
	return cmd
}

func newListUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-users",
		Short: "List all user accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := cmdContext()
			defer cancel()

			users, err := database.NewUserRepository(db).List(ctx)
			if err != nil {
				return err
			}

			for _, u := range users {
				fmt.Printf("%s  %-24s %-32s %s\n", u.ID, u.Username, u.Email, u.CreatedAt.Format(time.RFC3339))
			}
			fmt.Printf("%d users\n", len(users))
			return nil
		},
	}
}

func newResetPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-password <username-or-email> <new-password>",
		Short: "Reset a user's password",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			login := validation.SanitizeText(args[0])
			password := args[1]

			if len(password) < 8 {
				return fmt.Errorf("password must be at least 8 characters")
			}

			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := cmdContext()
			defer cancel()

			users := database.NewUserRepository(db)
			user, err := users.GetByLogin(ctx, login)
			if err != nil {
				return err
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			if err := users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
				return err
			}

			fmt.Printf("Password reset for %s\n", user.Username)
			return nil
		},
	}
}
