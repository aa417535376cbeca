// cmd/kefctl/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/keralaeconomicforum/forum/internal/config"
	"github.com/keralaeconomicforum/forum/internal/model"
	"github.com/keralaeconomicforum/forum/internal/repository"
	"github.com/keralaeconomicforum/forum/internal/repository/firestore"
	"github.com/keralaeconomicforum/forum/internal/repository/postgres"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(promoteCmd)
}

var rootCmd = &cobra.Command{
	Use:   "kefctl",
	Short: "kefctl administers the Kerala Economic Forum backend",
	Long:  `kefctl runs operational tasks against the configured storage backend: schema migration, content seeding, and user administration.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openRepos connects to whichever backend the environment selects, the same
// way the API server does at boot.
func openRepos(ctx context.Context) (*repository.Container, *config.Config, error) {
	cfg := config.Load()
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		db, err := postgres.Open(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		return postgres.NewContainer(db), cfg, nil
	case config.BackendFirestore:
		client, err := firestore.NewClient(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to firestore: %w", err)
		}
		return firestore.NewContainer(client), cfg, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the postgres schema",
	Long:  `Run gorm auto-migration against the configured postgres database. Firestore needs no schema.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		if cfg.Storage.Backend != config.BackendPostgres {
			log.Fatalf("migrate only applies to the postgres backend, got %q", cfg.Storage.Backend)
		}
		db, err := postgres.Open(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := postgres.Migrate(db); err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}
		fmt.Println("Schema migrated successfully")
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the starter membership plans",
	Long:  `Insert the standard membership plans so a fresh deployment has a populated membership page. Existing plans are left alone.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		repos, _, err := openRepos(ctx)
		if err != nil {
			log.Fatalf("Failed to open storage: %v", err)
		}

		existing, err := repos.MembershipPlans.FindAll(ctx)
		if err != nil {
			log.Fatalf("Failed to list membership plans: %v", err)
		}
		if len(existing) > 0 {
			fmt.Printf("Skipping seed: %d membership plans already exist\n", len(existing))
			return
		}

		for _, plan := range starterPlans() {
			p := plan
			if err := repos.MembershipPlans.Create(ctx, &p); err != nil {
				log.Fatalf("Failed to create plan %q: %v", p.Name, err)
			}
			fmt.Printf("Created membership plan %q\n", p.Name)
		}
	},
}

func starterPlans() []model.MembershipPlan {
	return []model.MembershipPlan{
		{
			Name:        "Student Membership",
			Type:        "student",
			Price:       "Free",
			Description: "For students exploring entrepreneurship and economic policy.",
			Benefits:    []string{"Access to campus events", "Mentorship sessions", "Newsletter"},
			IsActive:    true,
			Order:       1,
		},
		{
			Name:        "Entrepreneur Membership",
			Type:        "entrepreneur",
			Price:       "₹2,500/year",
			Description: "For founders building businesses in Kerala.",
			Benefits:    []string{"Networking events", "Advisory sessions", "Program discounts"},
			IsActive:    true,
			Order:       2,
		},
		{
			Name:        "Institutional Membership",
			Type:        "institutional",
			Price:       "₹25,000/year",
			Description: "For organizations partnering with the forum.",
			Benefits:    []string{"Event co-hosting", "Delegation invites", "Priority consultations"},
			IsActive:    true,
			Order:       3,
		},
	}
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List stored users and their roles",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		repos, _, err := openRepos(ctx)
		if err != nil {
			log.Fatalf("Failed to open storage: %v", err)
		}

		users, err := repos.Users.FindAll(ctx)
		if err != nil {
			log.Fatalf("Failed to list users: %v", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tROLE\tCREATED")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Email, u.Role, u.CreatedAt.Format(time.RFC3339))
		}
		w.Flush()
	},
}

var promoteCmd = &cobra.Command{
	Use:   "promote-admin [email]",
	Short: "Grant the admin role to a user by email",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		repos, _, err := openRepos(ctx)
		if err != nil {
			log.Fatalf("Failed to open storage: %v", err)
		}

		user, err := repos.Users.FindByEmail(ctx, args[0])
		if err != nil {
			log.Fatalf("Failed to find user %q: %v", args[0], err)
		}
		if user.Role == model.RoleAdmin {
			fmt.Printf("%s is already an admin\n", user.Email)
			return
		}
		if _, err := repos.Users.UpdateRole(ctx, user.ID, model.RoleAdmin); err != nil {
			log.Fatalf("Failed to update role: %v", err)
		}
		fmt.Printf("Promoted %s to admin\n", user.Email)
	},
}
