package commands

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
)

// IdentityCommandHandler encapsulates logic for seeding users, projects and
// sessions via CLI. The dashboard has no self-service signup; accounts are
// provisioned here. The database connection is opened lazily on first use.
type IdentityCommandHandler struct {
	admin *adminContext
}

// NewIdentityCommandHandler initializes and returns an IdentityCommandHandler instance.
func NewIdentityCommandHandler() (*IdentityCommandHandler, error) {
	return &IdentityCommandHandler{}, nil
}

func (commandHandler *IdentityCommandHandler) ensureAdmin() (*adminContext, error) {
	if commandHandler.admin == nil {
		admin, err := newAdminContext()
		if err != nil {
			return nil, fmt.Errorf("failed to setup admin context: %w", err)
		}
		commandHandler.admin = admin
	}
	return commandHandler.admin, nil
}

// CreateUserCmd creates a user together with the project it owns.
func (commandHandler *IdentityCommandHandler) CreateUserCmd(cmd *cobra.Command, _ []string) {
	admin, err := commandHandler.ensureAdmin()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	email, err := cmd.Flags().GetString("email")
	if err != nil {
		admin.logger.Error("invalid email flag ", err)
		return
	}
	projectName, err := cmd.Flags().GetString("project-name")
	if err != nil {
		admin.logger.Error("invalid project-name flag ", err)
		return
	}

	user, err := admin.userService.CreateWithProject(context.Background(), email, projectName)
	if err != nil {
		admin.logger.Error(err)
		return
	}

	admin.logger.Info("Created user ", user.ID, " (", user.Email, ") with project ", *user.ProjectID)
}

// CreateSessionCmd mints a session token for an existing user.
func (commandHandler *IdentityCommandHandler) CreateSessionCmd(cmd *cobra.Command, _ []string) {
	admin, err := commandHandler.ensureAdmin()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	email, err := cmd.Flags().GetString("email")
	if err != nil {
		admin.logger.Error("invalid email flag ", err)
		return
	}
	ttl, err := cmd.Flags().GetDuration("ttl")
	if err != nil {
		admin.logger.Error("invalid ttl flag ", err)
		return
	}

	session, err := admin.sessionIssuer.Issue(context.Background(), email, ttl)
	if err != nil {
		admin.logger.Error(err)
		return
	}

	admin.logger.Info("Issued session ", session.Token, " valid until ", session.ExpiresAt.Format(time.RFC3339))
}

// InitIdentityCommands registers user- and session-related commands
func InitIdentityCommands(rootCmd *cobra.Command) error {
	handler, err := NewIdentityCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create identity command handler %w", err)
	}

	var createUserCmd = &cobra.Command{
		Use:   "create-user",
		Short: "Create a user and the project it owns",
		Run:   handler.CreateUserCmd,
	}
	createUserCmd.Flags().StringP("email", "", "", "Email address of the new user")
	createUserCmd.Flags().StringP("project-name", "", "", "Name of the project the user owns")
	rootCmd.AddCommand(createUserCmd)

	var createSessionCmd = &cobra.Command{
		Use:   "create-session",
		Short: "Issue a session token for a user",
		Run:   handler.CreateSessionCmd,
	}
	createSessionCmd.Flags().StringP("email", "", "", "Email address of an existing user")
	createSessionCmd.Flags().DurationP("ttl", "", 720*time.Hour, "How long the session stays valid")
	rootCmd.AddCommand(createSessionCmd)

	return nil
}
