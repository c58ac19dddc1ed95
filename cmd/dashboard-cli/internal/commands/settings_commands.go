package commands

import (
	"context"
	"fmt"
	"log"

	json "github.com/goccy/go-json"

	"github.com/spf13/cobra"
)

// SettingsCommandHandler encapsulates logic for managing dashboard settings via CLI.
// The database connection is opened lazily on first use, so help output works
// without a reachable database.
type SettingsCommandHandler struct {
	admin *adminContext
}

// NewSettingsCommandHandler initializes and returns a SettingsCommandHandler instance.
func NewSettingsCommandHandler() (*SettingsCommandHandler, error) {
	return &SettingsCommandHandler{}, nil
}

func (commandHandler *SettingsCommandHandler) ensureAdmin() (*adminContext, error) {
	if commandHandler.admin == nil {
		admin, err := newAdminContext()
		if err != nil {
			return nil, fmt.Errorf("failed to setup admin context: %w", err)
		}
		commandHandler.admin = admin
	}
	return commandHandler.admin, nil
}

// SetSettingCmd stores a setting value under a key. The value string is
// interpreted as JSON when possible, so `--value true` stores a boolean and
// `--value somename` stores a string.
func (commandHandler *SettingsCommandHandler) SetSettingCmd(cmd *cobra.Command, _ []string) {
	admin, err := commandHandler.ensureAdmin()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	key, err := cmd.Flags().GetString("key")
	if err != nil {
		admin.logger.Error("invalid key flag ", err)
		return
	}
	raw, err := cmd.Flags().GetString("value")
	if err != nil {
		admin.logger.Error("invalid value flag ", err)
		return
	}

	var value interface{}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		value = raw
	}

	if err := admin.settingsService.Set(context.Background(), key, value); err != nil {
		admin.logger.Error(err)
		return
	}

	admin.logger.Info("Stored setting ", key)
}

// GetSettingCmd prints the JSON-encoded value stored under a key.
func (commandHandler *SettingsCommandHandler) GetSettingCmd(cmd *cobra.Command, _ []string) {
	admin, err := commandHandler.ensureAdmin()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	key, err := cmd.Flags().GetString("key")
	if err != nil {
		admin.logger.Error("invalid key flag ", err)
		return
	}

	value, err := admin.settingsService.Get(context.Background(), key)
	if err != nil {
		admin.logger.Error(err)
		return
	}

	admin.logger.Info(key, " = ", value)
}

// ListSettingsCmd prints every stored setting.
func (commandHandler *SettingsCommandHandler) ListSettingsCmd(_ *cobra.Command, _ []string) {
	admin, err := commandHandler.ensureAdmin()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	stored, err := admin.settingsService.List(context.Background())
	if err != nil {
		admin.logger.Error(err)
		return
	}

	if len(stored) == 0 {
		admin.logger.Info("No settings stored")
		return
	}

	for _, setting := range stored {
		admin.logger.Info(setting.Key, " = ", setting.Value)
	}
}

// InitSettingsCommands registers settings-related commands
func InitSettingsCommands(rootCmd *cobra.Command) error {
	handler, err := NewSettingsCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create settings command handler %w", err)
	}

	var setSettingCmd = &cobra.Command{
		Use:   "set-setting",
		Short: "Store a dashboard setting",
		Run:   handler.SetSettingCmd,
	}
	setSettingCmd.Flags().StringP("key", "", "", "Setting key, e.g. forbidEditing")
	setSettingCmd.Flags().StringP("value", "", "", "Setting value, parsed as JSON when possible")
	rootCmd.AddCommand(setSettingCmd)

	var getSettingCmd = &cobra.Command{
		Use:   "get-setting",
		Short: "Print a dashboard setting",
		Run:   handler.GetSettingCmd,
	}
	getSettingCmd.Flags().StringP("key", "", "", "Setting key")
	rootCmd.AddCommand(getSettingCmd)

	var listSettingsCmd = &cobra.Command{
		Use:   "list-settings",
		Short: "Print all dashboard settings",
		Run:   handler.ListSettingsCmd,
	}
	rootCmd.AddCommand(listSettingsCmd)

	return nil
}
