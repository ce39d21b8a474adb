package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johnconnor-sec/seer-go/internal/config"
	"github.com/johnconnor-sec/seer-go/internal/errors"
	"github.com/johnconnor-sec/seer-go/internal/output"
)

func newConfigCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(
		newConfigShowCmd(flags),
		newConfigInitCmd(flags),
		newConfigValidateCmd(flags),
		newConfigSchemaCmd(),
	)
	return cmd
}

func newConfigShowCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}

			f := output.NewFormatter(cmd.OutOrStdout())
			f.Header("Seer Configuration")
			f.KeyValue("File", cfg.ConfigPath)
			f.KeyValue("Version", cfg.ConfigVersion)

			f.Subheader("General")
			f.KeyValue("Data dir", cfg.DataDir())
			f.KeyValue("Log file", cfg.LogFile())
			f.KeyValue("Log level", cfg.General.LogLevel)

			f.Subheader("Display")
			f.KeyValue("Backend", cfg.Display.Backend)
			f.KeyValue("Prefix", fmt.Sprintf("%q", cfg.Display.Prefix))
			f.KeyValue("Typing speed", cfg.Display.TypingSpeed)

			f.Subheader("Keys")
			f.KeyValue("Up", strings.Join(cfg.Keys.Up, ", "))
			f.KeyValue("Down", strings.Join(cfg.Keys.Down, ", "))
			f.KeyValue("Select", strings.Join(cfg.Keys.Select, ", "))
			f.KeyValue("Cancel", strings.Join(cfg.Keys.Cancel, ", "))

			f.Subheader("Menus")
			f.KeyValue("Confirm on Esc", cfg.Menus.ConfirmOnEscape)
			return nil
		},
	}
}

func newConfigInitCmd(flags *globalFlags) *cobra.Command {
	var force, interactive bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := flags.path()
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(errors.ValidationFailed, "Configuration file already exists").
					WithDetails(fmt.Sprintf("Path: %s", path)).
					WithSuggestion("Use --force to overwrite it")
			}

			if interactive {
				_, err := config.GenerateInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), path)
				return err
			}

			if err := config.Save(config.DefaultConfig(), path); err != nil {
				return err
			}
			output.NewFormatter(cmd.OutOrStdout()).Success("Configuration written to %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "answer questions instead of writing defaults")
	return cmd
}

func newConfigValidateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Check a configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := flags.path()
			if err != nil {
				return err
			}
			if len(args) > 0 {
				path = config.ExpandPath(args[0])
			}

			if _, err := config.Load(path); err != nil {
				return err
			}
			output.NewFormatter(cmd.OutOrStdout()).Success("%s is valid", path)
			return nil
		},
	}
}

func newConfigSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema [path]",
		Short: "Print or save the JSON schema of the configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := config.GenerateJSONSchema()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				_, err := cmd.OutOrStdout().Write(append(schema, '\n'))
				return err
			}

			if err := os.WriteFile(args[0], schema, 0o644); err != nil {
				return errors.StorageWriteError(args[0], err)
			}
			output.NewFormatter(cmd.OutOrStdout()).Success("JSON schema saved to: %s", args[0])
			return nil
		},
	}
}
