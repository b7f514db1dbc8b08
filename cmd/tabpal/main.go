// Copyright (c) 2026 ToeiRei
// TabPal - Tableau color palette editor
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for the TabPal
// application using the Cobra library. It defines the root command,
// subcommands (like list, add, rm), flags, and the main entry point
// for execution.

package main

import (
	"errors"
	"fmt"
	"os"

	isatty "github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/toeirei/tabpal/buildvars"
	"github.com/toeirei/tabpal/internal/config"
	"github.com/toeirei/tabpal/internal/i18n"
	"github.com/toeirei/tabpal/internal/logging"
	"github.com/toeirei/tabpal/internal/model"
	"github.com/toeirei/tabpal/internal/prefs"
	"github.com/toeirei/tabpal/internal/tui"
)

// These are set by the linker for release builds.
var (
	version   = "dev"
	gitCommit = ""
	buildDate = ""
)

var cfgFile string

// main is the entry point of the application.
func main() {
	if err := rootCmd.Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}

var rootCmd *cobra.Command

func init() {
	cobra.OnInitialize(initConfig)
	addCmd.Flags().String("kind", "", `palette type for a new palette ("Categorical", "Sequential", "Diverging")`)
	rootCmd = NewRootCmd()

	// Set defaults in viper. These are used if not set in the config file or by flags.
	viper.SetDefault("preferences.path", "")
	viper.SetDefault("language", "en")
	viper.SetDefault("debug", false)
}

// buildVersion assembles the full version string from the linker-injected
// build variables.
func buildVersion() string {
	v := buildvars.VersionOrDefault(version)
	if gitCommit != "" {
		v += " (" + gitCommit + ")"
	}
	if buildDate != "" {
		v += " built " + buildDate
	}
	return v
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tabpal",
		Short: "TabPal edits custom Tableau color palettes.",
		Long: `TabPal manages the custom color palettes in Tableau's Preferences.tps
file. It finds the file in the usual repository locations, keeps every
other setting in the file untouched, and writes changes straight back so
Tableau picks them up on its next start.

Running without a subcommand will launch the interactive TUI.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Viper has already read the config by this point.
			i18n.Init(viper.GetString("language"))
			logging.SetDebug(viper.GetBool("debug"))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New(i18n.T("cli.tty_required"))
			}
			path := prefs.ResolvePath(viper.GetString("preferences.path"))
			return tui.Run(path, config.SavePreferencesPath)
		},
	}

	// Add subcommands to the newly created root command.
	cmd.AddCommand(listCmd)
	cmd.AddCommand(colorsCmd)
	cmd.AddCommand(addCmd)
	cmd.AddCommand(rmCmd)
	cmd.AddCommand(pathsCmd)
	cmd.AddCommand(versionCmd)

	// Set version
	cmd.Version = buildVersion()

	// Define flags
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is the tabpal.yaml in the user config directory)")
	cmd.PersistentFlags().String("file", "", "path to the Preferences.tps file to edit")
	cmd.PersistentFlags().String("lang", "en", `output language ("en", "de")`)
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	// Bind flags to viper
	viper.BindPFlag("preferences.path", cmd.PersistentFlags().Lookup("file"))
	viper.BindPFlag("language", cmd.PersistentFlags().Lookup("lang"))
	viper.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))

	return cmd
}

// initConfig reads in a configuration file and environment variables.
// It uses Viper to look for tabpal.yaml in the user config directory and
// binds environment variables prefixed with "TABPAL". A missing config
// file is fine; the defaults apply.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else if path, err := config.Path(); err == nil {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("TABPAL")
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			logging.Warnf("could not read config: %v", err)
		}
	}
}

// requireStore resolves the preferences file for the non-interactive
// subcommands. Unlike the TUI there is no setup prompt here, so a missing
// file is an error.
func requireStore() (*prefs.FileStore, error) {
	path := prefs.ResolvePath(viper.GetString("preferences.path"))
	if path == "" {
		return nil, errors.New(i18n.T("cli.no_file", prefs.EnvVar))
	}
	return prefs.NewFileStore(path), nil
}

// listCmd represents the 'list' command. It prints every custom palette
// in the preferences file.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the custom color palettes",
	Long:  `Lists every custom color palette in the preferences file, in file order, with its type.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := requireStore()
		if err != nil {
			return err
		}
		palettes, err := store.Palettes()
		if err != nil {
			return err
		}
		fmt.Println(i18n.T("cli.palettes_header", store.Path()))
		if len(palettes) == 0 {
			fmt.Println(i18n.T("cli.no_palettes"))
			return nil
		}
		for _, p := range palettes {
			fmt.Printf("  %s\n", p.String())
		}
		return nil
	},
}

// colorsCmd represents the 'colors' command. It prints the colors of one
// palette exactly as they are stored in the file.
var colorsCmd = &cobra.Command{
	Use:   "colors <palette>",
	Short: "Show the colors of a palette",
	Long:  `Prints the colors of the named palette in stored order, exactly as they appear in the preferences file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := requireStore()
		if err != nil {
			return err
		}
		palettes, err := store.Palettes()
		if err != nil {
			return err
		}
		for _, p := range palettes {
			if p.Name != args[0] {
				continue
			}
			fmt.Println(i18n.T("cli.colors_header", p.Name, p.Kind.Label()))
			if len(p.Colors) == 0 {
				fmt.Println(i18n.T("cli.no_colors"))
				return nil
			}
			for _, c := range p.Colors {
				fmt.Printf("  %s\n", c)
			}
			return nil
		}
		return fmt.Errorf("%w: %q", prefs.ErrPaletteNotFound, args[0])
	},
}

// addCmd represents the 'add' command. With --kind it creates the palette
// first; any hex arguments are appended to it.
var addCmd = &cobra.Command{
	Use:   "add <palette> [hex...]",
	Short: "Create a palette or add colors to one",
	Long: `Adds colors to the named palette. Hex codes are accepted with or
without a leading '#' and in any case; they are stored canonically as
#RRGGBB.

With --kind the palette is created first (it must not exist yet), so a
palette and its colors can be set up in one call.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := requireStore()
		if err != nil {
			return err
		}
		name := args[0]

		// Canonicalize every color up front so a bad value later in the
		// argument list cannot leave a half-applied command behind.
		values := make([]string, 0, len(args[1:]))
		for _, raw := range args[1:] {
			value, err := model.CanonicalHex(raw)
			if err != nil {
				return err
			}
			values = append(values, value)
		}

		if cmd.Flags().Changed("kind") {
			label, _ := cmd.Flags().GetString("kind")
			kind, ok := model.KindFromLabel(label)
			if !ok {
				return errors.New(i18n.T("cli.unknown_kind", label))
			}
			if err := store.AddPalette(name, kind); err != nil {
				return err
			}
			fmt.Println(i18n.T("cli.created_palette", name, kind.Label()))
		}

		for _, value := range values {
			if err := store.AddColor(name, value); err != nil {
				return err
			}
			fmt.Println(i18n.T("cli.added_color", value, name))
		}
		return nil
	},
}

// rmCmd represents the 'rm' command. With just a palette name it removes
// the whole palette; with a color value it removes that color.
var rmCmd = &cobra.Command{
	Use:   "rm <palette> [hex]",
	Short: "Remove a palette or one of its colors",
	Long: `Removes the named palette from the preferences file, or, when a color
value is given, removes just that color from the palette. Colors are
matched against the stored text; valid hex codes are also tried in
canonical #RRGGBB form.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := requireStore()
		if err != nil {
			return err
		}
		name := args[0]

		if len(args) == 1 {
			if err := store.RemovePalette(name); err != nil {
				return err
			}
			fmt.Println(i18n.T("cli.removed_palette", name))
			return nil
		}

		// Try the input verbatim first so hand-edited oddball values can
		// be removed, then fall back to the canonical spelling.
		value := args[1]
		err = store.RemoveColor(name, value)
		if errors.Is(err, prefs.ErrColorNotFound) {
			if canonical, cerr := model.CanonicalHex(value); cerr == nil && canonical != value {
				if store.RemoveColor(name, canonical) == nil {
					fmt.Println(i18n.T("cli.removed_color", canonical, name))
					return nil
				}
			}
		}
		if err != nil {
			return err
		}
		fmt.Println(i18n.T("cli.removed_color", value, name))
		return nil
	},
}

// pathsCmd represents the 'paths' command. It shows where TabPal looks
// for the preferences file and which candidate wins.
var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show the preferences file search order",
	Long:  `Prints every location TabPal considers for the Preferences.tps file, in resolution order, and marks the one in use.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		active := prefs.ResolvePath(viper.GetString("preferences.path"))

		var candidates []string
		if env := os.Getenv(prefs.EnvVar); env != "" {
			candidates = append(candidates, env)
		}
		if configured := viper.GetString("preferences.path"); configured != "" {
			candidates = append(candidates, configured)
		}
		candidates = append(candidates, prefs.DefaultPaths()...)

		fmt.Println(i18n.T("cli.paths_header"))
		seen := make(map[string]bool)
		for _, c := range candidates {
			if seen[c] {
				continue
			}
			seen[c] = true
			line := "  " + prefs.DescribePath(c)
			if active != "" && c == active {
				line += " " + i18n.T("cli.paths_active")
			}
			fmt.Println(line)
		}
		if active == "" {
			fmt.Println(i18n.T("cli.no_file", prefs.EnvVar))
		}
		return nil
	},
}

// versionCmd prints the full version string.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tabpal version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tabpal %s\n", buildVersion())
	},
}
