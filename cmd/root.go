/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/cbstats/internal/iofs"
	"github.com/gnames/cbstats/internal/iologger"
	cbstats "github.com/gnames/cbstats/pkg"
	"github.com/gnames/cbstats/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the base command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s",
			cbstats.Version, cbstats.Build),
		Use:   "cbstats",
		Short: "Enriches Brazilian football league standings",
		Long: `cbstats reads per-round standings of the Brazilian football
league, adds derived columns (final round of a season, champion flag,
relegation history) and publishes CSV reports to a blob store or loads
them into PostgreSQL.

Without a subcommand cbstats prints the effective configuration.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (CBSTATS_*)
  3. Config file (~/.config/cbstats/config.yaml)
  4. Built-in defaults

Environment variables:
  CBSTATS_SOURCE_URL              Source endpoint or local JSON file
  CBSTATS_STORE_KIND              fs, sqlite or azure
  CBSTATS_STORE_CONNECTION_STRING Azure Storage connection string
  CBSTATS_DATABASE_HOST           PostgreSQL host
  CBSTATS_DATABASE_PASSWORD       PostgreSQL password
  CBSTATS_LOG_LEVEL               debug, info, warn or error`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "cbstats version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for cbstats")

	rootCmd.AddCommand(
		getRunCmd(),
		getReportCmd(),
		getGetCmd(),
		getCreateCmd(),
		getPopulateCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Log to file with defaults until the user's settings are known.
	if _, err = iologger.Init(config.LogDir(homeDir), config.New().Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if _, err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

func runRoot(cmd *cobra.Command, _ []string) error {
	gn.Info(
		"Configuration file is <em>%s</em>",
		config.ConfigFilePath(homeDir),
	)
	out, err := yaml.Marshal(masked(cfg))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}

// masked returns a copy of c with secrets hidden.
func masked(c *config.Config) config.Config {
	res := *c
	if res.Database.Password != "" {
		res.Database.Password = "*****"
	}
	if res.Store.ConnectionString != "" {
		res.Store.ConnectionString = "*****"
	}
	return res
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("CBSTATS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Source configuration
	_ = v.BindEnv("source.url", "CBSTATS_SOURCE_URL")
	_ = v.BindEnv("source.timeout", "CBSTATS_SOURCE_TIMEOUT")

	// Store configuration
	_ = v.BindEnv("store.kind", "CBSTATS_STORE_KIND")
	_ = v.BindEnv("store.path", "CBSTATS_STORE_PATH")
	_ = v.BindEnv("store.prefix", "CBSTATS_STORE_PREFIX")
	_ = v.BindEnv("store.container", "CBSTATS_STORE_CONTAINER")
	_ = v.BindEnv("store.connection_string", "CBSTATS_STORE_CONNECTION_STRING")

	// Database configuration
	_ = v.BindEnv("database.host", "CBSTATS_DATABASE_HOST")
	_ = v.BindEnv("database.port", "CBSTATS_DATABASE_PORT")
	_ = v.BindEnv("database.user", "CBSTATS_DATABASE_USER")
	_ = v.BindEnv("database.password", "CBSTATS_DATABASE_PASSWORD")
	_ = v.BindEnv("database.database", "CBSTATS_DATABASE_DATABASE")
	_ = v.BindEnv("database.ssl_mode", "CBSTATS_DATABASE_SSL_MODE")
	_ = v.BindEnv("database.batch_size", "CBSTATS_DATABASE_BATCH_SIZE")

	// Stats configuration
	_ = v.BindEnv("stats.first_season", "CBSTATS_STATS_FIRST_SEASON")

	// Log configuration
	_ = v.BindEnv("log.level", "CBSTATS_LOG_LEVEL")
	_ = v.BindEnv("log.format", "CBSTATS_LOG_FORMAT")
	_ = v.BindEnv("log.destination", "CBSTATS_LOG_DESTINATION")

	// General configuration
	_ = v.BindEnv("jobs_number", "CBSTATS_JOBS_NUMBER")

	v.AutomaticEnv()
}
