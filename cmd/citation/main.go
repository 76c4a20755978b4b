// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the citation CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/citation-panel/internal/crossref"
	"github.com/pdiddy/citation-panel/internal/secrets"
	"github.com/pdiddy/citation-panel/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

var rootCmd = &cobra.Command{
	Use:   "citation",
	Short: "Look up CrossRef citation details for DOIs",
	Long: `citation resolves DOIs against the CrossRef REST API and shows the work's
title and how many times it has been referenced.

resolve prints the citation panel for one or more DOIs, validate checks that
a DOI names a real work, and watch opens an interactive panel that follows a
DOI input field as you type.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/", cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		loadedSecrets = s
		if names := s.Names(); len(names) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Loaded secrets: %v\n", names)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./citation.yaml or ~/.config/citation/citation.yaml)")
	pf.String("mailto", "", "contact address for the CrossRef polite pool")
	pf.String("api-base", crossref.DefaultBaseURL, "CrossRef API root")
	pf.Duration("timeout", 0, "HTTP request timeout (0 waits indefinitely)")
	pf.Float64("rate-limit", 10, "maximum CrossRef requests per second (negative disables)")

	viper.BindPFlag("crossref.mailto", pf.Lookup("mailto"))
	viper.BindPFlag("crossref.base_url", pf.Lookup("api-base"))
	viper.BindPFlag("crossref.timeout", pf.Lookup("timeout"))
	viper.BindPFlag("crossref.rate_limit", pf.Lookup("rate-limit"))

	viper.SetDefault("crossref.user_agent", "citation-panel/"+version)
	viper.SetDefault("crossref.burst", 5)
	viper.SetDefault("crossref.max_retries", 5)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("citation")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "citation"))
		}
	}

	viper.SetEnvPrefix("CITATION")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// crossrefConfig assembles client settings from flags, environment, config
// file and secrets, in that order of precedence.
func crossrefConfig() types.CrossrefConfig {
	return types.CrossrefConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("crossref.timeout"),
			UserAgent: viper.GetString("crossref.user_agent"),
		},
		BaseURL:    viper.GetString("crossref.base_url"),
		Mailto:     loadedSecrets.Or(secrets.KeyMailto, viper.GetString("crossref.mailto")),
		PlusToken:  loadedSecrets.Or(secrets.KeyPlusToken, viper.GetString("crossref.plus_token")),
		RateLimit:  viper.GetFloat64("crossref.rate_limit"),
		Burst:      viper.GetInt("crossref.burst"),
		MaxRetries: viper.GetInt("crossref.max_retries"),
	}
}

// newClient builds a CrossRef client that reports retry progress to log;
// nil discards it.
func newClient(log io.Writer) *crossref.Client {
	return crossref.NewClient(nil, crossrefConfig(), log)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
