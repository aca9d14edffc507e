// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/nil-go/stratum"
	"github.com/nil-go/stratum/provider/dotenv"
	"github.com/nil-go/stratum/provider/env"
	"github.com/nil-go/stratum/provider/file"
	"github.com/nil-go/stratum/provider/manifest"
	"github.com/nil-go/stratum/provider/secret"
)

// settings holds the persistent flags shared by all commands.
// An empty path disables the tier.
type settings struct {
	configFile string
	manifest   string
	envFile    string
	secretsDir string
	envPrefix  string
	delimiter  string
	logLevel   string
}

func (s *settings) bind(flags *pflag.FlagSet) {
	flags.StringVar(&s.configFile, "config-file", "configs.toml", "configuration file (.toml, .yaml, .yml or .json)")
	flags.StringVar(&s.manifest, "manifest", "pyproject.toml", "project descriptor with a [tool.configs] section")
	flags.StringVar(&s.envFile, "env-file", ".env", "dotenv file")
	flags.StringVar(&s.secretsDir, "secrets-dir", "/run/secrets", "directory of secret files")
	flags.StringVar(&s.envPrefix, "env-prefix", "", "prefix of environment variables, stripped from keys")
	flags.StringVar(&s.delimiter, "delimiter", "__", "nesting delimiter of flat keys")
	flags.StringVar(&s.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
}

func (s *settings) resolver(w io.Writer) (*stratum.Resolver, *slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.logLevel)); err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))

	opts := []stratum.Option{
		stratum.WithoutLoaders(),
		stratum.WithLogHandler(logger.Handler()),
		stratum.WithDelimiter(s.delimiter),
		stratum.WithLoader(stratum.TierEnv, env.New(env.WithPrefix(s.envPrefix))),
	}
	if s.envFile != "" {
		opts = append(opts, stratum.WithLoader(stratum.TierDotenv, dotenv.New(s.envFile, dotenv.WithLogger(logger))))
	}
	if s.configFile != "" {
		opts = append(opts, stratum.WithLoader(stratum.TierConfigFile, file.New(s.configFile, file.WithLogger(logger))))
	}
	if s.manifest != "" {
		opts = append(opts, stratum.WithLoader(stratum.TierManifest, manifest.New(s.manifest, manifest.WithLogger(logger))))
	}
	if s.secretsDir != "" {
		opts = append(opts, stratum.WithLoader(stratum.TierSecretFile, secret.New(s.secretsDir, secret.WithLogger(logger))))
	}

	return stratum.New(opts...), logger, nil
}
