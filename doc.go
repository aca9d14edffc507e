// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

/*
Package stratum resolves application configuration from layered sources
into one strongly-typed struct, and holds the active instance in a [Registry]
that supports hot-reload.

Each [Loader] belongs to a [Tier]. Tiers have a fixed precedence, highest first:

  - [TierSecretFile]: mounted secret files, e.g. `/run/secrets`.
  - [TierManifest]: the `[tool.configs]` section of a project descriptor.
  - [TierConfigFile]: a dedicated configuration file, e.g. `configs.toml`.
  - [TierEnv]: OS environment variables.
  - [TierDotenv]: a local `.env` file.
  - [TierDefault]: values already set on the target and `default` struct tags.

The highest tier that defines a leaf wins. Nested tables merge recursively,
while a scalar replaces a table (and vice versa) wholesale.
Flat tiers (secret files, environment, dotenv) encode nesting in their keys
with a delimiter, `__` by default, so `POSTGRES__HOST` lands at `POSTGRES.HOST`.
Keys are case-sensitive, and keys unknown to the schema are ignored.

A schema is a struct embedding [Base]:

	type Config struct {
		stratum.Base

		Debug    bool           `stratum:"DEBUG" default:"false"`
		Postgres PostgresConfig `stratum:"POSTGRES"`
	}

[Resolver.Load] materializes it, and [Registry.Set] makes it the active
configuration after running its Customize hook. [Registry.Reload] builds a
fresh instance of the same type through the same tiers and swaps it in only
if the whole pipeline succeeds.

There is a default Registry accessible through top-level functions
(such as [Set], [Get] and [Reload]) that call the corresponding Registry methods.
*/
package stratum
