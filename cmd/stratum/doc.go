// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Stratum resolves layered configuration from secret files, a project descriptor,
// a configuration file, environment variables and a dotenv file, and shows how
// every value was resolved.
//
// Usage:
//
//	stratum print                    # print the merged configuration as JSON
//	stratum print --format yaml      # print it as YAML
//	stratum explain POSTGRES.HOST    # show which tier supplied a value
//	stratum watch                    # reload on file change or SIGHUP
package main
