// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package main

import (
	"os"

	"github.com/nil-go/stratum/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
