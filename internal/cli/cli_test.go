// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPrint(t *testing.T) {
	dir, configFile := fixture(t)
	// The config file is a higher tier than the environment.
	t.Setenv("STRATUM_CLI_TEST_APP__NAME", "from-env")
	t.Setenv("STRATUM_CLI_TEST_APP__DEBUG", "")

	testcases := []struct {
		description string
		args        []string
	}{
		{
			description: "json",
			args:        []string{"print"},
		},
		{
			description: "yaml",
			args:        []string{"print", "--format", "yaml"},
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			out, err := execute(append(testcase.args, flags(dir, configFile)...)...)
			require.NoError(t, err)

			var values map[string]any
			// JSON is also YAML.
			require.NoError(t, yaml.Unmarshal([]byte(out), &values))
			require.Equal(t, map[string]any{
				"APP": map[string]any{
					"NAME":  "from-file",
					"PORT":  "5432",
					"DEBUG": true,
				},
			}, values)
		})
	}
}

func TestPrint_jsonFormat(t *testing.T) {
	dir, configFile := fixture(t)

	out, err := execute(append([]string{"print"}, flags(dir, configFile)...)...)
	require.NoError(t, err)
	require.JSONEq(t, `{"APP":{"NAME":"from-file","PORT":"5432","DEBUG":true}}`, out)
}

func TestPrint_envOverDotenv(t *testing.T) {
	dir, configFile := fixture(t)
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("APP__MODE=dotenv\nAPP__REGION=eu\n"), 0o600))
	t.Setenv("STRATUM_CLI_TEST_APP__MODE", "env")

	args := append([]string{"print"}, flags(dir, configFile)...)
	out, err := execute(append(args, "--env-file", envFile)...)
	require.NoError(t, err)
	require.JSONEq(t,
		`{"APP":{"NAME":"from-file","PORT":"5432","DEBUG":true,"MODE":"env","REGION":"eu"}}`,
		out,
	)
}

func TestPrint_unknownFormat(t *testing.T) {
	t.Parallel()

	_, err := execute("print", "--format", "xml")
	require.ErrorIs(t, err, errUnknownFormat)
}

func TestPrint_invalidLogLevel(t *testing.T) {
	t.Parallel()

	_, err := execute("print", "--log-level", "loud", "--config-file", "", "--manifest", "",
		"--env-file", "", "--secrets-dir", "", "--env-prefix", "STRATUM_CLI_TEST_")
	require.ErrorContains(t, err, "parse log level")
}

func TestExplain(t *testing.T) {
	dir, configFile := fixture(t)

	out, err := execute(append([]string{"explain", "APP.PORT"}, flags(dir, configFile)...)...)
	require.NoError(t, err)
	require.Equal(t, "APP.PORT has value[5432] that is loaded by secret-file[secret:"+filepath.Join(dir, "secrets")+"].\n"+
		"Here are other value(loader)s:\n"+
		"  - 8080(config-file[file:"+configFile+"])\n\n",
		out,
	)
}

func TestExplain_missingArg(t *testing.T) {
	t.Parallel()

	_, err := execute("explain")
	require.Error(t, err)
}

func TestWatch(t *testing.T) {
	dir, configFile := fixture(t)

	settings := &settings{
		configFile: configFile,
		secretsDir: filepath.Join(dir, "secrets"),
		envPrefix:  "STRATUM_CLI_TEST_",
		delimiter:  "__",
		logLevel:   "warn",
	}

	out := &syncBuffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reload := make(chan os.Signal, 1)
	var (
		waitGroup sync.WaitGroup
		watchErr  error
	)
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		watchErr = watch(ctx, settings, cmd, "json", reload)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), `"NAME": "from-file"`)
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(configFile, []byte(`{"APP":{"NAME":"reloaded"}}`), 0o600))
	reload <- syscall.SIGHUP
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), `"NAME": "reloaded"`)
	}, time.Second, 10*time.Millisecond)

	cancel()
	waitGroup.Wait()
	require.NoError(t, watchErr)
}

func fixture(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	configFile := filepath.Join(dir, "configs.json")
	require.NoError(t, os.WriteFile(configFile,
		[]byte(`{"APP":{"NAME":"from-file","PORT":8080,"DEBUG":true}}`), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "secrets"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "secrets", "APP__PORT"), []byte("5432\n"), 0o600))

	return dir, configFile
}

func flags(dir, configFile string) []string {
	return []string{
		"--config-file", configFile,
		"--manifest", "",
		"--env-file", "",
		"--secrets-dir", filepath.Join(dir, "secrets"),
		"--env-prefix", "STRATUM_CLI_TEST_",
	}
}

func execute(args ...string) (string, error) {
	root := NewRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

type syncBuffer struct {
	mutex  sync.Mutex
	buffer bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return b.buffer.Write(p)
}

func (b *syncBuffer) String() string {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return b.buffer.String()
}
