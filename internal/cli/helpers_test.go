package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/runoshun/todopoints/internal/app"
	"github.com/runoshun/todopoints/internal/domain"
	"github.com/runoshun/todopoints/internal/testutil"
)

// newTestContainer creates an app.Container over an in-memory value store.
func newTestContainer(t *testing.T) (*app.Container, *testutil.MemoryValueStore) {
	t.Helper()
	values := testutil.NewMemoryValueStore()
	c := app.NewWithDeps(app.Config{
		Backend:       domain.BackendFile,
		StoreLocation: "/data/todopoints",
	}, values, values, nil, nil)
	c.ConfigLoader = &testutil.MockConfigLoader{}
	c.ConfigManager = &testutil.MockConfigManager{}
	return c, values
}

// runCommand executes cmd with args and stdin, returning stdout.
func runCommand(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
