package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frieze/cmd/frieze/commands"
	"github.com/katalvlaran/frieze/frieze"
	"github.com/katalvlaran/frieze/numeric"
)

func TestMain(m *testing.M) {
	log.Logger = zerolog.Nop()
	os.Exit(m.Run())
}

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := commands.NewRootCommand("test", "none")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()

	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestQuiddity_Golden(t *testing.T) {
	out, err := run(t, "quiddity", "1", "3", "1", "2", "2", "--rows", "6")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "quiddity_pentagon", []byte(out))
}

func TestRender_Golden(t *testing.T) {
	out, err := run(t, "render", "--config", filepath.Join("testdata", "friezes.yaml"))
	require.NoError(t, err)
	newGoldie(t).Assert(t, "render_config", []byte(out))
}

func TestRender_Name(t *testing.T) {
	out, err := run(t, "render", "-c", filepath.Join("testdata", "friezes.yaml"), "--name", "triangle")
	require.NoError(t, err)
	assert.Equal(t, "# triangle (quiddity)\n  0   0   0\n    1   1   1\n      1   1   1\n        0   0   0\n", out)

	_, err = run(t, "render", "-c", filepath.Join("testdata", "friezes.yaml"), "--name", "heptagon")
	assert.ErrorContains(t, err, `no frieze named "heptagon"`)

	_, err = run(t, "render")
	assert.Error(t, err, "--config is required")
}

func TestQuiddity_Matrix(t *testing.T) {
	out, err := run(t, "quiddity", "1", "1", "1", "--width", "1", "--rows", "2", "--matrix")
	require.NoError(t, err)
	assert.Equal(t, "[0, 1, 1]\n[1, 0, 1]\n[1, 1, 0]\n", out)
}

func TestDiagonal_Strict(t *testing.T) {
	out, err := run(t, "diagonal", "2", "2", "--width", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "3/2")

	_, err = run(t, "diagonal", "2", "2", "--strict")
	assert.ErrorIs(t, err, frieze.ErrInvalidSeed)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "quid", "1", "3", "1", "2", "2")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	out, err = run(t, "check", "diag", "1", "3", "1")
	require.NoError(t, err)
	assert.Equal(t, "diagonal seed, position 1: (1 + 1) / 3 = 2/3 is not an integer;"+
		" not the diagonal of a positive integer frieze pattern\n", out)

	out, err = run(t, "check", "quiddity", "2", "2", "2", "--strict")
	assert.ErrorIs(t, err, frieze.ErrInvalidSeed)
	assert.Contains(t, out, "quiddity seed: determinants (3, 3, 2)")
}

func TestArgErrors(t *testing.T) {
	_, err := run(t, "quiddity")
	assert.Error(t, err)

	_, err = run(t, "check", "spiral", "1")
	assert.ErrorIs(t, err, frieze.ErrUnknownSeedKind)

	_, err = run(t, "diagonal", "1", "one")
	assert.ErrorIs(t, err, numeric.ErrSyntax)

	_, err = run(t, "quiddity", "1", "1", "1", "--width", "-1")
	assert.ErrorIs(t, err, frieze.ErrBadOptions)
}
