package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/bjaus/serialwrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBoundaryPlan(t *testing.T) {
	var out bytes.Buffer
	ok, err := run(&out, serialwrite.BoundaryPlan(), serialwrite.TSVReport, serialwrite.ReportOptions{})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, strings.HasPrefix(out.String(), "Check\tKind\tGot\tWant\tBytes\tStatus\n"))
	assert.NotContains(t, out.String(), "FAIL")
}

func TestRunReportsFailure(t *testing.T) {
	plan := serialwrite.Plan{
		Config: serialwrite.DefaultConfig(),
		Checks: []serialwrite.Check{{Name: "off by one", Kind: serialwrite.Int8, Value: "1", Want: "2"}},
	}
	var out bytes.Buffer
	ok, err := run(&out, plan, serialwrite.TSVReport, serialwrite.ReportOptions{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, out.String(), "FAIL")
}

func TestLoadPlanFromFiles(t *testing.T) {
	dir := t.TempDir()
	planPath := filepath.Join(dir, "plan.yaml")
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(planPath, []byte("checks:\n  - {name: a, kind: int8, value: max, want: '127'}\n"), 0o600))
	require.NoError(t, os.WriteFile(configPath, []byte("line_ending: \"\\n\"\n"), 0o600))

	*planFlag, *configFlag = planPath, configPath
	t.Cleanup(func() { *planFlag, *configFlag = "", "" })

	plan, err := loadPlan()
	require.NoError(t, err)
	require.Len(t, plan.Checks, 1)
	assert.Equal(t, "\n", plan.Config.LineEnding)
}

func TestReadFileNamesBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("exp_marker: xx\n"), 0o600))
	_, err := readFile(path, serialwrite.LoadConfig)
	require.ErrorIs(t, err, serialwrite.ErrInvalidConfig)
	assert.Contains(t, err.Error(), path)
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, isBrokenPipe(syscall.EPIPE))
	assert.True(t, isBrokenPipe(fmt.Errorf("write: %w", io.ErrClosedPipe)))
	assert.False(t, isBrokenPipe(io.ErrUnexpectedEOF))
}
