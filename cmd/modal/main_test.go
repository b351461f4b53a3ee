package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/modal/internal/config"
	"github.com/mark3labs/modal/internal/tui/testfixtures"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newCmd(f *descriptorFlags) *cobra.Command {
	c := &cobra.Command{}
	f.register(c)
	return c
}

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dialog.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDescriptorFlags_FromFlags(t *testing.T) {
	var f descriptorFlags
	c := newCmd(&f)
	require.NoError(t, c.ParseFlags([]string{"--title", "Hi", "-a", "OK", "--action", "Not now"}))

	d, err := f.load(c, nil)
	require.NoError(t, err)
	require.Equal(t, "Hi", d.Title)
	require.Empty(t, d.Message)
	require.Len(t, d.Actions, 2)
	require.Equal(t, "not-now", d.Actions[1].ResultValue())
	require.NoError(t, d.Validate())
}

func TestDescriptorFlags_Nothing(t *testing.T) {
	var f descriptorFlags
	c := newCmd(&f)
	require.NoError(t, c.ParseFlags(nil))

	_, err := f.load(c, nil)
	require.ErrorContains(t, err, "nothing to show")
}

func TestDescriptorFlags_OverrideFile(t *testing.T) {
	path := writeDescriptor(t, testfixtures.DescriptorYAML)

	var f descriptorFlags
	c := newCmd(&f)
	require.NoError(t, c.ParseFlags([]string{"--title", "Other", "--action", "Extra"}))

	d, err := f.load(c, []string{path})
	require.NoError(t, err)
	require.Equal(t, "Other", d.Title)
	require.Equal(t, "This cannot be undone.", d.Message)
	require.Len(t, d.Actions, 4)
	require.Equal(t, "Extra", d.Actions[3].Label)
}

func TestValidateCommand(t *testing.T) {
	var out bytes.Buffer
	validateCmd.SetOut(&out)

	good := writeDescriptor(t, testfixtures.DescriptorYAML)
	require.NoError(t, runValidate(validateCmd, []string{good}))
	require.Contains(t, out.String(), "ok (3 actions)")

	bad := writeDescriptor(t, "title: Missing actions\n")
	err := runValidate(validateCmd, []string{bad})
	require.ErrorContains(t, err, "Actions is required")
}

func TestRenderCommand_Tree(t *testing.T) {
	cfg = config.Default()
	renderFlags.tree = true
	t.Cleanup(func() { renderFlags.tree = false })

	path := writeDescriptor(t, "title: Snapshot Test Modal\nmessage: Testing snapshot for the modal.\nactions:\n  - label: OK\n")

	c := newCmd(&renderFlags.descriptorFlags)
	var out bytes.Buffer
	c.SetOut(&out)
	require.NoError(t, runRender(c, []string{path}))

	golden := filepath.Join("..", "..", "internal", "tui", "modal", "testdata", "modal_snapshot.golden")
	want, err := os.ReadFile(golden)
	require.NoError(t, err)
	require.Equal(t, string(want), out.String())
}

func TestRenderCommand_Plain(t *testing.T) {
	cfg = config.Default()
	renderFlags.plain = true
	t.Cleanup(func() { renderFlags.plain = false })

	c := newCmd(&renderFlags.descriptorFlags)
	require.NoError(t, c.ParseFlags([]string{"--title", "Plain", "--message", "Body", "--action", "OK"}))
	var out bytes.Buffer
	c.SetOut(&out)
	require.NoError(t, runRender(c, nil))

	require.Contains(t, out.String(), "Plain")
	require.Contains(t, out.String(), "Body")
	require.Contains(t, out.String(), "✕")
	require.NotContains(t, out.String(), "\x1b[")
}

func TestSetupCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg = config.Default()
	setupFlags.project = true
	t.Cleanup(func() { setupFlags.project, setupFlags.force = false, false })

	var out bytes.Buffer
	setupCmd.SetOut(&out)
	require.NoError(t, runSetup(setupCmd, nil))
	require.FileExists(t, config.ProjectPath())

	require.ErrorContains(t, runSetup(setupCmd, nil), "already exists")

	setupFlags.force = true
	require.NoError(t, runSetup(setupCmd, nil))
}
