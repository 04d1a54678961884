package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zlovro/sparkAssembler/assembler"
)

// execute runs the CLI with the given arguments and captures its output. The
// root command is process-wide state, so parsed persistent flags are reset
// when the test finishes.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(resetFlags)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags() {
	for _, name := range []string{"log-level", "config", "include-path", "color"} {
		rootCmd.PersistentFlags().Lookup(name).Changed = false
	}
	disassembleCommand.Flags().Lookup("hexdump").Changed = false
	flagLogLevel, flagConfig, flagColor = "", "", ""
	flagIncludePaths = nil
	disassembleHexdump = false
}

func TestCLI_AssembleDisassembleRoundTrip(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "boot.s")
	bin := filepath.Join(dir, "boot.bin")
	out := filepath.Join(dir, "boot.dis.s")
	require.NoError(t, os.WriteFile(src, []byte("add r0, r1, r2\nnop\n"), 0644))

	_, err := execute(t, "assemble", "-i", src, "-o", bin)
	require.NoError(t, err)

	data, err := os.ReadFile(bin)
	require.NoError(t, err)
	assert.Equal(t, assembler.BytesFromWords([]uint32{0x0D095000, 0xFC000000}), data)

	_, err = execute(t, "disassemble", "-i", bin, "-o", out, "--hexdump")
	require.NoError(t, err)

	text, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(text), "add r0, r1, r2")
	assert.Contains(t, string(text), "; 0D095000\t00000000")
	assert.Contains(t, string(text), "nop")
}

func TestCLI_IncludePathFlag(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	libs := filepath.Join(dir, "libs")
	require.NoError(t, os.MkdirAll(libs, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(libs, "util.s"), []byte("ret\n"), 0644))

	src := filepath.Join(dir, "main.s")
	bin := filepath.Join(dir, "main.bin")
	require.NoError(t, os.WriteFile(src, []byte("#include 'util.s'\n"), 0644))

	_, err := execute(t, "--include-path", libs, "assemble", "-i", src, "-o", bin)
	require.NoError(t, err)

	data, err := os.ReadFile(bin)
	require.NoError(t, err)
	assert.Equal(t, assembler.BytesFromWords([]uint32{0x23600000}), data)
}

func TestCLI_ConfigSuppliesIncludePath(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	libs := filepath.Join(dir, "libs")
	require.NoError(t, os.MkdirAll(libs, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(libs, "util.s"), []byte("nop\n"), 0644))

	src := filepath.Join(dir, "main.s")
	bin := filepath.Join(dir, "main.bin")
	require.NoError(t, os.WriteFile(src, []byte("#include 'util.s'\n"), 0644))
	cfg := writeConfig(t, fmt.Sprintf("include_paths = [%q]\n", libs))

	_, err := execute(t, "--config", cfg, "assemble", "-i", src, "-o", bin)
	require.NoError(t, err)

	data, err := os.ReadFile(bin)
	require.NoError(t, err)
	assert.Equal(t, assembler.BytesFromWords([]uint32{0xFC000000}), data)
}

func TestCLI_Version(t *testing.T) {
	isolateEnv(t)
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sparkasm version")
}

func TestCLI_Catalog(t *testing.T) {
	isolateEnv(t)
	out, err := execute(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "OPCODE")
	assert.Contains(t, out, "liw")
	assert.Contains(t, out, "jmpeq")
	assert.Contains(t, out, "retaddr")
}

func TestCLI_AssembleErrorNamesLine(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.s")
	bin := filepath.Join(dir, "bad.bin")
	require.NoError(t, os.WriteFile(src, []byte("nop\nqq r0\n"), 0644))

	_, err := execute(t, "assemble", "-i", src, "-o", bin)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.s:2:")
	assert.Contains(t, err.Error(), "unknown opcode")
}

func TestCLI_LogLevelPrecedence(t *testing.T) {
	isolateEnv(t)
	prev := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(prev) })
	t.Setenv("SPARKASM_LOG_LEVEL", "error")

	_, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, logrus.ErrorLevel, logrus.GetLevel())

	_, err = execute(t, "--log-level", "debug", "version")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

func TestCLI_InvalidLogLevel(t *testing.T) {
	isolateEnv(t)
	_, err := execute(t, "--log-level", "bogus", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestCLI_HexdumpConfigDefault(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	bin := filepath.Join(dir, "boot.bin")
	out := filepath.Join(dir, "boot.s")
	require.NoError(t, os.WriteFile(bin, assembler.BytesFromWords([]uint32{0x0D095000}), 0644))
	cfg := writeConfig(t, "hexdump = true\n")

	_, err := execute(t, "--config", cfg, "disassemble", "-i", bin, "-o", out)
	require.NoError(t, err)

	text, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(text), "; 0D095000\t00000000")
}

func TestFormatterFor(t *testing.T) {
	isolateEnv(t)
	assert.True(t, formatterFor("always").ForceColors)
	assert.True(t, formatterFor("never").DisableColors)

	t.Setenv("NO_COLOR", "1")
	assert.True(t, formatterFor("auto").DisableColors)
}
