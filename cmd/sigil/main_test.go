// seehuhn.de/go/sigil - name sigils on a 26-letter wheel
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestTraceCommand(t *testing.T) {
	out := run(t, "trace", "Aba")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "A  outer")
	assert.Contains(t, lines[1], "B  outer")
	assert.Contains(t, lines[2], "A  inner")
}

func TestVersionCommand(t *testing.T) {
	assert.Contains(t, run(t, "version"), "sigil version "+Version)
}

func TestSVGCommand(t *testing.T) {
	out := run(t, "svg", "Solara", "--letters=false")
	assert.True(t, strings.HasPrefix(out, "<svg"), out)
	assert.Contains(t, out, `class="sigil"`)
}

func TestExportCommands(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "sigil.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("export:\n  size: 64\n  dir: "+dir+"\n"), 0o644))

	run(t, "-c", cfgFile, "png", "Sol Ara")
	data, err := os.ReadFile(filepath.Join(dir, "Sol_Ara_Sigil.png"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	out := filepath.Join(dir, "x.pdf")
	run(t, "-c", cfgFile, "pdf", "Sol Ara", "-o", out)
	data, err = os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "sigil.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("export:\n  size: -1\n"), 0o644))

	cmd := rootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-c", cfgFile, "png", "x"})
	assert.Error(t, cmd.Execute())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("Debug").String())
	assert.Equal(t, "INFO", parseLevel("bogus").String())
}
