package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadArgOrStdin_PrefersArg(t *testing.T) {
	got, err := readArgOrStdin([]string{"简体"})
	require.NoError(t, err)
	assert.Equal(t, "简体", got)
}

func TestReadArgOrStdin_FallsBackToStdin(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString("来自标准输入")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	orig := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	got, err := readArgOrStdin(nil)
	require.NoError(t, err)
	assert.Equal(t, "来自标准输入", got)
}

func TestConfigsCmd_ListsSupportedConfigs(t *testing.T) {
	cmd := configsCmd()
	assert.Equal(t, "configs", cmd.Use)

	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.RunE(cmd, nil))
	lines := strings.Fields(out.String())
	assert.Len(t, lines, 16)
	assert.Contains(t, lines, "s2t")
	assert.Contains(t, lines, "tw2sp")
}
