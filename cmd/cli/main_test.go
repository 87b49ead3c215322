package main

import (
	"bytes"
	"github.com/stretchr/testify/require"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestCommands(t *testing.T) {
	out := execute(t, "fields", "--locale", "hi")
	require.Contains(t, out, "fullName")
	require.Contains(t, out, "आपका पूरा नाम क्या है?")

	out = execute(t, "languages")
	require.Contains(t, out, "हिन्दी")
	require.Contains(t, out, "hi-IN")

	out = execute(t, "extract", "My name is ram kumar, age 45")
	require.Contains(t, out, `"fullName": "Ram Kumar"`)
	require.Contains(t, out, `"count": 2`)
}

func TestCommands_errors(t *testing.T) {
	rootCmd.SetArgs([]string{"fields", "--locale", "xx"})
	require.Error(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"speak", "shoeSize"})
	require.Error(t, rootCmd.Execute())
}
