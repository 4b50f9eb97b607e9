package lib

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/fieldio/lib/field"
	"github.com/phil-mansfield/fieldio/lib/mesh"
)

const testConfigText = `
[mesh]
Nx = 4
Ny = 3
Nz = 2

[run]
Times = 0,5
TimestampLen = 4
Strictness = warn

[field.ux]
description = streamwise velocity
filename = data/ux
direction = 0
precision = single

[field.uy]
description = wall-normal velocity
filename = data/uy
direction = 1
`

func TestParseConfigFile(t *testing.T) {
	raw, err := ParseConfigFile(writeConfigFile(t, testConfigText))
	require.NoError(t, err)

	args, err := raw.Process()
	require.NoError(t, err)

	require.Equal(t, mesh.Grid{Nx: 4, Ny: 3, Nz: 2}, args.Mesh)
	require.False(t, args.Times.All())
	require.Equal(t, []int{ 0, 5 }, args.Times.Steps())
	require.Equal(t, 4, args.TimestampLen)
	require.Equal(t, WarnOnError, args.Strictness)
	require.Equal(t, log.InfoLevel, args.LogLevel)
	require.Equal(t, 2, args.Axis)

	require.Len(t, args.Fields, 2)
	require.Equal(t, "ux", args.Fields[0].Name)
	require.Equal(t, "streamwise velocity", args.Fields[0].Description)
	require.Equal(t, map[string]string{
		"filename": "data/ux", "direction": "0", "precision": "single",
	}, args.Fields[0].Properties)
	require.Equal(t, "uy", args.Fields[1].Name)

	f, err := field.New(args.Fields[0])
	require.NoError(t, err)
	require.Equal(t, field.Single, f.Precision)

	f, err = field.New(args.Fields[1])
	require.NoError(t, err)
	require.Equal(t, field.Double, f.Precision)
}

func TestParseCommandLine(t *testing.T) {
	mode, configFile, cmdArgs, err := ParseCommandLine([]string{
		"stats", "run.ini", "--Times", "all", "--Fields", "uy", "--nz", "7",
	})
	require.NoError(t, err)
	require.Equal(t, StatsMode, mode)
	require.Equal(t, "run.ini", configFile)

	raw, err := ParseConfigFile(writeConfigFile(t, testConfigText))
	require.NoError(t, err)
	raw.Overwrite(cmdArgs)

	args, err := raw.Process()
	require.NoError(t, err)
	require.True(t, args.Times.All())
	require.Equal(t, 7, args.Mesh.Nz)
	require.Len(t, args.Fields, 1)
	require.Equal(t, "uy", args.Fields[0].Name)
	// Values not on the command line survive.
	require.Equal(t, 4, args.TimestampLen)
}

func TestParseCommandLineFailure(t *testing.T) {
	tests := [][]string{
		{ "dance", "run.ini" },
		{ "stats" },
		{ "stats", "--Times", "all" },
		{ "stats", "run.ini", "--Times" },
		{ "stats", "run.ini", "Times", "all" },
		{ "stats", "run.ini", "--Colour", "red" },
	}

	for i := range tests {
		_, _, _, err := ParseCommandLine(tests[i])
		require.Error(t, err, "%d) %v", i, tests[i])
	}

	mode, _, _, err := ParseCommandLine(nil)
	require.NoError(t, err)
	require.Equal(t, HelpMode, mode)

	mode, _, _, err = ParseCommandLine([]string{ "help" })
	require.NoError(t, err)
	require.Equal(t, HelpMode, mode)
}

func TestParseConfigFileFailure(t *testing.T) {
	tests := []string{
		// Missing direction.
		"[mesh]\nNx=1\nNy=1\nNz=1\n[field.ux]\ndescription=a\nfilename=a\n",
		// Missing description.
		"[field.ux]\nfilename=a\ndirection=0\n",
		// Unknown section.
		"[fields]\nx=1\n",
		// Unknown variable.
		"[run]\nColour = red\n",
		// Variable outside of a section.
		"Nx = 1\n",
	}

	for i := range tests {
		_, err := ParseConfigFile(writeConfigFile(t, tests[i]))
		require.Error(t, err, "%d) %q", i, tests[i])
	}

	_, err := ParseConfigFile("file_that_doesn't_exist.ini")
	require.Error(t, err)
}

func TestProcessFailure(t *testing.T) {
	base := "[mesh]\nNx = 2\nNy = 2\nNz = 2\n" +
		"[field.ux]\ndescription=a\nfilename=a\ndirection=0\n"
	tests := []string{
		"[mesh]\nNx = 2\nNy = 2\n[field.ux]\ndescription=a\nfilename=a\n" +
			"direction=0\n",
		"[mesh]\nNx = 2\nNy = 0\nNz = 2\n[field.ux]\ndescription=a\n" +
			"filename=a\ndirection=0\n",
		"[mesh]\nNx = 2\nNy = 2\nNz = 2\n",
		base + "[run]\nTimes = soon\n",
		base + "[run]\nTimestampLen = -1\n",
		base + "[run]\nPrecision = half\n",
		base + "[run]\nStrictness = maybe\n",
		base + "[run]\nLogLevel = loud\n",
		base + "[run]\nAxis = 3\n",
		base + "[run]\nFields = uz\n",
	}

	for i := range tests {
		raw, err := ParseConfigFile(writeConfigFile(t, tests[i]))
		require.NoError(t, err, "%d) %q", i, tests[i])
		_, err = raw.Process()
		require.Error(t, err, "%d) %q", i, tests[i])
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(string(m))
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
	_, err := ParseMode("confirm")
	require.Error(t, err)
}
