package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/netgrid/pkg/config"
	"github.com/aretw0/netgrid/pkg/grid"
	"github.com/aretw0/netgrid/pkg/network"
)

const sampleTopology = `
devices:
  - id: main
    kind: mainframe
    address: 1
  - id: net3
    kind: relay
  - id: term1
    kind: terminal
    address: 2
    parent: net3
console:
  width: 40
  lines: 12
`

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(sampleTopology))
	require.NoError(t, err)

	require.Len(t, cfg.Devices, 3)
	assert.Equal(t, "main", cfg.Devices[0].ID)
	assert.Equal(t, "mainframe", cfg.Devices[0].Kind)
	assert.Equal(t, uint16(1), cfg.Devices[0].Address)
	assert.Equal(t, "net3", cfg.Devices[2].Parent)
	assert.Equal(t, 40, cfg.Console.Width)
	assert.Equal(t, 12, cfg.Console.Lines)
}

func TestParseRejectsMissingID(t *testing.T) {
	_, err := config.Parse([]byte("devices:\n  - kind: relay\n"))
	assert.ErrorContains(t, err, "missing id")
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := config.Parse([]byte(":\n  - ["))
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	cfg, err := config.Parse([]byte(sampleTopology))
	require.NoError(t, err)

	sys, err := cfg.Build()
	require.NoError(t, err)

	assert.Equal(t, network.Address(1), sys.Mainframe)
	assert.Equal(t, network.Address(2), sys.Terminal)

	path, err := sys.DevicePath(sys.Terminal)
	require.NoError(t, err)
	assert.Equal(t, "main/net3/term1", path.String())
}

func TestBuildUnknownParent(t *testing.T) {
	cfg, err := config.Parse([]byte("devices:\n  - id: hub\n    kind: mainframe\n  - id: t1\n    kind: terminal\n    parent: ghost\n"))
	require.NoError(t, err)

	_, err = cfg.Build()
	assert.ErrorIs(t, err, grid.ErrUnknownDevice)
}

func TestDefaultMatchesNewSystem(t *testing.T) {
	sys, err := config.Default().Build()
	require.NoError(t, err)

	want := grid.NewSystem()
	assert.Equal(t, want.Mainframe, sys.Mainframe)
	assert.Equal(t, want.Terminal, sys.Terminal)
	assert.Equal(t, want.Devices(), sys.Devices())
}
