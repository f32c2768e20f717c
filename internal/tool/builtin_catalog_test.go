package tool_test

import (
	"testing"

	"github.com/harunnryd/tenki/internal/tool"
	_ "github.com/harunnryd/tenki/internal/tool/builtin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinNames_DeterministicAndComplete(t *testing.T) {
	names := tool.BuiltinNames()
	require.NotEmpty(t, names)

	assert.Equal(t, []string{
		"getCurrentWeather",
		"getLocation",
	}, names)
}

func TestInstantiateBuiltins_UsesRegisteredFactories(t *testing.T) {
	builtins, err := tool.InstantiateBuiltins(tool.BuiltinOptions{})
	require.NoError(t, err)
	require.Len(t, builtins, 2)

	names := make([]string, 0, len(builtins))
	for _, builtin := range builtins {
		names = append(names, tool.NormalizeToolName(builtin.Name()))
	}

	assert.Equal(t, []string{
		"getCurrentWeather",
		"getLocation",
	}, names)
}

func TestIsBuiltinName_StrictToolName(t *testing.T) {
	assert.True(t, tool.IsBuiltinName("getLocation"))
	assert.True(t, tool.IsBuiltinName("getCurrentWeather"))
	assert.False(t, tool.IsBuiltinName("get_location"))
	assert.False(t, tool.IsBuiltinName("weather"))
}

func TestRegistryDescribe_BuiltinDefinitions(t *testing.T) {
	registry := tool.NewRegistry()
	builtins, err := tool.InstantiateBuiltins(tool.BuiltinOptions{})
	require.NoError(t, err)
	for _, builtin := range builtins {
		require.NoError(t, registry.Register(builtin))
	}

	defs := registry.Describe()
	require.Len(t, defs, 2)

	assert.Equal(t, "getCurrentWeather", defs[0].Name)
	assert.Equal(t, []string{"longitude", "latitude"}, defs[0].Parameters["required"])

	assert.Equal(t, "getLocation", defs[1].Name)
	_, hasRequired := defs[1].Parameters["required"]
	assert.False(t, hasRequired)
}
