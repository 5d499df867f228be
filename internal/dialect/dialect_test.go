package dialect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEVMDialect(t *testing.T) {
	d := EVM()
	require.NotNil(t, d)
	assert.Same(t, d, EVM())

	assert.Equal(t, "evm", d.Name)
	assert.True(t, d.IsBuiltin("add"))
	assert.True(t, d.IsBuiltin("sstore"))
	assert.False(t, d.IsBuiltin("foo"))

	b, ok := d.Builtin("mstore")
	require.True(t, ok)
	assert.Equal(t, 2, b.Parameters)
	assert.Equal(t, 0, b.Returns)

	assert.True(t, d.IsType("u256"))
	assert.False(t, d.IsType("u265"))
	assert.Equal(t, "u256", d.DefaultType())
	assert.Equal(t, []string{"bool", "u256"}, d.Types())

	names := d.BuiltinNames()
	assert.Contains(t, names, "keccak256")
	assert.IsIncreasing(t, names)
}

func TestLoad(t *testing.T) {
	d, err := Load(strings.NewReader(`
name: tiny
types: [word]
default_type: word
builtins:
  - {name: push, parameters: 1, returns: 0}
  - {name: peek, parameters: 0, returns: 1}
`))
	require.NoError(t, err)
	assert.Equal(t, "tiny", d.Name)
	assert.True(t, d.IsBuiltin("push"))
	assert.Equal(t, "word", d.DefaultType())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   string
	}{
		{"no name", "types: []\n", "no name"},
		{"bad default", "name: x\ntypes: [a]\ndefault_type: b\n", `default type "b"`},
		{"duplicate", "name: x\nbuiltins:\n  - {name: f}\n  - {name: f}\n", `duplicate builtin "f"`},
		{"unnamed", "name: x\nbuiltins:\n  - {parameters: 1}\n", "without a name"},
		{"negative", "name: x\nbuiltins:\n  - {name: f, parameters: -1}\n", "negative arity"},
		{"unknown field", "name: x\nopcodes: []\n", "decoding dialect"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestUntypedDialect(t *testing.T) {
	d, err := Load(strings.NewReader("name: plain\n"))
	require.NoError(t, err)
	assert.Equal(t, "", d.DefaultType())
	assert.Empty(t, d.Types())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("does/not/exist.yaml")
	assert.Error(t, err)
}

func TestSignature(t *testing.T) {
	b, _ := EVM().Builtin("add")
	assert.Equal(t, "add(a1, a2) -> r", b.Signature())

	b, _ = EVM().Builtin("stop")
	assert.Equal(t, "stop()", b.Signature())
}
