// Package dialect describes which identifiers are builtin operations and
// which type names exist in a flavour of the assembly language.
package dialect

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"
)

var log = commonlog.GetLogger("yulc.dialect")

//go:embed evm.yaml
var evmDefinition []byte

// Builtin is a builtin operation of a dialect.
type Builtin struct {
	Name       string `yaml:"name"`
	Parameters int    `yaml:"parameters"`
	Returns    int    `yaml:"returns"`
}

// Signature renders the builtin as name(a1, a2) -> r.
func (b *Builtin) Signature() string {
	args := make([]string, b.Parameters)
	for i := range args {
		args[i] = fmt.Sprintf("a%d", i+1)
	}
	s := b.Name + "(" + strings.Join(args, ", ") + ")"
	if b.Returns > 0 {
		s += " -> " + strings.Repeat("r, ", b.Returns-1) + "r"
	}
	return s
}

// Dialect is the oracle queried by the parser. It is immutable once loaded.
type Dialect struct {
	Name string

	types       map[string]bool
	defaultType string
	builtins    map[string]*Builtin
}

type definition struct {
	Name        string     `yaml:"name"`
	Types       []string   `yaml:"types"`
	DefaultType string     `yaml:"default_type"`
	Builtins    []*Builtin `yaml:"builtins"`
}

// Load reads a YAML dialect definition.
func Load(r io.Reader) (*Dialect, error) {
	var def definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("decoding dialect: %w", err)
	}

	if def.Name == "" {
		return nil, fmt.Errorf("dialect has no name")
	}

	d := &Dialect{
		Name:        def.Name,
		types:       make(map[string]bool, len(def.Types)),
		defaultType: def.DefaultType,
		builtins:    make(map[string]*Builtin, len(def.Builtins)),
	}

	for _, t := range def.Types {
		d.types[t] = true
	}
	if d.defaultType != "" && !d.types[d.defaultType] {
		return nil, fmt.Errorf("dialect %s: default type %q is not among its types", d.Name, d.defaultType)
	}

	for _, b := range def.Builtins {
		if b.Name == "" {
			return nil, fmt.Errorf("dialect %s: builtin without a name", d.Name)
		}
		if _, dup := d.builtins[b.Name]; dup {
			return nil, fmt.Errorf("dialect %s: duplicate builtin %q", d.Name, b.Name)
		}
		if b.Parameters < 0 || b.Returns < 0 {
			return nil, fmt.Errorf("dialect %s: builtin %q has negative arity", d.Name, b.Name)
		}
		d.builtins[b.Name] = b
	}

	log.Debugf("loaded dialect %s: %d builtins, %d types", d.Name, len(d.builtins), len(d.types))
	return d, nil
}

// LoadFile reads a YAML dialect definition from path.
func LoadFile(path string) (*Dialect, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

var (
	evmOnce sync.Once
	evm     *Dialect
)

// EVM returns the embedded default dialect.
func EVM() *Dialect {
	evmOnce.Do(func() {
		d, err := Load(bytes.NewReader(evmDefinition))
		if err != nil {
			panic(fmt.Sprintf("embedded evm dialect: %v", err))
		}
		evm = d
	})
	return evm
}

// Builtin returns the builtin called name.
func (d *Dialect) Builtin(name string) (*Builtin, bool) {
	b, ok := d.builtins[name]
	return b, ok
}

func (d *Dialect) IsBuiltin(name string) bool {
	_, ok := d.builtins[name]
	return ok
}

// IsType reports whether name is a type of this dialect.
func (d *Dialect) IsType(name string) bool {
	return d.types[name]
}

// DefaultType is the type of untyped names and literals. It is empty for
// untyped dialects.
func (d *Dialect) DefaultType() string {
	return d.defaultType
}

// Types returns the type names in sorted order.
func (d *Dialect) Types() []string {
	names := make([]string, 0, len(d.types))
	for t := range d.types {
		names = append(names, t)
	}
	sort.Strings(names)
	return names
}

// BuiltinNames returns the builtin names in sorted order.
func (d *Dialect) BuiltinNames() []string {
	names := make([]string, 0, len(d.builtins))
	for n := range d.builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
