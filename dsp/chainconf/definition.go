package chainconf

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Node types understood by Build.
const (
	TypeBuffer         = "buffer"
	TypeNonUniform     = "nonuniform"
	TypeComparator     = "comparator"
	TypeHoldHigh       = "holdhigh"
	TypeHoldLow        = "holdlow"
	TypeLimiter        = "limiter"
	TypeMidAntiJitter  = "midantijitter"
	TypeHistAntiJitter = "histantijitter"
)

var validate = validator.New()

// Definition is the declarative form of a pipeline.
type Definition struct {
	// TimeCapacity is the length of the shared time buffer. Zero selects the
	// largest non-uniform capacity.
	TimeCapacity int       `yaml:"time_capacity" validate:"omitempty,gte=2"`
	Nodes        []NodeDef `yaml:"nodes" validate:"required,min=1,dive"`
}

// NodeDef declares one node.
type NodeDef struct {
	ID     string `yaml:"id" validate:"required"`
	Type   string `yaml:"type" validate:"required,oneof=buffer nonuniform comparator holdhigh holdlow limiter midantijitter histantijitter"`
	Parent string `yaml:"parent"`
	// Capacity is the window length of buffers and windowed filters.
	Capacity int                `yaml:"capacity" validate:"omitempty,gte=2"`
	Params   map[string]float64 `yaml:"params"`
	// Mode is the sampling mode used by Pipeline.SampleAt: nearest, linear
	// or spline.
	Mode string `yaml:"mode" validate:"omitempty,oneof=nearest linear spline"`
}

// Num returns a numeric parameter, or def when it is missing or not finite.
func (n NodeDef) Num(key string, def float64) float64 {
	v, ok := n.Params[key]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// Validate checks field constraints. Parent references are checked by Build.
func (d Definition) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	return nil
}

// Parse decodes a YAML (or JSON) definition. Unknown fields are rejected.
func Parse(data []byte) (Definition, error) {
	var d Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return Definition{}, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	if err := d.Validate(); err != nil {
		return Definition{}, err
	}
	return d, nil
}

// Load reads and parses a definition file.
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("chainconf: read %s: %w", path, err)
	}
	return Parse(data)
}

// order returns node indices parent first using Kahn's algorithm. Roots and
// the children of each node keep their declaration order.
func (d Definition) order() ([]int, error) {
	index := make(map[string]int, len(d.Nodes))
	for i, n := range d.Nodes {
		if _, dup := index[n.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, n.ID)
		}
		index[n.ID] = i
	}

	children := make([][]int, len(d.Nodes))
	queue := make([]int, 0, len(d.Nodes))
	for i, n := range d.Nodes {
		if n.Parent == "" {
			queue = append(queue, i)
			continue
		}
		p, ok := index[n.Parent]
		if !ok {
			return nil, fmt.Errorf("%w: %q for node %q", ErrUnknownParent, n.Parent, n.ID)
		}
		children[p] = append(children[p], i)
	}

	order := make([]int, 0, len(d.Nodes))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]

		order = append(order, i)
		queue = append(queue, children[i]...)
	}

	if len(order) != len(d.Nodes) {
		return nil, ErrCycle
	}
	return order, nil
}
