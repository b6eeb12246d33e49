package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk shape of a biome graph.
//
//	version: 1
//	name: pokerogue
//	root: Town
//	biomes: [Town, Plains, ...]
//	transitions:
//	  Town:
//	    - {to: Plains, probability: 1}
type Document struct {
	Version     int       `yaml:"version" validate:"required,eq=1"`
	Name        string    `yaml:"name"`
	Root        string    `yaml:"root" validate:"required"`
	Biomes      []string  `yaml:"biomes" validate:"required,min=1,unique,dive,required"`
	Transitions Adjacency `yaml:"transitions"`
}

// Transition is one outgoing edge of a source biome.
type Transition struct {
	To          string  `yaml:"to" validate:"required"`
	Probability float64 `yaml:"probability" validate:"gt=0,lte=1"`
}

// Source groups the transitions leaving one biome.
type Source struct {
	From        string       `validate:"required"`
	Transitions []Transition `validate:"dive"`
}

// Adjacency is the transitions mapping with document order preserved.
// A plain Go map would lose the order neighbors are expanded in.
type Adjacency struct {
	Sources []Source `validate:"dive"`
}

// UnmarshalYAML decodes a mapping of source -> []Transition, keeping key order
// and rejecting a source listed twice.
func (a *Adjacency) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: transitions must be a mapping", value.Line)
	}

	seen := make(map[string]struct{}, len(value.Content)/2)
	sources := make([]Source, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if _, dup := seen[key.Value]; dup {
			return fmt.Errorf("line %d: source %q listed twice", key.Line, key.Value)
		}
		seen[key.Value] = struct{}{}

		var ts []Transition
		if err := val.Decode(&ts); err != nil {
			return fmt.Errorf("source %q: %w", key.Value, err)
		}
		sources = append(sources, Source{From: key.Value, Transitions: ts})
	}
	a.Sources = sources

	return nil
}

// MarshalYAML writes the mapping back in document order.
func (a Adjacency) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range a.Sources {
		var val yaml.Node
		if err := val.Encode(s.Transitions); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: s.From},
			&val,
		)
	}

	return node, nil
}

// EdgeCount is the number of transitions across all sources.
func (a Adjacency) EdgeCount() int {
	n := 0
	for _, s := range a.Sources {
		n += len(s.Transitions)
	}

	return n
}
