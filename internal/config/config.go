// Package config loads contract documents: loosely written YAML files that
// hold the fields merged into a template.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the contract document read when none is given.
const DefaultPath = "./ALL.contract"

var (
	ErrNotFound   = errors.New("contract file not found")
	ErrParse      = errors.New("parsing contract file")
	ErrNotMapping = errors.New("contract file must be a mapping of fields")
)

// Load reads and parses the contract document at path.
func Load(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	return Parse(raw)
}

// Parse sanitizes raw and decodes it into a flat Data record. Scalars keep
// their YAML type: ints and floats become numbers, null is dropped and
// everything else is kept as text.
func Parse(raw []byte) (Data, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(Sanitize(string(raw))), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrNotMapping
	}
	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	data := make(Data, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		if v, ok := nodeValue(resolveAlias(root.Content[i+1])); ok {
			data[key] = v
		}
	}
	return data, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func nodeValue(n *yaml.Node) (Value, bool) {
	switch n.Kind {
	case yaml.ScalarNode:
		return scalarValue(n)
	case yaml.SequenceNode:
		parts := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			v, _ := nodeValue(resolveAlias(item))
			parts = append(parts, v.String())
		}
		return StringValue(strings.Join(parts, ",")), true
	default:
		return Value{}, false
	}
}

func scalarValue(n *yaml.Node) (Value, bool) {
	switch n.ShortTag() {
	case "!!null":
		return Value{}, false
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err == nil {
			return NumberValue(f), true
		}
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return StringValue(strconv.FormatBool(b)), true
		}
	}
	return StringValue(n.Value), true
}
