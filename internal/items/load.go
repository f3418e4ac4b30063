package items

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned when an item source yields no entries.
var ErrEmpty = errors.New("no items")

// Sample returns the demo list shown when no items file is configured.
func Sample() *Store {
	return New("Item 1", "Item 2", "Item 3", "Item 4", "Item 5", "Item 6", "Item 7", "Item 8")
}

type itemsDoc struct {
	Items []string `yaml:"items" toml:"items"`
}

// LoadFile reads item texts from path. YAML and TOML files are parsed by
// extension; anything else is read as one item per non-blank line.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}

	var texts []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		texts, err = parseYAML(data)
	case ".toml":
		texts, err = parseTOML(data)
	default:
		texts = parseLines(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse items %s: %w", filepath.Base(path), err)
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("load items %s: %w", filepath.Base(path), ErrEmpty)
	}
	return New(texts...), nil
}

func parseYAML(data []byte) ([]string, error) {
	// Accept both a bare sequence and an `items:` mapping.
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}
	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var texts []string
		if err := root.Decode(&texts); err != nil {
			return nil, err
		}
		return texts, nil
	}
	var doc itemsDoc
	if err := root.Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Items, nil
}

func parseTOML(data []byte) ([]string, error) {
	var doc itemsDoc
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, err
	}
	return doc.Items, nil
}

func parseLines(data []byte) []string {
	var texts []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		texts = append(texts, line)
	}
	return texts
}
