package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/automoto/tilebound/shared/shape"
	"gopkg.in/yaml.v3"
)

// RulesFile is the preset file LoadAll looks for next to the levels.
const RulesFile = "occluders.yaml"

// Names of the built-in presets.
const (
	RulesOpaque      = "opaque"
	RulesTransparent = "transparent"
)

// BuiltinRules returns the presets available without a rules file.
func BuiltinRules() map[string]shape.Rules {
	return map[string]shape.Rules{
		RulesOpaque:      shape.OpaqueRules(),
		RulesTransparent: shape.TransparentRules(),
	}
}

type ruleSetDoc struct {
	In  []string `yaml:"in"`
	Out []string `yaml:"out"`
}

// rulesDoc is one preset. "all" applies to every side before the
// per-side entries are merged in.
type rulesDoc struct {
	All   *ruleSetDoc `yaml:"all"`
	Above *ruleSetDoc `yaml:"above"`
	Right *ruleSetDoc `yaml:"right"`
	Below *ruleSetDoc `yaml:"below"`
	Left  *ruleSetDoc `yaml:"left"`
}

func (s ruleSetDoc) build() (shape.RuleSet, error) {
	var rs shape.RuleSet
	for _, name := range s.In {
		e, err := shape.ParseEdge(strings.TrimSpace(name))
		if err != nil {
			return rs, fmt.Errorf("in: %w", err)
		}
		rs.In[e] = true
	}
	for _, name := range s.Out {
		e, err := shape.ParseEdge(strings.TrimSpace(name))
		if err != nil {
			return rs, fmt.Errorf("out: %w", err)
		}
		rs.Out[e] = true
	}
	return rs, nil
}

func (s rulesDoc) build() (shape.Rules, error) {
	var rules shape.Rules
	if s.All != nil {
		all, err := s.All.build()
		if err != nil {
			return rules, fmt.Errorf("all: %w", err)
		}
		for i := range rules {
			rules[i] = all
		}
	}
	sides := []struct {
		name string
		doc  *ruleSetDoc
		edge shape.Edge
	}{
		{"above", s.Above, shape.EdgeTop},
		{"right", s.Right, shape.EdgeRight},
		{"below", s.Below, shape.EdgeBottom},
		{"left", s.Left, shape.EdgeLeft},
	}
	for _, side := range sides {
		if side.doc == nil {
			continue
		}
		rs, err := side.doc.build()
		if err != nil {
			return rules, fmt.Errorf("%s: %w", side.name, err)
		}
		rules[side.edge] = rules[side.edge].Merge(rs)
	}
	return rules, nil
}

// ParseRules decodes a YAML document of named occluder presets on top of
// the built-in ones.
func ParseRules(data []byte) (map[string]shape.Rules, error) {
	var docs map[string]rulesDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("unmarshal rules: %w", err)
	}
	presets := BuiltinRules()
	for name, doc := range docs {
		rules, err := doc.build()
		if err != nil {
			return nil, fmt.Errorf("rules %q: %w", name, err)
		}
		presets[name] = rules
	}
	return presets, nil
}

// LoadRules reads presets from path in fsys. A missing file yields the
// built-in presets.
func LoadRules(fsys fs.FS, path string) (map[string]shape.Rules, error) {
	data, err := fs.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return BuiltinRules(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseRules(data)
}
