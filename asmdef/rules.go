package asmdef

import (
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// Rule maps assembly names matching a glob pattern to references that must
// be present and references that must not.
type Rule struct {
	// Assembly is a path.Match pattern over the assembly name, e.g.
	// "MyGame.*".
	Assembly string `yaml:"assembly"`

	// Require lists references added when missing.
	Require []string `yaml:"require"`

	// Forbid lists references removed when present.
	Forbid []string `yaml:"forbid"`
}

// Matches reports whether the rule applies to the given assembly name.
// A malformed pattern matches nothing.
func (r Rule) Matches(assembly string) bool {
	ok, err := path.Match(r.Assembly, assembly)
	return err == nil && ok
}

// RuleSet is an ordered collection of rules. Later rules see the effects of
// earlier ones.
type RuleSet struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules reads a YAML rule file.
//
// Example:
//
//	rules:
//	  - assembly: "MyGame.*"
//	    require: ["Unity.TextMeshPro"]
//	    forbid: ["Assembly-CSharp-Editor"]
func LoadRules(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules %s: %w", path, err)
	}

	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parse rules %s: %w", path, err)
	}

	return &rs, nil
}

// For returns the aggregated required and forbidden references for the
// given assembly name.
func (rs *RuleSet) For(assembly string) (require, forbid []string) {
	for _, r := range rs.Rules {
		if !r.Matches(assembly) {
			continue
		}
		require = append(require, r.Require...)
		forbid = append(forbid, r.Forbid...)
	}
	return require, forbid
}
