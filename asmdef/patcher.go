package asmdef

import (
	"fmt"

	"github.com/hupe1980/framemesh/logging"
)

// DefaultIgnoreDirs are directory names skipped when scanning a project
// tree.
var DefaultIgnoreDirs = []string{"Library", "Temp", "Logs", "obj", ".git", "node_modules"}

// Patcher applies a RuleSet to .asmdef files.
type Patcher struct {
	rules  *RuleSet
	logger logging.Logger

	// DryRun computes and logs changes without writing files.
	DryRun bool

	// IgnoreDirs overrides DefaultIgnoreDirs for tree scans.
	IgnoreDirs []string
}

// NewPatcher creates a Patcher for the given rules. A nil logger defaults
// to NoOp.
func NewPatcher(rules *RuleSet, logger logging.Logger) *Patcher {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Patcher{rules: rules, logger: logger, IgnoreDirs: DefaultIgnoreDirs}
}

// Apply patches a loaded file in memory and reports whether it changed.
func (p *Patcher) Apply(f *File) (bool, error) {
	require, forbid := p.rules.For(f.Name())

	changed := false
	for _, ref := range require {
		added, err := f.AddReference(ref)
		if err != nil {
			return changed, err
		}
		if added {
			p.logger.Info("reference added", "assembly", f.Name(), "reference", ref)
			changed = true
		}
	}
	for _, ref := range forbid {
		// A reference may be declared more than once; remove every occurrence.
		for {
			removed, err := f.RemoveReference(ref)
			if err != nil {
				return changed, err
			}
			if !removed {
				break
			}
			p.logger.Info("reference removed", "assembly", f.Name(), "reference", ref)
			changed = true
		}
	}

	return changed, nil
}

// PatchFile loads, patches and (unless DryRun) saves the file at path. It
// reports whether the file changed.
func (p *Patcher) PatchFile(path string) (bool, error) {
	f, err := Load(path)
	if err != nil {
		return false, err
	}

	changed, err := p.Apply(f)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}

	if p.DryRun {
		p.logger.Info("dry run, not writing", "path", path)
		return true, nil
	}

	return true, f.Save()
}

// Report summarizes a tree patch run.
type Report struct {
	Patched   int
	Unchanged int
	Failed    map[string]error
}

// PatchTree scans root for .asmdef files and patches each. Per-file
// failures are collected in the report instead of aborting the run.
func (p *Patcher) PatchTree(root string) (*Report, error) {
	paths, err := Scan(root, p.IgnoreDirs)
	if err != nil {
		return nil, err
	}

	rep := &Report{Failed: map[string]error{}}
	for _, path := range paths {
		changed, err := p.PatchFile(path)
		switch {
		case err != nil:
			rep.Failed[path] = err
			p.logger.Error("patch failed", "path", path, "error", err)
		case changed:
			rep.Patched++
		default:
			rep.Unchanged++
		}
	}

	return rep, nil
}

// Err returns an aggregate error if any file failed, nil otherwise.
func (r *Report) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d asmdef files failed to patch", len(r.Failed), r.Patched+r.Unchanged+len(r.Failed))
}
