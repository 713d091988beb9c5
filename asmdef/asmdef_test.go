package asmdef

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleAsmdef = `{
    "name": "MyGame.Core",
    "rootNamespace": "MyGame",
    "references": [
        "Unity.Mathematics",
        "Unity.Burst"
    ],
    "includePlatforms": [],
    "allowUnsafeCode": false
}`

func TestFile_ParseAndRead(t *testing.T) {
	f, err := Parse("test.asmdef", []byte(sampleAsmdef))
	require.NoError(t, err)

	assert.Equal(t, "MyGame.Core", f.Name())
	assert.Equal(t, []string{"Unity.Mathematics", "Unity.Burst"}, f.References())
	assert.True(t, f.HasReference("Unity.Burst"))
	assert.False(t, f.HasReference("Unity.Collections"))
}

func TestFile_ParseRejectsInvalid(t *testing.T) {
	_, err := Parse("bad.asmdef", []byte("not json"))
	assert.Error(t, err)

	_, err = Parse("bad.asmdef", []byte(`{"references":[]}`))
	assert.Error(t, err, "missing assembly name")
}

func TestFile_AddReference(t *testing.T) {
	f, err := Parse("test.asmdef", []byte(sampleAsmdef))
	require.NoError(t, err)

	changed, err := f.AddReference("Unity.Collections")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"Unity.Mathematics", "Unity.Burst", "Unity.Collections"}, f.References())

	// Unrelated fields keep their exact textual form.
	assert.Contains(t, string(f.Bytes()), `"rootNamespace": "MyGame"`)
	assert.Contains(t, string(f.Bytes()), `"allowUnsafeCode": false`)

	changed, err = f.AddReference("Unity.Collections")
	require.NoError(t, err)
	assert.False(t, changed, "adding a present reference must be a no-op")
}

func TestFile_AddReferenceCreatesArray(t *testing.T) {
	f, err := Parse("test.asmdef", []byte(`{"name": "Minimal"}`))
	require.NoError(t, err)

	changed, err := f.AddReference("Unity.Burst")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"Unity.Burst"}, f.References())
}

func TestFile_RemoveReference(t *testing.T) {
	f, err := Parse("test.asmdef", []byte(sampleAsmdef))
	require.NoError(t, err)

	changed, err := f.RemoveReference("Unity.Mathematics")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"Unity.Burst"}, f.References())

	changed, err = f.RemoveReference("Unity.Mathematics")
	require.NoError(t, err)
	assert.False(t, changed, "removing an absent reference must be a no-op")
}

func TestFile_Duplicates(t *testing.T) {
	f, err := Parse("test.asmdef", []byte(`{"name": "A", "references": ["X", "Y", "X", "X", "Z", "Y"]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"X", "Y"}, f.Duplicates())

	clean, err := Parse("test.asmdef", []byte(sampleAsmdef))
	require.NoError(t, err)
	assert.Empty(t, clean.Duplicates())
}

func TestRule_Matches(t *testing.T) {
	r := Rule{Assembly: "MyGame.*"}

	assert.True(t, r.Matches("MyGame.Core"))
	assert.False(t, r.Matches("OtherGame.Core"))
}

func TestRuleSet_ForAggregates(t *testing.T) {
	rs := &RuleSet{Rules: []Rule{
		{Assembly: "MyGame.*", Require: []string{"Unity.Burst"}},
		{Assembly: "*.Core", Require: []string{"Unity.Mathematics"}, Forbid: []string{"Assembly-CSharp-Editor"}},
		{Assembly: "Other", Require: []string{"Never"}},
	}}

	require2, forbid := rs.For("MyGame.Core")

	assert.Equal(t, []string{"Unity.Burst", "Unity.Mathematics"}, require2)
	assert.Equal(t, []string{"Assembly-CSharp-Editor"}, forbid)
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
rules:
  - assembly: "MyGame.*"
    require: ["Unity.Burst"]
    forbid: ["Assembly-CSharp-Editor"]
`), 0o644))

	rs, err := LoadRules(path)
	require.NoError(t, err)
	require.Len(t, rs.Rules, 1)
	assert.Equal(t, "MyGame.*", rs.Rules[0].Assembly)
	assert.Equal(t, []string{"Unity.Burst"}, rs.Rules[0].Require)
}

func TestPatcher_Apply(t *testing.T) {
	rs := &RuleSet{Rules: []Rule{{
		Assembly: "MyGame.*",
		Require:  []string{"Unity.Collections"},
		Forbid:   []string{"Unity.Burst"},
	}}}

	f, err := Parse("test.asmdef", []byte(sampleAsmdef))
	require.NoError(t, err)

	p := NewPatcher(rs, nil)
	changed, err := p.Apply(f)
	require.NoError(t, err)
	assert.True(t, changed)

	refs := f.References()
	assert.Contains(t, refs, "Unity.Collections")
	assert.NotContains(t, refs, "Unity.Burst")

	changed, err = p.Apply(f)
	require.NoError(t, err)
	assert.False(t, changed, "a compliant file must not change")
}

func TestPatcher_ApplyRemovesRepeatedForbiddenReference(t *testing.T) {
	rs := &RuleSet{Rules: []Rule{{Assembly: "MyGame.*", Forbid: []string{"Unity.Burst"}}}}

	f, err := Parse("test.asmdef", []byte(`{"name": "MyGame.Core", "references": ["Unity.Burst", "Unity.Mathematics", "Unity.Burst"]}`))
	require.NoError(t, err)
	require.Equal(t, []string{"Unity.Burst"}, f.Duplicates())

	p := NewPatcher(rs, nil)
	changed, err := p.Apply(f)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"Unity.Mathematics"}, f.References())
}

func TestPatcher_PatchFileDryRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "MyGame.Core.asmdef")
	require.NoError(t, os.WriteFile(path, []byte(sampleAsmdef), 0o644))

	rs := &RuleSet{Rules: []Rule{{Assembly: "MyGame.*", Require: []string{"Unity.Collections"}}}}
	p := NewPatcher(rs, nil)
	p.DryRun = true

	changed, err := p.PatchFile(path)
	require.NoError(t, err)
	assert.True(t, changed)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleAsmdef, string(onDisk), "dry run must not write")
}

func TestPatcher_PatchTree(t *testing.T) {
	dir := t.TempDir()

	write := func(rel, content string) {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	write("Assets/Core/MyGame.Core.asmdef", sampleAsmdef)
	write("Assets/UI/MyGame.UI.asmdef", `{"name": "MyGame.UI"}`)
	write("Library/Cached.asmdef", `{"name": "MyGame.Cached"}`)
	write("Assets/broken.asmdef", `{`)

	rs := &RuleSet{Rules: []Rule{{Assembly: "MyGame.*", Require: []string{"Unity.Burst"}}}}
	p := NewPatcher(rs, nil)

	rep, err := p.PatchTree(dir)
	require.NoError(t, err)

	// Core already has Unity.Burst; UI gains it; Library is ignored.
	assert.Equal(t, 1, rep.Patched)
	assert.Equal(t, 1, rep.Unchanged)
	assert.Len(t, rep.Failed, 1)
	assert.Error(t, rep.Err())

	ui, err := Load(filepath.Join(dir, "Assets/UI/MyGame.UI.asmdef"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Unity.Burst"}, ui.References())
}

func TestScan_IgnoresDirectories(t *testing.T) {
	dir := t.TempDir()

	for _, rel := range []string{"Assets/a.asmdef", "Library/b.asmdef", "Assets/readme.md"} {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(`{"name":"x"}`), 0o644))
	}

	paths, err := Scan(dir, DefaultIgnoreDirs)
	require.NoError(t, err)

	require.Len(t, paths, 1)
	assert.True(t, strings.HasSuffix(paths[0], "a.asmdef"))
}
