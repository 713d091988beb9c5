// Package asmdef patches assembly definition (.asmdef) files. The edits are
// surgical: references are added or removed with sjson so untouched fields
// keep their exact textual form, and reads go through gjson without
// round-tripping the document.
//
// Patching is rule-driven: a RuleSet (loaded from YAML) maps assembly name
// patterns to references that must or must not be present, and a Patcher
// applies the matching rules to a single file or a whole directory tree.
// The asmdef/watch subpackage turns file-system events into patch runs.
package asmdef
