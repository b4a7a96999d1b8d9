// Package harness provides a YAML-script golden-output harness for the dbg
// printing helpers.
package harness

// Step is a single printer invocation within a script.
type Step struct {
	// Op names the operation, e.g. "eqln", "container", "mapping".
	Op string `yaml:"op"`

	// Args are the positional values passed to the operation. Rendered
	// operations treat each argument's text form as the rendered output.
	Args []any `yaml:"args,omitempty"`

	// Sep overrides the separator for split/splitln.
	Sep string `yaml:"sep,omitempty"`

	// Name is the label for labelled operations (var, container, mapping...).
	Name string `yaml:"name,omitempty"`

	// First marks the element as the first of a listing (element op).
	First bool `yaml:"first,omitempty"`

	// From and To bound the half-open index range for the slice op.
	From int `yaml:"from,omitempty"`
	To   int `yaml:"to,omitempty"`
}

// Script is one named sequence of steps with its expected output.
type Script struct {
	// Name identifies the script in test output.
	Name string `yaml:"name"`

	// Steps are executed in order against a single printer.
	Steps []Step `yaml:"steps"`

	// Want is the exact output the enabled printer must produce. A disabled
	// printer must produce nothing for the same steps.
	Want string `yaml:"want"`
}

// ScriptFile is the top-level layout of a testdata YAML file.
type ScriptFile struct {
	Scripts []Script `yaml:"scripts"`
}
