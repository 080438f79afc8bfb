// Package loader reads alias and variable definitions from YAML files on
// disk into pkg/sam values. It sits outside the sam package's core engine
// as the config-loading layer.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mattsolo1/sam/pkg/sam"
)

// aliasRecord is the on-disk shape of one alias entry.
type aliasRecord struct {
	Name  string `yaml:"name"`
	Desc  string `yaml:"desc"`
	Alias string `yaml:"alias"`
}

// choiceRecord is the on-disk shape of one static choice.
type choiceRecord struct {
	Value string `yaml:"value"`
	Desc  string `yaml:"desc"`
}

// varRecord is the on-disk shape of one variable entry. Exactly one of
// Choices, FromCommand, or FromInput should be set; the policy it selects
// mirrors PolicyKind.
type varRecord struct {
	Name        string         `yaml:"name"`
	Desc        string         `yaml:"desc"`
	Choices     []choiceRecord `yaml:"choices,omitempty"`
	FromCommand string         `yaml:"from_command,omitempty"`
	FromInput   string         `yaml:"from_input,omitempty"`
	Deps        []string       `yaml:"deps,omitempty"`
}

// RecordError wraps a YAML parse failure with the source file that produced
// it, the way ErrorsAliasRead::AliasSerde names source_file.
type RecordError struct {
	Path string
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("sam/loader: parsing %s: %v", e.Path, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// namespaceFromPath derives a namespace from a file's stem:
// "/etc/sam/git.yml" yields namespace "git".
func namespaceFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ReadAliases parses an alias YAML file at path, stamping every entry with
// the namespace derived from the file's stem.
func ReadAliases(path string) ([]sam.Alias, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	aliases, err := parseAliases(f)
	if err != nil {
		return nil, &RecordError{Path: path, Err: err}
	}

	namespace := namespaceFromPath(path)
	out := make([]sam.Alias, 0, len(aliases))
	for _, rec := range aliases {
		id := sam.NewIdentifierWithNamespace(rec.Name, namespace)
		out = append(out, sam.NewAlias(id, rec.Desc, rec.Alias))
	}
	return out, nil
}

func parseAliases(r io.Reader) ([]aliasRecord, error) {
	var records []aliasRecord
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.Name == "" {
			return nil, fmt.Errorf("alias record missing required field \"name\"")
		}
	}
	return records, nil
}

// ReadVars parses a variable YAML file at path, stamping every entry and
// every same-file dependency reference with the namespace derived from the
// file's stem.
func ReadVars(path string) ([]sam.Variable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := parseVars(f)
	if err != nil {
		return nil, &RecordError{Path: path, Err: err}
	}

	namespace := namespaceFromPath(path)
	out := make([]sam.Variable, 0, len(records))
	for _, rec := range records {
		id := sam.NewIdentifierWithNamespace(rec.Name, namespace)

		deps := make([]sam.Identifier, 0, len(rec.Deps))
		for _, d := range rec.Deps {
			depID, err := sam.ParseIdentifierWithDefaultNamespace(d, namespace)
			if err != nil {
				return nil, &RecordError{Path: path, Err: err}
			}
			deps = append(deps, depID)
		}

		policy, err := recordPolicy(rec)
		if err != nil {
			return nil, &RecordError{Path: path, Err: fmt.Errorf("variable %q: %w", rec.Name, err)}
		}

		out = append(out, sam.NewVariable(id, rec.Desc, policy, deps))
	}
	return out, nil
}

func recordPolicy(rec varRecord) (sam.Policy, error) {
	set := 0
	if len(rec.Choices) > 0 {
		set++
	}
	if rec.FromCommand != "" {
		set++
	}
	if rec.FromInput != "" {
		set++
	}
	if set != 1 {
		return sam.Policy{}, fmt.Errorf("exactly one of choices, from_command, from_input must be set, got %d", set)
	}

	switch {
	case len(rec.Choices) > 0:
		choices := make([]sam.Choice, 0, len(rec.Choices))
		for _, c := range rec.Choices {
			if c.Desc == "" {
				choices = append(choices, sam.NewChoice(c.Value))
			} else {
				choices = append(choices, sam.NewChoiceWithDescription(c.Value, c.Desc))
			}
		}
		return sam.NewStaticChoicesPolicy(choices), nil
	case rec.FromCommand != "":
		return sam.NewDynamicShellPolicy(sam.NewShellCommand(rec.FromCommand)), nil
	default:
		return sam.NewPromptInputPolicy(rec.FromInput), nil
	}
}

func parseVars(r io.Reader) ([]varRecord, error) {
	var records []varRecord
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.Name == "" {
			return nil, fmt.Errorf("variable record missing required field \"name\"")
		}
	}
	return records, nil
}

// ReadChoices parses the dynamic-resolution stdout format; it is a thin
// re-export of sam.ParseChoiceStream kept here so callers only need to
// import pkg/loader for every on-disk/on-stream record format.
func ReadChoices(r io.Reader) ([]sam.Choice, error) {
	return sam.ParseChoiceStream(r)
}

// Dir loads every "*.yml"/"*.yaml" alias and variable file beneath root,
// namespacing each by file stem, then validates the combined sets into a
// ready-to-use AliasCollection and VarsRepository.
func Dir(root string) (*sam.AliasCollection, *sam.VarsRepository, error) {
	var aliases []sam.Alias
	var vars []sam.Variable

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".yml" && ext != ".yaml" {
			return nil
		}

		kind, classifyErr := classify(path)
		if classifyErr != nil {
			return classifyErr
		}
		switch kind {
		case kindAliases:
			a, readErr := ReadAliases(path)
			if readErr != nil {
				return readErr
			}
			aliases = append(aliases, a...)
		case kindVars:
			v, readErr := ReadVars(path)
			if readErr != nil {
				return readErr
			}
			vars = append(vars, v...)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	aliasCollection, err := sam.NewAliasCollection(aliases)
	if err != nil {
		return nil, nil, err
	}
	varsRepository, err := sam.NewVarsRepository(vars)
	if err != nil {
		return nil, nil, err
	}
	return aliasCollection, varsRepository, nil
}

type recordKind int

const (
	kindUnknown recordKind = iota
	kindAliases
	kindVars
)

// classify sniffs a YAML file's top-level shape to decide whether it holds
// aliases or variables, since both live as plain "*.yml" files and a single
// Dir walk discovers both by record shape.
func classify(path string) (recordKind, error) {
	f, err := os.Open(path)
	if err != nil {
		return kindUnknown, err
	}
	defer f.Close()

	var probe []map[string]any
	if err := yaml.NewDecoder(f).Decode(&probe); err != nil {
		return kindUnknown, &RecordError{Path: path, Err: err}
	}
	if len(probe) == 0 {
		return kindUnknown, nil
	}
	if _, ok := probe[0]["alias"]; ok {
		return kindAliases, nil
	}
	if _, ok := probe[0]["choices"]; ok {
		return kindVars, nil
	}
	if _, ok := probe[0]["from_command"]; ok {
		return kindVars, nil
	}
	if _, ok := probe[0]["from_input"]; ok {
		return kindVars, nil
	}
	return kindUnknown, fmt.Errorf("sam/loader: %s: cannot classify as an alias or variable file", path)
}
