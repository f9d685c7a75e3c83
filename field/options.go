// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/inspector/base/errors"
	"cogentcore.org/inspector/base/reflectx"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Options are the settings of a [Field]. They can be loaded from
// TOML or YAML files with [OpenOptions].
type Options struct {

	// EmptyLabel is shown when the collection has no items.
	EmptyLabel string `toml:"empty_label" yaml:"empty_label" default:"List is Empty"`

	// EmptyTooltip is the tooltip of the empty label.
	EmptyTooltip string `toml:"empty_tooltip" yaml:"empty_tooltip"`

	// AddTooltip is the tooltip of the add affordance.
	AddTooltip string `toml:"add_tooltip" yaml:"add_tooltip" default:"Add item"`

	// RemoveTooltip is the tooltip of the remove affordance of each item.
	RemoveTooltip string `toml:"remove_tooltip" yaml:"remove_tooltip" default:"Remove item"`

	// ReorderTooltip is the tooltip of the reorder handle of each item.
	ReorderTooltip string `toml:"reorder_tooltip" yaml:"reorder_tooltip" default:"Drag to reorder"`

	// AddPlaceholder is the placeholder text of the key entry of keyed collections.
	AddPlaceholder string `toml:"add_placeholder" yaml:"add_placeholder" default:"New key"`

	// AllowAdd enables the add affordance.
	AllowAdd bool `toml:"allow_add" yaml:"allow_add" default:"true"`

	// AllowRemove enables the remove affordances.
	AllowRemove bool `toml:"allow_remove" yaml:"allow_remove" default:"true"`

	// AllowReorder enables reordering by dragging.
	AllowReorder bool `toml:"allow_reorder" yaml:"allow_reorder" default:"true"`

	// IncludeAbstract lists abstract types when choosing the type of a new item.
	IncludeAbstract bool `toml:"include_abstract" yaml:"include_abstract"`

	// PollInterval is the interval in milliseconds at which delegates
	// that cannot notify of changes are re-evaluated.
	PollInterval int `toml:"poll_interval" yaml:"poll_interval" default:"100"`

	// Delegates are the names of host members that customize the field.
	Delegates Delegates `toml:"delegates" yaml:"delegates"`
}

// Delegates are the symbolic names of host members, resolved by
// [Field.Bind], that override permissions and receive notifications.
// Empty names are not resolved.
type Delegates struct {

	// CanAdd is a bool value or func() bool method.
	CanAdd string `toml:"can_add" yaml:"can_add"`

	// CanAddKey is a func(key string) bool.
	CanAddKey string `toml:"can_add_key" yaml:"can_add_key"`

	// CanRemove is a func(index int) bool.
	CanRemove string `toml:"can_remove" yaml:"can_remove"`

	// CanReorder is a func(from, to int) bool.
	CanReorder string `toml:"can_reorder" yaml:"can_reorder"`

	// OnAdd is a func(index int) or func().
	OnAdd string `toml:"on_add" yaml:"on_add"`

	// OnRemove is a func(index int) or func().
	OnRemove string `toml:"on_remove" yaml:"on_remove"`

	// OnReorder is a func(from, to int) or func().
	OnReorder string `toml:"on_reorder" yaml:"on_reorder"`

	// OnChanged is a func().
	OnChanged string `toml:"on_changed" yaml:"on_changed"`

	// EmptyLabel is a string value that replaces [Options.EmptyLabel].
	EmptyLabel string `toml:"empty_label" yaml:"empty_label"`
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	o := Options{}
	errors.Log(reflectx.SetFromDefaultTags(&o))
	return o
}

// OpenOptions reads options from the given TOML or YAML file, chosen by
// extension. Settings missing from the file keep their default values.
// A leading ~ in the path is expanded to the home directory.
func OpenOptions(path string) (Options, error) {
	o := DefaultOptions()
	fp, err := homedir.Expand(path)
	if err != nil {
		return o, err
	}
	b, err := os.ReadFile(fp)
	if err != nil {
		return o, err
	}
	switch ext := strings.ToLower(filepath.Ext(fp)); ext {
	case ".toml":
		err = toml.Unmarshal(b, &o)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &o)
	default:
		return o, fmt.Errorf("field.OpenOptions: unsupported options file type %q", ext)
	}
	if err != nil {
		return o, fmt.Errorf("field.OpenOptions: %s: %w", path, err)
	}
	return o, nil
}

// Save writes the options to the given TOML or YAML file, chosen by extension.
func (o *Options) Save(path string) error {
	fp, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	var b []byte
	switch ext := strings.ToLower(filepath.Ext(fp)); ext {
	case ".toml":
		b, err = toml.Marshal(o)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(o)
	default:
		return fmt.Errorf("field.Options.Save: unsupported options file type %q", ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(fp, b, 0666)
}
