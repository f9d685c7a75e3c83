// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, "List is Empty", o.EmptyLabel)
	assert.Equal(t, "New key", o.AddPlaceholder)
	assert.True(t, o.AllowAdd)
	assert.True(t, o.AllowRemove)
	assert.True(t, o.AllowReorder)
	assert.False(t, o.IncludeAbstract)
	assert.Equal(t, 100, o.PollInterval)
	assert.Equal(t, Delegates{}, o.Delegates)
}

func TestOpenOptionsTOML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "inventory.toml")
	require.NoError(t, os.WriteFile(fn, []byte(`
empty_label = "No items"
allow_reorder = false
poll_interval = 250

[delegates]
can_add = "CanAddMore"
on_changed = "Changed"
`), 0666))
	o, err := OpenOptions(fn)
	require.NoError(t, err)
	assert.Equal(t, "No items", o.EmptyLabel)
	assert.False(t, o.AllowReorder)
	assert.True(t, o.AllowAdd)
	assert.Equal(t, 250, o.PollInterval)
	assert.Equal(t, "Remove item", o.RemoveTooltip)
	assert.Equal(t, "CanAddMore", o.Delegates.CanAdd)
	assert.Equal(t, "Changed", o.Delegates.OnChanged)
}

func TestOpenOptionsYAML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "inventory.yml")
	require.NoError(t, os.WriteFile(fn, []byte(`
empty_tooltip: Drop items here
allow_remove: false
include_abstract: true
delegates:
  can_remove: CanRemoveAt
`), 0666))
	o, err := OpenOptions(fn)
	require.NoError(t, err)
	assert.Equal(t, "Drop items here", o.EmptyTooltip)
	assert.False(t, o.AllowRemove)
	assert.True(t, o.IncludeAbstract)
	assert.Equal(t, "List is Empty", o.EmptyLabel)
	assert.Equal(t, "CanRemoveAt", o.Delegates.CanRemove)
}

func TestOpenOptionsErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := OpenOptions(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	fn := filepath.Join(dir, "options.json")
	require.NoError(t, os.WriteFile(fn, []byte("{}"), 0666))
	_, err = OpenOptions(fn)
	assert.ErrorContains(t, err, "unsupported")

	fn = filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(fn, []byte("allow_add = maybe"), 0666))
	_, err = OpenOptions(fn)
	assert.Error(t, err)
}

func TestOptionsHomeDir(t *testing.T) {
	homedir.DisableCache = true
	defer func() { homedir.DisableCache = false }()
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	o := DefaultOptions()
	o.EmptyLabel = "Saved"
	require.NoError(t, o.Save("~/saved.yaml"))
	_, err := os.Stat(filepath.Join(dir, "saved.yaml"))
	require.NoError(t, err)
	got, err := OpenOptions("~/saved.yaml")
	require.NoError(t, err)
	assert.Equal(t, o, got)

	require.NoError(t, o.Save(filepath.Join(dir, "saved.toml")))
	got, err = OpenOptions(filepath.Join(dir, "saved.toml"))
	require.NoError(t, err)
	assert.Equal(t, o, got)
}
