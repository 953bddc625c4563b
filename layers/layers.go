// seehuhn.de/go/svgdxf - convert SVG outlines to DXF line drawings
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package layers keeps track of the DXF layers used by a drawing.
package layers

import (
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultName is the layer used for paths outside any named group.
const DefaultName = "0"

// DefaultDrillSuffix marks layers whose paths are emitted as drill points.
const DefaultDrillSuffix = "drill"

// Registry is an ordered set of layer names.  Names are stored in Unicode
// normalization form C, so that visually identical names map to the same
// layer.  The zero value is an empty registry, ready to use.
type Registry struct {
	names []string
	index map[string]int
}

// New returns a registry containing the given names, in order.
func New(names ...string) *Registry {
	r := &Registry{}
	for _, name := range names {
		r.Register(name)
	}
	return r
}

// Normalize returns the canonical form of a layer name.  The empty string
// maps to [DefaultName].
func Normalize(name string) string {
	if name == "" {
		return DefaultName
	}
	return norm.NFC.String(name)
}

// Register adds a name to the registry, if not already present, and
// returns its canonical form.
func (r *Registry) Register(name string) string {
	name = Normalize(name)
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if _, ok := r.index[name]; !ok {
		r.index[name] = len(r.names)
		r.names = append(r.names, name)
	}
	return name
}

// Contains reports whether the name has been registered.
func (r *Registry) Contains(name string) bool {
	_, ok := r.index[Normalize(name)]
	return ok
}

// Index returns the position of name in registration order, or -1.
func (r *Registry) Index(name string) int {
	if i, ok := r.index[Normalize(name)]; ok {
		return i
	}
	return -1
}

// Count returns the number of distinct layers.
func (r *Registry) Count() int {
	return len(r.names)
}

// Names returns the layer names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Sorted returns the layer names in lexicographic order.
func (r *Registry) Sorted() []string {
	names := slices.Clone(r.names)
	slices.Sort(names)
	return names
}

// HasSuffixFold reports whether name ends in suffix, ignoring case.  An
// empty suffix matches nothing.
func HasSuffixFold(name, suffix string) bool {
	if suffix == "" || len(name) < len(suffix) {
		return false
	}
	return strings.EqualFold(name[len(name)-len(suffix):], suffix)
}
