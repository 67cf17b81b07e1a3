// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

var registry = make(map[string]func() Scale)

// Register makes a scale constructor available to New under name.
// Registering a duplicate name panics.
func Register(name string, newScale func() Scale) {
	if _, ok := registry[name]; ok {
		panic("scale: duplicate registration of " + name)
	}
	registry[name] = newScale
}

// New returns a new scale of the named type, or nil if name is not
// registered.
func New(name string) Scale {
	newScale := registry[name]
	if newScale == nil {
		return nil
	}
	return newScale()
}

func init() {
	Register("interval", func() Scale { return NewInterval() })
	Register("symlog", func() Scale { return NewSymlog() })
}
