// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package set

import (
	"cmp"
	"sort"
)

// SortedMap is a mapping whose bindings are kept in ascending key order,
// giving deterministic iteration without a separate sort pass.
type SortedMap[K cmp.Ordered, V any] struct {
	keys   []K
	values []V
}

// NewSortedMap returns an empty sorted map.
func NewSortedMap[K cmp.Ordered, V any]() *SortedMap[K, V] {
	return &SortedMap[K, V]{}
}

// Len returns the number of bindings in this map.
func (p *SortedMap[K, V]) Len() int {
	return len(p.keys)
}

// Has returns true if a given key is bound in this map.
func (p *SortedMap[K, V]) Has(key K) bool {
	i := p.search(key)
	//
	return i < len(p.keys) && p.keys[i] == key
}

// Get returns the value bound to a given key, or the zero value if the key
// is absent.
func (p *SortedMap[K, V]) Get(key K) (V, bool) {
	i := p.search(key)
	//
	if i < len(p.keys) && p.keys[i] == key {
		return p.values[i], true
	}
	// Key absent
	var empty V
	//
	return empty, false
}

// Put binds a value to a given key, replacing any existing binding for that
// key.
func (p *SortedMap[K, V]) Put(key K, value V) {
	i := p.search(key)
	// Check whether binding existed or not.
	if i < len(p.keys) && p.keys[i] == key {
		p.values[i] = value
		return
	}
	// No, binding was not found
	nkeys := make([]K, len(p.keys)+1)
	nvalues := make([]V, len(p.values)+1)
	copy(nkeys, p.keys[0:i])
	copy(nvalues, p.values[0:i])
	nkeys[i] = key
	nvalues[i] = value
	copy(nkeys[i+1:], p.keys[i:])
	copy(nvalues[i+1:], p.values[i:])
	p.keys = nkeys
	p.values = nvalues
}

// Keys returns the keys of this map in ascending order.
func (p *SortedMap[K, V]) Keys() []K {
	return p.keys
}

// Find index where key either does occur, or should occur.
func (p *SortedMap[K, V]) search(key K) int {
	return sort.Search(len(p.keys), func(i int) bool {
		return key <= p.keys[i]
	})
}
