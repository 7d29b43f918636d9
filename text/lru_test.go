// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"image"
	"strconv"
	"testing"
)

func TestMeasureLRU(t *testing.T) {
	c := new(measureCache)
	put := func(i int) {
		c.Put(measureKey{str: strconv.Itoa(i)}, image.Pt(i, i))
	}
	get := func(i int) bool {
		sz, ok := c.Get(measureKey{str: strconv.Itoa(i)})
		if ok && sz != image.Pt(i, i) {
			t.Fatalf("key %d has size %v", i, sz)
		}
		return ok
	}
	testLRU(t, put, get)
}

func testLRU(t *testing.T, put func(i int), get func(i int) bool) {
	for i := 0; i < maxSize; i++ {
		put(i)
	}
	for i := 0; i < maxSize; i++ {
		if !get(i) {
			t.Fatalf("key %d was evicted", i)
		}
	}
	put(maxSize)
	for i := 1; i < maxSize+1; i++ {
		if !get(i) {
			t.Fatalf("key %d was evicted", i)
		}
	}
	if i := 0; get(i) {
		t.Fatalf("key %d was not evicted", i)
	}
}
