package arquery

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// stringSet keeps insertion order so that documents are deterministic.
// The zero value is ready to use.
type stringSet struct {
	m *orderedmap.OrderedMap[string, struct{}]
}

func (s *stringSet) add(vals ...string) {
	if s.m == nil {
		s.m = orderedmap.New[string, struct{}]()
	}
	for _, v := range vals {
		s.m.Set(v, struct{}{})
	}
}

func (s *stringSet) len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

func (s *stringSet) list() []string {
	keys := make([]string, 0, s.len())
	if s.m == nil {
		return keys
	}
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// tagSet maps tag names, in first-use order, to their accepted values.
type tagSet struct {
	m *orderedmap.OrderedMap[string, *stringSet]
}

func (t *tagSet) add(name string, vals ...string) {
	if t.m == nil {
		t.m = orderedmap.New[string, *stringSet]()
	}
	set, ok := t.m.Get(name)
	if !ok {
		set = &stringSet{}
		t.m.Set(name, set)
	}
	set.add(vals...)
}

func (t *tagSet) len() int {
	if t.m == nil {
		return 0
	}
	return t.m.Len()
}

func (t *tagSet) each(fn func(name string, values []string)) {
	if t.m == nil {
		return
	}
	for pair := t.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value.list())
	}
}
