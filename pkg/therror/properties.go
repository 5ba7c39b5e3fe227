package therror

import "sort"

// field is a single property key/value pair.
type field struct {
	key string
	val any
}

// fields is an insertion-ordered property list with last-write-wins updates:
// re-setting an existing key replaces its value in place, preserving the
// key's original position. Property counts are small, so lookups scan
// linearly instead of maintaining a side index.
type fields []field

func (f fields) get(key string) (any, bool) {
	for _, p := range f {
		if p.key == key {
			return p.val, true
		}
	}
	return nil, false
}

func (f *fields) set(key string, val any) {
	for i, p := range *f {
		if p.key == key {
			(*f)[i].val = val
			return
		}
	}
	*f = append(*f, field{key: key, val: val})
}

func (f *fields) delete(key string) {
	for i, p := range *f {
		if p.key == key {
			*f = append((*f)[:i:i], (*f)[i+1:]...)
			return
		}
	}
}

// mergeMap sets every entry of m. Go maps carry no declared order, so the
// keys of a single map are added in lexical order to keep merges
// deterministic.
func (f *fields) mergeMap(m map[string]any) {
	if len(m) == 0 {
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		f.set(k, m[k])
	}
}

func (f fields) keys() []string {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, len(f))
	for i, p := range f {
		keys[i] = p.key
	}
	return keys
}

func (f fields) toMap() map[string]any {
	m := make(map[string]any, len(f))
	for _, p := range f {
		m[p.key] = p.val
	}
	return m
}
