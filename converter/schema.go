package converter

// Schema is the ordered list of distinct keys discovered across the whole
// input. Keys are appended on first sight and never reordered; the map gives
// fast membership checks while the slice preserves discovery order.
type Schema struct {
	keys  []string
	index map[string]int
}

// NewSchema creates an empty schema.
func NewSchema() *Schema {
	return &Schema{index: make(map[string]int)}
}

// Add returns the column index for key, appending the key at the end if it has
// not been seen before.
func (s *Schema) Add(key string) int {
	if i, ok := s.index[key]; ok {
		return i
	}
	i := len(s.keys)
	s.keys = append(s.keys, key)
	s.index[key] = i
	return i
}

// Keys returns the columns in discovery order.
func (s *Schema) Keys() []string {
	return s.keys
}

// Len returns the number of columns.
func (s *Schema) Len() int {
	return len(s.keys)
}
