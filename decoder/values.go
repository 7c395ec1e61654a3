package decoder

// Values holds decoded request parameters. Keys keep the order of their first
// occurrence and every value of a repeated key is kept.
type Values struct {
	keys   []string
	values map[string][]string
}

func NewValues() *Values {
	return &Values{values: map[string][]string{}}
}

func (v *Values) add(key, value string) {
	if _, ok := v.values[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.values[key] = append(v.values[key], value)
}

func (v *Values) Keys() []string {
	keys := make([]string, len(v.keys))
	copy(keys, v.keys)

	return keys
}

func (v *Values) Get(key string) []string {
	values := v.values[key]
	if values == nil {
		return nil
	}

	result := make([]string, len(values))
	copy(result, values)

	return result
}

// First returns the first value of key, or "" when the key is absent.
func (v *Values) First(key string) string {
	if values := v.values[key]; len(values) > 0 {
		return values[0]
	}

	return ""
}

func (v *Values) Has(key string) bool {
	_, ok := v.values[key]

	return ok
}

func (v *Values) Len() int {
	return len(v.keys)
}
