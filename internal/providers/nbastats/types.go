package nbastats

// The stats feed returns tabular result sets: a headers array naming the
// columns and a rowSet of positional values. Rows are re-keyed by header
// before mapping so the rest of the package can look fields up by name.

type statsResponse struct {
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// row is one rowSet entry keyed by its header name.
type row map[string]any

func (s statsResponse) set(name string) (resultSet, bool) {
	for _, rs := range s.ResultSets {
		if rs.Name == name {
			return rs, true
		}
	}
	return resultSet{}, false
}

func (rs resultSet) rows() []row {
	result := make([]row, 0, len(rs.RowSet))
	for _, raw := range rs.RowSet {
		r := make(row, len(rs.Headers))
		for i, header := range rs.Headers {
			if i < len(raw) {
				r[header] = raw[i]
			}
		}
		result = append(result, r)
	}
	return result
}

// has reports whether the column holds a non-null value.
func (r row) has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

func (r row) str(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// num returns the column as a float64; JSON numbers decode to float64.
func (r row) num(key string) float64 {
	if v, ok := r[key].(float64); ok {
		return v
	}
	return 0
}

func (r row) intval(key string) int {
	return int(r.num(key))
}
