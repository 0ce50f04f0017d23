package layout

// Dataset is one full snapshot of chart input. It is implemented by
// Categories, Records and Points only.
type Dataset interface {
	// Len returns the number of top-level records.
	Len() int
	dataset()
}

// CategoryDatum is a named value, the input of Bar and Pie charts.
type CategoryDatum struct {
	Name  string
	Value float64
}

// Field is a named value within a SeriesRecord.
type Field struct {
	Name  string
	Value float64
}

// SeriesRecord is a category with one value per series, the input of
// StackedBar and Line charts. Field order defines series order.
type SeriesRecord struct {
	Name   string
	Fields []Field
}

// Get returns the value of the named field.
func (r SeriesRecord) Get(name string) (float64, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return 0, false
}

// Point is a scatter plot coordinate.
type Point struct {
	X, Y float64
}

// PointSeries is a named series of points, the input of Scatter charts.
type PointSeries struct {
	Name   string
	Points []Point
}

// Categories is a Bar or Pie dataset.
type Categories []CategoryDatum

// Records is a StackedBar or Line dataset.
type Records []SeriesRecord

// Points is a Scatter dataset.
type Points []PointSeries

func (d Categories) Len() int { return len(d) }
func (d Records) Len() int    { return len(d) }
func (d Points) Len() int     { return len(d) }

func (Categories) dataset() {}
func (Records) dataset()    {}
func (Points) dataset()     {}

// fieldNames returns the field names of the first record, which define
// series order, and one InconsistentSeriesError per later record whose
// field set differs.
func fieldNames(recs Records) ([]string, []error) {
	if len(recs) == 0 {
		return nil, nil
	}
	var names []string
	seen := make(map[string]bool)
	for _, f := range recs[0].Fields {
		if !seen[f.Name] {
			seen[f.Name] = true
			names = append(names, f.Name)
		}
	}

	var warnings []error
	for _, r := range recs[1:] {
		have := make(map[string]bool, len(r.Fields))
		var extra []string
		for _, f := range r.Fields {
			if !seen[f.Name] && !have[f.Name] {
				extra = append(extra, f.Name)
			}
			have[f.Name] = true
		}
		var missing []string
		for _, n := range names {
			if !have[n] {
				missing = append(missing, n)
			}
		}
		if len(missing) > 0 || len(extra) > 0 {
			warnings = append(warnings, &InconsistentSeriesError{Record: r.Name, Missing: missing, Extra: extra})
		}
	}
	return names, warnings
}

// matrix returns values[record][field] in the order of names, reading
// missing fields as 0.
func matrix(recs Records, names []string) [][]float64 {
	out := make([][]float64, len(recs))
	for i, r := range recs {
		row := make([]float64, len(names))
		for j, n := range names {
			row[j], _ = r.Get(n)
		}
		out[i] = row
	}
	return out
}
