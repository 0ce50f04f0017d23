package main

import "github.com/gogpu/ggchart/layout"

func sample(k layout.Kind) layout.Dataset {
	switch k {
	case layout.StackedBar:
		return layout.Records{
			record("aaa", 50, 20, 30),
			record("bbb", 40, 20, 30),
			record("ccc", 30, 30, 30),
			record("ddd", 60, 20, 10),
			record("eee", 20, 60, 40),
		}
	case layout.Line:
		return layout.Records{
			record("aaa", 50, 20, 30),
			record("bbb", 40, 20, 30),
			record("ccc", 10, 40, 30),
			record("ddd", 60, 20, 10),
			record("eee", 20, 60, 40),
			record("fff", 45, 25, 10),
		}
	case layout.Scatter:
		return layout.Points{
			{Name: "aaaa", Points: []layout.Point{
				{X: 15, Y: 20}, {X: 18, Y: 7}, {X: 22, Y: 26}, {X: 8, Y: 17},
				{X: 12, Y: 8}, {X: 24, Y: 14}, {X: 4, Y: 3}, {X: 28, Y: 25},
			}},
			{Name: "bbbb", Points: []layout.Point{
				{X: 1, Y: 28}, {X: 10, Y: 18}, {X: 6, Y: 20}, {X: 26, Y: 6},
				{X: 14, Y: 15}, {X: 21, Y: 12}, {X: 9, Y: 11}, {X: 17, Y: 16},
			}},
		}
	default:
		return layout.Categories{
			{Name: "aaa", Value: 5},
			{Name: "bbb", Value: 4},
			{Name: "ccc", Value: 3},
			{Name: "ddd", Value: 2},
			{Name: "eee", Value: 1},
		}
	}
}

func record(name string, values ...float64) layout.SeriesRecord {
	r := layout.SeriesRecord{Name: name}
	for i, v := range values {
		r.Fields = append(r.Fields, layout.Field{Name: fieldNames[i], Value: v})
	}
	return r
}

var fieldNames = []string{"property1", "property2", "property3"}
