package models

import "testing"

func TestTableWidth(t *testing.T) {
	tests := []struct {
		name  string
		table Table
		want  int
	}{
		{"empty", Table{}, 0},
		{"header only", Table{Columns: []string{"a", "b"}}, 2},
		{"short rows", Table{Columns: []string{"a", "b", "c"}, Rows: [][]interface{}{{1}}}, 3},
		{"wide row", Table{Columns: []string{"a"}, Rows: [][]interface{}{{1, 2, 3, 4}}}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.table.Width(); got != tt.want {
				t.Errorf("Width() = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestTableColumn(t *testing.T) {
	table := Table{Columns: []string{"a", "b"}, Rows: [][]interface{}{{1, 2}, {3}}}

	values, ok := table.Column("b")
	if !ok {
		t.Fatal("Expected column b to exist")
	}
	if len(values) != 2 || values[0] != 2 || values[1] != nil {
		t.Errorf("Expected [2 <nil>], got %v", values)
	}
	if _, ok := table.Column("z"); ok {
		t.Error("Expected column z to be missing")
	}
	if got := table.IndexLabel(1); got != "1" {
		t.Errorf("IndexLabel(1) = %q, expected \"1\"", got)
	}
}
