package article

import (
	"reflect"
	"testing"
)

func TestRecord_SecondaryCategories(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want []string
	}{
		{
			name: "primary listed first",
			rec:  Record{PrimaryCategory: "math.AG", Categories: []string{"math.AG", "math.NT", "cs.AI"}},
			want: []string{"math.NT", "cs.AI"},
		},
		{
			name: "primary not in categories",
			rec:  Record{PrimaryCategory: "physics.gen-ph", Categories: []string{"math.DG"}},
			want: []string{"math.DG"},
		},
		{
			name: "duplicates collapse",
			rec:  Record{PrimaryCategory: "math.AG", Categories: []string{"math.CO", "math.AG", "math.CO"}},
			want: []string{"math.CO"},
		},
		{
			name: "only primary",
			rec:  Record{PrimaryCategory: "math.AG", Categories: []string{"math.AG"}},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rec.SecondaryCategories()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SecondaryCategories() = %v, want %v", got, tt.want)
			}
		})
	}
}
