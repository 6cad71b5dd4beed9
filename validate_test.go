package jcr

import (
	"fmt"
	"strings"
	"testing"
)

func benchData(n int) []byte {
	var b strings.Builder
	b.WriteString(`{"name": "bench", "items": [`)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, `{"id": %d, "tag": "t%d"}`, i, i)
	}
	b.WriteString(`]}`)
	return []byte(b.String())
}

func benchRule(n int) Rule {
	item := Object(
		Required("id", IntegerRange(0, 1<<20)),
		Optional("tag", AnyString()),
	)
	items := Array()
	for i := 0; i < n; i++ {
		items.Append(item)
	}
	return Object(
		Required("name", AnyString()),
		Required("items", items),
	)
}

func BenchmarkValidate(b *testing.B) {
	for _, n := range []int{1, 16, 256} {
		r, data := benchRule(n), benchData(n)
		for _, f := range []struct {
			name  string
			check func(Rule, []byte) (bool, error)
		}{
			{"JSON", ValidateJSON},
			{"YAML", ValidateYAML},
		} {
			b.Run(fmt.Sprintf("%s/%d", f.name, n), func(b *testing.B) {
				b.SetBytes(int64(len(data)))
				b.ReportAllocs()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					ok, err := f.check(r, data)
					if err != nil {
						b.Fatal(err)
					}
					if !ok {
						b.Fatal("invalid")
					}
				}
			})
		}
	}
}
