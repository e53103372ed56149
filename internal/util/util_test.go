package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercases", input: "AshaRao", expected: "asharao"},
		{name: "spaces to dashes", input: "Asha  Rao", expected: "asha-rao"},
		{name: "strips diacritics", input: "Ádítí Nāyak", expected: "aditi-nayak"},
		{name: "drops punctuation", input: "asha.rao!", expected: "asharao"},
		{name: "keeps underscore", input: "asha_rao", expected: "asha_rao"},
		{name: "collapses dashes", input: "asha - - rao", expected: "asha-rao"},
		{name: "trims edges", input: "  -asha-  ", expected: "asha"},
		{name: "empty", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Slugify(tt.input); got != tt.expected {
				t.Fatalf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	for _, in := range []string{"Ádítí Nāyak", "a--b", "x_y z"} {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once))
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "creme brulee", Fold("Crème Brûlée"))
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 10))
	assert.Equal(t, 1, PageCount(1, 10))
	assert.Equal(t, 1, PageCount(10, 10))
	assert.Equal(t, 2, PageCount(11, 10))
	assert.Equal(t, 0, PageCount(5, 0))
}

func TestPaginate_ConcatenationReproducesList(t *testing.T) {
	for total := 0; total <= 25; total++ {
		for _, size := range []int{1, 3, 10} {
			items := make([]int, total)
			for i := range items {
				items[i] = i
			}

			pages := PageCount(total, size)
			var joined []int
			for p := 1; p <= pages; p++ {
				page := Paginate(items, p, size)
				assert.LessOrEqual(t, len(page.Items), size)
				assert.Equal(t, pages, page.TotalPages)
				joined = append(joined, page.Items...)
			}

			if total == 0 {
				assert.Empty(t, joined)
			} else {
				assert.Equal(t, items, joined, "total=%d size=%d", total, size)
			}
		}
	}
}

func TestPaginate_OutOfRange(t *testing.T) {
	items := []string{"a", "b", "c"}

	assert.Empty(t, Paginate(items, 5, 2).Items)
	assert.Equal(t, []string{"a", "b"}, Paginate(items, 0, 2).Items)
	assert.Equal(t, 3, Paginate(items, 5, 2).TotalItems)

	huge := Paginate([]int{1, 2, 3}, 1<<62, 12)
	assert.Empty(t, huge.Items)
	assert.Equal(t, 1<<62, huge.Page)
	assert.Equal(t, 1, huge.TotalPages)
}
