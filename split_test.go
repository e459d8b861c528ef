package bookindex

import (
	"reflect"
	"testing"
)

func TestCutLast(t *testing.T) {
	cases := []struct {
		in            string
		before, after string
		found         bool
	}{
		{"word: 1, 2", "word", " 1, 2", true},
		{`C:\path: 1`, `C:\path`, " 1", true},
		{"a:b:c", "a:b", "c", true},
		{"no colon", "no colon", "", false},
		{":", "", "", true},
	}

	for _, tc := range cases {
		before, after, found := cutLast(tc.in, ":")
		if before != tc.before || after != tc.after || found != tc.found {
			t.Errorf("cutLast(%q) -> %q, %q, %v, expected %q, %q, %v", tc.in, before, after, found, tc.before, tc.after, tc.found)
		}
	}
}

func TestSplitPages(t *testing.T) {
	cases := []struct {
		in  string
		out []string
	}{
		{"3, 5, 7", []string{"3", "5", "7"}},
		{"xii", []string{"xii"}},
		{"1,2,", []string{"1", "2", ""}},
		{"", []string{""}},
	}

	for _, tc := range cases {
		res := splitPages(tc.in)
		if !reflect.DeepEqual(res, tc.out) {
			t.Errorf("splitPages(%q) -> %#v, expected %#v", tc.in, res, tc.out)
		}
	}
}

func TestSplitBookChunk(t *testing.T) {
	cases := []struct {
		in          string
		book, pages string
		ok          bool
	}{
		{"1(3, 5)", "1", "3, 5", true},
		{"Vol 2 (7)", "Vol 2", "7", true},
		{"2(7))", "2", "7)", true},
		{"1(3, 5", "", "", false},
		{"3, 5)", "", "", false},
		{"7", "", "", false},
	}

	for _, tc := range cases {
		book, pages, ok := splitBookChunk(tc.in)
		if book != tc.book || pages != tc.pages || ok != tc.ok {
			t.Errorf("splitBookChunk(%q) -> %q, %q, %v, expected %q, %q, %v", tc.in, book, pages, ok, tc.book, tc.pages, tc.ok)
		}
	}
}
