package libdiff

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     []Line
	}{
		{
			name: "equal",
			from: "a\nb\n",
			to:   "a\nb\n",
			want: []Line{{Equal, "a"}, {Equal, "b"}},
		},
		{
			name: "insert",
			from: "a\nc\n",
			to:   "a\nb\nc\n",
			want: []Line{{Equal, "a"}, {Insert, "b"}, {Equal, "c"}},
		},
		{
			name: "delete",
			from: "a\nb\nc\n",
			to:   "a\nc\n",
			want: []Line{{Equal, "a"}, {Delete, "b"}, {Equal, "c"}},
		},
		{
			name: "from empty",
			from: "",
			to:   "x\n",
			want: []Line{{Insert, "x"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.from, tt.to)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Lines mismatch (-want +got):\n%s", diff)
			}
			if Changed(got) != (tt.from != tt.to) {
				t.Errorf("Changed = %t", Changed(got))
			}
		})
	}
}

func TestUnified(t *testing.T) {
	from := "1\n2\n3\n4\n5\n6\n7\n8\n9\n"
	to := "1\n2\n3\n4\nfive\n6\n7\n8\n9\n"
	var buf bytes.Buffer
	if err := Unified(&buf, "a/f.go", "b/f.go", Lines(from, to), 1, nil); err != nil {
		t.Fatal(err)
	}
	want := `--- a/f.go
+++ b/f.go
@@ -4,3 +4,3 @@
 4
-5
+five
 6
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Unified mismatch (-want +got):\n%s", diff)
	}
}

func TestUnifiedHunks(t *testing.T) {
	from := "a\nb\nc\nd\ne\nf\ng\n"
	to := "A\nb\nc\nd\ne\nf\ng\nh\n"
	var buf bytes.Buffer
	if err := Unified(&buf, "x", "y", Lines(from, to), 1, nil); err != nil {
		t.Fatal(err)
	}
	want := `--- x
+++ y
@@ -1,2 +1,2 @@
-a
+A
 b
@@ -7 +7,2 @@
 g
+h
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Unified mismatch (-want +got):\n%s", diff)
	}
}

func TestUnifiedNoChange(t *testing.T) {
	var buf bytes.Buffer
	if err := Unified(&buf, "x", "y", Lines("a\n", "a\n"), 3, NewColors()); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %q for identical input", buf.String())
	}
}
