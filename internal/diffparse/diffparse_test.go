package diffparse

import "testing"

const sampleDiff = `diff --git a/config.py b/config.py
index 1111111..2222222 100644
--- a/config.py
+++ b/config.py
@@ -10,3 +10,5 @@ def f():
 context line
-removed line
+added line one
+added line two
 trailing context
diff --git a/other.py b/other.py
index 3333333..4444444 100644
--- a/other.py
+++ b/other.py
@@ -1,1 +1,2 @@
-old
+new one
+new two
`

func TestParse_EmitsAddedLinesPerFile(t *testing.T) {
	got := Parse(sampleDiff, nil)
	if len(got) != 4 {
		t.Fatalf("got %d added lines, want 4: %+v", len(got), got)
	}

	if got[0].Path != "config.py" || got[0].LineNumber != 11 || got[0].Text != "added line one" {
		t.Errorf("got[0] = %+v", got[0])
	}
	if got[1].Path != "config.py" || got[1].LineNumber != 12 || got[1].Text != "added line two" {
		t.Errorf("got[1] = %+v", got[1])
	}
	if got[2].Path != "other.py" || got[2].LineNumber != 1 {
		t.Errorf("got[2] = %+v", got[2])
	}
	if got[3].Path != "other.py" || got[3].LineNumber != 2 {
		t.Errorf("got[3] = %+v", got[3])
	}
}

func TestParse_LineNumbersAreMonotonicPerPath(t *testing.T) {
	got := Parse(sampleDiff, nil)

	last := map[string]int{}
	for _, a := range got {
		if prev, ok := last[a.Path]; ok && a.LineNumber < prev {
			t.Fatalf("line numbers regressed for %s: %d after %d", a.Path, a.LineNumber, prev)
		}
		last[a.Path] = a.LineNumber
	}
}

func TestParse_MalformedHunkHeaderResetsToZero(t *testing.T) {
	diff := `diff --git a/x.py b/x.py
--- a/x.py
+++ b/x.py
@@ garbage @@
+line after bad header
`
	got := Parse(diff, nil)
	if len(got) != 1 {
		t.Fatalf("got %d lines, want 1", len(got))
	}
	if got[0].LineNumber != 0 {
		t.Errorf("got LineNumber=%d, want 0 after malformed header", got[0].LineNumber)
	}
}

func TestParse_IgnoresContextAndRemovedLines(t *testing.T) {
	got := Parse(sampleDiff, nil)
	for _, a := range got {
		if a.Text == "removed line" || a.Text == "context line" || a.Text == "trailing context" {
			t.Fatalf("unexpected non-added line leaked through: %+v", a)
		}
	}
}

func TestParse_EmptyDiffYieldsNoLines(t *testing.T) {
	got := Parse("", nil)
	if len(got) != 0 {
		t.Fatalf("got %d lines, want 0", len(got))
	}
}
