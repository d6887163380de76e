package report

import (
	"reflect"
	"testing"
)

func TestBuildHierarchyLines(t *testing.T) {
	files := []string{
		"main.go",
		"pkg/z/last.go",
		"pkg/a.go",
		"cmd/root.go",
		"pkg/b/util.go",
		"pkg/b/deep/er/x.go",
	}

	got := BuildHierarchy("project", files).Lines()
	want := []string{
		"project (root)",
		"    main.go",
		"    cmd/",
		"        root.go",
		"    pkg/",
		"        a.go",
		"        b/",
		"            util.go",
		"            deep/",
		"                er/",
		"                    x.go",
		"        z/",
		"            last.go",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected lines:\n got: %q\nwant: %q", got, want)
	}
}

func TestBuildHierarchyKeepsCollectionOrderForFiles(t *testing.T) {
	got := BuildHierarchy("r", []string{"src/zeta.py", "src/alpha.py"}).Lines()
	want := []string{"r (root)", "    src/", "        zeta.py", "        alpha.py"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBuildHierarchySegmentAware(t *testing.T) {
	root := BuildHierarchy("r", []string{"foobar.py", "foo/x.py"})
	if len(root.Children) != 1 || root.Children[0].Name != "foo" {
		t.Fatalf("expected a single foo child, got %+v", root.Children)
	}
	if !reflect.DeepEqual(root.Files, []string{"foobar.py"}) {
		t.Fatalf("foobar.py must stay at the root, got %v", root.Files)
	}
	if !reflect.DeepEqual(root.Children[0].Files, []string{"x.py"}) {
		t.Fatalf("foo/ must hold only x.py, got %v", root.Children[0].Files)
	}
}

func TestBuildHierarchyEmpty(t *testing.T) {
	tree := BuildHierarchy("r", nil)
	if tree != nil {
		t.Fatalf("expected nil tree, got %+v", tree)
	}
	if lines := tree.Lines(); len(lines) != 0 {
		t.Fatalf("expected no lines, got %q", lines)
	}
}
