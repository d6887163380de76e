package report

import (
	"path"
	"sort"
	"strings"
)

const indentUnit = "    "

// Node is a directory in the pruned hierarchy.
type Node struct {
	Name     string   // Directory name; the root carries the root directory's base name.
	Files    []string // Base names of selected files directly inside, in collection order.
	Children []*Node  // Subdirectories containing selected files, sorted by name.
}

// BuildHierarchy derives the pruned directory tree from slash-separated
// relative file paths. Only directories that contain at least one of the
// files, by path segment, are created. It returns nil when files is empty.
func BuildHierarchy(rootName string, files []string) *Node {
	if len(files) == 0 {
		return nil
	}

	root := &Node{Name: rootName}
	index := map[string]*Node{"": root}

	for _, file := range files {
		dir, base := path.Split(file)
		node := ensureDirectory(index, strings.TrimSuffix(dir, "/"))
		node.Files = append(node.Files, base)
	}

	sortChildren(root)
	return root
}

// ensureDirectory returns the node for dir, creating it and any missing ancestors.
func ensureDirectory(index map[string]*Node, dir string) *Node {
	if node, ok := index[dir]; ok {
		return node
	}
	parentDir, name := path.Split(dir)
	parent := ensureDirectory(index, strings.TrimSuffix(parentDir, "/"))
	node := &Node{Name: name}
	parent.Children = append(parent.Children, node)
	index[dir] = node
	return node
}

func sortChildren(node *Node) {
	sort.Slice(node.Children, func(i, j int) bool {
		return node.Children[i].Name < node.Children[j].Name
	})
	for _, child := range node.Children {
		sortChildren(child)
	}
}

// Lines renders the hierarchy as indented text lines. The root line reads
// "<name> (root)", other directories end in '/', and every level indents by
// four spaces. A nil node renders no lines.
func (n *Node) Lines() []string {
	if n == nil {
		return nil
	}
	lines := []string{n.Name + " (root)"}
	return n.appendContents(lines, 0)
}

func (n *Node) appendContents(lines []string, depth int) []string {
	fileIndent := strings.Repeat(indentUnit, depth+1)
	for _, file := range n.Files {
		lines = append(lines, fileIndent+file)
	}
	for _, child := range n.Children {
		lines = append(lines, fileIndent+child.Name+"/")
		lines = child.appendContents(lines, depth+1)
	}
	return lines
}
