// Package questionnaire implements the adaptive mood questionnaire: a
// static question graph whose answers carry partial mood scores, and the
// scorer that folds a sequence of answers into a mood distribution.
package questionnaire

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/justestif/go-mood-recommender/internal/mood"
)

//go:embed questions.yaml
var defaultQuestions []byte

// Sentinel errors.
var (
	// ErrEmptyTree is returned when a tree has no questions.
	ErrEmptyTree = errors.New("question tree is empty")

	// ErrInvalidTree is returned when the tree definition fails validation.
	ErrInvalidTree = errors.New("invalid question tree")

	// ErrPathEnded is returned by Walk when a path continues past a terminal answer.
	ErrPathEnded = errors.New("path continues past a terminal answer")
)

// Node is a single question.
type Node struct {
	ID      string   `yaml:"id" json:"id"`
	Text    string   `yaml:"text" json:"text"`
	Options []Option `yaml:"options" json:"options"`
}

// Option is one answer to a question. Next is nil on a terminal answer.
type Option struct {
	Text       string            `yaml:"text" json:"text"`
	MoodScores mood.Distribution `yaml:"mood_scores" json:"mood_scores"`
	Next       *string           `yaml:"next_question_id" json:"next_question_id"`
}

// Terminal reports whether choosing this option ends the questionnaire.
func (o Option) Terminal() bool {
	return o.Next == nil
}

// document is the on-disk YAML layout.
type document struct {
	Root      string `yaml:"root"`
	Questions []Node `yaml:"questions"`
}

// Tree is an immutable, validated question graph. It is safe for
// concurrent use.
type Tree struct {
	root  string
	nodes map[string]Node
}

// Default returns the built-in question tree.
func Default() (*Tree, error) {
	return Load(defaultQuestions)
}

// LoadFile reads a YAML question tree from path.
func LoadFile(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading question file: %w", err)
	}
	return Load(data)
}

// Load parses and validates a YAML question tree.
func Load(data []byte) (*Tree, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing question tree: %w", err)
	}
	return NewTree(doc.Root, doc.Questions)
}

// NewTree builds a Tree from its root key and nodes and checks referential
// integrity: the root exists, keys are unique, every option references an
// existing node or is terminal, and every score is a known non-negative
// mood. Cycles are not rejected.
func NewTree(root string, nodes []Node) (*Tree, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyTree
	}

	t := &Tree{
		root:  root,
		nodes: make(map[string]Node, len(nodes)),
	}
	for _, n := range nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("%w: question without id", ErrInvalidTree)
		}
		if _, dup := t.nodes[n.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate question %q", ErrInvalidTree, n.ID)
		}
		t.nodes[n.ID] = n
	}

	if _, ok := t.nodes[root]; !ok {
		return nil, fmt.Errorf("%w: root question %q not found", ErrInvalidTree, root)
	}

	for _, n := range nodes {
		if len(n.Options) == 0 {
			return nil, fmt.Errorf("%w: question %q has no options", ErrInvalidTree, n.ID)
		}
		for i, opt := range n.Options {
			if err := opt.MoodScores.Validate(); err != nil {
				return nil, fmt.Errorf("%w: question %q option %d: %v", ErrInvalidTree, n.ID, i, err)
			}
			if opt.Next == nil {
				continue
			}
			if _, ok := t.nodes[*opt.Next]; !ok {
				return nil, fmt.Errorf("%w: question %q option %d points to unknown question %q",
					ErrInvalidTree, n.ID, i, *opt.Next)
			}
		}
	}

	return t, nil
}

// First returns the root question.
func (t *Tree) First() (Node, error) {
	if t == nil || len(t.nodes) == 0 {
		return Node{}, ErrEmptyTree
	}
	n, ok := t.nodes[t.root]
	if !ok {
		return Node{}, fmt.Errorf("%w: root question %q not found", ErrInvalidTree, t.root)
	}
	return n.clone(), nil
}

// Node looks up a question by key. Unknown keys report false; keys may come
// from untrusted clients.
func (t *Tree) Node(key string) (Node, bool) {
	n, ok := t.lookup(key)
	if !ok {
		return Node{}, false
	}
	return n.clone(), true
}

// Keys returns every question key in sorted order.
func (t *Tree) Keys() []string {
	keys := make([]string, 0, len(t.nodes))
	for k := range t.nodes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of questions.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Walk follows option indices from the root one question at a time and
// returns the questions answered along the way. It stops after the last
// index or at a terminal answer; indices left over after a terminal answer
// are an error.
func (t *Tree) Walk(path []int) ([]Node, error) {
	current, err := t.First()
	if err != nil {
		return nil, err
	}

	visited := make([]Node, 0, len(path))
	for step, idx := range path {
		if idx < 0 || idx >= len(current.Options) {
			return visited, fmt.Errorf("step %d: option %d out of range for question %q", step, idx, current.ID)
		}
		visited = append(visited, current)

		opt := current.Options[idx]
		if opt.Terminal() {
			if step != len(path)-1 {
				return visited, fmt.Errorf("step %d: %w", step, ErrPathEnded)
			}
			return visited, nil
		}
		next, ok := t.Node(*opt.Next)
		if !ok {
			return visited, fmt.Errorf("step %d: %w: unknown question %q", step, ErrInvalidTree, *opt.Next)
		}
		current = next
	}
	return visited, nil
}

func (t *Tree) lookup(key string) (Node, bool) {
	if t == nil {
		return Node{}, false
	}
	n, ok := t.nodes[key]
	return n, ok
}

// clone returns a copy that callers may modify freely.
func (n Node) clone() Node {
	out := Node{ID: n.ID, Text: n.Text, Options: make([]Option, len(n.Options))}
	for i, opt := range n.Options {
		cp := Option{Text: opt.Text, MoodScores: make(mood.Distribution, len(opt.MoodScores))}
		for k, v := range opt.MoodScores {
			cp.MoodScores[k] = v
		}
		if opt.Next != nil {
			next := *opt.Next
			cp.Next = &next
		}
		out.Options[i] = cp
	}
	return out
}
