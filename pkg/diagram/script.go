package diagram

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/codevideo/pkg/errors"
	"github.com/matzehuels/codevideo/pkg/geom"
	"github.com/matzehuels/codevideo/pkg/scene"
)

// Script describes a box diagram in TOML:
//
//	[[box]]
//	id = "a"
//	text = "Component A"
//	edge = "left"
//
//	[[box]]
//	id = "b"
//	text = "Component B"
//	of = "a"
//	direction = "down"
//	buff = 1
//
//	[[connect]]
//	from = "b"
//	to = "a"
//	label = "Do something"
//
// Boxes are placed in file order, so a box may only be positioned relative
// to one declared before it.
type Script struct {
	Title       string           `toml:"title"`
	Boxes       []BoxSpec        `toml:"box"`
	Connections []ConnectionSpec `toml:"connect"`
	Groups      []GroupSpec      `toml:"group"`
}

// BoxSpec declares one box.
type BoxSpec struct {
	ID         string  `toml:"id"`
	Text       string  `toml:"text"`
	Note       bool    `toml:"note"`
	Background string  `toml:"background"`
	Shadow     *bool   `toml:"shadow"`
	Rounded    bool    `toml:"rounded"`
	Edge       string  `toml:"edge"`      // Frame edge to move to
	Of         string  `toml:"of"`        // Box to place next to
	Direction  string  `toml:"direction"` // Side of Of to place on
	Buff       float64 `toml:"buff"`
}

// ConnectionSpec declares an arrow between two boxes.
type ConnectionSpec struct {
	From  string `toml:"from"`
	To    string `toml:"to"`
	Label string `toml:"label"`
}

// GroupSpec frames a set of boxes with an optional title.
type GroupSpec struct {
	Title string   `toml:"title"`
	Boxes []string `toml:"boxes"`
}

// ParseScript decodes a TOML box script and checks its references.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode box script")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadScript reads and parses a box script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "box script %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseScript(data)
}

// Validate checks that ids are unique and every reference resolves to a
// box declared earlier.
func (s *Script) Validate() error {
	seen := make(map[string]bool, len(s.Boxes))
	for i, b := range s.Boxes {
		if b.ID == "" {
			return errors.New(errors.ErrCodeInvalidInput, "box %d has no id", i+1)
		}
		if seen[b.ID] {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate box id %q", b.ID)
		}
		if b.Of != "" && !seen[b.Of] {
			return errors.New(errors.ErrCodeInvalidInput, "box %q placed next to unknown or later box %q", b.ID, b.Of)
		}
		seen[b.ID] = true
	}
	for _, c := range s.Connections {
		if !seen[c.From] || !seen[c.To] {
			return errors.New(errors.ErrCodeInvalidInput, "connection %q -> %q references an unknown box", c.From, c.To)
		}
	}
	grouped := make(map[string]bool)
	for _, g := range s.Groups {
		for _, id := range g.Boxes {
			if !seen[id] {
				return errors.New(errors.ErrCodeInvalidInput, "group %q references unknown box %q", g.Title, id)
			}
			if grouped[id] {
				return errors.New(errors.ErrCodeInvalidInput, "box %q is in more than one group", id)
			}
			grouped[id] = true
		}
	}
	return nil
}

// Sheet is a laid out box diagram.
type Sheet struct {
	Boxes       map[string]*Box
	Connections []*Connection
	Groups      []*scene.Group
	// Root holds every top-level element in drawing order: groups with
	// their boxes, ungrouped boxes, then connections.
	Root *scene.Group
}

// Build lays out s in frame f.
func (l *Library) Build(s *Script, f geom.Frame) (*Sheet, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	sh := &Sheet{Boxes: make(map[string]*Box, len(s.Boxes)), Root: scene.NewGroup()}
	sh.Root.Name = "sheet"

	for _, spec := range s.Boxes {
		b, err := l.buildBox(spec)
		if err != nil {
			return nil, err
		}
		if err := place(b, spec, sh.Boxes, f); err != nil {
			return nil, err
		}
		sh.Boxes[spec.ID] = b
	}

	grouped := make(map[string]bool)
	for _, gs := range s.Groups {
		children := make([]scene.Element, 0, len(gs.Boxes))
		for _, id := range gs.Boxes {
			children = append(children, sh.Boxes[id])
			grouped[id] = true
		}
		g, err := l.BorderedGroup(children, gs.Title)
		if err != nil {
			return nil, err
		}
		sh.Groups = append(sh.Groups, g)
		sh.Root.Add(g)
	}
	for _, spec := range s.Boxes {
		if !grouped[spec.ID] {
			sh.Root.Add(sh.Boxes[spec.ID])
		}
	}

	for _, cs := range s.Connections {
		c, err := l.Connect(sh.Boxes[cs.From], sh.Boxes[cs.To], cs.Label)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "connect %s -> %s", cs.From, cs.To)
		}
		sh.Connections = append(sh.Connections, c)
		sh.Root.Add(c)
	}
	return sh, nil
}

func (l *Library) buildBox(spec BoxSpec) (*Box, error) {
	var opts []BoxOption
	if spec.Background != "" {
		opts = append(opts, WithBackground(spec.Background))
	}
	if spec.Shadow != nil && !*spec.Shadow {
		opts = append(opts, WithoutShadow())
	}
	if spec.Rounded {
		opts = append(opts, WithRounded())
	}
	text := spec.Text
	if text == "" {
		text = spec.ID
	}
	if spec.Note {
		return l.NoteBox(text, opts...)
	}
	return l.TextBox(text, opts...)
}

func place(b *Box, spec BoxSpec, placed map[string]*Box, f geom.Frame) error {
	switch {
	case spec.Of != "":
		dir, err := geom.ParseDirection(spec.Direction)
		if err != nil {
			return err
		}
		buff := spec.Buff
		if buff == 0 {
			buff = geom.DefaultObjectBuff
		}
		scene.NextTo(b, placed[spec.Of].Box(), dir, buff)
	case spec.Edge != "":
		dir, err := geom.ParseDirection(spec.Edge)
		if err != nil {
			return err
		}
		buff := spec.Buff
		if buff == 0 {
			buff = geom.DefaultEdgeBuff
		}
		scene.ToEdge(b, f, dir, buff)
	}
	return nil
}
