package sequence

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/codevideo/pkg/diagram"
	"github.com/matzehuels/codevideo/pkg/errors"
)

// Script is a TOML sequence diagram. Each step does exactly one thing:
// enter an actor scope (actor, with optional text labelling the message
// into it and nested steps in do), send a message from the enclosing actor
// (to, label), make a self call (self), add a note (note) or label the
// reply sent when the enclosing scope ends (ret).
//
//	actors = ["Browser", "Web"]
//
//	[[do]]
//	actor = "Browser"
//
//	  [[do.do]]
//	  actor = "Web"
//	  text = "Make a request"
//
//	    [[do.do.do]]
//	    ret = "HTML response"
type Script struct {
	Actors []string `toml:"actors"`
	MaxY   *float64 `toml:"max_y"`
	Do     []Step   `toml:"do"`
}

// Step is one script instruction.
type Step struct {
	Actor string `toml:"actor"`
	Text  string `toml:"text"`
	To    string `toml:"to"`
	Label string `toml:"label"`
	Self  string `toml:"self"`
	Note  string `toml:"note"`
	Ret   string `toml:"ret"`
	Do    []Step `toml:"do"`
}

// ParseScript decodes a TOML sequence script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode sequence script")
	}
	if len(s.Actors) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "sequence script declares no actors")
	}
	return &s, nil
}

// LoadScript reads and parses a sequence script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "sequence script %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseScript(data)
}

// Build records the script into a new diagram.
func (s *Script) Build(lib *diagram.Library, opts ...Option) (*Diagram, error) {
	if s.MaxY != nil {
		opts = append(opts, WithMaxY(*s.MaxY))
	}
	d := New(lib, opts...)
	if _, err := d.AddObjects(s.Actors...); err != nil {
		return nil, err
	}
	if err := run(d, s.Do, nil); err != nil {
		return nil, err
	}
	return d, d.Err()
}

func run(d *Diagram, steps []Step, current *Actor) error {
	for n, st := range steps {
		if err := st.validate(current); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "step %d", n+1)
		}
		switch {
		case st.Actor != "":
			a, err := lookup(d, st.Actor)
			if err != nil {
				return err
			}
			if st.Text != "" {
				a.Text(st.Text)
			}
			var inner error
			a.Within(func() { inner = run(d, st.Do, a) })
			if inner != nil {
				return inner
			}
		case st.To != "":
			target, err := lookup(d, st.To)
			if err != nil {
				return err
			}
			current.To(target, st.Label)
		case st.Self != "":
			current.ToSelf(st.Self)
		case st.Note != "":
			current.Note(st.Note)
		case st.Ret != "":
			current.Ret(st.Ret)
		}
	}
	return nil
}

func (st Step) validate(current *Actor) error {
	set := 0
	for _, v := range []string{st.Actor, st.To, st.Self, st.Note, st.Ret} {
		if v != "" {
			set++
		}
	}
	switch {
	case set != 1:
		return fmt.Errorf("a step needs exactly one of actor, to, self, note or ret")
	case st.Actor == "" && current == nil:
		return fmt.Errorf("only actor steps are allowed outside a scope")
	case st.Actor == "" && len(st.Do) > 0:
		return fmt.Errorf("nested steps need an actor")
	}
	return nil
}

func lookup(d *Diagram, name string) (*Actor, error) {
	a, ok := d.Actor(name)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown actor %q", name)
	}
	return a, nil
}
