package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	graphics "github.com/gogpu/gg-graphics"
)

// Scene is a list of drawing operations read from YAML.
//
//	background: "#20242c"
//	font: {family: System, size: 16}
//	ops:
//	  - op: fillRoundedRect
//	    rect: [20, 20, 200, 120]
//	    radius: 12
//	    gradient:
//	      start: [20, 20]
//	      end: [220, 140]
//	      stops: [{color: "#ff8800", at: 0}, {color: "#8800ff", at: 1}]
//	  - op: text
//	    at: [40, 60]
//	    color: "#ffffff"
//	    text: Hello
type Scene struct {
	Width      int       `yaml:"width"`
	Height     int       `yaml:"height"`
	Background *hexColor `yaml:"background"`
	Font       *fontSpec `yaml:"font"`
	Ops        []Op      `yaml:"ops"`
}

// Op is one drawing operation. Which fields are read depends on Op.
type Op struct {
	Op       string        `yaml:"op"`
	Color    *hexColor     `yaml:"color"`
	Gradient *gradientSpec `yaml:"gradient"`
	Font     *fontSpec     `yaml:"font"`

	Rect   []float64   `yaml:"rect"`
	Radius float64     `yaml:"radius"`
	Width  float64     `yaml:"width"`
	Points [][]float64 `yaml:"points"`
	From   []float64   `yaml:"from"`
	To     []float64   `yaml:"to"`
	At     []float64   `yaml:"at"`
	Text   string      `yaml:"text"`
	Image  string      `yaml:"image"`

	gradient *graphics.Gradient
}

type fontSpec struct {
	Family string  `yaml:"family"`
	Size   float64 `yaml:"size"`
	Bold   bool    `yaml:"bold"`
}

func (f fontSpec) font() graphics.Font {
	family := f.Family
	if family == "" {
		family = graphics.FamilySystem
	}
	return graphics.Font{Family: family, Size: f.Size, Bold: f.Bold}
}

type gradientSpec struct {
	Start []float64  `yaml:"start"`
	End   []float64  `yaml:"end"`
	Stops []stopSpec `yaml:"stops"`
}

type stopSpec struct {
	Color hexColor `yaml:"color"`
	At    float64  `yaml:"at"`
}

// hexColor decodes "#RRGGBB" style strings.
type hexColor graphics.Color

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *hexColor) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	col, err := graphics.ParseHex(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = hexColor(col)
	return nil
}

var errScene = errors.New("invalid scene")

// LoadScene reads and parses a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	s, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScene parses a YAML scene and checks every operation.
func ParseScene(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	for i := range s.Ops {
		if err := s.Ops[i].check(); err != nil {
			return nil, fmt.Errorf("%w: op %d (%s): %w", errScene, i, s.Ops[i].Op, err)
		}
	}
	return &s, nil
}

// argCounts lists the required numeric arguments per operation.
var argCounts = map[string]struct{ rect, from, to, at int }{
	"fillRect":        {rect: 4},
	"drawRect":        {rect: 4},
	"fillRoundedRect": {rect: 4},
	"drawRoundedRect": {rect: 4},
	"fillOval":        {rect: 4},
	"drawOval":        {rect: 4},
	"fillPolygon":     {},
	"drawPolygon":     {},
	"line":            {from: 2, to: 2},
	"text":            {at: 2},
	"textInRect":      {rect: 4},
	"image":           {rect: 4},
}

func (op *Op) check() error {
	want, ok := argCounts[op.Op]
	if !ok {
		return fmt.Errorf("unknown op %q", op.Op)
	}
	for _, a := range []struct {
		name string
		got  []float64
		want int
	}{
		{"rect", op.Rect, want.rect},
		{"from", op.From, want.from},
		{"to", op.To, want.to},
		{"at", op.At, want.at},
	} {
		if a.want > 0 && len(a.got) != a.want {
			return fmt.Errorf("%s needs %d numbers, got %d", a.name, a.want, len(a.got))
		}
	}
	for _, p := range op.Points {
		if len(p) != 2 {
			return fmt.Errorf("point %v needs 2 numbers", p)
		}
	}
	if op.Gradient != nil {
		g, err := op.Gradient.build()
		if err != nil {
			return err
		}
		op.gradient = g
	}
	return nil
}

func (gs *gradientSpec) build() (*graphics.Gradient, error) {
	if len(gs.Start) != 2 || len(gs.End) != 2 {
		return nil, errors.New("gradient start and end need 2 numbers")
	}
	g := graphics.NewGradient(graphics.Pt(gs.Start[0], gs.Start[1]), graphics.Pt(gs.End[0], gs.End[1]))
	for _, st := range gs.Stops {
		g.AddStop(graphics.Color(st.Color), st.At)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Render draws the scene onto g.
func (s *Scene) Render(g graphics.Graphics) error {
	if s.Background != nil {
		g.Clear(graphics.Color(*s.Background))
	}
	if s.Font != nil {
		g.SetFont(s.Font.font())
	}
	for i := range s.Ops {
		if err := s.Ops[i].render(g); err != nil {
			return fmt.Errorf("op %d (%s): %w", i, s.Ops[i].Op, err)
		}
	}
	return nil
}

func (op *Op) render(g graphics.Graphics) error {
	g.BeginEntity(op)

	switch {
	case op.gradient != nil:
		if err := g.SetGradient(op.gradient); err != nil {
			return err
		}
	case op.Color != nil:
		g.SetColor(graphics.Color(*op.Color))
	}
	if op.Font != nil {
		g.SetFont(op.Font.font())
	}

	w := op.Width
	if w == 0 {
		w = 1
	}

	switch op.Op {
	case "fillRect":
		return g.FillRect(op.Rect[0], op.Rect[1], op.Rect[2], op.Rect[3])
	case "drawRect":
		return g.DrawRect(op.Rect[0], op.Rect[1], op.Rect[2], op.Rect[3], w)
	case "fillRoundedRect":
		return g.FillRoundedRect(op.Rect[0], op.Rect[1], op.Rect[2], op.Rect[3], op.Radius)
	case "drawRoundedRect":
		return g.DrawRoundedRect(op.Rect[0], op.Rect[1], op.Rect[2], op.Rect[3], op.Radius, w)
	case "fillOval":
		return g.FillOval(op.Rect[0], op.Rect[1], op.Rect[2], op.Rect[3])
	case "drawOval":
		return g.DrawOval(op.Rect[0], op.Rect[1], op.Rect[2], op.Rect[3], w)
	case "fillPolygon":
		return g.FillPolygon(op.polygon())
	case "drawPolygon":
		return g.DrawPolygon(op.polygon(), w)
	case "line":
		g.BeginLines(true)
		defer g.EndLines()
		return g.DrawLine(op.From[0], op.From[1], op.To[0], op.To[1], w)
	case "text":
		return g.DrawString(op.Text, op.At[0], op.At[1])
	case "textInRect":
		return g.DrawStringInRect(op.Text, op.Rect[0], op.Rect[1], op.Rect[2], op.Rect[3],
			graphics.LineBreakWordWrap, graphics.AlignLeft)
	case "image":
		img, err := g.ImageFromFile(op.Image)
		if err != nil {
			graphics.Logger().Warn("ggraphicsdemo: image skipped", "path", op.Image, "err", err)
			return nil
		}
		return g.DrawImage(img, op.Rect[0], op.Rect[1], op.Rect[2], op.Rect[3])
	}
	return fmt.Errorf("unknown op %q", op.Op)
}

func (op *Op) polygon() graphics.Polygon {
	var p graphics.Polygon
	for _, pt := range op.Points {
		p.AddPoint(pt[0], pt[1])
	}
	return p
}
