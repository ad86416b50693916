package fixtures

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/jigmatch/edge"
	"github.com/katalvlaran/jigmatch/piece"
)

// ErrBadScenario indicates a scenario that cannot be turned into pieces.
var ErrBadScenario = errors.New("fixtures: bad scenario")

//go:embed reference.yaml
var reference []byte

// PieceSpec describes one piece by shape names.
type PieceSpec struct {
	ID     string `yaml:"id"`
	Top    string `yaml:"top"`
	Right  string `yaml:"right"`
	Bottom string `yaml:"bottom"`
	Left   string `yaml:"left"`
}

// Piece parses the shape names and builds the piece.
func (ps PieceSpec) Piece() (piece.Piece, error) {
	var shapes [4]edge.Shape
	for i, name := range [4]string{ps.Top, ps.Right, ps.Bottom, ps.Left} {
		s, err := edge.ParseShape(name)
		if err != nil {
			return piece.Piece{}, fmt.Errorf("piece %q %s: %w", ps.ID, piece.Side(i), err)
		}
		shapes[i] = s
	}
	return piece.New(ps.ID, shapes[0], shapes[1], shapes[2], shapes[3])
}

// Scenario is one ordered pair with its expected outcome.
// Rule is optional; when set it names the rule expected to decide.
type Scenario struct {
	Name string    `yaml:"name"`
	A    PieceSpec `yaml:"a"`
	B    PieceSpec `yaml:"b"`
	Want bool      `yaml:"want"`
	Rule string    `yaml:"rule,omitempty"`
}

// Pieces builds both pieces of the scenario.
// Errors wrap ErrBadScenario together with the underlying cause.
func (sc Scenario) Pieces() (piece.Piece, piece.Piece, error) {
	a, err := sc.A.Piece()
	if err != nil {
		return piece.Piece{}, piece.Piece{}, fmt.Errorf("%w %q: %w", ErrBadScenario, sc.Name, err)
	}
	b, err := sc.B.Piece()
	if err != nil {
		return piece.Piece{}, piece.Piece{}, fmt.Errorf("%w %q: %w", ErrBadScenario, sc.Name, err)
	}
	return a, b, nil
}

type document struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load decodes a scenario document from r and checks every scenario
// builds. Unknown fields are rejected.
func Load(r io.Reader) ([]Scenario, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fixtures: read: %w", err)
	}
	return parse(data)
}

// LoadFile is Load on the named file.
func LoadFile(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixtures: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the embedded reference scenarios.
func Default() []Scenario {
	out, err := parse(reference)
	if err != nil {
		panic(err)
	}
	return out
}

func parse(data []byte) ([]Scenario, error) {
	var doc document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("fixtures: decode: %w", err)
	}
	for i, sc := range doc.Scenarios {
		if strings.TrimSpace(sc.Name) == "" {
			return nil, fmt.Errorf("%w: scenario %d has no name", ErrBadScenario, i)
		}
		if _, _, err := sc.Pieces(); err != nil {
			return nil, err
		}
	}
	return doc.Scenarios, nil
}
