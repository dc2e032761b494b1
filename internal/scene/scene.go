// Package scene reads a yaml description of named positions and forces.
//
//	unit: m
//	forceUnit: N
//	positions:
//	  - name: anchor
//	    at: "0, 0, 0"
//	  - name: tip
//	    at: "(1,5; 2; 0)"
//	forces:
//	  - name: gravity
//	    vector: "0, 0, -9.81"
//	  - name: pull
//	    direction: "1, 1, 0"
//	    magnitude: 10
//	    unit: lbf
//
// Vectors use the notation accepted by gm.ParseTriple.
package scene

import (
	"errors"
	"fmt"
	"io"

	"github.com/oliverbestmann/spatial"
	"github.com/oliverbestmann/spatial/gm"
	"github.com/oliverbestmann/spatial/internal/set"
	"github.com/oliverbestmann/spatial/units"
	"gopkg.in/yaml.v3"
)

var ErrInvalidScene = errors.New("scene: invalid scene")

// Triple is a vector in the text notation of gm.ParseTriple.
type Triple gm.Vector3

func (t *Triple) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err != nil {
		return err
	}

	v, err := gm.ParseVector3(text)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*t = Triple(v)
	return nil
}

type File struct {
	Unit      string     `yaml:"unit"`
	ForceUnit string     `yaml:"forceUnit"`
	Positions []Position `yaml:"positions"`
	Forces    []Force    `yaml:"forces"`
}

type Position struct {
	Name string `yaml:"name"`
	At   Triple `yaml:"at"`
	Unit string `yaml:"unit"`
}

// Force is either given as a vector, or by direction and magnitude.
type Force struct {
	Name      string   `yaml:"name"`
	Vector    *Triple  `yaml:"vector"`
	Direction *Triple  `yaml:"direction"`
	Magnitude *float64 `yaml:"magnitude"`
	Unit      string   `yaml:"unit"`
}

type NamedPosition struct {
	Name     string
	Position spatial.Position
}

type NamedForce struct {
	Name  string
	Force spatial.ForceVector
}

// Scene is a resolved scene where all values are typed quantities.
type Scene struct {
	Positions []NamedPosition
	Forces    []NamedForce
}

// Read decodes and resolves a scene.
func Read(r io.Reader) (Scene, error) {
	var file File

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Scene{}, fmt.Errorf("decode scene: %w", err)
	}

	return file.Resolve()
}

// Resolve converts all values of the file into typed quantities.
func (f File) Resolve() (Scene, error) {
	lengthUnit, err := unitOrDefault[units.LengthKind](f.Unit)
	if err != nil {
		return Scene{}, err
	}

	forceUnit, err := unitOrDefault[units.ForceKind](f.ForceUnit)
	if err != nil {
		return Scene{}, err
	}

	var scene Scene

	var names set.Set[string]

	for idx, p := range f.Positions {
		if err := checkName(&names, "position", idx, p.Name); err != nil {
			return Scene{}, err
		}

		unit, err := unitOr(p.Unit, lengthUnit)
		if err != nil {
			return Scene{}, fmt.Errorf("position %q: %w", p.Name, err)
		}

		scene.Positions = append(scene.Positions, NamedPosition{
			Name:     p.Name,
			Position: spatial.PositionFromPoint(gm.Point3(p.At), unit),
		})
	}

	names = set.Set[string]{}

	for idx, fc := range f.Forces {
		if err := checkName(&names, "force", idx, fc.Name); err != nil {
			return Scene{}, err
		}

		unit, err := unitOr(fc.Unit, forceUnit)
		if err != nil {
			return Scene{}, fmt.Errorf("force %q: %w", fc.Name, err)
		}

		force, err := fc.resolve(unit)
		if err != nil {
			return Scene{}, fmt.Errorf("force %q: %w", fc.Name, err)
		}

		scene.Forces = append(scene.Forces, NamedForce{Name: fc.Name, Force: force})
	}

	return scene, nil
}

func (f Force) resolve(unit units.ForceUnit) (spatial.ForceVector, error) {
	switch {
	case f.Vector != nil && f.Direction == nil && f.Magnitude == nil:
		return spatial.ForceVectorFromVector(gm.Vector3(*f.Vector), unit), nil

	case f.Vector == nil && f.Direction != nil && f.Magnitude != nil:
		direction, err := gm.Vector3(*f.Direction).Normalize()
		if err != nil {
			return spatial.ForceVector{}, err
		}

		return spatial.ForceVectorAlong(direction, units.From(*f.Magnitude, unit)), nil

	default:
		return spatial.ForceVector{}, fmt.Errorf("%w: need either vector or direction and magnitude", ErrInvalidScene)
	}
}

func checkName(names *set.Set[string], what string, idx int, name string) error {
	if name == "" {
		return fmt.Errorf("%w: %s #%d has no name", ErrInvalidScene, what, idx)
	}

	if !names.Insert(name) {
		return fmt.Errorf("%w: duplicate %s %q", ErrInvalidScene, what, name)
	}

	return nil
}

func unitOrDefault[K units.Kind](symbol string) (units.Unit[K], error) {
	return unitOr(symbol, units.BaseUnit[K]())
}

func unitOr[K units.Kind](symbol string, fallback units.Unit[K]) (units.Unit[K], error) {
	if symbol == "" {
		return fallback, nil
	}

	return units.ParseUnit[K](symbol)
}

// Position returns the position with the given name.
func (s Scene) Position(name string) (spatial.Position, bool) {
	for _, p := range s.Positions {
		if p.Name == name {
			return p.Position, true
		}
	}

	return spatial.Position{}, false
}

// NetForce returns the sum of all forces in the scene.
func (s Scene) NetForce() spatial.ForceVector {
	var forces []spatial.ForceVector
	for _, f := range s.Forces {
		forces = append(forces, f.Force)
	}

	return spatial.NetForce(forces...)
}

// Centroid returns the centroid of all positions.
func (s Scene) Centroid() (spatial.Position, error) {
	var positions []spatial.Position
	for _, p := range s.Positions {
		positions = append(positions, p.Position)
	}

	return spatial.Centroid(positions...)
}

// DistinctLocations counts the positions that do not share their exact
// location with an earlier position.
func (s Scene) DistinctLocations() int {
	var locations set.Set[spatial.Position]
	for _, p := range s.Positions {
		locations.Insert(p.Position)
	}

	return locations.Len()
}
