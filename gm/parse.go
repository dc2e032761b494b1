package gm

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	numberDot   = `[+-]?(?:\d+(?:\.\d+)?|\.\d+)(?:[eE][+-]?\d+)?`
	numberComma = `[+-]?(?:\d+(?:[.,]\d+)?|[.,]\d+)(?:[eE][+-]?\d+)?`
)

var (
	// "1.5, 2, -3e2" uses a dot as decimal point
	tripleComma = regexp.MustCompile(`^(` + numberDot + `) *, *(` + numberDot + `) *, *(` + numberDot + `)$`)

	// "1,5; 2; -3e2" allows a comma as decimal point
	tripleSemicolon = regexp.MustCompile(`^(` + numberComma + `) *; *(` + numberComma + `) *; *(` + numberComma + `)$`)

	pointVector = regexp.MustCompile(`^p: *\{([^}]*)\} *v: *\{([^}]*)\}$`)
)

// ParseTriple parses three numbers separated by a comma or a semicolon, optionally
// surrounded by parentheses. If the numbers use a comma as decimal point,
// the separator must be a semicolon.
//
//	"1, 2.5, -3e-2"
//	"(1; 2,5; -3e-2)"
func ParseTriple(text string) (x, y, z float64, err error) {
	s := strings.TrimSpace(text)

	if strings.HasPrefix(s, "(") || strings.HasSuffix(s, ")") {
		if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
			return 0, 0, 0, &FormatError{Input: text, What: "triple"}
		}

		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	match := tripleComma.FindStringSubmatch(s)
	if match == nil {
		match = tripleSemicolon.FindStringSubmatch(s)
	}

	if match == nil {
		return 0, 0, 0, &FormatError{Input: text, What: "triple"}
	}

	var values [3]float64
	for idx, group := range match[1:] {
		value, err := strconv.ParseFloat(strings.Replace(group, ",", ".", 1), 64)
		if err != nil {
			return 0, 0, 0, &FormatError{Input: group, What: "number"}
		}

		values[idx] = value
	}

	return values[0], values[1], values[2], nil
}

func ParseVector3(text string) (Vector3, error) {
	x, y, z, err := ParseTriple(text)
	if err != nil {
		return Vector3{}, err
	}

	return Vector3{X: x, Y: y, Z: z}, nil
}

func ParsePoint3(text string) (Point3, error) {
	x, y, z, err := ParseTriple(text)
	if err != nil {
		return Point3{}, err
	}

	return Point3{X: x, Y: y, Z: z}, nil
}

// ParseUnitVector3 parses a triple and normalizes it.
func ParseUnitVector3(text string) (UnitVector3, error) {
	x, y, z, err := ParseTriple(text)
	if err != nil {
		return UnitVector3{}, err
	}

	return NewUnitVector3(x, y, z)
}

func parsePointVector(text string) (Point3, UnitVector3, error) {
	match := pointVector.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return Point3{}, UnitVector3{}, &FormatError{Input: text, What: "p:{x, y, z} v:{x, y, z}"}
	}

	p, err := ParsePoint3(match[1])
	if err != nil {
		return Point3{}, UnitVector3{}, err
	}

	v, err := ParseUnitVector3(match[2])
	if err != nil {
		return Point3{}, UnitVector3{}, err
	}

	return p, v, nil
}

// ParseRay3 parses a ray in the form "p:{1, 2, 3} v:{0, 0, 1}".
func ParseRay3(text string) (Ray3, error) {
	p, v, err := parsePointVector(text)
	if err != nil {
		return Ray3{}, err
	}

	return Ray3{Origin: p, Direction: v}, nil
}

// ParsePlane parses a plane given by a point and its normal, e.g. "p:{0, 0, 0} v:{0, 0, 1}".
func ParsePlane(text string) (Plane, error) {
	p, v, err := parsePointVector(text)
	if err != nil {
		return Plane{}, err
	}

	return NewPlane(v, p), nil
}
