package gowire3d

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadMeshFromFile reads a mesh in the counts-then-rows text format:
//
//	numVertices,numFaces
//	id,x,y,z        (numVertices rows)
//	id1,id2,id3     (numFaces rows)
//
// Format violations match ErrMeshFormat; failures to open or read the file
// do not.
func LoadMeshFromFile(fileName string) (*Mesh, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open mesh file %s: %w", fileName, err)
	}
	defer file.Close()

	m, err := LoadMeshFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("error loading mesh file %s: %w", fileName, err)
	}
	return m, nil
}

// LoadMeshFromReader is LoadMeshFromFile for an already open source. The
// mesh is returned only if every declared row is present, no further line
// follows, and every face id names a vertex.
func LoadMeshFromReader(reader io.Reader) (*Mesh, error) {
	scanner := bufio.NewScanner(reader)
	lineNumber := 0

	nextLine := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineNumber++
		return scanner.Text(), true
	}

	header, ok := nextLine()
	if !ok {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("error reading mesh source: %w", err)
		}
		return nil, &FormatError{Msg: "empty mesh source"}
	}
	counts, err := parseInts(header, 2)
	if err != nil {
		return nil, &FormatError{Line: lineNumber, Msg: "bad header", Err: err}
	}
	vertexCount, faceCount := counts[0], counts[1]
	if vertexCount < 0 || faceCount < 0 {
		return nil, &FormatError{Line: lineNumber, Msg: fmt.Sprintf("negative counts %d,%d", vertexCount, faceCount)}
	}

	vertices := make(map[int]*Point3d, vertexCount)
	for i := 0; i < vertexCount; i++ {
		line, ok := nextLine()
		if !ok {
			return nil, shortSource(scanner, fmt.Sprintf("declared %d vertices, found %d", vertexCount, i))
		}
		id, x, y, z, err := parseVertex(line)
		if err != nil {
			return nil, &FormatError{Line: lineNumber, Msg: "bad vertex row", Err: err}
		}
		if _, dup := vertices[id]; dup {
			return nil, &FormatError{Line: lineNumber, Msg: fmt.Sprintf("duplicate vertex id %d", id)}
		}
		vertices[id] = NewPoint3d(x, y, z)
	}

	faces := make([]Face, 0, faceCount)
	for i := 0; i < faceCount; i++ {
		line, ok := nextLine()
		if !ok {
			return nil, shortSource(scanner, fmt.Sprintf("declared %d faces, found %d", faceCount, i))
		}
		ids, err := parseInts(line, 3)
		if err != nil {
			return nil, &FormatError{Line: lineNumber, Msg: "bad face row", Err: err}
		}
		faces = append(faces, NewFace(ids[0], ids[1], ids[2]))
	}

	// Any further line, blank or not, is an undeclared row. A final
	// newline does not start a line.
	if _, ok := nextLine(); ok {
		return nil, &FormatError{
			Line: lineNumber,
			Msg:  fmt.Sprintf("more rows than the declared %d vertices and %d faces", vertexCount, faceCount),
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading mesh source: %w", err)
	}

	m := &Mesh{vertices: vertices, faces: faces}
	if err := m.Validate(); err != nil {
		return nil, &FormatError{Msg: "dangling face reference", Err: err}
	}
	return m, nil
}

// shortSource separates a read failure from a source that simply ended early.
func shortSource(scanner *bufio.Scanner, msg string) error {
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading mesh source: %w", err)
	}
	return &FormatError{Msg: msg}
}

func splitFields(line string, want int) ([]string, error) {
	parts := strings.Split(line, ",")
	if len(parts) < want {
		return nil, fmt.Errorf("want %d fields, got %d in %q", want, len(parts), line)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts[:want], nil
}

func parseInts(line string, want int) ([]int, error) {
	parts, err := splitFields(line, want)
	if err != nil {
		return nil, err
	}
	out := make([]int, want)
	for i, s := range parts {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseVertex(line string) (id int, x, y, z float64, err error) {
	parts, err := splitFields(line, 4)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	if id, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("vertex id: %w", err)
	}
	var coords [3]float64
	for i := range coords {
		if coords[i], err = strconv.ParseFloat(parts[i+1], 64); err != nil {
			return 0, 0, 0, 0, fmt.Errorf("coordinate %d: %w", i+1, err)
		}
		if math.IsNaN(coords[i]) || math.IsInf(coords[i], 0) {
			return 0, 0, 0, 0, fmt.Errorf("coordinate %d: %q is not finite", i+1, parts[i+1])
		}
		if math.Abs(coords[i]) > MaxCoordinate {
			return 0, 0, 0, 0, fmt.Errorf("coordinate %d: %q is out of range", i+1, parts[i+1])
		}
	}
	return id, coords[0], coords[1], coords[2], nil
}
