package gowire3d

import (
	"errors"
	"fmt"
)

var (
	// ErrMeshFormat marks a mesh source that does not follow the
	// counts-then-rows text format. No partial mesh is ever returned with it.
	ErrMeshFormat = errors.New("malformed mesh data")

	ErrDanglingVertex = errors.New("face references unknown vertex")
	ErrNoMesh         = errors.New("no mesh to render")
	ErrRasterizerUsed = errors.New("rasterizer already rendered a frame")
)

// FormatError reports where a mesh source broke the format.
type FormatError struct {
	Line int // 1-based, 0 when the error is not tied to a line
	Msg  string
	Err  error
}

func (e *FormatError) Error() string {
	msg := e.Msg
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMeshFormat}
	}
	return []error{ErrMeshFormat, e.Err}
}

// DanglingVertexError names the face and the id it could not resolve.
type DanglingVertexError struct {
	Face     int
	VertexID int
}

func (e *DanglingVertexError) Error() string {
	return fmt.Sprintf("face %d: vertex %d not in mesh", e.Face, e.VertexID)
}

func (e *DanglingVertexError) Unwrap() error {
	return ErrDanglingVertex
}
