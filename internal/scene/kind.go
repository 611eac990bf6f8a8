package scene

import (
	"fmt"
	"strings"
)

// Kind identifies a scene.
type Kind int

const (
	RotatedSquares Kind = iota + 1
	BranchingTrees
	Cube3D
	HalfSphere3D
)

var kindNames = map[Kind]string{
	RotatedSquares: "squares",
	BranchingTrees: "trees",
	Cube3D:         "cube",
	HalfSphere3D:   "sphere",
}

// Kinds lists every scene in menu order.
func Kinds() []Kind {
	return []Kind{RotatedSquares, BranchingTrees, Cube3D, HalfSphere3D}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Is3D reports whether the scene projects through the camera.
func (k Kind) Is3D() bool {
	return k == Cube3D || k == HalfSphere3D
}

// ParseKind resolves a scene name, case-insensitively.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownScene, name)
}
