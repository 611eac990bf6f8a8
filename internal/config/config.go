package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/tinyraster/internal/gen"
	"github.com/san-kum/tinyraster/internal/geom"
	"github.com/san-kum/tinyraster/internal/scene"
)

const (
	DefaultScale      = 4
	DefaultDelayScale = 1.0
	DefaultTreeFace   = "right"
)

var ErrUnknownTreeFace = errors.New("config: unknown tree face")

type Config struct {
	Scene   string        `yaml:"scene"`
	Seed    int64         `yaml:"seed"`
	Display DisplayConfig `yaml:"display"`
	Camera  CameraConfig  `yaml:"camera"`
	Light   LightConfig   `yaml:"light"`
	Squares SquaresConfig `yaml:"squares"`
	Trees   TreesConfig   `yaml:"trees"`
	Sphere  SphereConfig  `yaml:"sphere"`
	Cube    CubeConfig    `yaml:"cube"`
}

type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"`
	// DelayScale multiplies every scene pause; 0 disables pauses.
	DelayScale float64 `yaml:"delay_scale"`
}

type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3) Point() geom.Point3D { return geom.P3(v.X, v.Y, v.Z) }

type CameraConfig struct {
	Eye       Vec3    `yaml:"eye"`
	Focal     float64 `yaml:"focal"`
	LegacyRho bool    `yaml:"legacy_rho"`
}

type LightConfig struct {
	Position Vec3    `yaml:"position"`
	Scale    float64 `yaml:"scale"`
}

type SquaresConfig struct {
	Lambda float64 `yaml:"lambda"`
	Depth  int     `yaml:"depth"`
	Count  int     `yaml:"count"`
}

type TreesConfig struct {
	Lambda float64 `yaml:"lambda"`
	Depth  int     `yaml:"depth"`
	Count  int     `yaml:"count"`
}

type SphereConfig struct {
	Levels int `yaml:"levels"`
}

type CubeConfig struct {
	TreeDepth int `yaml:"tree_depth"`
	// TreeFace is "front" or "right".
	TreeFace string `yaml:"tree_face"`
}

func DefaultConfig() *Config {
	return &Config{
		Scene: "squares",
		Seed:  1,
		Display: DisplayConfig{
			Width:      scene.PanelWidth,
			Height:     scene.PanelHeight,
			Scale:      DefaultScale,
			DelayScale: DefaultDelayScale,
		},
		Camera: CameraConfig{
			Eye:   Vec3{X: scene.DefaultEye.X, Y: scene.DefaultEye.Y, Z: scene.DefaultEye.Z},
			Focal: scene.DefaultFocal,
		},
		Light: LightConfig{
			Position: Vec3{X: scene.DefaultLight.X, Y: scene.DefaultLight.Y, Z: scene.DefaultLight.Z},
			Scale:    geom.DefaultDiffuseScale,
		},
		Squares: SquaresConfig{Lambda: gen.DefaultLambda, Depth: scene.SquareDepth, Count: scene.SquareCount},
		Trees:   TreesConfig{Lambda: scene.TreeLambda, Depth: scene.TreeDepth, Count: scene.TreeCount},
		Sphere:  SphereConfig{Levels: scene.SphereLevels},
		Cube:    CubeConfig{TreeDepth: scene.CubeTreeDepth, TreeFace: DefaultTreeFace},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.TreeFace(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Kind resolves the configured scene.
func (c *Config) Kind() (scene.Kind, error) {
	s, err := scene.Default().Get(c.Scene)
	if err != nil {
		return 0, err
	}
	return s.Kind, nil
}

// BuildCamera builds the projection camera.
func (c *Config) BuildCamera() geom.Camera {
	cam := geom.NewCamera(c.Camera.Eye.Point(), c.Camera.Focal)
	cam.LegacyRho = c.Camera.LegacyRho
	return cam
}

// BuildLight builds the point light.
func (c *Config) BuildLight() geom.Light {
	l := geom.NewLight(c.Light.Position.Point())
	if c.Light.Scale > 0 {
		l.Scale = c.Light.Scale
	}
	return l
}

// TreeFace resolves the cube face the 3D tree grows on.
func (c *Config) TreeFace() (geom.Plane, error) {
	if c.Cube.TreeFace == "" {
		return geom.PlaneRight, nil
	}
	face, ok := geom.ParsePlane(c.Cube.TreeFace)
	if !ok {
		return face, fmt.Errorf("%w: %q (want front or right)", ErrUnknownTreeFace, c.Cube.TreeFace)
	}
	return face, nil
}

// SceneParams maps the config onto render parameters for kind.
func (c *Config) SceneParams(kind scene.Kind) scene.Params {
	p := scene.DefaultParams()
	p.Seed = c.Seed
	p.Camera = c.BuildCamera()
	p.Light = c.BuildLight()
	p.Lambda = c.Squares.Lambda
	p.TreeLambda = c.Trees.Lambda

	switch kind {
	case scene.RotatedSquares:
		p.Depth, p.Count = c.Squares.Depth, c.Squares.Count
	case scene.BranchingTrees:
		p.Depth, p.Count = c.Trees.Depth, c.Trees.Count
	case scene.Cube3D:
		p.Depth = c.Cube.TreeDepth
		if face, err := c.TreeFace(); err == nil {
			p.TreeFace = face
		}
	case scene.HalfSphere3D:
		p.Count = c.Sphere.Levels
	}
	return p
}
