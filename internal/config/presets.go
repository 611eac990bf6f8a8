package config

import "sort"

// Presets holds named variations per scene.
var Presets = map[string]map[string]*Config{
	"squares": {
		"tight": withScene("squares", func(c *Config) {
			c.Squares.Lambda = 0.1
			c.Squares.Depth = 12
		}),
		"loose": withScene("squares", func(c *Config) {
			c.Squares.Lambda = 0.5
			c.Squares.Depth = 6
		}),
		"single": withScene("squares", func(c *Config) {
			c.Squares.Count = 1
		}),
	},
	"trees": {
		"sparse": withScene("trees", func(c *Config) {
			c.Trees.Count = 5
			c.Trees.Depth = 5
		}),
		"dense": withScene("trees", func(c *Config) {
			c.Trees.Count = 30
		}),
		"stubby": withScene("trees", func(c *Config) {
			c.Trees.Lambda = 0.5
		}),
	},
	"cube": {
		"tree-view": withScene("cube", func(c *Config) {
			c.Camera.Eye = Vec3{X: 100, Y: 250, Z: 60}
		}),
		"bushy": withScene("cube", func(c *Config) {
			c.Cube.TreeDepth = 4
		}),
		"front-tree": withScene("cube", func(c *Config) {
			c.Cube.TreeFace = "front"
		}),
		"legacy": withScene("cube", func(c *Config) {
			c.Camera.LegacyRho = true
		}),
	},
	"sphere": {
		"low": withScene("sphere", func(c *Config) {
			c.Sphere.Levels = 8
		}),
		"bright": withScene("sphere", func(c *Config) {
			c.Light.Scale = 32000
		}),
	},
}

func withScene(name string, edit func(*Config)) *Config {
	c := DefaultConfig()
	c.Scene = name
	edit(c)
	return c
}

func GetPreset(sceneName, preset string) *Config {
	scenePresets, ok := Presets[sceneName]
	if !ok {
		return nil
	}
	cfg, ok := scenePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(sceneName string) []string {
	scenePresets, ok := Presets[sceneName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenePresets))
	for name := range scenePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
