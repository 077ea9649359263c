package config

// File represents the structure of the loadout.yaml configuration file.
type File struct {
	Version          string   `yaml:"version"`
	ExtractionRoot   string   `yaml:"extraction_root"`
	Records          string   `yaml:"records"`
	Include          []string `yaml:"include"`
	MaxDepth         int      `yaml:"max_depth"`
	MeshExtension    string   `yaml:"mesh_extension"`
	ProgressInterval string   `yaml:"progress_interval"`
	ProgressTape     string   `yaml:"progress_tape"`
}
