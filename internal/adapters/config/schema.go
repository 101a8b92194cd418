package config

// Mosaicfile represents the structure of the mosaic.yaml configuration file.
// All paths are relative to the directory containing the file unless absolute.
type Mosaicfile struct {
	Version string `yaml:"version"`
	Catalog string `yaml:"catalog"`
	Graph   string `yaml:"graph"`
	Project string `yaml:"project"`
}
