package config

// Configfile represents the structure of the kubesetup.yaml configuration file.
// Every field is optional; empty fields keep the built-in default.
type Configfile struct {
	Tool             string `yaml:"tool"`
	BaselineVersion  string `yaml:"baselineVersion"`
	StableVersionURL string `yaml:"stableVersionUrl"`
	PatchVersionURL  string `yaml:"patchVersionUrl"`
	DownloadBaseURL  string `yaml:"downloadBaseUrl"`
	CacheDir         string `yaml:"cacheDir"`
	HTTPTimeout      string `yaml:"httpTimeout"`
}
