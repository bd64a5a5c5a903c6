// Package config loads webforge process settings and the project manifest.
package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/webforge-cli/webforge/internal/errors"
	"github.com/webforge-cli/webforge/internal/fs"
)

// ManifestName is the project manifest filename.
const ManifestName = "webforge.yaml"

// DefaultLogFile is the logbook path relative to the project directory.
const DefaultLogFile = ".webforge/bootstrap.log"

// Settings are process-level knobs read from the environment.
type Settings struct {
	LogFile   string `env:"WEBFORGE_LOG_FILE"`
	NoColor   bool   `env:"WEBFORGE_NO_COLOR"`
	AssumeYes bool   `env:"WEBFORGE_ASSUME_YES"`
}

// LoadSettings parses Settings from the process environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, errors.Wrap(errors.ESettingsInvalid, "invalid WEBFORGE_* environment variable", err)
	}
	if s.LogFile == "" {
		s.LogFile = DefaultLogFile
	}
	// NO_COLOR is the ecosystem-wide convention; honor it alongside our own var.
	if os.Getenv("NO_COLOR") != "" {
		s.NoColor = true
	}
	return s, nil
}

// Severity policy values for the overridable steps.
const (
	PolicyAdvisory = "advisory"
	PolicyFatal    = "fatal"
)

// Scripts names the package.json scripts webforge invokes.
type Scripts struct {
	Dev   string `yaml:"dev"`
	Build string `yaml:"build"`
	Test  string `yaml:"test"`
}

// Policy holds the severity overrides for the audit and test steps.
type Policy struct {
	Audit string `yaml:"audit"`
	Tests string `yaml:"tests"`
}

// Manifest is the parsed webforge.yaml.
type Manifest struct {
	Project        string  `yaml:"project"`
	PackageManager string  `yaml:"package_manager"` // empty = detect
	MinNodeMajor   int     `yaml:"min_node_major"`
	Scripts        Scripts `yaml:"scripts"`
	Policy         Policy  `yaml:"policy"`
}

// DefaultManifest returns the manifest used when webforge.yaml is absent.
// Audit and test failures are advisory by default; build is always fatal.
func DefaultManifest() Manifest {
	return Manifest{
		Project:      "web-app",
		MinNodeMajor: 18,
		Scripts:      Scripts{Dev: "dev", Build: "build", Test: "test"},
		Policy:       Policy{Audit: PolicyAdvisory, Tests: PolicyAdvisory},
	}
}

// LoadManifest reads webforge.yaml from projectDir. Returns the default
// manifest and found=false when the file does not exist.
func LoadManifest(fsys fs.FS, projectDir string) (Manifest, bool, error) {
	path := filepath.Join(projectDir, ManifestName)

	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultManifest(), false, nil
		}
		return Manifest{}, false, errors.Wrap(errors.EManifestInvalid, "failed to read "+ManifestName, err)
	}

	m := DefaultManifest()
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, true, errors.Wrap(errors.EManifestInvalid, ManifestName+" is not valid YAML", err)
	}

	if err := m.validate(); err != nil {
		return Manifest{}, true, err
	}
	return m, true, nil
}

func (m Manifest) validate() error {
	if m.Project == "" {
		return errors.New(errors.EManifestInvalid, ManifestName+": project must not be empty")
	}
	if m.MinNodeMajor < 0 {
		return errors.New(errors.EManifestInvalid, ManifestName+": min_node_major must not be negative")
	}
	for name, v := range map[string]string{"policy.audit": m.Policy.Audit, "policy.tests": m.Policy.Tests} {
		if v != PolicyAdvisory && v != PolicyFatal {
			return errors.New(errors.EManifestInvalid,
				ManifestName+": "+name+" must be \""+PolicyAdvisory+"\" or \""+PolicyFatal+"\", got \""+v+"\"")
		}
	}
	return nil
}
