package scaffold

import (
	"path/filepath"
	"strings"
	"text/template"

	"github.com/webforge-cli/webforge/internal/errors"
	"github.com/webforge-cli/webforge/internal/fs"
)

// EnvLocalName is the local environment filename.
const EnvLocalName = ".env.local"

// Artifact is one boilerplate file to write.
type Artifact struct {
	RelPath  string // relative to the project root, slash-separated
	Template string
}

// DefaultArtifacts returns the boilerplate files written during bootstrap,
// in write order. .env.local is handled separately because it is rebuilt
// from prompt answers on every run.
func DefaultArtifacts() []Artifact {
	return []Artifact{
		{RelPath: ".github/workflows/ci.yml", Template: CIWorkflowTemplate},
		{RelPath: "Dockerfile", Template: DockerfileTemplate},
		{RelPath: "README.md", Template: ReadmeTemplate},
		{RelPath: ".gitignore", Template: GitignoreTemplate},
	}
}

// WriteResult reports which artifacts were created and which already existed.
type WriteResult struct {
	Created []string
	Skipped []string
}

// WriteArtifacts renders and writes the default artifacts under root.
// Existing files are never overwritten; they are reported in Skipped.
// Writes are atomic.
func WriteArtifacts(fsys fs.FS, root string, data Data) (WriteResult, error) {
	var result WriteResult

	for _, a := range DefaultArtifacts() {
		absPath := filepath.Join(root, filepath.FromSlash(a.RelPath))

		exists, err := fs.Exists(fsys, absPath)
		if err != nil {
			return result, errors.Wrap(errors.EWriteFailed, "failed to check "+a.RelPath, err)
		}
		if exists {
			result.Skipped = append(result.Skipped, a.RelPath)
			continue
		}

		content, err := Render(a.Template, data)
		if err != nil {
			return result, errors.Wrap(errors.EWriteFailed, "failed to render "+a.RelPath, err)
		}

		if err := fsys.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
			return result, errors.Wrap(errors.EWriteFailed, "failed to create directory for "+a.RelPath, err)
		}
		if err := fs.WriteFileAtomic(fsys, absPath, []byte(content), 0o644); err != nil {
			return result, errors.Wrap(errors.EWriteFailed, "failed to write "+a.RelPath, err)
		}
		result.Created = append(result.Created, a.RelPath)
	}

	return result, nil
}

// WriteEnvLocal writes .env.local from the prompt answers. Unlike the other
// artifacts it is overwritten on every run: its contents are exactly the
// operator's latest answers.
func WriteEnvLocal(fsys fs.FS, root string, data Data) error {
	content, err := Render(EnvLocalTemplate, data)
	if err != nil {
		return errors.Wrap(errors.EWriteFailed, "failed to render "+EnvLocalName, err)
	}
	path := filepath.Join(root, EnvLocalName)
	if err := fs.WriteFileAtomic(fsys, path, []byte(content), 0o644); err != nil {
		return errors.Wrap(errors.EWriteFailed, "failed to write "+EnvLocalName, err)
	}
	return nil
}

// WriteManifest renders webforge.yaml under root. force controls overwrite.
func WriteManifest(fsys fs.FS, root string, data Data, force bool) (created bool, err error) {
	path := filepath.Join(root, "webforge.yaml")

	exists, err := fs.Exists(fsys, path)
	if err != nil {
		return false, errors.Wrap(errors.EWriteFailed, "failed to check webforge.yaml", err)
	}
	if exists && !force {
		return false, errors.New(errors.EManifestExists, "webforge.yaml already exists; use --force to overwrite")
	}

	content, err := Render(ManifestTemplate, data)
	if err != nil {
		return false, errors.Wrap(errors.EWriteFailed, "failed to render webforge.yaml", err)
	}
	if err := fs.WriteFileAtomic(fsys, path, []byte(content), 0o644); err != nil {
		return false, errors.Wrap(errors.EWriteFailed, "failed to write webforge.yaml", err)
	}
	return !exists, nil
}

// Render executes a template string against data.
func Render(tmpl string, data Data) (string, error) {
	t, err := template.New("artifact").Parse(tmpl)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// ParseEnvLocal extracts KEY=VALUE pairs from .env.local contents.
// Used to seed prompt defaults on repeated runs. Blank lines and
// comment lines are ignored; malformed lines are skipped.
func ParseEnvLocal(data []byte) map[string]string {
	values := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found || key == "" {
			continue
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return values
}
