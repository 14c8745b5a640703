package manifest

// FileName is the manifest's name inside a scaffolded project.
const FileName = "package.json"

// PackageJSON is the subset of package.json the scaffolder writes.
type PackageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private,omitempty"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// AllDependencies returns runtime and build-time dependencies in one map.
// Build-time entries win on a name clash.
func (p *PackageJSON) AllDependencies() map[string]string {
	all := make(map[string]string, len(p.Dependencies)+len(p.DevDependencies))
	for name, rng := range p.Dependencies {
		all[name] = rng
	}
	for name, rng := range p.DevDependencies {
		all[name] = rng
	}
	return all
}
