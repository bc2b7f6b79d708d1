package profile

import "strings"

// skillAliases maps common skill name variants to canonical names
var skillAliases = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"js":         "JavaScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"nodejs":     "Node.js",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
	"py":         "Python",
	"c sharp":    "C#",
	"cpp":        "C++",
}

// CanonicalSkill trims a skill name and maps known variants to their canonical spelling.
// Unknown names are returned trimmed but otherwise unchanged.
func CanonicalSkill(name string) string {
	name = strings.TrimSpace(name)
	if canonical, ok := skillAliases[strings.ToLower(name)]; ok {
		return canonical
	}
	return name
}
