// ABOUTME: Skill discovery from skills/*/SKILL.md descriptor files
// ABOUTME: Extracts declared skill names from leading header blocks
package skills

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const skillFileName = "SKILL.md"

// Discover returns the declared names of all skills under <root>/skills,
// in lexicographic order of their SKILL.md paths. Descriptors without a
// non-blank name in their header block are skipped. Returns *NoSkillsError
// when nothing usable is found, since an empty skill set means the source
// tree is broken.
func Discover(root string) ([]string, error) {
	pattern := filepath.Join(root, "skills", "*", skillFileName)
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	var names []string
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		meta := parseHeaderBlock(string(data))
		name := strings.TrimSpace(meta["name"])
		if name == "" {
			continue
		}
		names = append(names, name)
	}

	if len(names) == 0 {
		return nil, &NoSkillsError{Pattern: filepath.Join("skills", "*", skillFileName)}
	}
	return names, nil
}

// parseHeaderBlock reads the leading "---" delimited block of a descriptor
// and splits each interior line on the first colon. Lines without a colon
// are ignored. A missing or unterminated block yields an empty map.
func parseHeaderBlock(text string) map[string]string {
	meta := make(map[string]string)

	lines := strings.Split(text, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return meta
	}

	closed := false
	var interior []string
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, "---") {
			closed = true
			break
		}
		interior = append(interior, line)
	}
	if !closed {
		return meta
	}

	for _, line := range interior {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		meta[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return meta
}
