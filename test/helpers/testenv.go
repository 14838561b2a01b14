// ABOUTME: TestEnv provides isolated fixture repositories for acceptance tests
// ABOUTME: Builds the cursorgen binary and runs it against temp skill repos
package helpers

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// TestEnv represents an isolated fixture repository
type TestEnv struct {
	RepoDir string // Root of the fixture skills repository
	Binary  string // Path to the cursorgen binary
}

// Result captures one CLI invocation
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// NewTestEnv creates a fixture repository with a valid plugin manifest
// and one named skill, the minimum cursorgen needs to succeed
func NewTestEnv(binary string) *TestEnv {
	env := &TestEnv{
		RepoDir: GinkgoT().TempDir(),
		Binary:  binary,
	}

	env.WritePluginManifest(map[string]interface{}{
		"name":        "hf-skills",
		"description": "Fixture skills repository",
		"version":     "1.0.0",
	})
	env.WriteSkill("demo", "demo-skill")

	return env
}

// Run executes cursorgen against the fixture repository
func (e *TestEnv) Run(args ...string) *Result {
	cmd := exec.Command(e.Binary, append(args, "--root", e.RepoDir)...)
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = 1
		}
	}

	return &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// WritePluginManifest writes .claude-plugin/plugin.json
func (e *TestEnv) WritePluginManifest(manifest map[string]interface{}) {
	WriteJSON(filepath.Join(e.RepoDir, ".claude-plugin", "plugin.json"), manifest)
}

// WriteGeminiExtension writes gemini-extension.json
func (e *TestEnv) WriteGeminiExtension(ext map[string]interface{}) {
	WriteJSON(filepath.Join(e.RepoDir, "gemini-extension.json"), ext)
}

// WriteSkill creates skills/<dir>/SKILL.md declaring the given name
func (e *TestEnv) WriteSkill(dir, name string) {
	skillDir := filepath.Join(e.RepoDir, "skills", dir)
	Expect(os.MkdirAll(skillDir, 0755)).To(Succeed())

	content := "---\nname: " + name + "\ndescription: test skill\n---\nInstructions.\n"
	Expect(os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte(content), 0644)).To(Succeed())
}

// ReadArtifact returns the content of a generated file, relative to the repo root
func (e *TestEnv) ReadArtifact(relPath string) string {
	data, err := os.ReadFile(filepath.Join(e.RepoDir, filepath.FromSlash(relPath)))
	Expect(err).NotTo(HaveOccurred())
	return string(data)
}

// ArtifactExists checks whether a generated file exists
func (e *TestEnv) ArtifactExists(relPath string) bool {
	_, err := os.Stat(filepath.Join(e.RepoDir, filepath.FromSlash(relPath)))
	return err == nil
}

// WriteJSON marshals a value to an indented JSON file, creating parent dirs
func WriteJSON(path string, v interface{}) {
	Expect(os.MkdirAll(filepath.Dir(path), 0755)).To(Succeed())
	data, err := json.MarshalIndent(v, "", "  ")
	Expect(err).NotTo(HaveOccurred())
	Expect(os.WriteFile(path, data, 0644)).To(Succeed())
}

// BuildBinary builds the cursorgen binary and returns its path
func BuildBinary() string {
	binPath := filepath.Join(GinkgoT().TempDir(), "cursorgen")

	projectRoot, err := findProjectRoot()
	Expect(err).NotTo(HaveOccurred())

	sourcePath := filepath.Join(projectRoot, "cmd", "cursorgen")

	cmd := exec.Command("go", "build", "-o", binPath, sourcePath)
	cmd.Stderr = GinkgoWriter
	Expect(cmd.Run()).To(Succeed())
	return binPath
}

// findProjectRoot walks up the directory tree to find go.mod
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
