// ABOUTME: Orchestrates the generate/check run for Cursor plugin artifacts
// ABOUTME: Loads metadata, discovers skills, builds documents, and syncs files
package commands

import (
	"errors"
	"path/filepath"

	"github.com/Prerna-1328/skills/internal/artifact"
	"github.com/Prerna-1328/skills/internal/config"
	"github.com/Prerna-1328/skills/internal/cursor"
	"github.com/Prerna-1328/skills/internal/mcp"
	"github.com/Prerna-1328/skills/internal/metadata"
	"github.com/Prerna-1328/skills/internal/skills"
	"github.com/Prerna-1328/skills/internal/ui"
)

func runGenerate(root string, checkOnly bool) error {
	rootDir, err := config.ResolveRoot(root)
	if err != nil {
		return err
	}

	meta, err := metadata.Load(filepath.Join(rootDir, filepath.FromSlash(config.ClaudePluginManifest)))
	if err != nil {
		return err
	}

	skillNames, err := skills.Discover(rootDir)
	if err != nil {
		return err
	}

	manifest, err := cursor.BuildManifest(meta, skillNames)
	if err != nil {
		return err
	}

	// gemini-extension.json is optional; its absence means defaults
	extMeta, err := metadata.Load(filepath.Join(rootDir, config.GeminiExtension))
	if err != nil {
		var missing *metadata.MissingFileError
		if !errors.As(err, &missing) {
			return err
		}
		extMeta = nil
	}
	mcpConfig := mcp.BuildConfig(extMeta)

	// Render everything up front so a failure here never leaves a
	// half-written artifact behind
	manifestText, err := artifact.Render(manifest)
	if err != nil {
		return err
	}
	mcpText, err := artifact.Render(mcpConfig)
	if err != nil {
		return err
	}

	artifacts := []artifact.Artifact{
		{
			Path:    filepath.Join(rootDir, filepath.FromSlash(config.CursorPluginManifest)),
			RelPath: config.CursorPluginManifest,
			Content: manifestText,
		},
		{
			Path:    filepath.Join(rootDir, config.CursorMCPConfig),
			RelPath: config.CursorMCPConfig,
			Content: mcpText,
		},
	}

	if checkOnly {
		if err := artifact.Check(artifacts); err != nil {
			return err
		}
		ui.PrintSuccess("Cursor plugin artifacts are up to date.")
		return nil
	}

	for _, a := range artifacts {
		if _, err := artifact.Write(a); err != nil {
			return err
		}
		ui.PrintSuccess("Wrote " + a.RelPath)
	}
	return nil
}
