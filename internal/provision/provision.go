// Package provision installs and removes the Dem Bones tool across the
// per-version directories of the host's documents root: the solver plugin
// binary, the tool script package, the icon and a one-click shelf launcher.
package provision

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const (
	// ToolName is the script package directory installed under scripts/.
	ToolName = "dembones_maya_tool"
	// PluginName is the file name the solver plugin is installed as.
	PluginName = "DemBones.mll"
	// IconName is the launcher icon file. The name carries the tool name so
	// the uninstaller can find it among other custom icons.
	IconName = "dembones_icon.png"
	// PluginsDirName is the source folder holding the per-version .mll builds.
	PluginsDirName = "outputMll"

	// Host versions the tool supports.
	minVersion = 2018
	maxVersion = 2025
)

// Installer provisions the tool into every detected host version.
type Installer struct {
	// SourceDir holds outputMll/, the tool package and the icon.
	SourceDir string
	// HostRoot is the documents root containing per-version directories.
	HostRoot string
	// ShelfName is the shelf the launcher button is registered on.
	ShelfName string

	logger *slog.Logger
}

// NewInstaller creates an Installer.
func NewInstaller(sourceDir, hostRoot, shelfName string, opts ...Option) *Installer {
	inst := &Installer{
		SourceDir: sourceDir,
		HostRoot:  hostRoot,
		ShelfName: shelfName,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt.applyInstaller(inst)
	}
	return inst
}

// Option configures an Installer or Uninstaller.
type Option interface {
	applyInstaller(*Installer)
	applyUninstaller(*Uninstaller)
}

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) applyInstaller(i *Installer) {
	if o.logger != nil {
		i.logger = o.logger
	}
}

func (o loggerOption) applyUninstaller(u *Uninstaller) {
	if o.logger != nil {
		u.logger = o.logger
	}
}

// WithLogger sets a structured logger for provisioning steps.
func WithLogger(logger *slog.Logger) Option {
	return loggerOption{logger: logger}
}

// VersionReport records what happened for one host version.
type VersionReport struct {
	Version       string
	PluginCopied  string // source file name, "" when none was found
	ToolInstalled bool
	IconCopied    bool
	Errors        []string
}

// InstallReport is the outcome of a full installation pass.
type InstallReport struct {
	Versions []VersionReport
	Warnings []string
}

// Failed reports whether any per-version step errored.
func (r *InstallReport) Failed() bool {
	for _, v := range r.Versions {
		if len(v.Errors) > 0 {
			return true
		}
	}
	return false
}

// ValidateSources checks the installer inputs before touching the host root.
// A missing icon is a warning, not an error.
func (inst *Installer) ValidateSources() ([]string, error) {
	var errs []string
	var warnings []string

	pluginsDir := filepath.Join(inst.SourceDir, PluginsDirName)
	if entries, err := os.ReadDir(pluginsDir); err != nil {
		errs = append(errs, "missing plugins folder: "+PluginsDirName)
	} else {
		mll := 0
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".mll") {
				mll++
			}
		}
		if mll == 0 {
			errs = append(errs, "no .mll files found in: "+PluginsDirName)
		}
	}

	if _, err := os.Stat(filepath.Join(inst.SourceDir, ToolName)); err != nil {
		errs = append(errs, "missing folder: "+ToolName)
	}

	if _, err := os.Stat(filepath.Join(inst.SourceDir, IconName)); err != nil {
		warnings = append(warnings, "icon file not found: "+IconName+", button will use default icon")
	}

	if len(errs) > 0 {
		return warnings, fmt.Errorf("installation sources invalid:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return warnings, nil
}

// FindHostVersions returns the supported version directories under HostRoot,
// sorted ascending.
func FindHostVersions(hostRoot string) []string {
	entries, err := os.ReadDir(hostRoot)
	if err != nil {
		return nil
	}
	var versions []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		n, err := strconv.Atoi(e.Name())
		if err != nil || n < minVersion || n > maxVersion {
			continue
		}
		versions = append(versions, e.Name())
	}
	sort.Strings(versions)
	return versions
}

// pluginForVersion resolves the plugin binary to install for a host version,
// by preference: exact versioned name, short versioned name, generic.
func (inst *Installer) pluginForVersion(version string) string {
	pluginsDir := filepath.Join(inst.SourceDir, PluginsDirName)
	for _, name := range []string{
		"DemBones_maya" + version + ".mll",
		"DemBones_" + version + ".mll",
		PluginName,
	} {
		if _, err := os.Stat(filepath.Join(pluginsDir, name)); err == nil {
			return name
		}
	}
	return ""
}

// Install provisions every detected host version and registers the launcher.
func (inst *Installer) Install() (*InstallReport, error) {
	report := &InstallReport{}

	warnings, err := inst.ValidateSources()
	report.Warnings = warnings
	if err != nil {
		return report, err
	}

	versions := FindHostVersions(inst.HostRoot)
	if len(versions) == 0 {
		return report, fmt.Errorf("no host versions found in: %s", inst.HostRoot)
	}

	for _, version := range versions {
		report.Versions = append(report.Versions, inst.installForVersion(version))
	}
	return report, nil
}

func (inst *Installer) installForVersion(version string) VersionReport {
	rep := VersionReport{Version: version}
	versionDir := filepath.Join(inst.HostRoot, version)
	plugDir := filepath.Join(versionDir, "plug-ins")
	scriptsDir := filepath.Join(versionDir, "scripts")
	iconsDir := filepath.Join(versionDir, "prefs", "icons")
	shelvesDir := filepath.Join(versionDir, "prefs", "shelves")

	for _, dir := range []string{plugDir, scriptsDir, iconsDir, shelvesDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			rep.Errors = append(rep.Errors, fmt.Sprintf("failed to create %s: %v", dir, err))
			return rep
		}
	}

	// Plugin binary, resolved per version.
	if name := inst.pluginForVersion(version); name != "" {
		src := filepath.Join(inst.SourceDir, PluginsDirName, name)
		if err := copyFile(src, filepath.Join(plugDir, PluginName)); err != nil {
			rep.Errors = append(rep.Errors, fmt.Sprintf("failed to copy plugin: %v", err))
		} else {
			rep.PluginCopied = name
			inst.logger.Info("plugin installed", "version", version, "source", name)
		}
	} else {
		rep.Errors = append(rep.Errors, "no plugin found for version "+version)
	}

	// Tool package, replacing any previous install.
	toolDest := filepath.Join(scriptsDir, ToolName)
	if err := os.RemoveAll(toolDest); err != nil {
		rep.Errors = append(rep.Errors, fmt.Sprintf("failed to remove old tool: %v", err))
	} else if err := copyDir(filepath.Join(inst.SourceDir, ToolName), toolDest); err != nil {
		rep.Errors = append(rep.Errors, fmt.Sprintf("failed to copy tool: %v", err))
	} else {
		rep.ToolInstalled = true
	}

	// Icon is optional.
	iconSrc := filepath.Join(inst.SourceDir, IconName)
	if _, err := os.Stat(iconSrc); err == nil {
		if err := copyFile(iconSrc, filepath.Join(iconsDir, IconName)); err != nil {
			rep.Errors = append(rep.Errors, fmt.Sprintf("failed to copy icon: %v", err))
		} else {
			rep.IconCopied = true
		}
	}

	// One-click launcher.
	shelfPath := filepath.Join(shelvesDir, "shelf_"+inst.ShelfName+".mel")
	if err := os.WriteFile(shelfPath, []byte(shelfScript(inst.ShelfName)), 0644); err != nil {
		rep.Errors = append(rep.Errors, fmt.Sprintf("failed to write shelf: %v", err))
	}

	return rep
}

// copyFile copies a regular file, preserving its mode.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// copyDir copies a directory tree.
func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(path, target)
	})
}
