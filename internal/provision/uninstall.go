package provision

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Uninstaller reverses an installation across every detected host version.
type Uninstaller struct {
	// HostRoot is the documents root containing per-version directories.
	HostRoot string
	// ShelfName is the shelf whose launcher file is removed.
	ShelfName string

	logger *slog.Logger
}

// NewUninstaller creates an Uninstaller.
func NewUninstaller(hostRoot, shelfName string, opts ...Option) *Uninstaller {
	u := &Uninstaller{
		HostRoot:  hostRoot,
		ShelfName: shelfName,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt.applyUninstaller(u)
	}
	return u
}

// RemovalReport records what was removed for one host version.
type RemovalReport struct {
	Version string
	Removed []string // human-readable item names, empty when already clean
	Errors  []string
}

// UninstallReport is the outcome of a full removal pass.
type UninstallReport struct {
	Versions []RemovalReport
}

// Uninstall removes the tool from every detected host version. Finding no
// versions is reported, not an error: there is simply nothing to remove.
func (u *Uninstaller) Uninstall() *UninstallReport {
	report := &UninstallReport{}
	for _, version := range FindHostVersions(u.HostRoot) {
		report.Versions = append(report.Versions, u.uninstallForVersion(version))
	}
	return report
}

func (u *Uninstaller) uninstallForVersion(version string) RemovalReport {
	rep := RemovalReport{Version: version}
	versionDir := filepath.Join(u.HostRoot, version)

	remove := func(path, label string, all bool) {
		var err error
		if all {
			err = os.RemoveAll(path)
		} else {
			err = os.Remove(path)
		}
		switch {
		case err == nil:
			rep.Removed = append(rep.Removed, label)
			u.logger.Info("removed", "version", version, "item", label)
		case os.IsNotExist(err):
			// Already clean.
		default:
			rep.Errors = append(rep.Errors, fmt.Sprintf("failed to remove %s: %v", label, err))
		}
	}

	remove(filepath.Join(versionDir, "plug-ins", PluginName), "plugin", false)

	toolDir := filepath.Join(versionDir, "scripts", ToolName)
	if _, err := os.Stat(toolDir); err == nil {
		remove(toolDir, "tool folder", true)
	}

	remove(filepath.Join(versionDir, "prefs", "shelves", "shelf_"+u.ShelfName+".mel"), "shelf file", false)

	// Any icon carrying the tool's name.
	iconsDir := filepath.Join(versionDir, "prefs", "icons")
	if entries, err := os.ReadDir(iconsDir); err == nil {
		for _, e := range entries {
			if e.IsDir() || !strings.Contains(strings.ToLower(e.Name()), "dembones") {
				continue
			}
			remove(filepath.Join(iconsDir, e.Name()), "icon ("+e.Name()+")", false)
		}
	}

	return rep
}
