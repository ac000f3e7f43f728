package catalog

import (
	"fmt"
	"sort"

	"github.com/lutece-go/lutece-sql/core/pathinfo"
	"github.com/lutece-go/lutece-sql/core/version"
	"go.uber.org/zap"
)

type Script struct {
	Path string
	Info *pathinfo.PathInfo
}

// Catalog groups migration scripts by plugin full name ("forms", "forms-template", "core").
type Catalog struct {
	logger *zap.Logger

	scripts map[string][]*Script
}

func NewCatalog(logger *zap.Logger) *Catalog {
	return &Catalog{
		logger:  logger,
		scripts: make(map[string][]*Script),
	}
}

// Add classifies path and records it. It returns false when path is not a migration script.
func (c *Catalog) Add(path string) bool {
	info := pathinfo.Classify(path)
	if info == nil {
		if c.logger != nil {
			c.logger.Debug("Ignoring file", zap.String("path", path))
		}
		return false
	}

	if c.logger != nil {
		c.logger.Debug("Found script", zap.String("path", path), zap.String("plugin", info.FullName()),
			zap.String("type", info.Type().Name()))
	}

	c.scripts[info.FullName()] = append(c.scripts[info.FullName()], &Script{Path: path, Info: info})
	return true
}

// Len returns the number of recorded scripts.
func (c *Catalog) Len() int {
	count := 0
	for _, scripts := range c.scripts {
		count += len(scripts)
	}
	return count
}

// Plugins returns the plugin full names in alphabetical order.
func (c *Catalog) Plugins() []string {
	plugins := make([]string, 0, len(c.scripts))
	for plugin := range c.scripts {
		plugins = append(plugins, plugin)
	}
	sort.Strings(plugins)
	return plugins
}

// Scripts returns the scripts of plugin: creation scripts first, then upgrade scripts ordered by
// source version, then destination version.
func (c *Catalog) Scripts(plugin string) []*Script {
	scripts := append([]*Script(nil), c.scripts[plugin]...)
	sortScripts(scripts)
	return scripts
}

func (c *Catalog) CreateScripts(plugin string) []*Script {
	creates := make([]*Script, 0)
	for _, script := range c.Scripts(plugin) {
		if script.Info.IsCreate() {
			creates = append(creates, script)
		}
	}
	return creates
}

// UpgradeScripts returns the ordered upgrade scripts of plugin starting at or after from and, when
// to is not nil, leading at most to to. A nil from selects every upgrade script up to to.
func (c *Catalog) UpgradeScripts(plugin string, from *version.Version, to *version.Version) []*Script {
	upgrades := make([]*Script, 0)
	for _, script := range c.Scripts(plugin) {
		if script.Info.IsCreate() {
			continue
		}

		if from != nil && script.Info.SrcVersion().Compare(from) < 0 {
			continue
		}
		if to != nil && script.Info.DstVersion().Compare(to) > 0 {
			continue
		}

		upgrades = append(upgrades, script)
	}

	if c.logger != nil {
		c.logger.Debug("Selected upgrade scripts", zap.String("plugin", plugin), zap.Stringer("from", from),
			zap.Stringer("to", to), zap.Int("count", len(upgrades)))
	}

	return upgrades
}

// LatestVersion returns the highest destination version among the upgrade scripts of plugin, or nil
// when it has none.
func (c *Catalog) LatestVersion(plugin string) *version.Version {
	latest := (*version.Version)(nil)
	for _, script := range c.scripts[plugin] {
		if script.Info.IsCreate() {
			continue
		}
		if latest == nil || script.Info.DstVersion().Compare(latest) > 0 {
			latest = script.Info.DstVersion()
		}
	}
	return latest
}

// Validate reports upgrade scripts that do not move the version forward and upgrade scripts sharing
// the same source and destination versions.
func (c *Catalog) Validate() []error {
	errs := make([]error, 0)

	for _, plugin := range c.Plugins() {
		var previous *Script
		for _, script := range c.Scripts(plugin) {
			if script.Info.IsCreate() {
				continue
			}

			if script.Info.SrcVersion().Compare(script.Info.DstVersion()) >= 0 {
				errs = append(errs, fmt.Errorf("upgrade script %s goes from %s to %s", script.Path,
					script.Info.SrcVersion(), script.Info.DstVersion()))
			}

			if previous != nil && previous.Info.SrcVersion().Equal(script.Info.SrcVersion()) &&
				previous.Info.DstVersion().Equal(script.Info.DstVersion()) {
				errs = append(errs, fmt.Errorf("upgrade scripts %s and %s cover the same versions", previous.Path,
					script.Path))
			}
			previous = script
		}
	}

	if len(errs) > 0 {
		if c.logger != nil {
			for _, err := range errs {
				c.logger.Error("Invalid upgrade script", zap.Error(err))
			}
		}
		return errs
	}
	return nil
}

func sortScripts(scripts []*Script) {
	sort.SliceStable(scripts, func(i, j int) bool {
		a, b := scripts[i].Info, scripts[j].Info
		if a.IsCreate() != b.IsCreate() {
			return a.IsCreate()
		}
		if a.IsCreate() {
			return scripts[i].Path < scripts[j].Path
		}
		if cmp := a.SrcVersion().Compare(b.SrcVersion()); cmp != 0 {
			return cmp < 0
		}
		if cmp := a.DstVersion().Compare(b.DstVersion()); cmp != 0 {
			return cmp < 0
		}
		return scripts[i].Path < scripts[j].Path
	})
}
