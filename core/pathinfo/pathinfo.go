package pathinfo

import (
	"fmt"
	"strings"

	"github.com/lutece-go/lutece-sql/core/enums"
	"github.com/lutece-go/lutece-sql/core/version"
)

// CORE_PLUGIN is the plugin name given to scripts of the platform core.
const CORE_PLUGIN = "core"

// Capturing group names used by the grammars.
const (
	PLUGIN_GROUP      = "plugin"
	MODULE_GROUP      = "module"
	SRC_VERSION_GROUP = "src"
	DST_VERSION_GROUP = "dst"
)

// PathInfo is what a migration file path tells about its script. It is read only.
type PathInfo struct {
	scriptType enums.ScriptType
	plugin     string
	module     string
	srcVersion *version.Version
	dstVersion *version.Version
}

// IsCreate is true for create_* and init_* scripts and false for upgrade scripts.
func (p *PathInfo) IsCreate() bool {
	return p.scriptType == enums.SCRIPT_CREATE
}

func (p *PathInfo) Type() enums.ScriptType {
	return p.scriptType
}

// Plugin returns the plugin name, CORE_PLUGIN for the platform core.
func (p *PathInfo) Plugin() string {
	return p.plugin
}

// Module returns the module name, or "" when the script is not part of a plugin module.
func (p *PathInfo) Module() string {
	return p.module
}

// FullName returns "plugin-module" for module scripts and the plugin name otherwise.
func (p *PathInfo) FullName() string {
	if strings.TrimSpace(p.module) == "" {
		return p.plugin
	}
	return p.plugin + "-" + p.module
}

// SrcVersion is the version an upgrade script starts from. Nil for creation scripts.
func (p *PathInfo) SrcVersion() *version.Version {
	return p.srcVersion
}

// DstVersion is the version an upgrade script leads to. Nil for creation scripts.
func (p *PathInfo) DstVersion() *version.Version {
	return p.dstVersion
}

func (p *PathInfo) String() string {
	return fmt.Sprintf("PathInfo[type=%s, plugin=%s, module=%s, src=%v, dst=%v]",
		p.scriptType.Name(), p.FullName(), p.module, p.srcVersion, p.dstVersion)
}

// Classify parses a slash separated path relative to the source root, such as
// "sql/plugins/forms/modules/template/upgrade/update_db_forms-template-0.0.9-1.0.0.sql".
//
// Grammars are tried in order and the first full match wins. A path whose versions do not fit an
// int falls through to the next grammar. A nil result means the path is not a migration script.
// The path is not cleaned and the filesystem is never touched.
func Classify(path string) *PathInfo {
	for _, g := range grammars {
		matches := g.regex.FindStringSubmatch(path)
		if matches == nil {
			continue
		}
		info, err := g.extract(matches)
		if err != nil {
			continue
		}
		return info
	}
	return nil
}

func (g *grammar) extract(matches []string) (*PathInfo, error) {
	info := &PathInfo{
		scriptType: g.scriptType,
		plugin:     g.group(matches, PLUGIN_GROUP),
		module:     g.group(matches, MODULE_GROUP),
	}

	if g.scriptType == enums.SCRIPT_UPGRADE {
		// The groups only hold digits, but a segment may still overflow an int.
		var err error
		info.srcVersion, err = version.Parse(g.group(matches, SRC_VERSION_GROUP))
		if err != nil {
			return nil, err
		}
		info.dstVersion, err = version.Parse(g.group(matches, DST_VERSION_GROUP))
		if err != nil {
			return nil, err
		}
	}

	return info, nil
}
