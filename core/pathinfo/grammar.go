package pathinfo

import (
	"regexp"

	"github.com/lutece-go/lutece-sql/core/enums"
)

// Regexes, in matching order.
const (
	// sql/plugins/testpourliquibase/plugin/create_db_testpourliquibase.sql
	// sql/plugins/forms/modules/template/core/init_db_forms-template.sql
	PLUGIN_CREATE_REGEX = `^sql/plugins/(?P<plugin>[[:alnum:]\-]+)(?:/modules/(?P<module>[[:alnum:]]+))?/(?:core|plugin)/(?:init|create)[[:alnum:]_\-]+\.sql$`

	// sql/create_db_lutece_core.sql
	// sql/init_db_lutece_core.sql
	CORE_CREATE_REGEX = `^sql/(?:init|create)[[:alpha:]_]+(?P<plugin>core)\.sql$`

	// sql/plugins/testpourliquibase/upgrade/update_db_testpourliquibase-0.0.9-1.0.0.sql
	// sql/plugins/forms/modules/template/upgrades/upgrade_db_forms-template_1.0.0_1.1.0.sql
	PLUGIN_UPGRADE_REGEX = `^sql/plugins/(?P<plugin>[[:alnum:]\-]+)(?:/modules/(?P<module>[[:alnum:]]+))?/upgrades?/(?:update|upgrade)[[:alnum:]\-_]+[\-_]?(?P<src>[0-9]+(?:\.[0-9]+)*)[\-_](?P<dst>[0-9]+(?:\.[0-9]+)*)\.sql$`

	// sql/upgrade/update_db_lutece_core-5.1.0-5.2.0.sql
	CORE_UPGRADE_REGEX = `^sql/upgrade/update_db_lutece_(?P<plugin>core)-(?P<src>[0-9]+(?:\.[0-9]+)*)-(?P<dst>[0-9]+(?:\.[0-9]+)*)\.sql$`
)

type grammar struct {
	regex      *regexp.Regexp
	scriptType enums.ScriptType
}

var grammars = []*grammar{
	{regex: regexp.MustCompile(PLUGIN_CREATE_REGEX), scriptType: enums.SCRIPT_CREATE},
	{regex: regexp.MustCompile(CORE_CREATE_REGEX), scriptType: enums.SCRIPT_CREATE},
	{regex: regexp.MustCompile(PLUGIN_UPGRADE_REGEX), scriptType: enums.SCRIPT_UPGRADE},
	{regex: regexp.MustCompile(CORE_UPGRADE_REGEX), scriptType: enums.SCRIPT_UPGRADE},
}

// group returns the named group value, or "" when the grammar has no such group or it did not
// participate in the match.
func (g *grammar) group(matches []string, name string) string {
	index := g.regex.SubexpIndex(name)
	if index < 0 {
		return ""
	}
	return matches[index]
}
