package enums

type ScriptType int8

const (
	SCRIPT_CREATE ScriptType = iota
	SCRIPT_UPGRADE
)

func (s ScriptType) Name() string {
	return []string{"CREATE", "UPGRADE"}[s]
}
