package enums

type VendorType int8

const (
	VENDOR_MYSQL VendorType = iota
	VENDOR_POSTGRESQL
	VENDOR_ORACLE
	VENDOR_HSQLDB
)

// MapStringToVendorType lists the vendors shipped with rules in build.properties. Other vendor
// names are still accepted by the filter, they just have no known rules.
var MapStringToVendorType = map[string]VendorType{
	"mysql":      VENDOR_MYSQL,
	"postgresql": VENDOR_POSTGRESQL,
	"oracle":     VENDOR_ORACLE,
	"hsqldb":     VENDOR_HSQLDB,
}
