package conf

type FilterConfig struct {
	RegexpFile   string `yaml:"regexp-file" default:"build.properties"`
	DBProperties string `yaml:"db-properties" default:"webapp/WEB-INF/conf/db.properties"`
	Vendor       string `yaml:"vendor,omitempty"`
}

type ProjectConfig struct {
	Source string `yaml:"source" default:"src"`

	Filter FilterConfig `yaml:"filter"`
}
