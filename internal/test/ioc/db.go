package testioc

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"github.com/dpickhq/dpick/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

var (
	db     *egorm.Component
	dbOnce sync.Once
)

// InitDB 集成测试共用一个连接，配置从仓库根目录的 config.yaml 读
func InitDB() *egorm.Component {
	dbOnce.Do(func() {
		loadConfig()
		ioc.WaitForDBSetup(econf.GetStringMapString("mysql")["dsn"])
		db = egorm.Load("mysql").Build()
	})
	return db
}

func loadConfig() {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	// 测试包都埋在 internal/<mod>/internal/integration 下面，往上翻五层
	path := filepath.Clean(dir + "../../../../../config/config.yaml")
	content, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	err = econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
	if err != nil {
		panic(err)
	}
}
