package settings

import (
	"github.com/bwmarrin/snowflake"
	"github.com/dpickhq/dpick/internal/email"
	"github.com/dpickhq/dpick/internal/settings/internal/repository"
	"github.com/dpickhq/dpick/internal/settings/internal/repository/dao"
	"github.com/dpickhq/dpick/internal/settings/internal/service"
	"github.com/dpickhq/dpick/internal/sms/client"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func initDAO(db *egorm.Component) dao.SettingDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	if econf.GetBool("demo.seed") {
		if err = dao.SeedDemoSettings(db); err != nil {
			panic(err)
		}
	}
	return dao.NewGORMSettingDAO(db)
}

func initService(repo repository.SettingRepository,
	emailSvc email.Service, smsClient client.Client) service.SettingsService {
	type Config struct {
		NodeId   int64  `yaml:"nodeId"`
		FromAddr string `yaml:"fromAddr"`
	}
	var cfg Config
	err := econf.UnmarshalKey("settings", &cfg)
	if err != nil {
		panic(err)
	}
	// 流水号按节点生成，单机部署配 0 就行
	node, err := snowflake.NewNode(cfg.NodeId)
	if err != nil {
		panic(err)
	}
	return service.NewSettingsService(repo, emailSvc, smsClient, node, cfg.FromAddr)
}
