package project

import (
	"github.com/dpickhq/dpick/internal/email"
	"github.com/dpickhq/dpick/internal/project/internal/event"
	"github.com/dpickhq/dpick/internal/project/internal/repository/dao"
	"github.com/dpickhq/dpick/internal/project/internal/service"
	"github.com/dpickhq/dpick/internal/sms/client"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func initDAO(db *egorm.Component) dao.ProjectDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	if econf.GetBool("demo.seed") {
		if err = dao.SeedDemoProjects(db); err != nil {
			panic(err)
		}
	}
	return dao.NewGORMProjectDAO(db)
}

func initNotifier(emailSvc email.Service, smsClient client.Client) service.Notifier {
	type Config struct {
		FromAddr string `yaml:"fromAddr"`
		Subject  string `yaml:"subject"`
	}
	var cfg Config
	err := econf.UnmarshalKey("announcement", &cfg)
	if err != nil {
		panic(err)
	}
	return service.NewChannelNotifier(emailSvc, smsClient, cfg.FromAddr, cfg.Subject)
}

func initAnnouncementEventProducer(q mq.MQ) event.AnnouncementEventProducer {
	producer, err := event.NewAnnouncementEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}
