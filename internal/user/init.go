package user

import (
	"github.com/dpickhq/dpick/internal/user/internal/repository/dao"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func initDAO(db *egorm.Component) dao.UserDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	if econf.GetBool("demo.seed") {
		if err = dao.SeedDemoUsers(db); err != nil {
			panic(err)
		}
	}
	return dao.NewGORMUserDAO(db)
}
