package developer

import (
	"github.com/dpickhq/dpick/internal/developer/internal/repository/dao"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func initDAO(db *egorm.Component) dao.DeveloperDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	if econf.GetBool("demo.seed") {
		if err = dao.SeedDemoDevelopers(db); err != nil {
			panic(err)
		}
	}
	return dao.NewGORMDeveloperDAO(db)
}
