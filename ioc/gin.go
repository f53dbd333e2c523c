package ioc

import (
	"net/http"
	"strings"

	"github.com/dpickhq/dpick/internal/developer"
	"github.com/dpickhq/dpick/internal/project"
	"github.com/dpickhq/dpick/internal/settings"
	"github.com/dpickhq/dpick/internal/user"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	devHdl *developer.Handler,
	prjHdl *project.Handler,
	setHdl *settings.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "dpick.kr")
		},
	}))
	res.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "D.PICK API 서버가 실행 중입니다."})
	})
	// 旧版前端还在调这个接口，迁移完成前先留着
	res.GET("/api/todos", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, []gin.H{
			{"id": 1, "text": "개발자 면담 일정 확인", "done": false},
			{"id": 2, "text": "프로젝트 공고 발송", "done": true},
		})
	})
	userHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	devHdl.PrivateRoutes(res.Engine)
	prjHdl.PrivateRoutes(res.Engine)
	setHdl.PrivateRoutes(res.Engine)
	return res
}
