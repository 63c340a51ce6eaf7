package ioc

import (
	"net/http"
	"strings"

	"github.com/dotting-labs/dotting/internal/ai"
	"github.com/dotting-labs/dotting/internal/compilation"
	"github.com/dotting-labs/dotting/internal/interview"
	"github.com/dotting-labs/dotting/internal/order"
	"github.com/dotting-labs/dotting/internal/pkg/middleware"
	"github.com/dotting-labs/dotting/internal/user"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	interviewHdl *interview.Handler,
	orderHdl *order.Handler,
	compilationHdl *compilation.Handler,
	aiHdl *ai.Handler,
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
			// 只允许我的域名过来的
			return strings.Contains(origin, "dotting.life")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	interviewHdl.PrivateRoutes(res.Engine)
	orderHdl.PrivateRoutes(res.Engine)
	compilationHdl.PrivateRoutes(res.Engine)
	aiHdl.PrivateRoutes(res.Engine)
	return res
}
