package ioc

import (
	"github.com/dotting-labs/dotting/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/econf"
)

// 业务线 0 预留, 1 是印刷单
const bizCount uint = 2

func InitIDGenerator() snowflake.IDGenerator {
	nodeId := econf.GetInt("snowflake.nodeId")
	gen, err := snowflake.NewDottingIDGenerator(uint(nodeId), bizCount)
	if err != nil {
		panic(err)
	}
	return gen
}
