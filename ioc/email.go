package ioc

import (
	"github.com/dotting-labs/dotting/internal/email"
	"github.com/dotting-labs/dotting/internal/email/aliyun"
	"github.com/dotting-labs/dotting/internal/email/console"
	"github.com/gotomicro/ego/core/econf"
)

// InitEmailService 未配置阿里云凭证时退化为控制台输出, 方便本地开发
func InitEmailService() email.Service {
	type Config struct {
		AccessKeyID     string `yaml:"accessKeyID"`
		AccessKeySecret string `yaml:"accessKeySecret"`
		AccountName     string `yaml:"accountName"`
	}
	var cfg Config
	_ = econf.UnmarshalKey("email.aliyun", &cfg)
	if cfg.AccessKeyID == "" {
		return console.NewClient()
	}
	svc, err := aliyun.NewAliyunDirectMailAPI(cfg.AccessKeyID, cfg.AccessKeySecret, cfg.AccountName)
	if err != nil {
		panic(err)
	}
	return svc
}
