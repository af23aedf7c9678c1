package main

import (
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/core/conf"

	"github.com/HuXin0817/circuit-lines/pkg/env"
)

type Config struct {
	MongoConf struct {
		Url          string
		DataBaseName string `json:",default=circuit_lines"`
		PassWord     string `json:",optional"`
	}
}

func mustLoadConfig(file string) (c Config) {
	conf.MustLoad(file, &c)
	c.MongoConf.PassWord = env.Or(c.MongoConf.PassWord, env.MongoPassWord)
	if strings.Contains(c.MongoConf.Url, "%s") {
		c.MongoConf.Url = fmt.Sprintf(c.MongoConf.Url, c.MongoConf.PassWord)
	}
	return
}
