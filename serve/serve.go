package main

import (
	"flag"
	"fmt"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/HuXin0817/circuit-lines/pkg/pprof"
	"github.com/HuXin0817/circuit-lines/serve/internal/config"
	"github.com/HuXin0817/circuit-lines/serve/internal/handler"
	"github.com/HuXin0817/circuit-lines/serve/internal/svc"
)

var configFile = flag.String("f", "etc/serve.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	ctx := svc.NewServiceContext(c)
	defer ctx.Close()

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	handler.RegisterHandlers(server, ctx)
	httpx.SetErrorHandlerCtx(handler.ErrorHandler)
	pprof.Start(c.Pprof)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
