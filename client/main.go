package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/zeromicro/go-zero/core/logx"
)

func main() {
	flag.Parse()
	ctx := context.Background()
	client := Client{Address: *serverAddress}

	var (
		view gameView
		err  error
	)
	if *gameId != "" {
		view, err = client.Get(ctx, *gameId)
	} else {
		view, err = client.Create(ctx, *modeName)
	}
	logx.Must(err)

	s := &session{client: client, id: view.Id, out: os.Stdout}
	fmt.Printf("game %s (%s)\n", view.Id, view.Mode)
	render(os.Stdout, view)

	scanner := bufio.NewScanner(os.Stdin)
	for fmt.Print("> "); scanner.Scan(); fmt.Print("> ") {
		if s.exec(ctx, scanner.Text()) == errQuit {
			return
		}
	}
}
