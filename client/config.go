package main

import "flag"

var (
	serverAddress = flag.String("h", "http://127.0.0.1:8888", "the game service address")
	modeName      = flag.String("mode", "practice-medium", "mode of the new game")
	gameId        = flag.String("id", "", "join an existing game instead of creating one")
)
