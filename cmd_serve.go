package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// serveCmd implements the serve command: a websocket endpoint exposing
// compile-and-run as a service, one text frame in, one text frame out.
type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "Expose compile-and-run over a websocket endpoint" }
func (*serveCmd) Usage() string {
	return `serve:
  Listen for websocket connections on /eval. Each text frame received
  is compiled and run; the result (or error) is written back as a
  single text frame.
`
}
func (s *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.addr, "addr", ":8080", "listen address")
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func (s *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	mux := http.NewServeMux()
	mux.HandleFunc("/eval", handleEvalSocket)

	logger := log.New(os.Stdout, "serve ", log.LstdFlags)
	logger.Printf("listening on %s", s.addr)

	if err := http.ListenAndServe(s.addr, mux); err != nil {
		fmt.Fprintf(os.Stderr, "serve: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func handleEvalSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("serve: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	session := uuid.New()
	log.Printf("%s connected", session)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			log.Printf("%s disconnected: %v", session, err)
			return
		}

		result, err := runExpression(string(msg))
		var reply string
		if err != nil {
			reply = fmt.Sprintf("error: %v", err)
		} else {
			reply = fmt.Sprintf("%d", result)
		}

		if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			log.Printf("%s write failed: %v", session, err)
			return
		}
	}
}
