// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package monitor

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/logger"
)

// Path is the URL path clients connect to.
const Path = "/nes"

// the number of snapshots that can be waiting for a client
const clientQueue = 16

type client struct {
	conn *websocket.Conn
	send chan Snapshot
}

// Monitor serves snapshots of the machine to websocket clients.
type Monitor struct {
	log      *logger.Logger
	upgrader websocket.Upgrader

	crit    sync.Mutex
	clients map[*client]bool

	server   *http.Server
	listener net.Listener
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The logger can be nil.
func NewMonitor(log *logger.Logger) *Monitor {
	return &Monitor{
		log:     log,
		clients: make(map[*client]bool),
	}
}

// Attach the monitor to the NES. Snapshots will be sent at the start of every
// frame.
func (mon *Monitor) Attach(nes *hardware.NES) {
	nes.OnFrame(func(frame int) error {
		mon.Broadcast(snapshot(nes, frame))
		return nil
	})
}

// Handler returns the http.Handler for the websocket path.
func (mon *Monitor) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(Path, mon.serveClient)
	return mux
}

// Listen starts the HTTP server on the address. The server runs until Close()
// is called.
func (mon *Monitor) Listen(addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("monitor: %w", err)
	}

	mon.listener = l
	mon.server = &http.Server{Handler: mon.Handler()}

	go func() {
		err := mon.server.Serve(l)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			mon.log.Log(logger.Allow, "monitor", err)
		}
	}()

	mon.log.Logf(logger.Allow, "monitor", "listening on ws://%s%s", l.Addr(), Path)

	return nil
}

// Addr returns the address the server is listening on. Returns the empty
// string if Listen() has not been called.
func (mon *Monitor) Addr() string {
	if mon.listener == nil {
		return ""
	}
	return mon.listener.Addr().String()
}

// Close the server and all client connections.
func (mon *Monitor) Close() error {
	var err error
	if mon.server != nil {
		err = mon.server.Close()
	}

	mon.crit.Lock()
	defer mon.crit.Unlock()
	for c := range mon.clients {
		c.conn.Close()
	}

	return err
}

// Clients returns the number of connected clients.
func (mon *Monitor) Clients() int {
	mon.crit.Lock()
	defer mon.crit.Unlock()
	return len(mon.clients)
}

// Broadcast the snapshot to all connected clients.
func (mon *Monitor) Broadcast(s Snapshot) {
	mon.crit.Lock()
	defer mon.crit.Unlock()

	for c := range mon.clients {
		select {
		case c.send <- s:
		default:
			mon.log.Logf(logger.Allow, "monitor", "dropped frame %d for %s", s.Frame, c.conn.RemoteAddr())
		}
	}
}

func (mon *Monitor) serveClient(w http.ResponseWriter, r *http.Request) {
	conn, err := mon.upgrader.Upgrade(w, r, nil)
	if err != nil {
		mon.log.Logf(logger.Allow, "monitor", "websocket upgrade error: %v", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan Snapshot, clientQueue),
	}

	mon.crit.Lock()
	mon.clients[c] = true
	mon.crit.Unlock()

	mon.log.Logf(logger.Allow, "monitor", "new client connection from %s", conn.RemoteAddr())

	quit := make(chan bool)
	done := make(chan bool)

	go func() {
		defer close(done)
		for {
			select {
			case s := <-c.send:
				err := conn.WriteJSON(s)
				if err != nil {
					return
				}
			case <-quit:
				return
			}
		}
	}()

	// read messages until the connection closes. the content of messages
	// from the client is not used
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}

	mon.crit.Lock()
	delete(mon.clients, c)
	mon.crit.Unlock()

	close(quit)
	<-done
	conn.Close()

	mon.log.Logf(logger.Allow, "monitor", "closed client connection from %s", conn.RemoteAddr())
}
