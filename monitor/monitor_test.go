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

package monitor_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/monitor"
	"github.com/jetsetilly/gophernes/test"
)

func newNES(t *testing.T) *hardware.NES {
	t.Helper()

	data := cartridge.Data{
		PRG:      make([]uint8, 2*mapper.PageSize),
		PRGPages: 2,
		MapperID: 1,
	}
	copy(data.PRG, []uint8{
		0xa2, 0x42, // LDX #$42
		0x4c, 0x02, 0x80, // JMP $8002
	})
	data.PRG[0x7ffc] = 0x00
	data.PRG[0x7ffd] = 0x80

	nes := hardware.NewNES(nil)
	test.DemandSuccess(t, nes.AttachCartridge("test", data))
	return nes
}

// wait for the number of clients to reach n
func waitForClients(t *testing.T, mon *monitor.Monitor, n int) {
	t.Helper()
	for range 100 {
		if mon.Clients() == n {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d clients; have %d", n, mon.Clients())
}

func TestSnapshots(t *testing.T) {
	nes := newNES(t)

	mon := monitor.NewMonitor(nil)
	mon.Attach(nes)

	srv := httptest.NewServer(mon.Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + monitor.Path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	test.DemandSuccess(t, err)
	defer conn.Close()

	waitForClients(t, mon, 1)

	test.DemandSuccess(t, nes.RunFrames(2))

	var s monitor.Snapshot

	test.DemandSuccess(t, conn.ReadJSON(&s))
	test.ExpectEquality(t, s.Frame, 1)
	test.ExpectEquality(t, s.CPU.X, 0x42)
	test.ExpectEquality(t, s.CPU.PC, 0x8002)
	test.ExpectEquality(t, s.Mapper, "MMC1")
	test.ExpectEquality(t, s.Last, "$8002 JMP $8002")

	test.DemandSuccess(t, conn.ReadJSON(&s))
	test.ExpectEquality(t, s.Frame, 2)

	conn.Close()
	waitForClients(t, mon, 0)
}

func TestListen(t *testing.T) {
	mon := monitor.NewMonitor(nil)
	test.ExpectEquality(t, mon.Addr(), "")

	test.DemandSuccess(t, mon.Listen("127.0.0.1:0"))
	test.ExpectInequality(t, mon.Addr(), "")

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+mon.Addr()+monitor.Path, nil)
	test.DemandSuccess(t, err)
	defer conn.Close()

	waitForClients(t, mon, 1)

	mon.Broadcast(monitor.Snapshot{Frame: 10})

	var s monitor.Snapshot
	test.DemandSuccess(t, conn.ReadJSON(&s))
	test.ExpectEquality(t, s.Frame, 10)

	test.ExpectSuccess(t, mon.Close())
}

func TestSlowClient(t *testing.T) {
	mon := monitor.NewMonitor(nil)

	srv := httptest.NewServer(mon.Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + monitor.Path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	test.DemandSuccess(t, err)
	defer conn.Close()

	waitForClients(t, mon, 1)

	// broadcasting never blocks even though the client is not reading
	done := make(chan bool)
	go func() {
		for i := range 1000 {
			mon.Broadcast(monitor.Snapshot{Frame: i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("broadcast blocked")
	}
}
