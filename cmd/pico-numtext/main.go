//go:build rp2040 || rp2350

// Firmware demo: heartbeat counters and an I2C scan, rendered without heap
// allocation and written straight to UART0.
package main

import (
	"machine"
	"time"

	"github.com/jangala-dev/tinygo-uartx/uartx"

	"numtext-go/errcode"
	"numtext-go/fixbuf"
	"numtext-go/totext"
	"numtext-go/x/conv"
	"numtext-go/x/probe"
)

const (
	baud       = 115200
	beatPeriod = 1 * time.Second
	scanEvery  = 10 // heartbeats between bus scans
	bootSettle = 1500 * time.Millisecond
	i2cFreqKHz = 400
)

// Static labels.
var (
	lBeat   = []byte("beat=")
	lUptime = []byte(" uptime_ms=")
	lDrift  = []byte(" drift_us=")
	lScan   = []byte("i2c0 scan:\r\n")
	lNone   = []byte("  none\r\n")
	lFound  = []byte("  found=")
	crlf    = []byte("\r\n")
)

func main() {
	time.Sleep(bootSettle)
	println("[numtext] boot …")

	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: baud,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})

	bus := machine.I2C0
	_ = bus.Configure(machine.I2CConfig{
		Frequency: i2cFreqKHz * machine.KHz,
		SDA:       machine.I2C0_SDA_PIN,
		SCL:       machine.I2C0_SCL_PIN,
	})

	start := time.Now()
	var (
		beat   uint32
		tick   fixbuf.U32
		uptime fixbuf.U64
		drift  fixbuf.I64
	)
	last := start
	for {
		time.Sleep(beatPeriod)
		now := time.Now()
		beat++

		// Signed drift against the nominal period, in microseconds.
		d := now.Sub(last) - beatPeriod
		last = now

		put(u, lBeat)
		_, _ = u.Write(fixbuf.Write(&tick, totext.U32(beat)))
		put(u, lUptime)
		_, _ = u.Write(fixbuf.Write(&uptime, totext.U64(now.Sub(start).Milliseconds())))
		put(u, lDrift)
		_, _ = u.Write(fixbuf.Write(&drift, totext.I64(d.Microseconds())))
		put(u, crlf)

		if beat%scanEvery == 0 {
			scan(u, bus)
		}
	}
}

func scan(u *uartx.UART, bus *machine.I2C) {
	put(u, lScan)
	n, err := probe.Scan(bus, u)
	switch {
	case errcode.Of(err) == errcode.NoDevice:
		put(u, lNone)
	case err != nil:
		println("[numtext] scan:", err.Error())
	default:
		var b [totext.IntSize]byte
		put(u, lFound)
		_, _ = u.Write(conv.Format(b[:], n))
		put(u, crlf)
	}
}

func put(u *uartx.UART, b []byte) { _, _ = u.Write(b) }
