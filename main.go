package main

import (
	"os"
	"time"

	"numtext-go/fixbuf"
	"numtext-go/totext"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	start := time.Now()
	var (
		beat   uint64
		line   [64]byte
		count  fixbuf.U64
		uptime fixbuf.I64
	)

	// Periodic stats.
	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()

	for t := range tick.C {
		beat++
		fixbuf.Write(&count, totext.U64(beat))
		fixbuf.Write(&uptime, totext.I64(t.Sub(start).Milliseconds()))

		b := t.AppendFormat(line[:0], "15:04:05")
		b = append(b, " Heartbeat n="...)
		b = count.AppendTo(b)
		b = append(b, " uptime_ms="...)
		b = uptime.AppendTo(b)
		b = append(b, '\n')
		_, _ = os.Stdout.Write(b)
	}
}
