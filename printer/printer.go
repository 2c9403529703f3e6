// Package printer holds log printers. New kinds of log messages are added by
// implementing Printer, without touching Log.
package printer

import "github.com/lukasz-zimnoch/dexly/custody"

type Printer interface {
	Print() string
}

type AnalyticsLog struct {
	Message string
}

func (al AnalyticsLog) Print() string {
	return "I'm an Analytics Log - " + al.Message
}

type NetworkLog struct {
	Message string
}

func (nl NetworkLog) Print() string {
	return "I'm a Networking Log - " + nl.Message
}

type Log struct {
	Printer Printer
	Logger  custody.Logger
}

func (l *Log) Execute() {
	l.Logger.Infof("%s", l.Printer.Print())
}
